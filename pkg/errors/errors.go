// Package errors provides structured error handling for the card stack engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid configuration, such as an empty
	// normalization range or a non-positive screen width.
	KindConfig
	// KindEmptyStack indicates a swipe was requested on an exhausted stack.
	KindEmptyStack
	// KindBusy indicates a swipe was requested while another one is in flight.
	KindBusy
	// KindCallback indicates a host callback (OnItemSwiped, an outcome
	// subscriber, a listener) panicked.
	KindCallback
	// KindPanic indicates engine code panicked while stepping a frame.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindEmptyStack:
		return "empty-stack"
	case KindBusy:
		return "busy"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes. Match them with [Is].
var (
	// ErrInvalidRange is returned when a normalization target range is empty
	// or inverted (start >= end).
	ErrInvalidRange = stderrors.New("start range is greater than or equal to end range")
	// ErrEmptyStack is returned when a swipe is requested with no current card.
	ErrEmptyStack = stderrors.New("card stack is empty")
	// ErrBusy is returned when a swipe is requested while an animation runs.
	ErrBusy = stderrors.New("card stack is animating")
)

// CardStackError represents a structured error in the card stack engine.
type CardStackError struct {
	// Op is the operation that failed (e.g., "cardstack.Normalize").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns a CardStackError for op wrapping err.
func New(op string, kind ErrorKind, err error) *CardStackError {
	return &CardStackError{Op: op, Kind: kind, Err: err}
}

// Errorf returns a CardStackError whose cause is formatted from format and args.
// Wrap a sentinel with %w to keep it matchable.
func Errorf(op string, kind ErrorKind, format string, args ...any) *CardStackError {
	return &CardStackError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *CardStackError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CardStackError) Unwrap() error {
	return e.Err
}

// PanicError is the cause of a CardStackError raised by a recovered panic.
type PanicError struct {
	// Value is the value passed to panic().
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// PanicValue returns the recovered value when err was raised by a panic.
func PanicValue(err error) (any, bool) {
	var pe *PanicError
	if stderrors.As(err, &pe) {
		return pe.Value, true
	}
	return nil, false
}

// KindOf returns the kind of the first CardStackError in err's chain,
// or KindUnknown.
func KindOf(err error) ErrorKind {
	var cse *CardStackError
	if stderrors.As(err, &cse) {
		return cse.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// ErrorHandler receives errors reported by the card stack engine. Recovered
// panics arrive as KindCallback or KindPanic errors wrapping a [PanicError].
type ErrorHandler interface {
	HandleError(err *CardStackError)
}
