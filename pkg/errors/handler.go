package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs the handler that receives reported errors. Nil
// restores the stderr LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	handler = h
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report hands err to the installed handler, stamping it if needed.
func Report(err *CardStackError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// RecoverCallback recovers a panic raised by a host callback and reports it
// as a KindCallback error for op. It must be deferred directly:
//
//	defer errors.RecoverCallback("cardstack.Stack.OnItemSwiped")
func RecoverCallback(op string) {
	if r := recover(); r != nil {
		Report(recovered(op, KindCallback, r))
	}
}

// Recover recovers a panic raised by engine code and reports it as a
// KindPanic error for op. It must be deferred directly.
func Recover(op string) {
	if r := recover(); r != nil {
		Report(recovered(op, KindPanic, r))
	}
}

func recovered(op string, kind ErrorKind, value any) *CardStackError {
	return &CardStackError{
		Op:   op,
		Kind: kind,
		Err:  &PanicError{Value: value},
		// Skip Callers, stackTrace, recovered and the deferred Recover*.
		StackTrace: stackTrace(4),
		Timestamp:  time.Now(),
	}
}

// stackTrace formats up to 32 frames of the calling goroutine, skipping
// the innermost skip frames.
func stackTrace(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}
