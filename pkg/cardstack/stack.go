package cardstack

import (
	"slices"

	"github.com/go-logr/logr"

	"github.com/go-drift/cardstack/pkg/errors"
)

// StackOptions holds the host callbacks of a [Stack]. Both are optional.
type StackOptions[T any] struct {
	// OnItemSwiped runs once per committed swipe with the item that left,
	// its 1-based ordinal from the top of the original stack, and the
	// direction it left in.
	OnItemSwiped func(item T, ordinal int, dir Direction)

	// OnStackExhausted runs once, after the last card leaves, with the
	// last element of the item list.
	OnStackExhausted func(last T)
}

// Stack is an ordered, non-growing sequence of items consumed from the end
// of the list toward the front as the controller commits swipes.
//
// The item at the current index is the top card and the one below it is
// the next card. A stack of N items starts at index N-1 and is exhausted at
// index -1.
type Stack[T any] struct {
	items      []T
	controller *Controller
	log        logr.Logger

	current   int
	exhausted bool

	onItemSwiped     func(T, int, Direction)
	onStackExhausted func(T)

	unsubscribe func()
}

// NewStack creates a stack over a copy of items and subscribes it to
// controller's outcomes. Each controller must back at most one stack.
//
// An empty stack starts exhausted and never invokes OnStackExhausted,
// since it has no last item to report.
func NewStack[T any](items []T, controller *Controller, opts StackOptions[T]) *Stack[T] {
	s := &Stack[T]{
		items:            slices.Clone(items),
		controller:       controller,
		log:              controller.cfg.Logger.WithName("stack"),
		current:          len(items) - 1,
		onItemSwiped:     opts.OnItemSwiped,
		onStackExhausted: opts.OnStackExhausted,
	}
	s.exhausted = len(s.items) == 0
	s.unsubscribe = controller.Subscribe(s.handleOutcome)
	return s
}

// Controller returns the backing controller.
func (s *Stack[T]) Controller() *Controller {
	return s.controller
}

// CurrentIndex returns the index of the top card, or -1 once exhausted.
func (s *Stack[T]) CurrentIndex() int {
	return s.current
}

// IsEmpty reports whether no cards remain.
func (s *Stack[T]) IsEmpty() bool {
	return s.current < 0
}

// Len returns the total number of items, swiped or not.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Remaining returns the number of cards not yet swiped.
func (s *Stack[T]) Remaining() int {
	return s.current + 1
}

// Items returns a copy of the item list in its original order.
func (s *Stack[T]) Items() []T {
	return slices.Clone(s.items)
}

// Top returns the item on top of the stack.
func (s *Stack[T]) Top() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.items[s.current], true
}

// Scope returns the view of the stack handed to card content.
func (s *Stack[T]) Scope() Scope {
	return Scope{CurrentIndex: s.current, Controller: s.controller}
}

// SwipeLeft commits the top card to the left, as a button would.
func (s *Stack[T]) SwipeLeft() error {
	return s.swipe("cardstack.Stack.SwipeLeft", Left)
}

// SwipeRight commits the top card to the right, as a button would.
func (s *Stack[T]) SwipeRight() error {
	return s.swipe("cardstack.Stack.SwipeRight", Right)
}

func (s *Stack[T]) swipe(op string, dir Direction) error {
	if s.IsEmpty() {
		return errors.New(op, errors.KindEmptyStack, errors.ErrEmptyStack)
	}
	if s.controller.IsAnimating() {
		return errors.New(op, errors.KindBusy, errors.ErrBusy)
	}
	if dir == Left {
		s.controller.SwipeLeft()
	} else {
		s.controller.SwipeRight()
	}
	return nil
}

// DragSample forwards a drag delta to the controller unless the stack is
// empty.
func (s *Stack[T]) DragSample(dx, dy float64) bool {
	if s.IsEmpty() {
		return false
	}
	return s.controller.DragSample(offset(dx, dy))
}

// DragRelease forwards a release to the controller unless the stack is
// empty.
func (s *Stack[T]) DragRelease(vx, vy float64) Decision {
	if s.IsEmpty() {
		return DecisionIgnored
	}
	return s.controller.DragRelease(offset(vx, vy))
}

func (s *Stack[T]) handleOutcome(dir Direction) {
	if s.IsEmpty() {
		errors.Report(errors.Errorf("cardstack.Stack.handleOutcome", errors.KindEmptyStack,
			"%s swipe committed with no top card: %w", dir, errors.ErrEmptyStack))
		return
	}

	item := s.items[s.current]
	ordinal := len(s.items) - s.current
	s.log.V(1).Info("item swiped", "index", s.current, "ordinal", ordinal, "direction", dir)
	s.callItemSwiped(item, ordinal, dir)

	s.current--
	if s.current < 0 && !s.exhausted {
		s.exhausted = true
		s.log.Info("stack exhausted", "items", len(s.items))
		s.callStackExhausted(s.items[len(s.items)-1])
	}
}

func (s *Stack[T]) callItemSwiped(item T, ordinal int, dir Direction) {
	if s.onItemSwiped == nil {
		return
	}
	defer errors.RecoverCallback("cardstack.Stack.OnItemSwiped")
	s.onItemSwiped(item, ordinal, dir)
}

func (s *Stack[T]) callStackExhausted(last T) {
	if s.onStackExhausted == nil {
		return
	}
	defer errors.RecoverCallback("cardstack.Stack.OnStackExhausted")
	s.onStackExhausted(last)
}

// Dispose unsubscribes the stack from its controller.
func (s *Stack[T]) Dispose() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
