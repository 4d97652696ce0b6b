package testing

import "github.com/go-drift/cardstack/pkg/cardstack"

// SwipeRecord is one OnItemSwiped invocation.
type SwipeRecord[T any] struct {
	Item      T
	Ordinal   int
	Direction cardstack.Direction
}

// Recorder captures host callbacks in the order they ran.
type Recorder[T any] struct {
	swipes    []SwipeRecord[T]
	exhausted []T
	events    []string
}

// Options returns stack options that record into r.
func (r *Recorder[T]) Options() cardstack.StackOptions[T] {
	return cardstack.StackOptions[T]{
		OnItemSwiped: func(item T, ordinal int, dir cardstack.Direction) {
			r.swipes = append(r.swipes, SwipeRecord[T]{Item: item, Ordinal: ordinal, Direction: dir})
			r.events = append(r.events, "swiped:"+dir.String())
		},
		OnStackExhausted: func(last T) {
			r.exhausted = append(r.exhausted, last)
			r.events = append(r.events, "exhausted")
		},
	}
}

// Swipes returns every recorded swipe.
func (r *Recorder[T]) Swipes() []SwipeRecord[T] {
	return append([]SwipeRecord[T](nil), r.swipes...)
}

// Exhausted returns the item passed to every OnStackExhausted call.
func (r *Recorder[T]) Exhausted() []T {
	return append([]T(nil), r.exhausted...)
}

// Events returns a compact log of callbacks, e.g. "swiped:left",
// "exhausted".
func (r *Recorder[T]) Events() []string {
	return append([]string(nil), r.events...)
}

// Reset clears everything recorded so far.
func (r *Recorder[T]) Reset() {
	r.swipes = nil
	r.exhausted = nil
	r.events = nil
}
