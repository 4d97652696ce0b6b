package cardstack

import (
	"github.com/go-drift/cardstack/pkg/gestures"
	"github.com/go-drift/cardstack/pkg/graphics"
)

// Draggable wires a horizontal drag recognizer to c. Drags only start
// while the controller is idle and canDrag (if non-nil) allows it; a
// cancelled drag is released with zero velocity so the card settles.
func Draggable(c *Controller, canDrag func() bool) *gestures.HorizontalDragRecognizer {
	r := gestures.NewHorizontalDragRecognizer(c.Scheduler().Clock())
	r.CanStart = func() bool {
		if c.IsAnimating() {
			return false
		}
		return canDrag == nil || canDrag()
	}
	r.OnUpdate = func(d gestures.DragUpdateDetails) {
		c.DragSample(d.Delta)
	}
	r.OnEnd = func(d gestures.DragEndDetails) {
		c.DragRelease(d.Velocity)
	}
	r.OnCancel = func() {
		c.DragRelease(graphics.Offset{})
	}
	return r
}

// Recognizer returns a drag recognizer driving the stack's controller that
// ignores pointers once the stack is empty.
func (s *Stack[T]) Recognizer() *gestures.HorizontalDragRecognizer {
	return Draggable(s.controller, func() bool { return !s.IsEmpty() })
}
