package testing

import (
	"time"

	"github.com/go-drift/cardstack/pkg/gestures"
	"github.com/go-drift/cardstack/pkg/graphics"
)

// DragSampleInterval is the time a Drag takes. The recognizer smooths
// velocity, so a one-sample drag this slow releases well under the default
// velocity threshold for any on-screen travel.
const DragSampleInterval = time.Second

// flingSteps is the number of move samples a Fling emits.
const flingSteps = 10

// Center returns the logical center of the test surface.
func (t *StackTester[T]) Center() graphics.Offset {
	return graphics.Offset{X: t.controller.ScreenWidth() / 2, Y: DefaultTestHeight / 2}
}

// Drag presses at the center, moves by (dx, dy) in a single slow sample
// and releases, so the decision is made on distance.
func (t *StackTester[T]) Drag(dx, dy float64) {
	start := t.Center()
	t.SendPointerDown(start)
	t.clock.Advance(DragSampleInterval)
	t.SendPointerMove(start.Add(graphics.Offset{X: dx, Y: dy}))
	t.SendPointerUp()
}

// Fling presses at the center, moves by (dx, dy) over duration in evenly
// spaced samples and releases. Short durations produce fast releases.
func (t *StackTester[T]) Fling(dx, dy float64, duration time.Duration) {
	start := t.Center()
	delta := graphics.Offset{X: dx, Y: dy}
	step := duration / flingSteps

	t.SendPointerDown(start)
	for i := 1; i <= flingSteps; i++ {
		t.clock.Advance(step)
		t.SendPointerMove(start.Add(delta.Scale(float64(i) / flingSteps)))
	}
	t.SendPointerUp()
}

// SendPointerDown presses a new pointer at pos.
func (t *StackTester[T]) SendPointerDown(pos graphics.Offset) {
	t.nextPointer++
	t.pointer = t.nextPointer
	t.position = pos
	t.down = true
	t.send(gestures.PointerPhaseDown, pos)
}

// SendPointerMove moves the pressed pointer to pos. It is a no-op with no
// pointer down.
func (t *StackTester[T]) SendPointerMove(pos graphics.Offset) {
	if !t.down {
		return
	}
	t.send(gestures.PointerPhaseMove, pos)
}

// SendPointerUp lifts the pressed pointer where it last was.
func (t *StackTester[T]) SendPointerUp() {
	if !t.down {
		return
	}
	t.down = false
	t.send(gestures.PointerPhaseUp, t.position)
}

// SendPointerCancel cancels the pressed pointer.
func (t *StackTester[T]) SendPointerCancel() {
	if !t.down {
		return
	}
	t.down = false
	t.send(gestures.PointerPhaseCancel, t.position)
}

func (t *StackTester[T]) send(phase gestures.PointerPhase, pos graphics.Offset) {
	delta := pos.Sub(t.position)
	t.position = pos
	t.drag.HandleEvent(gestures.PointerEvent{
		PointerID: t.pointer,
		Position:  pos,
		Delta:     delta,
		Phase:     phase,
	})
}
