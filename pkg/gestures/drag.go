package gestures

import (
	"math"
	"time"

	"github.com/go-drift/cardstack/pkg/animation"
	"github.com/go-drift/cardstack/pkg/graphics"
)

// HorizontalDragRecognizer recognizes drags whose dominant axis is
// horizontal. Updates carry the full 2D delta so the card can follow the
// finger, but acceptance and the primary values are horizontal.
//
// The recognizer tracks one pointer at a time; a second pointer going down
// while a drag is active is ignored.
type HorizontalDragRecognizer struct {
	// Clock timestamps samples for velocity estimation. Nil uses system time.
	Clock animation.Clock
	// Slop is the recognition distance. Zero uses DefaultTouchSlop.
	Slop float64
	// CanStart is consulted on pointer down; returning false ignores the
	// pointer entirely.
	CanStart func() bool

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	pointer  int64           // current pointer being tracked
	tracking bool            // true between an accepted down and up/cancel
	start    graphics.Offset // initial touch position
	last     graphics.Offset // most recent touch position
	lastTime time.Time       // timestamp of last update (for velocity)
	velocity graphics.Offset // smoothed velocity in pixels/second
	accepted bool            // true once the drag is recognized
}

// NewHorizontalDragRecognizer creates a recognizer reading time from clock.
func NewHorizontalDragRecognizer(clock animation.Clock) *HorizontalDragRecognizer {
	return &HorizontalDragRecognizer{Clock: clock}
}

// IsActive returns true while a pointer is being tracked.
func (r *HorizontalDragRecognizer) IsActive() bool {
	return r.tracking
}

// IsDragging returns true once the tracked pointer has been recognized as a drag.
func (r *HorizontalDragRecognizer) IsDragging() bool {
	return r.tracking && r.accepted
}

// HandleEvent feeds one pointer event to the recognizer.
func (r *HorizontalDragRecognizer) HandleEvent(event PointerEvent) {
	if event.Phase == PointerPhaseDown {
		r.addPointer(event)
		return
	}
	if !r.tracking || event.PointerID != r.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.handleMove(event)
	case PointerPhaseUp:
		r.handleUp(event)
	case PointerPhaseCancel:
		r.handleCancel()
	}
}

func (r *HorizontalDragRecognizer) addPointer(event PointerEvent) {
	if r.tracking {
		return
	}
	if r.CanStart != nil && !r.CanStart() {
		return
	}
	r.pointer = event.PointerID
	r.tracking = true
	r.start = event.Position
	r.last = event.Position
	r.lastTime = r.now()
	r.velocity = graphics.Offset{}
	r.accepted = false
}

// handleMove accepts the drag once horizontal travel exceeds the slop and
// tracks velocity for fling detection.
func (r *HorizontalDragRecognizer) handleMove(event PointerEvent) {
	now := r.now()
	dt := now.Sub(r.lastTime).Seconds()

	// Exponential smoothing keeps fling detection stable across noisy samples.
	if dt > 0 {
		inst := event.Position.Sub(r.last).Scale(1 / dt)
		r.velocity = r.velocity.Scale(0.8).Add(inst.Scale(0.2))
	}

	from := r.last
	if !r.accepted {
		total := event.Position.Sub(r.start)
		primary := math.Abs(total.X)
		orthogonal := math.Abs(total.Y)
		if primary > r.slop() && primary >= orthogonal {
			r.accepted = true
			if r.OnStart != nil {
				r.OnStart(DragStartDetails{Position: r.start})
			}
			// The first update carries the travel made inside the slop so
			// the card ends up exactly under the finger.
			from = r.start
		} else if orthogonal > r.slop() {
			// Vertical movement dominant: not ours.
			r.tracking = false
			return
		}
	}

	delta := event.Position.Sub(from)
	if r.accepted && r.OnUpdate != nil {
		r.OnUpdate(DragUpdateDetails{
			Position:     event.Position,
			Delta:        delta,
			PrimaryDelta: delta.X,
		})
	}

	r.last = event.Position
	r.lastTime = now
}

func (r *HorizontalDragRecognizer) handleUp(event PointerEvent) {
	accepted := r.accepted
	r.tracking = false
	r.accepted = false
	if accepted && r.OnEnd != nil {
		r.OnEnd(DragEndDetails{
			Position:        event.Position,
			Velocity:        r.velocity,
			PrimaryVelocity: r.velocity.X,
		})
	}
}

func (r *HorizontalDragRecognizer) handleCancel() {
	accepted := r.accepted
	r.tracking = false
	r.accepted = false
	if accepted && r.OnCancel != nil {
		r.OnCancel()
	}
}

func (r *HorizontalDragRecognizer) slop() float64 {
	if r.Slop > 0 {
		return r.Slop
	}
	return DefaultTouchSlop
}

func (r *HorizontalDragRecognizer) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock.Now()
}
