// Package gestures turns raw pointer events into drag callbacks for the card
// stack.
package gestures

import (
	"fmt"

	"github.com/go-drift/cardstack/pkg/graphics"
)

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is the first contact of a pointer.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change while in contact.
	PointerPhaseMove
	// PointerPhaseUp is the pointer leaving the surface.
	PointerPhaseUp
	// PointerPhaseCancel means the platform took the pointer away.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample in logical pixels.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}

// DefaultTouchSlop is the distance in logical pixels a pointer must travel
// before a drag is recognized.
const DefaultTouchSlop = 8.0

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	Position graphics.Offset
}

// DragUpdateDetails describes a drag update.
type DragUpdateDetails struct {
	Position     graphics.Offset
	Delta        graphics.Offset
	PrimaryDelta float64
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	Position        graphics.Offset
	Velocity        graphics.Offset
	PrimaryVelocity float64
}
