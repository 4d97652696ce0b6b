package cardstack

import "fmt"

// Direction is the side a card was swiped to.
type Direction int

const (
	// DirectionNone is the zero value, used when no swipe is in flight.
	DirectionNone Direction = iota
	// Left means the card left through the left edge.
	Left
	// Right means the card left through the right edge.
	Right
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// sign returns -1 for Left and +1 for Right.
func (d Direction) sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// Decision is the outcome the resolver picks for a released drag.
type Decision int

const (
	// DecisionIgnored means the release arrived while an animation was in
	// flight and was dropped.
	DecisionIgnored Decision = iota
	// DecisionReturnToCenter settles the card back to center.
	DecisionReturnToCenter
	// DecisionSwipeLeft commits a swipe through the left edge.
	DecisionSwipeLeft
	// DecisionSwipeRight commits a swipe through the right edge.
	DecisionSwipeRight
)

func (d Decision) String() string {
	switch d {
	case DecisionIgnored:
		return "ignored"
	case DecisionReturnToCenter:
		return "return-to-center"
	case DecisionSwipeLeft:
		return "swipe-left"
	case DecisionSwipeRight:
		return "swipe-right"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Phase is the controller's position in its gesture/animation cycle.
//
//	            DragSample            DragRelease / Swipe*
//	  Idle ───────────────► Dragging ─────────────────────► Committing(dir)
//	   ▲  ▲                    │                                 │
//	   │  │   ReturnToCenter   ▼                                 │ outcome, then reset
//	   │  └──────────────── Settling                             │
//	   └─────────────────────────────────────────────────────────┘
type Phase int

const (
	// PhaseIdle means the top card rests at center.
	PhaseIdle Phase = iota
	// PhaseDragging means drag samples are moving the top card.
	PhaseDragging
	// PhaseCommitting means the top card is animating off screen.
	PhaseCommitting
	// PhaseSettling means the card is animating back to center.
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	case PhaseSettling:
		return "settling"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
