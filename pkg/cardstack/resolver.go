package cardstack

import "math"

// Visual ranges derived from the top card's horizontal offset.
const (
	// MaxRotation is the rotation in degrees reached when the top card is
	// a full screen width away from center.
	MaxRotation = 10.0
	// RestingScale is the scale of the card under the top card at rest.
	RestingScale = 0.8
	// FullScale is the scale the card under the top card grows to.
	FullScale = 1.0
	// scaleReachFraction is the fraction of the screen width over which
	// the card underneath grows to full scale.
	scaleReachFraction = 1.0 / 3.0
)

// DragResolver converts a horizontal offset into visual feedback and a
// released drag into a decision. The zero value is unusable; the controller
// keeps one in sync with its configuration.
type DragResolver struct {
	// ScreenWidth is the distance from center to either edge anchor, px.
	ScreenWidth float64
	// Threshold is the positional commit distance, px.
	Threshold float64
	// VelocityThreshold is the fling speed that commits regardless of
	// distance, px/s.
	VelocityThreshold float64
}

// Rotation returns the top card's rotation in degrees for offsetX: linear
// in |offsetX| up to MaxRotation at a full screen width, signed opposite to
// the drag.
func (r DragResolver) Rotation(offsetX float64) float64 {
	magnitude := normalize(0, r.ScreenWidth, math.Abs(offsetX), 0, MaxRotation)
	return sign(-offsetX) * magnitude
}

// Scale returns the scale of the card underneath for offsetX, growing from
// RestingScale to FullScale over the first third of the screen width.
func (r DragResolver) Scale(offsetX float64) float64 {
	return normalize(0, r.ScreenWidth*scaleReachFraction, math.Abs(offsetX), RestingScale, FullScale)
}

// Resolve decides what a release at offsetX with horizontal velocity
// velocityX commits to. A fast enough flick always swipes in its direction
// of displacement; otherwise the card swipes only past the threshold.
func (r DragResolver) Resolve(offsetX, velocityX float64) Decision {
	if offsetX <= 0 {
		if velocityX <= -r.VelocityThreshold {
			return DecisionSwipeLeft
		}
		if offsetX > -r.Threshold {
			return DecisionReturnToCenter
		}
		return DecisionSwipeLeft
	}
	if velocityX >= r.VelocityThreshold {
		return DecisionSwipeRight
	}
	if offsetX < r.Threshold {
		return DecisionReturnToCenter
	}
	return DecisionSwipeRight
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
