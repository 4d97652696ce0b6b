package cardstack

import (
	"math"

	"github.com/go-drift/cardstack/pkg/errors"
)

// ThresholdConfig computes the distance from an anchor, in pixels, past
// which a released drag commits to the next anchor instead of returning.
type ThresholdConfig interface {
	ComputeThreshold(density, from, to float64) float64
}

// FractionalThreshold places the threshold at a fraction of the distance
// between the two anchors.
type FractionalThreshold float64

// ComputeThreshold implements [ThresholdConfig].
func (f FractionalThreshold) ComputeThreshold(_, from, to float64) float64 {
	return math.Abs(to-from) * float64(f)
}

// FixedThreshold places the threshold at a fixed distance in
// density-independent pixels from the starting anchor.
type FixedThreshold float64

// ComputeThreshold implements [ThresholdConfig].
func (f FixedThreshold) ComputeThreshold(density, _, _ float64) float64 {
	return float64(f) * density
}

// ThresholdFunc chooses the threshold policy for a pair of anchors.
type ThresholdFunc func(from, to float64) ThresholdConfig

// Fractional returns a ThresholdFunc using the same fraction for every
// anchor pair.
func Fractional(fraction float64) ThresholdFunc {
	return func(_, _ float64) ThresholdConfig { return FractionalThreshold(fraction) }
}

// Fixed returns a ThresholdFunc using the same fixed distance (dp) for
// every anchor pair.
func Fixed(dp float64) ThresholdFunc {
	return func(_, _ float64) ThresholdConfig { return FixedThreshold(dp) }
}

// ComputeThreshold returns the absolute pixel distance separating "return to
// center" from "commit to swipe" between the center anchor and an edge
// anchor under policy. A nil policy uses [DefaultThresholdFraction].
func ComputeThreshold(center, edge float64, policy ThresholdFunc, density float64) (float64, error) {
	if policy == nil {
		policy = Fractional(DefaultThresholdFraction)
	}
	cfg := policy(center, edge)
	if cfg == nil {
		return 0, errors.Errorf("cardstack.ComputeThreshold", errors.KindConfig,
			"threshold policy returned nil for anchors %v, %v", center, edge)
	}
	threshold := math.Abs(cfg.ComputeThreshold(density, center, edge))
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return 0, errors.Errorf("cardstack.ComputeThreshold", errors.KindConfig,
			"threshold is not finite: %v", threshold)
	}
	return threshold, nil
}
