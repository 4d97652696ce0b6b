package cardstack

import (
	"math"

	"github.com/go-drift/cardstack/pkg/errors"
)

// Normalize clamps v to [min, max] and rescales it linearly into
// [startRange, endRange].
//
// It fails with a KindConfig error wrapping [errors.ErrInvalidRange] when
// startRange >= endRange. It also rejects an empty domain (min >= max),
// which would otherwise divide by zero and return NaN; this is stricter
// than the range check alone.
func Normalize(min, max, v, startRange, endRange float64) (float64, error) {
	if !(startRange < endRange) {
		return 0, errors.Errorf("cardstack.Normalize", errors.KindConfig,
			"range [%v, %v]: %w", startRange, endRange, errors.ErrInvalidRange)
	}
	if !(min < max) {
		return 0, errors.Errorf("cardstack.Normalize", errors.KindConfig,
			"domain [%v, %v]: %w", min, max, errors.ErrInvalidRange)
	}
	return normalize(min, max, v, startRange, endRange), nil
}

// normalize is Normalize without validation, for ranges checked at
// configuration time.
func normalize(min, max, v, startRange, endRange float64) float64 {
	value := math.Min(math.Max(v, min), max)
	return (value-min)/(max-min)*(endRange-startRange) + startRange
}
