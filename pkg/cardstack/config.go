package cardstack

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/go-drift/cardstack/pkg/animation"
	"github.com/go-drift/cardstack/pkg/errors"
)

const (
	// DefaultThresholdFraction is the fraction of the screen width past
	// which a slow release commits.
	DefaultThresholdFraction = 0.2
	// DefaultVelocityThreshold is the fling speed in dp/s that commits
	// regardless of distance.
	DefaultVelocityThreshold = 125.0
	// DefaultDensity is the pixels-per-dp ratio used when none is set.
	DefaultDensity = 1.0
)

// Config configures a [Controller].
type Config struct {
	// ScreenWidth is the width of the host surface in pixels. It doubles
	// as the distance of the edge anchors from center. Must be positive.
	ScreenWidth float64

	// Density is pixels per density-independent pixel. Zero uses
	// DefaultDensity.
	Density float64

	// Threshold picks the positional threshold policy. Nil uses
	// Fractional(DefaultThresholdFraction).
	Threshold ThresholdFunc

	// VelocityThreshold is the fling speed in dp/s at or beyond which a
	// release commits regardless of distance. Zero means unset and uses
	// DefaultVelocityThreshold, so a zero threshold cannot be expressed;
	// it would make every release at rest a swipe. Use a small positive
	// value for the most sensitive setting.
	VelocityThreshold float64

	// Animation drives swipes and settles. Nil uses animation.DefaultSpring.
	Animation animation.Spec

	// Scheduler steps the controller's animations. Nil creates a private
	// scheduler on the system clock, which the host must still Step.
	Scheduler *animation.Scheduler

	// Logger receives phase transitions at V(1) and committed swipes at
	// V(0). The zero value discards.
	Logger logr.Logger
}

// DefaultConfig returns the stock configuration for a surface screenWidth
// pixels wide.
func DefaultConfig(screenWidth float64) Config {
	return Config{
		ScreenWidth:       screenWidth,
		Density:           DefaultDensity,
		Threshold:         Fractional(DefaultThresholdFraction),
		VelocityThreshold: DefaultVelocityThreshold,
		Animation:         animation.DefaultSpring(),
	}
}

// Validate reports the first invalid field as a KindConfig error.
func (c Config) Validate() error {
	if err := validateScreenWidth("cardstack.Config.Validate", c.ScreenWidth); err != nil {
		return err
	}
	if c.Density < 0 || math.IsNaN(c.Density) || math.IsInf(c.Density, 0) {
		return errors.Errorf("cardstack.Config.Validate", errors.KindConfig,
			"density must be a finite non-negative number, got %v", c.Density)
	}
	if c.VelocityThreshold < 0 || math.IsNaN(c.VelocityThreshold) || math.IsInf(c.VelocityThreshold, 0) {
		return errors.Errorf("cardstack.Config.Validate", errors.KindConfig,
			"velocity threshold must be a finite non-negative number, got %v", c.VelocityThreshold)
	}
	return nil
}

// withDefaults fills zero fields.
func (c Config) withDefaults() Config {
	if c.Density == 0 {
		c.Density = DefaultDensity
	}
	if c.Threshold == nil {
		c.Threshold = Fractional(DefaultThresholdFraction)
	}
	if c.VelocityThreshold == 0 {
		c.VelocityThreshold = DefaultVelocityThreshold
	}
	if c.Animation == nil {
		c.Animation = animation.DefaultSpring()
	}
	if c.Scheduler == nil {
		c.Scheduler = animation.NewScheduler(nil)
	}
	if c.Logger.GetSink() == nil {
		c.Logger = logr.Discard()
	}
	return c
}

// VelocityThresholdPx returns the velocity threshold in px/s.
func (c Config) VelocityThresholdPx() float64 {
	density := c.Density
	if density == 0 {
		density = DefaultDensity
	}
	velocity := c.VelocityThreshold
	if velocity == 0 {
		velocity = DefaultVelocityThreshold
	}
	return velocity * density
}

func validateScreenWidth(op string, width float64) error {
	if !(width > 0) || math.IsInf(width, 0) {
		return errors.Errorf(op, errors.KindConfig,
			"screen width must be a finite positive number, got %v", width)
	}
	return nil
}
