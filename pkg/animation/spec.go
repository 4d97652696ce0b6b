package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spec describes how an animated value travels from its current value to a
// target. Implementations are immutable and may be shared between values.
type Spec interface {
	// Simulate starts a new run from one value to another.
	Simulate(from, to float64) Simulation
}

// Simulation is a single run of a [Spec].
type Simulation interface {
	// At returns the value after elapsed time and whether the run has
	// finished. Once finished, the returned value is exactly the target.
	// Elapsed values are non-decreasing across calls.
	At(elapsed time.Duration) (value float64, done bool)
}

// TweenSpec animates over a fixed Duration through an easing Curve.
type TweenSpec struct {
	Duration time.Duration
	// Curve transforms linear progress. Nil means [LinearCurve].
	Curve func(float64) float64
}

// Simulate implements [Spec].
func (s TweenSpec) Simulate(from, to float64) Simulation {
	return &tweenSimulation{spec: s, from: from, to: to}
}

type tweenSimulation struct {
	spec     TweenSpec
	from, to float64
}

func (t *tweenSimulation) At(elapsed time.Duration) (float64, bool) {
	if t.spec.Duration <= 0 {
		return t.to, true
	}

	progress := float64(elapsed) / float64(t.spec.Duration)
	if progress >= 1.0 {
		return t.to, true
	}
	if progress < 0 {
		progress = 0
	}

	eased := progress
	if t.spec.Curve != nil {
		eased = t.spec.Curve(progress)
	}
	return Lerp(t.from, t.to, eased), false
}

// SpringSpec animates along a damped harmonic spring until it comes to rest.
//
// Frequency is the angular frequency in radians per second (higher is
// stiffer). Damping is the damping ratio: 1 is critically damped, below 1
// overshoots, above 1 is sluggish. Tolerance is the rest threshold as a
// fraction of the travelled distance.
type SpringSpec struct {
	Frequency float64
	Damping   float64
	Tolerance float64
}

// Default spring parameters. The frequency is the square root of a
// medium stiffness (1500), critically damped.
const (
	DefaultSpringFrequency = 38.7
	DefaultSpringDamping   = 1.0
	DefaultSpringTolerance = 0.001
)

// springFPS is the fixed integration rate used to step springs.
const springFPS = 240

// maxSpringDuration bounds a spring run that never reaches rest.
const maxSpringDuration = 10 * time.Second

// DefaultSpring returns the spring used when no animation is configured.
func DefaultSpring() SpringSpec {
	return SpringSpec{
		Frequency: DefaultSpringFrequency,
		Damping:   DefaultSpringDamping,
		Tolerance: DefaultSpringTolerance,
	}
}

// Simulate implements [Spec].
func (s SpringSpec) Simulate(from, to float64) Simulation {
	freq := s.Frequency
	if freq <= 0 {
		freq = DefaultSpringFrequency
	}
	damping := s.Damping
	if damping <= 0 {
		damping = DefaultSpringDamping
	}
	tolerance := s.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultSpringTolerance
	}
	return &springSimulation{
		spring:    harmonica.NewSpring(harmonica.FPS(springFPS), freq, damping),
		step:      time.Second / springFPS,
		pos:       from,
		to:        to,
		restPos:   math.Max(math.Abs(to-from)*tolerance, 1e-6),
		frequency: freq,
	}
}

type springSimulation struct {
	spring    harmonica.Spring
	step      time.Duration
	pos, vel  float64
	to        float64
	restPos   float64
	frequency float64
	stepped   time.Duration
	done      bool
}

func (s *springSimulation) At(elapsed time.Duration) (float64, bool) {
	if s.done {
		return s.to, true
	}
	if elapsed > maxSpringDuration {
		elapsed = maxSpringDuration
	}
	for s.stepped+s.step <= elapsed {
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.to)
		s.stepped += s.step
		if s.atRest() {
			s.done = true
			return s.to, true
		}
	}
	if s.stepped+s.step > maxSpringDuration {
		s.done = true
		return s.to, true
	}
	return s.pos, false
}

func (s *springSimulation) atRest() bool {
	return math.Abs(s.pos-s.to) <= s.restPos && math.Abs(s.vel) <= s.restPos*s.frequency
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
