// Package scenario loads card stack scenarios: a stack configuration, the
// items on it and a script of gestures to replay against it.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/cardstack/pkg/animation"
	"github.com/go-drift/cardstack/pkg/cardstack"
)

// SupportedMajor is the scenario format major version this build reads.
const SupportedMajor = "v1"

// Scenario is a parsed scenario file.
type Scenario struct {
	Version string      `yaml:"version"`
	Stack   StackConfig `yaml:"stack"`
	Items   []Item      `yaml:"items"`
	Steps   []Step      `yaml:"steps"`
}

// MaxScreenWidth bounds stack.screenWidth so the rendered canvas stays a
// reasonable size.
const MaxScreenWidth = 16384

// StackConfig mirrors cardstack.Config in file form.
type StackConfig struct {
	ScreenWidth       float64         `yaml:"screenWidth"`
	Density           float64         `yaml:"density,omitempty"`
	Threshold         ThresholdConfig `yaml:"threshold,omitempty"`
	// VelocityThreshold in dp/s. Zero or absent uses
	// cardstack.DefaultVelocityThreshold.
	VelocityThreshold float64         `yaml:"velocityThreshold,omitempty"`
	Animation         AnimationConfig `yaml:"animation,omitempty"`
}

// ThresholdConfig sets at most one of a fraction of the screen width or a
// fixed distance in dp.
type ThresholdConfig struct {
	Fraction float64 `yaml:"fraction,omitempty"`
	FixedDP  float64 `yaml:"fixedDp,omitempty"`
}

// AnimationConfig picks the swipe/settle animation.
type AnimationConfig struct {
	// Type is "spring" (default) or "tween".
	Type      string  `yaml:"type,omitempty"`
	Duration  string  `yaml:"duration,omitempty"`
	Curve     string  `yaml:"curve,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
}

// Item is one card.
type Item struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	URL      string `yaml:"url,omitempty"`
}

func (i Item) String() string {
	if i.Title != "" {
		return i.Title
	}
	return i.ID
}

// Vector is a pair of horizontal and vertical components.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y,omitempty"`
}

// Step is one scripted action. Exactly one field is set.
type Step struct {
	// Drag moves the top card by a delta in px.
	Drag *Vector `yaml:"drag,omitempty"`
	// Release ends the drag with a velocity in px/s.
	Release *Vector `yaml:"release,omitempty"`
	// Swipe is a programmatic swipe: "left" or "right".
	Swipe string `yaml:"swipe,omitempty"`
	// Pump advances the clock frame by frame for a duration, e.g. "100ms".
	Pump string `yaml:"pump,omitempty"`
	// Settle pumps until no animation is in flight.
	Settle bool `yaml:"settle,omitempty"`
}

// Kind names the action a step performs.
func (s Step) Kind() string {
	switch {
	case s.Drag != nil:
		return "drag"
	case s.Release != nil:
		return "release"
	case s.Swipe != "":
		return "swipe"
	case s.Pump != "":
		return "pump"
	case s.Settle:
		return "settle"
	default:
		return ""
	}
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Drag != nil, s.Release != nil, s.Swipe != "", s.Pump != "", s.Settle} {
		if set {
			n++
		}
	}
	return n
}

// String renders the step the way it reads in a scenario file.
func (s Step) String() string {
	switch s.Kind() {
	case "drag":
		return fmt.Sprintf("drag %+g,%+g", s.Drag.X, s.Drag.Y)
	case "release":
		return fmt.Sprintf("release %+g,%+g px/s", s.Release.X, s.Release.Y)
	case "swipe":
		return "swipe " + s.Swipe
	case "pump":
		return "pump " + s.Pump
	case "settle":
		return "settle"
	default:
		return "empty"
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document. Unknown fields are
// rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenario is empty")
		}
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the version and every step.
func (s *Scenario) Validate() error {
	if err := validateVersion(s.Version); err != nil {
		return err
	}
	if w := s.Stack.ScreenWidth; math.IsNaN(w) || w <= 0 {
		return fmt.Errorf("stack.screenWidth must be positive, got %v", w)
	}
	if w := s.Stack.ScreenWidth; w > MaxScreenWidth {
		return fmt.Errorf("stack.screenWidth must be at most %d, got %v", MaxScreenWidth, w)
	}
	if v := s.Stack.VelocityThreshold; math.IsNaN(v) || v < 0 {
		return fmt.Errorf("stack.velocityThreshold must not be negative, got %v", v)
	}
	if s.Stack.Threshold.Fraction != 0 && s.Stack.Threshold.FixedDP != 0 {
		return fmt.Errorf("stack.threshold: set either fraction or fixedDp, not both")
	}
	if f := s.Stack.Threshold.Fraction; f < 0 || f > 1 {
		return fmt.Errorf("stack.threshold.fraction must be within [0, 1], got %v", f)
	}
	if _, err := s.Stack.Animation.spec(); err != nil {
		return err
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	return nil
}

func validateVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("version is required")
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("version %s is not supported (want %s.x.y)", v, SupportedMajor)
	}
	return nil
}

func (s Step) validate() error {
	switch s.actions() {
	case 0:
		return fmt.Errorf("step has no action")
	case 1:
	default:
		return fmt.Errorf("step sets more than one action")
	}
	if s.Swipe != "" {
		if _, err := ParseDirection(s.Swipe); err != nil {
			return err
		}
	}
	if s.Pump != "" {
		d, err := time.ParseDuration(s.Pump)
		if err != nil {
			return fmt.Errorf("pump: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("pump duration must be positive, got %s", s.Pump)
		}
	}
	return nil
}

// ParseDirection parses "left" or "right".
func ParseDirection(s string) (cardstack.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return cardstack.Left, nil
	case "right":
		return cardstack.Right, nil
	default:
		return cardstack.DirectionNone, fmt.Errorf("unknown swipe direction %q (expected left or right)", s)
	}
}

// PumpDuration returns the parsed pump duration of a pump step.
func (s Step) PumpDuration() time.Duration {
	d, _ := time.ParseDuration(s.Pump)
	return d
}

// ControllerConfig converts the stack section into a controller
// configuration.
func (s *Scenario) ControllerConfig() (cardstack.Config, error) {
	cfg := cardstack.DefaultConfig(s.Stack.ScreenWidth)
	if s.Stack.Density != 0 {
		cfg.Density = s.Stack.Density
	}
	if s.Stack.VelocityThreshold != 0 {
		cfg.VelocityThreshold = s.Stack.VelocityThreshold
	}
	switch {
	case s.Stack.Threshold.FixedDP != 0:
		cfg.Threshold = cardstack.Fixed(s.Stack.Threshold.FixedDP)
	case s.Stack.Threshold.Fraction != 0:
		cfg.Threshold = cardstack.Fractional(s.Stack.Threshold.Fraction)
	}
	spec, err := s.Stack.Animation.spec()
	if err != nil {
		return cardstack.Config{}, err
	}
	cfg.Animation = spec
	return cfg, cfg.Validate()
}

func (a AnimationConfig) spec() (animation.Spec, error) {
	switch strings.ToLower(a.Type) {
	case "", "spring":
		spring := animation.DefaultSpring()
		if a.Frequency != 0 {
			spring.Frequency = a.Frequency
		}
		if a.Damping != 0 {
			spring.Damping = a.Damping
		}
		if spring.Frequency <= 0 || spring.Damping <= 0 {
			return nil, fmt.Errorf("stack.animation: spring frequency and damping must be positive")
		}
		return spring, nil
	case "tween":
		d, err := time.ParseDuration(a.Duration)
		if err != nil {
			return nil, fmt.Errorf("stack.animation.duration: %w", err)
		}
		tween := animation.TweenSpec{Duration: d}
		if a.Curve != "" {
			curve, ok := animation.CurveByName(a.Curve)
			if !ok {
				return nil, fmt.Errorf("stack.animation.curve: unknown curve %q", a.Curve)
			}
			tween.Curve = curve
		}
		return tween, nil
	default:
		return nil, fmt.Errorf("stack.animation.type: unknown type %q (expected spring or tween)", a.Type)
	}
}
