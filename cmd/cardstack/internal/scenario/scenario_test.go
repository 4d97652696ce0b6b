package scenario

import (
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/cardstack/pkg/animation"
	"github.com/go-drift/cardstack/pkg/cardstack"
)

func TestLoad_Basic(t *testing.T) {
	s, err := Load("testdata/basic.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := len(s.Items), 3; got != want {
		t.Fatalf("items = %d, want %d", got, want)
	}
	if got, want := s.Items[1].String(), "Grace"; got != want {
		t.Errorf("items[1] = %q, want %q", got, want)
	}
	kinds := make([]string, len(s.Steps))
	for i, step := range s.Steps {
		kinds[i] = step.Kind()
	}
	want := []string{"drag", "release", "settle", "drag", "release", "pump", "settle", "swipe", "settle", "swipe", "settle"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("step kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("testdata/nope.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"empty", "", "scenario is empty"},
		{"no version", "stack: {screenWidth: 100}", "version is required"},
		{"bad version", "version: banana\nstack: {screenWidth: 100}", "not a valid semantic version"},
		{"future major", "version: 2.0.0\nstack: {screenWidth: 100}", "not supported"},
		{"no width", "version: 1.0.0", "screenWidth must be positive"},
		{"huge width", "version: 1.0.0\nstack: {screenWidth: 1e9}", "must be at most"},
		{"infinite width", "version: 1.0.0\nstack: {screenWidth: .inf}", "must be at most"},
		{"nan width", "version: 1.0.0\nstack: {screenWidth: .nan}", "must be positive"},
		{"negative velocity", "version: 1.0.0\nstack: {screenWidth: 100, velocityThreshold: -5}", "must not be negative"},
		{"unknown field", "version: 1.0.0\nstack: {screenWidth: 100, speed: 3}", "failed to parse"},
		{"both thresholds", "version: 1.0.0\nstack: {screenWidth: 100, threshold: {fraction: 0.3, fixedDp: 40}}", "not both"},
		{"fraction range", "version: 1.0.0\nstack: {screenWidth: 100, threshold: {fraction: 1.5}}", "within [0, 1]"},
		{"animation type", "version: 1.0.0\nstack: {screenWidth: 100, animation: {type: bounce}}", "unknown type"},
		{"tween duration", "version: 1.0.0\nstack: {screenWidth: 100, animation: {type: tween, duration: soon}}", "duration"},
		{"tween curve", "version: 1.0.0\nstack: {screenWidth: 100, animation: {type: tween, duration: 1s, curve: wobble}}", "unknown curve"},
		{"empty step", "version: 1.0.0\nstack: {screenWidth: 100}\nsteps: [{}]", "steps[0]: step has no action"},
		{"two actions", "version: 1.0.0\nstack: {screenWidth: 100}\nsteps: [{settle: true, swipe: left}]", "more than one action"},
		{"bad direction", "version: 1.0.0\nstack: {screenWidth: 100}\nsteps: [{swipe: up}]", "unknown swipe direction"},
		{"bad pump", "version: 1.0.0\nstack: {screenWidth: 100}\nsteps: [{pump: -1s}]", "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("Parse succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_VersionWithoutPrefix(t *testing.T) {
	for _, v := range []string{"1.0.0", "v1.2.3", "1.4.0-beta.1"} {
		doc := "version: " + v + "\nstack: {screenWidth: 100}"
		if _, err := Parse([]byte(doc)); err != nil {
			t.Errorf("version %s: %v", v, err)
		}
	}
}

func TestControllerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := &Scenario{Version: "1.0.0", Stack: StackConfig{ScreenWidth: 1000}}
		cfg, err := s.ControllerConfig()
		if err != nil {
			t.Fatal(err)
		}
		if got, want := cfg.ScreenWidth, 1000.0; got != want {
			t.Errorf("ScreenWidth = %v, want %v", got, want)
		}
		if _, ok := cfg.Animation.(animation.SpringSpec); !ok {
			t.Errorf("Animation = %T, want SpringSpec", cfg.Animation)
		}
		if got, want := cfg.VelocityThreshold, cardstack.DefaultVelocityThreshold; got != want {
			t.Errorf("VelocityThreshold = %v, want %v", got, want)
		}
	})

	t.Run("fixed threshold", func(t *testing.T) {
		s := &Scenario{Stack: StackConfig{
			ScreenWidth: 1000,
			Density:     2,
			Threshold:   ThresholdConfig{FixedDP: 60},
		}}
		cfg, err := s.ControllerConfig()
		if err != nil {
			t.Fatal(err)
		}
		got, err := cardstack.ComputeThreshold(0, -1000, cfg.Threshold, cfg.Density)
		if err != nil {
			t.Fatal(err)
		}
		if got != 120 {
			t.Errorf("threshold = %v, want 120", got)
		}
	})

	t.Run("tween", func(t *testing.T) {
		s := &Scenario{Stack: StackConfig{
			ScreenWidth: 500,
			Animation:   AnimationConfig{Type: "tween", Duration: "250ms"},
		}}
		cfg, err := s.ControllerConfig()
		if err != nil {
			t.Fatal(err)
		}
		tween, ok := cfg.Animation.(animation.TweenSpec)
		if !ok {
			t.Fatalf("Animation = %T, want TweenSpec", cfg.Animation)
		}
		if tween.Duration != 250*time.Millisecond {
			t.Errorf("Duration = %v", tween.Duration)
		}
	})

	t.Run("spring overrides", func(t *testing.T) {
		s := &Scenario{Stack: StackConfig{
			ScreenWidth: 500,
			Animation:   AnimationConfig{Frequency: 20, Damping: 0.5},
		}}
		cfg, err := s.ControllerConfig()
		if err != nil {
			t.Fatal(err)
		}
		spring := cfg.Animation.(animation.SpringSpec)
		if spring.Frequency != 20 || spring.Damping != 0.5 {
			t.Errorf("spring = %+v", spring)
		}
	})
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Drag: &Vector{X: -250}}, "drag -250,+0"},
		{Step{Release: &Vector{X: 900, Y: -10}}, "release +900,-10 px/s"},
		{Step{Swipe: "left"}, "swipe left"},
		{Step{Pump: "80ms"}, "pump 80ms"},
		{Step{Settle: true}, "settle"},
		{Step{}, "empty"},
	}
	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRunner_Basic(t *testing.T) {
	s, err := Load("testdata/basic.yaml")
	if err != nil {
		t.Fatal(err)
	}
	runner, err := NewRunner(s, logr.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer runner.Close()

	type row struct {
		Kind     string
		Decision cardstack.Decision
		Applied  bool
		Index    int
		Phase    cardstack.Phase
		Events   []string
	}
	var got []row
	runner.Run(-1, func(res StepResult) {
		if res.Err != nil {
			t.Errorf("step %d (%s): %v", res.Index, res.Step, res.Err)
		}
		got = append(got, row{res.Step.Kind(), res.Decision, res.Applied, res.CurrentIndex, res.Phase, res.Events})
	})

	want := []row{
		{"drag", cardstack.DecisionIgnored, true, 2, cardstack.PhaseDragging, nil},
		{"release", cardstack.DecisionSwipeLeft, true, 2, cardstack.PhaseCommitting, nil},
		{"settle", cardstack.DecisionIgnored, true, 1, cardstack.PhaseIdle, []string{"swiped:left"}},
		{"drag", cardstack.DecisionIgnored, true, 1, cardstack.PhaseDragging, nil},
		{"release", cardstack.DecisionReturnToCenter, true, 1, cardstack.PhaseSettling, nil},
		{"pump", cardstack.DecisionIgnored, true, 1, cardstack.PhaseSettling, nil},
		{"settle", cardstack.DecisionIgnored, true, 1, cardstack.PhaseIdle, nil},
		{"swipe", cardstack.DecisionIgnored, true, 1, cardstack.PhaseCommitting, nil},
		{"settle", cardstack.DecisionIgnored, true, 0, cardstack.PhaseIdle, []string{"swiped:right"}},
		{"swipe", cardstack.DecisionIgnored, true, 0, cardstack.PhaseCommitting, nil},
		{"settle", cardstack.DecisionIgnored, true, -1, cardstack.PhaseIdle, []string{"swiped:left", "exhausted"}},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b []string) bool {
		return strings.Join(a, ",") == strings.Join(b, ",")
	})); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	if !runner.Done() {
		t.Error("runner not done")
	}
	if !runner.Exhausted() {
		t.Error("stack not exhausted")
	}
	if _, ok := runner.Next(); ok {
		t.Error("Next after Done returned a step")
	}
}

func TestRunner_PartialRun(t *testing.T) {
	s, err := Load("testdata/basic.yaml")
	if err != nil {
		t.Fatal(err)
	}
	runner, err := NewRunner(s, logr.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer runner.Close()

	n := 0
	runner.Run(3, func(StepResult) { n++ })
	if n != 3 {
		t.Fatalf("ran %d steps, want 3", n)
	}
	if got := runner.Stack().CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex = %d, want 1", got)
	}
	if runner.Done() {
		t.Error("runner done after a partial run")
	}
}

func TestRunner_SwipeWhileBusy(t *testing.T) {
	s, err := Parse([]byte(`
version: 1.0.0
stack:
  screenWidth: 1000
  animation: {type: tween, duration: 160ms}
items: [{id: a}, {id: b}]
steps:
  - swipe: left
  - swipe: right
  - settle: true
`))
	if err != nil {
		t.Fatal(err)
	}
	runner, err := NewRunner(s, logr.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer runner.Close()

	var results []StepResult
	runner.Run(-1, func(res StepResult) { results = append(results, res) })
	if results[0].Err != nil {
		t.Fatalf("first swipe: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Fatal("second swipe succeeded while the first was animating")
	}
	if got, want := results[2].Events, []string{"swiped:left"}; !cmp.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}
