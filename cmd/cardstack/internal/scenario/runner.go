package scenario

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/go-drift/cardstack/pkg/cardstack"
	stacktest "github.com/go-drift/cardstack/pkg/testing"
)

// SettleTimeout bounds a settle step.
const SettleTimeout = 30 * time.Second

// StepResult describes what one step did.
type StepResult struct {
	Index int
	Step  Step
	// Decision is set for release steps.
	Decision cardstack.Decision
	// Applied is false for drag samples the controller dropped.
	Applied bool
	// Err is set for rejected swipes and settle timeouts.
	Err          error
	CurrentIndex int
	Phase        cardstack.Phase
	// Events lists the host callbacks fired during the step.
	Events []string
}

// Runner replays a scenario against a stack on a deterministic clock.
type Runner struct {
	scenario *Scenario
	tester   *stacktest.StackTester[Item]
	next     int
}

// NewRunner builds the controller and the stack a scenario describes.
func NewRunner(s *Scenario, logger logr.Logger) (*Runner, error) {
	cfg, err := s.ControllerConfig()
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger
	tester, err := stacktest.NewStackTester(s.Items, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build stack: %w", err)
	}
	return &Runner{scenario: s, tester: tester}, nil
}

// Stack returns the stack being driven.
func (r *Runner) Stack() *cardstack.Stack[Item] {
	return r.tester.Stack()
}

// Controller returns the controller being driven.
func (r *Runner) Controller() *cardstack.Controller {
	return r.tester.Controller()
}

// Exhausted reports whether OnStackExhausted has fired.
func (r *Runner) Exhausted() bool {
	return len(r.tester.Recorder().Exhausted()) > 0
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.next >= len(r.scenario.Steps)
}

// Next runs the next step.
func (r *Runner) Next() (StepResult, bool) {
	if r.Done() {
		return StepResult{}, false
	}
	i := r.next
	r.next++
	return r.run(i, r.scenario.Steps[i]), true
}

// Run runs up to n steps (all remaining when n < 0), calling fn after each.
func (r *Runner) Run(n int, fn func(StepResult)) {
	for ran := 0; n < 0 || ran < n; ran++ {
		res, ok := r.Next()
		if !ok {
			return
		}
		if fn != nil {
			fn(res)
		}
	}
}

func (r *Runner) run(i int, step Step) StepResult {
	stack := r.tester.Stack()
	before := len(r.tester.Recorder().Events())
	res := StepResult{Index: i, Step: step, Applied: true}

	switch step.Kind() {
	case "drag":
		res.Applied = stack.DragSample(step.Drag.X, step.Drag.Y)
	case "release":
		res.Decision = stack.DragRelease(step.Release.X, step.Release.Y)
	case "swipe":
		dir, _ := ParseDirection(step.Swipe)
		if dir == cardstack.Left {
			res.Err = stack.SwipeLeft()
		} else {
			res.Err = stack.SwipeRight()
		}
	case "pump":
		frames := int(step.PumpDuration() / stacktest.FrameDuration)
		r.tester.PumpFrames(max(frames, 1))
	case "settle":
		res.Err = r.tester.PumpAndSettle(SettleTimeout)
	}

	res.CurrentIndex = stack.CurrentIndex()
	res.Phase = r.tester.Controller().Phase()
	res.Events = r.tester.Recorder().Events()[before:]
	return res
}

// Close releases the stack and controller.
func (r *Runner) Close() {
	r.tester.Dispose()
}
