package testing

import (
	"errors"
	"time"

	"github.com/go-drift/cardstack/pkg/animation"
	"github.com/go-drift/cardstack/pkg/cardstack"
	"github.com/go-drift/cardstack/pkg/gestures"
	"github.com/go-drift/cardstack/pkg/graphics"
)

const (
	// FrameDuration is the clock advance per pumped frame.
	FrameDuration = 16 * time.Millisecond
	// DefaultTestHeight is the logical height of the test surface; the
	// width comes from the controller configuration.
	DefaultTestHeight = 800
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: card stack did not settle")

// TestingT is the subset of *testing.T used by the harness, allowing test
// doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// StackTester drives a card stack on a fake clock. It owns the scheduler,
// the controller, the stack and a drag recognizer, and records every host
// callback.
type StackTester[T any] struct {
	clock      *FakeClock
	scheduler  *animation.Scheduler
	controller *cardstack.Controller
	stack      *cardstack.Stack[T]
	drag       *gestures.HorizontalDragRecognizer
	recorder   *Recorder[T]

	nextPointer int64
	pointer     int64
	position    graphics.Offset
	down        bool
}

// NewStackTester creates a tester over items. cfg.Scheduler is replaced by
// one driven by the tester's fake clock.
func NewStackTester[T any](items []T, cfg cardstack.Config) (*StackTester[T], error) {
	clk := NewFakeClock()
	sched := animation.NewScheduler(clk)
	cfg.Scheduler = sched

	controller, err := cardstack.NewController(cfg)
	if err != nil {
		return nil, err
	}
	recorder := &Recorder[T]{}
	stack := cardstack.NewStack(items, controller, recorder.Options())
	return &StackTester[T]{
		clock:      clk,
		scheduler:  sched,
		controller: controller,
		stack:      stack,
		drag:       stack.Recognizer(),
		recorder:   recorder,
	}, nil
}

// NewStackTesterWithT is NewStackTester failing t on configuration errors.
// This is the recommended constructor for tests.
func NewStackTesterWithT[T any](t TestingT, items []T, cfg cardstack.Config) *StackTester[T] {
	t.Helper()
	tester, err := NewStackTester(items, cfg)
	if err != nil {
		t.Fatalf("NewStackTester: %v", err)
		return nil
	}
	return tester
}

// Clock returns the fake clock for advancing time in tests.
func (t *StackTester[T]) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the scheduler stepping the controller.
func (t *StackTester[T]) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// Controller returns the controller under test.
func (t *StackTester[T]) Controller() *cardstack.Controller {
	return t.controller
}

// Stack returns the stack under test.
func (t *StackTester[T]) Stack() *cardstack.Stack[T] {
	return t.stack
}

// Recognizer returns the drag recognizer the pointer helpers feed.
func (t *StackTester[T]) Recognizer() *gestures.HorizontalDragRecognizer {
	return t.drag
}

// Recorder returns the host callback recorder.
func (t *StackTester[T]) Recorder() *Recorder[T] {
	return t.recorder
}

// Pump steps the scheduler once at the current time.
func (t *StackTester[T]) Pump() {
	t.scheduler.Step()
}

// PumpFrames advances the clock by FrameDuration and steps, n times.
func (t *StackTester[T]) PumpFrames(n int) {
	for range n {
		t.clock.Advance(FrameDuration)
		t.scheduler.Step()
	}
}

// PumpAndSettle runs frames until no animation is in flight or the timeout
// is reached. Each frame advances the fake clock by FrameDuration.
// Returns ErrSettleTimeout if the stack does not settle within timeout.
func (t *StackTester[T]) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.scheduler.Step()
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (t *StackTester[T]) needsWork() bool {
	return t.scheduler.HasActiveTickers() || t.controller.IsAnimating()
}

// Dispose releases the stack and the controller.
func (t *StackTester[T]) Dispose() {
	t.stack.Dispose()
	t.controller.Dispose()
}
