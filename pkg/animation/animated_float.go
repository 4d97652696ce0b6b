package animation

import (
	"fmt"
	"time"
)

// EndReason tells an animation's completion callback why the run ended.
type EndReason int

const (
	// EndFinished means the value reached its target.
	EndFinished EndReason = iota
	// EndInterrupted means the run was superseded by another AnimateTo,
	// a SnapTo or a Stop before reaching its target.
	EndInterrupted
)

// String returns a human-readable representation of the end reason.
func (r EndReason) String() string {
	switch r {
	case EndFinished:
		return "finished"
	case EndInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}

// AnimatedFloat is a scalar value that is either set directly or animated
// toward a target by its [Scheduler].
//
// A value has at most one run in flight. Starting another (or snapping)
// ends the current run with [EndInterrupted]; last writer wins.
//
// AnimatedFloat is not safe for concurrent use; drive it from the UI thread.
type AnimatedFloat struct {
	scheduler *Scheduler

	value  float64
	target float64

	sim    Simulation
	ticker *Ticker
	onEnd  func(EndReason, float64)

	listeners      map[int]func()
	nextListenerID int
}

// NewAnimatedFloat creates an idle value driven by scheduler.
func NewAnimatedFloat(initial float64, scheduler *Scheduler) *AnimatedFloat {
	return &AnimatedFloat{
		scheduler: scheduler,
		value:     initial,
		target:    initial,
		listeners: make(map[int]func()),
	}
}

// Value returns the current value.
func (a *AnimatedFloat) Value() float64 {
	return a.value
}

// Target returns the value the current run is heading to, or the current
// value when idle.
func (a *AnimatedFloat) Target() float64 {
	return a.target
}

// IsRunning returns true while a run is in flight.
func (a *AnimatedFloat) IsRunning() bool {
	return a.ticker != nil && a.ticker.IsActive()
}

// SnapTo sets the value immediately, ending any run in flight.
func (a *AnimatedFloat) SnapTo(value float64) {
	a.interrupt()
	a.value = value
	a.target = value
	a.notifyListeners()
}

// AnimateTo starts a run from the current value to target using spec.
// A nil spec uses [DefaultSpring]. onEnd, if non-nil, runs synchronously
// at the end of the final tick, after the value has reached target.
func (a *AnimatedFloat) AnimateTo(target float64, spec Spec, onEnd func(EndReason, float64)) {
	a.interrupt()
	if spec == nil {
		spec = DefaultSpring()
	}

	a.target = target
	a.sim = spec.Simulate(a.value, target)
	a.onEnd = onEnd
	a.ticker = a.scheduler.NewTicker(a.tick)
	a.ticker.Start()
}

// Stop ends the run in flight at the current value.
func (a *AnimatedFloat) Stop() {
	a.interrupt()
	a.target = a.value
}

func (a *AnimatedFloat) tick(elapsed time.Duration) {
	value, done := a.sim.At(elapsed)
	a.value = value
	if done {
		a.ticker.Stop()
		a.ticker = nil
		a.sim = nil
	}
	a.notifyListeners()

	if done {
		onEnd := a.onEnd
		a.onEnd = nil
		if onEnd != nil {
			onEnd(EndFinished, value)
		}
	}
}

func (a *AnimatedFloat) interrupt() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	a.ticker = nil
	a.sim = nil
	onEnd := a.onEnd
	a.onEnd = nil
	if onEnd != nil {
		onEnd(EndInterrupted, a.value)
	}
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (a *AnimatedFloat) AddListener(fn func()) func() {
	id := a.nextListenerID
	a.nextListenerID++
	a.listeners[id] = fn
	return func() {
		delete(a.listeners, id)
	}
}

func (a *AnimatedFloat) notifyListeners() {
	for _, listener := range a.listeners {
		listener()
	}
}

// Dispose stops the value without invoking completion callbacks and drops
// its listeners.
func (a *AnimatedFloat) Dispose() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	a.sim = nil
	a.onEnd = nil
	a.listeners = make(map[int]func())
}
