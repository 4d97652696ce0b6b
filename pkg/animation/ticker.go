package animation

import (
	"slices"
	"sync"
	"time"

	"github.com/go-drift/cardstack/pkg/errors"
)

// Scheduler drives a set of tickers from an explicit clock.
//
// The host calls Step once per frame. Tickers are stepped in the order they
// were started, all against the same frame timestamp.
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	active []*Ticker
}

// NewScheduler creates a scheduler reading time from clock.
// A nil clock uses [SystemClock].
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// NewTicker creates an inactive ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step advances all active tickers.
// This should be called once per frame from the host's frame loop.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start and stop tickers without holding the lock.
	tickers := slices.Clone(s.active)
	s.mu.Unlock()

	now := s.clock.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.fire(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active = append(s.active, t)
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	if i := slices.Index(s.active, t); i >= 0 {
		s.active = slices.Delete(s.active, i, i+1)
	}
	s.mu.Unlock()
}

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimatedFloat].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// fire runs the callback for one frame. A panicking callback is reported as
// a KindPanic error and its ticker stopped, so one broken run cannot fail
// every later frame.
func (t *Ticker) fire(elapsed time.Duration) {
	completed := false
	defer func() {
		if !completed {
			t.Stop()
		}
	}()
	defer errors.Recover("animation.Scheduler.Step")
	t.callback(elapsed)
	completed = true
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}
