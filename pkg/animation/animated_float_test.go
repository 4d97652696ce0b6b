package animation

import (
	"math"
	"testing"
	"time"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScheduler() (*Scheduler, *stepClock) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewScheduler(clk), clk
}

// pump advances the clock frame by frame, stepping the scheduler each time.
func pump(s *Scheduler, clk *stepClock, total time.Duration) {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		clk.advance(frame)
		s.Step()
	}
}

func TestAnimatedFloat_TweenReachesTarget(t *testing.T) {
	sched, clk := newTestScheduler()
	v := NewAnimatedFloat(0, sched)

	var reasons []EndReason
	v.AnimateTo(100, TweenSpec{Duration: 200 * time.Millisecond}, func(r EndReason, value float64) {
		reasons = append(reasons, r)
		if value != 100 {
			t.Errorf("completion value = %v, want 100", value)
		}
	})

	if !v.IsRunning() {
		t.Fatal("expected value to be running after AnimateTo")
	}
	if v.Target() != 100 {
		t.Errorf("Target() = %v, want 100", v.Target())
	}

	clk.advance(100 * time.Millisecond)
	sched.Step()
	if got := v.Value(); math.Abs(got-50) > 1e-9 {
		t.Errorf("midway value = %v, want 50 with linear curve", got)
	}

	pump(sched, clk, 200*time.Millisecond)
	if v.IsRunning() {
		t.Error("expected run to finish")
	}
	if v.Value() != 100 {
		t.Errorf("final value = %v, want 100", v.Value())
	}
	if len(reasons) != 1 || reasons[0] != EndFinished {
		t.Errorf("end reasons = %v, want [finished]", reasons)
	}
	if sched.HasActiveTickers() {
		t.Error("expected no active tickers after completion")
	}
}

func TestAnimatedFloat_AnimateToSupersedesRun(t *testing.T) {
	sched, clk := newTestScheduler()
	v := NewAnimatedFloat(0, sched)

	var first, second []EndReason
	v.AnimateTo(100, TweenSpec{Duration: time.Second}, func(r EndReason, _ float64) {
		first = append(first, r)
	})
	clk.advance(100 * time.Millisecond)
	sched.Step()

	v.AnimateTo(-50, TweenSpec{Duration: 100 * time.Millisecond}, func(r EndReason, _ float64) {
		second = append(second, r)
	})
	pump(sched, clk, 200*time.Millisecond)

	if len(first) != 1 || first[0] != EndInterrupted {
		t.Errorf("first run reasons = %v, want [interrupted]", first)
	}
	if len(second) != 1 || second[0] != EndFinished {
		t.Errorf("second run reasons = %v, want [finished]", second)
	}
	if v.Value() != -50 {
		t.Errorf("value = %v, want -50", v.Value())
	}
}

func TestAnimatedFloat_SnapToInterrupts(t *testing.T) {
	sched, _ := newTestScheduler()
	v := NewAnimatedFloat(0.8, sched)

	var reason EndReason = -1
	v.AnimateTo(1, nil, func(r EndReason, _ float64) { reason = r })
	v.SnapTo(0.8)

	if reason != EndInterrupted {
		t.Errorf("reason = %v, want interrupted", reason)
	}
	if v.IsRunning() {
		t.Error("SnapTo should stop the run")
	}
	if v.Value() != 0.8 || v.Target() != 0.8 {
		t.Errorf("value/target = %v/%v, want 0.8/0.8", v.Value(), v.Target())
	}
}

func TestAnimatedFloat_SpringSettles(t *testing.T) {
	sched, clk := newTestScheduler()
	v := NewAnimatedFloat(0, sched)

	done := false
	v.AnimateTo(-1000, DefaultSpring(), func(r EndReason, value float64) {
		done = r == EndFinished && value == -1000
	})
	pump(sched, clk, 2*time.Second)

	if !done {
		t.Fatal("expected spring to settle at target within 2s")
	}
	if v.IsRunning() {
		t.Error("expected spring to be idle after settling")
	}
}

func TestAnimatedFloat_Listeners(t *testing.T) {
	sched, clk := newTestScheduler()
	v := NewAnimatedFloat(0, sched)

	calls := 0
	unsub := v.AddListener(func() { calls++ })
	v.SnapTo(5)
	if calls != 1 {
		t.Fatalf("calls after SnapTo = %d, want 1", calls)
	}

	v.AnimateTo(10, TweenSpec{Duration: 32 * time.Millisecond}, nil)
	pump(sched, clk, 64*time.Millisecond)
	if calls < 2 {
		t.Errorf("expected tick notifications, got %d calls", calls)
	}

	unsub()
	before := calls
	v.SnapTo(0)
	if calls != before {
		t.Error("listener fired after unsubscribe")
	}
}

func TestAnimatedFloat_DisposeSkipsCallback(t *testing.T) {
	sched, _ := newTestScheduler()
	v := NewAnimatedFloat(0, sched)

	called := false
	v.AnimateTo(1, TweenSpec{Duration: time.Second}, func(EndReason, float64) { called = true })
	v.Dispose()

	if called {
		t.Error("Dispose should not invoke completion callbacks")
	}
	if sched.HasActiveTickers() {
		t.Error("Dispose should stop the ticker")
	}
}

func TestEndReasonString(t *testing.T) {
	tests := []struct {
		reason EndReason
		want   string
	}{
		{EndFinished, "finished"},
		{EndInterrupted, "interrupted"},
		{EndReason(7), "EndReason(7)"},
	}
	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("EndReason(%d).String() = %q, want %q", int(tt.reason), got, tt.want)
		}
	}
}
