package animation

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/cardstack/pkg/errors"
)

func TestTweenSpec_ZeroDurationFinishesImmediately(t *testing.T) {
	sim := TweenSpec{}.Simulate(3, 9)
	v, done := sim.At(0)
	if !done || v != 9 {
		t.Errorf("At(0) = (%v, %v), want (9, true)", v, done)
	}
}

func TestTweenSpec_AppliesCurve(t *testing.T) {
	sim := TweenSpec{Duration: time.Second, Curve: EaseOut}.Simulate(0, 1)
	v, done := sim.At(500 * time.Millisecond)
	if done {
		t.Fatal("unexpected completion at half duration")
	}
	if math.Abs(v-EaseOut(0.5)) > 1e-9 {
		t.Errorf("At(500ms) = %v, want %v", v, EaseOut(0.5))
	}
}

func TestSpringSpec_MonotoneWhenCriticallyDamped(t *testing.T) {
	sim := DefaultSpring().Simulate(0.8, 1.0)
	prev := 0.8
	for ms := 16; ms < 1000; ms += 16 {
		v, done := sim.At(time.Duration(ms) * time.Millisecond)
		if v < prev-1e-9 {
			t.Fatalf("value decreased at %dms: %v < %v", ms, v, prev)
		}
		if v > 1.0+1e-9 {
			t.Fatalf("value overshot at %dms: %v", ms, v)
		}
		prev = v
		if done {
			if v != 1.0 {
				t.Errorf("finished at %v, want 1.0", v)
			}
			return
		}
	}
	t.Fatal("spring did not settle within 1s")
}

func TestSpringSpec_ZeroDistance(t *testing.T) {
	sim := DefaultSpring().Simulate(5, 5)
	v, done := sim.At(16 * time.Millisecond)
	if !done || v != 5 {
		t.Errorf("At(16ms) = (%v, %v), want (5, true)", v, done)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	for _, curve := range []func(float64) float64{Ease, EaseIn, EaseOut, EaseInOut} {
		if got := curve(0); got != 0 {
			t.Errorf("curve(0) = %v, want 0", got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("curve(1) = %v, want 1", got)
		}
	}
}

func TestCurveByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"linear", true},
		{"Ease-Out", true},
		{"ease-in-out", true},
		{"", true},
		{"bounce", false},
	}
	for _, tt := range tests {
		curve, ok := CurveByName(tt.name)
		if ok != tt.ok {
			t.Errorf("CurveByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
		if ok && curve == nil {
			t.Errorf("CurveByName(%q) returned nil curve", tt.name)
		}
	}
}

func TestScheduler_StepsInStartOrder(t *testing.T) {
	sched, clk := newTestScheduler()

	var order []string
	a := sched.NewTicker(func(time.Duration) { order = append(order, "a") })
	b := sched.NewTicker(func(time.Duration) { order = append(order, "b") })
	b.Start()
	a.Start()

	clk.advance(16 * time.Millisecond)
	sched.Step()

	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("order = %v, want [b a]", order)
	}
	if got := a.Elapsed(); got != 16*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 16ms", got)
	}

	a.Stop()
	b.Stop()
	if sched.HasActiveTickers() {
		t.Error("expected no active tickers")
	}
	if a.Elapsed() != 0 {
		t.Error("stopped ticker should report zero elapsed")
	}
}

func TestScheduler_StopDuringStepSkipsTicker(t *testing.T) {
	sched, clk := newTestScheduler()

	var b *Ticker
	calledB := false
	a := sched.NewTicker(func(time.Duration) { b.Stop() })
	b = sched.NewTicker(func(time.Duration) { calledB = true })
	a.Start()
	b.Start()

	clk.advance(16 * time.Millisecond)
	sched.Step()

	if calledB {
		t.Error("ticker stopped earlier in the same frame should not be called")
	}
}

type recordingHandler struct {
	errs []*errors.CardStackError
}

func (h *recordingHandler) HandleError(err *errors.CardStackError) {
	h.errs = append(h.errs, err)
}

func TestScheduler_PanickingTickerIsStoppedAndReported(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	sched, clk := newTestScheduler()
	calls := 0
	broken := sched.NewTicker(func(time.Duration) { panic("bad frame") })
	healthy := sched.NewTicker(func(time.Duration) { calls++ })
	broken.Start()
	healthy.Start()

	for range 3 {
		clk.advance(16 * time.Millisecond)
		sched.Step()
	}

	if len(h.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errs))
	}
	if got := h.errs[0].Kind; got != errors.KindPanic {
		t.Errorf("kind = %v, want %v", got, errors.KindPanic)
	}
	if v, ok := errors.PanicValue(h.errs[0]); !ok || v != "bad frame" {
		t.Errorf("panic value = %v, %v", v, ok)
	}
	if broken.IsActive() {
		t.Error("panicking ticker still active")
	}
	if calls != 3 {
		t.Errorf("healthy ticker ran %d times, want 3", calls)
	}
}
