// Package animation provides the frame-driven animation primitives used by the
// card stack engine.
//
// # Core Components
//
//   - [Clock]: the time source. There is no package-level clock; every
//     [Scheduler] is built with the clock it reads, so tests pass a fake one.
//
//   - [Scheduler]: owns the set of active [Ticker] values and advances them
//     when the host calls [Scheduler.Step] once per frame.
//
//   - [Spec]: describes how a value travels to its target. [TweenSpec] runs a
//     fixed duration through an easing curve; [SpringSpec] follows a damped
//     spring until it comes to rest.
//
//   - [AnimatedFloat]: a scalar that can be set directly ([AnimatedFloat.SnapTo])
//     or animated toward a target ([AnimatedFloat.AnimateTo]) with a completion
//     callback.
//
// # Basic Usage
//
//	sched := animation.NewScheduler(animation.SystemClock{})
//	x := animation.NewAnimatedFloat(0, sched)
//	x.AnimateTo(300, animation.TweenSpec{Duration: 250 * time.Millisecond, Curve: animation.EaseOut},
//	    func(reason animation.EndReason, value float64) {
//	        // runs synchronously at the end of the final tick
//	    })
//
//	// In the frame loop
//	sched.Step()
//
// Starting a new animation on a value supersedes the one in flight; the
// superseded callback receives [EndInterrupted].
package animation
