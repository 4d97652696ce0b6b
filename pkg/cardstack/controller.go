package cardstack

import (
	"github.com/go-logr/logr"

	"github.com/go-drift/cardstack/pkg/animation"
	"github.com/go-drift/cardstack/pkg/errors"
	"github.com/go-drift/cardstack/pkg/graphics"
)

// ControllerState is a read-only snapshot of a [Controller].
type ControllerState struct {
	// Offset is the top card's displacement from center, px.
	Offset graphics.Offset
	// Rotation is the top card's rotation, degrees.
	Rotation float64
	// Scale is the scale of the card under the top card.
	Scale float64
	// Threshold is the positional commit distance, px.
	Threshold float64
	Phase     Phase
	// Direction is set while Phase is PhaseCommitting.
	Direction Direction
	Animating bool
}

type outcomeHandler struct {
	id int
	fn func(Direction)
}

// Controller owns the animated state of the top card and the card beneath
// it. Drag samples move the top card directly; releases and programmatic
// swipes animate it, and a committed swipe reports its direction to the
// subscribed outcome handlers before resetting for the next card.
//
// Controller is not safe for concurrent use; drive it from the UI thread.
type Controller struct {
	cfg      Config
	resolver DragResolver
	log      logr.Logger

	offsetX  *animation.AnimatedFloat
	offsetY  *animation.AnimatedFloat
	rotation *animation.AnimatedFloat
	scale    *animation.AnimatedFloat

	phase     Phase
	direction Direction
	// generation invalidates completion callbacks of superseded runs.
	generation int

	handlers      []outcomeHandler
	nextHandlerID int

	listeners      map[int]func()
	nextListenerID int
	unsubscribe    []func()
	disposed       bool
}

// NewController creates a controller at rest: offset (0, 0), rotation 0,
// scale RestingScale.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	threshold, err := ComputeThreshold(0, -cfg.ScreenWidth, cfg.Threshold, cfg.Density)
	if err != nil {
		return nil, err
	}

	sched := cfg.Scheduler
	c := &Controller{
		cfg: cfg,
		resolver: DragResolver{
			ScreenWidth:       cfg.ScreenWidth,
			Threshold:         threshold,
			VelocityThreshold: cfg.VelocityThresholdPx(),
		},
		log:       cfg.Logger.WithName("controller"),
		offsetX:   animation.NewAnimatedFloat(0, sched),
		offsetY:   animation.NewAnimatedFloat(0, sched),
		rotation:  animation.NewAnimatedFloat(0, sched),
		scale:     animation.NewAnimatedFloat(RestingScale, sched),
		listeners: make(map[int]func()),
	}
	for _, v := range c.values() {
		c.unsubscribe = append(c.unsubscribe, v.AddListener(c.notifyListeners))
	}
	return c, nil
}

func (c *Controller) values() []*animation.AnimatedFloat {
	return []*animation.AnimatedFloat{c.offsetX, c.offsetY, c.rotation, c.scale}
}

// Scheduler returns the scheduler stepping this controller's animations.
func (c *Controller) Scheduler() *animation.Scheduler {
	return c.cfg.Scheduler
}

// Resolver returns the resolver in effect.
func (c *Controller) Resolver() DragResolver {
	return c.resolver
}

// ScreenWidth returns the current screen width in pixels.
func (c *Controller) ScreenWidth() float64 {
	return c.resolver.ScreenWidth
}

// Threshold returns the positional commit distance in pixels.
func (c *Controller) Threshold() float64 {
	return c.resolver.Threshold
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Offset returns the top card's displacement from center.
func (c *Controller) Offset() graphics.Offset {
	return graphics.Offset{X: c.offsetX.Value(), Y: c.offsetY.Value()}
}

// Rotation returns the top card's rotation in degrees.
func (c *Controller) Rotation() float64 {
	return c.rotation.Value()
}

// Scale returns the scale of the card under the top card.
func (c *Controller) Scale() float64 {
	return c.scale.Value()
}

// IsAnimating reports whether a swipe or settle is in flight.
func (c *Controller) IsAnimating() bool {
	if c.phase == PhaseCommitting || c.phase == PhaseSettling {
		return true
	}
	for _, v := range c.values() {
		if v.IsRunning() {
			return true
		}
	}
	return false
}

// State returns a snapshot of the controller.
func (c *Controller) State() ControllerState {
	state := ControllerState{
		Offset:    c.Offset(),
		Rotation:  c.Rotation(),
		Scale:     c.Scale(),
		Threshold: c.resolver.Threshold,
		Phase:     c.phase,
		Animating: c.IsAnimating(),
	}
	if c.phase == PhaseCommitting {
		state.Direction = c.direction
	}
	return state
}

// SetScreenWidth updates the edge anchors and recomputes the threshold.
// It takes effect from the next drag sample or release.
func (c *Controller) SetScreenWidth(width float64) error {
	if err := validateScreenWidth("cardstack.Controller.SetScreenWidth", width); err != nil {
		return err
	}
	threshold, err := ComputeThreshold(0, -width, c.cfg.Threshold, c.cfg.Density)
	if err != nil {
		return err
	}
	c.cfg.ScreenWidth = width
	c.resolver.ScreenWidth = width
	c.resolver.Threshold = threshold
	c.log.V(1).Info("screen width changed", "width", width, "threshold", threshold)
	return nil
}

// SetThreshold replaces the positional threshold policy.
func (c *Controller) SetThreshold(policy ThresholdFunc) error {
	threshold, err := ComputeThreshold(0, -c.resolver.ScreenWidth, policy, c.cfg.Density)
	if err != nil {
		return err
	}
	if policy == nil {
		policy = Fractional(DefaultThresholdFraction)
	}
	c.cfg.Threshold = policy
	c.resolver.Threshold = threshold
	return nil
}

// DragSample moves the top card by delta and derives rotation and scale
// from the new horizontal offset. Samples arriving while a swipe or settle
// is in flight are dropped; the return value reports whether the sample
// was applied.
func (c *Controller) DragSample(delta graphics.Offset) bool {
	if c.disposed || c.IsAnimating() {
		return false
	}
	c.setPhase(PhaseDragging, DirectionNone)

	x := c.offsetX.Value() + delta.X
	y := c.offsetY.Value() + delta.Y
	c.offsetX.SnapTo(x)
	c.offsetY.SnapTo(y)
	c.rotation.SnapTo(c.resolver.Rotation(x))
	c.scale.SnapTo(c.resolver.Scale(x))
	return true
}

// DragRelease resolves a release with velocity (px/s) and starts the
// corresponding animation. Releases arriving while a swipe or settle is in
// flight are dropped and return DecisionIgnored.
func (c *Controller) DragRelease(velocity graphics.Offset) Decision {
	if c.disposed || c.IsAnimating() {
		return DecisionIgnored
	}
	decision := c.resolver.Resolve(c.offsetX.Value(), velocity.X)
	c.log.V(1).Info("drag released",
		"offsetX", c.offsetX.Value(), "velocityX", velocity.X, "decision", decision)

	switch decision {
	case DecisionSwipeLeft:
		c.swipe(Left)
	case DecisionSwipeRight:
		c.swipe(Right)
	default:
		c.ReturnToCenter()
	}
	return decision
}

// SwipeLeft animates the top card off the left edge and commits a Left
// outcome when it arrives. It supersedes any run in flight.
func (c *Controller) SwipeLeft() {
	c.swipe(Left)
}

// SwipeRight animates the top card off the right edge and commits a Right
// outcome when it arrives. It supersedes any run in flight.
func (c *Controller) SwipeRight() {
	c.swipe(Right)
}

func (c *Controller) swipe(dir Direction) {
	if c.disposed {
		return
	}
	c.generation++
	gen := c.generation
	c.setPhase(PhaseCommitting, dir)

	target := dir.sign() * c.resolver.ScreenWidth
	c.offsetX.AnimateTo(target, c.cfg.Animation, func(reason animation.EndReason, _ float64) {
		if reason != animation.EndFinished || gen != c.generation {
			return
		}
		c.commit(dir)
	})
	c.scale.AnimateTo(FullScale, c.cfg.Animation, nil)
}

// commit reports the outcome and then resets for the next top card, in
// that order, so observers never see the reset before the outcome.
func (c *Controller) commit(dir Direction) {
	c.log.Info("swipe committed", "direction", dir)
	c.emit(dir)

	c.generation++
	c.offsetX.SnapTo(0)
	c.offsetY.SnapTo(0)
	c.rotation.SnapTo(0)
	c.scale.SnapTo(RestingScale)
	c.setPhase(PhaseIdle, DirectionNone)
}

// ReturnToCenter animates the top card back to rest. The controller is
// idle again once all four values have settled.
func (c *Controller) ReturnToCenter() {
	if c.disposed {
		return
	}
	c.generation++
	gen := c.generation
	c.setPhase(PhaseSettling, DirectionNone)

	remaining := 4
	settled := func(reason animation.EndReason, _ float64) {
		if gen != c.generation {
			return
		}
		remaining--
		if remaining == 0 {
			c.setPhase(PhaseIdle, DirectionNone)
		}
	}
	c.offsetX.AnimateTo(0, c.cfg.Animation, settled)
	c.offsetY.AnimateTo(0, c.cfg.Animation, settled)
	c.rotation.AnimateTo(0, c.cfg.Animation, settled)
	c.scale.AnimateTo(RestingScale, c.cfg.Animation, settled)
}

// Subscribe registers fn to receive every committed outcome. Handlers run
// in subscription order. The returned function unsubscribes.
func (c *Controller) Subscribe(fn func(Direction)) func() {
	id := c.nextHandlerID
	c.nextHandlerID++
	c.handlers = append(c.handlers, outcomeHandler{id: id, fn: fn})
	return func() {
		for i, h := range c.handlers {
			if h.id == id {
				c.handlers = append(c.handlers[:i:i], c.handlers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) emit(dir Direction) {
	handlers := append([]outcomeHandler(nil), c.handlers...)
	for _, h := range handlers {
		c.invokeHandler(h.fn, dir)
	}
}

func (c *Controller) invokeHandler(fn func(Direction), dir Direction) {
	defer errors.RecoverCallback("cardstack.Controller.Subscribe")
	fn(dir)
}

// AddListener registers fn to run whenever any animated value changes.
// The returned function unsubscribes.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		c.invokeListener(listener)
	}
}

func (c *Controller) invokeListener(fn func()) {
	defer errors.RecoverCallback("cardstack.Controller.AddListener")
	fn()
}

func (c *Controller) setPhase(phase Phase, dir Direction) {
	if c.phase == phase && c.direction == dir {
		return
	}
	c.log.V(1).Info("phase", "from", c.phase, "to", phase, "direction", dir)
	c.phase = phase
	c.direction = dir
}

// Dispose stops all animations without completing them and drops every
// handler and listener. A disposed controller ignores further input.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.generation++
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
	for _, v := range c.values() {
		v.Dispose()
	}
	c.handlers = nil
	c.listeners = make(map[int]func())
	c.phase = PhaseIdle
	c.direction = DirectionNone
}
