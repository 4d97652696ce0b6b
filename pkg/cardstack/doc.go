// Package cardstack implements a swipeable stack of cards: the drag
// resolution and animation state of the top card, and the index state of the
// stack as cards are swiped away.
//
// # Components
//
//   - [Controller] owns the animated offset, rotation and scale of the stack,
//     turns drag samples into visual feedback and resolves releases into a
//     swipe or a settle back to center.
//
//   - [DragResolver] holds the thresholding math the controller applies:
//     [Normalize], rotation and scale as functions of offset, and the
//     distance/velocity decision rule.
//
//   - [Stack] owns the ordered items and the current index. It subscribes to
//     its controller once, reports each swiped item to the host and signals
//     exhaustion exactly once.
//
// # Usage
//
//	sched := animation.NewScheduler(animation.SystemClock{})
//	cfg := cardstack.DefaultConfig(screenWidth)
//	cfg.Scheduler = sched
//	ctrl, err := cardstack.NewController(cfg)
//	if err != nil {
//	    return err
//	}
//	stack := cardstack.NewStack(profiles, ctrl, cardstack.StackOptions[Profile]{
//	    OnItemSwiped: func(p Profile, ordinal int, dir cardstack.Direction) { ... },
//	    OnStackExhausted: func(last Profile) { ... },
//	})
//	drag := stack.Recognizer()
//
//	// Per pointer event
//	drag.HandleEvent(event)
//	// Per frame
//	sched.Step()
//	for _, card := range stack.VisibleCards() {
//	    // paint card.Item at card.Offset, rotated by card.Rotation, scaled by card.Scale
//	}
//
// All methods must be called from the UI thread.
package cardstack
