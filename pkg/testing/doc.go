// Package testing provides a deterministic harness for card stacks.
//
// # Quick Start
//
// Create a tester, drive gestures, and assert on what the host saw:
//
//	func TestSwipe(t *testing.T) {
//	    tester := stacktest.NewStackTesterWithT(t, []string{"a", "b", "c"}, cardstack.DefaultConfig(1000))
//
//	    tester.Drag(-250, 0)
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if got := tester.Stack().CurrentIndex(); got != 1 {
//	        t.Errorf("CurrentIndex() = %d, want 1", got)
//	    }
//	    if swipes := tester.Recorder().Swipes(); len(swipes) != 1 {
//	        t.Errorf("expected one swipe, got %v", swipes)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare the stack's presentation:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/swipe.snapshot.json")
//
// Update snapshots with:
//
//	CARDSTACK_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import stacktest "github.com/go-drift/cardstack/pkg/testing"
package testing
