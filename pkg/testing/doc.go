// Package testing provides a deterministic harness for widget tests.
//
// # Quick Start
//
// Create a tester, add a button and drive it with pointer samples:
//
//	func TestSubmit(t *testing.T) {
//	    tester := uitest.NewTesterWithT(t)
//	    btn := tester.Button()
//
//	    clicked := 0
//	    btn.SetAction(widgets.ActionClick, func(*widgets.Button) object.Result {
//	        clicked++
//	        return object.ResOK
//	    })
//
//	    tester.TapObject(btn.Object())
//	    if clicked != 1 {
//	        t.Errorf("clicked = %d, want 1", clicked)
//	    }
//	}
//
// # Time
//
// The tester owns a [FakeClock] and an animation scheduler reading it.
// Advance moves time forward in frames, stepping animations and re-reading
// a held pointer so that long presses fire:
//
//	tester.PressObject(btn.Object())
//	tester.Advance(500 * time.Millisecond)
//	tester.Release()
//
// # Snapshots
//
// Capture the object tree and the draw operations of a full refresh and
// compare them with a golden file:
//
//	snap := tester.CaptureSnapshot()
//	snap.MatchesFile(t, "testdata/button.snapshot.yaml")
//
// Update golden files with:
//
//	EMBEDUI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitest "github.com/go-drift/embedui/pkg/testing"
package testing
