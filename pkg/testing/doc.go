// Package testing provides a harness for testing lattice widget trees.
//
// # Quick Start
//
// Mount a view, simulate input and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    var count int
//	    tester := lattest.NewWithT(t,
//	        func() core.Element[Msg] { return view(count) },
//	        func(m Msg) { count++ },
//	    )
//
//	    if err := tester.Click(id.New("increment")); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !tester.FindText("1").Exists() {
//	        t.Error("expected count 1")
//	    }
//	}
//
// Published messages are applied with the update function and the view is
// rebuilt after every dispatched event, reusing the widget state the way an
// application shell would.
//
// # Finding Widgets
//
// Widgets are found through operations: anything with an id.ID that takes
// part in Operate can be found with ByID; focusable, scrollable and text
// input widgets with ByKind. Drawn text is found with FindText.
//
// # Snapshot Testing
//
// Capture and compare layout snapshots stored as YAML:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/form.snapshot.yaml")
//
// Update snapshots with:
//
//	LATTICE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import lattest "github.com/go-drift/lattice/pkg/testing"
package testing
