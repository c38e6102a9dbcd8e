// Package testing provides helpers for testing code built on the element
// arena and the style system.
//
// # Quick Start
//
// Create a tester, build a tree, and assert on resolved properties:
//
//	func TestButton(t *testing.T) {
//	    tester := uitreetest.NewTesterWithT(t)
//	    root := tester.Element(element.Null, button)
//	    tester.Hover(root)
//
//	    tester.ExpectProperty(root, style.BackgroundColor, style.ColorValue(hoverColor))
//	    if got := tester.Consumer().ForElement(root); len(got) != 1 {
//	        t.Errorf("notifications = %v", got)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the resolved style tree and compare it with a file:
//
//	snapshot := tester.CaptureSnapshot(root)
//	snapshot.MatchesFile(t, "testdata/button.snapshot.json")
//
// Update snapshots with:
//
//	UITREE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitreetest "github.com/go-drift/uitree/pkg/testing"
package testing
