package prompter

import (
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestDisplayScripts drives the differential renderer through scripted
// frames and checks the resulting screen contents against a mock
// terminal, table-driven the way rendering scenarios are commonly tested.
func TestDisplayScripts(t *testing.T) {
	datadriven.Walk(t, "testdata/display", func(t *testing.T, path string) {
		var term *testTerm
		var d *Display

		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			switch td.Cmd {
			case "new-display":
				var width, height int
				td.ScanArgs(t, "width", &width)
				td.ScanArgs(t, "height", &height)
				term = newTestTerm(width, height)
				d = NewDisplay(term, width, height)
				return ""

			case "render":
				var lines []AttributedString
				for _, line := range strings.Split(strings.TrimRight(td.Input, "\n"), "\n") {
					lines = append(lines, lineOf(line))
				}
				d.Render(Frame{Lines: lines})
				return term.String()

			case "resize":
				var width, height int
				td.ScanArgs(t, "width", &width)
				td.ScanArgs(t, "height", &height)
				d.SetSize(width, height)
				return ""
			}
			return ""
		})
	})
}
