package diagnostics

import (
	"fmt"
	"path/filepath"
	"strings"

	"execexam/internal/domain"
	"execexam/internal/nodeid"
)

// DisplayPathComponents is how many trailing path components ElidePath keeps.
const DisplayPathComponents = 4

// LocateFailures describes every failed test of report and returns where its
// source lives. The text always starts with "\n", so a run without failures
// yields exactly "\n" (see HasNoFailures).
func LocateFailures(report *domain.TestRunReport) (string, []domain.FailingTestLocation) {
	var b strings.Builder
	b.WriteString("\n")

	var locations []domain.FailingTestLocation
	for _, test := range report.Tests {
		if test.Outcome != domain.OutcomeFailed {
			continue
		}

		id := nodeid.Parse(test.NodeID)
		testPath := joinRoot(report.Root, id.Path())
		crash := test.Call.Crash

		fmt.Fprintf(&b, "  Name: %s\n", test.NodeID)
		fmt.Fprintf(&b, "  Path: %s\n", ElidePath(testPath, DisplayPathComponents))
		fmt.Fprintf(&b, "  Line number: %d\n", crash.LineNo)
		fmt.Fprintf(&b, "  Message: %s\n", crash.Message)

		locations = append(locations, domain.FailingTestLocation{
			TestName: id.Name(),
			TestPath: testPath,
		})
	}
	return b.String(), locations
}

// HasNoFailures reports whether text is the output of LocateFailures for a
// run without failed tests. Only a lone "\n" qualifies.
func HasNoFailures(text string) bool {
	return text == "\n"
}

func joinRoot(root, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(root, rel)
}

// ElidePath shortens p to "<...>/" plus its last keep components when it has
// more than keep. Shorter paths are returned unchanged.
func ElidePath(p string, keep int) string {
	var parts []string
	for _, part := range strings.Split(filepath.ToSlash(p), "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) <= keep {
		return p
	}
	return "<...>/" + strings.Join(parts[len(parts)-keep:], "/")
}
