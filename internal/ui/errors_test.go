package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"execexam/internal/domain"
)

func viewerDiagnostics() *domain.Diagnostics {
	loc := domain.FailingTestLocation{TestName: "test_one", TestPath: "/home/student/exam/tests/test_a.py"}
	return &domain.Diagnostics{
		Failures: []domain.FailureDetail{{NodeID: "tests/test_a.py::test_one", LineNo: 4, Message: "assert 1 == 2", Location: loc}},
		Snippets: []domain.Snippet{{Location: loc, Source: "def test_one(x):\n    assert 1 == 2\n"}},
		Resolved: []bool{false},
	}
}

func TestFormatFailureDetails(t *testing.T) {
	out := formatFailureDetails(viewerDiagnostics(), 0)

	assert.Contains(t, out, "Test: tests/test_a.py::test_one[white]")
	assert.Contains(t, out, "[yellow]Line number:[white] 4")
	assert.Contains(t, out, "assert 1 == 2")
	assert.Contains(t, out, "def test_one(x):")
}

func TestFormatFailureStats(t *testing.T) {
	d := viewerDiagnostics()

	assert.Equal(t, "[cyan]path:[white] [yellow]<...>/student/exam/tests/test_a.py[white]:[yellow]4[white]\n", formatFailureStats(d.Failures[0]))
}

func TestListItemText(t *testing.T) {
	d := viewerDiagnostics()

	assert.Equal(t, "[yellow]1.[white] test_one", listItemText(d, 0))
	assert.Equal(t, 1, countUnresolved(d))

	d.Resolved[0] = true
	assert.Contains(t, listItemText(d, 0), "✓")
	assert.Equal(t, 0, countUnresolved(d))
}
