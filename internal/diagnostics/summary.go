package diagnostics

import (
	"fmt"
	"strings"

	"execexam/internal/domain"
)

// Summarize renders the run summary counts in report order, e.g.
// "Details: 2 passed, 1 failed, 3 total".
func Summarize(report *domain.TestRunReport) string {
	parts := make([]string, 0, len(report.Summary))
	for _, c := range report.Summary {
		parts = append(parts, fmt.Sprintf("%d %s", c.Count, c.Category))
	}
	return "Details: " + strings.Join(parts, ", ")
}
