package diagnostics

import (
	"fmt"
	"strings"

	"execexam/internal/domain"
	"execexam/internal/nodeid"
)

const (
	firstFieldPrefix = "  - "
	fieldPrefix      = "    "
)

// FormatAssertion renders the fields of one assertion record in order. The
// first field gets a "-" bullet and the others are indented under it.
func FormatAssertion(record domain.AssertionRecord) string {
	var b strings.Builder
	for i, field := range record {
		if i == 0 {
			b.WriteString(firstFieldPrefix)
		} else {
			b.WriteString(fieldPrefix)
		}
		fmt.Fprintf(&b, "%s: %s\n", field.Key, field.Value)
	}
	return b.String()
}

// FormatAssertionList concatenates FormatAssertion for every record.
func FormatAssertionList(records []domain.AssertionRecord) string {
	var b strings.Builder
	for _, record := range records {
		b.WriteString(FormatAssertion(record))
	}
	return b.String()
}

// FormatTestAssertions renders a header per report, the node id after its
// last "/", followed by that report's assertions.
func FormatTestAssertions(reports []domain.AssertionReport) string {
	var b strings.Builder
	for _, report := range reports {
		fmt.Fprintf(&b, "\n%s\n", nodeid.DisplayName(report.NodeID))
		if len(report.Assertions) > 0 {
			b.WriteString(FormatAssertionList(report.Assertions))
		}
	}
	return b.String()
}
