package report

import "execexam/internal/domain"

// Correlate returns the node ids of assertion reports that have no matching
// test in the run report, in stream order. Both come from the same pytest
// session so the result is normally empty.
func Correlate(run *domain.TestRunReport, assertions []domain.AssertionReport) []string {
	known := make(map[string]struct{}, len(run.Tests))
	for _, test := range run.Tests {
		known[test.NodeID] = struct{}{}
	}

	var unknown []string
	for _, a := range assertions {
		if _, ok := known[a.NodeID]; !ok {
			unknown = append(unknown, a.NodeID)
		}
	}
	return unknown
}
