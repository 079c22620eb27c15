package diagnostics

import "execexam/internal/domain"

// Assemble builds the diagnostics of a finished run. The test trace is the
// FAILED lines of the captured output, preceded by a blank line when there
// are any, followed by the assertion details.
func Assemble(rc *domain.RunContext) domain.Diagnostics {
	trace := FilterLines(FailedLabel, rc.Output)
	if trace != "" {
		trace = "\n" + trace
	}
	trace += FormatTestAssertions(rc.Assertions)

	details, locations := LocateFailures(rc.Report)

	var failures []domain.FailureDetail
	for _, test := range rc.Report.Tests {
		if test.Outcome != domain.OutcomeFailed {
			continue
		}
		failures = append(failures, domain.FailureDetail{
			NodeID:   test.NodeID,
			LineNo:   test.Call.Crash.LineNo,
			Message:  test.Call.Crash.Message,
			Location: locations[len(failures)],
		})
	}

	return domain.Diagnostics{
		Summary:        Summarize(rc.Report),
		TestTrace:      trace,
		FailureDetails: details,
		HasFailures:    !HasNoFailures(details),
		Locations:      locations,
		Failures:       failures,
	}
}
