package domain

// Outcome values reported by pytest for a single test case.
const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
	OutcomeError   = "error"
)

// Count is one entry of the run summary, e.g. {"failed", 1}.
type Count struct {
	Category string
	Count    int
}

// TestRunReport is the result of one pytest session as written by pytest-json-report.
type TestRunReport struct {
	Root    string       // Directory the run was executed from
	Summary []Count      // Outcome category counts, in the order pytest wrote them
	Tests   []TestRecord // Test cases, in execution order
}

// TestRecord is a single test case outcome
type TestRecord struct {
	NodeID  string
	Outcome string
	Call    *CallInfo // Set for failed tests
}

// CallInfo holds the call phase of a test case
type CallInfo struct {
	Crash CrashInfo
}

// CrashInfo points at the line that raised the failure
type CrashInfo struct {
	LineNo  int
	Message string
}
