package domain

// RunContext carries everything collected during one test run. The runner
// fills it in and the diagnostics code reads it afterwards.
type RunContext struct {
	Report     *TestRunReport
	Assertions []AssertionReport
	Output     string // Combined stdout/stderr of pytest
	ExitCode   int    // pytest process exit code
}

// Diagnostics is the rendered result of one run, handed to the UI and storage.
type Diagnostics struct {
	Summary        string                `json:"summary"`
	TestTrace      string                `json:"test_trace"`
	FailureDetails string                `json:"failure_details"`
	HasFailures    bool                  `json:"has_failures"`
	Locations      []FailingTestLocation `json:"locations"`
	Failures       []FailureDetail       `json:"failures"`
	Snippets       []Snippet             `json:"snippets,omitempty"`
	Timestamp      string                `json:"timestamp"`
	Resolved       []bool                `json:"resolved,omitempty"` // Per failure, toggled in the viewer
}

// FailureDetail is one failed test as shown in the failures viewer.
type FailureDetail struct {
	NodeID   string              `json:"nodeid"`
	LineNo   int                 `json:"lineno"`
	Message  string              `json:"message"`
	Location FailingTestLocation `json:"location"`
}
