package domain

// FailingTestLocation is where the source of a failing test can be found.
type FailingTestLocation struct {
	TestName string `json:"test_name"` // Last node id segment
	TestPath string `json:"test_path"` // Report root joined with the node id file segment
}

// Snippet is the extracted source of a failing test function.
type Snippet struct {
	Location FailingTestLocation `json:"location"`
	Source   string              `json:"source,omitempty"`
	Error    string              `json:"error,omitempty"`
}
