package report

import "fmt"

// MalformedReportError is returned when a report lacks a key the
// diagnostics depend on.
type MalformedReportError struct {
	Key   string // Missing or unreadable key
	Where string // Location inside the report, e.g. "tests[2].call"
	Err   error  // Decode error, if the key was present but unreadable
}

func (e *MalformedReportError) Error() string {
	where := e.Where
	if where == "" {
		where = "report"
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed report: invalid %q in %s: %v", e.Key, where, e.Err)
	}
	return fmt.Sprintf("malformed report: missing %q in %s", e.Key, where)
}

func (e *MalformedReportError) Unwrap() error {
	return e.Err
}

func missing(key, where string) error {
	return &MalformedReportError{Key: key, Where: where}
}

func invalid(key, where string, err error) error {
	return &MalformedReportError{Key: key, Where: where, Err: err}
}
