package cli

import (
	"errors"
	"fmt"

	"execexam/internal/report"
)

// Process exit codes
const (
	ExitOK             = 0
	ExitTestsFailed    = 1
	ExitMalformed      = 2
	ExitRunError       = 3
	ExitUsageOrUnknown = 4
)

// ExitError carries a process exit code out of a command. Err is nil when
// the code alone says everything, e.g. failing tests.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// RunError wraps an error from the test run with the matching exit code.
func RunError(err error) *ExitError {
	var malformed *report.MalformedReportError
	if errors.As(err, &malformed) {
		return &ExitError{Code: ExitMalformed, Err: err}
	}
	return &ExitError{Code: ExitRunError, Err: err}
}

// ExitCode maps an error returned by command execution to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsageOrUnknown
}
