package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"execexam/internal/report"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "success", err: nil, expected: ExitOK},
		{name: "failing tests", err: &ExitError{Code: ExitTestsFailed}, expected: ExitTestsFailed},
		{name: "malformed report", err: RunError(fmt.Errorf("parse pytest report: %w", &report.MalformedReportError{Key: "root"})), expected: ExitMalformed},
		{name: "run error", err: RunError(errors.New("run pytest: not found")), expected: ExitRunError},
		{name: "wrapped exit error", err: fmt.Errorf("run: %w", &ExitError{Code: ExitMalformed}), expected: ExitMalformed},
		{name: "other error", err: errors.New("unknown flag"), expected: ExitUsageOrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestExitError_Error(t *testing.T) {
	assert.Equal(t, "exit status 1", (&ExitError{Code: 1}).Error())
	assert.Equal(t, "boom", (&ExitError{Code: 3, Err: errors.New("boom")}).Error())
}

func TestFlags_ToConfigFlags(t *testing.T) {
	f := Flags{Mark: "unit", Fancy: true, Theme: "ansi_light", Verbose: true, View: true, Project: "/p"}

	cf := f.ToConfigFlags()

	assert.Equal(t, "unit", cf.Mark)
	assert.True(t, cf.Fancy)
	assert.Equal(t, "ansi_light", cf.Theme)
	assert.True(t, cf.Verbose)
	assert.True(t, cf.View)
}
