package execution

import (
	"context"

	"execexam/internal/domain"
)

// Executor runs the test suite and collects everything the diagnostics need.
type Executor interface {
	Run(ctx context.Context) (*domain.RunContext, error)
}
