package report

import "execexam/internal/domain"

// Parser turns the raw reports produced during a pytest run into domain values.
type Parser interface {
	ParseRunReport(data []byte) (*domain.TestRunReport, error)
	ParseAssertionReports(data []byte) ([]domain.AssertionReport, error)
}
