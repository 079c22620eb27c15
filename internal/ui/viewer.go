package ui

import "execexam/internal/domain"

// Viewer displays stored diagnostics interactively
type Viewer interface {
	View(diagnostics *domain.Diagnostics) error
}
