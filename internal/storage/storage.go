package storage

import (
	"execexam/internal/config"
	"execexam/internal/domain"
)

// Storage persists the diagnostics of the last run for the failures viewer.
type Storage interface {
	Save(diagnostics *domain.Diagnostics) error
	Load() (*domain.Diagnostics, error)
}

// JSONStorage stores diagnostics in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
