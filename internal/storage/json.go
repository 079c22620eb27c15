package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"execexam/internal/domain"
)

// ErrNoResults is returned by Load when no run has been stored yet.
var ErrNoResults = errors.New("no stored results, run the tests first")

// Save writes diagnostics to the configured JSON output file, stamping the
// time when it has none.
func (s *JSONStorage) Save(diagnostics *domain.Diagnostics) error {
	if diagnostics.Timestamp == "" {
		diagnostics.Timestamp = time.Now().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last stored diagnostics.
func (s *JSONStorage) Load() (*domain.Diagnostics, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoResults
	}
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var diagnostics domain.Diagnostics
	if err := json.Unmarshal(data, &diagnostics); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &diagnostics, nil
}
