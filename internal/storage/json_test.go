package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"execexam/internal/config"
	"execexam/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	saved := &domain.Diagnostics{
		Summary:        "Details: 1 failed",
		FailureDetails: "\n  Name: tests/test_a.py::test_one\n",
		HasFailures:    true,
		Locations:      []domain.FailingTestLocation{{TestName: "test_one", TestPath: "/w/tests/test_a.py"}},
		Snippets: []domain.Snippet{{
			Location: domain.FailingTestLocation{TestName: "test_one", TestPath: "/w/tests/test_a.py"},
			Source:   "def test_one():\n    assert False\n",
		}},
	}
	require.NoError(t, st.Save(saved))
	assert.NotEmpty(t, saved.Timestamp)

	_, err := os.Stat(cfg.GetOutputPath())
	require.NoError(t, err)

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestJSONStorage_Load_NoResults(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	_, err := NewJSONStorage(cfg).Load()
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestJSONStorage_Load_Corrupt(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	require.NoError(t, os.MkdirAll(cfg.ProjectPath+"/"+cfg.OutputJSONDir, 0755))
	require.NoError(t, os.WriteFile(cfg.GetOutputPath(), []byte("{"), 0644))

	_, err := NewJSONStorage(cfg).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
}
