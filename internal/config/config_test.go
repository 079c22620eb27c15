package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				TestPath:    DefaultTestPath,
			},
			expected: "tests",
		},
		{
			name: "relative to project",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "tests/test_one.py",
			},
			expected: "/project/tests/test_one.py",
		},
		{
			name: "absolute test path",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "/absolute/path",
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetTestPath())
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := &Config{ProjectPath: "/project", OutputJSONDir: DefaultOutputJSONDir, OutputJSONFile: DefaultOutputJSONFile}

	assert.Equal(t, "/project/.execexam/last-run.json", cfg.GetOutputPath())
}

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultProjectPath, cfg.ProjectPath)
	assert.Equal(t, DefaultPythonBin, cfg.PythonBin)
	assert.Equal(t, DefaultMaxFail, cfg.MaxFail)
	assert.True(t, cfg.Flags.Fancy)
	assert.Equal(t, ThemeAnsiDark, cfg.Flags.Theme)
}

func TestLoad(t *testing.T) {
	t.Run("applies arguments and flags", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load(dir, "tests/test_a.py", Flags{Mark: "unit", Theme: ThemeAnsiLight})
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ProjectPath)
		assert.Equal(t, filepath.Join(dir, "tests/test_a.py"), cfg.GetTestPath())
		assert.Equal(t, "unit", cfg.Flags.Mark)
		assert.Equal(t, ThemeAnsiLight, cfg.Flags.Theme)
	})

	t.Run("empty theme falls back to default", func(t *testing.T) {
		cfg, err := Load(t.TempDir(), "", Flags{})
		require.NoError(t, err)
		assert.Equal(t, DefaultTheme, cfg.Flags.Theme)
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := Load(t.TempDir(), "", Flags{Theme: "solarized"})
		assert.Error(t, err)
	})

	t.Run("reads project .env", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EXECEXAM_MAXFAIL=3\n"), 0644))
		t.Setenv(EnvMaxFail, "")
		os.Unsetenv(EnvMaxFail)

		cfg, err := Load(dir, "", Flags{})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.MaxFail)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv(EnvPython, "/usr/bin/python3.12")
		t.Setenv(EnvMaxFail, "1")

		cfg, err := Load(t.TempDir(), "", Flags{})
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/python3.12", cfg.PythonBin)
		assert.Equal(t, 1, cfg.MaxFail)
	})

	t.Run("invalid maxfail", func(t *testing.T) {
		t.Setenv(EnvMaxFail, "zero")

		_, err := Load(t.TempDir(), "", Flags{})
		assert.Error(t, err)
	})
}
