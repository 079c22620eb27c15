package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	PythonBin string
	MaxFail   int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Mark    string
	Fancy   bool
	Theme   string
	Verbose bool
	View    bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		PythonBin:      DefaultPythonBin,
		MaxFail:        DefaultMaxFail,
		Flags:          Flags{Fancy: true, Theme: DefaultTheme},
	}
}

// Load creates a config for the given project and tests, applies flags and
// then environment overrides. A .env file in the project directory is read
// first when it exists.
func Load(projectPath, testPath string, flags Flags) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}
	if testPath != "" {
		cfg.TestPath = testPath
	}
	cfg.Flags = flags
	if cfg.Flags.Theme == "" {
		cfg.Flags.Theme = DefaultTheme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	envPath := filepath.Join(cfg.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envPath, err)
	}

	if v := os.Getenv(EnvPython); v != "" {
		cfg.PythonBin = v
	}
	if v := os.Getenv(EnvMaxFail); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", EnvMaxFail, v)
		}
		cfg.MaxFail = n
	}

	return cfg, nil
}

// Validate checks flag values that cobra cannot check itself.
func (c *Config) Validate() error {
	if !slices.Contains(Themes, c.Flags.Theme) {
		return fmt.Errorf("unknown theme %q (expected one of %v)", c.Flags.Theme, Themes)
	}
	return nil
}

// GetTestPath returns the test file or directory, relative to the project
// path unless it is absolute.
func (c *Config) GetTestPath() string {
	if filepath.IsAbs(c.TestPath) {
		return c.TestPath
	}
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetOutputPath returns the full path to the stored diagnostics file.
// Resolves to an absolute path so run and failures always use the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Parameters returns the run parameters in display order.
func (c *Config) Parameters() [][2]string {
	return [][2]string{
		{"project", c.ProjectPath},
		{"tests", c.TestPath},
		{"mark", c.Flags.Mark},
		{"fancy", strconv.FormatBool(c.Flags.Fancy)},
		{"syntax_theme", c.Flags.Theme},
		{"verbose", strconv.FormatBool(c.Flags.Verbose)},
		{"python", c.PythonBin},
		{"maxfail", strconv.Itoa(c.MaxFail)},
	}
}
