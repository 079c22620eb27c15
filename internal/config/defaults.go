package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path, relative to the project
	DefaultTestPath = "tests"
	// DefaultOutputJSONFile is the file the last run's diagnostics are stored in
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the directory under the project holding DefaultOutputJSONFile
	DefaultOutputJSONDir = ".execexam"
	// DefaultPythonBin is the interpreter used to run pytest
	DefaultPythonBin = "python3"
	// DefaultMaxFail stops pytest after this many failures
	DefaultMaxFail = 10
	// DefaultTheme is the default colour theme
	DefaultTheme = ThemeAnsiDark
)

// Themes for console output.
const (
	ThemeAnsiDark  = "ansi_dark"
	ThemeAnsiLight = "ansi_light"
)

// Themes lists the accepted --theme values.
var Themes = []string{ThemeAnsiDark, ThemeAnsiLight}

// Environment variables read by Load.
const (
	EnvPython  = "EXECEXAM_PYTHON"
	EnvMaxFail = "EXECEXAM_MAXFAIL"
)
