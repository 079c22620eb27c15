package execution

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"execexam/internal/config"
	"execexam/internal/domain"
	"execexam/internal/report"
)

const (
	pluginModule   = "execexam_assertions"
	reportFile     = "report.json"
	assertionsFile = "assertions.json"

	// EnvAssertionsFile tells the pytest plugin where to write the assertion stream.
	EnvAssertionsFile = "EXECEXAM_ASSERTIONS_FILE"
)

//go:embed plugin/execexam_assertions.py
var pluginSource []byte

var _ Executor = (*Runner)(nil)

// Runner executes pytest once for the configured tests
type Runner struct {
	config *config.Config
	parser report.Parser
	log    logrus.FieldLogger
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, parser report.Parser, log logrus.FieldLogger) *Runner {
	return &Runner{
		config: cfg,
		parser: parser,
		log:    log.WithField("component", "execution.runner"),
	}
}

// Args returns the pytest command line, writing the JSON report to reportPath.
func (r *Runner) Args(reportPath string) []string {
	args := []string{
		"-m", "pytest",
		"-q",
		"-ra",
		"-s",
		"-p", "no:logging",
		"-p", "no:warnings",
		"-p", pluginModule,
		"-o", "enable_assertion_pass_hook=true",
		"--tb=no",
		"--maxfail=" + strconv.Itoa(r.config.MaxFail),
		"--json-report",
		"--json-report-file=" + reportPath,
	}
	if r.config.Flags.Mark != "" {
		args = append(args, "-m", r.config.Flags.Mark)
	}
	return append(args, r.config.GetTestPath())
}

// Run executes pytest and returns the parsed reports with the captured
// output. A non-zero pytest exit code is not an error; a missing or
// malformed report is.
func (r *Runner) Run(ctx context.Context) (*domain.RunContext, error) {
	workDir, err := os.MkdirTemp("", "execexam-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	if err := os.WriteFile(filepath.Join(workDir, pluginModule+".py"), pluginSource, 0644); err != nil {
		return nil, fmt.Errorf("write pytest plugin: %w", err)
	}

	reportPath := filepath.Join(workDir, reportFile)
	assertionsPath := filepath.Join(workDir, assertionsFile)

	cmd := exec.CommandContext(ctx, r.config.PythonBin, r.Args(reportPath)...)
	cmd.Env = append(os.Environ(),
		"PYTHONPATH="+pythonPath(workDir, r.config.ProjectPath, os.Getenv("PYTHONPATH")),
		EnvAssertionsFile+"="+assertionsPath,
	)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	r.log.WithField("args", strings.Join(cmd.Args, " ")).Debug("running pytest")

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run pytest: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}
	r.log.WithField("exit_code", exitCode).Debug("pytest finished")

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return nil, fmt.Errorf("read pytest report (exit code %d, is pytest-json-report installed?): %w\n%s", exitCode, err, output.String())
	}
	runReport, err := r.parser.ParseRunReport(data)
	if err != nil {
		return nil, fmt.Errorf("parse pytest report: %w", err)
	}

	var assertions []domain.AssertionReport
	data, err = os.ReadFile(assertionsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.log.Debug("no assertion stream written")
	case err != nil:
		return nil, fmt.Errorf("read assertion stream: %w", err)
	default:
		if assertions, err = r.parser.ParseAssertionReports(data); err != nil {
			return nil, fmt.Errorf("parse assertion stream: %w", err)
		}
	}

	return &domain.RunContext{
		Report:     runReport,
		Assertions: assertions,
		Output:     output.String(),
		ExitCode:   exitCode,
	}, nil
}

// pythonPath puts the plugin dir and the project ahead of any existing entries.
func pythonPath(entries ...string) string {
	var parts []string
	for _, e := range entries {
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, string(os.PathListSeparator))
}
