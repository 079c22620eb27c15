package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"execexam/internal/cli"
	"execexam/internal/config"
	"execexam/internal/diagnostics"
	"execexam/internal/execution"
	"execexam/internal/report"
	"execexam/internal/source"
	"execexam/internal/storage"
	"execexam/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	executor  execution.Executor
	retriever *source.Retriever
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
	log       logrus.FieldLogger
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	executor execution.Executor,
	retriever *source.Retriever,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
	log logrus.FieldLogger,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		executor:  executor,
		retriever: retriever,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
		log:       log.WithField("component", "commands.run"),
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rc.formatter.PrintParameters()

	spinner := ui.NewSpinner(os.Stderr, "Running tests")
	spinner.Start()
	run, err := rc.executor.Run(ctx)
	spinner.Stop()
	if err != nil {
		rc.formatter.PrintError("Test run failed", err)
		return cli.RunError(err)
	}

	if unknown := report.Correlate(run.Report, run.Assertions); len(unknown) > 0 {
		rc.log.WithField("nodeids", unknown).Warn("assertion reports without a matching test")
	}

	result := diagnostics.Assemble(run)
	if result.HasFailures {
		snippets, err := rc.retriever.RetrieveAll(ctx, result.Locations)
		if err != nil {
			return cli.RunError(err)
		}
		result.Snippets = snippets
	}

	rc.formatter.PrintDiagnostics(&result)
	rc.formatter.PrintSummary(&result)

	if err := rc.storage.Save(&result); err != nil {
		rc.log.WithError(err).Warn("could not store results for the failures viewer")
	}

	if !result.HasFailures {
		return nil
	}
	if rc.config.Flags.View {
		if err := rc.viewer.View(&result); err != nil {
			return cli.RunError(err)
		}
	}
	return &cli.ExitError{Code: cli.ExitTestsFailed}
}
