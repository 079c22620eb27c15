package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"execexam/internal/cli"
	"execexam/internal/config"
	"execexam/internal/execution"
	"execexam/internal/report"
	"execexam/internal/source"
	"execexam/internal/storage"
	"execexam/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *logrus.Logger) *Commands {
	// Initialize dependencies
	jsonParser := report.NewJSONParser()
	runner := execution.NewRunner(cfg, jsonParser, log)
	retriever := source.NewRetriever(source.NewParser(), log)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, os.Stdout)
	viewer := ui.NewFailureViewer(jsonStorage, log)

	return &Commands{
		Run:      NewRunCommand(cfg, runner, retriever, jsonStorage, formatter, viewer, log),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, log *logrus.Logger) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run <project> <tests>",
		Short: "Run an executable exam",
		Long:  "Run the pytest suite in <tests> against the project in <project> and explain the failures",
		Args:  cobra.ExactArgs(2),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			loaded, err := config.Load(args[0], args[1], flags.ToConfigFlags())
			if err != nil {
				return err
			}
			*cfg = *loaded
			if flags.Verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&flags.Mark, "mark", "", "Run tests with specified mark(s)")
	runCmd.Flags().BoolVar(&flags.Fancy, "fancy", true, "Display fancy output")
	runCmd.Flags().StringVar(&flags.Theme, "theme", config.DefaultTheme, "Syntax highlighting theme (ansi_dark or ansi_light)")
	runCmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Display verbose output")
	runCmd.Flags().BoolVar(&flags.View, "view", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display the failing tests of the last run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ProjectPath = flags.Project
			return nil
		},
	}
	failuresCmd.Flags().StringVarP(&flags.Project, "project", "p", config.DefaultProjectPath, "Project directory of the last run")
	rootCmd.AddCommand(failuresCmd)
}
