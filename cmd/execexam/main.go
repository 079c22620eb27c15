package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"execexam/internal/cli"
	"execexam/internal/cli/commands"
	"execexam/internal/config"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "execexam",
		Short:         "Run an executable examination",
		Long:          `Run a pytest suite against a student submission and explain every failing test: the failing assertion, where the test lives and its source.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	log := newLogger()

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, log)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	var exitErr *cli.ExitError
	if err != nil && (!errors.As(err, &exitErr) || exitErr.Err != nil) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
