package commands

import (
	"github.com/spf13/cobra"

	"execexam/internal/cli"
	"execexam/internal/config"
	"execexam/internal/storage"
	"execexam/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	diagnostics, err := fc.storage.Load()
	if err != nil {
		return cli.RunError(err)
	}

	if err := fc.viewer.View(diagnostics); err != nil {
		return cli.RunError(err)
	}
	return nil
}
