package commands

import (
	"fmt"

	"pyfort/internal/config"
	"pyfort/internal/extension"
	"pyfort/internal/ui"

	"github.com/spf13/cobra"
)

// BuildCommand handles the build command
type BuildCommand struct {
	config    *config.Config
	builder   extension.Builder
	formatter *ui.Formatter
}

// NewBuildCommand creates a new BuildCommand
func NewBuildCommand(cfg *config.Config, builder extension.Builder, formatter *ui.Formatter) *BuildCommand {
	return &BuildCommand{
		config:    cfg,
		builder:   builder,
		formatter: formatter,
	}
}

// Execute runs the command
func (bc *BuildCommand) Execute(cmd *cobra.Command, args []string) error {
	artifact, err := bc.builder.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("extension build failed: %w", err)
	}

	bc.formatter.PrintArtifact(artifact)
	return nil
}
