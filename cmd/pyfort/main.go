package main

import (
	"fmt"
	"os"

	"pyfort/internal/cli"
	"pyfort/internal/cli/commands"
	"pyfort/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "pyfort",
		Short:   "Fortran extension build and regression test harness",
		Long:    `Build the Elk momentum-matrix Fortran extension module with f2py and run the converter regression test battery against it.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
