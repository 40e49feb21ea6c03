package commands

import (
	"pyfort/internal/cli"
	"pyfort/internal/config"
	"pyfort/internal/execution"
	"pyfort/internal/extension"
	"pyfort/internal/parser"
	"pyfort/internal/registry"
	"pyfort/internal/storage"
	"pyfort/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Build    *BuildCommand
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	resolver := registry.NewResolver(cfg)
	filter := registry.NewFilter()
	stager := registry.NewStager(cfg)
	caseParser := registry.NewParser()
	runner := execution.NewRunner(cfg)
	outputParser := parser.NewUnittestParser()
	executor := execution.NewWorkerPool(cfg, runner, outputParser)
	generator := extension.NewGenerator(cfg)
	installer := extension.NewInstaller(cfg)
	builder := extension.NewModuleBuilder(cfg, generator, installer)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, caseParser)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Build:    NewBuildCommand(cfg, builder, formatter),
		Run:      NewRunCommand(cfg, resolver, filter, stager, executor, outputParser, jsonStorage, formatter, builder, errorViewer),
		List:     NewListCommand(cfg, resolver, filter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Build command
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the Fortran extension module",
		Long:  "Generate the getpmatelk extension with f2py and install the binary into the python package tree",
		RunE:  c.Build.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	rootCmd.AddCommand(buildCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run converter regression tests in parallel",
		Long:  "Resolve, stage and execute the registered converter tests using parallel workers",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 4, "Number of parallel test workers")
	runCmd.Flags().BoolVarP(&flags.Build, "build", "b", false, "Build the extension module before running tests")
	runCmd.Flags().StringVarP(&flags.ScriptDir, "script-dir", "s", "", "Directory holding test scripts and fixtures")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. 'elk_bands*' or '*transport*')")
	runCmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "Manifest file replacing the built-in test list")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only tests that failed in the last run (from storage/test-results.json)")
	runCmd.Flags().BoolVar(&flags.RerunFailures, "rerun-failures", false, "After running all tests, rerun only failed ones once and save that result")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "Resolve and list the registered converter tests without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. 'elk_bands*' or '*transport*')")
	listCmd.Flags().StringVarP(&flags.ScriptDir, "script-dir", "s", "", "Directory holding test scripts and fixtures")
	listCmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "Manifest file replacing the built-in test list")
	listCmd.Flags().BoolVarP(&flags.All, "all", "a", false, "Also show disabled and unregistered scripts")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases instead of test scripts")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
