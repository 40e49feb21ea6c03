package commands

import (
	"fmt"
	"strings"

	"pyfort/internal/config"
	"pyfort/internal/domain"
	"pyfort/internal/execution"
	"pyfort/internal/extension"
	"pyfort/internal/parser"
	"pyfort/internal/registry"
	"pyfort/internal/storage"
	"pyfort/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	resolver  *registry.Resolver
	filter    *registry.Filter
	stager    *registry.Stager
	executor  execution.Executor
	parser    parser.Parser
	storage   storage.Storage
	formatter *ui.Formatter
	builder   extension.Builder
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	resolver *registry.Resolver,
	filter *registry.Filter,
	stager *registry.Stager,
	executor execution.Executor,
	outputParser parser.Parser,
	st storage.Storage,
	formatter *ui.Formatter,
	builder extension.Builder,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		resolver:  resolver,
		filter:    filter,
		stager:    stager,
		executor:  executor,
		parser:    outputParser,
		storage:   st,
		formatter: formatter,
		builder:   builder,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Build the extension first if requested; tests import the module the
	// build just produced
	if rc.config.Flags.Build {
		artifact, err := rc.builder.Build(cmd.Context())
		if err != nil {
			return fmt.Errorf("extension build failed: %w", err)
		}
		rc.formatter.PrintArtifact(artifact)
		fmt.Println()
	}

	// Resolve the registered tests
	manifest, err := registry.Load(rc.config.GetManifestPath())
	if err != nil {
		return err
	}
	tests, err := rc.resolver.Resolve(manifest)
	if err != nil {
		return err
	}

	tests = rc.filter.FilterByName(tests, rc.config.Flags.NameFilter)

	if rc.config.Flags.OnlyFailed {
		tests, err = rc.keepLastRunFailures(tests)
		if err != nil {
			return err
		}
	}

	if len(tests) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	// Stage scripts and fixtures into the build tree
	staged, err := rc.stager.Stage(tests)
	if err != nil {
		return err
	}

	progressBar := ui.NewProgressBar(len(staged))
	rc.executor.SetProgress(progressBar)

	results, duration, err := rc.executor.ExecuteWithOptions(staged, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	if rc.config.Flags.RerunFailures {
		results = rc.rerunFailures(staged, results)
	}

	var failures []domain.TestFailure
	for _, result := range results {
		if !result.Success {
			failures = append(failures, rc.parser.ParseFailure(result)...)
		}
	}

	if err := rc.storage.Save(results, failures, duration, rc.config.Workers); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	output, err := rc.storage.Load()
	if err != nil {
		return err
	}
	rc.formatter.PrintMetaStats(output)

	if rc.config.Flags.OpenFailures && len(failures) > 0 {
		return rc.viewer.View(output)
	}
	return nil
}

// keepLastRunFailures keeps only the tests that failed in the previous run
func (rc *RunCommand) keepLastRunFailures(tests []domain.Test) ([]domain.Test, error) {
	output, err := rc.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("no previous run results: %w", err)
	}

	failed := make(map[string]bool)
	for _, failure := range output.Details {
		failed[strings.TrimSuffix(failure.ScriptName, ".py")] = true
	}

	var kept []domain.Test
	for _, test := range tests {
		if failed[test.Name] {
			kept = append(kept, test)
		}
	}
	return kept, nil
}

// rerunFailures reruns each failed test once and replaces its result with the
// rerun's outcome, so a flaky pass clears the failure and a repeat failure
// carries the latest output
func (rc *RunCommand) rerunFailures(staged []domain.Test, results []domain.TestResult) []domain.TestResult {
	byName := make(map[string]domain.Test)
	for _, test := range staged {
		byName[test.Name] = test
	}

	var toRerun []domain.Test
	for _, result := range results {
		if !result.Success {
			if test, ok := byName[result.TestName]; ok {
				toRerun = append(toRerun, test)
			}
		}
	}
	if len(toRerun) == 0 {
		return results
	}

	color.Yellow("\nRerunning %d failed test(s)...", len(toRerun))
	rc.executor.SetProgress(nil)
	rerun, _, err := rc.executor.Execute(toRerun)
	if err != nil {
		return results
	}

	latest := make(map[string]domain.TestResult)
	for _, r := range rerun {
		latest[r.TestName] = r
	}
	for i, result := range results {
		if r, ok := latest[result.TestName]; ok {
			results[i] = r
		}
	}
	return results
}
