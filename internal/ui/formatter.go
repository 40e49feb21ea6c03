package ui

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"pyfort/internal/config"
	"pyfort/internal/domain"
	"pyfort/internal/registry"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *registry.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *registry.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintMetaStats displays the statistics of a completed run
func (f *Formatter) PrintMetaStats(output *domain.TestResultsOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                  Converter Test Run Statistics                ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Tests")
	color.Green("%-27d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Tests")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All converter tests passed!")
	} else {
		color.Red("✗ %d test(s) failed with %d case failure(s)", meta.FailedTests, meta.FailedTestCases)
		fmt.Println()
		f.printFailures(output.Details)
	}
}

// printFailures prints failed cases grouped by script
func (f *Formatter) printFailures(failures []domain.TestFailure) {
	if len(failures) == 0 {
		return
	}

	byScript := make(map[string][]domain.TestFailure)
	for _, failure := range failures {
		byScript[failure.ScriptName] = append(byScript[failure.ScriptName], failure)
	}

	scripts := make([]string, 0, len(byScript))
	for s := range byScript {
		scripts = append(scripts, s)
	}
	sort.Strings(scripts)

	for _, script := range scripts {
		color.Red("  %s", script)
		group := byScript[script]
		for i, failure := range group {
			branch := "├──"
			if i == len(group)-1 {
				branch = "└──"
			}
			name := failure.TestName
			if name == "" {
				name = "(script)"
			}
			fmt.Printf("  %s %s", branch, color.YellowString(name))
			if failure.Message != "" {
				fmt.Printf(": %s", failure.Message)
			}
			fmt.Println()
		}
	}
}

// PrintTestList prints the registered tests, optionally with their test cases
func (f *Formatter) PrintTestList(tests []domain.Test, showCases bool) error {
	color.Cyan("Registered tests (%d):", len(tests))
	for _, test := range tests {
		fixture := ""
		if test.FixturePath != "" {
			fixture = color.WhiteString(" [fixture]")
		}
		fmt.Printf("  %s%s\n", color.GreenString(test.Name), fixture)

		if !showCases {
			continue
		}
		cases, err := f.parser.FindTestCases(test.ScriptPath)
		if err != nil {
			return err
		}
		for _, c := range cases {
			fmt.Printf("    - %s\n", c)
		}
	}
	return nil
}

// PrintDisabled prints the manifest entries that are registered but disabled
func (f *Formatter) PrintDisabled(entries []registry.Entry) {
	var disabled []registry.Entry
	for _, e := range entries {
		if e.Disabled {
			disabled = append(disabled, e)
		}
	}
	if len(disabled) == 0 {
		return
	}

	fmt.Println()
	color.Yellow("Disabled tests (%d):", len(disabled))
	for _, e := range disabled {
		reason := e.Reason
		if reason == "" {
			reason = "no reason given"
		}
		fmt.Printf("  %s (%s)\n", color.YellowString(e.Name), reason)
	}
}

// PrintArtifact reports a completed extension build
func (f *Formatter) PrintArtifact(artifact domain.Artifact) {
	color.Green("✓ Built %s", artifact.FileName())
	fmt.Printf("  source:    %s\n", artifact.SourcePath)
	fmt.Printf("  artifact:  %s\n", artifact.Path)
	fmt.Printf("  log:       %s\n", artifact.LogPath)
	fmt.Printf("  installed: %s\n", f.config.GetInstallDir())
}
