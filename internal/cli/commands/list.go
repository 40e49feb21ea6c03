package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"pyfort/internal/config"
	"pyfort/internal/registry"
	"pyfort/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	resolver  *registry.Resolver
	filter    *registry.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	resolver *registry.Resolver,
	filter *registry.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		resolver:  resolver,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	manifest, err := registry.Load(lc.config.GetManifestPath())
	if err != nil {
		return err
	}

	tests, err := lc.resolver.Resolve(manifest)
	if err != nil {
		return err
	}

	tests = lc.filter.FilterByName(tests, lc.config.Flags.NameFilter)

	if len(tests) == 0 {
		color.Yellow("No tests registered")
		return nil
	}

	if err := lc.formatter.PrintTestList(tests, lc.config.Flags.TestCases); err != nil {
		return err
	}

	if lc.config.Flags.All {
		lc.formatter.PrintDisabled(manifest.Tests)

		unregistered, err := lc.resolver.Unregistered(manifest)
		if err != nil {
			return err
		}
		if len(unregistered) > 0 {
			color.Yellow("\nScripts on disk not registered (%d):", len(unregistered))
			for _, script := range unregistered {
				color.White("  %s", script)
			}
		}
	}

	return nil
}
