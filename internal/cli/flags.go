package cli

import "pyfort/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers       int
	Build         bool
	ScriptDir     string
	NameFilter    string
	Manifest      string
	All           bool
	TestCases     bool
	FailFast      bool
	OnlyFailed    bool
	RerunFailures bool
	OpenFailures  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:       f.Workers,
		Build:         f.Build,
		ScriptDir:     f.ScriptDir,
		NameFilter:    f.NameFilter,
		Manifest:      f.Manifest,
		All:           f.All,
		TestCases:     f.TestCases,
		FailFast:      f.FailFast,
		OnlyFailed:    f.OnlyFailed,
		RerunFailures: f.RerunFailures,
		OpenFailures:  f.OpenFailures,
	}
}
