package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	ScriptDir   string

	// Build settings
	BuildDir    string
	ModuleName  string
	SourceFile  string
	ProjectName string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Workers int

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults. A .env file in the working
// directory is loaded when present so compiler and interpreter overrides can
// live next to the project.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectPath:    DefaultProjectPath,
		ScriptDir:      DefaultScriptDir,
		BuildDir:       DefaultBuildDir,
		ModuleName:     DefaultModuleName,
		SourceFile:     DefaultSourceFile,
		ProjectName:    DefaultProjectName,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
		Flags:          Flags{Workers: DefaultWorkers},
	}
}

// GetScriptDir returns the test script source directory, using the flag if provided
func (c *Config) GetScriptDir() string {
	if c.Flags.ScriptDir != "" {
		if filepath.IsAbs(c.Flags.ScriptDir) {
			return c.Flags.ScriptDir
		}
		return filepath.Join(c.ProjectPath, c.Flags.ScriptDir)
	}
	return filepath.Join(c.ProjectPath, c.ScriptDir)
}

// GetBuildDir returns the build output directory under the project
func (c *Config) GetBuildDir() string {
	if filepath.IsAbs(c.BuildDir) {
		return c.BuildDir
	}
	return filepath.Join(c.ProjectPath, c.BuildDir)
}

// GetPythonDir returns the directory the generated extension is written to.
// Test processes get this prepended to PYTHONPATH so the freshly built module
// wins over any system-installed copy.
func (c *Config) GetPythonDir() string {
	return filepath.Join(c.GetBuildDir(), "python")
}

// GetStageDir returns the directory test scripts and fixtures are copied into
func (c *Config) GetStageDir() string {
	return filepath.Join(c.GetBuildDir(), "tests")
}

// GetScratchDir returns the generator's intermediate build directory
func (c *Config) GetScratchDir() string {
	return filepath.Join(c.GetBuildDir(), "scratch")
}

// GetInstallDir returns the destination tree for built extension binaries:
// <python lib root>/<project>/converters/elktools
func (c *Config) GetInstallDir() string {
	root := os.Getenv("PYFORT_PYTHON_LIB_ROOT")
	if root == "" {
		root = filepath.Join(c.ProjectPath, "install", "lib", "python")
	}
	return filepath.Join(root, c.ProjectName, filepath.FromSlash(InstallSubdir))
}

// GetOutputPath returns the full path to the output JSON file (under project so
// run and failures use the same file). Resolves to an absolute path so both
// always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetManifestPath returns the manifest file path, using the flag if provided.
// Empty string means no manifest file and the built-in test list applies.
func (c *Config) GetManifestPath() string {
	if c.Flags.Manifest != "" {
		return c.Flags.Manifest
	}
	p := filepath.Join(c.ProjectPath, DefaultManifestFile)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// GetPython returns the Python interpreter executable
func (c *Config) GetPython() string {
	if p := os.Getenv("PYFORT_PYTHON"); p != "" {
		return p
	}
	return DefaultPython
}

// GetGenerator returns the extension module generator executable
func (c *Config) GetGenerator() string {
	if g := os.Getenv("PYFORT_F2PY"); g != "" {
		return g
	}
	return DefaultGenerator
}

// GetF90 returns the Fortran 90 compiler executable
func (c *Config) GetF90() string {
	if f := os.Getenv("PYFORT_F90"); f != "" {
		return f
	}
	if f := os.Getenv("FC"); f != "" {
		return f
	}
	return DefaultF90
}

// GetF77 returns the Fortran 77 compiler executable
func (c *Config) GetF77() string {
	if f := os.Getenv("PYFORT_F77"); f != "" {
		return f
	}
	return c.GetF90()
}

// GetCompilerVendor returns the Fortran compiler vendor identifier string
func (c *Config) GetCompilerVendor() string {
	if v := os.Getenv("PYFORT_FC_VENDOR"); v != "" {
		return v
	}
	return "GNU"
}

// GetExtSuffix returns the platform extension suffix override, empty when the
// suffix should be queried from the interpreter instead
func (c *Config) GetExtSuffix() string {
	return os.Getenv("PYFORT_EXT_SUFFIX")
}
