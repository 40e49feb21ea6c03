package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultScriptDir is the default directory holding test scripts and fixtures
	DefaultScriptDir = "test/python"
	// DefaultBuildDir is the default build output directory
	DefaultBuildDir = "build"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultWorkers is the default number of parallel test workers
	DefaultWorkers = 4
	// DefaultPython is the interpreter used to run tests and query the suffix
	DefaultPython = "python3"
	// DefaultGenerator is the extension module generator executable
	DefaultGenerator = "f2py"
	// DefaultF90 is the default Fortran compiler; F77 compilation reuses it
	// unless PYFORT_F77 overrides
	DefaultF90 = "gfortran"
	// DefaultModuleName is the extension module built by the harness
	DefaultModuleName = "getpmatelk"
	// DefaultSourceFile is the Fortran source the module is generated from
	DefaultSourceFile = "fortran/getpmatelk.f90"
	// InstallSubdir is where built extensions land under the python lib root
	InstallSubdir = "converters/elktools"
	// DefaultProjectName is the package directory under the python lib root
	DefaultProjectName = "dft_tools"
)

// DefaultManifestFile is the optional manifest file looked up in the project root
const DefaultManifestFile = "pyfort.yaml"
