package domain

// Artifact describes a generated extension module. Derived purely from
// configuration; immutable once computed.
type Artifact struct {
	SourcePath string // Fortran source the module was generated from
	ModuleName string // Importable module name
	Suffix     string // Platform extension suffix (e.g. ".cpython-312-x86_64-linux-gnu.so")
	Path       string // Full path to the binary under the build directory
	LogPath    string // Generator stdout log
}

// FileName returns the deterministic artifact file name, module name plus
// the platform suffix.
func (a Artifact) FileName() string {
	return a.ModuleName + a.Suffix
}
