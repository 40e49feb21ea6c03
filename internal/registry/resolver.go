package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pyfort/internal/config"
	"pyfort/internal/domain"
)

// Resolver maps manifest entries to script and fixture paths in the source
// tree. Resolution failures are configuration errors and abort the run before
// any test executes.
type Resolver struct {
	config *config.Config
}

// NewResolver creates a new Resolver
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{config: cfg}
}

// Resolve locates the script and fixture for every enabled manifest entry.
// Every enabled test must have a <name>.py script; every enumerated fixture
// must exist as a file or directory of the same name.
func (r *Resolver) Resolve(m Manifest) ([]domain.Test, error) {
	dir := filepath.Clean(r.config.GetScriptDir())
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("script directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("script path is not a directory: %s", dir)
	}

	// Every enumerated fixture must exist, including fixtures whose paired
	// test is disabled or not registered at all
	for _, name := range m.Fixtures {
		fixture := filepath.Join(dir, name)
		if _, err := os.Stat(fixture); err != nil {
			return nil, fmt.Errorf("fixture %s: not found: %s", name, fixture)
		}
	}

	var tests []domain.Test
	for _, entry := range m.Enabled() {
		script := filepath.Join(dir, entry.Name+".py")
		if _, err := os.Stat(script); err != nil {
			return nil, fmt.Errorf("test %s: script not found: %s", entry.Name, script)
		}

		test := domain.Test{Name: entry.Name, ScriptPath: script}

		if m.HasFixture(entry.Name) {
			test.FixturePath = filepath.Join(dir, entry.Name)
		}

		tests = append(tests, test)
	}

	return tests, nil
}

// Scan lists all test scripts in the script directory, registered or not.
// Hidden directories are skipped.
func (r *Resolver) Scan() ([]string, error) {
	var scripts []string

	root := filepath.Clean(r.config.GetScriptDir())
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("script directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("script path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), ".py") {
			scripts = append(scripts, path)
		}
		return nil
	})

	return scripts, err
}

// Unregistered returns scripts present on disk whose names appear nowhere in
// the manifest, enabled or disabled.
func (r *Resolver) Unregistered(m Manifest) ([]string, error) {
	scripts, err := r.Scan()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool)
	for _, e := range m.Tests {
		known[e.Name] = true
	}

	var missing []string
	for _, script := range scripts {
		name := strings.TrimSuffix(filepath.Base(script), ".py")
		if !known[name] {
			missing = append(missing, script)
		}
	}
	return missing, nil
}
