package extension

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pyfort/internal/config"
)

// Installer copies built extension binaries into the python package tree
type Installer struct {
	config *config.Config
}

// NewInstaller creates a new Installer
func NewInstaller(cfg *config.Config) *Installer {
	return &Installer{config: cfg}
}

// excludePatterns are build-system bookkeeping entries that must never be
// installed even when they match the binary glob
var excludePatterns = []string{"CMakeFiles*"}

// installMode is rwxr-xr-x: read and execute for everyone, write only for
// the owner
const installMode = os.FileMode(0755)

// Install copies every file in the build python dir matching the platform
// suffix into the install destination, with explicit permission bits. It
// returns the installed paths.
func (i *Installer) Install(suffix string) ([]string, error) {
	pattern := filepath.Join(i.config.GetPythonDir(), "*"+suffix)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no built extension matches %s", pattern)
	}

	destDir := i.config.GetInstallDir()
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create install dir: %w", err)
	}

	var installed []string
	for _, src := range matches {
		name := filepath.Base(src)
		if excluded(name) {
			continue
		}
		info, err := os.Stat(src)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}

		dst := filepath.Join(destDir, name)
		if err := installFile(src, dst); err != nil {
			return nil, fmt.Errorf("install %s: %w", name, err)
		}
		installed = append(installed, dst)
	}

	return installed, nil
}

func excluded(name string) bool {
	for _, pattern := range excludePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func installFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, installMode)
}
