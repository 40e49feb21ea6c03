package registry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pyfort/internal/config"
	"pyfort/internal/domain"
)

// Stager copies resolved scripts and fixtures into the build output
// directory, where tests run with the freshly built extension on their path.
type Stager struct {
	config *config.Config
}

// NewStager creates a new Stager
func NewStager(cfg *config.Config) *Stager {
	return &Stager{config: cfg}
}

// Stage copies each test's script and fixture into the stage directory and
// returns the tests with their staged paths.
func (s *Stager) Stage(tests []domain.Test) ([]domain.Test, error) {
	stageDir := s.config.GetStageDir()
	if err := os.MkdirAll(stageDir, 0755); err != nil {
		return nil, fmt.Errorf("create stage dir: %w", err)
	}

	staged := make([]domain.Test, 0, len(tests))
	for _, test := range tests {
		dst := filepath.Join(stageDir, test.Name+".py")
		if err := copyFile(test.ScriptPath, dst); err != nil {
			return nil, fmt.Errorf("stage script for %s: %w", test.Name, err)
		}
		out := domain.Test{Name: test.Name, ScriptPath: dst}

		if test.FixturePath != "" {
			fixDst := filepath.Join(stageDir, filepath.Base(test.FixturePath))
			if err := copyPath(test.FixturePath, fixDst); err != nil {
				return nil, fmt.Errorf("stage fixture for %s: %w", test.Name, err)
			}
			out.FixturePath = fixDst
		}

		staged = append(staged, out)
	}

	return staged, nil
}

// copyPath copies a file or directory tree
func copyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(src, dst)
	}
	return copyFile(src, dst)
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
