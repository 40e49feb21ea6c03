package execution

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"pyfort/internal/config"
	"pyfort/internal/domain"
)

// Runner executes a single staged test script with the interpreter
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes the interpreter for a single staged test. The test's pass or
// fail is its exit status; each test gets its own process and environment.
func (r *Runner) Run(test domain.Test) domain.TestResult {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, r.config.GetPython(), filepath.Base(test.ScriptPath))

	// Run in the stage dir so the script sees its fixture by relative path
	cmd.Dir = filepath.Dir(test.ScriptPath)
	cmd.Env = buildEnv(os.Environ(), r.config.GetPythonDir())

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return domain.TestResult{
		TestName: test.Name,
		Success:  err == nil,
		Output:   string(output),
		Error:    err,
		Duration: time.Since(start),
	}
}

// buildEnv returns base with pythonDir prepended to PYTHONPATH so the freshly
// built extension resolves before any system-installed copy. Everything else,
// including any sanitizer preload variable, passes through unmodified.
func buildEnv(base []string, pythonDir string) []string {
	sep := string(os.PathListSeparator)
	env := make([]string, 0, len(base)+1)

	found := false
	for _, kv := range base {
		if strings.HasPrefix(kv, "PYTHONPATH=") {
			existing := strings.TrimPrefix(kv, "PYTHONPATH=")
			if existing == "" {
				env = append(env, "PYTHONPATH="+pythonDir)
			} else {
				env = append(env, "PYTHONPATH="+pythonDir+sep+existing)
			}
			found = true
			continue
		}
		env = append(env, kv)
	}

	if !found {
		env = append(env, "PYTHONPATH="+pythonDir)
	}
	return env
}
