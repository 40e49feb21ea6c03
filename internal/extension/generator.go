package extension

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"pyfort/internal/config"
	"pyfort/internal/domain"
)

// Generator invokes f2py to compile a Fortran source into a Python extension
// module.
type Generator struct {
	config *config.Config
}

// NewGenerator creates a new Generator
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{config: cfg}
}

var moduleNamePattern = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// Describe computes the artifact descriptor for the configured module and the
// given platform suffix. Purely derived from configuration.
func (g *Generator) Describe(suffix string) domain.Artifact {
	module := g.config.ModuleName
	return domain.Artifact{
		SourcePath: filepath.Join(g.config.ProjectPath, g.config.SourceFile),
		ModuleName: module,
		Suffix:     suffix,
		Path:       filepath.Join(g.config.GetPythonDir(), module+suffix),
		LogPath:    filepath.Join(g.config.GetBuildDir(), module+".log"),
	}
}

// buildArgs assembles the generator command line: build directory override,
// compiler executables, vendor link flags when needed, then compile mode,
// source and module name.
func (g *Generator) buildArgs(artifact domain.Artifact) []string {
	args := []string{
		"--build-dir", g.config.GetScratchDir(),
		"--f90exec=" + g.config.GetF90(),
		"--f77exec=" + g.config.GetF77(),
	}

	// f2py turns on OpenMP for the Intel toolchain but the Intel compilers do
	// not implicitly link the OpenMP runtime, so it has to be named here.
	if strings.Contains(g.config.GetCompilerVendor(), "Intel") {
		args = append(args, "-liomp5", "--fcompiler=intelem")
	}

	args = append(args, "-c", artifact.SourcePath, "-m", artifact.ModuleName)
	return args
}

// Generate runs the generator for the artifact with stdout captured in the
// artifact's log file. A nonzero exit fails the build; no artifact is
// produced and nothing is cleaned up or retried.
func (g *Generator) Generate(ctx context.Context, artifact domain.Artifact) error {
	if !moduleNamePattern.MatchString(artifact.ModuleName) {
		return fmt.Errorf("invalid module name: %s", artifact.ModuleName)
	}
	if _, err := os.Stat(artifact.SourcePath); err != nil {
		return fmt.Errorf("source file not found: %s", artifact.SourcePath)
	}

	for _, dir := range []string{g.config.GetPythonDir(), g.config.GetScratchDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create build dir: %w", err)
		}
	}

	logFile, err := os.Create(artifact.LogPath)
	if err != nil {
		return fmt.Errorf("create generator log: %w", err)
	}
	defer logFile.Close()

	// Run in the python output dir so the binary lands where tests pick it
	// up via PYTHONPATH
	cmd := exec.CommandContext(ctx, g.config.GetGenerator(), g.buildArgs(artifact)...)
	cmd.Dir = g.config.GetPythonDir()
	cmd.Stdout = logFile
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("generator failed for %s (see %s): %w\n%s",
			artifact.ModuleName, artifact.LogPath, err, stderr.String())
	}

	if _, err := os.Stat(artifact.Path); err != nil {
		return fmt.Errorf("generator exited zero but produced no %s", artifact.FileName())
	}
	return nil
}
