package extension

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"pyfort/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return cfg
}

func TestGenerator_Describe(t *testing.T) {
	cfg := testConfig(t)
	gen := NewGenerator(cfg)

	suffix := ".cpython-312-x86_64-linux-gnu.so"
	artifact := gen.Describe(suffix)

	if artifact.FileName() != "getpmatelk.cpython-312-x86_64-linux-gnu.so" {
		t.Errorf("unexpected artifact file name: %s", artifact.FileName())
	}
	if filepath.Base(artifact.Path) != artifact.FileName() {
		t.Errorf("artifact path %s does not end in %s", artifact.Path, artifact.FileName())
	}
	if filepath.Dir(artifact.Path) != cfg.GetPythonDir() {
		t.Errorf("artifact should land in the python build dir, got %s", artifact.Path)
	}
	if filepath.Base(artifact.LogPath) != "getpmatelk.log" {
		t.Errorf("unexpected log path: %s", artifact.LogPath)
	}

	// Derivation is deterministic
	again := gen.Describe(suffix)
	if again != artifact {
		t.Error("Describe should be deterministic for the same configuration")
	}
}

func TestGenerator_BuildArgs_VendorFlags(t *testing.T) {
	tests := []struct {
		name      string
		vendor    string
		wantIntel bool
	}{
		{name: "intel vendor injects runtime link flags", vendor: "Intel", wantIntel: true},
		{name: "intel llvm vendor matches by substring", vendor: "IntelLLVM", wantIntel: true},
		{name: "gnu vendor gets no extra flags", vendor: "GNU", wantIntel: false},
		{name: "empty vendor gets no extra flags", vendor: "", wantIntel: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PYFORT_FC_VENDOR", tt.vendor)
			cfg := testConfig(t)
			gen := NewGenerator(cfg)
			args := gen.buildArgs(gen.Describe(".so"))

			argv := strings.Join(args, " ")
			hasLib := strings.Contains(argv, "-liomp5")
			hasCompiler := strings.Contains(argv, "--fcompiler=intelem")
			if hasLib != tt.wantIntel || hasCompiler != tt.wantIntel {
				t.Errorf("vendor %q: want intel flags %v, argv: %s", tt.vendor, tt.wantIntel, argv)
			}
		})
	}
}

func TestGenerator_BuildArgs_Shape(t *testing.T) {
	t.Setenv("PYFORT_FC_VENDOR", "GNU")
	t.Setenv("PYFORT_F90", "gfortran-13")
	t.Setenv("PYFORT_F77", "gfortran-13")
	cfg := testConfig(t)
	gen := NewGenerator(cfg)
	artifact := gen.Describe(".so")
	args := gen.buildArgs(artifact)

	if args[0] != "--build-dir" || args[1] != cfg.GetScratchDir() {
		t.Errorf("expected build-dir override first, got %v", args[:2])
	}
	if args[2] != "--f90exec=gfortran-13" || args[3] != "--f77exec=gfortran-13" {
		t.Errorf("unexpected compiler flags: %v", args[2:4])
	}
	// compile mode, input source, module name flag close the command line
	n := len(args)
	if args[n-4] != "-c" || args[n-3] != artifact.SourcePath || args[n-2] != "-m" || args[n-1] != "getpmatelk" {
		t.Errorf("unexpected tail: %v", args[n-4:])
	}
}

func TestGenerator_Generate_Validation(t *testing.T) {
	cfg := testConfig(t)
	gen := NewGenerator(cfg)

	t.Run("missing source file", func(t *testing.T) {
		artifact := gen.Describe(".so")
		if err := gen.Generate(context.Background(), artifact); err == nil {
			t.Error("expected error for missing source file")
		}
	})

	t.Run("invalid module name", func(t *testing.T) {
		artifact := gen.Describe(".so")
		artifact.ModuleName = "get-pmat-elk"
		if err := gen.Generate(context.Background(), artifact); err == nil {
			t.Error("expected error for invalid module name")
		}
	})
}

func TestDetectSuffix_MissingInterpreter(t *testing.T) {
	if _, err := DetectSuffix(context.Background(), "/non/existent/python3"); err == nil {
		t.Error("expected error for missing interpreter")
	}
}
