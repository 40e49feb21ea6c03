package registry

import (
	"os"
	"path/filepath"
	"testing"

	"pyfort/internal/config"
	"pyfort/internal/domain"
)

// stagerFor returns a Stager staging into projectDir/build/tests
func stagerFor(projectDir string) (*Stager, string) {
	cfg := config.New()
	cfg.ProjectPath = projectDir
	return NewStager(cfg), cfg.GetStageDir()
}

func TestStager_Stage(t *testing.T) {
	srcDir := t.TempDir()
	stager, stageDir := stagerFor(t.TempDir())

	// Script plus a directory fixture with a nested file
	script := filepath.Join(srcDir, "elk_convert.py")
	if err := os.WriteFile(script, []byte("from triqs_dft_tools.converters import elk\n"), 0644); err != nil {
		t.Fatalf("failed to create script: %v", err)
	}
	fixture := filepath.Join(srcDir, "elk_convert")
	if err := os.MkdirAll(filepath.Join(fixture, "species"), 0755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	for _, f := range []string{"EFERMI.OUT", "LATTICE.OUT", "species/Sr.in"} {
		if err := os.WriteFile(filepath.Join(fixture, f), []byte("data"), 0644); err != nil {
			t.Fatalf("failed to create fixture file %s: %v", f, err)
		}
	}

	staged, err := stager.Stage([]domain.Test{
		{Name: "elk_convert", ScriptPath: script, FixturePath: fixture},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(staged) != 1 {
		t.Fatalf("expected 1 staged test, got %d", len(staged))
	}

	t.Run("script copied into stage dir", func(t *testing.T) {
		if staged[0].ScriptPath != filepath.Join(stageDir, "elk_convert.py") {
			t.Errorf("unexpected staged script path: %s", staged[0].ScriptPath)
		}
		if _, err := os.Stat(staged[0].ScriptPath); err != nil {
			t.Errorf("staged script missing: %v", err)
		}
	})

	t.Run("fixture tree copied recursively", func(t *testing.T) {
		nested := filepath.Join(stageDir, "elk_convert", "species", "Sr.in")
		data, err := os.ReadFile(nested)
		if err != nil {
			t.Fatalf("nested fixture file missing: %v", err)
		}
		if string(data) != "data" {
			t.Errorf("fixture content mismatch: %q", data)
		}
	})
}

func TestStager_Stage_FileFixture(t *testing.T) {
	srcDir := t.TempDir()
	stager, _ := stagerFor(t.TempDir())

	script := filepath.Join(srcDir, "elk_bands_convert.py")
	if err := os.WriteFile(script, []byte(""), 0644); err != nil {
		t.Fatalf("failed to create script: %v", err)
	}
	fixture := filepath.Join(srcDir, "elk_bands_convert")
	if err := os.WriteFile(fixture, []byte("reference"), 0644); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}

	staged, err := stager.Stage([]domain.Test{
		{Name: "elk_bands_convert", ScriptPath: script, FixturePath: fixture},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(staged[0].FixturePath)
	if err != nil {
		t.Fatalf("staged fixture missing: %v", err)
	}
	if string(data) != "reference" {
		t.Errorf("fixture content mismatch: %q", data)
	}
}

func TestStager_Stage_MissingScript(t *testing.T) {
	stager, _ := stagerFor(t.TempDir())
	staged, err := stager.Stage([]domain.Test{
		{Name: "elk_convert", ScriptPath: "/non/existent/elk_convert.py"},
	})
	if err == nil {
		t.Error("expected error for missing script")
	}
	if staged != nil {
		t.Error("expected no staged tests on failure")
	}
}
