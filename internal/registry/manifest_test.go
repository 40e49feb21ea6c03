package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_ExcludesDisabledEntries(t *testing.T) {
	m := Default()

	enabled := m.Enabled()
	for _, e := range enabled {
		if e.Name == "elk_bandcharacter_convert" {
			t.Error("disabled entry should not appear in the registered set")
		}
	}

	// The disabled entry still exists in the manifest with a reason
	found := false
	for _, e := range m.Tests {
		if e.Name == "elk_bandcharacter_convert" {
			found = true
			if !e.Disabled {
				t.Error("elk_bandcharacter_convert should be disabled")
			}
			if e.Reason == "" {
				t.Error("disabled entry should carry a reason")
			}
		}
	}
	if !found {
		t.Error("expected elk_bandcharacter_convert in the manifest")
	}

	if len(enabled) != 5 {
		t.Errorf("expected 5 enabled tests, got %d", len(enabled))
	}
}

func TestManifest_HasFixture(t *testing.T) {
	m := Default()

	if !m.HasFixture("elk_convert") {
		t.Error("expected fixture for elk_convert")
	}
	if m.HasFixture("elk_bandcharacter_convert") {
		t.Error("did not expect fixture for disabled test")
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns built-in manifest", func(t *testing.T) {
		m, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m.Tests) != len(Default().Tests) {
			t.Errorf("expected built-in manifest, got %d tests", len(m.Tests))
		}
	})

	t.Run("loads manifest file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "pyfort.yaml")
		content := `tests:
  - name: elk_convert
  - name: elk_bands_convert
    disabled: true
    reason: temporarily off
fixtures:
  - elk_convert
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}

		m, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m.Tests) != 2 {
			t.Fatalf("expected 2 tests, got %d", len(m.Tests))
		}
		if len(m.Enabled()) != 1 {
			t.Errorf("expected 1 enabled test, got %d", len(m.Enabled()))
		}
		if !m.HasFixture("elk_convert") {
			t.Error("expected elk_convert fixture")
		}
	})

	t.Run("rejects empty manifest", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "pyfort.yaml")
		if err := os.WriteFile(path, []byte("fixtures: []\n"), 0644); err != nil {
			t.Fatalf("failed to write manifest: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for manifest with no tests")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load("/non/existent/pyfort.yaml"); err == nil {
			t.Error("expected error for missing manifest file")
		}
	})
}
