package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	t.Run("unittest style methods", func(t *testing.T) {
		script := filepath.Join(tmpDir, "elk_convert.py")
		content := `import unittest

class TestElkConverter(unittest.TestCase):
    def test_convert(self):
        pass

    def test_symmetries(self):
        pass

    def helper(self):
        pass
`
		if err := os.WriteFile(script, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}

		cases, err := parser.FindTestCases(script)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 2 {
			t.Fatalf("expected 2 cases, got %d: %v", len(cases), cases)
		}
		if cases[0] != "test_convert" || cases[1] != "test_symmetries" {
			t.Errorf("unexpected cases: %v", cases)
		}
	})

	t.Run("plain comparison script", func(t *testing.T) {
		script := filepath.Join(tmpDir, "elk_bands_convert.py")
		content := `from triqs_dft_tools.converters import elk
conv = elk.ElkConverter(filename='elk_bands')
conv.convert_bands_input()
h5diff('elk_bands_convert.out.h5', 'elk_bands_convert.ref.h5')
`
		if err := os.WriteFile(script, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}

		cases, err := parser.FindTestCases(script)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 1 || cases[0] != "reference comparison" {
			t.Errorf("unexpected cases: %v", cases)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := parser.FindTestCases("/non/existent.py"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
