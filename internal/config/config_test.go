package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetScriptDir(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				ScriptDir:   "test/python",
				Flags:       Flags{},
			},
			expected: filepath.Join(".", "test/python"),
		},
		{
			name: "with script dir flag",
			config: &Config{
				ProjectPath: "/project",
				ScriptDir:   "test/python",
				Flags: Flags{
					ScriptDir: "tests",
				},
			},
			expected: "/project/tests",
		},
		{
			name: "absolute script dir",
			config: &Config{
				ProjectPath: "/project",
				ScriptDir:   "test/python",
				Flags: Flags{
					ScriptDir: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetScriptDir()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetInstallDir(t *testing.T) {
	cfg := New()

	t.Run("default under project install tree", func(t *testing.T) {
		t.Setenv("PYFORT_PYTHON_LIB_ROOT", "")
		dir := cfg.GetInstallDir()
		expected := filepath.Join(".", "install", "lib", "python", DefaultProjectName, "converters", "elktools")
		if dir != expected {
			t.Errorf("expected %s, got %s", expected, dir)
		}
	})

	t.Run("env override for the lib root", func(t *testing.T) {
		t.Setenv("PYFORT_PYTHON_LIB_ROOT", "/usr/lib/python3/site-packages")
		dir := cfg.GetInstallDir()
		expected := filepath.Join("/usr/lib/python3/site-packages", DefaultProjectName, "converters", "elktools")
		if dir != expected {
			t.Errorf("expected %s, got %s", expected, dir)
		}
	})
}

func TestConfig_EnvOverrides(t *testing.T) {
	cfg := New()

	t.Run("python interpreter", func(t *testing.T) {
		t.Setenv("PYFORT_PYTHON", "/opt/python/bin/python3.12")
		if got := cfg.GetPython(); got != "/opt/python/bin/python3.12" {
			t.Errorf("expected override, got %s", got)
		}
	})

	t.Run("f77 falls back to f90", func(t *testing.T) {
		t.Setenv("PYFORT_F77", "")
		t.Setenv("PYFORT_F90", "ifort")
		if got := cfg.GetF77(); got != "ifort" {
			t.Errorf("expected ifort, got %s", got)
		}
	})

	t.Run("FC fallback", func(t *testing.T) {
		t.Setenv("PYFORT_F90", "")
		t.Setenv("FC", "flang")
		if got := cfg.GetF90(); got != "flang" {
			t.Errorf("expected flang, got %s", got)
		}
	})

	t.Run("vendor default", func(t *testing.T) {
		t.Setenv("PYFORT_FC_VENDOR", "")
		if got := cfg.GetCompilerVendor(); got != "GNU" {
			t.Errorf("expected GNU, got %s", got)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}

	if cfg.ModuleName != DefaultModuleName {
		t.Errorf("expected ModuleName %s, got %s", DefaultModuleName, cfg.ModuleName)
	}
}
