package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Input.Dir != "input" {
		t.Errorf("input dir = %q, want %q", cfg.Input.Dir, "input")
	}
	if cfg.Output.Dir != "docs" {
		t.Errorf("output dir = %q, want %q", cfg.Output.Dir, "docs")
	}
	if cfg.PDF.Enabled {
		t.Error("PDF export must default to off")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, "site.yaml", `
input:
  dir: records
output:
  dir: public
sections:
  checks: verifications
  parameters: inputs
  info: machine
site:
  style: dark
  dateFormat: DD/MM/YYYY
  manufacturerKey: maker
pdf:
  enabled: true
  timeoutSeconds: 45
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Input.Dir != "records" || cfg.Output.Dir != "public" {
			t.Errorf("dirs = %q, %q", cfg.Input.Dir, cfg.Output.Dir)
		}
		if cfg.Sections.Checks != "verifications" || cfg.Sections.Info != "machine" {
			t.Errorf("sections = %+v", cfg.Sections)
		}
		if cfg.Site.Style != "dark" || cfg.Site.ManufacturerKey != "maker" {
			t.Errorf("site = %+v", cfg.Site)
		}
		if !cfg.PDF.Enabled || cfg.PDF.TimeoutSeconds != 45 {
			t.Errorf("pdf = %+v", cfg.PDF)
		}
	})

	t.Run("empty fields get directory defaults", func(t *testing.T) {
		path := writeConfig(t, "partial.yaml", "site:\n  style: dark\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Input.Dir != "input" || cfg.Output.Dir != "docs" {
			t.Errorf("dirs = %q, %q, want defaults", cfg.Input.Dir, cfg.Output.Dir)
		}
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := writeConfig(t, "typo.yaml", "inptu:\n  dir: records\n")

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		path := writeConfig(t, "broken.yaml", "input: [unclosed\n")

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unresolvable name lists tried paths", func(t *testing.T) {
		_, err := LoadConfig("no-such-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
	})
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"config/site.yaml", true},
		{"./site.yaml", true},
		{"C:\\configs\\site.yaml", true},
		{"site", false},
		{"site.yaml", false},
	}
	for _, tt := range tests {
		if got := isFilePath(tt.input); got != tt.want {
			t.Errorf("isFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
