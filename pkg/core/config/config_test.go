package config

import (
	"os"
	"path/filepath"
	"testing"

	qerr "github.com/msto63/trinom/pkg/core/error"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Locale != "fr" {
		t.Errorf("Locale = %q, want fr", cfg.General.Locale)
	}
	if cfg.Graph.XMin != -100 || cfg.Graph.XMax != 100 || cfg.Graph.Points != 1_000_000 {
		t.Errorf("Graph = %+v", cfg.Graph)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if cfg.Source() != "" {
		t.Errorf("Source() = %q, want empty", cfg.Source())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trinom.toml")
	content := `
[general]
locale = "en"
log_format = "json"

[graph]
xmin = -5.0
xmax = 5.0
points = 1_001
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Locale != "en" || cfg.General.LogFormat != "json" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Graph.XMin != -5 || cfg.Graph.XMax != 5 || cfg.Graph.Points != 1001 {
		t.Errorf("Graph = %+v", cfg.Graph)
	}
	if cfg.Graph.TerminalWidth != 72 {
		t.Errorf("TerminalWidth default not applied: %d", cfg.Graph.TerminalWidth)
	}
	if cfg.Source() != path {
		t.Errorf("Source() = %q, want %q", cfg.Source(), path)
	}
}

func TestLoadDefaultsEachBound(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		xmin, xmax float64
	}{
		{"xmin only", "[graph]\nxmin = 0\n", 0, 100},
		{"xmax only", "[graph]\nxmax = 0.0\n", -100, 0},
		{"both", "[graph]\nxmin = 0\nxmax = 2\n", 0, 2},
		{"neither", "[general]\nlocale = \"fr\"\n", -100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trinom.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Graph.XMin != tt.xmin || cfg.Graph.XMax != tt.xmax {
				t.Errorf("bounds = [%v;%v], want [%v;%v]", cfg.Graph.XMin, cfg.Graph.XMax, tt.xmin, tt.xmax)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !qerr.HasCode(err, qerr.CodeNotFound) {
		t.Errorf("Load(missing) error = %v, want NOT_FOUND", err)
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[graph\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !qerr.HasCode(err, qerr.CodeConfigError) {
		t.Errorf("Load(bad) error = %v, want CONFIG_ERROR", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TRINOM_LOCALE": "en",
		"TRINOM_XMIN":   "-10",
		"TRINOM_XMAX":   "10.5",
		"TRINOM_POINTS": "2_000",

		"TRINOM_WINDOW_WIDTH":  "1024",
		"TRINOM_WINDOW_HEIGHT": "768",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}
	if cfg.General.Locale != "en" || cfg.Graph.XMin != -10 || cfg.Graph.XMax != 10.5 || cfg.Graph.Points != 2000 {
		t.Errorf("overrides not applied: %+v %+v", cfg.General, cfg.Graph)
	}
	if cfg.Graph.WindowWidth != 1024 || cfg.Graph.WindowHeight != 768 {
		t.Errorf("window overrides not applied: %+v", cfg.Graph)
	}

	env["TRINOM_POINTS"] = "many"
	if err := Default().applyEnv(lookup); !qerr.HasCode(err, qerr.CodeInvalidConfig) {
		t.Errorf("applyEnv(bad points) error = %v, want INVALID_CONFIG", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one point", func(c *Config) { c.Graph.Points = 1 }},
		{"too many points", func(c *Config) { c.Graph.Points = MaxPoints + 1 }},
		{"no window", func(c *Config) { c.Graph.WindowHeight = 0 }},
		{"empty interval", func(c *Config) { c.Graph.XMin, c.Graph.XMax = 3, 3 }},
		{"reversed interval", func(c *Config) { c.Graph.XMin, c.Graph.XMax = 3, -3 }},
		{"tiny terminal", func(c *Config) { c.Graph.TerminalWidth = 2 }},
		{"unknown log format", func(c *Config) { c.General.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !qerr.HasCode(err, qerr.CodeInvalidConfig) {
				t.Errorf("Validate() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadFromEnvExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[graph]\npoints = 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRINOM_LOCALE", "en")

	cfg, err := LoadFromEnv(path)
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Graph.Points != 50 || cfg.General.Locale != "en" {
		t.Errorf("cfg = %+v %+v", cfg.General, cfg.Graph)
	}
}
