package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Width != 30 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %dx%d, expected 30x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Timing.UpdatesPerSecond != 10 {
		t.Errorf("updates per second = %g, expected 10", cfg.Timing.UpdatesPerSecond)
	}
	if cfg.Food.BonusProbability != 0.1 || cfg.Food.BonusDuration != 7 {
		t.Errorf("bonus = %g/%g, expected 0.1/7", cfg.Food.BonusProbability, cfg.Food.BonusDuration)
	}
	if cfg.Food.BonusScore != 5 || cfg.Food.NormalScore != 1 {
		t.Errorf("scores = %d/%d, expected 5/1", cfg.Food.BonusScore, cfg.Food.NormalScore)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "grid:\n  width: 12\n  height: 8\nfood:\n  bonus_probability: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}

	if cfg.Grid.Width != 12 || cfg.Grid.Height != 8 {
		t.Errorf("grid = %dx%d, expected 12x8", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Food.BonusProbability != 0.5 {
		t.Errorf("bonus probability = %g, expected 0.5", cfg.Food.BonusProbability)
	}
	// Untouched fields keep defaults
	if cfg.Food.BonusScore != 5 || cfg.Timing.UpdatesPerSecond != 10 {
		t.Errorf("unspecified fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix, got %q", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected a validation error for a zero-width grid")
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("timing:\n  updates_per_second: 15\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timing.UpdatesPerSecond != 15 {
		t.Errorf("updates per second = %g, expected 15 from user config", cfg.Timing.UpdatesPerSecond)
	}
}

func TestLoadSkipsInvalidLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	t.Chdir(wd)

	if err := os.MkdirAll(filepath.Join(wd, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wd, "configs", "snake.yaml"), []byte("food:\n  bonus_probability: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("invalid local config should fall through to defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Grid.Width = 0 }, false},
		{"single cell", func(c *Config) { c.Grid.Width, c.Grid.Height = 1, 1 }, false},
		{"two cells wide", func(c *Config) { c.Grid.Width, c.Grid.Height = 2, 1 }, false},
		{"two cells tall", func(c *Config) { c.Grid.Width, c.Grid.Height = 1, 2 }, false},
		{"narrow strip", func(c *Config) { c.Grid.Width, c.Grid.Height = 30, 2 }, false},
		{"smallest grid", func(c *Config) { c.Grid.Width, c.Grid.Height = 3, 3 }, true},
		{"negative probability", func(c *Config) { c.Food.BonusProbability = -0.1 }, false},
		{"probability above one", func(c *Config) { c.Food.BonusProbability = 1.5 }, false},
		{"always bonus", func(c *Config) { c.Food.BonusProbability = 1 }, true},
		{"negative duration", func(c *Config) { c.Food.BonusDuration = -1 }, false},
		{"zero frame rate", func(c *Config) { c.Display.FrameRate = 0 }, false},
		{"zero cell size", func(c *Config) { c.Display.CellSize = 0 }, false},
		{"zero update rate", func(c *Config) { c.Timing.UpdatesPerSecond = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestRules(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 40
	r := cfg.Rules()

	if r.Grid != cfg.Grid || r.Food != cfg.Food {
		t.Errorf("Rules() = %+v, expected grid and food from config", r)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "updates_per_second: 10") {
		t.Errorf("marshaled YAML should use snake_case keys, got:\n%s", data)
	}
}
