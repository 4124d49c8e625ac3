package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees what the test writes.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	for _, name := range []string{EnvScreenLength, EnvCellCount, EnvTickInterval, EnvInitialSegments} {
		t.Setenv(name, "")
	}
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	cfg.Source = "builtin"

	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default should validate: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}
	if cfg.Grid.CellCount != 48 || cfg.Timing.TickInterval != 100*time.Millisecond {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "grid:\n  screen_length: 500\n  cell_count: 50\ntiming:\n  tick_interval: 250ms\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.ScreenLength != 500 || cfg.Grid.CellCount != 50 {
		t.Errorf("grid = %+v, expected 500/50", cfg.Grid)
	}
	if cfg.Timing.TickInterval != 250*time.Millisecond {
		t.Errorf("tick = %s, expected 250ms", cfg.Timing.TickInterval)
	}
	// Untouched sections keep their defaults
	if cfg.Snake.InitialSegments != 20 || cfg.Food.Color != "#00ff00" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "grid: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home, _ := isolate(t)
	userPath := filepath.Join(home, ".snake", "config.yaml")
	writeFile(t, userPath, "snake:\n  initial_segments: 5\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != userPath {
		t.Errorf("Source = %q, expected %q", cfg.Source, userPath)
	}
	if cfg.Snake.InitialSegments != 5 {
		t.Errorf("InitialSegments = %d, expected 5", cfg.Snake.InitialSegments)
	}
}

func TestLoadLocalConfig(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, "configs", "snake.yaml"), "food:\n  color: \"#00aa00\"\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "configs/snake.yaml" {
		t.Errorf("Source = %q, expected configs/snake.yaml", cfg.Source)
	}
	if cfg.Food.Color != "#00aa00" {
		t.Errorf("Food.Color = %q, expected #00aa00", cfg.Food.Color)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"named snake color", "snake:\n  color: blue\n"},
		{"bad food color", "food:\n  color: \"#12\"\n"},
		{"zero cells", "grid:\n  cell_count: 0\n"},
		{"screen smaller than grid", "grid:\n  screen_length: 10\n  cell_count: 48\n"},
		{"negative tick", "timing:\n  tick_interval: -1s\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			writeFile(t, path, tc.content)

			_, err := Load(path)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Load() error = %v, expected ErrInvalidArgument", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvScreenLength, "600")
	t.Setenv(EnvCellCount, "60")
	t.Setenv(EnvInitialSegments, "7")
	t.Setenv(EnvTickInterval, "50ms")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.ScreenLength != 600 || cfg.Grid.CellCount != 60 {
		t.Errorf("grid = %+v, expected 600/60", cfg.Grid)
	}
	if cfg.Snake.InitialSegments != 7 {
		t.Errorf("InitialSegments = %d, expected 7", cfg.Snake.InitialSegments)
	}
	if cfg.Timing.TickInterval != 50*time.Millisecond {
		t.Errorf("tick = %s, expected 50ms", cfg.Timing.TickInterval)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	tests := []struct{ name, value string }{
		{EnvCellCount, "lots"},
		{EnvTickInterval, "soon"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tc.name, tc.value)

			cfg := DefaultSnakeConfig()
			if err := ApplyEnv(&cfg); err == nil {
				t.Errorf("ApplyEnv() should reject %s=%q", tc.name, tc.value)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	writeFile(t, path, "SNAKE_DOTENV_TEST=from-file\nSNAKE_DOTENV_KEEP=from-file\n")

	t.Setenv("SNAKE_DOTENV_KEEP", "from-shell")
	t.Cleanup(func() { os.Unsetenv("SNAKE_DOTENV_TEST") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}
	if got := os.Getenv("SNAKE_DOTENV_TEST"); got != "from-file" {
		t.Errorf("SNAKE_DOTENV_TEST = %q, expected from-file", got)
	}
	if got := os.Getenv("SNAKE_DOTENV_KEEP"); got != "from-shell" {
		t.Errorf("existing variables should win, got %q", got)
	}
}

func TestRuntime(t *testing.T) {
	rc := DefaultSnakeConfig().Runtime(99)

	if rc.Grid.EdgeLength() != 10 {
		t.Errorf("EdgeLength() = %d, expected 10", rc.Grid.EdgeLength())
	}
	if rc.Seed != 99 || rc.InitialSegments != 20 {
		t.Errorf("unexpected runtime config: %+v", rc)
	}
	if rc.SnakeColor != core.ColorRed || rc.FoodColor != core.ColorGreen {
		t.Errorf("colors = %q/%q, expected red/green", rc.SnakeColor, rc.FoodColor)
	}
	if rc.TickInterval != 100*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 100ms", rc.TickInterval)
	}
}
