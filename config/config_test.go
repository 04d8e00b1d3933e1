package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/hotwire/engine"
	"github.com/lixenwraith/hotwire/parameter"
	"github.com/lixenwraith/hotwire/physics"
	"github.com/lixenwraith/hotwire/wire"
)

var testBounds = wire.Rect{X: 0, Y: 0, W: 800, H: 480}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	s, err := Parse(embeddedSettings)
	if err != nil {
		t.Fatalf("Embedded settings failed to parse: %v", err)
	}
	if s != Defaults() {
		t.Errorf("Expected embedded settings %+v to equal defaults %+v", s, Defaults())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	s, err := Parse(`
profile = "mobile"
seed = 42
control_mode = "keyboard"
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Profile != "mobile" {
		t.Errorf("Expected profile mobile, got %q", s.Profile)
	}
	if s.Seed == nil || *s.Seed != 42 {
		t.Errorf("Expected seed 42, got %v", s.Seed)
	}
	if s.MaxStrikes != parameter.MaxStrikes {
		t.Errorf("Expected default max strikes, got %d", s.MaxStrikes)
	}

	mode, err := s.Mode()
	if err != nil || mode != physics.ModeDirectional {
		t.Errorf("Expected keyboard mode, got %v (%v)", mode, err)
	}

	cfg, err := s.EngineConfig(testBounds)
	if err != nil {
		t.Fatalf("EngineConfig failed: %v", err)
	}
	if cfg.Profile != wire.Mobile || cfg.Seed != 42 {
		t.Errorf("Expected mobile seed 42, got %v %d", cfg.Profile, cfg.Seed)
	}
	if cfg.HazardSeed != 42^parameter.HazardSeedSalt {
		t.Errorf("Expected hazard seed derived from course seed, got %d", cfg.HazardSeed)
	}
	if cfg.Bounds != testBounds {
		t.Errorf("Expected bounds %+v, got %+v", testBounds, cfg.Bounds)
	}
}

func TestEngineConfigDefaultSeed(t *testing.T) {
	cfg, err := Defaults().EngineConfig(testBounds)
	if err != nil {
		t.Fatalf("EngineConfig failed: %v", err)
	}
	want := engine.DefaultConfig(wire.Desktop)
	if cfg.Seed != want.Seed || cfg.HazardSeed != want.HazardSeed {
		t.Errorf("Expected profile default seeds, got %d/%d", cfg.Seed, cfg.HazardSeed)
	}
	if cfg.Countdown != 5*time.Second {
		t.Errorf("Expected 5s countdown, got %v", cfg.Countdown)
	}
}

func TestEngineConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"profile", func(s *Settings) { s.Profile = "tablet" }},
		{"mode", func(s *Settings) { s.ControlMode = "gamepad" }},
		{"strikes", func(s *Settings) { s.MaxStrikes = 0 }},
		{"countdown", func(s *Settings) { s.CountdownSeconds = 0 }},
		{"scale", func(s *Settings) { s.UIScale = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			if _, err := s.EngineConfig(testBounds); !errors.Is(err, engine.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := Defaults().EngineConfig(wire.Rect{}); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Expected empty bounds rejected, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(`profile = `); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Expected syntax error wrapped in ErrInvalidConfig, got %v", err)
	}
	_, err := Parse(`max_strike = 4`)
	if !errors.Is(err, ErrUnknownKey) || !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Expected unknown key error, got %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// Embedded fallback
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded failed: %v", err)
	}
	if s.Profile != "desktop" {
		t.Errorf("Expected embedded desktop profile, got %q", s.Profile)
	}

	// Working directory file
	writeFile(t, dir, DefaultPath, `profile = "mobile"`)
	s, err = Load("")
	if err != nil {
		t.Fatalf("Load default path failed: %v", err)
	}
	if s.Profile != "mobile" {
		t.Errorf("Expected working directory settings, got %q", s.Profile)
	}

	// Explicit path wins
	custom := writeFile(t, t.TempDir(), "custom.toml", `max_strikes = 5`)
	s, err = Load(custom)
	if err != nil {
		t.Fatalf("Load custom failed: %v", err)
	}
	if s.Profile != "desktop" || s.MaxStrikes != 5 {
		t.Errorf("Expected custom file over defaults, got %+v", s)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Expected error for missing explicit path")
	}
}

func TestSaveRoundtrip(t *testing.T) {
	seed := uint32(99)
	want := Defaults()
	want.Seed = &seed
	want.Debug = true
	want.UIScale = 1.5

	path := filepath.Join(t.TempDir(), "out.toml")
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got.Seed == nil || *got.Seed != seed || got.Debug != want.Debug || got.UIScale != want.UIScale {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
