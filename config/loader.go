package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/hotwire/engine"
)

// DefaultPath is the settings file looked up in the working directory
const DefaultPath = "hotwire.toml"

//go:embed hotwire.toml
var embeddedSettings string

// ErrUnknownKey reports settings keys that map to no field
var ErrUnknownKey = errors.New("unknown settings key")

// Load resolves settings with priority: customPath > DefaultPath > embedded
func Load(customPath string) (Settings, error) {
	// Priority 1: explicit path, must exist
	if customPath != "" {
		if !fileExists(customPath) {
			return Settings{}, fmt.Errorf("settings file not found: %s", customPath)
		}
		return LoadFile(customPath)
	}

	// Priority 2: working directory
	if fileExists(DefaultPath) {
		return LoadFile(DefaultPath)
	}

	// Priority 3: embedded defaults
	return Parse(embeddedSettings)
}

// LoadFile decodes one settings file over the defaults
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := Parse(string(data))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes TOML text over the defaults; absent keys keep their default
func Parse(data string) (Settings, error) {
	s := Defaults()
	md, err := toml.Decode(data, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", engine.ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("%w: %w: %s", engine.ErrInvalidConfig, ErrUnknownKey, strings.Join(keys, ", "))
	}
	return s, nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Save writes s as TOML to path
func Save(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return f.Close()
}
