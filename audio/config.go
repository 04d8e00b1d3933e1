package audio

import (
	"encoding/json"
	"math"
	"os"
	"strconv"

	"github.com/lixenwraith/hotwire/parameter"
)

// Environment keys, usually populated from .env
const (
	EnvAudioEnabled = "HOTWIRE_AUDIO_ENABLED"
	EnvMasterVolume = "HOTWIRE_MASTER_VOLUME"
	EnvSFXVolumes   = "HOTWIRE_SFX_VOLUMES"
	EnvSampleRate   = "HOTWIRE_SAMPLE_RATE"
)

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundBuzz:   1.0,
			SoundChime:  0.7,
			SoundWhoosh: 0.5,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Unparseable values keep their defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = math.Max(0, math.Min(1, float64(val)/100.0))
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := SoundType(0); s < soundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// SaveAudioConfig writes cfg back into the process environment
func SaveAudioConfig(cfg *AudioConfig) error {
	volumes := make(map[string]float64, len(cfg.EffectVolumes))
	for s, v := range cfg.EffectVolumes {
		volumes[s.String()] = v
	}
	data, err := json.Marshal(volumes)
	if err != nil {
		return err
	}

	vars := map[string]string{
		EnvAudioEnabled: strconv.FormatBool(cfg.Enabled),
		EnvMasterVolume: strconv.Itoa(int(math.Round(cfg.MasterVolume * 100))),
		EnvSFXVolumes:   string(data),
		EnvSampleRate:   strconv.Itoa(cfg.SampleRate),
	}
	for k, v := range vars {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
