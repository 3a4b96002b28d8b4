package audio

import (
	"os"
	"strconv"
)

// Config controls sound output.
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultConfig returns the default audio configuration. Sound is off
// unless enabled by flag or environment.
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: [soundTypeCount]float64{
			SoundStart:    0.6,
			SoundCoin:     0.5,
			SoundCrash:    0.8,
			SoundGameOver: 0.7,
		},
	}
}

// LoadConfig applies RACER_AUDIO_ENABLED, RACER_MASTER_VOLUME (0-100) and
// RACER_SAMPLE_RATE on top of the defaults. Malformed values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("RACER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("RACER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if rate := os.Getenv("RACER_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume returns the effective volume for a sound.
func (c Config) volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
