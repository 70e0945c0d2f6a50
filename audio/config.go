package audio

import (
	"github.com/lixenwraith/beat-fighter/parameter"
)

// Config holds playback output settings
type Config struct {
	Enabled       bool    `yaml:"enabled"`
	MasterVolume  float64 `yaml:"volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
	SampleRate    int     `yaml:"sample_rate"`
	Metronome     bool    `yaml:"metronome"` // Tick on every fired beat
}

// DefaultConfig returns output settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		MasterVolume:  parameter.DefaultMasterVolume,
		EffectsVolume: parameter.DefaultEffectsVolume,
		SampleRate:    parameter.AudioSampleRate,
	}
}

// Normalize clamps volumes and fills a missing sample rate
func (c Config) Normalize() Config {
	c.MasterVolume = min(max(c.MasterVolume, 0), 1)
	c.EffectsVolume = min(max(c.EffectsVolume, 0), 1)
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
	return c
}
