package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/beat-fighter/audio"
	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/system"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "BEAT_FIGHTER_"

// Config is the runtime configuration of the game
type Config struct {
	SongsDir       string  `yaml:"songs_dir"`
	StartSongIndex int     `yaml:"start_song_index"`
	PreBeatMargin  float64 `yaml:"pre_beat_margin"`
	PostBeatMargin float64 `yaml:"post_beat_margin"`
	FrameRate      int     `yaml:"frame_rate"`
	StatusAddr     string  `yaml:"status_addr"` // Empty disables the status server
	LogLevel       string  `yaml:"log_level"`

	Audio audio.Config       `yaml:"audio"`
	Combo system.ComboConfig `yaml:"combo"`
	Cues  CueConfig          `yaml:"cues"`
}

// CueConfig tunes crosshair cue scheduling
type CueConfig struct {
	HalfBeats      bool    `yaml:"half_beats"`
	LookAheadBeats float64 `yaml:"look_ahead_beats"`
	FadeOutTime    float64 `yaml:"fade_out_time"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		SongsDir:       parameter.DefaultSongsDir,
		PreBeatMargin:  parameter.PreBeatMargin,
		PostBeatMargin: parameter.PostBeatMargin,
		FrameRate:      parameter.DefaultFrameRate,
		LogLevel:       "info",
		Audio:          audio.DefaultConfig(),
		Combo:          system.DefaultComboConfig(),
		Cues: CueConfig{
			HalfBeats:      true,
			LookAheadBeats: parameter.CueLookAheadBeats,
			FadeOutTime:    parameter.CueFadeOutTime,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// A missing file is not an error when path is the default location
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from BEAT_FIGHTER_* variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *float64) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = f
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	str("SONGS_DIR", &c.SongsDir)
	integer("START_SONG", &c.StartSongIndex)
	num("PRE_BEAT_MARGIN", &c.PreBeatMargin)
	num("POST_BEAT_MARGIN", &c.PostBeatMargin)
	integer("FRAME_RATE", &c.FrameRate)
	str("STATUS_ADDR", &c.StatusAddr)
	str("LOG_LEVEL", &c.LogLevel)
	boolean("AUDIO_ENABLED", &c.Audio.Enabled)
	integer("SAMPLE_RATE", &c.Audio.SampleRate)
	boolean("METRONOME", &c.Audio.Metronome)

	// Volumes are given as 0-100
	var volume float64 = -1
	num("MASTER_VOLUME", &volume)
	if volume >= 0 {
		c.Audio.MasterVolume = volume / 100
	}
	var effects float64 = -1
	num("EFFECTS_VOLUME", &effects)
	if effects >= 0 {
		c.Audio.EffectsVolume = effects / 100
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Validate rejects values the clock and loop cannot run with
func (c *Config) Validate() error {
	switch {
	case c.SongsDir == "":
		return fmt.Errorf("%w: songs_dir is empty", ErrInvalidConfig)
	case c.PreBeatMargin < 0 || c.PostBeatMargin < 0:
		return fmt.Errorf("%w: beat margins must not be negative", ErrInvalidConfig)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive", ErrInvalidConfig)
	case c.Cues.LookAheadBeats <= 0:
		return fmt.Errorf("%w: cues.look_ahead_beats must be positive", ErrInvalidConfig)
	}
	c.Audio = c.Audio.Normalize()
	return nil
}

// Encode renders the config as YAML
func (c *Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}
