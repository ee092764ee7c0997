// Package config loads reveal, audio and program settings.
// Precedence, lowest first: built-in defaults, YAML file, GRADEBOX_* environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/grade-unboxing/audio"
	"github.com/lixenwraith/grade-unboxing/reveal"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable
const EnvPrefix = "GRADEBOX_"

// ErrInvalidConfig is returned for settings that cannot drive a session
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full program configuration
type Config struct {
	Reveal reveal.Options `yaml:"reveal" envPrefix:"REVEAL_"`
	Audio  audio.Config   `yaml:"audio" envPrefix:"AUDIO_"`

	// Seed fixes the random source, 0 seeds randomly
	Seed  uint64 `yaml:"seed" env:"SEED"`
	Debug bool   `yaml:"debug" env:"DEBUG"`
}

// Default returns built-in settings
func Default() *Config {
	return &Config{
		Reveal: reveal.DefaultOptions(),
		Audio:  *audio.DefaultAudioConfig(),
	}
}

// Load reads path (optional, "" skips the file) then applies environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Audio.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks timing and geometry
func (c *Config) Validate() error {
	if err := c.Reveal.Sequence.Validate(); err != nil {
		return fmt.Errorf("%w: sequence: %v", ErrInvalidConfig, err)
	}

	r := c.Reveal
	if r.BaseSpeed <= 0 || r.InitialPause < 0 || r.CandidateDuration < 0 || r.CloseDelay < 0 || r.SkipCloseDelay < 0 {
		return fmt.Errorf("%w: negative or zero timing", ErrInvalidConfig)
	}
	if r.SlotWidth < 3 || r.SlotHeight < 3 {
		return fmt.Errorf("%w: slot %dx%d smaller than 3x3", ErrInvalidConfig, r.SlotWidth, r.SlotHeight)
	}
	if r.ParticleCount < 0 {
		return fmt.Errorf("%w: particle count %d", ErrInvalidConfig, r.ParticleCount)
	}
	return nil
}
