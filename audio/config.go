package audio

import (
	"github.com/lixenwraith/grade-unboxing/constants"
)

// Config holds output and volume settings
type Config struct {
	Enabled      bool    `yaml:"enabled" env:"ENABLED"`
	MasterVolume float64 `yaml:"master_volume" env:"MASTER_VOLUME"`
	SampleRate   int     `yaml:"sample_rate" env:"SAMPLE_RATE"`

	TickVolume  float64 `yaml:"tick_volume" env:"TICK_VOLUME"`
	PingVolume  float64 `yaml:"ping_volume" env:"PING_VOLUME"`
	ChimeVolume float64 `yaml:"chime_volume" env:"CHIME_VOLUME"`
}

// DefaultAudioConfig returns full-volume, enabled output
func DefaultAudioConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: constants.AudioMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		TickVolume:   1.0,
		PingVolume:   1.0,
		ChimeVolume:  1.0,
	}
}

// EffectVolume returns the per-event volume
func (c *Config) EffectVolume(ev Event) float64 {
	switch ev {
	case EventTick:
		return c.TickVolume
	case EventSmallPing:
		return c.PingVolume
	case EventRevealChime:
		return c.ChimeVolume
	default:
		return 0
	}
}

// Normalize clamps volumes to [0, 1] and restores an invalid sample rate
func (c *Config) Normalize() {
	c.MasterVolume = clamp01(c.MasterVolume)
	c.TickVolume = clamp01(c.TickVolume)
	c.PingVolume = clamp01(c.PingVolume)
	c.ChimeVolume = clamp01(c.ChimeVolume)
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
