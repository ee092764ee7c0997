package reveal

import (
	"time"

	"github.com/lixenwraith/grade-unboxing/constants"
	"github.com/lixenwraith/grade-unboxing/sequence"
)

// Options tunes timing and rail geometry
type Options struct {
	Sequence sequence.Config `yaml:"sequence" envPrefix:"SEQUENCE_"`

	InitialPause      time.Duration `yaml:"initial_pause" env:"INITIAL_PAUSE"`
	BaseSpeed         time.Duration `yaml:"base_speed" env:"BASE_SPEED"`
	CandidateDuration time.Duration `yaml:"candidate_duration" env:"CANDIDATE_DURATION"`
	CloseDelay        time.Duration `yaml:"close_delay" env:"CLOSE_DELAY"`
	SkipCloseDelay    time.Duration `yaml:"skip_close_delay" env:"SKIP_CLOSE_DELAY"`

	SlotWidth     int `yaml:"slot_width" env:"SLOT_WIDTH"`
	SlotHeight    int `yaml:"slot_height" env:"SLOT_HEIGHT"`
	ParticleCount int `yaml:"particle_count" env:"PARTICLE_COUNT"`
}

// DefaultOptions returns the standard reveal timing
func DefaultOptions() Options {
	return Options{
		Sequence:          sequence.DefaultConfig(),
		InitialPause:      constants.RevealInitialPause,
		BaseSpeed:         constants.RevealBaseSpeed,
		CandidateDuration: constants.RevealCandidateDuration,
		CloseDelay:        constants.RevealCloseDelay,
		SkipCloseDelay:    constants.RevealSkipCloseDelay,
		SlotWidth:         constants.SlotWidth,
		SlotHeight:        constants.SlotHeight,
		ParticleCount:     constants.ParticleCount,
	}
}
