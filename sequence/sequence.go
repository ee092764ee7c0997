// Package sequence builds the card rail for one reveal: random filler, a near-miss
// candidate and the committed final card.
package sequence

import (
	"fmt"
	"math"

	"github.com/lixenwraith/grade-unboxing/constants"
	"github.com/lixenwraith/grade-unboxing/grade"
	"github.com/lixenwraith/grade-unboxing/rng"
)

// Config shapes the generated rail
type Config struct {
	BaseLength    int     `yaml:"base_length" env:"BASE_LENGTH"`
	PaddingLength int     `yaml:"padding_length" env:"PADDING_LENGTH"`
	TentativeLow  float64 `yaml:"tentative_low" env:"TENTATIVE_LOW"`
	TentativeHigh float64 `yaml:"tentative_high" env:"TENTATIVE_HIGH"`
}

// DefaultConfig returns the standard 24+1+4 rail
func DefaultConfig() Config {
	return Config{
		BaseLength:    constants.SequenceBaseLength,
		PaddingLength: constants.SequencePaddingLength,
		TentativeLow:  constants.TentativeWindowLow,
		TentativeHigh: constants.TentativeWindowHigh,
	}
}

// Validate checks the config can produce a tentative index before the final one
func (c Config) Validate() error {
	if c.BaseLength < 1 {
		return fmt.Errorf("base length %d: %w", c.BaseLength, grade.ErrInvalidArgument)
	}
	if c.PaddingLength < 0 {
		return fmt.Errorf("padding length %d: %w", c.PaddingLength, grade.ErrInvalidArgument)
	}
	if c.TentativeLow < 0 || c.TentativeHigh > 1 || c.TentativeLow > c.TentativeHigh {
		return fmt.Errorf("tentative window [%g, %g]: %w", c.TentativeLow, c.TentativeHigh, grade.ErrInvalidArgument)
	}
	return nil
}

// Sequence is an immutable rail with its committed indices
type Sequence struct {
	Symbols        []grade.Symbol
	Outcome        grade.Symbol
	TentativeIndex int
	FinalIndex     int
}

// Len returns the number of cards
func (s *Sequence) Len() int {
	return len(s.Symbols)
}

// At returns the symbol at i, clamped to the last card
func (s *Sequence) At(i int) grade.Symbol {
	return s.Symbols[s.Clamp(i)]
}

// Clamp limits i to a valid card index
func (s *Sequence) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if last := len(s.Symbols) - 1; i > last {
		return last
	}
	return i
}

// Generate builds a rail ending on outcome at FinalIndex == cfg.BaseLength
func Generate(outcome grade.Symbol, cfg Config, src rng.Source) (*Sequence, error) {
	if err := grade.Check(outcome); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	total := cfg.BaseLength + 1 + cfg.PaddingLength
	symbols := make([]grade.Symbol, 0, total)

	for i := 0; i < cfg.BaseLength; i++ {
		symbols = append(symbols, randomSymbol(src))
	}

	fraction := cfg.TentativeLow + src.Float64()*(cfg.TentativeHigh-cfg.TentativeLow)
	tentative := int(math.Floor(float64(cfg.BaseLength) * fraction))
	tentative = max(0, min(tentative, cfg.BaseLength-1))
	symbols[tentative] = outcome

	finalIndex := len(symbols)
	symbols = append(symbols, outcome)

	// Trailing cards keep the rail from ending abruptly
	for i := 0; i < cfg.PaddingLength; i++ {
		symbols = append(symbols, randomSymbol(src))
	}

	return &Sequence{
		Symbols:        symbols,
		Outcome:        outcome,
		TentativeIndex: tentative,
		FinalIndex:     finalIndex,
	}, nil
}

func randomSymbol(src rng.Source) grade.Symbol {
	return grade.Alphabet[src.IntN(len(grade.Alphabet))]
}
