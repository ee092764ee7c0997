// Package grade defines the fixed outcome alphabet revealed by the unboxing animation.
package grade

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidArgument is returned for symbols outside the alphabet
var ErrInvalidArgument = errors.New("invalid argument")

// Symbol is one grade from the alphabet
type Symbol rune

const (
	A Symbol = 'A'
	B Symbol = 'B'
	C Symbol = 'C'
	D Symbol = 'D'
	E Symbol = 'E'
	F Symbol = 'F'
)

// Alphabet lists all symbols in display order
var Alphabet = [...]Symbol{A, B, C, D, E, F}

// Valid reports whether s is an alphabet member
func (s Symbol) Valid() bool {
	return s >= A && s <= F
}

func (s Symbol) String() string {
	return string(rune(s))
}

// Parse reads a symbol from text, ignoring surrounding whitespace
func Parse(text string) (Symbol, error) {
	trimmed := strings.TrimSpace(text)
	r, size := utf8.DecodeRuneInString(trimmed)
	if size == 0 || size != len(trimmed) {
		return 0, fmt.Errorf("grade %q: %w", text, ErrInvalidArgument)
	}
	s := Symbol(r)
	if !s.Valid() {
		return 0, fmt.Errorf("grade %q: %w", text, ErrInvalidArgument)
	}
	return s, nil
}

// Check returns ErrInvalidArgument if s is not an alphabet member
func Check(s Symbol) error {
	if !s.Valid() {
		return fmt.Errorf("grade %q: %w", string(rune(s)), ErrInvalidArgument)
	}
	return nil
}
