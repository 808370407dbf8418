// Package classify implements the character classifier: a tagged variant
// that maps one input code point to the class the word encoder dispatches
// on. Classification never consults surrounding context — that is the
// job of the rule-arbitration layer in the root package, which asks "what
// class is this rune" and then decides what to do with the answer given
// the encoder's running state and the rest of the word.
package classify

import (
	"fmt"

	"github.com/hangulbraille/braillify/hangul"
	"github.com/hangulbraille/braillify/tables"
)

// Kind tags a Type's active variant.
type Kind int

const (
	KoreanSyllable Kind = iota
	KoreanJamoPart
	Latin
	Digit
	Symbol
	MathSymbol
	UnicodeFraction
	Whitespace
)

// Type is the classifier's tagged-variant result. Only the field matching
// Kind is meaningful.
type Type struct {
	Kind    Kind
	Rune    rune          // KoreanJamoPart, Latin, Digit, Symbol, MathSymbol, UnicodeFraction, Whitespace
	Triple  hangul.Triple // KoreanSyllable
}

// UnknownCharacterError is returned when r does not fall into any class the
// encoder understands (spec §7, UnknownCharacter).
type UnknownCharacterError struct {
	Rune rune
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("Invalid character: %q (U+%04X)", e.Rune, e.Rune)
}

// isCompatJamo reports whether r is a standalone (compatibility) Hangul
// jamo, U+3131..U+318E, the block used when a consonant or vowel appears
// on its own rather than composed into a syllable.
func isCompatJamo(r rune) bool {
	return r >= 0x3131 && r <= 0x318E
}

// New classifies one code point.
func New(r rune) (Type, error) {
	switch {
	case hangul.IsSyllable(r):
		triple, _ := hangul.Decompose(r)
		return Type{Kind: KoreanSyllable, Triple: triple}, nil
	case isCompatJamo(r):
		return Type{Kind: KoreanJamoPart, Rune: r}, nil
	case r == '\n' || r == ' ':
		return Type{Kind: Whitespace, Rune: r}, nil
	case r >= '0' && r <= '9':
		return Type{Kind: Digit, Rune: r}, nil
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return Type{Kind: Latin, Rune: r}, nil
	case tables.IsUnicodeFraction(r):
		return Type{Kind: UnicodeFraction, Rune: r}, nil
	case tables.IsMathSymbol(r):
		return Type{Kind: MathSymbol, Rune: r}, nil
	case tables.IsSymbolChar(r) || tables.IsEnglishSymbolChar(r) || r == '□':
		return Type{Kind: Symbol, Rune: r}, nil
	default:
		return Type{}, &UnknownCharacterError{Rune: r}
	}
}
