// Package cell implements the dot-cell model: the 8-bit representation of a
// single six-dot braille cell and its conversion to and from the Unicode
// Braille Patterns block (U+2800..U+28FF).
//
// 점자규정 §5(점자의 기본 단위): one cell carries up to six raised dots,
// numbered 1..6; bit i (0-indexed) of the byte is set iff dot (i+1) is
// raised.
package cell

// Cell is one output unit: either a dot pattern in 0..63, or one of the two
// sentinel values below.
type Cell = byte

const (
	// Space is the word separator (제44항) and also the Korean-context
	// separator the symbol dispatcher falls back to.
	Space Cell = 0
	// Newline is a passthrough sentinel for literal '\n' in the input; it
	// is never a valid dot pattern and must not be mapped through the
	// Unicode Braille block.
	Newline Cell = 255

	// brailleBase is the first code point of the Unicode Braille Patterns
	// block; a normal cell maps to brailleBase+byte.
	brailleBase rune = 0x2800
)

// ToRune maps one output byte to its Unicode Braille Patterns code point,
// passing a literal newline through unchanged.
func ToRune(b Cell) rune {
	if b == Newline {
		return '\n'
	}
	return brailleBase + rune(b)
}

// FromRune is the inverse of ToRune, used only by tests and tooling that
// need to round-trip a rendered braille string back to dot bytes; decoding
// braille back into source text is explicitly out of scope (spec §1).
func FromRune(r rune) (Cell, bool) {
	if r == '\n' {
		return Newline, true
	}
	if r < brailleBase || r > brailleBase+0xFF {
		return 0, false
	}
	return Cell(r - brailleBase), true
}

// EncodeToUnicode maps a sequence of output bytes into their Unicode
// Braille Patterns string form.
func EncodeToUnicode(bytes []Cell) string {
	out := make([]rune, len(bytes))
	for i, b := range bytes {
		out[i] = ToRune(b)
	}
	return string(out)
}

// IsValid reports whether b is a legal dot pattern (0..63) or one of the
// sentinels (Space, Newline). Anything else indicates a bug in a caller
// that constructed a Cell outside the six-dot range.
func IsValid(b Cell) bool {
	return b <= 63 || b == Newline
}
