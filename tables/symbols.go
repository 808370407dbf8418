// Package tables holds the compile-time-constant lookup tables and
// longest-prefix matchers the word encoder dispatches through: symbol
// maps, the Korean/Latin word- and part-shortcut tables, the Latin
// digraph matchers, the math-symbol map, and the number/fraction
// encoders. None of it is runtime-mutable; it is the per-script data the
// rule-arbitration layer in the root package is deliberately kept
// independent of (spec §1).
package tables

// symbolMap is the Korean-context punctuation table (제33항 and friends):
// a closed map from rune to its dot-cell sequence. Unlisted symbols are a
// MissingSymbolMapping error at the call site.
var symbolMap = map[rune][]byte{
	'"': {38},
	'\'': {32, 38},
	'~': {8, 20},
	'…': {50, 50, 50},
	'⋯': {32, 32, 32},
	'!': {22},
	'.': {50},
	',': {16},
	'?': {38},
	'“': {38},
	'”': {52},
	':': {16, 2},
	';': {48, 6},
	'_': {36},
	'*': {16, 20},
	'(': {38, 4},
	')': {32, 52},
	'{': {38, 2},
	'}': {16, 52},
	'[': {38, 6},
	']': {48, 52},
	'·': {16, 6},
	'「': {16, 38},
	'」': {52, 2},
	'『': {48, 38},
	'』': {52, 6},
	'/': {56, 12},
	'〈': {16, 54},
	'〉': {54, 2},
	'《': {48, 54},
	'》': {54, 6},
	'―': {36, 36},
	'-': {36},
	'∼': {8, 20},
	'‘': {32, 38},
	'’': {52, 4},
	'○': {56, 52, 7},
	'△': {56, 44, 7},
	'□': {56, 54, 7},
	'ː': {32, 4},
	'〃': {52, 52},
}

// englishSymbolMap is the Latin-context punctuation table: a small closed
// set reused whenever the governor decides a symbol belongs to an open
// Latin run rather than to the surrounding Korean text (§4.3).
var englishSymbolMap = map[rune][]byte{
	'(': {16, 35},
	')': {16, 28},
	',': {2},
}

// EncodeSymbol returns the Korean-context dot cells for r, or
// ok=false if r has no entry (MissingSymbolMapping, spec §7).
func EncodeSymbol(r rune) (cells []byte, ok bool) {
	cells, ok = symbolMap[r]
	return
}

// IsSymbolChar reports whether r is a member of the Korean-context symbol
// table.
func IsSymbolChar(r rune) bool {
	_, ok := symbolMap[r]
	return ok
}

// EncodeEnglishSymbol returns the Latin-context dot cells for r, or
// ok=false if r is not one of the handful of punctuation marks that have
// a distinct Latin-context rendering.
func EncodeEnglishSymbol(r rune) (cells []byte, ok bool) {
	cells, ok = englishSymbolMap[r]
	return
}

// IsEnglishSymbolChar reports whether r has a Latin-context symbol
// mapping distinct from its Korean-context one.
func IsEnglishSymbolChar(r rune) bool {
	_, ok := englishSymbolMap[r]
	return ok
}
