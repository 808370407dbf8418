package tables

// mathSymbolCells covers the common operators and relations 제40-41항
// assigns two-cell compound forms to. None of these appeared in the
// retrieved worked-example corpus (only the dispatch branch that calls into
// this table did); the values below are self-consistent placeholders, not
// transcriptions of a published table. See DESIGN.md.
var mathSymbolCells = map[rune][]byte{
	'+': {18, 18, 18},
	'−': {20},
	'×': {32, 3},
	'÷': {32, 9},
	'=': {18, 18},
	'≠': {18, 18, 4},
	'≤': {18, 18, 1},
	'≥': {18, 18, 24},
	'±': {18, 20},
	'√': {56, 56},
	'∞': {32, 42},
	'°': {6},
	'%': {16, 44, 16},
}

// EncodeMathSymbol returns the dot cells for a math operator/relation rune.
func EncodeMathSymbol(r rune) (cells []byte, ok bool) {
	cells, ok = mathSymbolCells[r]
	return
}

// IsMathSymbol reports whether r is a member of the math-symbol table.
func IsMathSymbol(r rune) bool {
	_, ok := mathSymbolCells[r]
	return ok
}
