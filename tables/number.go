package tables

// digitCells is the raw digit table (제28항[붙임]): digit n shares its dot
// pattern with the jamo/jung cell table by construction (both draw from the
// same 64-cell alphabet), but is looked up independently here since a
// numeral run is always preceded by the number indicator rather than
// decomposed through hangul.Triple.
var digitCells = [10]byte{
	26, // 0
	1,  // 1
	3,  // 2
	9,  // 3
	25, // 4
	17, // 5
	11, // 6
	27, // 7
	19, // 8
	10, // 9
}

// NumberIndicator (제28항) precedes a numeral run; it is written again when
// digits resume after a non-digit character, except directly after '.' or
// ',' (제43항).
const NumberIndicator byte = 60

// DigitGroupComma is the cell a ',' takes between digits, or after a Latin
// letter when a letter or digit follows (제41항). There is no separate
// decimal-point constant: a '.' between digits is written with the
// Korean-context full stop cell (symbolMap['.']), and the digits after it
// take no new indicator.
const DigitGroupComma byte = 2

// EncodeDigit returns the dot cell for the ASCII digit r ('0'..'9').
func EncodeDigit(r rune) (byte, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return digitCells[r-'0'], true
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
