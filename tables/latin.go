package tables

// latinCells is the standard Latin-script braille alphabet (제26항): the
// same six-dot patterns used for English/French/etc. words transliterated
// into Hangul braille text, independent of the Korean tables above.
var latinCells = map[rune]byte{
	'a': 1, 'b': 3, 'c': 9, 'd': 25, 'e': 17, 'f': 11, 'g': 27, 'h': 19,
	'i': 10, 'j': 26, 'k': 5, 'l': 7, 'm': 13, 'n': 29, 'o': 21, 'p': 15,
	'q': 31, 'r': 23, 's': 14, 't': 30, 'u': 37, 'v': 39, 'w': 58, 'x': 45,
	'y': 61, 'z': 53,
}

// EncodeLatin returns the dot cell for a single Latin letter, case-folded.
func EncodeLatin(r rune) (byte, bool) {
	lower := r
	if r >= 'A' && r <= 'Z' {
		lower = r - 'A' + 'a'
	}
	cell, ok := latinCells[lower]
	return cell, ok
}
