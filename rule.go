package braillify

import "github.com/hangulbraille/braillify/hangul"

// applyRule11 and applyRule12 implement the two vowel-sequence
// disambiguators 제11항 and 제12항 call for: inserting a separating mark
// between two syllables whose adjacent medial vowels would otherwise read
// as a single contracted vowel cell across the syllable boundary. The
// originating rule_11/rule_12 source modules were not part of the
// retrieved corpus, so these are a faithful-effort reconstruction from the
// regulation's stated intent (avoid a cell sequence that a reader would
// parse as one diphthong spanning two syllables) rather than a transcribed
// table; see DESIGN.md.

// ambiguousVowelPairs lists (first syllable's medial, second syllable's
// medial) pairs whose concatenated cells coincide with a single
// diphthong's cell (e.g. ㅏ followed by a syllable starting in ㅣ reads
// like ㅐ unless separated).
var ambiguousVowelPairs = map[[2]hangul.Jungseong]bool{
	{0, 20}:  true, // ㅏ | ㅣ  (collides with ㅐ)
	{4, 20}:  true, // ㅓ | ㅣ  (collides with ㅔ)
	{8, 20}:  true, // ㅗ | ㅣ  (collides with ㅚ)
	{13, 20}: true, // ㅜ | ㅣ  (collides with ㅟ)
	{18, 20}: true, // ㅡ | ㅣ  (collides with ㅢ)
}

const vowelSeparator byte = 4

// applyRule11 inserts the 제11항 separator when the previous syllable ends
// in an open vowel (no final) immediately followed by a syllable whose
// initial carries no consonant sound (ㅇ) and whose medial would otherwise
// fuse with the previous one into a different vowel's cell.
func applyRule11(prev hangul.Triple, next rune, out *[]byte) {
	t, ok := hangul.Decompose(next)
	if !ok || prev.Jong != 0 || t.Cho != 11 {
		return
	}
	if ambiguousVowelPairs[[2]hangul.Jungseong{prev.Jung, t.Jung}] {
		*out = append(*out, vowelSeparator)
	}
}

// applyRule12 inserts a separator between a syllable ending in the final
// ㄹ and a following syllable beginning in ㅇ+ㅣ, the other configuration
// 제12항 names where the reader could otherwise parse the final consonant
// as belonging to the wrong syllable.
func applyRule12(prev hangul.Triple, next rune, out *[]byte) {
	t, ok := hangul.Decompose(next)
	if !ok || prev.Jong != 8 || t.Cho != 11 || t.Jung != 20 {
		return
	}
	*out = append(*out, vowelSeparator)
}
