// Package hangul implements the arithmetic decomposition of a precomposed
// Hangul syllable into its initial/medial/final (초성/중성/종성) components,
// and the splitting of a doubled initial consonant into its base plus
// doubling marker.
//
// The syllable-block constants below are adapted from the Hangul Jamo
// composition arithmetic used by OpenType Hangul shapers (compare
// lBase/vBase/tBase/sBase/lCount/vCount/tCount in a HarfBuzz-style Hangul
// shaper): the same U+AC00-relative arithmetic that composes L+V+T into one
// precomposed syllable also decomposes it back, which is exactly what a
// braille transcoder needs to recover cho/jung/jong from a syllable.
package hangul

// Block boundaries and component counts of the modern Hangul syllable
// range U+AC00..U+D7A3 (programmatically composed as
// sBase + (cho*vCount + jung)*tCount + jong).
const (
	sBase  rune = 0xAC00
	sLast  rune = 0xD7A3
	choCnt      = 19
	jungCnt     = 21
	jongCnt     = 28 // includes the "no final" slot at index 0
)

// Choseong (초성) is an index into the 19 initial consonants, in the
// standard Hangul-composition order (ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ).
type Choseong int

// Jungseong (중성) is an index into the 21 medial vowels, in standard
// composition order.
type Jungseong int

// Jongseong (종성) is an index into the 28 final-consonant slots
// (0 = no final), in standard composition order.
type Jongseong int

// Triple is a decomposed Hangul syllable.
type Triple struct {
	Cho  Choseong
	Jung Jungseong
	Jong Jongseong // 0 means "no final"
}

// IsSyllable reports whether r falls in the precomposed Hangul syllable
// block U+AC00..U+D7A3.
func IsSyllable(r rune) bool {
	return r >= sBase && r <= sLast
}

// Decompose splits a precomposed Hangul syllable into (cho, jung, jong)
// using the standard arithmetic decomposition. It is only valid for code
// points for which IsSyllable reports true.
func Decompose(r rune) (Triple, bool) {
	if !IsSyllable(r) {
		return Triple{}, false
	}
	offset := int(r - sBase)
	jong := offset % jongCnt
	offset /= jongCnt
	jung := offset % jungCnt
	cho := offset / jungCnt
	return Triple{Cho: Choseong(cho), Jung: Jungseong(jung), Jong: Jongseong(jong)}, true
}

// Compose is the inverse of Decompose; it is retained for symmetry and for
// use by tests that want to round-trip a Triple back to a rune, since
// decoding braille back into text is out of scope for this module but
// round-tripping syllable arithmetic is not.
func Compose(t Triple) rune {
	return sBase + rune((int(t.Cho)*jungCnt+int(t.Jung))*jongCnt+int(t.Jong))
}

// doubleConsonants maps a doubled (쌍자음) choseong index to its base
// choseong index: ㄲ->ㄱ, ㄸ->ㄷ, ㅃ->ㅂ, ㅆ->ㅅ, ㅉ->ㅈ. These are the only
// choseong indices 제16항[붙임] allows to be split into base + doubling
// marker (dot cell 32) when the syllable falls in the exception set
// (팠, 껐, 셩, 쎵, 졍, 쪙, 쳥, 겄).
var doubleConsonants = map[Choseong]Choseong{
	1:  0,  // ㄲ -> ㄱ
	4:  3,  // ㄸ -> ㄷ
	8:  7,  // ㅃ -> ㅂ
	10: 9,  // ㅆ -> ㅅ
	13: 12, // ㅉ -> ㅈ
}

// SplitDouble splits one of the five doubled initials into (base, doubled,
// true), where base is the plain consonant it doubles and doubled is cho
// itself. Any other initial is returned as (cho, 0, false): the caller
// does not prepend the doubling marker (cell 32) in that case.
func SplitDouble(cho Choseong) (base Choseong, doubled Choseong, ok bool) {
	if b, found := doubleConsonants[cho]; found {
		return b, cho, true
	}
	return cho, 0, false
}
