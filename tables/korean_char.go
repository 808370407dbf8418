package tables

import "github.com/hangulbraille/braillify/hangul"

// syllableOverrides holds the handful of precomposed syllables the
// regulations special-case outright rather than leaving to the general
// composition rule. 제16항[붙임] carves out 겄/껐/팠/셩/쎵/졍/쪙/쳥 because a
// literal composition of their parts would be indistinguishable from a
// different, more common syllable followed by a trailing jamo (걲 "것"+"ㅅ"
// ambiguity for 겄, and the 어/여 contraction families for the -영 set).
var syllableOverrides = map[rune][]byte{
	'겄': {8, 14, 12},
	'껐': {32, 8, 14, 12},
	'팠': {27, 35, 12},
	'셩': {7, 15, 63},
	'쎵': {32, 7, 15, 63},
	'졍': {40, 15, 63},
	'쪙': {32, 40, 15, 63},
	'쳥': {48, 15, 63},
}

// cvTable is the 가나다라마바사아자차카타파하 contraction table (제10항): a
// consonant immediately followed by the vowel ㅏ and no other component
// collapses to one of these 14 dedicated cells instead of a separate
// consonant cell plus the ㅏ cell. Only non-doubled initials participate;
// a doubled initial's ㅏ-syllable still uses the ㄲㄸㅃㅆㅉ doubling-marker
// path over the base consonant's entry.
var cvTable = map[hangul.Choseong]byte{
	0:  43, // ㄱ 가
	2:  47, // ㄴ 나
	3:  55, // ㄷ 다
	5:  61, // ㄹ 라
	6:  62, // ㅁ 마
	7:  24, // ㅂ 바
	9:  7,  // ㅅ 사
	11: 35, // ㅇ 아
	12: 46, // ㅈ 자
	14: 54, // ㅊ 차
	15: 38, // ㅋ 카
	16: 58, // ㅌ 타
	17: 30, // ㅍ 파
	18: 26, // ㅎ 하
}

// IsSyllableOverride reports whether r has a dedicated literal encoding
// that bypasses the general composition rule.
func IsSyllableOverride(r rune) ([]byte, bool) {
	cells, ok := syllableOverrides[r]
	return cells, ok
}

// ConsonantAContraction returns cho's cell in the 가나다라...하 table, or
// ok=false if cho is not in it (doubled initials are not).
func ConsonantAContraction(cho hangul.Choseong) (byte, bool) {
	cells, ok := cvTable[cho]
	return cells, ok
}
