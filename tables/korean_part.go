package tables

// compatConsonants maps a standalone (compatibility-block) consonant jamo
// to its jongseong-table index: 제8-9항 cases cite a lone consonant letter
// ("ㄱ", "ㄴ.", item markers) by the same cell its final-consonant reading
// uses.
var compatConsonants = map[rune]int{
	'ㄱ': 1, 'ㄲ': 2, 'ㄳ': 3, 'ㄴ': 4, 'ㄵ': 5, 'ㄶ': 6, 'ㄷ': 7, 'ㄹ': 8,
	'ㄺ': 9, 'ㄻ': 10, 'ㄼ': 11, 'ㄽ': 12, 'ㄾ': 13, 'ㄿ': 14, 'ㅀ': 15,
	'ㅁ': 16, 'ㅂ': 17, 'ㅄ': 18, 'ㅅ': 19, 'ㅆ': 20, 'ㅇ': 21, 'ㅈ': 22,
	'ㅊ': 23, 'ㅋ': 24, 'ㅌ': 25, 'ㅍ': 26, 'ㅎ': 27,
}

// compatVowels maps a standalone vowel jamo to its jungseong-table index,
// in the same order jungseongCells uses.
var compatVowels = map[rune]int{
	'ㅏ': 0, 'ㅐ': 1, 'ㅑ': 2, 'ㅒ': 3, 'ㅓ': 4, 'ㅔ': 5, 'ㅕ': 6, 'ㅖ': 7,
	'ㅗ': 8, 'ㅘ': 9, 'ㅙ': 10, 'ㅚ': 11, 'ㅛ': 12, 'ㅜ': 13, 'ㅝ': 14,
	'ㅞ': 15, 'ㅟ': 16, 'ㅠ': 17, 'ㅡ': 18, 'ㅢ': 19, 'ㅣ': 20,
}

// jongseongRaw and jungseongRaw mirror package jamo's tables; kept here
// (rather than importing jamo, which is keyed by hangul.Jongseong /
// hangul.Jungseong rather than by rune) so the standalone-jamo path stays a
// simple rune-indexed lookup.
var jongseongRaw = [28]byte{
	0, 8, 1, 2, 18, 20, 22, 10, 16, 25, 26, 28, 41, 45, 49, 51,
	34, 24, 33, 32, 12, 0, 40, 48, 11, 19, 27, 43,
}

var jungseongRaw = [21]byte{
	35, 23, 39, 55, 57, 29, 15, 47, 37, 53, 29, 31, 61, 6, 15, 46, 30, 44, 42, 58, 21,
}

// IsCompatJamoConsonant reports whether r is a standalone consonant jamo.
func IsCompatJamoConsonant(r rune) bool {
	_, ok := compatConsonants[r]
	return ok
}

// EncodeKoreanPart returns the dot cells for a standalone (non-syllabic)
// Hangul jamo, consonant or vowel (제8항).
func EncodeKoreanPart(r rune) ([]byte, bool) {
	if idx, ok := compatConsonants[r]; ok {
		return []byte{jongseongRaw[idx]}, true
	}
	if idx, ok := compatVowels[r]; ok {
		return []byte{jungseongRaw[idx]}, true
	}
	return nil, false
}
