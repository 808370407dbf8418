// Package syllable composes a decomposed Hangul syllable (hangul.Triple)
// into its final dot-cell sequence, applying the regulation's syllable-level
// contractions on top of the raw per-component tables in package jamo:
// 제16항[붙임]'s literal exception syllables, 제17항's 받침 ㅇ fusion, and
// 제10항's 가나다라...하 consonant+ㅏ contraction. Component lookup itself
// stays in jamo; this package only decides which component combination to
// ask jamo for.
package syllable

import (
	"github.com/hangulbraille/braillify/hangul"
	"github.com/hangulbraille/braillify/jamo"
	"github.com/hangulbraille/braillify/tables"
)

const doublingMarker byte = 32

// Encode returns the dot cells for the syllable r, decomposed as t.
func Encode(r rune, t hangul.Triple) ([]byte, error) {
	if cells, ok := tables.IsSyllableOverride(r); ok {
		return cells, nil
	}

	if jamo.IsFinalNg(t.Jong) {
		cho, err := choseongWithDoubling(t.Cho)
		if err != nil {
			return nil, err
		}
		jung, err := jamo.EncodeVowelWithFinalNg(t.Jung)
		if err != nil {
			return nil, err
		}
		return append(cho, jung...), nil
	}

	if t.Jung == 0 { // ㅏ
		if t.Jong == 0 {
			// 제10항: a bare 가나다라...하 syllable (no final) collapses to
			// its single dedicated cell.
			if base, _, ok := hangul.SplitDouble(t.Cho); ok {
				if cho, ok := tables.ConsonantAContraction(base); ok {
					return []byte{doublingMarker, cho}, nil
				}
			} else if cho, ok := tables.ConsonantAContraction(t.Cho); ok {
				return []byte{cho}, nil
			}
		} else {
			// A final consonant follows: the ㅏ cell is dropped and the
			// initial keeps its ordinary (non-contracted) cell.
			cho, err := choseongWithDoubling(t.Cho)
			if err != nil {
				return nil, err
			}
			jong, err := jamo.EncodeJongseong(t.Jong)
			if err != nil {
				return nil, err
			}
			return append(cho, jong...), nil
		}
	}

	cho, err := choseongWithDoubling(t.Cho)
	if err != nil {
		return nil, err
	}
	jung, err := jamo.EncodeJungseong(t.Jung)
	if err != nil {
		return nil, err
	}
	jong, err := jamo.EncodeJongseong(t.Jong)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(cho)+len(jung)+len(jong))
	out = append(out, cho...)
	out = append(out, jung...)
	out = append(out, jong...)
	return out, nil
}

// choseongWithDoubling returns the initial consonant's cells, prepending
// the doubling marker (cell 32) and substituting the base consonant when
// cho is one of ㄲㄸㅃㅆㅉ.
func choseongWithDoubling(cho hangul.Choseong) ([]byte, error) {
	if base, _, ok := hangul.SplitDouble(cho); ok {
		cells, err := jamo.EncodeChoseong(base)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 0, len(cells)+1)
		out = append(out, doublingMarker)
		out = append(out, cells...)
		return out, nil
	}
	return jamo.EncodeChoseong(cho)
}
