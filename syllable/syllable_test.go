package syllable

import (
	"testing"

	"github.com/hangulbraille/braillify/hangul"
)

func TestEncodeBareConsonantAContracts(t *testing.T) {
	// "가" = ㄱ+ㅏ, no final: collapses to the dedicated cvTable cell.
	triple, _ := hangul.Decompose('가')
	cells, err := Encode('가', triple)
	if err != nil {
		t.Fatalf("Encode('가'): %v", err)
	}
	if len(cells) != 1 {
		t.Errorf("Encode('가') = %v, want a single contracted cell", cells)
	}
}

func TestEncodeConsonantAWithFinalDropsContraction(t *testing.T) {
	// "반" = ㅂ+ㅏ+ㄴ: the ㅏ cell is dropped, raw ㅂ cell plus raw ㄴ cell.
	triple, _ := hangul.Decompose('반')
	cells, err := Encode('반', triple)
	if err != nil {
		t.Fatalf("Encode('반'): %v", err)
	}
	if len(cells) != 2 {
		t.Errorf("Encode('반') = %v, want 2 cells (raw initial + final)", cells)
	}
}

func TestEncodeFinalNgFuses(t *testing.T) {
	// "강" = ㄱ+ㅏ+ㅇ: the final ㅇ fuses into the medial, no separate cell.
	triple, _ := hangul.Decompose('강')
	cells, err := Encode('강', triple)
	if err != nil {
		t.Fatalf("Encode('강'): %v", err)
	}
	if len(cells) != 2 {
		t.Errorf("Encode('강') = %v, want 2 cells (initial + fused vowel)", cells)
	}
}

func TestEncodeSyllableOverride(t *testing.T) {
	triple, _ := hangul.Decompose('겄')
	cells, err := Encode('겄', triple)
	if err != nil {
		t.Fatalf("Encode('겄'): %v", err)
	}
	want := []byte{8, 14, 12}
	if len(cells) != len(want) {
		t.Fatalf("Encode('겄') = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Encode('겄')[%d] = %d, want %d", i, cells[i], want[i])
		}
	}
}
