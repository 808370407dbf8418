package tables

import "testing"

func TestEncodeLatin(t *testing.T) {
	cases := map[rune]byte{'a': 1, 'A': 1, 'z': 53, 'k': 5, 'g': 27}
	for r, want := range cases {
		got, ok := EncodeLatin(r)
		if !ok {
			t.Fatalf("EncodeLatin(%q) not found", r)
		}
		if got != want {
			t.Errorf("EncodeLatin(%q) = %d, want %d", r, got, want)
		}
	}
}

func TestEncodeDigit(t *testing.T) {
	for d, want := range map[rune]byte{'0': 26, '1': 1, '9': 10} {
		got, ok := EncodeDigit(d)
		if !ok || got != want {
			t.Errorf("EncodeDigit(%q) = (%d, %v), want (%d, true)", d, got, ok, want)
		}
	}
	if _, ok := EncodeDigit('a'); ok {
		t.Errorf("EncodeDigit('a') reported ok=true")
	}
}

func TestMatchLatinDigraph10_4(t *testing.T) {
	cell, extra, ok := MatchLatinDigraph10_4("ounce")
	if !ok || cell != 51 || extra != 1 {
		t.Errorf("MatchLatinDigraph10_4(ounce) = (%d, %d, %v), want (51, 1, true)", cell, extra, ok)
	}
	if _, _, ok := MatchLatinDigraph10_4("xyz"); ok {
		t.Errorf("MatchLatinDigraph10_4(xyz) matched unexpectedly")
	}
}

func TestIsUnicodeFraction(t *testing.T) {
	if !IsUnicodeFraction('½') {
		t.Errorf("IsUnicodeFraction('½') = false, want true")
	}
	num, den, ok := UnicodeFractionParts('¾')
	if !ok || num != "3" || den != "4" {
		t.Errorf("UnicodeFractionParts('¾') = (%q, %q, %v), want (3, 4, true)", num, den, ok)
	}
}

func TestEncodeFraction(t *testing.T) {
	cells, err := EncodeFraction("1", "2")
	if err != nil {
		t.Fatalf("EncodeFraction: %v", err)
	}
	if len(cells) == 0 {
		t.Errorf("EncodeFraction returned no cells")
	}
}

func TestSplitWordShortcut(t *testing.T) {
	cells, rest, ok := SplitWordShortcut("그래서요")
	if !ok {
		t.Fatalf("SplitWordShortcut(그래서요) not matched")
	}
	if rest != "요" {
		t.Errorf("SplitWordShortcut(그래서요) rest = %q, want %q", rest, "요")
	}
	if len(cells) != 2 {
		t.Errorf("SplitWordShortcut(그래서요) cells = %v, want 2 cells", cells)
	}
}

func TestConsonantAContraction(t *testing.T) {
	if cell, ok := ConsonantAContraction(0); !ok || cell != 43 {
		t.Errorf("ConsonantAContraction(ㄱ) = (%d, %v), want (43, true)", cell, ok)
	}
}
