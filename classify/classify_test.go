package classify

import "testing"

func TestNewKind(t *testing.T) {
	cases := []struct {
		r    rune
		kind Kind
	}{
		{'가', KoreanSyllable},
		{'ㄱ', KoreanJamoPart},
		{'a', Latin},
		{'Z', Latin},
		{'5', Digit},
		{' ', Whitespace},
		{'\n', Whitespace},
		{'.', Symbol},
		{'+', MathSymbol},
		{'½', UnicodeFraction},
	}
	for _, c := range cases {
		got, err := New(c.r)
		if err != nil {
			t.Fatalf("New(%q): %v", c.r, err)
		}
		if got.Kind != c.kind {
			t.Errorf("New(%q).Kind = %v, want %v", c.r, got.Kind, c.kind)
		}
	}
}

func TestNewUnknownCharacter(t *testing.T) {
	_, err := New(rune(0x1F600))
	if err == nil {
		t.Fatalf("expected an UnknownCharacterError")
	}
	if _, ok := err.(*UnknownCharacterError); !ok {
		t.Errorf("expected *UnknownCharacterError, got %T", err)
	}
}

func TestSyllableTriple(t *testing.T) {
	got, err := New('가')
	if err != nil {
		t.Fatalf("New('가'): %v", err)
	}
	if got.Triple.Cho != 0 || got.Triple.Jung != 0 || got.Triple.Jong != 0 {
		t.Errorf("New('가').Triple = %+v, want {0 0 0}", got.Triple)
	}
}
