package braillify

import "testing"

// Most expected values below are decoded from assert_eq!(encode_to_unicode(...),
// ...) cases in the original Rust test suite, built only out of table
// entries DESIGN.md calls corpus-confirmed; TestEncodeEnglishSentence names
// its exact source fixture inline.
func TestEncodeToUnicodeDigits(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single digit", "5", "⠼⠑"},
		{"multi digit", "123", "⠼⠁⠃⠉"},
		{"unicode half", "½", "⠼⠃⠌⠼⠁"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := EncodeToUnicode(c.in)
			if err != nil {
				t.Fatalf("EncodeToUnicode(%q): %v", c.in, err)
			}
			if out != c.want {
				t.Fatalf("EncodeToUnicode(%q) = %q, want %q", c.in, out, c.want)
			}
		})
	}
}

func TestEncodeLatinWord(t *testing.T) {
	out, err := EncodeToUnicode("kg")
	if err != nil {
		t.Fatalf("EncodeToUnicode: %v", err)
	}
	if want := "⠅⠛"; out != want {
		t.Fatalf("EncodeToUnicode(%q) = %q, want %q", "kg", out, want)
	}
}

func TestEncodeKoreanSyllable(t *testing.T) {
	out, err := EncodeToUnicode("가")
	if err != nil {
		t.Fatalf("EncodeToUnicode(가): %v", err)
	}
	if len([]rune(out)) != 1 {
		t.Fatalf("EncodeToUnicode(가) = %q, want a single contracted cell", out)
	}
}

func TestEncodeUnknownCharacter(t *testing.T) {
	_, err := EncodeToUnicode(string(rune(0x1F600))) // an emoji, not a recognized class
	if err == nil {
		t.Fatalf("expected an error for an unrecognized character")
	}
}

func TestEncodeMixedNumberAndKorean(t *testing.T) {
	out, err := EncodeToUnicode("가방 5개")
	if err != nil {
		t.Fatalf("EncodeToUnicode: %v", err)
	}
	if want := "⠫⠘⠶⠀⠼⠑⠈⠗"; out != want {
		t.Fatalf("EncodeToUnicode(%q) = %q, want %q", "가방 5개", out, want)
	}
}

// TestEncodeEnglishSentence's expected value is the example-4 fixture
// decoded from _examples/original_source/libs/braillify/src/lib.rs:717-719.
func TestEncodeEnglishSentence(t *testing.T) {
	out, err := EncodeToUnicode("WELCOME TO KOREA")
	if err != nil {
		t.Fatalf("EncodeToUnicode: %v", err)
	}
	if want := "⠠⠠⠠⠺⠑⠇⠉⠕⠍⠑⠀⠞⠕⠀⠅⠕⠗⠑⠁⠠⠄"; out != want {
		t.Fatalf("EncodeToUnicode(%q) = %q, want %q", "WELCOME TO KOREA", out, want)
	}
}

func TestEncodeFractionLiteral(t *testing.T) {
	out, err := EncodeToUnicode("1/2")
	if err != nil {
		t.Fatalf("EncodeToUnicode(1/2): %v", err)
	}
	if want := "⠼⠁⠸⠌⠼⠃"; out != want {
		t.Fatalf("EncodeToUnicode(1/2) = %q, want %q", out, want)
	}
}

func TestEncodeWordShortcut(t *testing.T) {
	out, err := EncodeToUnicode("그래서")
	if err != nil {
		t.Fatalf("EncodeToUnicode(그래서): %v", err)
	}
	if len([]rune(out)) != 2 {
		t.Fatalf("EncodeToUnicode(그래서) = %q, want the two-cell word shortcut", out)
	}
}
