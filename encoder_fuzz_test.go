package braillify

import (
	"strings"
	"testing"
)

// FuzzEncode checks that Encode never panics on arbitrary input, and that
// a non-empty, non-space-only input produces non-empty output when it
// succeeds.
func FuzzEncode(f *testing.F) {
	seeds := []string{
		"가", "반가워요", "WELCOME TO KOREA", "1/2", "$\\frac{3}{4}$",
		"그래서 작동", "5개", "", "   ", "□□□",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, text string) {
		out, err := Encode(text)
		if err != nil {
			return
		}
		if strings.TrimSpace(text) != "" && len(out) == 0 {
			t.Errorf("Encode(%q) succeeded with empty output", text)
		}
	})
}
