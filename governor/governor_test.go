package governor

import "testing"

func TestShouldForceTerminatorBeforeSymbol(t *testing.T) {
	if !ShouldForceTerminatorBeforeSymbol('/') {
		t.Errorf("ShouldForceTerminatorBeforeSymbol('/') = false, want true")
	}
	if ShouldForceTerminatorBeforeSymbol('.') {
		t.Errorf("ShouldForceTerminatorBeforeSymbol('.') = true, want false")
	}
}

func TestShouldRequestContinuation(t *testing.T) {
	if !ShouldRequestContinuation('.') {
		t.Errorf("ShouldRequestContinuation('.') = false, want true")
	}
	if ShouldRequestContinuation(',') {
		t.Errorf("ShouldRequestContinuation(',') = true, want false")
	}
}

func TestRequiresSingleLetterContinuation(t *testing.T) {
	for _, r := range []rune{'a', 'A', 'i', 'I'} {
		if !RequiresSingleLetterContinuation(r) {
			t.Errorf("RequiresSingleLetterContinuation(%q) = false, want true", r)
		}
	}
	if RequiresSingleLetterContinuation('b') {
		t.Errorf("RequiresSingleLetterContinuation('b') = true, want false")
	}
}

func TestShouldRenderSymbolAsEnglishNoIndicator(t *testing.T) {
	if !ShouldRenderSymbolAsEnglish(false, false, nil, ',', []rune("a,b"), 1, nil) {
		t.Errorf("ShouldRenderSymbolAsEnglish with englishIndicator=false should always be true")
	}
}

func TestShouldRenderSymbolAsEnglishNeighborLatin(t *testing.T) {
	word := []rune("a,b")
	if !ShouldRenderSymbolAsEnglish(true, false, nil, ',', word, 1, nil) {
		t.Errorf("comma between two Latin letters should render as English")
	}
}
