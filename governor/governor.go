// Package governor implements the predicates the encoder's Latin-script
// arbitration logic consults to decide whether a punctuation mark belongs
// to an open Latin run or to the surrounding Korean text, and whether a
// Latin run needs a terminator, a continuation, or neither, at the point a
// non-letter character interrupts it.
package governor

import "unicode"

// forceTerminator are symbols that always close an open Latin run outright
// (they can't plausibly continue an English word or abbreviation).
var forceTerminator = map[rune]bool{
	'/': true, '\'': true, '"': true, '(': true, '{': true, '[': true, '|': true, '\\': true,
}

// skipTerminator are symbols that can sit inside or immediately after a
// Latin run without forcing a 로마자 종료표: ordinary sentence punctuation.
var skipTerminator = map[rune]bool{
	',': true, '.': true, '!': true, '?': true, ';': true, ':': true,
}

// requestsContinuation is the subset of skipTerminator that, rather than
// simply being absorbed, asks the encoder to keep a "continuation pending"
// flag so a Latin run resuming right after doesn't re-emit the entry
// marker redundantly.
var requestsContinuation = map[rune]bool{
	'.': true, '!': true, '?': true,
}

// ShouldForceTerminatorBeforeSymbol reports whether sym must close an open
// Latin run before it is emitted.
func ShouldForceTerminatorBeforeSymbol(sym rune) bool {
	return forceTerminator[sym]
}

// ShouldSkipTerminatorForSymbol reports whether sym can pass through an
// open Latin run without a terminator.
func ShouldSkipTerminatorForSymbol(sym rune) bool {
	return skipTerminator[sym]
}

// ShouldRequestContinuation reports whether, having skipped the
// terminator for sym, the encoder should still flag a pending
// continuation for the next Latin run.
func ShouldRequestContinuation(sym rune) bool {
	return requestsContinuation[sym]
}

// IsEnglishSymbol reports whether ch is ASCII punctuation, the broader
// class the end-of-word lookahead uses to decide whether a following word
// is plausibly still part of the same Latin run.
func IsEnglishSymbol(ch rune) bool {
	return ch < 128 && unicode.IsPunct(ch)
}

// RequiresSingleLetterContinuation reports whether a single following
// Latin letter (typically a stand-alone article or the pronoun "I") should
// keep the current run open with a continuation marker rather than being
// treated as a fresh word needing its own entry marker.
func RequiresSingleLetterContinuation(letter rune) bool {
	switch letter {
	case 'a', 'A', 'i', 'I':
		return true
	default:
		return false
	}
}

// ShouldRenderSymbolAsEnglish decides whether sym, found inside word at
// index i, belongs to the open (or about-to-open) Latin run rather than to
// the surrounding Korean context. parenStack holds, for each currently
// open '(', whether it was rendered as an English-context paren. This
// function does not read it: for ')' the caller pops the matching decision
// and uses it in place of this function's answer, since by the time ')' is
// seen its opening context may no longer be adjacent.
func ShouldRenderSymbolAsEnglish(englishIndicator, isEnglish bool, parenStack []bool, sym rune, word []rune, i int, remainingWords []string) bool {
	if !englishIndicator {
		return true
	}
	if isEnglish {
		return true
	}
	if prevIsLatin(word, i) || nextIsLatin(word, i, remainingWords) {
		return true
	}
	return false
}

func prevIsLatin(word []rune, i int) bool {
	return i > 0 && isASCIIAlpha(word[i-1])
}

func nextIsLatin(word []rune, i int, remainingWords []string) bool {
	if i+1 < len(word) {
		return isASCIIAlpha(word[i+1])
	}
	for _, w := range remainingWords {
		if w == "" {
			continue
		}
		return isASCIIAlpha([]rune(w)[0])
	}
	return false
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
