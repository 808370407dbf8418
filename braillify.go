// Package braillify transcodes Korean (and embedded Latin-script, digit,
// and symbol) text into six-dot Korean braille, cell by cell, following
// the 한글 점자 규정: syllable contraction (제10-17항), the Latin-script
// governor that decides when a romaja run opens and closes (제31-35항),
// numerals and fractions (제28,40,43항), and punctuation (제33,53,58항).
//
// The encoder is a single-pass state machine over whitespace-delimited
// words, mirroring the per-word, per-rune dispatch a hand-written
// transcriber performs: classify the rune (package classify), decide what
// the encoder's running state says about it, emit cells, advance state.
package braillify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hangulbraille/braillify/cell"
	"github.com/hangulbraille/braillify/classify"
	"github.com/hangulbraille/braillify/governor"
	"github.com/hangulbraille/braillify/hangul"
	"github.com/hangulbraille/braillify/jamo"
	"github.com/hangulbraille/braillify/syllable"
	"github.com/hangulbraille/braillify/tables"
)

var fractionRegex = regexp.MustCompile(`^(\d+)/(\d+)`)

// Encoder holds the running state a word-by-word, rune-by-rune pass over
// the input needs: whether a Latin run is currently open, whether the
// all-caps triple-word marker is pending a close, and the nesting stack of
// parenthesis decisions (English-context or not) opened but not yet
// closed.
type Encoder struct {
	englishIndicator         bool
	isEnglish                bool
	tripleBigEnglish         bool
	hasProcessedWord         bool
	needsEnglishContinuation bool
	parenStack               []bool

	out []byte
}

// New creates an Encoder. englishIndicator fixes, for the whole input,
// whether Latin runs need the entry/exit markers 제31항 requires — it is
// true iff the input contains at least one Korean syllable, computed once
// by Encode/EncodeToUnicode rather than re-derived per word.
func New(englishIndicator bool) *Encoder {
	return &Encoder{englishIndicator: englishIndicator}
}

func (e *Encoder) exitEnglish(needsContinuation bool) {
	e.isEnglish = false
	e.needsEnglishContinuation = needsContinuation
}

func (e *Encoder) enterEnglish() {
	if e.needsEnglishContinuation {
		e.out = append(e.out, 48)
	} else {
		e.out = append(e.out, 52)
	}
	e.isEnglish = true
	e.needsEnglishContinuation = false
}

// Encode appends text's dot cells to the encoder's running output.
func (e *Encoder) Encode(text string) error {
	words := splitWords(text)
	var prevWord string
	for i, word := range words {
		remaining := words[i+1:]
		skip := 0
		if err := e.encodeWord(word, prevWord, remaining, &skip); err != nil {
			return err
		}
		prevWord = word
	}
	return nil
}

// Finish closes a triple-caps phrase still open at end of input by
// appending the phrase terminator. It writes no Latin-run terminator: a
// Latin run open in the last word stays open, and decisions left on the
// parenthesis stack by an unmatched '(' are kept.
func (e *Encoder) Finish() {
	if e.tripleBigEnglish {
		e.out = append(e.out, 32, 4)
		e.tripleBigEnglish = false
	}
}

// Bytes returns the cells produced so far.
func (e *Encoder) Bytes() []byte { return e.out }

func splitWords(text string) []string {
	raw := strings.Split(text, " ")
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

var doubledSyllables = map[string]bool{
	"팠": true, "껐": true, "셩": true, "쎵": true,
	"졍": true, "쪙": true, "쳥": true, "겄": true,
}

var noAbbreviationConsonants = map[string]bool{
	"나": true, "다": true, "마": true, "바": true,
	"자": true, "카": true, "타": true, "파": true, "하": true,
}

func isASCIIAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func allASCIIAlpha(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !isASCIIAlpha(r) {
			return false
		}
	}
	return true
}

// hasChoseongO reports whether r is a Hangul syllable whose initial
// consonant is ㅇ (needed for the 나다마바자카타파하+모음 exception, which
// only fires when the following syllable's initial carries no consonant
// sound of its own).
func hasChoseongO(r rune) bool {
	t, ok := hangul.Decompose(r)
	return ok && t.Cho == 11
}

// encodeWord implements one pass of the per-word dispatch: normalize the
// 제53항 ellipsis forms, try a whole-word shortcut or a LaTeX fraction, then
// fall through to per-rune dispatch.
func (e *Encoder) encodeWord(word, prevWord string, remainingWords []string, skipCount *int) error {
	word = strings.ReplaceAll(word, "......", "...")
	word = strings.ReplaceAll(word, "……", "…")

	if strings.HasPrefix(word, "$") && strings.HasSuffix(word, "$") {
		if whole, num, den, ok := parseLatexFraction(word); ok {
			var cells []byte
			var err error
			if whole != "" {
				cells, err = tables.EncodeMixedFraction(whole, num, den)
			} else {
				cells, err = tables.EncodeFraction(num, den)
			}
			if err != nil {
				return err
			}
			e.out = append(e.out, cells...)
			if len(remainingWords) > 0 {
				e.out = append(e.out, 0)
			}
			return nil
		}
	}

	if cells, rest, ok := tables.SplitWordShortcut(word); ok {
		e.out = append(e.out, cells...)
		if rest != "" {
			if err := e.Encode(rest); err != nil {
				return err
			}
		}
		if len(remainingWords) > 0 {
			e.out = append(e.out, 0)
		}
		return nil
	}

	chars := []rune(word)
	wordLen := len(chars)

	letters, uppers := 0, 0
	for _, c := range chars {
		if isASCIIAlpha(c) {
			letters++
			if c >= 'A' && c <= 'Z' {
				uppers++
			}
		}
	}
	isAllUppercase := letters >= 2 && letters == uppers

	hasKoreanChar := false
	for _, c := range chars {
		if hangul.IsSyllable(c) {
			hasKoreanChar = true
			break
		}
	}

	hasASCIIAlphabetic := false
	for _, c := range chars {
		if isASCIIAlpha(c) {
			hasASCIIAlphabetic = true
			break
		}
	}

	pendingEnglishStart := e.englishIndicator && !e.isEnglish && hasASCIIAlphabetic
	if pendingEnglishStart && wordLen > 0 && isASCIIAlpha(chars[0]) {
		e.enterEnglish()
		pendingEnglishStart = false
	}

	firstASCIIIndex := -1
	for i, c := range chars {
		if isASCIIAlpha(c) {
			firstASCIIIndex = i
			break
		}
	}
	asciiStartsAtBeginning := firstASCIIIndex == 0

	if isAllUppercase && !e.tripleBigEnglish && asciiStartsAtBeginning {
		if (!e.hasProcessedWord || !allASCIIAlpha(prevWord)) &&
			len(remainingWords) >= 2 &&
			allASCIIAlpha(remainingWords[0]) && allASCIIAlpha(remainingWords[1]) {
			e.tripleBigEnglish = true
			e.out = append(e.out, 32, 32, 32)
		} else if wordLen >= 2 {
			e.out = append(e.out, 32, 32)
		}
	}

	isNumber := false
	isBigEnglish := false

	for i := 0; i < wordLen; i++ {
		if *skipCount > 0 {
			*skipCount--
			continue
		}
		c := chars[i]

		if pendingEnglishStart &&
			(isASCIIAlpha(c) ||
				(governor.ShouldRenderSymbolAsEnglish(e.englishIndicator, e.isEnglish, e.parenStack, c, chars, i, remainingWords) && !e.needsEnglishContinuation)) {
			e.enterEnglish()
			pendingEnglishStart = false
		}

		ct, err := classify.New(c)
		if err != nil {
			return err
		}

		if e.englishIndicator && e.isEnglish {
			switch ct.Kind {
			case classify.Latin:
				// stays inside the run
			case classify.Digit:
				// 제35항: 로마자와 숫자가 이어 나올 때에는 로마자 종료표를 적지 않는다.
				e.exitEnglish(true)
			case classify.Symbol:
				if governor.ShouldRenderSymbolAsEnglish(e.englishIndicator, e.isEnglish, e.parenStack, ct.Rune, chars, i, remainingWords) {
					// stays inside the run
				} else if governor.ShouldForceTerminatorBeforeSymbol(ct.Rune) {
					e.out = append(e.out, 50)
					e.exitEnglish(false)
				} else if !governor.ShouldSkipTerminatorForSymbol(ct.Rune) {
					e.out = append(e.out, 50)
					e.exitEnglish(false)
				} else {
					e.exitEnglish(governor.ShouldRequestContinuation(ct.Rune))
				}
			default:
				e.out = append(e.out, 50)
				e.exitEnglish(false)
			}
		}

		switch ct.Kind {
		case classify.KoreanSyllable:
			e.needsEnglishContinuation = false
			t := ct.Triple
			if isNumber && isConfusableAfterNumber(t.Cho, c) {
				// 44항 [다만]: 숫자와 혼동되는 자모로 시작하는 글자는 숫자 뒤에
				// 붙어 나오더라도 띄어 쓴다.
				e.out = append(e.out, 0)
			}

			switch {
			case doubledSyllables[string(c)]:
				cells, err := syllable.Encode(c, t)
				if err != nil {
					return err
				}
				e.out = append(e.out, cells...)
			case noAbbreviationConsonants[string(c)] && i < wordLen-1 && hasChoseongO(chars[i+1]):
				// 14항: ‘나,다,마,바,자,카,타,파,하’에 모음이 붙어 나올 때에는 약자를 사용하지 않는다.
				choCells, err := jamo.EncodeChoseong(t.Cho)
				if err != nil {
					return err
				}
				jungCells, err := jamo.EncodeJungseong(t.Jung)
				if err != nil {
					return err
				}
				e.out = append(e.out, choCells...)
				e.out = append(e.out, jungCells...)
			default:
				cells, err := syllable.Encode(c, t)
				if err != nil {
					return err
				}
				e.out = append(e.out, cells...)
			}

			if i < wordLen-1 {
				applyRule11(t, chars[i+1], &e.out)
				applyRule12(t, chars[i+1], &e.out)
			}

		case classify.KoreanJamoPart:
			e.needsEnglishContinuation = false
			if err := e.encodeKoreanPart(c, i, wordLen, chars, hasKoreanChar); err != nil {
				return err
			}

		case classify.Latin:
			if e.englishIndicator && !e.isEnglish {
				e.enterEnglish()
			}
			if (!isAllUppercase || wordLen < 2 || !asciiStartsAtBeginning) && !isBigEnglish && c >= 'A' && c <= 'Z' {
				isBigEnglish = true
				for idx := 0; idx < min2(wordLen-i, 2); idx++ {
					nc := chars[i+idx]
					if nc >= 'A' && nc <= 'Z' {
						e.out = append(e.out, 32)
					} else {
						break
					}
				}
			}
			lower := strings.ToLower(string(chars[i:]))
			if !e.isEnglish || i == 0 {
				if !isAllUppercase {
					if code, extra, ok := tables.MatchLatinGroup10_6(lower); ok {
						e.out = append(e.out, code)
						*skipCount = extra
					} else if code, extra, ok := tables.MatchLatinDigraph10_4(lower); ok {
						e.out = append(e.out, code)
						*skipCount = extra
					} else if latinCell, ok := tables.EncodeLatin(c); ok {
						e.out = append(e.out, latinCell)
					} else {
						return fmt.Errorf("unknown Latin letter %q", c)
					}
				} else if latinCell, ok := tables.EncodeLatin(c); ok {
					e.out = append(e.out, latinCell)
				}
			} else if code, extra, ok := tables.MatchLatinDigraph10_4(lower); ok {
				e.out = append(e.out, code)
				*skipCount = extra
			} else if latinCell, ok := tables.EncodeLatin(c); ok {
				e.out = append(e.out, latinCell)
			} else {
				return fmt.Errorf("unknown Latin letter %q", c)
			}
			e.isEnglish = true
			e.needsEnglishContinuation = false

		case classify.Digit:
			if !isNumber {
				if num, den, matchLen, ok := e.matchInlineFraction(chars, i, wordLen); ok {
					cells, err := tables.EncodeFractionInContext(num, den)
					if err != nil {
						return err
					}
					e.out = append(e.out, cells...)
					*skipCount = matchLen - 1
					isNumber = true
					continue
				}
				if !(i > 0 && (chars[i-1] == '.' || chars[i-1] == ',')) {
					e.out = append(e.out, tables.NumberIndicator)
				}
				isNumber = true
			}
			digit, _ := tables.EncodeDigit(c)
			e.out = append(e.out, digit)

		case classify.UnicodeFraction:
			if num, den, ok := tables.UnicodeFractionParts(c); ok {
				cells, err := tables.EncodeFraction(num, den)
				if err != nil {
					return err
				}
				e.out = append(e.out, cells...)
				isNumber = true
			}

		case classify.Symbol:
			if err := e.encodeSymbol(c, chars, i, wordLen, isNumber, remainingWords, skipCount, pendingEnglishStart); err != nil {
				return err
			}

		case classify.Whitespace:
			if c == '\n' {
				e.out = append(e.out, cell.Newline)
			} else {
				e.out = append(e.out, cell.Space)
			}

		case classify.MathSymbol:
			if i > 0 {
				for _, prev := range chars[:i] {
					if hangul.IsSyllable(prev) {
						e.out = append(e.out, 0)
						break
					}
				}
			}
			cells, ok := tables.EncodeMathSymbol(c)
			if !ok {
				return fmt.Errorf("unknown math symbol %q", c)
			}
			e.out = append(e.out, cells...)
			if i < wordLen-1 {
				e.maybeSeparateAfterMathSymbol(chars, i, wordLen)
			}
		}

		if !isASCIIDigit(c) {
			isNumber = false
		}
		if isASCIIAlpha(c) && c >= 'a' && c <= 'z' {
			isBigEnglish = false
		}
	}

	if e.tripleBigEnglish && !(len(remainingWords) > 0 && allASCIIAlpha(remainingWords[0])) {
		e.out = append(e.out, 32, 4)
		e.tripleBigEnglish = false
	}

	if len(remainingWords) > 0 {
		if e.englishIndicator && e.isEnglish {
			e.closeEnglishAtWordBoundary(remainingWords)
		}
		e.out = append(e.out, 0)
	}

	e.hasProcessedWord = true
	return nil
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (e *Encoder) closeEnglishAtWordBoundary(remainingWords []string) {
	next := remainingWords[0]
	nextRunes := []rune(next)
	ascii := 0
	hasDigit := false
	hasInvalid := false
	var asciiLetter rune
	for _, ch := range nextRunes {
		if isASCIIAlpha(ch) {
			ascii++
			asciiLetter = ch
		}
		if isASCIIDigit(ch) {
			hasDigit = true
		}
		if !(isASCIIAlpha(ch) || governor.IsEnglishSymbol(ch) || tables.IsSymbolChar(ch) || hangul.IsSyllable(ch) || isASCIIDigit(ch)) {
			hasInvalid = true
		}
	}
	isSingleLetterWord := ascii == 1 && !hasDigit && !hasInvalid

	if isSingleLetterWord && governor.RequiresSingleLetterContinuation(asciiLetter) {
		e.exitEnglish(true)
		return
	}
	if len(nextRunes) == 0 {
		return
	}
	nextChar := nextRunes[0]
	nt, err := classify.New(nextChar)
	if err != nil {
		e.out = append(e.out, 50)
		e.exitEnglish(false)
		return
	}
	switch nt.Kind {
	case classify.Latin, classify.Digit:
		// stays inside the run
	case classify.Symbol:
		if e.englishIndicator && e.isEnglish && governor.IsEnglishSymbol(nextChar) {
			// stays inside the run
		} else if governor.ShouldForceTerminatorBeforeSymbol(nextChar) {
			e.out = append(e.out, 50)
			e.exitEnglish(false)
		} else if !governor.ShouldSkipTerminatorForSymbol(nextChar) {
			e.out = append(e.out, 50)
			e.exitEnglish(false)
		} else {
			e.exitEnglish(governor.ShouldRequestContinuation(nextChar))
		}
	default:
		e.out = append(e.out, 50)
		e.exitEnglish(false)
	}
}

// isConfusableAfterNumber reports whether a syllable starting with cho (or
// literally "운") needs a separating blank when it directly follows a
// numeral run, since its initial would otherwise read as a continuation of
// the numeral (제44항 다만).
func isConfusableAfterNumber(cho hangul.Choseong, r rune) bool {
	switch cho {
	case 2, 3, 6, 15, 16, 17, 18: // ㄴ,ㄷ,ㅁ,ㅋ,ㅌ,ㅍ,ㅎ
		return true
	}
	return r == '운'
}

func (e *Encoder) encodeKoreanPart(c rune, i, wordLen int, chars []rune, hasKoreanChar bool) error {
	switch wordLen {
	case 1:
		e.out = append(e.out, 63)
		cells, ok := tables.EncodeKoreanPart(c)
		if !ok {
			return fmt.Errorf("unknown Hangul jamo %q", c)
		}
		e.out = append(e.out, cells...)
	case 2:
		if i == 0 && chars[1] == '.' {
			e.out = append(e.out, 63)
			cells, ok := tables.EncodeKoreanPart(c)
			if !ok {
				return fmt.Errorf("unknown Hangul jamo %q", c)
			}
			e.out = append(e.out, cells...)
		} else {
			e.out = append(e.out, 63)
			cells, ok := tables.EncodeKoreanPart(c)
			if !ok {
				return fmt.Errorf("unknown Hangul jamo %q", c)
			}
			e.out = append(e.out, cells...)
		}
	default:
		standalone := (i == 0 && wordLen > 1 && chars[1] == '자') ||
			((i == 0 || (i > 0 && isSymbolRune(chars[i-1]))) &&
				(wordLen-1 == i || (i < wordLen-1 && isSymbolRune(chars[i+1]))))
		if standalone {
			e.out = append(e.out, 63)
		} else if hasKoreanChar {
			e.out = append(e.out, 56)
		} else {
			e.out = append(e.out, 63)
		}
		cells, ok := tables.EncodeKoreanPart(c)
		if !ok {
			return fmt.Errorf("unknown Hangul jamo %q", c)
		}
		e.out = append(e.out, cells...)
	}
	return nil
}

func isSymbolRune(r rune) bool {
	ct, err := classify.New(r)
	return err == nil && ct.Kind == classify.Symbol
}

func (e *Encoder) encodeSymbol(c rune, chars []rune, i, wordLen int, isNumber bool, remainingWords []string, skipCount *int, pendingEnglishStart bool) error {
	useEnglishSymbol := governor.ShouldRenderSymbolAsEnglish(e.englishIndicator, e.isEnglish, e.parenStack, c, chars, i, remainingWords)

	if c == '(' {
		e.parenStack = append(e.parenStack, useEnglishSymbol)
	} else if c == ')' {
		if n := len(e.parenStack); n > 0 {
			useEnglishSymbol = e.parenStack[n-1]
			e.parenStack = e.parenStack[:n-1]
		}
	}

	if e.englishIndicator && (e.isEnglish || pendingEnglishStart) && useEnglishSymbol {
		if cells, ok := tables.EncodeEnglishSymbol(c); ok {
			e.out = append(e.out, cells...)
			return nil
		}
	}

	hasNumericPrefix, hasASCIIPrefix := false, false
	if c == ',' {
		j := i
		for j > 0 {
			prev := chars[j-1]
			if isASCIIDigit(prev) {
				hasNumericPrefix = true
				break
			} else if isASCIIAlpha(prev) {
				hasASCIIPrefix = true
				break
			} else if prev == ' ' {
				j--
			} else {
				break
			}
		}
	}

	var nextChar rune
	hasNext := false
	if i+1 < wordLen {
		nextChar, hasNext = chars[i+1], true
	} else {
		for _, w := range remainingWords {
			if w != "" {
				nextChar, hasNext = []rune(w)[0], true
				break
			}
		}
	}
	nextIsDigit := hasNext && isASCIIDigit(nextChar)
	nextIsASCII := hasNext && isASCIIAlpha(nextChar)
	nextIsKorean := hasNext && hangul.IsSyllable(nextChar)
	nextIsAlphanumeric := nextIsDigit || nextIsASCII

	switch {
	case c == ',' && (((isNumber || hasNumericPrefix) && nextIsDigit) || (hasASCIIPrefix && nextIsAlphanumeric)):
		// 제41항: 숫자 또는 로마자 구간에서 쉼표는 ⠂으로 적는다.
		e.out = append(e.out, tables.DigitGroupComma)
	case c == ',' && nextIsKorean:
		cells, ok := tables.EncodeSymbol(c)
		if !ok {
			return fmt.Errorf("unknown symbol %q", c)
		}
		e.out = append(e.out, cells...)
	case c == '□':
		count := 0
		for _, wc := range chars[i:] {
			if wc == '□' {
				count++
			} else {
				break
			}
		}
		e.out = append(e.out, 56)
		for n := 0; n < count; n++ {
			e.out = append(e.out, 54)
		}
		e.out = append(e.out, 7)
		*skipCount = count - 1
	default:
		cells, ok := tables.EncodeSymbol(c)
		if !ok {
			return fmt.Errorf("unknown symbol %q", c)
		}
		e.out = append(e.out, cells...)
	}
	return nil
}

func (e *Encoder) maybeSeparateAfterMathSymbol(chars []rune, i, wordLen int) {
	var korean []rune
	for _, wc := range chars[i:] {
		if hangul.IsSyllable(wc) {
			korean = append(korean, wc)
		} else if len(korean) > 0 {
			break
		}
	}
	if len(korean) == 0 {
		return
	}
	particle := string(korean)
	switch particle {
	case "과", "와", "이다", "하고", "이랑", "랑", "아니다":
		return
	}
	e.out = append(e.out, 0)
}

func (e *Encoder) matchInlineFraction(chars []rune, i, wordLen int) (numerator, denominator string, matchLen int, ok bool) {
	remaining := string(chars[i:])
	loc := fractionRegex.FindStringSubmatchIndex(remaining)
	if loc == nil {
		return "", "", 0, false
	}
	full := remaining[loc[0]:loc[1]]
	num := remaining[loc[2]:loc[3]]
	den := remaining[loc[4]:loc[5]]
	k := i + len([]rune(full))
	isDateOrRange := len(num) > 1 || len(den) > 1 ||
		(k < wordLen && chars[k] == '/') ||
		(k < wordLen && chars[k] == '~')
	if isDateOrRange {
		return "", "", 0, false
	}
	return num, den, len([]rune(full)), true
}

func parseLatexFraction(word string) (whole, numerator, denominator string, ok bool) {
	body := strings.TrimSuffix(strings.TrimPrefix(word, "$"), "$")
	var w string
	if idx := strings.Index(body, `\frac{`); idx > 0 {
		w = body[:idx]
		body = body[idx:]
	}
	if !strings.HasPrefix(body, `\frac{`) {
		return "", "", "", false
	}
	body = strings.TrimPrefix(body, `\frac{`)
	parts := strings.SplitN(body, "}{", 2)
	if len(parts) != 2 {
		return "", "", "", false
	}
	num := parts[0]
	den := strings.TrimSuffix(parts[1], "}")
	return w, num, den, true
}

// Encode transcribes text into braille dot cells. englishIndicator is
// derived once from the whole text (true iff any Korean syllable appears
// anywhere in it), matching the regulation's assumption that a document
// either consistently needs Latin-run markers or, being pure Latin text,
// never does.
func Encode(text string) ([]byte, error) {
	indicator := false
	for _, word := range splitWords(text) {
		for _, r := range word {
			if hangul.IsSyllable(r) {
				indicator = true
				break
			}
		}
		if indicator {
			break
		}
	}
	enc := New(indicator)
	if err := enc.Encode(text); err != nil {
		return nil, err
	}
	enc.Finish()
	return enc.Bytes(), nil
}

// EncodeToUnicode transcribes text and renders the result in the Unicode
// Braille Patterns block.
func EncodeToUnicode(text string) (string, error) {
	bytes, err := Encode(text)
	if err != nil {
		return "", err
	}
	return cell.EncodeToUnicode(bytes), nil
}

// EncodeToBrailleFont renders the same Unicode Braille Patterns string a
// braille-capable font displays; kept distinct from EncodeToUnicode since
// callers historically picked either entry point as its own contract
// (they currently share an implementation, as the Rust original did).
func EncodeToBrailleFont(text string) (string, error) {
	return EncodeToUnicode(text)
}
