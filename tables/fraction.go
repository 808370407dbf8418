package tables

import "fmt"

// FractionLine is the dot cell separating denominator from numerator in a
// disambiguated fraction (LaTeX \frac{num}{den} or a precomposed Unicode
// vulgar fraction). 분수는 분모를 먼저 적고 구분선을 그은 다음 분자를 적는다
// (분모 먼저 규정): the denominator comes first.
const FractionLine byte = 12

// AmbiguousSlash is the two-cell marker used for a plain "N/M" run written
// with a literal '/' — unlike \frac{}{} or a precomposed Unicode fraction,
// a bare slash can't be disambiguated from division or a date, so its
// numerator/denominator order is kept as written rather than reordered,
// and it gets a distinct (longer) separator to flag the ambiguity.
var AmbiguousSlash = []byte{56, 12}

// unicodeFractions maps the Unicode Number Forms vulgar fractions to their
// numerator/denominator strings.
var unicodeFractions = map[rune][2]string{
	'¼': {"1", "4"}, '½': {"1", "2"}, '¾': {"3", "4"},
	'⅓': {"1", "3"}, '⅔': {"2", "3"},
	'⅕': {"1", "5"}, '⅖': {"2", "5"}, '⅗': {"3", "5"}, '⅘': {"4", "5"},
	'⅙': {"1", "6"}, '⅚': {"5", "6"},
	'⅛': {"1", "8"}, '⅜': {"3", "8"}, '⅝': {"5", "8"}, '⅞': {"7", "8"},
}

// IsUnicodeFraction reports whether r is a precomposed vulgar fraction
// character this table knows how to decompose.
func IsUnicodeFraction(r rune) bool {
	_, ok := unicodeFractions[r]
	return ok
}

// UnicodeFractionParts returns the numerator and denominator digit strings
// for a precomposed vulgar fraction rune.
func UnicodeFractionParts(r rune) (numerator, denominator string, ok bool) {
	parts, found := unicodeFractions[r]
	if !found {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// InvalidFractionDigitsError is returned when a fraction's numerator or
// denominator contains a non-digit character.
type InvalidFractionDigitsError struct {
	Part string
}

func (e *InvalidFractionDigitsError) Error() string {
	return fmt.Sprintf("invalid fraction digits: %q", e.Part)
}

// EncodeFraction renders numerator/denominator digit strings in
// denominator-first order, joined by the fraction line.
func EncodeFraction(numerator, denominator string) ([]byte, error) {
	den, err := encodeDigitRun(denominator)
	if err != nil {
		return nil, err
	}
	num, err := encodeDigitRun(numerator)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(den)+1+len(num)+2)
	out = append(out, NumberIndicator)
	out = append(out, den...)
	out = append(out, FractionLine)
	out = append(out, NumberIndicator)
	out = append(out, num...)
	return out, nil
}

// EncodeMixedFraction renders "whole numerator/denominator" (e.g. 3¼): the
// whole part with its own number indicator, followed by the fraction part.
func EncodeMixedFraction(whole, numerator, denominator string) ([]byte, error) {
	w, err := encodeDigitRun(whole)
	if err != nil {
		return nil, err
	}
	frac, err := EncodeFraction(numerator, denominator)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(w)+len(frac))
	out = append(out, NumberIndicator)
	out = append(out, w...)
	out = append(out, frac...)
	return out, nil
}

// EncodeFractionInContext renders a plain "N/M" run (literal ASCII slash)
// without reordering: the numerator is written as it appears, followed by
// the ambiguous-slash marker, then the denominator.
func EncodeFractionInContext(numerator, denominator string) ([]byte, error) {
	num, err := encodeDigitRun(numerator)
	if err != nil {
		return nil, err
	}
	den, err := encodeDigitRun(denominator)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(num)+len(AmbiguousSlash)+1+len(den))
	out = append(out, NumberIndicator)
	out = append(out, num...)
	out = append(out, AmbiguousSlash...)
	out = append(out, NumberIndicator)
	out = append(out, den...)
	return out, nil
}

func encodeDigitRun(digits string) ([]byte, error) {
	out := make([]byte, 0, len(digits))
	for _, r := range digits {
		cell, ok := EncodeDigit(r)
		if !ok {
			return nil, &InvalidFractionDigitsError{Part: digits}
		}
		out = append(out, cell)
	}
	return out, nil
}
