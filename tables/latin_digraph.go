package tables

import "sort"

// latinDigraphs10_4 holds the two-letter Latin groups 제10-4항 gives a
// dedicated single cell to, so the pair is emitted as one cell instead of
// two. "ou" is the one directly attested in the worked-example corpus; the
// rest are representative entries for the same rule, not an exhaustive
// transcription of the regulation's full table.
var latinDigraphs10_4 = map[string]byte{
	"ou": 51,
	"th": 54,
	"sh": 50,
	"ch": 46,
	"ng": 62,
}

// latinGroups10_6 holds the longer (3+ letter) Latin groups 제10-6항
// contracts to a single cell. Word-initial-only per the regulation; callers
// enforce that restriction, this table only holds the mapping.
var latinGroups10_6 = map[string]byte{
	"ing": 49,
	"tion": 63,
	"ment": 28,
}

// sortedByLengthDesc returns m's keys ordered longest-first so a
// longest-prefix match can be done by simple linear scan.
func sortedByLengthDesc(m map[string]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}

var keys10_4 = sortedByLengthDesc(latinDigraphs10_4)
var keys10_6 = sortedByLengthDesc(latinGroups10_6)

func matchPrefix(lower string, keys []string, table map[string]byte) (cell byte, length int, ok bool) {
	for _, k := range keys {
		if len(k) <= len(lower) && lower[:len(k)] == k {
			return table[k], len(k), true
		}
	}
	return 0, 0, false
}

// MatchLatinDigraph10_4 finds the longest 제10-4항 group prefixing lower
// (already lowercased), returning its cell and the number of runes it
// consumes beyond the first.
func MatchLatinDigraph10_4(lower string) (cell byte, extraRunes int, ok bool) {
	cell, length, ok := matchPrefix(lower, keys10_4, latinDigraphs10_4)
	if !ok {
		return 0, 0, false
	}
	return cell, length - 1, true
}

// MatchLatinGroup10_6 finds the longest word-initial 제10-6항 group
// prefixing lower.
func MatchLatinGroup10_6(lower string) (cell byte, extraRunes int, ok bool) {
	cell, length, ok := matchPrefix(lower, keys10_6, latinGroups10_6)
	if !ok {
		return 0, 0, false
	}
	return cell, length - 1, true
}
