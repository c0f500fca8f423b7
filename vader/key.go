package vader

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Key is a case-folded form of a word or phrase. All lexicon and rule
// table lookups go through a Key so case-insensitivity lives in one place.
type Key string

// KeyOf folds s into a lookup key.
func KeyOf(s string) Key {
	if isASCII(s) {
		return Key(strings.ToLower(s))
	}
	// a Caser keeps state, so it is not shared between goroutines
	return Key(cases.Lower(language.Und).String(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

type keySet map[Key]struct{}

func newKeySet(words ...string) keySet {
	set := make(keySet, len(words))
	for _, w := range words {
		set[KeyOf(w)] = struct{}{}
	}
	return set
}

func (s keySet) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

func phrasesWithSpace(m map[Key]float64) []Key {
	var phrases []Key
	for k := range m {
		if strings.Contains(string(k), " ") {
			phrases = append(phrases, k)
		}
	}
	sort.Slice(phrases, func(i, j int) bool { return phrases[i] < phrases[j] })
	return phrases
}

// joinKeys joins keys with single spaces and pads both ends, so a phrase
// matches on whole tokens with strings.Contains(window, " "+phrase+" ").
func joinKeys(tokens []Token) string {
	var b strings.Builder
	b.WriteByte(' ')
	for _, t := range tokens {
		b.WriteString(string(t.Key))
		b.WriteByte(' ')
	}
	return b.String()
}

// containsPhrase matches whole tokens, not raw substrings, so "the shit"
// does not fire inside "the shitty".
func containsPhrase(window string, phrase Key) bool {
	return strings.Contains(window, " "+string(phrase)+" ")
}
