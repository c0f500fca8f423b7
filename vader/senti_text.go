package vader

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one word or emoticon of the input, with its lookup key.
type Token struct {
	Text string
	Key  Key
}

func newToken(text string) Token {
	return Token{Text: text, Key: KeyOf(text)}
}

// IsAllCaps reports whether the token is written in capitals: more than one
// character, at least one letter and no lowercase letter. Pure punctuation
// such as ":)" is never all caps.
func (t Token) IsAllCaps() bool {
	if utf8.RuneCountInString(t.Text) <= 1 {
		return false
	}

	hasLetter := false
	for _, r := range t.Text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}

	return hasLetter
}

// ParsedText is the tokenized form of one input. It is built once per
// scoring call and never modified.
type ParsedText struct {
	Tokens               []Token
	HasMixedCaps         bool
	PunctuationAmplifier float64
}

func NewParsedText(text string) *ParsedText {
	tokens := Tokenize(text)

	return &ParsedText{
		Tokens:               tokens,
		HasMixedCaps:         hasMixedCaps(tokens),
		PunctuationAmplifier: punctuationEmphasis(text),
	}
}

//Splits text on whitespace, drops single characters and
//removes leading and trailing punctuation from words.
//Leaves contractions and emoticons such as :) :D :^(
func Tokenize(text string) []Token {
	words := strings.Fields(text)

	tokens := make([]Token, 0, len(words))
	for _, word := range words {
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		tokens = append(tokens, newToken(stripPuncIfWord(word)))
	}

	return tokens
}

func stripPuncIfWord(word string) string {
	stripped := strings.Trim(word, Punctuation)
	if utf8.RuneCountInString(stripped) <= 1 {
		return word
	}
	return stripped
}

//Check whether some words in the input are ALL CAPS while others aren't
func hasMixedCaps(tokens []Token) bool {
	var hasCaps, hasNonCaps bool

	for _, t := range tokens {
		if t.IsAllCaps() {
			hasCaps = true
		} else {
			hasNonCaps = true
		}
		if hasCaps && hasNonCaps {
			return true
		}
	}

	return false
}
