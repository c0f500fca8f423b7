package vader

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TranslateEmoji replaces every emoji in text with its description.
//
// Text is walked grapheme by grapheme, so emoji glued to words or to each
// other are still found, and multi-codepoint emoji (skin tones, ZWJ
// sequences) match as one unit. A description never fuses with a
// neighbouring non-space character: a single space is inserted where needed.
func TranslateEmoji(text string, emojiLexicon EmojiLexicon) string {
	if len(emojiLexicon) == 0 || isASCII(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true // nothing written yet
	afterEmoji := false

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		g := gr.Str()

		if description, ok := emojiLexicon.Describe(g); ok {
			if !lastSpace {
				b.WriteByte(' ')
			}
			b.WriteString(description)
			lastSpace = false
			afterEmoji = true
			continue
		}

		space := isSpaceGrapheme(g)
		if afterEmoji && !space {
			b.WriteByte(' ')
		}
		b.WriteString(g)
		lastSpace = space
		afterEmoji = false
	}

	return b.String()
}

func isSpaceGrapheme(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsSpace(r)
}
