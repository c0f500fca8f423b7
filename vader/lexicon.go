package vader

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

//go:generate go run ./data/fetch.go -dir data

//go:embed data/vader_lexicon.txt
var rawLexicon string

//go:embed data/emoji_utf8_lexicon.txt
var rawEmojiLexicon string

// ErrEmptyLexicon is returned when a lexicon source holds no entries.
var ErrEmptyLexicon = errors.New("vader: lexicon has no entries")

// ParseError reports a malformed line in a lexicon source.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Lexicon maps a folded word to its base valence, roughly in [-4, 4].
type Lexicon map[Key]float64

// Valence looks up word case-insensitively.
func (l Lexicon) Valence(word string) (float64, bool) {
	v, ok := l[KeyOf(word)]
	return v, ok
}

func (l Lexicon) has(k Key) bool {
	_, ok := l[k]
	return ok
}

// EmojiLexicon maps a single emoji grapheme to a short description.
// Lookups are case-sensitive.
type EmojiLexicon map[string]string

// Describe returns the description of grapheme, if known.
func (e EmojiLexicon) Describe(grapheme string) (string, bool) {
	d, ok := e[grapheme]
	return d, ok
}

//Convert lexicon data to map
//Each line is word<TAB>mean valence, any further columns are ignored
func ParseLexicon(r io.Reader) (Lexicon, error) {
	lexicon := make(Lexicon)

	err := eachLine(r, func(n int, values []string) error {
		if len(values) < 2 {
			return &ParseError{Line: n, Msg: "expected word and valence separated by a tab"}
		}
		measure, err := strconv.ParseFloat(strings.TrimSpace(values[1]), 64)
		if err != nil {
			return &ParseError{Line: n, Msg: fmt.Sprintf("invalid valence for %q", values[0]), Err: err}
		}
		lexicon[KeyOf(values[0])] = measure
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(lexicon) == 0 {
		return nil, ErrEmptyLexicon
	}

	return lexicon, nil
}

// Convert emoji lexicon data to map
func ParseEmojiLexicon(r io.Reader) (EmojiLexicon, error) {
	emojiLexicon := make(EmojiLexicon)

	err := eachLine(r, func(n int, values []string) error {
		if len(values) < 2 || strings.TrimSpace(values[1]) == "" {
			return &ParseError{Line: n, Msg: "expected emoji and description separated by a tab"}
		}
		emojiLexicon[values[0]] = strings.TrimSpace(values[1])
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(emojiLexicon) == 0 {
		return nil, ErrEmptyLexicon
	}

	return emojiLexicon, nil
}

func eachLine(r io.Reader, fn func(n int, values []string) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		// "#" alone or followed by a space starts a comment; "#️⃣" is an emoji
		if strings.TrimSpace(line) == "" || line == "#" || strings.HasPrefix(line, "# ") {
			continue
		}
		if err := fn(n, strings.Split(line, "\t")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", n+1, err)
	}
	return nil
}

// LoadLexicon reads a lexicon file from disk.
func LoadLexicon(path string) (Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lexicon, err := ParseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	return lexicon, nil
}

// LoadEmojiLexicon reads an emoji lexicon file from disk.
func LoadEmojiLexicon(path string) (EmojiLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	emojiLexicon, err := ParseEmojiLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("parse emoji lexicon %s: %w", path, err)
	}
	return emojiLexicon, nil
}

var (
	defaultLexicon         Lexicon
	defaultLexiconErr      error
	defaultLexiconOnce     sync.Once
	defaultEmojiLexicon    EmojiLexicon
	defaultEmojiLexiconErr error
	defaultEmojiOnce       sync.Once
)

// DefaultLexicon returns the embedded lexicon. The map is shared and must
// not be modified.
func DefaultLexicon() (Lexicon, error) {
	defaultLexiconOnce.Do(func() {
		defaultLexicon, defaultLexiconErr = ParseLexicon(strings.NewReader(rawLexicon))
	})
	return defaultLexicon, defaultLexiconErr
}

// DefaultEmojiLexicon returns the embedded emoji lexicon. The map is shared
// and must not be modified.
func DefaultEmojiLexicon() (EmojiLexicon, error) {
	defaultEmojiOnce.Do(func() {
		defaultEmojiLexicon, defaultEmojiLexiconErr = ParseEmojiLexicon(strings.NewReader(rawEmojiLexicon))
	})
	return defaultEmojiLexicon, defaultEmojiLexiconErr
}
