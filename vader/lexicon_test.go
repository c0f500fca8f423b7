package vader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLexicon(t *testing.T) {
	lexicon, err := DefaultLexicon()
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]float64{
		"good":     1.9,
		"GOOD":     1.9,
		"horrible": -2.5,
		":)":       2.0,
		":D":       2.3,
	}
	for word, want := range tests {
		got, ok := lexicon.Valence(word)
		if !ok || got != want {
			t.Errorf("Valence(%q) = %v, %v; want %v", word, got, ok, want)
		}
	}

	if _, ok := lexicon.Valence("but"); ok {
		t.Error("'but' must not be a lexicon word")
	}
	if _, ok := lexicon.Valence("least"); ok {
		t.Error("'least' must not be a lexicon word")
	}
}

func TestDefaultEmojiLexicon(t *testing.T) {
	emojiLexicon, err := DefaultEmojiLexicon()
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]string{
		"👽":  "alien",
		"👨🏿‍🎓": "man student: dark skin tone",
		"🖖🏻": "vulcan salute: light skin tone",
	}
	for emoji, want := range tests {
		if got, ok := emojiLexicon.Describe(emoji); !ok || got != want {
			t.Errorf("Describe(%q) = %q, %v; want %q", emoji, got, ok, want)
		}
	}
}

func TestParseLexicon(t *testing.T) {
	lexicon, err := ParseLexicon(strings.NewReader("Feudally\t-0.6\t0.4\t[0, -1]\r\n\nwisewomen\t1.3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := lexicon.Valence("feudally"); !ok || v != -0.6 {
		t.Errorf("feudally = %v, %v", v, ok)
	}
	if v, ok := lexicon.Valence("WiseWomen"); !ok || v != 1.3 {
		t.Errorf("wisewomen = %v, %v", v, ok)
	}
}

func TestParseLexicon_Comments(t *testing.T) {
	lexicon, err := ParseLexicon(strings.NewReader("# excerpt\n#\ngood\t1.9\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lexicon) != 1 {
		t.Errorf("lexicon = %v, want only good", lexicon)
	}

	emojiLexicon, err := ParseEmojiLexicon(strings.NewReader("# keycaps\n#\ufe0f\u20e3\tkeycap: #\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := emojiLexicon.Describe("#\ufe0f\u20e3"); !ok || got != "keycap: #" {
		t.Errorf("Describe(keycap) = %q, %v", got, ok)
	}
}

func TestParseLexicon_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"missing valence", "good\t1.9\nbad\n", 2},
		{"not a number", "good\t1.9\n\nbad\tvery\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLexicon(strings.NewReader(tt.input))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", pe.Line, tt.wantLine)
			}
		})
	}

	if _, err := ParseLexicon(strings.NewReader("\n\n")); !errors.Is(err, ErrEmptyLexicon) {
		t.Errorf("expected ErrEmptyLexicon, got %v", err)
	}
}

func TestParseEmojiLexicon_Errors(t *testing.T) {
	_, err := ParseEmojiLexicon(strings.NewReader("😀\tgrinning face\n😁\n"))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Fatalf("expected parse error on line 2, got %v", err)
	}
}

func TestLoadLexiconFiles(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "lexicon.txt")
	emojiPath := filepath.Join(dir, "emoji.txt")
	if err := os.WriteFile(lexPath, []byte("splendid\t2.8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(emojiPath, []byte("🌞\tsun with face\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sia, err := New(WithLexiconFile(lexPath), WithEmojiLexiconFile(emojiPath))
	if err != nil {
		t.Fatal(err)
	}

	if got := sia.PolarityScores("splendid"); !almostEqual(got.Compound, Normalize(2.8)) {
		t.Errorf("compound = %f, want %f", got.Compound, Normalize(2.8))
	}
	if got := TranslateEmoji("🌞", sia.EmojiLexicon); got != "sun with face" {
		t.Errorf("emoji translated to %q", got)
	}

	if _, err := New(WithLexiconFile(filepath.Join(dir, "missing.txt"))); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("splendid\tvery\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLexicon(bad); err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected line-numbered error, got %v", err)
	}
}
