package vader

import (
	"github.com/charmbracelet/log"
)

//Give a sentiment intensity score to sentences.
//
//An analyzer is read-only once built by New, so one instance can serve any
//number of goroutines.
type SentimentIntensityAnalyzer struct {
	Lexicon      Lexicon
	EmojiLexicon EmojiLexicon

	logger *log.Logger
}

// Option configures an analyzer in New.
type Option func(*SentimentIntensityAnalyzer) error

// WithLexicon scores against lexicon instead of the embedded one.
func WithLexicon(lexicon Lexicon) Option {
	return func(sia *SentimentIntensityAnalyzer) error {
		if len(lexicon) == 0 {
			return ErrEmptyLexicon
		}
		sia.Lexicon = lexicon
		return nil
	}
}

// WithEmojiLexicon translates emoji using emojiLexicon. An empty map
// disables emoji translation.
func WithEmojiLexicon(emojiLexicon EmojiLexicon) Option {
	return func(sia *SentimentIntensityAnalyzer) error {
		if emojiLexicon == nil {
			emojiLexicon = EmojiLexicon{}
		}
		sia.EmojiLexicon = emojiLexicon
		return nil
	}
}

// WithLexiconFile loads the lexicon from path.
func WithLexiconFile(path string) Option {
	return func(sia *SentimentIntensityAnalyzer) error {
		lexicon, err := LoadLexicon(path)
		if err != nil {
			return err
		}
		sia.Lexicon = lexicon
		return nil
	}
}

// WithEmojiLexiconFile loads the emoji lexicon from path.
func WithEmojiLexiconFile(path string) Option {
	return func(sia *SentimentIntensityAnalyzer) error {
		emojiLexicon, err := LoadEmojiLexicon(path)
		if err != nil {
			return err
		}
		sia.EmojiLexicon = emojiLexicon
		return nil
	}
}

// WithLogger traces per-token valences at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(sia *SentimentIntensityAnalyzer) error {
		sia.logger = logger
		return nil
	}
}

// New builds an analyzer. Lexicons not set by an option fall back to the
// embedded defaults.
func New(opts ...Option) (*SentimentIntensityAnalyzer, error) {
	sia := &SentimentIntensityAnalyzer{}
	for _, opt := range opts {
		if err := opt(sia); err != nil {
			return nil, err
		}
	}

	if sia.Lexicon == nil {
		lexicon, err := DefaultLexicon()
		if err != nil {
			return nil, err
		}
		sia.Lexicon = lexicon
	}
	if sia.EmojiLexicon == nil {
		emojiLexicon, err := DefaultEmojiLexicon()
		if err != nil {
			return nil, err
		}
		sia.EmojiLexicon = emojiLexicon
	}

	return sia, nil
}

// TokenValence is the final valence of one token.
type TokenValence struct {
	Token   string  `json:"token" yaml:"token"`
	Valence float64 `json:"valence" yaml:"valence"`
}

// Return the sentiment strength of the input text.
// Compound is in [-1, 1]; Pos, Neu and Neg are proportions summing to 1.
func (sia *SentimentIntensityAnalyzer) PolarityScores(text string) Scores {
	parsed, sentiments := sia.sentiments(text)
	return scoreValence(sentiments, parsed.PunctuationAmplifier)
}

// Breakdown returns the valence each token contributes after all rules,
// including the contrastive "but" rescaling.
func (sia *SentimentIntensityAnalyzer) Breakdown(text string) []TokenValence {
	parsed, sentiments := sia.sentiments(text)

	breakdown := make([]TokenValence, len(sentiments))
	for i, s := range sentiments {
		breakdown[i] = TokenValence{Token: parsed.Tokens[i].Text, Valence: s}
	}
	return breakdown
}

func (sia *SentimentIntensityAnalyzer) sentiments(text string) (*ParsedText, []float64) {
	text = TranslateEmoji(text, sia.EmojiLexicon)
	parsed := NewParsedText(text)

	sentiments := make([]float64, 0, len(parsed.Tokens))
	for i := range parsed.Tokens {
		// check for vader_lexicon words that may be used as modifiers or negations
		if isModifier(parsed.Tokens, i) {
			sentiments = append(sentiments, 0)
			continue
		}
		sentiments = append(sentiments, sia.sentimentValence(parsed, i))
	}

	butCheck(parsed.Tokens, sentiments)

	if sia.logger != nil {
		for i, s := range sentiments {
			sia.logger.Debug("token valence", "index", i, "token", parsed.Tokens[i].Text, "valence", s)
		}
	}

	return parsed, sentiments
}

func isModifier(tokens []Token, i int) bool {
	if _, ok := BoosterMap[tokens[i].Key]; ok {
		return true
	}
	return i < len(tokens)-1 && tokens[i].Key == "kind" && tokens[i+1].Key == "of"
}

func (sia *SentimentIntensityAnalyzer) sentimentValence(parsed *ParsedText, i int) float64 {
	token := parsed.Tokens[i]

	//get the sentiment valence
	valence, ok := sia.Lexicon[token.Key]
	if !ok {
		return 0
	}

	//check if sentiment laden word is in ALL CAPS (while others aren't)
	if token.IsAllCaps() && parsed.HasMixedCaps {
		if valence > 0 {
			valence += C_INCR
		} else if valence < 0 {
			valence -= C_INCR
		}
	}

	// walk back over the three preceding tokens; lexicon words are not
	// modifiers and are skipped
	for d := 1; d <= 3 && i >= d; d++ {
		prev := parsed.Tokens[i-d]
		if sia.Lexicon.has(prev.Key) {
			continue
		}

		s := scalarIncDec(prev, valence, parsed.HasMixedCaps)
		valence += s * distanceDamping[d]
		valence = negationCheck(valence, parsed.Tokens, d, i)
		if d == 3 {
			valence = specialIdiomsCheck(valence, parsed.Tokens, i)
		}
	}

	return sia.leastCheck(valence, parsed.Tokens, i)
}

//check for negations in the token d places before i
func negationCheck(valence float64, tokens []Token, d int, i int) float64 {
	switch d {
	case 1:
		if isNegated(tokens[i-1].Key) {
			return valence * N_SCALAR
		}
	case 2:
		two, one := tokens[i-2].Key, tokens[i-1].Key
		if two == "never" && (one == "so" || one == "this") {
			return valence * NeverIncr
		} else if two == "without" && one == "doubt" {
			return valence
		} else if isNegated(two) {
			return valence * N_SCALAR
		}
	case 3:
		three, two, one := tokens[i-3].Key, tokens[i-2].Key, tokens[i-1].Key
		intensifier := func(k Key) bool { return k == "so" || k == "this" }
		// the pattern may start anywhere in the window
		if (three == "never" && (intensifier(two) || intensifier(one))) || (two == "never" && intensifier(one)) {
			return valence * NeverIncr
		} else if (three == "without" && (two == "doubt" || one == "doubt")) || (two == "without" && one == "doubt") {
			return valence
		} else if isNegated(three) {
			return valence * N_SCALAR
		}
	}

	return valence
}

// override with a special case idiom found around i, then add multi-word
// boosters such as "kind of" in the three tokens before i
func specialIdiomsCheck(valence float64, tokens []Token, i int) float64 {
	end := i + 3
	if end > len(tokens) {
		end = len(tokens)
	}

	window := joinKeys(tokens[i-3 : end])
	for _, idiom := range SpecialCaseIdioms {
		if containsPhrase(window, idiom.Phrase) {
			valence = idiom.Valence
			break
		}
	}

	before := joinKeys(tokens[i-3 : i])
	for _, phrase := range multiWordBoosters {
		if containsPhrase(before, phrase) {
			valence += BoosterMap[phrase]
		}
	}

	return valence
}

// check for negation case using "least"; "at least" and "very least" are
// comparatives and leave the valence alone
func (sia *SentimentIntensityAnalyzer) leastCheck(valence float64, tokens []Token, i int) float64 {
	if i == 0 || tokens[i-1].Key != "least" || sia.Lexicon.has(tokens[i-1].Key) {
		return valence
	}

	if i > 1 {
		if before := tokens[i-2].Key; before == "at" || before == "very" {
			return valence
		}
	}

	return valence * N_SCALAR
}

// check for modification in sentiment due to contrastive conjunction 'but';
// only the first one counts
func butCheck(tokens []Token, sentiments []float64) {
	for k, t := range tokens {
		if t.Key != "but" {
			continue
		}
		for si := range sentiments {
			if si < k {
				sentiments[si] *= ButBefore
			} else if si > k {
				sentiments[si] *= ButAfter
			}
		}
		return
	}
}
