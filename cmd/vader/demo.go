package main

import (
	"context"
	"fmt"
	"io"

	"github.com/drankou/vader-sentiment/internal/batch"
	"github.com/drankou/vader-sentiment/internal/report"
	"github.com/drankou/vader-sentiment/vader"
	"github.com/spf13/cobra"
)

var exampleSentences = []string{
	"VADER is smart, handsome, and funny.",                       // positive sentence example
	"VADER is smart, handsome, and funny!",                       // punctuation emphasis handled correctly (sentiment intensity adjusted)
	"VADER is very smart, handsome, and funny.",                  // booster words handled correctly (sentiment intensity adjusted)
	"VADER is VERY SMART, handsome, and FUNNY.",                  // emphasis for ALLCAPS handled
	"VADER is VERY SMART, handsome, and FUNNY!!!",                // combination of signals
	"VADER is VERY SMART, uber handsome, and FRIGGIN FUNNY!!!",   // booster words & punctuation make this close to ceiling for score
	"VADER is not smart, handsome, nor funny.",                   // negation sentence example
	"The book was good.",                                         // positive sentence
	"At least it isn't a horrible book.",                         // negated negative sentence with contraction
	"The book was only kind of good.",                            // qualified positive sentence is handled correctly (intensity adjusted)
	"The plot was good, but the characters are uncompelling and the dialog is not great.", // mixed negation sentence
	"Today SUX!",                                   // negative slang with capitalization emphasis
	"Today only kinda sux! But I'll get by, lol",   // mixed sentiment example with slang and contrastive conjunction "but"
	"Make sure you :) or :D today!",                // emoticons handled
	"Catch utf-8 emoji such as 💘 and 💋 and 😁", // emojis handled
	"Not bad at all",                               // Capitalized negation
}

var trickySentences = []string{
	"Sentiment analysis has never been good.",
	"Sentiment analysis has never been this good!",
	"Most automated sentiment analysis tools are shit.",
	"With VADER, sentiment analysis is the shit!",
	"Other sentiment analysis tools can be quite bad.",
	"On the other hand, VADER is quite bad ass",
	"VADER is such a badass!", // slang with punctuation emphasis
	"Without a doubt, excellent idea.",
	"Roger Dodger is one of the most compelling variations on this theme.",
	"Roger Dodger is at least compelling as a variation on the theme.",
	"Roger Dodger is one of the least compelling variations on this theme.",
	"Not such a badass after all.",        // Capitalized negation with slang
	"Without a doubt, an excellent idea.", // "without {any} doubt" as negation
}

const demoIntro = ` - Analyze typical example cases, including handling of:
  -- negations
  -- punctuation emphasis & punctuation flooding
  -- word-shape as emphasis (capitalization difference)
  -- degree modifiers (intensifiers such as 'very' and dampeners such as 'kind of')
  -- slang words as modifiers such as 'uber' or 'friggin' or 'kinda'
  -- contrastive conjunction 'but' indicating a shift in sentiment; sentiment of later text is dominant
  -- use of contractions as negations
  -- sentiment laden emoticons such as :) and :D
  -- utf-8 encoded emojis such as 💘 and 💋 and 😁
  -- sentiment laden slang words (e.g., 'sux')
  -- sentiment laden initialisms and acronyms (for example: 'lol')
`

const demoAbout = ` - About the scoring:
  -- The 'compound' score sums the valence of each lexicon word, adjusted by the
     rules, normalized to between -1 (most extreme negative) and +1 (most extreme
     positive). Use it for a single unidimensional measure of sentiment.
  -- The 'pos', 'neu', and 'neg' scores are the proportions of text that fall in
     each category and add up to 1. Use them for multidimensional measures.
`

const demoTricky = ` - Analyze examples of tricky sentences that cause trouble to other sentiment analysis tools.
  -- special case idioms - e.g., 'never good' vs 'never this good', or 'bad' vs 'bad ass'.
  -- special uses of 'least' as negation versus comparison
`

const rule = "----------------------------------------------------"

// demoParams holds the inputs for the demo command.
type demoParams struct {
	format   string
	workers  int
	analyzer *vader.SentimentIntensityAnalyzer
	stdout   io.Writer
}

// runDemo scores the classic example sentences. Text output interleaves
// the explanatory notes; structured formats emit one report of both sets.
func runDemo(ctx context.Context, p demoParams) error {
	examples, err := scoreAll(ctx, p, exampleSentences)
	if err != nil {
		return err
	}
	tricky, err := scoreAll(ctx, p, trickySentences)
	if err != nil {
		return err
	}

	if p.format != "text" {
		return report.Write(p.stdout, p.format, append(examples, tricky...))
	}

	fmt.Fprintln(p.stdout, rule)
	fmt.Fprint(p.stdout, demoIntro+"\n")
	if err := report.WriteText(p.stdout, examples); err != nil {
		return err
	}
	fmt.Fprintln(p.stdout, rule)
	fmt.Fprint(p.stdout, demoAbout)
	fmt.Fprintln(p.stdout, rule)
	fmt.Fprint(p.stdout, demoTricky+"\n")
	return report.WriteText(p.stdout, tricky)
}

func scoreAll(ctx context.Context, p demoParams, texts []string) ([]report.Result, error) {
	scores, err := batch.Score(ctx, p.analyzer, texts, p.workers)
	if err != nil {
		return nil, err
	}
	results := make([]report.Result, len(texts))
	for i, text := range texts {
		results[i] = report.NewResult(text, scores[i])
	}
	return results, nil
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Score the classic example sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sia, err := newAnalyzer(a.cfg)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), demoParams{
				format:   a.cfg.Format,
				workers:  a.cfg.Workers,
				analyzer: sia,
				stdout:   cmd.OutOrStdout(),
			})
		},
	}
}
