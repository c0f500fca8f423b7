// Package batch scores many texts concurrently with a bounded worker pool.
package batch

import (
	"context"

	"github.com/drankou/vader-sentiment/vader"
	"golang.org/x/sync/errgroup"
)

// Scorer is satisfied by *vader.SentimentIntensityAnalyzer.
type Scorer interface {
	PolarityScores(text string) vader.Scores
}

// Score returns the scores of texts in input order, running at most
// workers scorers at a time. It stops early when ctx is cancelled.
func Score(ctx context.Context, scorer Scorer, texts []string, workers int) ([]vader.Scores, error) {
	if workers < 1 {
		workers = 1
	}

	scores := make([]vader.Scores, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, text := range texts {
		i, text := i, text
		if err := ctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = scorer.PolarityScores(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// cancelled before any goroutine could report it
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}
