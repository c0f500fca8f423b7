package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/drankou/vader-sentiment/vader"
)

// lengthScorer reports the text length as the compound score.
type lengthScorer struct {
	calls atomic.Int64
}

func (s *lengthScorer) PolarityScores(text string) vader.Scores {
	s.calls.Add(1)
	return vader.Scores{Compound: float64(len(text))}
}

func TestScore_PreservesOrder(t *testing.T) {
	texts := make([]string, 100)
	for i := range texts {
		texts[i] = fmt.Sprintf("%0*d", i+1, 0)
	}

	for _, workers := range []int{0, 1, 4, 32} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			scores, err := Score(context.Background(), &lengthScorer{}, texts, workers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(scores) != len(texts) {
				t.Fatalf("got %d scores, want %d", len(scores), len(texts))
			}
			for i, s := range scores {
				if s.Compound != float64(i+1) {
					t.Fatalf("scores[%d].Compound = %v, want %d", i, s.Compound, i+1)
				}
			}
		})
	}
}

func TestScore_Empty(t *testing.T) {
	scores, err := Score(context.Background(), &lengthScorer{}, nil, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no scores, got %d", len(scores))
	}
}

func TestScore_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scorer := &lengthScorer{}
	_, err := Score(ctx, scorer, []string{"a", "b", "c"}, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if n := scorer.calls.Load(); n != 0 {
		t.Errorf("scorer called %d times after cancellation", n)
	}
}

func TestScore_MatchesAnalyzer(t *testing.T) {
	sia, err := vader.New()
	if err != nil {
		t.Fatal(err)
	}

	texts := []string{
		"VADER is smart, handsome, and funny.",
		"The book was good.",
		"Today SUX!",
		"",
	}
	scores, err := Score(context.Background(), sia, texts, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, text := range texts {
		if want := sia.PolarityScores(text); scores[i] != want {
			t.Errorf("Score(%q) = %+v, want %+v", text, scores[i], want)
		}
	}
}
