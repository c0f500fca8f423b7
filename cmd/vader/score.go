package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/drankou/vader-sentiment/internal/batch"
	"github.com/drankou/vader-sentiment/internal/report"
	"github.com/drankou/vader-sentiment/vader"
	"github.com/spf13/cobra"
)

// scoreParams holds the parsed inputs for the score command.
type scoreParams struct {
	texts    []string
	format   string
	explain  bool
	workers  int
	analyzer *vader.SentimentIntensityAnalyzer
	stdin    io.Reader
	stdout   io.Writer
}

// runScore is the extracted, testable body of the score command.
func runScore(ctx context.Context, p scoreParams) error {
	if p.format != "text" && p.format != "json" && p.format != "yaml" {
		return fmt.Errorf("invalid format %q: must be 'text', 'json', or 'yaml'", p.format)
	}

	texts := p.texts
	if len(texts) == 0 {
		var err error
		if texts, err = readLines(p.stdin); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(texts) == 0 {
		logger.Warn("no text to score")
	}

	scores, err := batch.Score(ctx, p.analyzer, texts, p.workers)
	if err != nil {
		return err
	}
	logger.Debug("scoring complete", "texts", len(texts))

	results := make([]report.Result, len(texts))
	for i, text := range texts {
		results[i] = report.NewResult(text, scores[i])
		if p.explain {
			results[i].Breakdown = p.analyzer.Breakdown(text)
		}
	}

	return report.Write(p.stdout, p.format, results)
}

// readLines returns the non-blank lines of r, one text per line.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func newScoreCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "score [text...]",
		Short: "Score the sentiment of texts",
		Long: `Score each argument as one text. With no arguments, every non-blank
line of standard input is scored as a separate text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sia, err := newAnalyzer(a.cfg)
			if err != nil {
				return err
			}
			return runScore(cmd.Context(), scoreParams{
				texts:    args,
				format:   a.cfg.Format,
				explain:  explain,
				workers:  a.cfg.Workers,
				analyzer: sia,
				stdin:    cmd.InOrStdin(),
				stdout:   cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false,
		"include the per-token valence breakdown")

	return cmd
}
