package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rivo/uniseg"
)

const maxText = 40

// WriteText writes results as a styled table followed by a label summary.
// Token breakdowns, when present, are listed under the table.
func WriteText(w io.Writer, results []Result) error {
	s := DefaultStyles()

	if len(results) == 0 {
		fmt.Fprintln(w, s.Muted.Render("No text scored."))
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			truncate(r.Text, maxText),
			fmt.Sprintf("%.3f", r.Scores.Neg),
			fmt.Sprintf("%.3f", r.Scores.Neu),
			fmt.Sprintf("%.3f", r.Scores.Pos),
			fmt.Sprintf("%.4f", r.Scores.Compound),
			r.Label,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if (col == 4 || col == 5) && row >= 0 && row < len(rows) {
				return s.LabelStyle(rows[row][5])
			}
			return s.TableCell
		}).
		Headers("TEXT", "NEG", "NEU", "POS", "COMPOUND", "LABEL").
		Rows(rows...)

	fmt.Fprintln(w, t)

	for _, r := range results {
		if len(r.Breakdown) == 0 {
			continue
		}
		fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", truncate(r.Text, maxText))))
		for _, tv := range r.Breakdown {
			line := fmt.Sprintf("    %-20s %+.4f", tv.Token, tv.Valence)
			if tv.Valence == 0 {
				line = s.Muted.Render(line)
			}
			fmt.Fprintln(w, line)
		}
	}

	counts := make(map[string]int)
	for _, r := range results {
		counts[r.Label]++
	}
	fmt.Fprintf(w, "%s\n", s.Header.Render(fmt.Sprintf(
		"%d text(s) scored: %d positive, %d neutral, %d negative",
		len(results), counts["positive"], counts["neutral"], counts["negative"])))

	return nil
}

// truncate shortens s to at most n graphemes, marking the cut with "...".
func truncate(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}

	var out []byte
	g := uniseg.NewGraphemes(s)
	for count := 0; count < n-3 && g.Next(); count++ {
		out = append(out, g.Bytes()...)
	}
	return string(out) + "..."
}
