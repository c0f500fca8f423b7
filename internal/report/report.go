// Package report formats sentiment scores as styled text, JSON or YAML.
package report

import (
	"fmt"
	"io"

	"github.com/drankou/vader-sentiment/vader"
)

// Version is stamped into structured reports.
const Version = "0.1.0"

// Conventional compound thresholds for labelling a text.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Label classifies a compound score as positive, neutral or negative.
func Label(compound float64) string {
	switch {
	case compound >= PositiveThreshold:
		return "positive"
	case compound <= NegativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Result is one scored text.
type Result struct {
	Text      string               `json:"text" yaml:"text"`
	Scores    vader.Scores         `json:"scores" yaml:"scores"`
	Label     string               `json:"label" yaml:"label"`
	Breakdown []vader.TokenValence `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
}

// NewResult rounds scores for display and attaches the label.
func NewResult(text string, scores vader.Scores) Result {
	rounded := scores.Rounded()
	return Result{
		Text:   text,
		Scores: rounded,
		Label:  Label(rounded.Compound),
	}
}

// Write renders results in the named format: "text", "json" or "yaml".
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case "text":
		return WriteText(w, results)
	case "json":
		return WriteJSON(w, results)
	case "yaml":
		return WriteYAML(w, results)
	default:
		return fmt.Errorf("invalid format %q: must be 'text', 'json', or 'yaml'", format)
	}
}
