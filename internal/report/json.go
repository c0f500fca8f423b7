package report

import (
	"encoding/json"
	"io"
)

// JSONReport is the top-level structured output.
type JSONReport struct {
	Version string   `json:"version" yaml:"version"`
	Results []Result `json:"results" yaml:"results"`
}

func newReport(results []Result) JSONReport {
	if results == nil {
		results = []Result{}
	}
	return JSONReport{Version: Version, Results: results}
}

// WriteJSON writes results as indented JSON.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newReport(results))
}
