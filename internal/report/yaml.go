package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes results as a YAML document.
func WriteYAML(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newReport(results)); err != nil {
		return err
	}
	return enc.Close()
}
