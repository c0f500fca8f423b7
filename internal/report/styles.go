package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal output.
// Lipgloss degrades to no-color when output is not a TTY.
type Styles struct {
	Header      lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	Border      lipgloss.Style
	Muted       lipgloss.Style

	Positive lipgloss.Style
	Neutral  lipgloss.Style
	Negative lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).PaddingRight(1),
		Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingRight(1),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingRight(1),
	}
}

// LabelStyle picks the style for a sentiment label.
func (s Styles) LabelStyle(label string) lipgloss.Style {
	switch label {
	case "positive":
		return s.Positive
	case "negative":
		return s.Negative
	default:
		return s.Neutral
	}
}
