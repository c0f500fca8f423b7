package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/drankou/vader-sentiment/internal/report"
	"github.com/drankou/vader-sentiment/vader"
	"github.com/spf13/cobra"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Explain key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Explain, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Explain, k.Clear, k.Quit}}
}

var defaultKeyMap = keyMap{
	Explain: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle breakdown")),
	Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))
)

// scoreModel rescores the input line on every keystroke.
type scoreModel struct {
	analyzer *vader.SentimentIntensityAnalyzer
	input    textinput.Model
	help     help.Model
	keys     keyMap
	explain  bool
}

func newScoreModel(sia *vader.SentimentIntensityAnalyzer) scoreModel {
	ti := textinput.New()
	ti.Placeholder = "Type a sentence..."
	ti.Prompt = "> "
	ti.CharLimit = 1000
	ti.Focus()

	return scoreModel{
		analyzer: sia,
		input:    ti,
		help:     help.New(),
		keys:     defaultKeyMap,
	}
}

func (m scoreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m scoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 4
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Explain):
			m.explain = !m.explain
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m scoreModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("VADER sentiment"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(renderScoreContent(m.analyzer, m.input.Value(), m.explain))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// renderScoreContent renders the scores of text, and with explain the
// per-token valences.
func renderScoreContent(sia *vader.SentimentIntensityAnalyzer, text string, explain bool) string {
	if strings.TrimSpace(text) == "" {
		return statusStyle.Render("Nothing to score yet.") + "\n"
	}

	r := report.NewResult(text, sia.PolarityScores(text))
	s := report.DefaultStyles()

	var sb strings.Builder
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuiBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuiHeaderStyle
			}
			if col >= 3 {
				return s.LabelStyle(r.Label)
			}
			return lipgloss.NewStyle()
		}).
		Headers("NEG", "NEU", "POS", "COMPOUND", "LABEL").
		Row(
			fmt.Sprintf("%.3f", r.Scores.Neg),
			fmt.Sprintf("%.3f", r.Scores.Neu),
			fmt.Sprintf("%.3f", r.Scores.Pos),
			fmt.Sprintf("%.4f", r.Scores.Compound),
			r.Label,
		)
	sb.WriteString(t.String())
	sb.WriteString("\n")

	if explain {
		for _, tv := range sia.Breakdown(text) {
			line := fmt.Sprintf("  %-20s %+.4f", tv.Token, tv.Valence)
			if tv.Valence == 0 {
				line = statusStyle.Render(line)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// runInteractive launches the Bubble Tea TUI for live scoring.
func runInteractive(sia *vader.SentimentIntensityAnalyzer) error {
	p := tea.NewProgram(newScoreModel(sia), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Score text live as you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sia, err := newAnalyzer(a.cfg)
			if err != nil {
				return err
			}
			return runInteractive(sia)
		},
	}
}
