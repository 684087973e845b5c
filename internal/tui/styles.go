package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/kamsam/internal/core/palette"
)

var (
	Foreground  = lipgloss.Color("#101F38")
	Muted       = lipgloss.Color("#6b7280")
	Accent      = lipgloss.Color("#8BC34A")
	Destructive = lipgloss.Color("#e53935")
	Border      = lipgloss.Color("#dce0e5")
)

// Styles groups the lipgloss styles used by the game screen.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Dialog  lipgloss.Style
	Section lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Label:   lipgloss.NewStyle().Foreground(Foreground).Padding(0, 1).MarginRight(1),
		Muted:   lipgloss.NewStyle().Foreground(Muted),
		Error:   lipgloss.NewStyle().Foreground(Destructive),
		Dialog:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(0, 1),
		Section: lipgloss.NewStyle().Bold(true).Foreground(Muted).MarginTop(1),
	}
}

// Word renders a single entry as a colored label.
func (s Styles) Word(text, color string) string {
	return s.Label.Background(lipgloss.Color(color)).Render(text)
}

// Recorded renders an entry of a closed round; only highlighted entries keep their color.
func (s Styles) Recorded(text, color string, highlighted bool) string {
	if !highlighted {
		color = palette.Neutral
	}
	return s.Word(text, color)
}
