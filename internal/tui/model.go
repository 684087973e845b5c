// Package tui is the terminal front end of the game.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/kamsam/internal/core"
	"github.com/agenthands/kamsam/internal/core/model"
)

const (
	ContinueLabel = "ดำเนินการต่อ"
	NewGameLabel  = "เริ่มเกมส์ใหม่"
)

// DialogText is the question shown when a duplicate is detected.
func DialogText(d model.Duplicate) string {
	positions := make([]string, len(d.Positions))
	for i, p := range d.Positions {
		positions[i] = strconv.Itoa(p)
	}
	return fmt.Sprintf("คำ \"%s\" ถูกป้อนแล้วในตำแหน่ง: %s. คุณต้องการจะเริ่มเกมส์ใหม่หรือดำเนินการต่อ?",
		d.Word, strings.Join(positions, ", "))
}

// Model drives a core.Game from keyboard input.
type Model struct {
	game   *core.Game
	input  textinput.Model
	styles Styles
	width  int
	err    error
}

func New(game *core.Game) Model {
	ti := textinput.New()
	ti.Placeholder = "พิมพ์คำแล้วกด Enter..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	return Model{
		game:   game,
		input:  ti,
		styles: DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.game.State() == model.StatePendingResolution {
			return m.updateDialog(msg)
		}
		switch msg.String() {
		case "tab":
			m.err = m.game.SetPolicy(togglePolicy(m.game.Policy()))
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.game.State() == model.StateIdle {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c", "esc":
		m.err = m.game.ResolveByRemoving()
		m.input.Focus()
	case "n", "enter":
		_, m.err = m.game.ResolveByClosing()
		m.input.Focus()
	}
	return m, nil
}

func (m *Model) submit() {
	word := m.input.Value()
	if strings.TrimSpace(word) == "" {
		return
	}
	if _, m.err = m.game.Submit(word); m.err != nil {
		return
	}
	m.input.Reset()
	if m.game.State() == model.StatePendingResolution {
		m.input.Blur()
	}
}

func togglePolicy(p model.Policy) model.Policy {
	if p == model.PolicyExact {
		return model.PolicyPartial
	}
	return model.PolicyExact
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("คำซ้ำ"))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("policy: %s (tab)", m.game.Policy())))
	b.WriteString("\n\n")

	b.WriteString(m.renderRound())
	b.WriteString("\n\n")

	if d, ok := m.game.Pending(); ok {
		dialog := DialogText(d) + "\n\n" +
			m.styles.Muted.Render(fmt.Sprintf("[c] %s   [n] %s", ContinueLabel, NewGameLabel))
		b.WriteString(m.styles.Dialog.Width(m.dialogWidth()).Render(dialog))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if h := m.renderHistory(); h != "" {
		b.WriteString(m.styles.Section.Render("History"))
		b.WriteString("\n")
		b.WriteString(h)
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("ctrl+c: quit"))
	return b.String()
}

func (m Model) renderRound() string {
	round := m.game.Round()
	if len(round) == 0 {
		return m.styles.Muted.Render("(empty round)")
	}
	labels := make([]string, len(round))
	for i, e := range round {
		labels[i] = m.styles.Word(e.Text, e.Color)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// renderHistory lists closed rounds newest first, numbered so the oldest is 1.
func (m Model) renderHistory() string {
	records := m.game.History()
	if len(records) == 0 {
		return ""
	}
	rows := make([]string, len(records))
	for i, rec := range records {
		labels := make([]string, 0, len(rec.Entries)+1)
		labels = append(labels, m.styles.Muted.Render(fmt.Sprintf("%2d. ", len(records)-i)))
		for _, e := range rec.Entries {
			labels = append(labels, m.styles.Recorded(e.Text, e.Color, e.Highlighted))
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	}
	return strings.Join(rows, "\n")
}

func (m Model) dialogWidth() int {
	if m.width > 4 && m.width < 64 {
		return m.width - 4
	}
	return 60
}
