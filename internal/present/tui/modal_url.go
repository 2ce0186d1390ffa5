package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// urlModal is a foreground modal prompting for a URL to fetch.
type urlModal struct {
	input  textinput.Model
	width  int
	height int
	box    lipgloss.Style
}

func newURLModal(initial string, termW, termH int) *urlModal {
	m := &urlModal{}
	ti := textinput.New()
	ti.Prompt = "url: "
	ti.Placeholder = "https://example.com"
	ti.SetValue(initial)
	ti.Focus()
	m.input = ti
	m.resizeForTerm(termW, termH)
	return m
}

func (m *urlModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := int(float64(termW) * 0.6)
	if w < 40 {
		w = max(36, termW-2)
	}
	if w > 90 {
		w = 90
	}
	m.width, m.height = w, 5
	m.box = lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63"))
	m.input.Width = max(12, w-6-lipgloss.Width(m.input.Prompt))
}

func (m *urlModal) value() string { return strings.TrimSpace(m.input.Value()) }

func (m *urlModal) update(msg tea.Msg) (*urlModal, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resizeForTerm(ws.Width, ws.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *urlModal) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Open URL")
	help := lipgloss.NewStyle().Faint(true).Render("enter=fetch • esc=cancel")
	body := strings.Join([]string{header, "", m.input.View(), "", help}, "\n")
	return m.box.Render(body)
}
