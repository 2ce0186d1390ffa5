package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/kmj8843/mdrowser/pkg/api"
)

// historyModal is a fuzzy-filtered picker over recorded visits.
type historyModal struct {
	input      textinput.Model
	visits     []api.Visit
	candidates []string
	filtered   []int
	sel        int
	width      int
	height     int
	box        lipgloss.Style
}

func newHistoryModal(visits []api.Visit, termW, termH int) *historyModal {
	m := &historyModal{visits: visits}
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "url or title"
	ti.Focus()
	m.input = ti
	m.candidates = make([]string, len(visits))
	for i, v := range visits {
		m.candidates[i] = v.URL + " " + v.Title
	}
	m.refilter()
	m.resizeForTerm(termW, termH)
	return m
}

func (m *historyModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := int(float64(termW) * 0.8)
	if w < 50 {
		w = max(44, termW-2)
	}
	if w > 110 {
		w = 110
	}
	h := int(float64(termH) * 0.6)
	if h < 10 {
		h = max(8, termH-2)
	}
	if h > 24 {
		h = 24
	}
	m.width, m.height = w, h
	m.box = lipgloss.NewStyle().
		Width(w).
		Height(h).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63"))
	m.input.Width = max(12, w-6-lipgloss.Width(m.input.Prompt))
}

// refilter recomputes the visible subset from the current query.
func (m *historyModal) refilter() {
	q := strings.TrimSpace(m.input.Value())
	if q == "" {
		m.filtered = make([]int, len(m.visits))
		for i := range m.visits {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(q, m.candidates)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.sel >= len(m.filtered) {
		m.sel = len(m.filtered) - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}

// selected returns the visit under the cursor, if any.
func (m *historyModal) selected() (api.Visit, bool) {
	if len(m.filtered) == 0 || m.sel < 0 || m.sel >= len(m.filtered) {
		return api.Visit{}, false
	}
	return m.visits[m.filtered[m.sel]], true
}

func (m *historyModal) update(msg tea.Msg) (*historyModal, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resizeForTerm(x.Width, x.Height)
		return m, nil
	case tea.KeyMsg:
		switch x.String() {
		case "down", "ctrl+n":
			if m.sel < len(m.filtered)-1 {
				m.sel++
			}
			return m, nil
		case "up", "ctrl+p":
			if m.sel > 0 {
				m.sel--
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *historyModal) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("History (%d)", len(m.visits)))
	help := lipgloss.NewStyle().Faint(true).Render("enter=open • esc=cancel • ↑/↓=select")
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	rows := m.height - 7
	if rows < 1 {
		rows = 1
	}
	start := 0
	if m.sel >= rows {
		start = m.sel - rows + 1
	}
	var items []string
	for i := start; i < len(m.filtered) && i < start+rows; i++ {
		v := m.visits[m.filtered[i]]
		label := v.URL
		if v.Title != "" {
			label += "  — " + v.Title
		}
		if lipgloss.Width(label) > m.width-6 {
			label = label[:m.width-7] + "…"
		}
		if i == m.sel {
			label = selStyle.Render(label)
		}
		items = append(items, label)
	}
	if len(items) == 0 {
		items = []string{lipgloss.NewStyle().Faint(true).Render("(no matches)")}
	}

	body := strings.Join(append([]string{header, "", m.input.View(), ""}, append(items, "", help)...), "\n")
	return m.box.Render(body)
}
