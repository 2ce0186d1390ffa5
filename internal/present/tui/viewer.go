package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmj8843/mdrowser/internal/fetch"
	"github.com/kmj8843/mdrowser/internal/history"
	"github.com/kmj8843/mdrowser/internal/urlx"
	"github.com/kmj8843/mdrowser/pkg/api"
)

// Options configures the interactive viewer.
type Options struct {
	Runner       *fetch.Runner
	RunnerErr    error // configuration error; fetching stays disabled while set
	History      history.Store
	HistoryLimit int
	Style        string
	Wrap         int
	InitialURL   string
}

// Run opens the viewer and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newModel(ctx, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("240"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type model struct {
	ctx  context.Context
	opts Options

	// The viewport is the one reusable viewer surface: it is created once
	// and its content replaced on every fetch.
	viewport viewport.Model
	surfaces int
	ready    bool

	spin     spinner.Model
	fetching bool

	page       api.Page
	rendered   string // glamour output, "" when rendering failed
	sourceView bool   // raw markdown with a line cursor instead of glamour

	cursorLine int
	cursorCol  int

	status  string
	lastDur time.Duration
	width   int
	height  int

	urlModal  *urlModal
	histModal *historyModal
}

func newModel(ctx context.Context, opts Options) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m := model{ctx: ctx, opts: opts, spin: sp}
	if opts.RunnerErr != nil {
		m.status = opts.RunnerErr.Error()
	} else if strings.TrimSpace(opts.InitialURL) != "" {
		m.fetching = true
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.fetching {
		return tea.Batch(
			m.spin.Tick,
			fetchCmd(m.ctx, m.opts.Runner, m.opts.History, m.opts.InitialURL, m.opts.Style, m.opts.Wrap),
		)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-2))
			m.ready = true
			m.surfaces++
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-2)
		}
		m.refreshContent()
		if m.urlModal != nil {
			m.urlModal, _ = m.urlModal.update(msg)
		}
		if m.histModal != nil {
			m.histModal, _ = m.histModal.update(msg)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case fetchResultMsg:
		m.fetching = false
		m.lastDur = msg.dur
		if msg.err != nil {
			// Prior content stays untouched; the failure only shows in status.
			if errors.Is(msg.err, fetch.ErrEmptyURL) {
				return m, nil
			}
			m.status = msg.err.Error()
			return m, nil
		}
		m.page = msg.page
		m.rendered = msg.rendered
		m.cursorLine, m.cursorCol = 0, 0
		m.status = fmt.Sprintf("%s (%d lines)", msg.page.URL, len(msg.page.Lines))
		m.refreshContent()
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.histModal = newHistoryModal(msg.visits, m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.urlModal != nil {
		switch msg.String() {
		case "esc", "ctrl+c":
			m.urlModal = nil
			return m, nil
		case "enter":
			url := m.urlModal.value()
			m.urlModal = nil
			if url == "" {
				return m, nil
			}
			return m.startFetch(url)
		}
		var cmd tea.Cmd
		m.urlModal, cmd = m.urlModal.update(msg)
		return m, cmd
	}

	if m.histModal != nil {
		switch msg.String() {
		case "esc", "ctrl+c":
			m.histModal = nil
			return m, nil
		case "enter":
			v, ok := m.histModal.selected()
			m.histModal = nil
			if !ok {
				return m, nil
			}
			return m.startFetch(v.URL)
		}
		var cmd tea.Cmd
		m.histModal, cmd = m.histModal.update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c", "ctrl+q":
		return m, tea.Quit
	case "o":
		m.urlModal = newURLModal("", m.width, m.height)
		return m, nil
	case "h":
		if m.opts.History == nil {
			m.status = "history disabled"
			return m, nil
		}
		return m, loadHistoryCmd(m.ctx, m.opts.History, m.opts.HistoryLimit)
	case "v":
		m.sourceView = !m.sourceView
		m.refreshContent()
		return m, nil
	case "r":
		if m.page.URL == "" {
			return m, nil
		}
		return m.startFetch(m.page.URL)
	case "j", "down":
		if m.cursorLine < len(m.page.Lines)-1 {
			m.cursorLine++
			m.cursorCol = 0
			m.refreshContent()
		}
		return m, nil
	case "k", "up":
		if m.cursorLine > 0 {
			m.cursorLine--
			m.cursorCol = 0
			m.refreshContent()
		}
		return m, nil
	case "g", "home":
		m.cursorLine, m.cursorCol = 0, 0
		m.refreshContent()
		return m, nil
	case "G", "end":
		if n := len(m.page.Lines); n > 0 {
			m.cursorLine = n - 1
		}
		m.cursorCol = 0
		m.refreshContent()
		return m, nil
	case "left":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
		return m, nil
	case "right":
		if m.cursorLine < len(m.page.Lines) && m.cursorCol < len(m.currentLine()) {
			m.cursorCol++
		}
		return m, nil
	case "tab":
		m.jumpLink(1)
		m.refreshContent()
		return m, nil
	case "shift+tab":
		m.jumpLink(-1)
		m.refreshContent()
		return m, nil
	case "enter":
		return m.followLink()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// startFetch launches a pipeline for url. A fetch already in flight is not
// cancelled; whichever completes last wins the surface.
func (m model) startFetch(url string) (tea.Model, tea.Cmd) {
	if m.opts.Runner == nil {
		if m.opts.RunnerErr != nil {
			m.status = m.opts.RunnerErr.Error()
		}
		return m, nil
	}
	m.fetching = true
	m.status = "fetching " + url + "…"
	return m, tea.Batch(
		m.spin.Tick,
		fetchCmd(m.ctx, m.opts.Runner, m.opts.History, url, m.opts.Style, m.opts.Wrap),
	)
}

func (m model) currentLine() string {
	if m.cursorLine < 0 || m.cursorLine >= len(m.page.Lines) {
		return ""
	}
	return m.page.Lines[m.cursorLine]
}

// followLink fetches the markdown link under the cursor, resolving
// domain-relative targets against the page's domain.
func (m model) followLink() (tea.Model, tea.Cmd) {
	url, ok := urlx.LinkAt(m.currentLine(), m.cursorCol)
	if !ok {
		m.status = "no link under cursor"
		return m, nil
	}
	return m.startFetch(resolveURL(m.page, url))
}

func resolveURL(p api.Page, link string) string {
	if strings.Contains(link, "://") || p.Domain == "" {
		return link
	}
	if strings.HasPrefix(link, "/") {
		return p.Domain + link
	}
	return p.Domain + "/" + link
}

// jumpLink moves the cursor onto the next (dir>0) or previous (dir<0)
// markdown link, wrapping around the page.
func (m *model) jumpLink(dir int) {
	type pos struct{ line, col int }
	var all []pos
	for i, ln := range m.page.Lines {
		for _, l := range urlx.Links(ln) {
			all = append(all, pos{line: i, col: l.Start})
		}
	}
	if len(all) == 0 {
		m.status = "no links on page"
		return
	}
	cur := pos{line: m.cursorLine, col: m.cursorCol}
	if dir > 0 {
		for _, p := range all {
			if p.line > cur.line || (p.line == cur.line && p.col > cur.col) {
				m.cursorLine, m.cursorCol = p.line, p.col
				return
			}
		}
		m.cursorLine, m.cursorCol = all[0].line, all[0].col
		return
	}
	for i := len(all) - 1; i >= 0; i-- {
		p := all[i]
		if p.line < cur.line || (p.line == cur.line && p.col < cur.col) {
			m.cursorLine, m.cursorCol = p.line, p.col
			return
		}
	}
	last := all[len(all)-1]
	m.cursorLine, m.cursorCol = last.line, last.col
}

// refreshContent replaces the surface content in place. Rendered view shows
// glamour output; source view shows raw markdown with the cursor line
// highlighted.
func (m *model) refreshContent() {
	if !m.ready {
		return
	}
	if !m.sourceView && m.rendered != "" {
		m.viewport.SetContent(m.rendered)
		return
	}
	lines := make([]string, len(m.page.Lines))
	for i, ln := range m.page.Lines {
		if i == m.cursorLine {
			lines[i] = cursorStyle.Render(ln)
		} else {
			lines[i] = ln
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.scrollCursorIntoView()
}

func (m *model) scrollCursorIntoView() {
	top := m.viewport.YOffset
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	if m.cursorLine < top {
		m.viewport.SetYOffset(m.cursorLine)
	} else if m.cursorLine >= top+h {
		m.viewport.SetYOffset(m.cursorLine - h + 1)
	}
}

func (m model) View() string {
	if !m.ready {
		return "initializing…"
	}
	if m.urlModal != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.urlModal.View())
	}
	if m.histModal != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.histModal.View())
	}
	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}

func (m model) renderHeader() string {
	title := " mdrowser "
	if m.page.URL != "" {
		title += "• " + m.page.URL + " "
	}
	if m.fetching {
		title += m.spin.View()
	}
	if w := m.width - lipgloss.Width(title); w > 0 {
		title += strings.Repeat(" ", w)
	}
	return headerStyle.Render(title)
}

func (m model) renderFooter() string {
	left := "o=open • enter=follow • tab=links • v=view • h=history • r=reload • q=quit"

	var right string
	if m.status != "" {
		if m.lastDur > 0 {
			right = fmt.Sprintf("%s (%s) • ", m.status, m.lastDur.Round(time.Millisecond))
		} else {
			right = m.status + " • "
		}
	}
	if n := len(m.page.Lines); n > 0 {
		right += fmt.Sprintf("%d:%d/%d ", m.cursorLine+1, m.cursorCol, n)
	}

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return faintStyle.Render(left) + strings.Repeat(" ", space) + right
}
