package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmj8843/mdrowser/internal/fetch"
	"github.com/kmj8843/mdrowser/pkg/api"
)

func readyModel(t *testing.T, opts Options) model {
	t.Helper()
	m := newModel(context.Background(), opts)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return mm.(model)
}

func page(url string, lines ...string) api.Page {
	return api.Page{URL: url, Domain: "https://example.com", Lines: lines, FetchedAt: time.Now()}
}

func TestSurfaceReusedAcrossFetches(t *testing.T) {
	m := readyModel(t, Options{})

	mm, _ := m.Update(fetchResultMsg{page: page("https://example.com/a", "# A"), rendered: "A!"})
	m = mm.(model)
	if m.surfaces != 1 {
		t.Fatalf("expected 1 surface, got %d", m.surfaces)
	}
	if m.page.URL != "https://example.com/a" {
		t.Fatalf("first fetch not applied: %q", m.page.URL)
	}

	mm, _ = m.Update(fetchResultMsg{page: page("https://example.com/b", "# B"), rendered: "B!"})
	m = mm.(model)
	if m.surfaces != 1 {
		t.Fatalf("expected surface to be reused, got %d", m.surfaces)
	}
	if m.page.URL != "https://example.com/b" {
		t.Fatalf("second fetch did not replace content: %q", m.page.URL)
	}
	if m.rendered != "B!" {
		t.Fatalf("rendered content not replaced: %q", m.rendered)
	}
}

func TestFetchFailureKeepsPriorContent(t *testing.T) {
	m := readyModel(t, Options{})
	mm, _ := m.Update(fetchResultMsg{page: page("https://example.com/a", "# A", "body"), rendered: "A!"})
	m = mm.(model)

	mm, _ = m.Update(fetchResultMsg{err: errors.New("error: timeout")})
	m = mm.(model)
	if m.page.URL != "https://example.com/a" {
		t.Fatalf("failure replaced prior content: %q", m.page.URL)
	}
	if m.status != "error: timeout" {
		t.Fatalf("failure not surfaced in status: %q", m.status)
	}
}

func TestCursorAndLinkNavigation(t *testing.T) {
	m := readyModel(t, Options{})
	mm, _ := m.Update(fetchResultMsg{page: page("https://example.com",
		"intro",
		"see [docs](https://example.com/docs) here",
		"and [more](/deep/page)",
	)})
	m = mm.(model)

	// tab jumps onto the first link.
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = mm.(model)
	if m.cursorLine != 1 || m.cursorCol != 4 {
		t.Fatalf("cursor not on first link: %d:%d", m.cursorLine, m.cursorCol)
	}

	// tab again moves to the second link, shift+tab back.
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = mm.(model)
	if m.cursorLine != 2 {
		t.Fatalf("cursor not on second link: %d:%d", m.cursorLine, m.cursorCol)
	}
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = mm.(model)
	if m.cursorLine != 1 {
		t.Fatalf("cursor did not move back: %d:%d", m.cursorLine, m.cursorCol)
	}

	// enter on a line without links reports the miss.
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = mm.(model)
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mm.(model)
	if m.status != "no link under cursor" {
		t.Fatalf("expected miss status, got %q", m.status)
	}
}

func TestResolveURL(t *testing.T) {
	p := api.Page{Domain: "https://example.com"}
	cases := []struct{ in, want string }{
		{"https://other.net/x", "https://other.net/x"},
		{"/abs/path", "https://example.com/abs/path"},
		{"rel/page.html", "https://example.com/rel/page.html"},
	}
	for _, c := range cases {
		if got := resolveURL(p, c.in); got != c.want {
			t.Fatalf("resolveURL(%q) = %q; want %q", c.in, got, c.want)
		}
	}
	if got := resolveURL(api.Page{}, "rel"); got != "rel" {
		t.Fatalf("no-domain resolution changed link: %q", got)
	}
}

func TestEmptyURLFailureIsSilent(t *testing.T) {
	m := readyModel(t, Options{})
	m.status = "previous"
	mm, _ := m.Update(fetchResultMsg{err: fmt.Errorf("%w", fetch.ErrEmptyURL)})
	m = mm.(model)
	if m.status != "previous" {
		t.Fatalf("empty-url failure should be silent, got %q", m.status)
	}
}

func TestHistoryPickerSelection(t *testing.T) {
	visits := []api.Visit{
		{URL: "https://example.com/alpha", Title: "Alpha"},
		{URL: "https://example.com/beta", Title: "Beta"},
	}
	m := readyModel(t, Options{})
	mm, _ := m.Update(historyLoadedMsg{visits: visits})
	m = mm.(model)
	if m.histModal == nil {
		t.Fatalf("history modal not opened")
	}
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = mm.(model)
	v, ok := m.histModal.selected()
	if !ok || v.URL != "https://example.com/beta" {
		t.Fatalf("unexpected selection: %+v ok=%v", v, ok)
	}
	// esc closes without fetching.
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = mm.(model)
	if m.histModal != nil {
		t.Fatalf("modal not closed")
	}
}
