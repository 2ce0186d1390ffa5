package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmj8843/mdrowser/internal/fetch"
	"github.com/kmj8843/mdrowser/internal/history"
	"github.com/kmj8843/mdrowser/internal/present/format"
	"github.com/kmj8843/mdrowser/pkg/api"
)

// fetchResultMsg conveys the outcome of one pipeline run back to Update.
// rendered carries the glamour output so the Update loop never blocks on
// rendering.
type fetchResultMsg struct {
	page     api.Page
	rendered string
	err      error
	dur      time.Duration
}

// historyLoadedMsg conveys the visit list for the history picker.
type historyLoadedMsg struct {
	visits []api.Visit
	err    error
}

// fetchCmd runs the external pipeline off the UI goroutine and returns a
// fetchResultMsg. On success it also renders the markdown and records the
// visit; the surface itself is only ever touched in Update.
func fetchCmd(ctx context.Context, runner *fetch.Runner, hist history.Store, url, style string, wrap int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		page, err := runner.Fetch(ctx, url)
		if err != nil {
			return fetchResultMsg{err: err, dur: time.Since(start)}
		}
		rendered, rerr := format.RenderLines(page.Lines, style, wrap)
		if rerr != nil {
			// Fall back to the raw source view; rendering is cosmetic.
			rendered = ""
		}
		if hist != nil {
			_ = hist.Record(ctx, api.Visit{
				URL:       page.URL,
				Domain:    page.Domain,
				Title:     page.Title(),
				Lines:     len(page.Lines),
				Hash:      api.HashLines(page.Lines),
				FetchedAt: page.FetchedAt,
			})
		}
		return fetchResultMsg{page: page, rendered: rendered, dur: time.Since(start)}
	}
}

// loadHistoryCmd fetches recent visits for the picker.
func loadHistoryCmd(ctx context.Context, hist history.Store, limit int) tea.Cmd {
	return func() tea.Msg {
		if hist == nil {
			return historyLoadedMsg{}
		}
		visits, err := hist.List(ctx, limit)
		return historyLoadedMsg{visits: visits, err: err}
	}
}
