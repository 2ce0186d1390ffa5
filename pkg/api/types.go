package api

import (
	"strings"
	"time"
)

// Page is the transient result of one fetch-and-convert cycle: the converted
// markdown as ordered lines. It lives only for the duration of one display.
type Page struct {
	URL       string    `json:"url"`
	Domain    string    `json:"domain"`
	Lines     []string  `json:"lines"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Title returns the text of the first markdown heading, or "" when none.
func (p Page) Title() string {
	for _, ln := range p.Lines {
		t := strings.TrimSpace(ln)
		if strings.HasPrefix(t, "#") {
			return strings.TrimSpace(strings.TrimLeft(t, "#"))
		}
	}
	return ""
}

// Visit is a recorded page view kept in the history store.
type Visit struct {
	URL       string    `json:"url"`
	Domain    string    `json:"domain"`
	Title     string    `json:"title"`
	Lines     int       `json:"lines"`
	Hash      string    `json:"hash"`
	Count     int64     `json:"count"`
	FetchedAt time.Time `json:"fetched_at"`
}
