package present

import (
	"io"

	"github.com/kmj8843/mdrowser/internal/present/format"
	"github.com/kmj8843/mdrowser/pkg/api"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeTUI
)

type Options struct {
	Mode  Mode
	Style string
	Wrap  int
}

// ParseMode parses a string like "plain", "pretty", "json", "tui".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "tui":
		return ModeTUI, true
	default:
		return ModePretty, false
	}
}

// RenderPage renders a fetched page according to options. ModeTUI is handled
// by the interactive viewer, not here.
func RenderPage(w io.Writer, page api.Page, opts Options) error {
	switch opts.Mode {
	case ModePretty:
		return format.WritePrettyPage(w, page, opts.Style, opts.Wrap)
	case ModeJSON:
		return format.WriteJSONPage(w, page)
	default:
		return format.WritePlainPage(w, page)
	}
}

// RenderVisits renders history entries as a plain table or JSON.
func RenderVisits(w io.Writer, visits []api.Visit, opts Options) error {
	if opts.Mode == ModeJSON {
		return format.WriteJSONVisits(w, visits)
	}
	return format.WritePlainVisits(w, visits)
}
