package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kmj8843/mdrowser/pkg/api"
)

// WritePlainPage writes the raw markdown lines, one per line.
func WritePlainPage(w io.Writer, p api.Page) error {
	for _, ln := range p.Lines {
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// WritePlainVisits writes a history table: fetched time, count, url, title.
func WritePlainVisits(w io.Writer, visits []api.Visit) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, v := range visits {
		line := fmt.Sprintf("%s\t%d\t%s\t%s\n",
			v.FetchedAt.Local().Format(time.RFC3339), v.Count, esc(v.URL), esc(v.Title))
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}
