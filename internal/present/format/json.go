package format

import (
	"encoding/json"
	"io"

	"github.com/kmj8843/mdrowser/pkg/api"
)

func WriteJSONPage(w io.Writer, p api.Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func WriteJSONVisits(w io.Writer, visits []api.Visit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(visits)
}
