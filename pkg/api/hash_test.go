package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashLines(t *testing.T) {
	t.Run("identical content produces identical hashes", func(t *testing.T) {
		a := HashLines([]string{"# Title", "body"})
		b := HashLines([]string{"# Title", "body"})
		assert.Equal(t, a, b)
	})

	t.Run("line boundaries matter", func(t *testing.T) {
		a := HashLines([]string{"ab"})
		b := HashLines([]string{"a", "b"})
		assert.NotEqual(t, a, b)
	})

	t.Run("different content produces different hashes", func(t *testing.T) {
		a := HashLines([]string{"# Title", "body"})
		b := HashLines([]string{"# Title", "other"})
		assert.NotEqual(t, a, b)
	})

	t.Run("empty and nil are equivalent", func(t *testing.T) {
		assert.Equal(t, HashLines(nil), HashLines([]string{}))
	})
}

func TestPageTitle(t *testing.T) {
	p := Page{Lines: []string{"", "some preamble", "## Deep Heading", "# Top"}}
	if got := p.Title(); got != "Deep Heading" {
		t.Fatalf("title mismatch: %q", got)
	}
	empty := Page{Lines: []string{"no headings here"}}
	if got := empty.Title(); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}
