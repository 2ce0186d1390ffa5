package urlx

import "testing"

func TestDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://example.com/path/x", "https://example.com", true},
		{"http://example.com", "http://example.com", true},
		{"  https://example.com/x  ", "https://example.com", true},
		{"https://sub.example.com:8080/a", "https://sub.example.com:8080", true},
		{"gemini://example.org/doc", "gemini://example.org", true},
		{"ftp://files.example.com/pub", "ftp://files.example.com", true},
		{"", "", false},
		{"   ", "", false},
		{"example.com", "", false},
		{"no scheme here", "", false},
		{"https:///path", "", false},
		{"://example.com", "", false},
	}
	for _, c := range cases {
		got, ok := Domain(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("Domain(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestDomainIsPrefix(t *testing.T) {
	in := "https://example.com/some/deep/path?q=1"
	got, ok := Domain(in)
	if !ok {
		t.Fatalf("expected match")
	}
	if in[:len(got)] != got {
		t.Fatalf("domain %q is not a prefix of %q", got, in)
	}
}

func TestLinkAt(t *testing.T) {
	line := "see [docs](https://example.com/x) here"
	// Cursor inside "docs".
	if got, ok := LinkAt(line, 6); !ok || got != "https://example.com/x" {
		t.Fatalf("LinkAt inside text = %q, %v", got, ok)
	}
	// Cursor on the brackets and parens still counts.
	if got, ok := LinkAt(line, 4); !ok || got != "https://example.com/x" {
		t.Fatalf("LinkAt on '[' = %q, %v", got, ok)
	}
	if got, ok := LinkAt(line, 32); !ok || got != "https://example.com/x" {
		t.Fatalf("LinkAt on ')' = %q, %v", got, ok)
	}
	// Cursor outside any span.
	if _, ok := LinkAt(line, 0); ok {
		t.Fatalf("expected no link before the span")
	}
	if _, ok := LinkAt(line, 35); ok {
		t.Fatalf("expected no link after the span")
	}
}

func TestLinkAtMultiple(t *testing.T) {
	line := "[a](https://a.example) and [b](https://b.example)"
	if got, _ := LinkAt(line, 1); got != "https://a.example" {
		t.Fatalf("first span: %q", got)
	}
	if got, _ := LinkAt(line, 28); got != "https://b.example" {
		t.Fatalf("second span: %q", got)
	}
	if _, ok := LinkAt(line, 24); ok {
		t.Fatalf("expected gap between spans to have no link")
	}
}

func TestLinksScanOrder(t *testing.T) {
	line := "x [one](u1) y [two](u2)"
	ls := Links(line)
	if len(ls) != 2 || ls[0].URL != "u1" || ls[1].URL != "u2" {
		t.Fatalf("unexpected links: %+v", ls)
	}
	if ls[0].Start != 2 || line[ls[0].End] != ')' {
		t.Fatalf("unexpected span offsets: %+v", ls[0])
	}
}

func TestLinksNone(t *testing.T) {
	for _, line := range []string{"", "plain text", "[unclosed](nope", "no (parens) [brackets]"} {
		if ls := Links(line); len(ls) != 0 {
			t.Fatalf("Links(%q) = %+v; want none", line, ls)
		}
	}
}
