package fetch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
}

// fakePipeline installs shell stand-ins for the fetcher and converter and
// returns a Runner wired to them.
func fakePipeline(t *testing.T, fetchBody, convBody string) *Runner {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts unavailable")
	}
	dir := t.TempDir()
	writeScript(t, dir, "fakefetch", fetchBody)
	writeScript(t, dir, "fakeconv", convBody)
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	r, err := NewRunner("fakefetch", "", "fakeconv", "--domain")
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return r
}

func TestFetchSuccess(t *testing.T) {
	r := fakePipeline(t,
		`echo "<h1>ok</h1>"`,
		`cat >/dev/null; echo "# Title"; echo "body"; echo "$1"`)
	page, err := r.Fetch(context.Background(), "https://example.com/some/page")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	want := []string{"# Title", "body", "--domain=https://example.com"}
	if !reflect.DeepEqual(page.Lines, want) {
		t.Fatalf("lines mismatch: %v", page.Lines)
	}
	if page.Domain != "https://example.com" {
		t.Fatalf("domain mismatch: %q", page.Domain)
	}
	if page.URL != "https://example.com/some/page" {
		t.Fatalf("url mismatch: %q", page.URL)
	}
}

func TestFetchEmptyOutput(t *testing.T) {
	r := fakePipeline(t, `true`, `cat >/dev/null`)
	page, err := r.Fetch(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !reflect.DeepEqual(page.Lines, []string{""}) {
		t.Fatalf("expected single empty line, got %v", page.Lines)
	}
}

func TestFetchCommandErrorWithStderr(t *testing.T) {
	r := fakePipeline(t, `true`, `cat >/dev/null; echo "error: timeout" >&2; exit 1`)
	_, err := r.Fetch(context.Background(), "https://example.com")
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if ce.Error() != "error: timeout" {
		t.Fatalf("message mismatch: %q", ce.Error())
	}
}

func TestFetchCommandErrorNoStderr(t *testing.T) {
	r := fakePipeline(t, `true`, `cat >/dev/null; exit 1`)
	_, err := r.Fetch(context.Background(), "https://example.com")
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if ce.Error() != "Command exited with code 1" {
		t.Fatalf("message mismatch: %q", ce.Error())
	}
}

func TestFetchFetcherFailurePropagates(t *testing.T) {
	r := fakePipeline(t, `echo "curl: (6) could not resolve" >&2; exit 6`, `cat >/dev/null`)
	_, err := r.Fetch(context.Background(), "https://nope.invalid")
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if ce.Code != 6 {
		t.Fatalf("code mismatch: %d", ce.Code)
	}
	if ce.Error() != "curl: (6) could not resolve" {
		t.Fatalf("message mismatch: %q", ce.Error())
	}
}

func TestFetchRejectsBadInput(t *testing.T) {
	r := fakePipeline(t, `true`, `cat >/dev/null`)
	if _, err := r.Fetch(context.Background(), "   "); !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
	if _, err := r.Fetch(context.Background(), "not a url"); !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}

func TestNewRunnerMissingCommand(t *testing.T) {
	_, err := NewRunner("mdrowser-no-such-fetcher", "-s", "mdrowser-no-such-converter", "--domain")
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if ce.Command != "mdrowser-no-such-fetcher" {
		t.Fatalf("command mismatch: %q", ce.Command)
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"# Title\nbody\n", []string{"# Title", "body"}},
		{"# Title\nbody", []string{"# Title", "body"}},
		{"# Title\nbody\n\n", []string{"# Title", "body", ""}},
		{"", []string{""}},
		{"\n", []string{""}},
	}
	for _, c := range cases {
		got := splitLines(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("splitLines(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}
