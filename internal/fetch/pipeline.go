// Package fetch runs the two-stage external pipeline that turns a URL into
// markdown: an HTTP fetcher whose stdout feeds an HTML-to-markdown converter.
// Both programs are resolved from PATH once at wiring time; each Fetch spawns
// a fresh, independent pipeline.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/kmj8843/mdrowser/internal/urlx"
	"github.com/kmj8843/mdrowser/pkg/api"
)

// Runner invokes the fetch pipeline. Construct it with NewRunner so that
// missing executables surface as a ConfigError before any fetch is attempted.
type Runner struct {
	fetcher    string
	quietFlags []string
	converter  string
	domainFlag string
}

// NewRunner resolves both external commands via PATH lookup. quietFlags is
// whitespace-separated (e.g. "-s" or "-s -L"); domainFlag is the converter's
// domain option name (e.g. "--domain").
func NewRunner(fetcherCmd, quietFlags, converterCmd, domainFlag string) (*Runner, error) {
	fp, err := exec.LookPath(fetcherCmd)
	if err != nil {
		return nil, &ConfigError{Command: fetcherCmd, Err: err}
	}
	cp, err := exec.LookPath(converterCmd)
	if err != nil {
		return nil, &ConfigError{Command: converterCmd, Err: err}
	}
	return &Runner{
		fetcher:    fp,
		quietFlags: strings.Fields(quietFlags),
		converter:  cp,
		domainFlag: domainFlag,
	}, nil
}

// Fetch runs fetcher | converter for the given URL and returns the converted
// markdown as lines. It blocks until the pipeline exits; run it off the UI
// goroutine. A second Fetch while one is outstanding simply starts a second,
// independent pipeline.
func (r *Runner) Fetch(ctx context.Context, rawURL string) (api.Page, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return api.Page{}, ErrEmptyURL
	}
	domain, ok := urlx.Domain(rawURL)
	if !ok {
		return api.Page{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	fetchCmd := exec.CommandContext(ctx, r.fetcher, append(append([]string{}, r.quietFlags...), rawURL)...)
	convCmd := exec.CommandContext(ctx, r.converter, r.domainFlag+"="+domain)

	pipe, err := fetchCmd.StdoutPipe()
	if err != nil {
		return api.Page{}, &LaunchError{Command: r.fetcher, Err: err}
	}
	convCmd.Stdin = pipe

	var out, errb bytes.Buffer
	fetchCmd.Stderr = &errb
	convCmd.Stdout = &out
	convCmd.Stderr = &errb

	if err := fetchCmd.Start(); err != nil {
		return api.Page{}, &LaunchError{Command: r.fetcher, Err: err}
	}
	if err := convCmd.Start(); err != nil {
		_ = fetchCmd.Process.Kill()
		_ = fetchCmd.Wait()
		return api.Page{}, &LaunchError{Command: r.converter, Err: err}
	}

	fetchErr := fetchCmd.Wait()
	convErr := convCmd.Wait()

	if err := firstFailure(fetchErr, convErr); err != nil {
		code, ok := exitCode(err)
		if !ok {
			return api.Page{}, err
		}
		return api.Page{}, &CommandError{Code: code, Stderr: strings.TrimSpace(errb.String())}
	}

	return api.Page{
		URL:       rawURL,
		Domain:    domain,
		Lines:     splitLines(out.String()),
		FetchedAt: time.Now(),
	}, nil
}

// firstFailure prefers the converter's exit status, matching what a shell
// pipeline would report, and falls back to the fetcher's.
func firstFailure(fetchErr, convErr error) error {
	if convErr != nil {
		return convErr
	}
	return fetchErr
}

func exitCode(err error) (int, bool) {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), true
	}
	return 0, false
}

// splitLines converts captured stdout to display lines. A single trailing
// empty line produced by a final newline is dropped; entirely empty output
// yields exactly one empty line so the viewer always has something to render.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
