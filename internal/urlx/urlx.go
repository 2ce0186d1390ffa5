// Package urlx holds the small pure string helpers of the fetch pipeline:
// extracting the scheme://host prefix of a URL and locating markdown links
// within a line of text.
package urlx

import (
	"regexp"
	"strings"
)

var (
	// Strict pass: http/https only. Host is anything up to whitespace or '/'.
	reHTTPDomain = regexp.MustCompile(`^https?://[^\s/]+`)
	// Loose pass: any alphabetic scheme.
	reAnyDomain = regexp.MustCompile(`^[A-Za-z]+://[^\s/]+`)
)

// Domain extracts the scheme://host prefix of raw. The input is trimmed
// first; matching is two-pass, preferring http/https before accepting any
// alphabetic scheme. The returned domain is always a prefix of the trimmed
// input.
func Domain(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if m := reHTTPDomain.FindString(raw); m != "" {
		return m, true
	}
	if m := reAnyDomain.FindString(raw); m != "" {
		return m, true
	}
	return "", false
}

// Link is a markdown [text](url) span located within a single line.
// Start is the byte offset of '[' and End the offset of ')'.
type Link struct {
	URL   string
	Start int
	End   int
}

// Links scans a line left to right and returns every [text](url) span found,
// in scan order.
func Links(line string) []Link {
	var out []Link
	for i := 0; i < len(line); i++ {
		if line[i] != '[' {
			continue
		}
		mid := strings.Index(line[i:], "](")
		if mid < 0 {
			break
		}
		mid += i
		end := strings.IndexByte(line[mid+2:], ')')
		if end < 0 {
			continue
		}
		end += mid + 2
		out = append(out, Link{URL: line[mid+2 : end], Start: i, End: end})
		i = end
	}
	return out
}

// LinkAt returns the URL of the first link span containing the given column.
// Overlapping candidates resolve to the leftmost span in scan order.
func LinkAt(line string, col int) (string, bool) {
	for _, l := range Links(line) {
		if col >= l.Start && col <= l.End {
			return l.URL, true
		}
	}
	return "", false
}
