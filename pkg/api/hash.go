package api

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// HashLines returns a deterministic BLAKE3 fingerprint of page content.
// Lines are NUL-delimited so line boundaries matter: ["a","b"] and ["ab"]
// hash differently.
func HashLines(lines []string) string {
	h := blake3.New()
	for _, ln := range lines {
		h.Write([]byte(ln))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
