// Package entryhash fingerprints vocabulary pairs by content, so that the
// same pair entered twice in a sheet can be reported.
package entryhash

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/conorfennell/wordrill/internal/domain"
)

// Normalize concatenates the entry's pair and category after cleaning each
// part. Status and usage are not part of the identity of a pair.
func Normalize(e domain.Entry) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.TrimSpace(p)
		p = strings.Join(strings.Fields(p), " ")
		return p
	}

	// Fields are newline-joined so "ab"+"c" and "a"+"bc" stay distinct.
	return strings.Join([]string{
		normalizePart(e.Source),
		normalizePart(e.Target),
		normalizePart(e.Category),
	}, "\n")
}

// Hash returns the SHA-256 of the normalized entry as a hex string.
func Hash(e domain.Entry) string {
	sum := sha256.Sum256([]byte(Normalize(e)))
	return fmt.Sprintf("%x", sum)
}

// Duplicates groups the IDs of entries sharing a fingerprint. Only groups
// with more than one member are returned, in order of first appearance.
func Duplicates(entries []domain.Entry) [][]int {
	groups := make(map[string][]int)
	var order []string
	for _, e := range entries {
		h := Hash(e)
		if _, seen := groups[h]; !seen {
			order = append(order, h)
		}
		groups[h] = append(groups[h], e.ID)
	}

	var dups [][]int
	for _, h := range order {
		if len(groups[h]) > 1 {
			dups = append(dups, groups[h])
		}
	}
	return dups
}
