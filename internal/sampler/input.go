package sampler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conorfennell/wordrill/internal/domain"
)

// ParseCount reads a quota or count typed by the user. Blank input is 0.
// Anything that is not a non-negative integer also yields 0, together with
// an error wrapping domain.ErrInvalidNumericInput so the caller can warn
// and carry on.
func ParseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumericInput, raw)
	}
	return n, nil
}

// ParseQuota reads "category=count". A malformed count yields a zero quota
// for the category and an ErrInvalidNumericInput error.
func ParseQuota(raw string) (Quota, error) {
	i := strings.LastIndex(raw, "=")
	if i < 0 {
		return Quota{}, fmt.Errorf("quota %q: expected category=count", raw)
	}
	q := Quota{Category: strings.TrimSpace(raw[:i])}
	if q.Category == "" {
		return Quota{}, fmt.Errorf("quota %q: empty category", raw)
	}
	n, err := ParseCount(raw[i+1:])
	q.Count = n
	if err != nil {
		return q, fmt.Errorf("quota for %s: %w", q.Category, err)
	}
	return q, nil
}
