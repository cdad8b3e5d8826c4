// Package sampler selects vocabulary entries for a drill round.
//
// A round draws without replacement in up to two phases: entries flagged
// for review first, then per-category quotas in caller order. When no quota
// at all is requested it instead draws a flat number of entries from every
// eligible entry. Mastered entries are never drawn. The sampler only
// selects; usage counters are the caller's business.
package sampler

import (
	"math/rand/v2"

	"github.com/conorfennell/wordrill/internal/domain"
)

// Quota asks for up to Count entries of one category.
type Quota struct {
	Category string
	Count    int
}

// Request describes one sampling round.
type Request struct {
	Quotas   []Quota
	Review   int
	Mode     domain.DisplayMode
	Fallback int
}

// Requested returns the number of entries asked for by category quotas.
// Zero and negative quotas count as nothing.
func (r Request) Requested() int {
	total := 0
	for _, q := range r.Quotas {
		if q.Count > 0 {
			total += q.Count
		}
	}
	return total
}

// UsesFallback reports whether the round ignores quotas and draws a flat
// count instead.
func (r Request) UsesFallback() bool {
	return r.Requested() == 0 && r.Review <= 0
}

// Pick is one selected entry, rendered for display.
type Pick struct {
	ID   int
	Text string
}

// Source provides the entries to sample from.
type Source interface {
	Entries() []domain.Entry
}

// Sampler draws entries using its own random source.
type Sampler struct {
	rng *rand.Rand
}

// New returns a sampler whose draws are fully determined by seed.
func New(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Sample selects entries from src according to req. Review picks come first
// in draw order, followed by each category's picks in the order the quotas
// were given. Counts larger than the available pool are clamped. An empty
// source yields domain.ErrNoDataLoaded and no picks.
func (s *Sampler) Sample(src Source, req Request) ([]Pick, error) {
	if src == nil {
		return nil, domain.ErrNoDataLoaded
	}
	entries := src.Entries()
	if len(entries) == 0 {
		return nil, domain.ErrNoDataLoaded
	}

	byID := make(map[int]domain.Entry, len(entries))
	var pool []int
	for _, e := range entries {
		byID[e.ID] = e
		if e.Eligible() {
			pool = append(pool, e.ID)
		}
	}

	var picked []int
	if req.UsesFallback() {
		picked = s.draw(pool, req.Fallback)
	} else {
		review := s.draw(filter(pool, byID, func(e domain.Entry) bool {
			return e.Status == domain.StatusReview
		}), req.Review)
		picked = append(picked, review...)
		pool = without(pool, review)

		for _, q := range req.Quotas {
			if q.Count <= 0 {
				continue
			}
			cat := q.Category
			got := s.draw(filter(pool, byID, func(e domain.Entry) bool {
				return e.Category == cat
			}), q.Count)
			picked = append(picked, got...)
			pool = without(pool, got)
		}
	}

	picks := make([]Pick, len(picked))
	for i, id := range picked {
		picks[i] = Pick{ID: id, Text: byID[id].DisplayText(req.Mode)}
	}
	return picks, nil
}

// draw returns min(n, len(ids)) distinct IDs chosen uniformly, in draw
// order. ids is not modified.
func (s *Sampler) draw(ids []int, n int) []int {
	if n > len(ids) {
		n = len(ids)
	}
	if n <= 0 {
		return nil
	}
	perm := append([]int(nil), ids...)
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(perm)-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:n]
}

func filter(ids []int, byID map[int]domain.Entry, keep func(domain.Entry) bool) []int {
	var out []int
	for _, id := range ids {
		if keep(byID[id]) {
			out = append(out, id)
		}
	}
	return out
}

func without(ids []int, drop []int) []int {
	if len(drop) == 0 {
		return ids
	}
	gone := make(map[int]bool, len(drop))
	for _, id := range drop {
		gone[id] = true
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !gone[id] {
			out = append(out, id)
		}
	}
	return out
}
