// Package store holds the loaded vocabulary sheet in memory.
//
// Entry IDs are assigned at load time from row order and never change while
// the store is alive. Only status and usage are mutated; rows are never
// added or removed.
package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/entryhash"
	"github.com/conorfennell/wordrill/internal/tabular"
)

// Store is the in-memory record store backing one vocabulary file.
type Store struct {
	path    string
	table   *domain.Table
	cols    columns
	entries []domain.Entry
}

// New builds a store from a sheet. It fails with domain.ErrMissingColumns
// when any required column is absent; missing optional columns are appended
// with default values.
func New(t *domain.Table) (*Store, error) {
	t = t.Clone()
	for i, r := range t.Rows {
		if len(r) < len(t.Header) {
			t.Rows[i] = append(r, make([]string, len(t.Header)-len(r))...)
		}
	}
	cols, err := resolveColumns(t)
	if err != nil {
		return nil, err
	}

	s := &Store{table: t, cols: cols, entries: make([]domain.Entry, len(t.Rows))}
	for i, row := range t.Rows {
		s.entries[i] = domain.Entry{
			ID:         i,
			Source:     row[cols.source],
			Target:     row[cols.target],
			Category:   strings.TrimSpace(row[cols.category]),
			Status:     domain.ParseStatus(row[cols.status]),
			TimesShown: parseShown(row[cols.shown]),
		}
	}
	return s, nil
}

// parseShown reads a usage cell. Anything that is not a non-negative number
// counts as never shown; pandas writes "3.0" once a column held a NaN.
func parseShown(cell string) int {
	cell = strings.TrimSpace(cell)
	if n, err := strconv.Atoi(cell); err == nil && n >= 0 {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil && f >= 0 {
		return int(f)
	}
	return 0
}

// Load reads the file at path and builds a store bound to it.
func Load(path string) (*Store, error) {
	t, err := tabular.Read(path)
	if err != nil {
		return nil, err
	}
	s, err := New(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the backing file with the current state.
func (s *Store) Save() error {
	if s.path == "" {
		return fmt.Errorf("%w: store has no backing file", domain.ErrPersist)
	}
	return tabular.Write(s.path, s.Table())
}

// Table returns a copy of the sheet with status and usage written back.
func (s *Store) Table() *domain.Table {
	t := s.table.Clone()
	for _, e := range s.entries {
		t.Rows[e.ID][s.cols.status] = string(e.Status)
		t.Rows[e.ID][s.cols.shown] = strconv.Itoa(e.TimesShown)
	}
	return t
}

// Len returns the number of entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns a copy of all entries in ID order.
func (s *Store) Entries() []domain.Entry {
	if s == nil {
		return nil
	}
	return append([]domain.Entry(nil), s.entries...)
}

// Entry returns the entry with the given ID.
func (s *Store) Entry(id int) (domain.Entry, bool) {
	if s == nil || id < 0 || id >= len(s.entries) {
		return domain.Entry{}, false
	}
	return s.entries[id], true
}

// Categories returns the distinct non-empty categories, sorted.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, e := range s.entries {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		cats = append(cats, e.Category)
	}
	sort.Strings(cats)
	return cats
}

// SetStatus changes one entry's status and returns the previous one.
func (s *Store) SetStatus(id int, status domain.Status) (domain.Status, error) {
	if _, ok := s.Entry(id); !ok {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownEntry, id)
	}
	prev := s.entries[id].Status
	s.entries[id].Status = status
	return prev, nil
}

// AddShown adds delta to the usage counter of every listed entry. Either all
// IDs are valid and applied, or none are.
func (s *Store) AddShown(ids []int, delta int) error {
	for _, id := range ids {
		if _, ok := s.Entry(id); !ok {
			return fmt.Errorf("%w: %d", domain.ErrUnknownEntry, id)
		}
	}
	for _, id := range ids {
		s.entries[id].TimesShown += delta
		if s.entries[id].TimesShown < 0 {
			s.entries[id].TimesShown = 0
		}
	}
	return nil
}

// Duplicates returns groups of IDs whose pairs are the same after
// normalization.
func (s *Store) Duplicates() [][]int {
	return entryhash.Duplicates(s.entries)
}

// CategorySummary counts entries of one category by status.
type CategorySummary struct {
	Category string
	Total    int
	Review   int
	Mastered int
}

// Summary returns per-category counts in Categories order.
func (s *Store) Summary() []CategorySummary {
	idx := make(map[string]int)
	out := make([]CategorySummary, 0)
	for _, c := range s.Categories() {
		idx[c] = len(out)
		out = append(out, CategorySummary{Category: c})
	}
	for _, e := range s.entries {
		i, ok := idx[e.Category]
		if !ok {
			continue
		}
		out[i].Total++
		switch e.Status {
		case domain.StatusReview:
			out[i].Review++
		case domain.StatusMastered:
			out[i].Mastered++
		}
	}
	return out
}
