// Package drill runs a vocabulary drill over one loaded file: sampling
// rounds with usage bookkeeping, and status changes on the entries of the
// round last shown.
package drill

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/sampler"
	"github.com/conorfennell/wordrill/internal/status"
	"github.com/conorfennell/wordrill/internal/store"
)

// Row is one line of a displayed selection.
type Row struct {
	Text  string
	Entry domain.Entry
}

// Loaded describes a freshly opened file.
type Loaded struct {
	Path       string
	Entries    int
	Categories []string
}

// Session owns the loaded store and the last displayed selection.
type Session struct {
	store   *store.Store
	sampler *sampler.Sampler
	log     *slog.Logger

	last     []int
	lastText []string
}

// NewSession returns a session with nothing loaded.
func NewSession(smp *sampler.Sampler, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{sampler: smp, log: log}
}

// Open loads path and replaces the current store and selection. On failure
// the session keeps its previous state.
//
// The file is written back immediately so it gains any missing optional
// columns. A failed write-back is returned wrapping domain.ErrPersist, but
// the file stays loaded.
func (s *Session) Open(path string) (Loaded, error) {
	st, err := store.Load(path)
	if err != nil {
		s.log.Warn("Failed to load vocabulary file", "path", path, "error", err)
		return Loaded{}, err
	}

	s.store = st
	s.last, s.lastText = nil, nil

	for _, group := range st.Duplicates() {
		e, _ := st.Entry(group[0])
		s.log.Warn("Duplicate entries", "ids", group, "source", e.Source, "target", e.Target)
	}

	loaded := Loaded{Path: path, Entries: st.Len(), Categories: st.Categories()}
	s.log.Info("Loaded vocabulary file", "path", path, "entries", loaded.Entries, "categories", len(loaded.Categories))

	if err := st.Save(); err != nil {
		s.log.Warn("Failed to write back vocabulary file", "path", path, "error", err)
		return loaded, err
	}
	return loaded, nil
}

// Store returns the loaded store, or nil.
func (s *Session) Store() *store.Store {
	return s.store
}

// Categories returns the categories of the loaded store.
func (s *Session) Categories() []string {
	if s.store == nil {
		return nil
	}
	return s.store.Categories()
}

// Quotas returns a quota of n for every category, in category order.
func (s *Session) Quotas(n int) []sampler.Quota {
	cats := s.Categories()
	out := make([]sampler.Quota, len(cats))
	for i, c := range cats {
		out[i] = sampler.Quota{Category: c, Count: n}
	}
	return out
}

// Show runs one sampling round. Every drawn entry's usage counter goes up
// by one and the file is saved; if saving fails the counters are restored
// and the round is discarded. A round that draws nothing changes nothing
// and returns no rows.
func (s *Session) Show(req sampler.Request) ([]Row, error) {
	if s.store == nil {
		return nil, domain.ErrNoDataLoaded
	}

	picks, err := s.sampler.Sample(s.store, req)
	if err != nil {
		return nil, err
	}
	if len(picks) == 0 {
		s.log.Info("Nothing to show", "fallback", req.UsesFallback())
		return nil, nil
	}

	ids := make([]int, len(picks))
	texts := make([]string, len(picks))
	for i, p := range picks {
		ids[i] = p.ID
		texts[i] = p.Text
	}

	if err := s.store.AddShown(ids, 1); err != nil {
		return nil, err
	}
	if err := s.store.Save(); err != nil {
		if rerr := s.store.AddShown(ids, -1); rerr != nil {
			err = errors.Join(err, rerr)
		}
		s.log.Warn("Discarding round, save failed", "error", err)
		return nil, err
	}

	s.last, s.lastText = ids, texts
	s.log.Debug("Showed round", "entries", len(ids), "review", req.Review, "fallback", req.UsesFallback())
	return s.Selection(), nil
}

// Selection re-renders the last shown round with current entry fields.
func (s *Session) Selection() []Row {
	rows := make([]Row, 0, len(s.last))
	for i, id := range s.last {
		e, _ := s.store.Entry(id)
		rows = append(rows, Row{Text: s.lastText[i], Entry: e})
	}
	return rows
}

// Selected returns the entry ID shown on the given 1-based row of the last
// selection.
func (s *Session) Selected(row int) (int, error) {
	if row < 1 || row > len(s.last) {
		return 0, fmt.Errorf("%w: row %d (showing %d)", domain.ErrNoSelection, row, len(s.last))
	}
	return s.last[row-1], nil
}

// MarkReview flags entry id of the last selection for review.
func (s *Session) MarkReview(id int) error {
	return s.setStatus(id, domain.StatusReview)
}

// MarkMastered excludes entry id of the last selection from future rounds.
func (s *Session) MarkMastered(id int) error {
	return s.setStatus(id, domain.StatusMastered)
}

// ClearStatus resets entry id of the last selection to normal.
func (s *Session) ClearStatus(id int) error {
	return s.setStatus(id, domain.StatusNormal)
}

func (s *Session) setStatus(id int, to domain.Status) error {
	if s.store == nil {
		return domain.ErrNoDataLoaded
	}
	if err := status.Set(s.store, s.last, id, to); err != nil {
		return err
	}
	s.log.Info("Status changed", "id", id, "status", to)
	return nil
}
