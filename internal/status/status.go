// Package status applies the user's review/mastered flags to entries of the
// last displayed selection and persists the result.
package status

import (
	"fmt"
	"slices"

	"github.com/conorfennell/wordrill/internal/domain"
)

// Target is a store whose entries can be flagged and saved.
type Target interface {
	SetStatus(id int, s domain.Status) (domain.Status, error)
	Save() error
}

// MarkReview flags an entry so review quotas can draw it.
func MarkReview(t Target, selection []int, id int) error {
	return Set(t, selection, id, domain.StatusReview)
}

// MarkMastered excludes an entry from every future round.
func MarkMastered(t Target, selection []int, id int) error {
	return Set(t, selection, id, domain.StatusMastered)
}

// Clear returns an entry to normal.
func Clear(t Target, selection []int, id int) error {
	return Set(t, selection, id, domain.StatusNormal)
}

// Set changes the status of id, which must be part of selection, and saves
// t. If saving fails the previous status is restored.
func Set(t Target, selection []int, id int, to domain.Status) error {
	if t == nil {
		return domain.ErrNoDataLoaded
	}
	if !slices.Contains(selection, id) {
		return fmt.Errorf("%w: entry %d is not in the current selection", domain.ErrNoSelection, id)
	}

	prev, err := t.SetStatus(id, to)
	if err != nil {
		return err
	}
	if err := t.Save(); err != nil {
		if _, rerr := t.SetStatus(id, prev); rerr != nil {
			return fmt.Errorf("%w (restoring status: %v)", err, rerr)
		}
		return err
	}
	return nil
}
