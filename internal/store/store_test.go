package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func germanTable() *domain.Table {
	return &domain.Table{
		Header: []string{"Deutsch", "English", "Category", "Notes"},
		Rows: [][]string{
			{"Hund", "dog", "animals", "n1"},
			{"Katze", "cat", "animals", ""},
			{"laufen", "to run", "verbs", "n3"},
			{"Brot", "bread", " food "},
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		table      *domain.Table
		wantErr    error
		assertFunc func(t *testing.T, s *Store)
	}{
		{
			name:  "german headers get camel case optional columns",
			table: germanTable(),
			assertFunc: func(t *testing.T, s *Store) {
				require.Equal(t, 4, s.Len())
				assert.Equal(t, []string{"Deutsch", "English", "Category", "Notes", "TimesShown", "Status"}, s.Table().Header)
				for _, e := range s.Entries() {
					assert.Equal(t, domain.StatusNormal, e.Status)
					assert.Zero(t, e.TimesShown)
				}
				e, ok := s.Entry(3)
				require.True(t, ok)
				assert.Equal(t, "food", e.Category)
				assert.Equal(t, []string{"Brot", "bread", " food ", "", "0", "normal"}, s.Table().Rows[3])
			},
		},
		{
			name: "snake case headers get snake case optional columns",
			table: &domain.Table{
				Header: []string{"category", "source_text", "target_text"},
				Rows:   [][]string{{"a", "x", "y"}},
			},
			assertFunc: func(t *testing.T, s *Store) {
				assert.Equal(t, []string{"category", "source_text", "target_text", "times_shown", "status"}, s.Table().Header)
				e, _ := s.Entry(0)
				assert.Equal(t, domain.Entry{ID: 0, Source: "x", Target: "y", Category: "a", Status: domain.StatusNormal}, e)
			},
		},
		{
			name: "existing optional columns are parsed",
			table: &domain.Table{
				Header: []string{"Deutsch", "English", "Category", "TimesShown", "Status"},
				Rows: [][]string{
					{"a", "b", "c", "4", "review"},
					{"d", "e", "c", "2.0", "MASTERED"},
					{"f", "g", "c", "lots", "weird"},
					{"h", "i", "c", "-3", ""},
				},
			},
			assertFunc: func(t *testing.T, s *Store) {
				want := []struct {
					shown  int
					status domain.Status
				}{
					{4, domain.StatusReview},
					{2, domain.StatusMastered},
					{0, domain.StatusNormal},
					{0, domain.StatusNormal},
				}
				for i, w := range want {
					e, _ := s.Entry(i)
					assert.Equal(t, w.shown, e.TimesShown, "entry %d", i)
					assert.Equal(t, w.status, e.Status, "entry %d", i)
				}
				assert.Len(t, s.Table().Header, 5)
			},
		},
		{
			name: "missing required column",
			table: &domain.Table{
				Header: []string{"Deutsch", "Category"},
				Rows:   [][]string{{"a", "b"}},
			},
			wantErr: domain.ErrMissingColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := New(tt.table)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "target_text/English")
				assert.Contains(t, err.Error(), "found Deutsch, Category")
				return
			}
			require.NoError(t, err)
			tt.assertFunc(t, s)
		})
	}
}

func TestNewDoesNotAliasInput(t *testing.T) {
	in := germanTable()
	s, err := New(in)
	require.NoError(t, err)

	_, err = s.SetStatus(0, domain.StatusMastered)
	require.NoError(t, err)

	assert.Len(t, in.Header, 4)
	assert.Equal(t, "mastered", s.Table().Rows[0][5])
}

func TestCategories(t *testing.T) {
	s, err := New(&domain.Table{
		Header: []string{"Deutsch", "English", "Category"},
		Rows: [][]string{
			{"a", "a", "verbs"},
			{"b", "b", "animals"},
			{"c", "c", ""},
			{"d", "d", "verbs"},
			{"e", "e", "Adjectives"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Adjectives", "animals", "verbs"}, s.Categories())
}

func TestSetStatus(t *testing.T) {
	s, err := New(germanTable())
	require.NoError(t, err)

	prev, err := s.SetStatus(1, domain.StatusReview)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNormal, prev)

	e, _ := s.Entry(1)
	assert.Equal(t, domain.StatusReview, e.Status)

	_, err = s.SetStatus(99, domain.StatusReview)
	assert.ErrorIs(t, err, domain.ErrUnknownEntry)
	_, err = s.SetStatus(-1, domain.StatusReview)
	assert.ErrorIs(t, err, domain.ErrUnknownEntry)
}

func TestAddShown(t *testing.T) {
	s, err := New(germanTable())
	require.NoError(t, err)

	require.NoError(t, s.AddShown([]int{0, 2}, 1))
	require.NoError(t, s.AddShown([]int{0}, 1))

	shown := func(id int) int {
		e, _ := s.Entry(id)
		return e.TimesShown
	}
	assert.Equal(t, 2, shown(0))
	assert.Equal(t, 0, shown(1))
	assert.Equal(t, 1, shown(2))

	err = s.AddShown([]int{1, 42}, 1)
	require.ErrorIs(t, err, domain.ErrUnknownEntry)
	assert.Equal(t, 0, shown(1), "no partial update")

	require.NoError(t, s.AddShown([]int{2}, -5))
	assert.Equal(t, 0, shown(2))
}

func TestSummary(t *testing.T) {
	s, err := New(germanTable())
	require.NoError(t, err)
	_, _ = s.SetStatus(0, domain.StatusReview)
	_, _ = s.SetStatus(1, domain.StatusMastered)

	assert.Equal(t, []CategorySummary{
		{Category: "animals", Total: 2, Review: 1, Mastered: 1},
		{Category: "food", Total: 1},
		{Category: "verbs", Total: 1},
	}, s.Summary())
}

func TestDuplicates(t *testing.T) {
	tbl := germanTable()
	tbl.Rows = append(tbl.Rows, []string{"hund", "Dog", "animals", ""})
	s, err := New(tbl)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 4}}, s.Duplicates())
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("Deutsch,English,Category\nHund,dog,animals\nKatze,cat,animals\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())

	_, err = s.SetStatus(1, domain.StatusReview)
	require.NoError(t, err)
	require.NoError(t, s.AddShown([]int{0}, 1))
	require.NoError(t, s.Save())

	tbl, err := tabular.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Deutsch", "English", "Category", "TimesShown", "Status"}, tbl.Header)
	assert.Equal(t, [][]string{
		{"Hund", "dog", "animals", "1", "normal"},
		{"Katze", "cat", "animals", "0", "review"},
	}, tbl.Rows)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "words.xls"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("Word,Meaning\na,b\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
}

func TestSaveWithoutPath(t *testing.T) {
	s, err := New(germanTable())
	require.NoError(t, err)
	assert.ErrorIs(t, s.Save(), domain.ErrPersist)
}
