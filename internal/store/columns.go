package store

import (
	"fmt"
	"strings"

	"github.com/conorfennell/wordrill/internal/domain"
)

// Accepted header names, canonical name first.
var (
	sourceNames   = []string{"source_text", "Deutsch"}
	targetNames   = []string{"target_text", "English"}
	categoryNames = []string{"category", "Category"}
	shownNames    = []string{"times_shown", "TimesShown"}
	statusNames   = []string{"status", "Status"}
)

type columns struct {
	source, target, category, shown, status int
}

// resolveColumns locates the columns of t, appending the optional ones
// (and their default cells) when absent.
func resolveColumns(t *domain.Table) (columns, error) {
	cols := columns{
		source:   findColumn(t.Header, sourceNames),
		target:   findColumn(t.Header, targetNames),
		category: findColumn(t.Header, categoryNames),
		shown:    findColumn(t.Header, shownNames),
		status:   findColumn(t.Header, statusNames),
	}

	var missing []string
	for _, c := range []struct {
		idx   int
		names []string
	}{
		{cols.source, sourceNames},
		{cols.target, targetNames},
		{cols.category, categoryNames},
	} {
		if c.idx < 0 {
			missing = append(missing, strings.Join(c.names, "/"))
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: need %s; found %s",
			domain.ErrMissingColumns, strings.Join(missing, ", "), strings.Join(t.Header, ", "))
	}

	// New columns follow the naming style of the sheet.
	style := 1
	if strings.EqualFold(strings.TrimSpace(t.Header[cols.source]), sourceNames[0]) {
		style = 0
	}
	if cols.shown < 0 {
		cols.shown = appendColumn(t, shownNames[style], "0")
	}
	if cols.status < 0 {
		cols.status = appendColumn(t, statusNames[style], string(domain.StatusNormal))
	}
	return cols, nil
}

func findColumn(header []string, names []string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}

func appendColumn(t *domain.Table, name, value string) int {
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
	return len(t.Header) - 1
}
