package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/drill"
	"github.com/conorfennell/wordrill/internal/store"
)

// Printer renders selections and messages. Colors are only emitted when the
// writer is a terminal that supports them.
type Printer struct {
	out io.Writer

	word     lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	review   lipgloss.Style
	mastered lipgloss.Style
	muted    lipgloss.Style
	warn     lipgloss.Style
	err      lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:      out,
		word:     r.NewStyle().Bold(true),
		header:   r.NewStyle().Bold(true).Padding(0, 1),
		cell:     r.NewStyle().Padding(0, 1),
		review:   r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("214")),
		mastered: r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("42")),
		muted:    r.NewStyle().Foreground(lipgloss.Color("244")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("214")),
		err:      r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Selection prints the drawn words, one per line, followed by a table of
// the entries with their current fields. Rows are numbered from 1.
func (p *Printer) Selection(rows []drill.Row) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, p.muted.Render("Nothing to show."))
		return
	}
	for _, r := range rows {
		fmt.Fprintln(p.out, p.word.Render(r.Text))
	}
	fmt.Fprintln(p.out)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		e := r.Entry
		cells[i] = []string{strconv.Itoa(i + 1), e.Source, e.Target, e.Category, string(e.Status), strconv.Itoa(e.TimesShown)}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Source", "Target", "Category", "Status", "Shown").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			if col == 4 && row >= 0 && row < len(cells) {
				switch domain.Status(cells[row][4]) {
				case domain.StatusReview:
					return p.review
				case domain.StatusMastered:
					return p.mastered
				}
			}
			return p.cell
		})
	fmt.Fprintln(p.out, t.String())
}

// Summary prints per-category counts.
func (p *Printer) Summary(summary []store.CategorySummary) {
	if len(summary) == 0 {
		fmt.Fprintln(p.out, p.muted.Render("No categories loaded."))
		return
	}
	cells := make([][]string, len(summary))
	for i, s := range summary {
		cells[i] = []string{s.Category, strconv.Itoa(s.Total), strconv.Itoa(s.Review), strconv.Itoa(s.Mastered)}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Entries", "Review", "Mastered").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			return p.cell
		})
	fmt.Fprintln(p.out, t.String())
}

// Info prints a plain message.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warn prints a message for a condition the user should know about but
// that did not stop the command.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.warn.Render(fmt.Sprintf(format, args...)))
}

// Error prints err with a hint for the conditions a user can fix.
func (p *Printer) Error(err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrNoDataLoaded):
		msg = "No data loaded. Please open a file first."
	case errors.Is(err, domain.ErrNoSelection):
		msg += ". Pick a row number from the last round."
	}
	fmt.Fprintln(p.out, p.err.Render("Error: ")+msg)
}
