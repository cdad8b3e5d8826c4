// Package console is the interactive front end of a drill session. It reads
// one command per line and prints rounds and status changes.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/drill"
	"github.com/conorfennell/wordrill/internal/sampler"
)

const help = `Commands:
  open <file>                 load a vocabulary file
  show                        draw a round with the current settings
  list                        print the last round again
  mark review|mastered|clear <row>
                              change the status of a row of the last round
  quota                       print the category quotas
  quota <category>=<n>        entries to draw from one category
  quota *=<n>                 entries to draw from every category
  review <n>                  entries to draw from those marked for review
  count <n>                   entries to draw when every quota is 0
  mode source|target|both     what to display
  categories                  per-category counts
  help                        this text
  quit                        leave`

// Settings are the initial round parameters.
type Settings struct {
	DefaultQuota int
	Review       int
	Fallback     int
	Mode         domain.DisplayMode
}

// Console drives a session from line input.
type Console struct {
	session *drill.Session
	in      *bufio.Reader
	print   *Printer
	prompt  bool
	log     *slog.Logger

	settings  Settings
	overrides map[string]int
}

// New returns a console reading commands from in and writing to out. When
// prompt is set a "> " prompt is printed before each command.
func New(session *drill.Session, in io.Reader, out io.Writer, settings Settings, prompt bool, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{
		session:   session,
		in:        bufio.NewReader(in),
		print:     NewPrinter(out),
		prompt:    prompt,
		log:       log,
		settings:  settings,
		overrides: make(map[string]int),
	}
}

// Run processes commands until quit or end of input.
func (c *Console) Run() error {
	for {
		if c.prompt {
			fmt.Fprint(c.print.out, "> ")
		}
		line, err := c.in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if quit := c.Exec(line); quit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Request returns the round parameters currently in effect.
func (c *Console) Request() sampler.Request {
	quotas := c.session.Quotas(c.settings.DefaultQuota)
	for i, q := range quotas {
		if n, ok := c.overrides[q.Category]; ok {
			quotas[i].Count = n
		}
	}
	return sampler.Request{
		Quotas:   quotas,
		Review:   c.settings.Review,
		Mode:     c.settings.Mode,
		Fallback: c.settings.Fallback,
	}
}

// Exec runs one command line and reports whether the user asked to quit.
// Errors are printed, never returned: a failed command leaves the session
// as it was.
func (c *Console) Exec(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		c.print.Info(help)
	case "open":
		c.open(arg)
	case "show", "s":
		c.show()
	case "list":
		c.print.Selection(c.session.Selection())
	case "mark":
		c.mark(arg)
	case "quota":
		c.quota(arg)
	case "review":
		c.settings.Review = c.count("review", arg)
	case "count":
		c.settings.Fallback = c.count("count", arg)
	case "mode":
		mode, ok := domain.ParseDisplayMode(arg)
		if !ok {
			c.print.Warn("Unknown mode %q, use source, target or both.", arg)
			return false
		}
		c.settings.Mode = mode
	case "categories":
		if c.session.Store() == nil {
			c.print.Error(domain.ErrNoDataLoaded)
			return false
		}
		c.print.Summary(c.session.Store().Summary())
	default:
		c.print.Warn("Unknown command %q, type help for a list.", cmd)
	}
	return false
}

func (c *Console) open(path string) {
	if path == "" {
		c.print.Warn("Usage: open <file>")
		return
	}
	loaded, err := c.session.Open(path)
	if err != nil && !errors.Is(err, domain.ErrPersist) {
		c.print.Error(err)
		return
	}
	c.overrides = make(map[string]int)
	c.print.Info("Loaded %d entries from %d categories!", loaded.Entries, len(loaded.Categories))
	if err != nil {
		c.print.Error(err)
	}
}

func (c *Console) show() {
	rows, err := c.session.Show(c.Request())
	if err != nil {
		c.print.Error(err)
		return
	}
	c.print.Selection(rows)
}

func (c *Console) mark(arg string) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		c.print.Warn("Usage: mark review|mastered|clear <row>")
		return
	}
	row, err := sampler.ParseCount(fields[1])
	if err != nil {
		c.print.Error(err)
		return
	}
	id, err := c.session.Selected(row)
	if err != nil {
		c.print.Error(err)
		return
	}

	switch strings.ToLower(fields[0]) {
	case "review":
		err = c.session.MarkReview(id)
	case "mastered":
		err = c.session.MarkMastered(id)
	case "clear", "normal":
		err = c.session.ClearStatus(id)
	default:
		c.print.Warn("Unknown status %q, use review, mastered or clear.", fields[0])
		return
	}
	if err != nil {
		c.print.Error(err)
		return
	}
	c.print.Selection(c.session.Selection())
}

func (c *Console) quota(arg string) {
	if arg == "" {
		req := c.Request()
		if len(req.Quotas) == 0 {
			c.print.Info("No categories loaded.")
		}
		for _, q := range req.Quotas {
			c.print.Info("%-20s %d", q.Category, q.Count)
		}
		c.print.Info("review %d, count %d, mode %s", req.Review, req.Fallback, req.Mode)
		return
	}

	q, err := sampler.ParseQuota(arg)
	if err != nil && !errors.Is(err, domain.ErrInvalidNumericInput) {
		c.print.Warn("Usage: quota <category>=<n>")
		return
	}
	if err != nil {
		c.log.Warn("Invalid quota, using 0", "category", q.Category, "error", err)
		c.print.Warn("%v, using 0.", err)
	}

	if q.Category == "*" {
		c.settings.DefaultQuota = q.Count
		c.overrides = make(map[string]int)
		return
	}
	cats := c.session.Categories()
	i := sort.SearchStrings(cats, q.Category)
	if i == len(cats) || cats[i] != q.Category {
		c.print.Warn("Unknown category %q.", q.Category)
		return
	}
	c.overrides[q.Category] = q.Count
}

// count parses a numeric setting. Malformed input counts as 0.
func (c *Console) count(name, arg string) int {
	n, err := sampler.ParseCount(arg)
	if err != nil {
		c.log.Warn("Invalid number, using 0", "setting", name, "error", err)
		c.print.Warn("%v, using 0 for %s.", err, name)
	}
	return n
}
