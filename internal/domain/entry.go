package domain

import "strings"

// Status is the drill state of an entry.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusReview   Status = "review"
	StatusMastered Status = "mastered"
)

// ParseStatus maps a stored cell value to a Status. Unknown or empty values
// are read as StatusNormal.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusReview:
		return StatusReview
	case StatusMastered:
		return StatusMastered
	default:
		return StatusNormal
	}
}

// DisplayMode selects which side of a pair is rendered.
type DisplayMode string

const (
	ModeSource DisplayMode = "source"
	ModeTarget DisplayMode = "target"
	ModeBoth   DisplayMode = "both"
)

// Separator joins both sides of a pair in ModeBoth.
const Separator = "  —  "

// ParseDisplayMode accepts the mode names as well as "deutsch" and
// "english". ok is false for anything else.
func ParseDisplayMode(s string) (DisplayMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source", "deutsch":
		return ModeSource, true
	case "target", "english":
		return ModeTarget, true
	case "both":
		return ModeBoth, true
	}
	return "", false
}

// Entry is one vocabulary row.
type Entry struct {
	ID         int
	Source     string
	Target     string
	Category   string
	Status     Status
	TimesShown int
}

// DisplayText renders the entry for the given mode.
func (e Entry) DisplayText(mode DisplayMode) string {
	switch mode {
	case ModeSource:
		return e.Source
	case ModeTarget:
		return e.Target
	default:
		return e.Source + Separator + e.Target
	}
}

// Eligible reports whether the entry may be drawn by a sampling round.
func (e Entry) Eligible() bool {
	return e.Status != StatusMastered
}
