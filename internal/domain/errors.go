package domain

import "errors"

// Errors reported to the user. None of them end the process; callers match
// them with errors.Is.
var (
	// load/persist
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingColumns    = errors.New("missing required columns")
	ErrPersist           = errors.New("failed to save file")

	// session
	ErrNoDataLoaded = errors.New("no data loaded")
	ErrNoSelection  = errors.New("no selection")
	ErrUnknownEntry = errors.New("unknown entry")

	// input
	ErrInvalidNumericInput = errors.New("invalid number")
)
