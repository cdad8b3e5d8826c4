// Package tabular reads and writes vocabulary sheets. The codec is chosen by
// file extension and a file is always written back in the format it was read.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conorfennell/wordrill/internal/domain"
)

// Codec reads and writes one file format.
type Codec interface {
	Read(path string) (*domain.Table, error)
	Write(path string, t *domain.Table) error
}

var codecs = map[string]Codec{
	".csv":     csvCodec{comma: ','},
	".tsv":     csvCodec{comma: '\t'},
	".xlsx":    xlsxCodec{},
	".xlsm":    xlsxCodec{},
	".db":      sqliteCodec{},
	".sqlite":  sqliteCodec{},
	".sqlite3": sqliteCodec{},
}

// Extensions lists the supported file extensions.
func Extensions() []string {
	return []string{".csv", ".tsv", ".xlsx", ".xlsm", ".db", ".sqlite", ".sqlite3"}
}

// CodecFor returns the codec for path's extension.
func CodecFor(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := codecs[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (use one of %s)", domain.ErrUnsupportedFormat, ext, strings.Join(Extensions(), ", "))
	}
	return c, nil
}

// Read loads the sheet stored at path. Short rows are padded to the header.
func Read(path string) (*domain.Table, error) {
	c, err := CodecFor(path)
	if err != nil {
		return nil, err
	}
	t, err := c.Read(path)
	if err != nil {
		return nil, err
	}
	pad(t)
	return t, nil
}

// Write overwrites the file at path with t. Any failure is reported as
// domain.ErrPersist.
func Write(path string, t *domain.Table) error {
	c, err := CodecFor(path)
	if err != nil {
		return err
	}
	if err := c.Write(path, t); err != nil {
		return fmt.Errorf("%w %s: %w", domain.ErrPersist, path, err)
	}
	return nil
}

func pad(t *domain.Table) {
	for i, r := range t.Rows {
		if len(r) < len(t.Header) {
			t.Rows[i] = append(r, make([]string, len(t.Header)-len(r))...)
		}
	}
}
