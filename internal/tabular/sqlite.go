package tabular

import (
	"os"

	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/storage"
)

type sqliteCodec struct{}

func (sqliteCodec) Read(path string) (*domain.Table, error) {
	// Opening creates the file, so check first.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.ReadTable()
}

func (sqliteCodec) Write(path string, t *domain.Table) error {
	db, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.WriteTable(t)
}
