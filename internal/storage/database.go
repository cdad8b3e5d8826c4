package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/conorfennell/wordrill/internal/domain"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB represents a wrapper around the SQL database connection.
type DB struct {
	conn *sql.DB
}

// Open creates a new database connection and ensures the schema is up to date.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// ReadTable loads the vocabulary sheet. NULL cells are read as empty strings.
func (db *DB) ReadTable() (*domain.Table, error) {
	rows, err := db.conn.Query(`SELECT * FROM ` + quoteIdent(vocabularyTable) + ` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", vocabularyTable, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	t := &domain.Table{Name: db.sheetName(), Header: header}
	for rows.Next() {
		cells := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(t.Rows), err)
		}
		row := make([]string, len(header))
		for i, c := range cells {
			row[i] = c.String
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return t, nil
}

// WriteTable replaces the vocabulary sheet with t in a single transaction.
func (db *DB) WriteTable(t *domain.Table) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + quoteIdent(vocabularyTable)); err != nil {
		return fmt.Errorf("failed to drop %s: %w", vocabularyTable, err)
	}

	cols := make([]string, len(t.Header))
	marks := make([]string, len(t.Header))
	for i, h := range t.Header {
		cols[i] = quoteIdent(h) + " TEXT"
		marks[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(vocabularyTable), strings.Join(cols, ", "))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("failed to create %s: %w", vocabularyTable, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(vocabularyTable), strings.Join(marks, ", "))
	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		args := make([]any, len(t.Header))
		for j := range args {
			if j < len(row) {
				args[j] = row[j]
			} else {
				args[j] = ""
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	name := t.Name
	if name == "" {
		name = vocabularyTable
	}
	if _, err := tx.Exec(`DELETE FROM sheets`); err != nil {
		return fmt.Errorf("failed to clear sheets: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO sheets (name, updated_at) VALUES (?, ?)`, name, time.Now()); err != nil {
		return fmt.Errorf("failed to record sheet %s: %w", name, err)
	}

	return tx.Commit()
}

func (db *DB) sheetName() string {
	var name string
	if err := db.conn.QueryRow(`SELECT name FROM sheets LIMIT 1`).Scan(&name); err != nil {
		return vocabularyTable
	}
	return name
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
