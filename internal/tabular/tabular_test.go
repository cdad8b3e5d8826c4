package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func sampleTable() *domain.Table {
	return &domain.Table{
		Name:   "words",
		Header: []string{"Deutsch", "English", "Category", "TimesShown", "Status"},
		Rows: [][]string{
			{"Hund", "dog", "animals", "3", "review"},
			{"laufen", "to run, to walk", "verbs", "0", "normal"},
			{"Apfel", `the "apple"`, "food", "12", "mastered"},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		file string
	}{
		{name: "CSV", file: "words.csv"},
		{name: "TSV", file: "words.tsv"},
		{name: "Excel", file: "words.xlsx"},
		{name: "SQLite", file: "words.db"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			in := sampleTable()

			if err := Write(path, in); err != nil {
				t.Fatalf("Write() returned an unexpected error: %v", err)
			}
			out, err := Read(path)
			if err != nil {
				t.Fatalf("Read() returned an unexpected error: %v", err)
			}

			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("Read() after Write() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedHead []string
		expectedRows [][]string
	}{
		{
			name:         "Simple sheet",
			input:        "Deutsch,English,Category\nHund,dog,animals\n",
			expectedHead: []string{"Deutsch", "English", "Category"},
			expectedRows: [][]string{{"Hund", "dog", "animals"}},
		},
		{
			name:         "Byte order mark is stripped",
			input:        "\ufeffDeutsch,English,Category\nHund,dog,animals\n",
			expectedHead: []string{"Deutsch", "English", "Category"},
			expectedRows: [][]string{{"Hund", "dog", "animals"}},
		},
		{
			name:         "Short rows are padded and blank rows dropped",
			input:        "Deutsch,English,Category\nHund,dog\n,,\n",
			expectedHead: []string{"Deutsch", "English", "Category"},
			expectedRows: [][]string{{"Hund", "dog", ""}},
		},
		{
			name:         "Header only",
			input:        "Deutsch,English,Category\n",
			expectedHead: []string{"Deutsch", "English", "Category"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.csv")
			if err := os.WriteFile(path, []byte(tc.input), 0o644); err != nil {
				t.Fatal(err)
			}

			table, err := Read(path)
			if err != nil {
				t.Fatalf("Read() returned an unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expectedHead, table.Header); diff != "" {
				t.Errorf("Header mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.expectedRows, table.Rows); diff != "" {
				t.Errorf("Rows mismatch (-want +got):\n%s", diff)
			}
			if table.Name != "in" {
				t.Errorf("Expected sheet name 'in', but got '%s'", table.Name)
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	for _, file := range []string{"words.xls", "words.txt", "words"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), file)
			if _, err := Read(path); !errors.Is(err, domain.ErrUnsupportedFormat) {
				t.Errorf("Read() expected ErrUnsupportedFormat, but got %v", err)
			}
			if err := Write(path, sampleTable()); !errors.Is(err, domain.ErrUnsupportedFormat) {
				t.Errorf("Write() expected ErrUnsupportedFormat, but got %v", err)
			}
		})
	}
}

func TestWriteFailureIsPersistError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "words.csv")
	err := Write(path, sampleTable())
	if !errors.Is(err, domain.ErrPersist) {
		t.Errorf("Expected ErrPersist, but got %v", err)
	}
}

func TestReadMissingSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.db")
	if _, err := Read(path); err == nil {
		t.Fatal("Expected an error for a missing database file")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected Read() not to create %s", path)
	}
}
