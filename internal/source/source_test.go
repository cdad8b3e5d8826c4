package source

import (
	"path/filepath"
	"testing"
)

func TestLocalPath(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "HTTPS URL",
			url:      "https://github.com/someone/vocab.git",
			expected: filepath.Join("repos", "github.com", "someone", "vocab"),
		},
		{
			name:     "HTTPS URL without suffix",
			url:      "https://example.com/words",
			expected: filepath.Join("repos", "example.com", "words"),
		},
		{
			name:     "SCP-style SSH URL",
			url:      "git@github.com:someone/vocab.git",
			expected: filepath.Join("repos", "github.com", "someone", "vocab"),
		},
		{
			name:     "SSH URL with port",
			url:      "ssh://git@example.com:2222/team/vocab.git",
			expected: filepath.Join("repos", "example.com", "team", "vocab"),
		},
		{
			name:    "Not a URL",
			url:     "just-a-name",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LocalPath("repos", tc.url)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected an error, but got path %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("LocalPath() returned an unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Expected path '%s', but got '%s'", tc.expected, got)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("plain file", func(t *testing.T) {
		got, err := Resolve("", "repos", "words.csv")
		if err != nil {
			t.Fatalf("Resolve() returned an unexpected error: %v", err)
		}
		if got != "words.csv" {
			t.Errorf("Expected 'words.csv', but got '%s'", got)
		}
	})

	t.Run("no file", func(t *testing.T) {
		if _, err := Resolve("", "repos", ""); err == nil {
			t.Error("Expected an error when no file is given")
		}
	})

	t.Run("escaping the checkout", func(t *testing.T) {
		for _, f := range []string{"../words.csv", "/etc/words.csv"} {
			if _, err := Resolve("https://example.com/v.git", t.TempDir(), f); err == nil {
				t.Errorf("Expected an error for %s", f)
			}
		}
	})
}
