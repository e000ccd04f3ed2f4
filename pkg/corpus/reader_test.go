package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadNames(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{"Single line", "Marco Luca Paolo", []string{"Marco", "Luca", "Paolo"}},
		{"Mixed whitespace", "  Ana\tAnna\n\nAnya  \r\n", []string{"Ana", "Anna", "Anya"}},
		{"Empty", "", nil},
		{"Only whitespace", " \n\t ", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadNames(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("ReadNames() returned an unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ReadNames() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	input := "Tom\r\n\r\nAnn Marie\n   \n  Lee  \nFox"
	got, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines() returned an unexpected error: %v", err)
	}
	want := []string{"Tom", "Ann Marie", "Lee", "Fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines() = %q, want %q", got, want)
	}
}

func TestReadNamesLineTooLong(t *testing.T) {
	input := strings.Repeat("a", maxLineLength+1)
	if _, err := ReadNames(strings.NewReader(input)); !errors.Is(err, ErrCorpusAccess) {
		t.Errorf("expected ErrCorpusAccess for an oversized token, got %v", err)
	}
}

func TestLoadFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("Tom Lee\nAnn Fox\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	t.Run("LoadNames splits on whitespace", func(t *testing.T) {
		got, err := LoadNames(path)
		if err != nil {
			t.Fatalf("LoadNames() failed: %v", err)
		}
		want := []string{"Tom", "Lee", "Ann", "Fox"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("LoadNames() = %q, want %q", got, want)
		}
	})

	t.Run("LoadLines keeps whole lines", func(t *testing.T) {
		got, err := LoadLines(path)
		if err != nil {
			t.Fatalf("LoadLines() failed: %v", err)
		}
		want := []string{"Tom Lee", "Ann Fox"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("LoadLines() = %q, want %q", got, want)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.txt")
		if _, err := LoadNames(missing); !errors.Is(err, ErrCorpusAccess) {
			t.Errorf("expected ErrCorpusAccess, got %v", err)
		}
		if _, err := LoadLines(missing); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected the underlying os.ErrNotExist to be preserved, got %v", err)
		}
	})
}
