package export

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"
)

func TestFilename(t *testing.T) {
	at := time.Date(2025, time.June, 9, 22, 48, 36, 0, time.UTC)

	tests := []struct {
		name     string
		prefix   string
		active   int
		total    int
		expected string
	}{
		{
			name:     "full transcript",
			prefix:   "davinci_transcript",
			active:   3,
			total:    3,
			expected: "davinci_transcript_2025-06-09_22-48-36_full.txt",
		},
		{
			name:     "filtered transcript",
			prefix:   "davinci_transcript",
			active:   1,
			total:    3,
			expected: "davinci_transcript_2025-06-09_22-48-36_filtered_1speakers.txt",
		},
		{
			name:     "no active speakers",
			prefix:   "interview",
			active:   0,
			total:    2,
			expected: "interview_2025-06-09_22-48-36_filtered_0speakers.txt",
		},
		{
			name:     "sanitizes prefix",
			prefix:   "Episode: 1/2?",
			active:   2,
			total:    2,
			expected: "Episode_ 1_2_2025-06-09_22-48-36_full.txt",
		},
		{
			name:     "long multibyte prefix is cut on a rune boundary",
			prefix:   "a" + strings.Repeat("\u00e9", 60),
			active:   2,
			total:    2,
			expected: "a" + strings.Repeat("\u00e9", 49) + "_2025-06-09_22-48-36_full.txt",
		},
		{
			name:     "empty prefix uses default",
			prefix:   "  ",
			active:   2,
			total:    2,
			expected: "davinci_transcript_2025-06-09_22-48-36_full.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actual := Filename(tt.prefix, at, tt.active, tt.total)
			if actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{name: "short input", input: "interview", limit: 100, expected: "interview"},
		{name: "ascii", input: strings.Repeat("x", 120), limit: 100, expected: strings.Repeat("x", 100)},
		{name: "two-byte runes fit exactly", input: strings.Repeat("\u00e9", 60), limit: 100, expected: strings.Repeat("\u00e9", 50)},
		{name: "rune straddling the limit is dropped", input: "ab" + strings.Repeat("\u20ac", 40), limit: 100, expected: "ab" + strings.Repeat("\u20ac", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actual := truncate(tt.input, tt.limit)
			if actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}

			if !utf8.ValidString(actual) {
				t.Errorf("expected valid UTF-8, got %q", actual)
			}

			if len(actual) > tt.limit {
				t.Errorf("expected at most %d bytes, got %d", tt.limit, len(actual))
			}
		})
	}
}

func TestWrite(t *testing.T) {
	t.Run("writes content to the output directory", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		outputDir := "/test-output"

		path, err := Write(fs, outputDir, "out_full.txt", "[00:00:01:00 - 00:00:02:00]\nA\nx")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if path != filepath.Join(outputDir, "out_full.txt") {
			t.Errorf("unexpected path %q", path)
		}

		exists, err := afero.DirExists(fs, outputDir)
		if err != nil {
			t.Fatalf("failed to check directory: %v", err)
		}
		if !exists {
			t.Error("expected output directory to be created")
		}

		content, err := afero.ReadFile(fs, path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}

		if string(content) != "[00:00:01:00 - 00:00:02:00]\nA\nx" {
			t.Errorf("unexpected content %q", content)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		if _, err := Write(fs, "/out", "same.txt", "first"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		path, err := Write(fs, "/out", "same.txt", "second")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		content, _ := afero.ReadFile(fs, path)
		if string(content) != "second" {
			t.Errorf("expected overwritten content, got %q", content)
		}
	})

	t.Run("refuses empty content", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()

		_, err := Write(fs, "/out", "empty.txt", "")
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("expected error %v, got %v", ErrNoContent, err)
		}

		exists, _ := afero.Exists(fs, "/out/empty.txt")
		if exists {
			t.Error("expected no file to be written")
		}
	})

	t.Run("returns error on read-only filesystem", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		_, err := Write(fs, "/out", "x.txt", "content")
		if !errors.Is(err, ErrWrite) {
			t.Errorf("expected error %v, got %v", ErrWrite, err)
		}
	})
}
