// Package export writes filtered transcripts to plain text files.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// DefaultPrefix is used when no filename prefix is configured.
const DefaultPrefix = "davinci_transcript"

const (
	timestampLayout = "2006-01-02_15-04-05"
	maxPrefixBytes  = 100
)

var (
	ErrNoContent = errors.New("no transcript content to export")
	ErrWrite     = errors.New("failed to export transcript")

	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)

// Filename builds <prefix>_<timestamp>_filtered_<N>speakers.txt when fewer than
// total speakers are active, and <prefix>_<timestamp>_full.txt otherwise.
func Filename(prefix string, at time.Time, active, total int) string {
	suffix := "_full"
	if active < total {
		suffix = fmt.Sprintf("_filtered_%dspeakers", active)
	}

	return fmt.Sprintf("%s_%s%s.txt", sanitizePrefix(prefix), at.Format(timestampLayout), suffix)
}

// Write saves content as filename inside outputDir and returns the written path.
// Existing files are overwritten.
func Write(fs afero.Fs, outputDir, filename, content string) (string, error) {
	if content == "" {
		return "", ErrNoContent
	}

	if err := fs.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create output directory: %s", ErrWrite, err)
	}

	filePath := filepath.Join(outputDir, filename)
	if err := afero.WriteFile(fs, filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("%w: failed to write file %s: %s", ErrWrite, filePath, err)
	}

	return filePath, nil
}

// sanitizePrefix removes invalid filename characters and falls back to DefaultPrefix.
func sanitizePrefix(prefix string) string {
	name := strings.TrimSpace(prefix)

	name = invalidFileChars.ReplaceAllString(name, "_")
	name = regexp.MustCompile(`_+`).ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if name == "" {
		name = DefaultPrefix
	}

	return truncate(name, maxPrefixBytes)
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	// Range yields rune start offsets, so cut always lands on a boundary.
	cut := 0
	for i := range s {
		if i > limit {
			break
		}
		cut = i
	}

	return s[:cut]
}
