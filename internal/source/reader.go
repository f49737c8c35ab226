// Package source reads transcript exports from disk or standard input.
package source

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var (
	ErrFileRead = errors.New("failed to read transcript file")
	ErrDecode   = errors.New("transcript is not valid UTF-8")
)

// Read loads the transcript at path from fs, or from stdin when path is Stdin.
func Read(fs afero.Fs, path string, stdin io.Reader) (string, error) {
	if path == Stdin {
		return ReadFrom(stdin)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileRead, err)
	}

	return decode(data)
}

// ReadFrom loads a transcript from r.
func ReadFrom(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileRead, err)
	}

	return decode(data)
}

// decode validates UTF-8 and strips a leading byte order mark.
func decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecode
	}

	return strings.TrimPrefix(string(data), "\uFEFF"), nil
}
