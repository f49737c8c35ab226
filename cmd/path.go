package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolvePath expands environment variables and a leading tilde in a user-provided path.
// A blank input resolves to the empty string.
func resolvePath(input string) (string, error) {
	expanded := os.ExpandEnv(strings.TrimSpace(input))
	if expanded == "" {
		return "", nil
	}

	rest, ok := strings.CutPrefix(expanded, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != '\\') {
		return filepath.Clean(expanded), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimLeft(rest, `/\`)), nil
}
