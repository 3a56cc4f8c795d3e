package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UserWritableFilePerms represents the standard permissions for newly created files (rw-r--r--).
const UserWritableFilePerms os.FileMode = 0644

// ExpandPath expands a leading "~" or "~/" to the user's home directory.
// Other names starting with a tilde, like "~layout.xml", are left alone.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil // No home reference, return as-is.
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}

	// Replace the tilde with the home directory.
	return filepath.Join(home, path[1:]), nil
}

// ResolvePath expands a leading tilde and makes path absolute relative to cwd,
// not to the process's notion of the working directory. An empty path stays empty.
func ResolvePath(cwd, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(cwd, expanded), nil
}

// InvertMap takes a map[K]V and returns a map[V]K.
// It's a generic helper for creating reverse lookup maps for enums.
func InvertMap[K comparable, V comparable](m map[K]V) map[V]K {
	inv := make(map[V]K, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}
