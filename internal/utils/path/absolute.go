package pathutils

import (
	"path/filepath"
	"strings"
)

// AbsolutePath resolves candidatePath against the current working directory.
// Empty input stays empty; a path that cannot be resolved is returned cleaned.
func AbsolutePath(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return trimmedPath
	}

	absolutePath, resolveError := filepath.Abs(trimmedPath)
	if resolveError != nil {
		return filepath.Clean(trimmedPath)
	}
	return absolutePath
}

// ExecutablePath resolves executables given as relative paths, such as
// vendor/bin/drush, against the current working directory. Bare names are
// left for PATH lookup.
func ExecutablePath(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if !strings.ContainsAny(trimmedPath, `/\`) {
		return trimmedPath
	}
	return AbsolutePath(trimmedPath)
}
