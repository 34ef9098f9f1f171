// Package fileutil provides small file and path helpers.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsBareName returns true if s carries no path separators, i.e. it is safe
// to join under a directory without escaping it.
func IsBareName(s string) bool {
	return !strings.ContainsAny(s, "/\\")
}
