// Package fileutil provides file and path helpers shared by the CLI and config.
package fileutil

import (
	"os"
	"path/filepath"
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

// ParentDirExists reports whether the directory that would contain path exists.
// A bare file name resolves to the working directory.
func ParentDirExists(path string) bool {
	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
// Examples:
//   - "readmegen" -> false (name)
//   - "./readmegen.yaml" -> true
//   - "/etc/readmegen.yaml" -> true
//   - "C:\cfg\readmegen.yaml" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
