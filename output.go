package readmegen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// WriteOutput replaces the file at path with content.
// The swap is atomic: readers see either the old file or the new one.
func WriteOutput(path, content string) error {
	if err := writeFile(path, content); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// writeFile keeps the mode of an existing file and uses outputPerm for new ones.
// A symlinked path is followed so the link survives and its target is replaced.
func writeFile(path, content string) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}

	_, statErr := os.Stat(path)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return err
	}

	// atomic.WriteFile creates new files with the temp file's 0600 mode
	if created {
		if err := os.Chmod(path, outputPerm); err != nil {
			return fmt.Errorf("setting file permissions: %w", err)
		}
	}
	return nil
}

// Report prints the run summary.
func Report(w io.Writer, res *Result) {
	m := res.Metadata
	fmt.Fprintf(w, "✅ %s updated successfully!\n", filepath.Base(res.OutputPath))
	fmt.Fprintf(w, "   - Main tasks: %d\n", m.Counts.Sections)
	fmt.Fprintf(w, "   - Subtasks: %d\n", m.Counts.Subsections)
	fmt.Fprintf(w, "   - File size: %s KB\n", m.Stats.SizeKB)
	fmt.Fprintf(w, "   - Timestamp: %s\n", m.Timestamp)
}
