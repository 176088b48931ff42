package readmegen

import (
	"os"
	"time"
)

// Default paths, relative to the working directory.
const (
	DefaultSourcePath = "LLM_Benchmarking_Tasks.md"
	DefaultOutputPath = "README.md"
)

// outputPerm is applied to files this package creates.
const outputPerm os.FileMode = 0o644

// Counts holds the number of numbered headings in the source.
type Counts struct {
	Sections    int // lines matching "## <int>"
	Subsections int // lines matching "### <int>.<int>"
}

// FileStats describes the source file on disk.
type FileStats struct {
	Bytes  int64
	SizeKB string // Bytes/1024 with one decimal digit
	Lines  int
}

// Metadata is everything the README template receives.
type Metadata struct {
	TOC        string
	Counts     Counts
	Stats      FileStats
	Timestamp  string
	SourceName string // base name of the source, used for links
}

// Options names the files of a run.
type Options struct {
	SourcePath   string
	OutputPath   string
	PreviewPath  string // empty = no HTML preview
	PreviewTitle string
}

// DefaultOptions returns the fixed layout of the benchmark repository.
func DefaultOptions() Options {
	return Options{
		SourcePath: DefaultSourcePath,
		OutputPath: DefaultOutputPath,
	}
}

// Result describes a completed run.
type Result struct {
	Metadata    Metadata
	OutputPath  string
	PreviewPath string // empty when no preview was written
	Duration    time.Duration
}
