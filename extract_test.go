package readmegen_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nbajpai-code/readmegen"
)

// ---------------------------------------------------------------------------
// TestExtractTOC - Table of contents block
// ---------------------------------------------------------------------------

func TestExtractTOC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "block before first section",
			content: "# Title\n\n## Table of Contents\n\n- Item A\n\n## 1. Code\n",
			want:    "- Item A",
		},
		{
			name:    "multi-line block trimmed",
			content: "## Table of Contents\n\n  1. [Code](#1-code)\n   - [1.1 Gen](#11-gen)\n\n\n## 1. Code\n",
			want:    "1. [Code](#1-code)\n   - [1.1 Gen](#11-gen)",
		},
		{
			name:    "stops at first following heading",
			content: "## Table of Contents\n\n- A\n## 1\n- not toc\n## 2\n",
			want:    "- A",
		},
		{
			name:    "deeper heading also terminates",
			content: "## Table of Contents\n\n- A\n### 1.1\n",
			want:    "- A",
		},
		{
			name:    "no heading",
			content: "# Title\n\n## 1. Code\n",
			want:    "",
		},
		{
			name:    "no following heading",
			content: "## Table of Contents\n\n- A\n- B\n",
			want:    "",
		},
		{
			name:    "missing blank line after heading",
			content: "## Table of Contents\n- A\n## 1\n",
			want:    "",
		},
		{
			name:    "empty block",
			content: "## Table of Contents\n\n\n## 1\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := readmegen.ExtractTOC(tt.content); got != tt.want {
				t.Errorf("ExtractTOC() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCountSections - Numbered heading counts
// ---------------------------------------------------------------------------

func TestCountSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    readmegen.Counts
	}{
		{
			name:    "two categories three tasks",
			content: "## 1. Code\n### 1.1 Gen\n### 1.2 Fix\n## 2. Text\n### 2.1 Summary\n",
			want:    readmegen.Counts{Sections: 2, Subsections: 3},
		},
		{
			name:    "content after number ignored",
			content: "## 12abc\n### 3.4xyz\n",
			want:    readmegen.Counts{Sections: 1, Subsections: 1},
		},
		{
			name:    "numbers not checked for order",
			content: "## 5\n## 5\n## 1\n",
			want:    readmegen.Counts{Sections: 3},
		},
		{
			name:    "non-ASCII digits not counted",
			content: "## ١. Arabic-Indic\n### ١.٢ Task\n## ३ Devanagari\n",
			want:    readmegen.Counts{},
		},
		{
			name:    "line anchored",
			content: " ## 1\ntext ## 2\n  ### 1.1\n",
			want:    readmegen.Counts{},
		},
		{
			name:    "unnumbered headings",
			content: "## Table of Contents\n## Overview\n### Notes\n### 1 missing dot\n",
			want:    readmegen.Counts{},
		},
		{
			name:    "subsection not counted as section",
			content: "### 1.1\n#### 1.1.1\n",
			want:    readmegen.Counts{Subsections: 1},
		},
		{
			name:    "empty",
			content: "",
			want:    readmegen.Counts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := readmegen.CountSections(tt.content); got != tt.want {
				t.Errorf("CountSections() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadSource - Loading and line ending normalization
// ---------------------------------------------------------------------------

func TestReadSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.md")
	crlf := "## Table of Contents\r\n\r\n- Item A\r\n## 1\r\n### 1.1\r"
	if err := os.WriteFile(path, []byte(crlf), 0o644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	got, err := readmegen.ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource() unexpected error: %v", err)
	}
	if want := "## Table of Contents\n\n- Item A\n## 1\n### 1.1\n"; got != want {
		t.Errorf("ReadSource() = %q, want %q", got, want)
	}
	if toc := readmegen.ExtractTOC(got); toc != "- Item A" {
		t.Errorf("ExtractTOC(CRLF source) = %q, want %q", toc, "- Item A")
	}
}

func TestReadSource_Missing(t *testing.T) {
	t.Parallel()

	_, err := readmegen.ReadSource(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, readmegen.ErrReadSource) {
		t.Errorf("ReadSource() error = %v, want %v", err, readmegen.ErrReadSource)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadSource() error = %v, want wrapped %v", err, os.ErrNotExist)
	}
}
