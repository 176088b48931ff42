package readmegen

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Precompiled patterns. All of them expect \n line endings.
var (
	// Text between the TOC heading and the next heading of level 2 or deeper.
	// A TOC that runs to end of file does not match.
	tocPattern = regexp.MustCompile(`(?s)## Table of Contents\n\n(.*?)\n##`)

	sectionPattern    = regexp.MustCompile(`(?m)^## \d+`)
	subsectionPattern = regexp.MustCompile(`(?m)^### \d+\.\d+`)

	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// ReadSource loads the whole source document and normalizes line endings.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the configured source
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	return NormalizeLineEndings(string(data)), nil
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ExtractTOC returns the trimmed table of contents block, or "" if absent.
func ExtractTOC(content string) string {
	m := tocPattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// CountSections counts numbered top-level and second-level headings.
// Numbers are not checked for order or uniqueness. Only ASCII digits
// count: \d in RE2 does not match other Unicode decimal digits.
func CountSections(content string) Counts {
	return Counts{
		Sections:    len(sectionPattern.FindAllStringIndex(content, -1)),
		Subsections: len(subsectionPattern.FindAllStringIndex(content, -1)),
	}
}
