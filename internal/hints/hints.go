// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"sort"
	"strings"

	"github.com/nbajpai-code/readmegen/internal/dateutil"
)

// ForSourceNotFound returns a hint for a missing benchmark source file.
func ForSourceNotFound(path string) string {
	return format("run from the repository root or pass --source; looked for " + path)
}

// ForConfigNotFound suggests --config and the per-user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "readmegen/") || strings.Contains(p, `readmegen\`) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns a hint for output paths whose directory is missing or read-only.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplate returns a hint for template parse and execution errors.
func ForTemplate() string {
	return format("fields: .TOC .Counts.Sections .Counts.Subsections .Stats.SizeKB .Stats.Lines .Timestamp .SourceName; func: grouped")
}

// ForTimestampFormat lists the accepted timestamp tokens.
func ForTimestampFormat() string {
	presets := make([]string, 0, len(dateutil.DatePresets))
	for name := range dateutil.DatePresets {
		presets = append(presets, name)
	}
	sort.Strings(presets)
	return format("tokens: YYYY YY MMMM MMM MM M DD D HH mm ss, [text] for literals; presets: " + strings.Join(presets, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
