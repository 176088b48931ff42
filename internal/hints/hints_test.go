package hints_test

import (
	"strings"
	"testing"

	"github.com/nbajpai-code/readmegen/internal/hints"
)

func TestHintsFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		got      string
		contains string
	}{
		{"source not found", hints.ForSourceNotFound("LLM_Benchmarking_Tasks.md"), "--source"},
		{"source path echoed", hints.ForSourceNotFound("tasks.md"), "tasks.md"},
		{"output directory", hints.ForOutputDirectory(), "writable"},
		{"template fields", hints.ForTemplate(), ".Stats.SizeKB"},
		{"timestamp tokens", hints.ForTimestampFormat(), "HH mm ss"},
		{"timestamp presets", hints.ForTimestampFormat(), "rfc3339"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.got)
			}
			if !strings.Contains(tt.got, tt.contains) {
				t.Errorf("hint %q does not contain %q", tt.got, tt.contains)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		got := hints.ForConfigNotFound([]string{
			"readmegen.yaml",
			"readmegen.yml",
			"/home/u/.config/readmegen/readmegen.yaml",
		})
		if !strings.Contains(got, "or create /home/u/.config/readmegen/readmegen.yaml") {
			t.Errorf("ForConfigNotFound() = %q, want user config suggestion", got)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		got := hints.ForConfigNotFound([]string{"readmegen.yaml"})
		if strings.Contains(got, "or create") {
			t.Errorf("ForConfigNotFound() = %q, want no create suggestion", got)
		}
		if !strings.Contains(got, "--config") {
			t.Errorf("ForConfigNotFound() = %q, want --config suggestion", got)
		}
	})
}
