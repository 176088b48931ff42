package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nbajpai-code/readmegen/internal/dateutil"
	"github.com/nbajpai-code/readmegen/internal/fileutil"
	"github.com/nbajpai-code/readmegen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxTitleLength = 200  // HTML preview <title>
)

// Defaults matching the benchmark repository layout.
const (
	DefaultSource = "LLM_Benchmarking_Tasks.md"
	DefaultOutput = "README.md"
)

// appDir is the directory name under the user config directory.
const appDir = "readmegen"

// Config holds all configuration for README generation.
type Config struct {
	Source          string        `yaml:"source"`          // Benchmark markdown file
	Output          string        `yaml:"output"`          // README to overwrite
	Template        string        `yaml:"template"`        // Empty = embedded template
	TimestampFormat string        `yaml:"timestampFormat"` // dateutil tokens or preset name
	Preview         PreviewConfig `yaml:"preview"`
}

// PreviewConfig defines the optional HTML rendering of the generated README.
type PreviewConfig struct {
	HTML  string `yaml:"html"`  // Output path (empty = no preview)
	Title string `yaml:"title"` // <title> of the page (empty = "README")
}

// DefaultConfig returns the configuration used when no file is given.
// It reproduces the fixed paths the tool has always used.
func DefaultConfig() *Config {
	return &Config{
		Source:          DefaultSource,
		Output:          DefaultOutput,
		TimestampFormat: dateutil.DefaultTimestampFormat,
	}
}

// Validate checks field lengths, the timestamp format and that no output
// path overwrites another file the run touches.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"source", c.Source, MaxPathLength},
		{"output", c.Output, MaxPathLength},
		{"template", c.Template, MaxPathLength},
		{"timestampFormat", c.TimestampFormat, dateutil.MaxDateFormatLength},
		{"preview.html", c.Preview.HTML, MaxPathLength},
		{"preview.title", c.Preview.Title, MaxTitleLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.TimestampFormat != "" {
		if _, err := dateutil.Parse(c.TimestampFormat); err != nil {
			return fmt.Errorf("%w: timestampFormat: %w", ErrInvalidField, err)
		}
	}

	if c.Source != "" && samePath(c.Source, c.Output) {
		return fmt.Errorf("%w: output must differ from source (%s)", ErrInvalidField, c.Source)
	}
	if html := c.Preview.HTML; html != "" && (samePath(html, c.Source) || samePath(html, c.Output)) {
		return fmt.Errorf("%w: preview.html must differ from source and output (%s)", ErrInvalidField, html)
	}

	return nil
}

func samePath(a, b string) bool {
	return a != "" && b != "" && filepath.Clean(a) == filepath.Clean(b)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Merge overlays the non-empty fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Source != "" {
		c.Source = other.Source
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Template != "" {
		c.Template = other.Template
	}
	if other.TimestampFormat != "" {
		c.TimestampFormat = other.TimestampFormat
	}
	if other.Preview.HTML != "" {
		c.Preview.HTML = other.Preview.HTML
	}
	if other.Preview.Title != "" {
		c.Preview.Title = other.Preview.Title
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched for in SearchPaths order.
// Relative paths inside the file are resolved against the file's directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolveRelative(filepath.Dir(configPath))

	return &cfg, nil
}

// resolveRelative anchors relative paths at dir.
func (c *Config) resolveRelative(dir string) {
	if dir == "." || dir == "" {
		return
	}
	for _, p := range []*string{&c.Source, &c.Output, &c.Template, &c.Preview.HTML} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// SearchPaths lists the locations tried for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
