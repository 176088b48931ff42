package readmegen

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/nbajpai-code/readmegen/internal/dateutil"
	"github.com/nbajpai-code/readmegen/internal/preview"
)

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds settings resolved in NewGenerator.
type generatorConfig struct {
	templatePath    string
	templateText    string
	timestampFormat string
}

// Generator runs the README pipeline.
// Create with NewGenerator; a Generator holds no per-run state.
type Generator struct {
	cfg      generatorConfig
	now      func() time.Time
	renderer *Renderer
	stamp    *dateutil.Layout
	preview  preview.Renderer
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithTemplate uses text instead of the embedded README template.
func WithTemplate(text string) Option {
	return func(g *Generator) {
		g.cfg.templateText = text
		g.cfg.templatePath = ""
	}
}

// WithTemplateFile loads the README template from path.
func WithTemplateFile(path string) Option {
	return func(g *Generator) {
		g.cfg.templatePath = path
		g.cfg.templateText = ""
	}
}

// WithTimestampFormat sets the timestamp format (dateutil tokens or preset).
// The default renders "2006-01-02 15:04:05 UTC".
func WithTimestampFormat(format string) Option {
	return func(g *Generator) {
		g.cfg.timestampFormat = format
	}
}

// WithPreview replaces the goldmark HTML renderer used for previews.
func WithPreview(r preview.Renderer) Option {
	return func(g *Generator) {
		g.preview = r
	}
}

// NewGenerator creates a Generator. Template and timestamp format errors
// surface here, before any file is touched.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{timestampFormat: dateutil.DefaultTimestampFormat},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	var err error
	switch {
	case g.cfg.templatePath != "":
		g.renderer, err = NewRendererFromFile(g.cfg.templatePath)
	case g.cfg.templateText != "":
		g.renderer, err = NewRenderer("README.md.tmpl", g.cfg.templateText)
	default:
		g.renderer = DefaultRenderer()
	}
	if err != nil {
		return nil, err
	}

	g.stamp, err = dateutil.Parse(g.cfg.timestampFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimestampFormat, err)
	}

	if g.preview == nil {
		g.preview = preview.NewGoldmarkRenderer()
	}

	return g, nil
}

// Generate reads opts.SourcePath, renders the README and replaces
// opts.OutputPath. Empty paths fall back to DefaultOptions.
//
// The source is read and measured before the output is opened, so a missing
// source leaves the previous README untouched.
func (g *Generator) Generate(opts Options) (*Result, error) {
	start := time.Now()
	opts = withDefaults(opts)

	if err := checkDistinctPaths(opts); err != nil {
		return nil, err
	}

	meta, err := g.Collect(opts.SourcePath)
	if err != nil {
		return nil, err
	}

	rendered, err := g.renderer.Render(meta)
	if err != nil {
		return nil, err
	}

	if err := WriteOutput(opts.OutputPath, rendered); err != nil {
		return nil, err
	}

	res := &Result{Metadata: meta, OutputPath: opts.OutputPath}

	if opts.PreviewPath != "" {
		if err := g.writePreview(opts.PreviewPath, opts.PreviewTitle, rendered); err != nil {
			return nil, err
		}
		res.PreviewPath = opts.PreviewPath
	}

	res.Duration = time.Since(start)
	return res, nil
}

// Collect gathers the template inputs for the source at path and stamps
// them with the current UTC time.
func (g *Generator) Collect(path string) (Metadata, error) {
	content, err := ReadSource(path)
	if err != nil {
		return Metadata{}, err
	}

	stats, err := CollectStats(path)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		TOC:        ExtractTOC(content),
		Counts:     CountSections(content),
		Stats:      stats,
		Timestamp:  g.stamp.Format(g.now().UTC()),
		SourceName: filepath.Base(path),
	}, nil
}

func (g *Generator) writePreview(path, title, markdown string) error {
	page, err := g.preview.ToHTML(markdown, title)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderPreview, err)
	}
	if err := writeFile(path, page); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePreview, err)
	}
	return nil
}

// checkDistinctPaths rejects runs where the output or preview would
// overwrite the source, or the preview would overwrite the README.
func checkDistinctPaths(opts Options) error {
	source := filepath.Clean(opts.SourcePath)
	output := filepath.Clean(opts.OutputPath)

	if source == output {
		return fmt.Errorf("%w: %s", ErrSameFile, opts.SourcePath)
	}
	if opts.PreviewPath == "" {
		return nil
	}
	if p := filepath.Clean(opts.PreviewPath); p == source || p == output {
		return fmt.Errorf("%w: preview %s", ErrSameFile, opts.PreviewPath)
	}
	return nil
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.SourcePath == "" {
		opts.SourcePath = def.SourcePath
	}
	if opts.OutputPath == "" {
		opts.OutputPath = def.OutputPath
	}
	return opts
}
