package main

import (
	"errors"
	"os"

	"github.com/nbajpai-code/readmegen"
	"github.com/nbajpai-code/readmegen/internal/config"
	"github.com/nbajpai-code/readmegen/internal/dateutil"
	"github.com/nbajpai-code/readmegen/internal/fileutil"
	"github.com/nbajpai-code/readmegen/internal/hints"
)

// resolveConfig merges defaults, the optional config file, and flags, in
// increasing order of precedence.
func resolveConfig(f *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.config != "" {
		fileCfg, err := config.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	cfg.Merge(&config.Config{
		Source:          f.source,
		Output:          f.output,
		Template:        f.template,
		TimestampFormat: f.timeFormat,
		Preview: config.PreviewConfig{
			HTML:  f.html,
			Title: f.htmlTitle,
		},
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// generatorOptions translates cfg into library options.
func generatorOptions(cfg *config.Config, env *Environment) []readmegen.Option {
	opts := []readmegen.Option{
		readmegen.WithClock(env.Now),
		readmegen.WithTimestampFormat(cfg.TimestampFormat),
	}
	if cfg.Template != "" {
		opts = append(opts, readmegen.WithTemplateFile(cfg.Template))
	}
	return opts
}

// runOptions translates cfg into the paths of a run.
func runOptions(cfg *config.Config) readmegen.Options {
	return readmegen.Options{
		SourcePath:   cfg.Source,
		OutputPath:   cfg.Output,
		PreviewPath:  cfg.Preview.HTML,
		PreviewTitle: cfg.Preview.Title,
	}
}

// hintFor returns an actionable hint for err, or "".
// cfg may be nil when the failure happened while resolving it.
func hintFor(err error, f *cliFlags, cfg *config.Config) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if f != nil && !fileutil.IsFilePath(f.config) {
			return hints.ForConfigNotFound(config.SearchPaths(f.config))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, dateutil.ErrInvalidDateFormat):
		return hints.ForTimestampFormat()
	case errors.Is(err, readmegen.ErrTemplateParse), errors.Is(err, readmegen.ErrTemplateRender):
		return hints.ForTemplate()
	case cfg == nil:
		return ""
	case errors.Is(err, readmegen.ErrReadSource) && errors.Is(err, os.ErrNotExist):
		return hints.ForSourceNotFound(cfg.Source)
	case errors.Is(err, readmegen.ErrWriteOutput):
		return outputHint(cfg.Output, err)
	case errors.Is(err, readmegen.ErrWritePreview):
		return outputHint(cfg.Preview.HTML, err)
	}
	return ""
}

func outputHint(path string, err error) string {
	if !fileutil.ParentDirExists(path) || errors.Is(err, os.ErrPermission) {
		return hints.ForOutputDirectory()
	}
	return ""
}
