package main

import (
	"fmt"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/nbajpai-code/readmegen"
)

// run executes the command and returns the process exit code.
func run(args []string, env *Environment) int {
	f, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if f.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if f.version {
		fmt.Fprintf(env.Stdout, "update-readme %s\n", Version)
		return ExitSuccess
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		if f.verbose {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}))
	defer undo()

	cfg, err := resolveConfig(f)
	if err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err, f, nil))
		return exitCodeFor(err)
	}

	if f.verbose {
		fmt.Fprintf(env.Stderr, "Source: %s\n", cfg.Source)
		fmt.Fprintf(env.Stderr, "Output: %s\n", cfg.Output)
		if cfg.Template != "" {
			fmt.Fprintf(env.Stderr, "Template: %s\n", cfg.Template)
		}
		if cfg.Preview.HTML != "" {
			fmt.Fprintf(env.Stderr, "Preview: %s\n", cfg.Preview.HTML)
		}
	}

	gen, err := readmegen.NewGenerator(generatorOptions(cfg, env)...)
	if err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err, f, cfg))
		return exitCodeFor(err)
	}

	res, err := gen.Generate(runOptions(cfg))
	if err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err, f, cfg))
		return exitCodeFor(err)
	}

	if !f.quiet {
		readmegen.Report(env.Stdout, res)
	}
	if f.verbose {
		if res.PreviewPath != "" {
			fmt.Fprintf(env.Stderr, "Wrote preview %s\n", res.PreviewPath)
		}
		fmt.Fprintf(env.Stderr, "Done in %v\n", res.Duration.Round(time.Millisecond))
	}

	return ExitSuccess
}
