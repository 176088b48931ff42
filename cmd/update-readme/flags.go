package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for argument handling.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	source     string
	output     string
	config     string
	template   string
	html       string
	htmlTitle  string
	timeFormat string
	quiet      bool
	verbose    bool
	version    bool
	help       bool
}

// parseFlags parses args (without the program name).
// Errors are returned, not printed; run owns the output.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("update-readme", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	// Input/Output
	fs.StringVarP(&f.source, "source", "s", "", "benchmark markdown file (default LLM_Benchmarking_Tasks.md)")
	fs.StringVarP(&f.output, "output", "o", "", "README file to overwrite (default README.md)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	// Rendering
	fs.StringVar(&f.template, "template", "", "README template file (default: embedded)")
	fs.StringVarP(&f.timeFormat, "time-format", "t", "", "timestamp format or preset (default \"YYYY-MM-DD HH:mm:ss [UTC]\")")
	fs.StringVar(&f.html, "html", "", "also write an HTML preview to this path")
	fs.StringVar(&f.htmlTitle, "html-title", "", "title of the HTML preview page")

	// Output control
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show paths and timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}
	if f.quiet && f.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	return f, nil
}
