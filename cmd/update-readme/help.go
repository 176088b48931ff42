package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: update-readme [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Regenerate README.md from the benchmark specification.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -s, --source <path>       Benchmark markdown (default LLM_Benchmarking_Tasks.md)")
	fmt.Fprintln(w, "  -o, --output <path>       README to overwrite (default README.md)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --template <path>     README template (text/template)")
	fmt.Fprintln(w, "  -t, --time-format <s>     Timestamp format, e.g. \"YYYY-MM-DD HH:mm:ss [UTC]\"")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets: default, iso, rfc3339, long")
	fmt.Fprintln(w, "      --html <path>         Also write an HTML preview")
	fmt.Fprintln(w, "      --html-title <s>      Preview page title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show paths and timing")
	fmt.Fprintln(w, "      --version             Print version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
