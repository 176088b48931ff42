// Command update-readme regenerates README.md from LLM_Benchmarking_Tasks.md.
//
// With no arguments it reads LLM_Benchmarking_Tasks.md and overwrites
// README.md in the working directory. See update-readme --help for flags.
package main

import "os"

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], DefaultEnv()))
}
