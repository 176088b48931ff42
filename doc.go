// Package readmegen regenerates a repository README from a markdown
// benchmark specification.
//
// # Quick Start
//
//	gen, err := readmegen.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := gen.Generate(readmegen.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	readmegen.Report(os.Stdout, res)
//
// # Pipeline
//
// A run is a single pass:
//
//  1. Read the source document (line endings normalized to \n)
//  2. Extract the table of contents and count numbered headings
//  3. Collect file statistics (size in KB, line count)
//  4. Render the README template with a UTC timestamp
//  5. Replace the output file, optionally writing an HTML preview
//
// Extraction is pattern matching only. A missing "## Table of Contents"
// block yields an empty string, never an error.
//
// # Configuration
//
//	gen, err := readmegen.NewGenerator(
//	    readmegen.WithTemplateFile("docs/README.tmpl"),
//	    readmegen.WithTimestampFormat("iso"),
//	)
//
// Templates use text/template and receive a [Metadata] value plus the
// "grouped" function, which formats integers with thousands separators.
package readmegen
