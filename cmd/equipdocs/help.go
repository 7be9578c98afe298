package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: equipdocs [flags] [input-dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a static documentation site from TOML equipment records.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input-dir    Directory of .toml records (default from config, else \"input\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default \"docs\")")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --style <name>        Stylesheet name (default \"default\")")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom template/style directory")
	fmt.Fprintln(w, "      --pdf                 Also export a PDF datasheet per record")
	fmt.Fprintln(w, "  -q, --quiet               Suppress per-record output")
	fmt.Fprintln(w, "  -v, --verbose             Verbose diagnostics")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Print this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Record layout:")
	fmt.Fprintln(w, "  input/")
	fmt.Fprintln(w, "  ├── ds-v201.toml          Equipment record")
	fmt.Fprintln(w, "  ├── ds-v201.md            Optional markdown notes")
	fmt.Fprintln(w, "  ├── images/               Referenced by image = \"...\" keys")
	fmt.Fprintln(w, "  └── manuals/              Referenced by manual = \"...\" keys")
}
