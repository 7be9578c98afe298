package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// genFlags holds all flags for site generation.
type genFlags struct {
	input     string // positional: input directory
	output    string
	configRef string
	style     string
	assetPath string
	pdf       bool
	quiet     bool
	verbose   bool
	version   bool
	help      bool
}

// parseFlags parses command-line arguments into genFlags.
// args includes the program name at index 0.
func parseFlags(args []string) (*genFlags, error) {
	f := &genFlags{}

	fs := flag.NewFlagSet("equipdocs", flag.ContinueOnError)
	fs.SetOutput(discardWriter{}) // usage printed by help.go, not pflag

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.configRef, "config", "c", "", "config file name or path")
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template/style directory")
	fs.BoolVar(&f.pdf, "pdf", false, "also export a PDF datasheet per record")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress per-file output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		f.input = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: expected at most one input directory, got %d arguments", errUsage, fs.NArg())
	}

	return f, nil
}

// discardWriter silences pflag's own error output.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
