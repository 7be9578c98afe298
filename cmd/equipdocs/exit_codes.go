package main

import (
	"errors"
	"os"

	equipdocs "github.com/equiplab/equipdocs"
	"github.com/equiplab/equipdocs/internal/assets"
	"github.com/equiplab/equipdocs/internal/config"
	"github.com/equiplab/equipdocs/internal/dateutil"
)

// Exit codes for the equipdocs CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site generated (possibly with per-file diagnostics)
	ExitGeneral = 1 // General/unexpected error, or every record failed
	ExitUsage   = 2 // Invalid flags, config, templates, or validation
	ExitIO      = 3 // Input directory or file problems
	ExitBrowser = 4 // Browser/Chrome errors during PDF export
)

// errUsage marks command-line misuse.
var errUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, equipdocs.ErrBrowserConnect) ||
		errors.Is(err, equipdocs.ErrPageCreate) ||
		errors.Is(err, equipdocs.ErrPageLoad) ||
		errors.Is(err, equipdocs.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, equipdocs.ErrDocumentRead) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNotDirectory) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, equipdocs.ErrTemplateParse) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}
