package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	equipdocs "github.com/equiplab/equipdocs"
	"github.com/equiplab/equipdocs/internal/assets"
	"github.com/equiplab/equipdocs/internal/config"
	"github.com/equiplab/equipdocs/internal/dateutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"usage", errUsage, ExitUsage},
		{"wrapped usage", fmt.Errorf("%w: too many arguments", errUsage), ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"bad date format", dateutil.ErrInvalidDateFormat, ExitUsage},
		{"template parse", equipdocs.ErrTemplateParse, ExitUsage},
		{"style missing", assets.ErrStyleNotFound, ExitUsage},
		{"asset base path", assets.ErrInvalidBasePath, ExitUsage},
		{"path traversal", assets.ErrPathTraversal, ExitUsage},
		{"no input", ErrNoInput, ExitIO},
		{"not a directory", ErrNotDirectory, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"document read", equipdocs.ErrDocumentRead, ExitIO},
		{"file missing", os.ErrNotExist, ExitIO},
		{"wrapped file missing", fmt.Errorf("scanning input: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"browser connect", equipdocs.ErrBrowserConnect, ExitBrowser},
		{"page load", equipdocs.ErrPageLoad, ExitBrowser},
		{"pdf generation", equipdocs.ErrPDFGeneration, ExitBrowser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
