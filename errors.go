package equipdocs

import "errors"

// Sentinel errors for library operations.
var (
	ErrDocumentRead  = errors.New("failed to read source file")
	ErrDocumentParse = errors.New("failed to parse source file")
	ErrCommentScan   = errors.New("failed to scan source comments")
	ErrTemplateParse = errors.New("template parsing failed")
	ErrRenderFailed  = errors.New("page rendering failed")
	ErrNotesRender   = errors.New("notes rendering failed")

	// PDF export errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
