package equipdocs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Fallback strings for records missing identifying fields.
const (
	unknownField      = "Unknown"
	missingForceValue = "N/A"
)

// Service orchestrates the per-file pipeline: parse, comment scan, enrich,
// check parsing, page assembly. It holds no state across files; every
// BuildPage call starts from zero accumulated metadata.
type Service struct {
	cfg    serviceConfig
	logger *slog.Logger
	notes  notesRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithChecksSection).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    defaultServiceConfig(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create notes renderer if not injected (e.g., by tests)
	if s.notes == nil {
		s.notes = newGoldmarkNotes()
	}

	return s
}

// BuildPage runs the full pipeline for one source file and returns the
// assembled page. Comment-scan and notes failures degrade to warnings with
// unenriched data; parse failures are returned so the batch loop can report
// the file and move on.
func (s *Service) BuildPage(ctx context.Context, path string) (*Page, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	ann, err := ScanAnnotationsFile(path)
	if err != nil {
		s.logger.Warn("could not scan source comments", "path", path, "error", err)
		ann = Annotations{}
	}

	// Checks stay raw so ParseFormula sees the original expression text.
	EnrichDocument(doc, ann, s.cfg.checksSection)

	checks := s.parseChecks(doc, ann)

	EnsureParameters(doc, ann, s.cfg.paramsSection)

	page := &Page{
		Slug:          sourceSlug(path),
		Document:      doc,
		Checks:        checks,
		ChecksSection: s.cfg.checksSection,
		ChecksAfter:   s.cfg.paramsSection,
	}
	s.describe(page)
	s.attachNotes(ctx, page, path)

	return page, nil
}

// parseChecks parses every entry of the checks section in authoring order
// and attaches unit/description looked up by the check's name.
func (s *Service) parseChecks(doc *Document, ann Annotations) []*Check {
	section, ok := doc.Section(s.cfg.checksSection)
	if !ok {
		return nil
	}

	checks := make([]*Check, 0, len(section.Keys))
	for _, name := range section.Keys {
		c := ParseFormula(section.Values[name])
		c.Name = name
		a := ann[name]
		c.Unit = a.Unit
		c.Description = a.Description
		checks = append(checks, c)
	}
	return checks
}

// describe derives the title, index entry, and asset references from the
// enriched document.
func (s *Service) describe(page *Page) {
	doc := page.Document

	manufacturer := unknownField
	model := unknownField
	force := missingForceValue

	if info, ok := doc.Section(s.cfg.infoSection); ok {
		manufacturer = scalarField(info, s.cfg.manufacturerKey, unknownField)
		model = scalarField(info, s.cfg.modelKey, unknownField)
		if v, ok := info.Get(s.cfg.nominalForceKey); ok {
			force = v.Display()
		}
		if v, ok := info.Get("manual"); ok {
			page.Manual = fmt.Sprint(v.Data)
		}
	} else {
		s.logger.Warn("info section missing", "path", doc.Path, "section", s.cfg.infoSection)
	}

	for _, section := range doc.Sections {
		if v, ok := section.Get("image"); ok {
			page.Images = append(page.Images, fmt.Sprint(v.Data))
		}
	}

	page.Title = manufacturer + " " + model
	page.Entry = IndexEntry{
		Filename:     page.Slug + ".html",
		Title:        page.Title,
		Manufacturer: manufacturer,
		Model:        model,
		NominalForce: force,
	}
}

// attachNotes renders the sibling markdown notes file when one exists.
// A render failure is a diagnostic, never a page failure.
func (s *Service) attachNotes(ctx context.Context, page *Page, path string) {
	fragment, err := s.notes.Render(ctx, notesPath(path))
	if err != nil {
		s.logger.Warn("could not render notes", "path", path, "error", err)
		return
	}
	page.Notes = fragment
}

// scalarField returns the unwrapped string form of a section entry, or the
// fallback when the key is absent.
func scalarField(s *Section, key, fallback string) string {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	return fmt.Sprint(v.Data)
}

// sourceSlug is the source filename without its extension.
func sourceSlug(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// notesPath is the sibling markdown file for a source path.
func notesPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".md"
}
