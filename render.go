package equipdocs

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/equiplab/equipdocs/internal/assets"
)

// Renderer turns assembled pages into HTML documents using templates from
// an asset loader. Templates are parsed once at construction.
type Renderer struct {
	equipment *template.Template
	index     *template.Template
	style     string
}

// NewRenderer loads and parses the equipment and index templates plus the
// named stylesheet. An empty style name selects the built-in default.
func NewRenderer(loader assets.AssetLoader, styleName string) (*Renderer, error) {
	if styleName == "" {
		styleName = assets.DefaultStyleName
	}

	eqSrc, err := loader.LoadTemplate(assets.EquipmentTemplate)
	if err != nil {
		return nil, err
	}
	ixSrc, err := loader.LoadTemplate(assets.IndexTemplate)
	if err != nil {
		return nil, err
	}
	style, err := loader.LoadStyle(styleName)
	if err != nil {
		return nil, err
	}

	equipment, err := template.New(assets.EquipmentTemplate).Parse(eqSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: equipment: %v", ErrTemplateParse, err)
	}
	index, err := template.New(assets.IndexTemplate).Parse(ixSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: index: %v", ErrTemplateParse, err)
	}

	return &Renderer{equipment: equipment, index: index, style: style}, nil
}

// Stylesheet returns the active CSS; the CLI writes it to static/style.css.
func (r *Renderer) Stylesheet() string {
	return r.style
}

// pageView is the equipment template's data contract.
type pageView struct {
	Title       string
	Sections    []sectionView
	Checks      []*Check
	ChecksAfter string
	Notes       template.HTML
	Manual      string
}

// sectionView is one rendered section: its rows in authoring order plus an
// optional image reference pulled out of the key/value table.
type sectionView struct {
	Name    string
	Heading string
	Image   string
	Rows    []rowView
}

type rowView struct {
	Key   string
	Value Value
}

// RenderEquipment renders one equipment page.
func (r *Renderer) RenderEquipment(page *Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.equipment.Execute(&buf, buildPageView(page)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, page.Slug, err)
	}
	return buf.Bytes(), nil
}

// indexView is the index template's data contract.
type indexView struct {
	Entries   []IndexEntry
	Generated string
}

// RenderIndex renders the index page. Entries are sorted by
// (manufacturer, model) before rendering.
func (r *Renderer) RenderIndex(entries []IndexEntry, generated string) ([]byte, error) {
	SortIndexEntries(entries)

	var buf bytes.Buffer
	if err := r.index.Execute(&buf, indexView{Entries: entries, Generated: generated}); err != nil {
		return nil, fmt.Errorf("%w: index: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// SortIndexEntries orders entries by manufacturer, then model.
func SortIndexEntries(entries []IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Manufacturer != entries[j].Manufacturer {
			return entries[i].Manufacturer < entries[j].Manufacturer
		}
		return entries[i].Model < entries[j].Model
	})
}

// buildPageView converts a Page into the template's view model. The checks
// section is withheld from ordinary rendering; the parsed checks block is
// injected after the configured section, falling back to the last section
// when that one is absent.
func buildPageView(page *Page) pageView {
	view := pageView{
		Title:       page.Title,
		Checks:      page.Checks,
		ChecksAfter: page.ChecksAfter,
		Notes:       template.HTML(page.Notes), // #nosec G203 -- goldmark output, raw HTML disabled
		Manual:      page.Manual,
	}

	for _, section := range page.Document.Sections {
		if section.Name == page.ChecksSection {
			continue
		}
		view.Sections = append(view.Sections, buildSectionView(section))
	}

	if len(view.Sections) > 0 && !hasSection(view.Sections, view.ChecksAfter) {
		view.ChecksAfter = view.Sections[len(view.Sections)-1].Name
	}

	return view
}

func buildSectionView(section *Section) sectionView {
	view := sectionView{
		Name:    section.Name,
		Heading: humanize(section.Name),
	}

	for _, key := range section.Keys {
		value := section.Values[key]
		if key == "image" {
			view.Image = fmt.Sprint(value.Data)
			continue
		}
		view.Rows = append(view.Rows, rowView{Key: key, Value: value})
	}
	return view
}

func hasSection(sections []sectionView, name string) bool {
	for _, s := range sections {
		if s.Name == name {
			return true
		}
	}
	return false
}

// humanize turns a section identifier into a heading:
// "input_parameters" becomes "Input Parameters".
func humanize(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
