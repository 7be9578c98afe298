package equipdocs

import (
	"fmt"
	"log/slog"
	"strings"
)

// Default section names used by equipment records.
const (
	DefaultChecksSection     = "additional_checks"
	DefaultParametersSection = "input_parameters"
	DefaultInfoSection       = "shaker"
)

// Default keys of the info section used to build titles and the index.
const (
	DefaultManufacturerKey = "manufacturer"
	DefaultModelKey        = "model"
	DefaultNominalForceKey = "nominal_force"
)

// Annotation holds the metadata recovered from one inline comment.
type Annotation struct {
	Unit        string
	Description string
}

// Annotations maps key identifiers to their comment metadata.
//
// The namespace is deliberately flat: a key reused in two sections shares
// one entry, and the last occurrence in the file wins. Equipment records
// use globally unique keys, and check annotations are looked up by bare
// identifier, so keying by (section, key) would break that lookup.
type Annotations map[string]Annotation

// Value is a single section entry: either a bare scalar as parsed from the
// source, or a scalar carrying unit/description metadata recovered from an
// inline comment. Consumers branch on Enriched instead of inspecting the
// dynamic shape of Data.
type Value struct {
	Data        any
	Unit        string
	Description string
	Enriched    bool
}

// RawValue wraps a bare scalar with no metadata attached.
func RawValue(data any) Value {
	return Value{Data: data}
}

// EnrichedValue wraps a scalar together with its annotation.
func EnrichedValue(data any, ann Annotation) Value {
	return Value{
		Data:        data,
		Unit:        ann.Unit,
		Description: ann.Description,
		Enriched:    true,
	}
}

// Display returns the value formatted for human output, with the unit
// appended when one is known.
func (v Value) Display() string {
	s := fmt.Sprint(v.Data)
	if v.Unit != "" {
		return s + " " + v.Unit
	}
	return s
}

// Section is a named group of key/value pairs in authoring order.
type Section struct {
	Name   string
	Keys   []string
	Values map[string]Value
}

// NewSection creates an empty section with the given name.
func NewSection(name string) *Section {
	return &Section{Name: name, Values: make(map[string]Value)}
}

// Get returns the value for key and whether it exists.
func (s *Section) Get(key string) (Value, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// Set stores a value, appending the key to the ordering on first insert.
func (s *Section) Set(key string, v Value) {
	if _, exists := s.Values[key]; !exists {
		s.Keys = append(s.Keys, key)
	}
	s.Values[key] = v
}

// Document is the ordered collection of sections parsed from one source file.
type Document struct {
	Path     string
	Sections []*Section

	byName map[string]*Section
}

// NewDocument creates an empty document for the given source path.
func NewDocument(path string) *Document {
	return &Document{Path: path, byName: make(map[string]*Section)}
}

// Section returns the named section and whether it exists.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.byName[name]
	return s, ok
}

// AddSection returns the named section, creating and appending it if absent.
func (d *Document) AddSection(name string) *Section {
	if s, ok := d.byName[name]; ok {
		return s
	}
	s := NewSection(name)
	d.Sections = append(d.Sections, s)
	d.byName[name] = s
	return s
}

// Check is a named comparison expression parsed from the checks section.
// Operator is empty when the expression contained no comparator; Left then
// equals Full and Right is empty, and renderers must treat the check as
// display-only.
type Check struct {
	Name        string
	Left        string
	Operator    string
	Right       string
	Full        string
	Unit        string
	Description string
}

// HasComparator reports whether the expression split into two operands.
func (c *Check) HasComparator() bool {
	return c.Operator != ""
}

// IndexEntry describes one record on the generated index page.
type IndexEntry struct {
	Filename     string
	Title        string
	Manufacturer string
	Model        string
	NominalForce string
}

// Page is the fully assembled result for one source file, handed to the
// renderer.
type Page struct {
	Title    string
	Slug     string // source filename without extension
	Document *Document
	Checks   []*Check
	Manual   string   // manual filename from the info section, if any
	Images   []string // image filenames referenced by sections
	Notes    string   // rendered notes fragment, empty when absent
	Entry    IndexEntry

	// ChecksSection is omitted from ordinary section rendering; its parsed
	// form renders as the checks block after the ChecksAfter section.
	ChecksSection string
	ChecksAfter   string
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	checksSection   string
	paramsSection   string
	infoSection     string
	manufacturerKey string
	modelKey        string
	nominalForceKey string
}

func defaultServiceConfig() serviceConfig {
	return serviceConfig{
		checksSection:   DefaultChecksSection,
		paramsSection:   DefaultParametersSection,
		infoSection:     DefaultInfoSection,
		manufacturerKey: DefaultManufacturerKey,
		modelKey:        DefaultModelKey,
		nominalForceKey: DefaultNominalForceKey,
	}
}

// WithChecksSection sets the section treated as named check expressions.
// Panics on an empty name (programmer error).
func WithChecksSection(name string) Option {
	if strings.TrimSpace(name) == "" {
		panic("equipdocs: WithChecksSection name must not be empty")
	}
	return func(s *Service) {
		s.cfg.checksSection = name
	}
}

// WithParametersSection sets the section whose keys are always enriched,
// synthesizing empty metadata when no comment exists.
func WithParametersSection(name string) Option {
	if strings.TrimSpace(name) == "" {
		panic("equipdocs: WithParametersSection name must not be empty")
	}
	return func(s *Service) {
		s.cfg.paramsSection = name
	}
}

// WithInfoSection sets the section that identifies the equipment record.
func WithInfoSection(name string) Option {
	if strings.TrimSpace(name) == "" {
		panic("equipdocs: WithInfoSection name must not be empty")
	}
	return func(s *Service) {
		s.cfg.infoSection = name
	}
}

// WithTitleKeys sets the info-section keys combined into the page title.
func WithTitleKeys(manufacturer, model string) Option {
	return func(s *Service) {
		if manufacturer != "" {
			s.cfg.manufacturerKey = manufacturer
		}
		if model != "" {
			s.cfg.modelKey = model
		}
	}
}

// WithNominalForceKey sets the info-section key shown in the index listing.
func WithNominalForceKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.cfg.nominalForceKey = key
		}
	}
}

// WithLogger sets the logger used for warn-and-continue diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
