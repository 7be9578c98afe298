package equipdocs

// EnrichDocument attaches annotations to every matching key of every section
// except the excluded ones. Excluded sections (typically the checks section)
// are skipped entirely so their raw values survive byte-for-byte for the
// formula parser. The document is mutated in place and returned.
//
// Enrichment is partial: keys without an annotation keep their raw value,
// and consumers must branch on Value.Enriched. It is also idempotent:
// a value that already carries metadata is never wrapped again.
func EnrichDocument(doc *Document, ann Annotations, exclude ...string) *Document {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	for _, section := range doc.Sections {
		if skip[section.Name] {
			continue
		}
		section.enrich(ann)
	}
	return doc
}

// enrich wraps every annotated key's value in place.
func (s *Section) enrich(ann Annotations) {
	for _, key := range s.Keys {
		v := s.Values[key]
		if v.Enriched {
			continue
		}
		if a, ok := ann[key]; ok {
			s.Values[key] = EnrichedValue(v.Data, a)
		}
	}
}

// EnsureParameters is the late-enrichment post-pass for the parameters
// section: after it runs, every key of that section carries an enriched
// value, using the annotation when one exists and empty unit/description
// otherwise. Parameters declared without a comment (e.g. as a bare type
// name) therefore still render uniformly. Missing sections are a no-op.
func EnsureParameters(doc *Document, ann Annotations, section string) {
	s, ok := doc.Section(section)
	if !ok {
		return
	}

	for _, key := range s.Keys {
		v := s.Values[key]
		if v.Enriched {
			continue
		}
		// Zero Annotation yields empty unit and description.
		s.Values[key] = EnrichedValue(v.Data, ann[key])
	}
}
