package equipdocs

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadDocument parses a TOML equipment record into an ordered Document.
// Section and key order follow the order of appearance in the file, so
// pages render in authoring order. Values start raw; enrichment happens
// separately. Top-level keys outside any section are ignored: equipment
// records consist entirely of sections.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path) // #nosec G304 -- discovered source path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}
	defer f.Close()

	var raw map[string]any
	md, err := toml.NewDecoder(f).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentParse, path, err)
	}

	return documentFromKeys(path, raw, md.Keys()), nil
}

// documentFromKeys rebuilds the authoring order from the decoder's key list.
// Only two-level keys (section.key) become entries; deeper tables and
// top-level scalars are not part of the record shape.
func documentFromKeys(path string, raw map[string]any, keys []toml.Key) *Document {
	doc := NewDocument(path)

	for _, key := range keys {
		switch len(key) {
		case 1:
			if _, ok := raw[key[0]].(map[string]any); ok {
				doc.AddSection(key[0])
			}
		case 2:
			table, ok := raw[key[0]].(map[string]any)
			if !ok {
				continue
			}
			value, ok := table[key[1]]
			if !ok {
				continue
			}
			doc.AddSection(key[0]).Set(key[1], RawValue(value))
		}
	}
	return doc
}
