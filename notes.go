package equipdocs

import (
	"context"
	"fmt"
	"os"

	"github.com/equiplab/equipdocs/internal/pipeline"
)

// notesRenderer abstracts markdown notes rendering to allow test injection.
type notesRenderer interface {
	// Render returns the HTML fragment for the notes file at path, or an
	// empty string when the file does not exist.
	Render(ctx context.Context, path string) (string, error)
}

// goldmarkNotes renders sibling markdown files with goldmark.
type goldmarkNotes struct {
	converter *pipeline.GoldmarkConverter
}

// Compile-time interface check.
var _ notesRenderer = (*goldmarkNotes)(nil)

func newGoldmarkNotes() *goldmarkNotes {
	return &goldmarkNotes{converter: pipeline.NewGoldmarkConverter()}
}

// Render reads and converts the notes file. A missing file is not an error:
// notes are optional per record.
func (n *goldmarkNotes) Render(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- sibling of discovered source
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrNotesRender, err)
	}

	fragment, err := n.converter.ToHTML(ctx, string(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotesRender, err)
	}
	return fragment, nil
}
