package equipdocs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// assignmentLine matches "key = value # comment" on one physical line. The
// lazy value match stops at the first '#', so everything after it is the
// comment. Comments on their own line, or before the '=', never match.
var assignmentLine = regexp.MustCompile(`^\s*(\w+)\s*=\s*(.+?)\s*#\s*(.+)`)

// unitPrefix matches a leading "[unit]" token in a comment.
var unitPrefix = regexp.MustCompile(`^\[(.+?)\]\s*(.*)`)

// maxLineSize bounds a single source line during scanning (1MB).
const maxLineSize = 1 << 20

// ScanAnnotations reads source text line by line and collects unit and
// description metadata from inline comments of the form
//
//	key = value  # [unit] description
//	key = value  # description
//
// Keys map to their last annotation in the input: the namespace is flat, so
// a key repeated across sections keeps only the final comment. Keys without
// an inline comment never appear in the result.
func ScanAnnotations(r io.Reader) (Annotations, error) {
	ann := make(Annotations)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		m := assignmentLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		key := m[1]
		comment := strings.TrimSpace(m[3])

		if um := unitPrefix.FindStringSubmatch(comment); um != nil {
			ann[key] = Annotation{
				Unit:        um[1],
				Description: strings.TrimSpace(um[2]),
			}
		} else {
			ann[key] = Annotation{Description: comment}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommentScan, err)
	}
	return ann, nil
}

// ScanAnnotationsFile scans a source file for inline-comment metadata.
// Callers that want the batch to proceed on failure should log the error
// and substitute an empty Annotations; Service.BuildPage does exactly that.
func ScanAnnotationsFile(path string) (Annotations, error) {
	f, err := os.Open(path) // #nosec G304 -- discovered source path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommentScan, err)
	}
	defer f.Close()

	return ScanAnnotations(f)
}
