package equipdocs

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTempFile writes content under t.TempDir and returns the file path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
