package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkConverterToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	ctx := context.Background()

	t.Run("fragment output", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "# Maintenance\n\nReplace the suspension every *two* years.")
		if err != nil {
			t.Fatalf("ToHTML: %v", err)
		}
		if !strings.Contains(got, `<h1 id="maintenance">Maintenance</h1>`) {
			t.Errorf("missing heading with auto id:\n%s", got)
		}
		if !strings.Contains(got, "<em>two</em>") {
			t.Errorf("missing emphasis:\n%s", got)
		}
		if strings.Contains(got, "<html") || strings.Contains(got, "<body") {
			t.Error("output must be a fragment, not a full document")
		}
	})

	t.Run("gfm table", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "| a | b |\n|---|---|\n| 1 | 2 |")
		if err != nil {
			t.Fatalf("ToHTML: %v", err)
		}
		if !strings.Contains(got, "<table>") {
			t.Errorf("GFM table not rendered:\n%s", got)
		}
	})

	t.Run("code highlighting uses classes", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "```go\npackage main\n```")
		if err != nil {
			t.Fatalf("ToHTML: %v", err)
		}
		if !strings.Contains(got, `class="chroma"`) {
			t.Errorf("expected chroma classes, got:\n%s", got)
		}
		if strings.Contains(got, "style=\"color") {
			t.Error("inline styles present; colors belong to the stylesheet")
		}
	})

	t.Run("raw HTML stays escaped", func(t *testing.T) {
		got, err := conv.ToHTML(ctx, "<script>alert(1)</script>")
		if err != nil {
			t.Fatalf("ToHTML: %v", err)
		}
		if strings.Contains(got, "<script>") {
			t.Errorf("raw HTML passed through:\n%s", got)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := conv.ToHTML(cancelled, "# x"); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}
