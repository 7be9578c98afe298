package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	equipdocs "github.com/equiplab/equipdocs"
	"github.com/equiplab/equipdocs/internal/dateutil"
	"github.com/equiplab/equipdocs/internal/fileutil"
)

// ErrWriteOutput indicates a generated file could not be written.
var ErrWriteOutput = errors.New("failed to write output file")

// BuildResult holds the outcome of generating one record page.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// pdfExporter abstracts PDF export for testability.
type pdfExporter interface {
	ExportFile(ctx context.Context, htmlPath string) ([]byte, error)
}

// Compile-time interface check.
var _ pdfExporter = (*equipdocs.PDFExporter)(nil)

// siteBuilder wires the pipeline, renderer, and output layout together.
type siteBuilder struct {
	env       *Environment
	service   *equipdocs.Service
	renderer  *equipdocs.Renderer
	exporter  pdfExporter // nil = no PDF export
	inputDir  string
	outputDir string
}

// prepare creates the output layout and writes the active stylesheet.
func (b *siteBuilder) prepare() error {
	dirs := []string{
		b.outputDir,
		filepath.Join(b.outputDir, "images"),
		filepath.Join(b.outputDir, "manuals"),
		filepath.Join(b.outputDir, "static"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, fileutil.DirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	stylePath := filepath.Join(b.outputDir, "static", "style.css")
	// #nosec G306 -- site files are meant to be readable
	if err := os.WriteFile(stylePath, []byte(b.renderer.Stylesheet()), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// buildAll processes every source strictly in order, one at a time. A
// failing record is captured in its result and never aborts the batch;
// the index lists every record whose page was written.
func (b *siteBuilder) buildAll(ctx context.Context, sources []string) ([]BuildResult, error) {
	if err := b.prepare(); err != nil {
		return nil, err
	}

	results := make([]BuildResult, 0, len(sources))
	var entries []equipdocs.IndexEntry

	for _, src := range sources {
		result, entry := b.buildOne(ctx, src)
		results = append(results, result)
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	if len(entries) > 0 {
		if err := b.writeIndex(entries); err != nil {
			return results, err
		}
	}
	return results, nil
}

// buildOne generates a single record page. The returned entry is non-nil
// iff the HTML page was written, even when a later PDF export failed.
func (b *siteBuilder) buildOne(ctx context.Context, src string) (BuildResult, *equipdocs.IndexEntry) {
	start := time.Now()
	result := BuildResult{InputPath: src}

	page, err := b.service.BuildPage(ctx, src)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result, nil
	}

	html, err := b.renderer.RenderEquipment(page)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result, nil
	}

	outPath := filepath.Join(b.outputDir, page.Slug+".html")
	// #nosec G306 -- site files are meant to be readable
	if err := os.WriteFile(outPath, html, fileutil.FilePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result, nil
	}
	result.OutputPath = outPath

	b.copyRecordAssets(page)

	if b.exporter != nil {
		if err := b.exportPDF(ctx, page.Slug, outPath); err != nil {
			result.Err = err
		}
	}

	result.Duration = time.Since(start)
	entry := page.Entry
	return result, &entry
}

// copyRecordAssets copies referenced images and the manual into the site.
// Missing or uncopyable assets are diagnostics, never record failures.
func (b *siteBuilder) copyRecordAssets(page *equipdocs.Page) {
	for _, image := range page.Images {
		b.copyAsset(page.Slug, "images", image)
	}
	if page.Manual != "" {
		b.copyAsset(page.Slug, "manuals", page.Manual)
	}
}

// copyAsset copies one named asset from <input>/<kind>/ to <output>/<kind>/.
// Names may contain subdirectories but must not escape the asset folder.
func (b *siteBuilder) copyAsset(slug, kind, name string) {
	if strings.Contains(name, "..") || filepath.IsAbs(name) {
		b.env.Logger.Warn("unsafe asset name", "record", slug, "asset", name)
		return
	}

	src := filepath.Join(b.inputDir, kind, name)
	if !fileutil.FileExists(src) {
		b.env.Logger.Warn("asset not found", "record", slug, "asset", src)
		return
	}

	if err := fileutil.CopyFile(src, filepath.Join(b.outputDir, kind, name)); err != nil {
		b.env.Logger.Warn("could not copy asset", "record", slug, "asset", name, "error", err)
	}
}

// exportPDF renders the written HTML page to a sibling PDF datasheet.
func (b *siteBuilder) exportPDF(ctx context.Context, slug, htmlPath string) error {
	pdf, err := b.exporter.ExportFile(ctx, htmlPath)
	if err != nil {
		return err
	}

	pdfPath := filepath.Join(b.outputDir, slug+".pdf")
	// #nosec G306 -- site files are meant to be readable
	if err := os.WriteFile(pdfPath, pdf, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// writeIndex renders and writes index.html for the successful records.
func (b *siteBuilder) writeIndex(entries []equipdocs.IndexEntry) error {
	stamp, err := dateutil.Stamp(b.env.Config.Site.DateFormat, b.env.Now())
	if err != nil {
		return err
	}

	html, err := b.renderer.RenderIndex(entries, stamp)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(b.outputDir, "index.html")
	// #nosec G306 -- site files are meant to be readable
	if err := os.WriteFile(indexPath, html, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed records.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed records.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs per-record results and a summary, returning the
// number of failures.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Generated %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
