// Package equipdocs generates a static documentation site from a directory
// of TOML equipment-record files.
//
// # Quick Start
//
// Create a service, build a page per source file, and render it:
//
//	svc := equipdocs.New()
//
//	page, err := svc.BuildPage("input/ds-v201.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	renderer, err := equipdocs.NewRenderer(assets.NewEmbeddedLoader())
//	html, err := renderer.RenderEquipment(page)
//	os.WriteFile("docs/ds-v201.html", html, 0644)
//
// # Pipeline
//
// Each source file goes through these stages:
//
//  1. TOML parsing into an ordered Document
//  2. Inline-comment scanning: "key = value # [unit] description" lines
//     become an Annotations map
//  3. Enrichment: annotated keys are wrapped as {value, unit, description};
//     the checks section is left untouched
//  4. Check parsing: each entry of the checks section is split into
//     {left, operator, right, full} on a fixed comparator precedence
//  5. Page assembly: title and index metadata derived from the info section
//
// Failures in a single file never abort a batch; the CLI collects per-file
// results and reports a summary.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := equipdocs.New(
//	    equipdocs.WithChecksSection("acceptance_criteria"),
//	    equipdocs.WithLogger(logger),
//	)
//
// # Custom Templates
//
// Override built-in templates and styles with an asset directory:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    ├── equipment.html
//	    └── index.html
//
// # PDF Datasheets
//
// Optional PDF export renders each generated page through headless Chrome
// (go-rod). Rod downloads a managed Chromium on first run; set
// ROD_BROWSER_BIN to use a pre-installed browser in containers.
package equipdocs
