package main

import (
	"context"
	"fmt"
	"time"

	equipdocs "github.com/equiplab/equipdocs"
	"github.com/equiplab/equipdocs/internal/assets"
	"github.com/equiplab/equipdocs/internal/config"
)

// run executes the CLI with the given arguments and environment.
// Returns an error only for whole-run failures; per-record failures are
// reported and absorbed unless every record failed.
func run(args []string, env *Environment) error {
	flags, err := parseFlags(args)
	if err != nil {
		printUsage(env.Stderr)
		return err
	}

	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "equipdocs %s\n", Version)
		return nil
	}

	if flags.configRef != "" {
		cfg, err := config.LoadConfig(flags.configRef)
		if err != nil {
			return err
		}
		env.Config = cfg
	}
	cfg := env.Config

	env.Logger = newLogger(env.Stderr, flags.verbose)

	inputDir := cfg.Input.Dir
	if flags.input != "" {
		inputDir = flags.input
	}
	outputDir := cfg.Output.Dir
	if flags.output != "" {
		outputDir = flags.output
	}
	style := cfg.Site.Style
	if flags.style != "" {
		style = flags.style
	}
	assetPath := cfg.Assets.BasePath
	if flags.assetPath != "" {
		assetPath = flags.assetPath
	}

	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return err
	}

	renderer, err := equipdocs.NewRenderer(resolver, style)
	if err != nil {
		return err
	}

	service := equipdocs.New(serviceOptions(cfg, env)...)

	sources, err := discoverSources(inputDir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintf(env.Stderr, "no equipment records found in %s\n", inputDir)
		return nil
	}

	builder := &siteBuilder{
		env:       env,
		service:   service,
		renderer:  renderer,
		inputDir:  inputDir,
		outputDir: outputDir,
	}

	if flags.pdf || cfg.PDF.Enabled {
		exporter := equipdocs.NewPDFExporter(time.Duration(cfg.PDF.TimeoutSeconds) * time.Second)
		defer func() { _ = exporter.Close() }()
		builder.exporter = exporter
	}

	results, buildErr := builder.buildAll(context.Background(), sources)
	failed := printResults(results, flags.quiet, flags.verbose, env)
	if buildErr != nil {
		return buildErr
	}

	// Partial failure keeps exit 0: the batch degrades instead of aborting.
	if failed > 0 && failed == len(results) {
		return fmt.Errorf("all %d records failed", failed)
	}
	return nil
}

// serviceOptions maps config to library options; empty fields keep defaults.
func serviceOptions(cfg *config.Config, env *Environment) []equipdocs.Option {
	opts := []equipdocs.Option{equipdocs.WithLogger(env.Logger)}

	if cfg.Sections.Checks != "" {
		opts = append(opts, equipdocs.WithChecksSection(cfg.Sections.Checks))
	}
	if cfg.Sections.Parameters != "" {
		opts = append(opts, equipdocs.WithParametersSection(cfg.Sections.Parameters))
	}
	if cfg.Sections.Info != "" {
		opts = append(opts, equipdocs.WithInfoSection(cfg.Sections.Info))
	}

	opts = append(opts, equipdocs.WithTitleKeys(cfg.Site.ManufacturerKey, cfg.Site.ModelKey))
	if cfg.Site.NominalForceKey != "" {
		opts = append(opts, equipdocs.WithNominalForceKey(cfg.Site.NominalForceKey))
	}
	return opts
}
