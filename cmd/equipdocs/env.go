package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/equiplab/equipdocs/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, logging, and configuration.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *config.Config // Loaded once, shared across the pipeline
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: newLogger(os.Stderr, false),
		Config: config.DefaultConfig(),
	}
}

// newLogger builds the diagnostic logger. Verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
