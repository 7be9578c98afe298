package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for source discovery.
var (
	ErrNoInput      = errors.New("no input directory specified")
	ErrNotDirectory = errors.New("input is not a directory")
)

// discoverSources returns the .toml files directly under dir, sorted by
// filename so batch output ordering is deterministic. Subdirectories are
// not descended into: records live flat in the input directory, next to
// the images/ and manuals/ asset folders.
func discoverSources(dir string) ([]string, error) {
	if dir == "" {
		return nil, ErrNoInput
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".toml") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	// ReadDir already sorts by filename; keep the guarantee explicit.
	sort.Strings(files)
	return files, nil
}
