// Package config loads site-generation configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/equiplab/equipdocs/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for site generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Sections SectionsConfig `yaml:"sections"`
	Site     SiteConfig     `yaml:"site"`
	Assets   AssetsConfig   `yaml:"assets"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// InputConfig defines the source directory of equipment records.
type InputConfig struct {
	Dir string `yaml:"dir"` // directory of .toml records (default "input")
}

// OutputConfig defines the destination directory of the generated site.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default "docs"
}

// SectionsConfig names the sections with special pipeline roles.
type SectionsConfig struct {
	Checks     string `yaml:"checks"`     // named check expressions (default "additional_checks")
	Parameters string `yaml:"parameters"` // always-enriched parameters (default "input_parameters")
	Info       string `yaml:"info"`       // record identity (default "shaker")
}

// SiteConfig defines presentation options.
type SiteConfig struct {
	Style           string `yaml:"style"`           // style name in assets (empty = default)
	DateFormat      string `yaml:"dateFormat"`      // index footer stamp (dateutil tokens)
	ManufacturerKey string `yaml:"manufacturerKey"` // info key for titles (default "manufacturer")
	ModelKey        string `yaml:"modelKey"`        // info key for titles (default "model")
	NominalForceKey string `yaml:"nominalForceKey"` // info key for the index (default "nominal_force")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = use embedded assets
}

// PDFConfig defines optional PDF datasheet export.
type PDFConfig struct {
	Enabled        bool `yaml:"enabled"`
	TimeoutSeconds int  `yaml:"timeoutSeconds"` // per-page render bound (0 = default)
}

// DefaultConfig returns the configuration used when no file is supplied.
// Section names left empty here fall back to the library defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Dir: "input"},
		Output: OutputConfig{Dir: "docs"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it is treated as a file path.
// Otherwise it is treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills directory fields left empty by the file.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Input.Dir == "" {
		cfg.Input.Dir = defaults.Input.Dir
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaults.Output.Dir
	}
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/equipdocs/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "equipdocs", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
