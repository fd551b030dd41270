package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2epub/internal/fileutil"
	"github.com/alnah/go-md2epub/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits so a hostile config cannot bloat package metadata.
const (
	MaxTitleLength     = 200  // Book title
	MaxSubtitleLength  = 200  // Book subtitle
	MaxNameLength      = 100  // Author, publisher, copyright holder
	MaxLanguageLength  = 35   // BCP 47 tag upper bound
	MaxYearLength      = 10   // "2026", "2024-2026"
	MaxPathLength      = 2048 // Cover image, vault root
	MaxStyleNameLength = 50   // Chroma style name
	MaxTagLength       = 100  // Scan tag
)

// Config holds all configuration for book generation.
type Config struct {
	Book    BookConfig    `yaml:"book"`
	Output  OutputConfig  `yaml:"output"`
	Options OptionsConfig `yaml:"options"`
	Scan    ScanConfig    `yaml:"scan"`
}

// BookConfig defines package metadata. Flags override these values, and
// empty values fall back to the first note's frontmatter.
type BookConfig struct {
	Title           string `yaml:"title"`
	Subtitle        string `yaml:"subtitle"`
	Author          string `yaml:"author"`
	Language        string `yaml:"language"`
	Publisher       string `yaml:"publisher"`
	CopyrightYear   string `yaml:"copyrightYear"`
	CopyrightHolder string `yaml:"copyrightHolder"`
	Cover           string `yaml:"cover"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = working directory)
}

// OptionsConfig defines conversion pipeline options. Pointer fields
// distinguish "unset" from an explicit false so flags keep precedence.
type OptionsConfig struct {
	VaultRoot      string `yaml:"vaultRoot"`
	Wikilinks      string `yaml:"wikilinks"` // "strip" or "styled"
	Highlighting   *bool  `yaml:"highlighting"`
	HighlightStyle string `yaml:"highlightStyle"`
	TOC            *bool  `yaml:"toc"`
	OptimizeImages *bool  `yaml:"optimizeImages"`
}

// ScanConfig defines folder scan options.
type ScanConfig struct {
	Tag string `yaml:"tag"` // Only include notes carrying this frontmatter tag (empty = all)
}

// Validate checks field lengths and enum values. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"book.title", c.Book.Title, MaxTitleLength},
		{"book.subtitle", c.Book.Subtitle, MaxSubtitleLength},
		{"book.author", c.Book.Author, MaxNameLength},
		{"book.language", c.Book.Language, MaxLanguageLength},
		{"book.publisher", c.Book.Publisher, MaxNameLength},
		{"book.copyrightYear", c.Book.CopyrightYear, MaxYearLength},
		{"book.copyrightHolder", c.Book.CopyrightHolder, MaxNameLength},
		{"book.cover", c.Book.Cover, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"options.vaultRoot", c.Options.VaultRoot, MaxPathLength},
		{"options.highlightStyle", c.Options.HighlightStyle, MaxStyleNameLength},
		{"scan.tag", c.Scan.Tag, MaxTagLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Options.Wikilinks != "" {
		switch strings.ToLower(c.Options.Wikilinks) {
		case "strip", "styled":
			// valid
		default:
			return fmt.Errorf("options.wikilinks: invalid value %q (must be strip or styled)", c.Options.Wikilinks)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration. Empty values defer to
// flag defaults and frontmatter fallbacks.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns every location LoadConfig would try for a config
// name, in search order. A name that is already a file path searches only
// itself. Callers use this for error hints.
func SearchPaths(nameOrPath string) []string {
	if fileutil.IsFilePath(nameOrPath) {
		return []string{nameOrPath}
	}

	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	// Current directory first (both extensions)
	for _, ext := range extensions {
		paths = append(paths, nameOrPath+ext)
	}

	// Then the user config directory
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2epub", nameOrPath+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2epub/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, path := range tried {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
