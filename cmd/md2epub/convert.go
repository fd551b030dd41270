package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/log"

	md2epub "github.com/alnah/go-md2epub"
	"github.com/alnah/go-md2epub/internal/config"
	"github.com/alnah/go-md2epub/internal/fileutil"
	"github.com/alnah/go-md2epub/internal/hints"
	"github.com/alnah/go-md2epub/internal/logger"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadNote         = errors.New("failed to read note file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

const defaultOutputName = "book.epub"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	logg := newLogger(env, flags.common)

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return configLoadError(flags.common.config, err)
		}
		logg.ConfigLoaded(flags.common.config)
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	notes, err := collectNotes(positionalArgs, cfg.Scan.Tag, logg)
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(flags.output, cfg)
	opts := buildOptions(cfg)

	svc := md2epub.New(
		md2epub.WithNow(env.Now),
		md2epub.WithProgress(logg.Progress),
	)
	start := env.Now()
	logg.ConversionStarted(len(notes), outputPath)

	result, err := svc.Convert(ctx, md2epub.Input{
		Notes:      notes,
		OutputPath: outputPath,
		Book:       buildBook(cfg),
		Options:    opts,
	})
	if err != nil {
		return convertError(err)
	}

	for _, w := range result.Warnings {
		logg.NoteWarning(w.Note, warningWithHint(w.Message, opts.VaultRoot))
	}
	logg.ConversionCompleted(result.Chapters, result.Assets, len(result.Warnings), env.Now().Sub(start))

	fmt.Fprintf(env.Stdout, "Created %s\n", result.OutputPath)
	return nil
}

// configLoadError annotates a config failure with the locations searched.
func configLoadError(nameOrPath string, err error) error {
	if errors.Is(err, config.ErrConfigNotFound) {
		return fmt.Errorf("loading config: %w%s",
			err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
	}
	return fmt.Errorf("loading config: %w", err)
}

// convertError appends an actionable hint to failures the user can act on.
func convertError(err error) error {
	switch {
	case errors.Is(err, md2epub.ErrInvalidOptions) && strings.Contains(err.Error(), "highlight style"):
		return fmt.Errorf("%w%s", err, hints.ForUnknownStyle(styles.Names()))
	case errors.Is(err, md2epub.ErrWriteOutput):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}
	return err
}

// warningWithHint appends resolution hints to asset warnings.
func warningWithHint(message, vaultRoot string) string {
	switch {
	case strings.HasPrefix(message, "cover image not found"):
		return message + hints.ForMissingCover()
	case strings.HasPrefix(message, "missing embedded asset"):
		return message + hints.ForMissingImage(vaultRoot)
	}
	return message
}

// collectNotes resolves positional arguments to notes. A single directory
// argument is scanned; file arguments are read in the order given and any
// missing or non-markdown file is fatal.
func collectNotes(args []string, tag string, logg *logger.Logger) ([]md2epub.Note, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: pass note files or a folder", ErrNoInput)
	}

	if len(args) == 1 && fileutil.DirExists(args[0]) {
		scanned, err := discoverNotes(args[0], tag, logg)
		if err != nil {
			return nil, err
		}
		notes := make([]md2epub.Note, len(scanned))
		for i, s := range scanned {
			notes[i] = s.note
		}
		return notes, nil
	}

	notes := make([]md2epub.Note, 0, len(args))
	for _, path := range args {
		if !fileutil.IsMarkdownFile(path) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, path)
		}
		data, err := os.ReadFile(path) // #nosec G304 -- paths are user-provided inputs
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadNote, path, err)
		}
		notes = append(notes, md2epub.Note{Path: path, Content: string(data)})
	}
	return notes, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Book flags
	if flags.book.title != "" {
		cfg.Book.Title = flags.book.title
	}
	if flags.book.subtitle != "" {
		cfg.Book.Subtitle = flags.book.subtitle
	}
	if flags.book.author != "" {
		cfg.Book.Author = flags.book.author
	}
	if flags.book.language != "" {
		cfg.Book.Language = flags.book.language
	}
	if flags.book.publisher != "" {
		cfg.Book.Publisher = flags.book.publisher
	}
	if flags.book.copyrightYear != "" {
		cfg.Book.CopyrightYear = flags.book.copyrightYear
	}
	if flags.book.copyrightHolder != "" {
		cfg.Book.CopyrightHolder = flags.book.copyrightHolder
	}
	if flags.book.cover != "" {
		cfg.Book.Cover = flags.book.cover
	}

	// Pipeline flags
	if flags.options.vaultRoot != "" {
		cfg.Options.VaultRoot = flags.options.vaultRoot
	}
	if flags.options.wikilinks != "" {
		cfg.Options.Wikilinks = flags.options.wikilinks
	}
	if flags.options.highlightStyle != "" {
		cfg.Options.HighlightStyle = flags.options.highlightStyle
	}
	if flags.options.noHighlight {
		cfg.Options.Highlighting = boolPtr(false)
	}
	if flags.options.noTOC {
		cfg.Options.TOC = boolPtr(false)
	}
	if flags.options.noOptimizeImages {
		cfg.Options.OptimizeImages = boolPtr(false)
	}

	// Scan flags
	if flags.tag != "" {
		cfg.Scan.Tag = flags.tag
	}
}

// buildBook maps merged config to the library's Book metadata.
func buildBook(cfg *config.Config) md2epub.Book {
	return md2epub.Book{
		Title:           cfg.Book.Title,
		Subtitle:        cfg.Book.Subtitle,
		Author:          cfg.Book.Author,
		Language:        cfg.Book.Language,
		Publisher:       cfg.Book.Publisher,
		CopyrightYear:   cfg.Book.CopyrightYear,
		CopyrightHolder: cfg.Book.CopyrightHolder,
		CoverPath:       cfg.Book.Cover,
	}
}

// buildOptions maps merged config onto the library defaults.
func buildOptions(cfg *config.Config) md2epub.Options {
	opts := md2epub.DefaultOptions()
	opts.VaultRoot = cfg.Options.VaultRoot
	if cfg.Options.Wikilinks != "" {
		opts.WikilinkMode = strings.ToLower(cfg.Options.Wikilinks)
	}
	if cfg.Options.Highlighting != nil {
		opts.Highlighting = *cfg.Options.Highlighting
	}
	if cfg.Options.HighlightStyle != "" {
		opts.HighlightStyle = cfg.Options.HighlightStyle
	}
	if cfg.Options.TOC != nil {
		opts.IncludeTOC = *cfg.Options.TOC
	}
	if cfg.Options.OptimizeImages != nil {
		opts.OptimizeImages = *cfg.Options.OptimizeImages
	}
	return opts
}

// resolveOutputPath picks the output file: flag, then config default
// directory, then the working directory.
func resolveOutputPath(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, defaultOutputName)
	}
	return defaultOutputName
}

// newLogger builds the CLI logger honoring --quiet and --verbose.
func newLogger(env *Environment, common commonFlags) *logger.Logger {
	level := log.InfoLevel
	switch {
	case common.quiet:
		level = log.ErrorLevel
	case common.verbose:
		level = log.DebugLevel
	}
	return logger.New(env.Stderr, level)
}

func boolPtr(b bool) *bool { return &b }
