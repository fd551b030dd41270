package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// bookFlags holds package metadata flags.
type bookFlags struct {
	title           string
	subtitle        string
	author          string
	language        string
	publisher       string
	copyrightYear   string
	copyrightHolder string
	cover           string
}

// optionFlags holds conversion pipeline flags.
type optionFlags struct {
	vaultRoot        string
	wikilinks        string
	highlightStyle   string
	noHighlight      bool
	noTOC            bool
	noOptimizeImages bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	tag     string
	book    bookFlags
	options optionFlags
}

// scanFlags holds all flags for the scan command.
type scanFlags struct {
	common commonFlags
	tag    string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-note details")
}

// addBookFlags adds package metadata flags to a FlagSet.
func addBookFlags(fs *flag.FlagSet, f *bookFlags) {
	fs.StringVar(&f.title, "title", "", "book title (\"\" = from first note's frontmatter)")
	fs.StringVar(&f.subtitle, "subtitle", "", "book subtitle")
	fs.StringVar(&f.author, "author", "", "book author (\"\" = from first note's frontmatter)")
	fs.StringVar(&f.language, "language", "", "BCP 47 language tag (default: en)")
	fs.StringVar(&f.publisher, "publisher", "", "publisher name")
	fs.StringVar(&f.copyrightYear, "copyright-year", "", "copyright year (default: current year)")
	fs.StringVar(&f.copyrightHolder, "copyright-holder", "", "copyright holder (default: author)")
	fs.StringVar(&f.cover, "cover", "", "cover image path, resolved like an embed")
}

// addOptionFlags adds pipeline option flags to a FlagSet.
func addOptionFlags(fs *flag.FlagSet, f *optionFlags) {
	fs.StringVar(&f.vaultRoot, "vault-root", "", "vault directory for embed resolution")
	fs.StringVar(&f.wikilinks, "wikilinks", "", "unresolved wikilink handling: strip, styled")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code blocks (default: github)")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	fs.BoolVar(&f.noTOC, "no-toc", false, "leave the table of contents out of the reading order")
	fs.BoolVar(&f.noOptimizeImages, "no-optimize-images", false, "embed images without downscaling")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .epub path")
	fs.StringVarP(&f.tag, "tag", "t", "", "when scanning a folder, only include notes with this tag")

	addCommonFlags(fs, &f.common)
	addBookFlags(fs, &f.book)
	addOptionFlags(fs, &f.options)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseScanFlags parses scan command flags and returns positional args.
func parseScanFlags(args []string, stderr io.Writer) (*scanFlags, []string, error) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &scanFlags{}

	fs.StringVarP(&f.tag, "tag", "t", "", "only list notes with this frontmatter tag")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printScanUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
