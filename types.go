package md2epub

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/alnah/go-md2epub/internal/obsidian"
)

// Wikilink handling modes for unresolved targets.
const (
	WikilinkModeStrip  = obsidian.WikilinkStrip  // degrade to plain display text (default)
	WikilinkModeStyled = obsidian.WikilinkStyled // keep a styled, non-resolving span
)

// Note is one input file, read by the caller. Notes are consumed in the
// order given; that order is the chapter order.
type Note struct {
	Path    string
	Content string
}

// Book holds package-level metadata. Zero values are filled from the first
// note's frontmatter or generic defaults during conversion.
type Book struct {
	Title           string
	Subtitle        string
	Author          string
	Language        string // BCP 47 tag, defaults to "en"
	Publisher       string
	CopyrightYear   string
	CopyrightHolder string
	CoverPath       string // path to a cover image, resolved like any asset
}

// Options controls the conversion pipeline.
type Options struct {
	VaultRoot      string // base dir for embed/cover resolution; empty = note dirs only
	WikilinkMode   string // WikilinkModeStrip or WikilinkModeStyled
	Highlighting   bool
	HighlightStyle string // chroma style name
	IncludeTOC     bool
	OptimizeImages bool
}

// DefaultOptions returns the documented defaults: strip unresolved
// wikilinks, highlight code with the github style, include a table of
// contents, optimize images.
func DefaultOptions() Options {
	return Options{
		WikilinkMode:   WikilinkModeStrip,
		Highlighting:   true,
		HighlightStyle: "github",
		IncludeTOC:     true,
		OptimizeImages: true,
	}
}

// Validate checks the options. Errors wrap ErrInvalidOptions so callers can
// classify them as usage mistakes.
func (o Options) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.WikilinkMode,
			validation.Required,
			validation.In(WikilinkModeStrip, WikilinkModeStyled)),
		validation.Field(&o.HighlightStyle,
			validation.When(o.Highlighting, validation.Required, validation.By(knownHighlightStyle))),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// knownHighlightStyle checks the name against the chroma style registry.
func knownHighlightStyle(value any) error {
	name, _ := value.(string)
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("unknown highlight style %q", name)
	}
	return nil
}

// Input contains everything one conversion run needs.
type Input struct {
	Notes      []Note
	OutputPath string
	Book       Book
	Options    Options
}

// Warning records one recoverable problem: the run continued with a
// documented fallback.
type Warning struct {
	Note    string // source path of the affected note, empty for run-level warnings
	Message string
}

func (w Warning) String() string {
	if w.Note == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Note, w.Message)
}

// Result summarizes a completed conversion.
type Result struct {
	OutputPath string
	Chapters   int
	Assets     int
	Warnings   []Warning
}
