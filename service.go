package md2epub

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/alnah/go-md2epub/internal/assets"
	"github.com/alnah/go-md2epub/internal/epub"
	"github.com/alnah/go-md2epub/internal/frontmatter"
	"github.com/alnah/go-md2epub/internal/obsidian"
)

// ProgressFunc receives pipeline progress: the stage name plus how many of
// the stage's units are done. Called synchronously from Convert.
type ProgressFunc func(stage string, done, total int)

// Option customizes a Service.
type Option func(*Service)

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Service) { s.progress = fn }
}

// WithNow overrides the clock used for the publication timestamp and
// copyright year defaults. Tests use this for stable output.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service orchestrates the notes-to-EPUB pipeline.
type Service struct {
	progress ProgressFunc
	now      func() time.Time
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		progress: func(string, int, int) {},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// chapter carries one note through the pipeline.
type chapter struct {
	note   Note
	matter frontmatter.Matter
	body   string // note content with frontmatter removed
	title  string
	href   string
	id     string
}

// Convert runs the full pipeline: index every note, transform and render
// each one, assemble the package, and write it to input.OutputPath.
// The context is checked between chapters for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	var warnings []Warning
	warnf := func(note, format string, args ...any) {
		warnings = append(warnings, Warning{Note: note, Message: fmt.Sprintf(format, args...)})
	}

	// Pass 1: parse frontmatter, derive titles, build the wikilink index
	// over all notes before transforming any single one.
	chapters := make([]chapter, len(input.Notes))
	index := obsidian.NewIndex()
	for i, note := range input.Notes {
		matter, body, err := frontmatter.Parse([]byte(note.Content))
		if err != nil {
			warnf(note.Path, "frontmatter ignored: %v", err)
		}

		ch := chapter{
			note:   note,
			matter: matter,
			body:   string(body),
			title:  deriveTitle(matter, string(body), note.Path),
			href:   fmt.Sprintf("chapter_%03d.xhtml", i+1),
			id:     fmt.Sprintf("chapter_%03d", i+1),
		}
		chapters[i] = ch

		ref := obsidian.ChapterRef{Href: ch.href, Title: ch.title}
		index.Add(ch.title, ref)
		index.Add(stem(note.Path), ref)
		for _, alias := range matter.Aliases {
			index.Add(alias, ref)
		}
		s.progress("indexing", i+1, len(chapters))
	}

	meta := s.buildMetadata(input.Book, chapters[0].matter)
	pkg := epub.New(meta)
	store := assets.NewStore(input.Options.VaultRoot, input.Options.OptimizeImages)
	transformer := obsidian.NewTransformer(index, input.Options.WikilinkMode)
	renderer := newChapterRenderer(input.Options.Highlighting)

	// Pass 2: transform and render each note against the full index.
	for i := range chapters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ch := &chapters[i]
		noteDir := filepath.Dir(ch.note.Path)

		resolve := func(ref string) (string, bool) {
			asset, ok := store.Add(ref, noteDir)
			if !ok {
				return "", false
			}
			return asset.Href, true
		}

		body := preprocessMarkdown(ch.body)
		body, noteWarnings := transformer.Transform(body, resolve)
		for _, msg := range noteWarnings {
			warnf(ch.note.Path, "%s", msg)
		}

		rendered, err := renderer.render(ctx, body)
		if err != nil {
			// render already classifies its failures; keep the chain intact
			// so cancellation stays visible to errors.Is.
			return nil, fmt.Errorf("%s: %w", ch.note.Path, err)
		}

		doc, err := epub.ChapterDocument(ch.title, rendered)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRenderChapter, ch.note.Path, err)
		}
		pkg.AddResource(epub.Resource{
			ID:        ch.id,
			Href:      ch.href,
			MediaType: "application/xhtml+xml",
			Data:      doc,
		})
		s.progress("rendering", i+1, len(chapters))
	}

	if err := s.assemble(pkg, meta, input, chapters, store, warnf); err != nil {
		return nil, err
	}

	s.progress("writing", 0, 1)
	if err := pkg.Write(input.OutputPath); err != nil {
		return nil, err
	}
	s.progress("writing", 1, 1)

	return &Result{
		OutputPath: input.OutputPath,
		Chapters:   len(chapters),
		Assets:     store.Len(),
		Warnings:   warnings,
	}, nil
}

// assemble adds the stylesheet, front matter pages, cover, and asset
// resources, then lays out the spine and navigation entries.
func (s *Service) assemble(pkg *epub.Package, meta epub.Metadata, input Input,
	chapters []chapter, store *assets.Store, warnf func(note, format string, args ...any)) error {

	css := epub.DefaultCSS
	if input.Options.Highlighting {
		hlCSS, err := highlightCSS(input.Options.HighlightStyle)
		if err != nil {
			return err
		}
		css += "\n" + hlCSS
	}
	pkg.AddResource(epub.Resource{
		ID:        "css",
		Href:      "style/default.css",
		MediaType: "text/css",
		Data:      []byte(css),
	})

	// The cover image resolves like any embed, against the vault root and
	// the first note's directory. A missing cover degrades to no cover.
	var coverPage []byte
	if input.Book.CoverPath != "" {
		noteDir := filepath.Dir(chapters[0].note.Path)
		if asset, ok := store.Add(input.Book.CoverPath, noteDir); ok {
			pkg.SetCover(asset.ID)
			doc, err := epub.CoverPageDocument(asset.Href)
			if err != nil {
				return fmt.Errorf("rendering cover page: %w", err)
			}
			coverPage = doc
			pkg.AddResource(epub.Resource{
				ID:        "coverpage",
				Href:      "coverpage.xhtml",
				MediaType: "application/xhtml+xml",
				Data:      doc,
			})
		} else {
			warnf("", "cover image not found: %s", input.Book.CoverPath)
		}
	}

	titleDoc, err := epub.TitlePageDocument(meta)
	if err != nil {
		return fmt.Errorf("rendering title page: %w", err)
	}
	pkg.AddResource(epub.Resource{
		ID:        "titlepage",
		Href:      "titlepage.xhtml",
		MediaType: "application/xhtml+xml",
		Data:      titleDoc,
	})

	copyrightDoc, err := epub.CopyrightPageDocument(meta)
	if err != nil {
		return fmt.Errorf("rendering copyright page: %w", err)
	}
	pkg.AddResource(epub.Resource{
		ID:        "copyright",
		Href:      "copyright.xhtml",
		MediaType: "application/xhtml+xml",
		Data:      copyrightDoc,
	})

	for _, asset := range store.Assets() {
		pkg.AddResource(epub.Resource{
			ID:        asset.ID,
			Href:      asset.Href,
			MediaType: asset.MediaType,
			Data:      asset.Data,
		})
	}

	// Reading order: cover, title, copyright, inline TOC, chapters.
	if coverPage != nil {
		pkg.AppendSpine("coverpage")
	}
	pkg.AppendSpine("titlepage")
	pkg.AppendSpine("copyright")
	if input.Options.IncludeTOC {
		pkg.AppendSpine("nav")
	}
	for _, ch := range chapters {
		pkg.AppendSpine(ch.id)
		pkg.AddNavEntry(ch.title, ch.href)
	}
	return nil
}

// buildMetadata fills package metadata from the book, falling back to the
// first note's frontmatter and then to generic defaults.
func (s *Service) buildMetadata(book Book, first frontmatter.Matter) epub.Metadata {
	meta := epub.Metadata{
		Identifier:      "md2epub-" + uuid.NewString()[:8],
		Title:           book.Title,
		Subtitle:        book.Subtitle,
		Author:          book.Author,
		Language:        book.Language,
		Publisher:       book.Publisher,
		CopyrightYear:   book.CopyrightYear,
		CopyrightHolder: book.CopyrightHolder,
		Date:            s.now().UTC(),
	}
	if meta.Title == "" {
		meta.Title = first.Title
	}
	if meta.Title == "" {
		meta.Title = "Untitled"
	}
	if meta.Author == "" {
		meta.Author = first.Author
	}
	if meta.Author == "" {
		meta.Author = "Unknown"
	}
	if meta.Language == "" {
		meta.Language = "en"
	}
	if meta.CopyrightYear == "" {
		meta.CopyrightYear = strconv.Itoa(meta.Date.Year())
	}
	if meta.CopyrightHolder == "" {
		meta.CopyrightHolder = meta.Author
	}
	return meta
}

func (s *Service) validateInput(input Input) error {
	if len(input.Notes) == 0 {
		return ErrNoNotes
	}
	if input.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	return input.Options.Validate()
}

var firstH1Pattern = regexp.MustCompile(`(?m)^#\s+(.+?)\s*$`)

// deriveTitle resolves a chapter title: frontmatter title, then the first
// level-1 heading, then the prettified filename stem.
func deriveTitle(matter frontmatter.Matter, body, path string) string {
	if matter.Title != "" {
		return matter.Title
	}
	if m := firstH1Pattern.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return prettifyStem(stem(path))
}

// stem returns the filename without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// prettifyStem turns "my-great_note" into "My Great Note".
func prettifyStem(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
