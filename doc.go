// Package md2epub converts a set of Obsidian-flavored markdown notes into a
// single EPUB 3 publication.
//
// # Quick Start
//
// Read your notes, build an Input, and convert:
//
//	svc := md2epub.New()
//	result, err := svc.Convert(ctx, md2epub.Input{
//	    Notes: []md2epub.Note{
//	        {Path: "vault/intro.md", Content: intro},
//	        {Path: "vault/chapter-one.md", Content: chapterOne},
//	    },
//	    OutputPath: "book.epub",
//	    Book:       md2epub.Book{Title: "My Book"},
//	    Options:    md2epub.DefaultOptions(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range result.Warnings {
//	    log.Println(w)
//	}
//
// Note order is chapter order. Book metadata left empty is filled from the
// first note's frontmatter where possible.
//
// # Conversion Pipeline
//
// The conversion runs in two passes over the notes:
//
//  1. Index: frontmatter extraction, chapter title derivation, and a
//     corpus-wide wikilink index.
//  2. Render: Obsidian rewriting (callouts, embeds, wikilinks), markdown
//     preprocessing, goldmark rendering, and chapter document assembly.
//
// Afterwards the package is assembled (front matter pages, stylesheet,
// navigation documents, deduplicated image assets) and written atomically
// to the output path.
//
// # Configuration
//
// Conversion behavior is controlled per run via Input.Options; see Options
// and DefaultOptions. Service-level behavior uses functional options:
//
//	svc := md2epub.New(
//	    md2epub.WithProgress(func(stage string, done, total int) { ... }),
//	)
//
// # Error Handling
//
// Fatal problems return sentinel errors (ErrNoNotes, ErrInvalidOptions,
// ErrRenderChapter, ErrPackageIntegrity, ErrWriteOutput) wrapped with
// context. Recoverable problems (unresolved wikilinks, missing images,
// malformed frontmatter) degrade with documented fallbacks and are reported
// as Result.Warnings.
package md2epub
