package md2epub

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// chapterRenderer converts transformed note markdown to the XHTML body of
// one chapter using goldmark (pure Go).
type chapterRenderer struct {
	md goldmark.Markdown
}

// newChapterRenderer creates a chapterRenderer with GFM extensions and,
// when enabled, chroma syntax highlighting using CSS classes so the
// stylesheet stays external to the chapter documents.
func newChapterRenderer(highlight bool) *chapterRenderer {
	exts := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchors for heading wikilinks and the TOC
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags for EPUB content documents
			// The Obsidian passes rewrite callouts, embeds, and wikilinks
			// into HTML blocks ahead of rendering; WithUnsafe lets those
			// blocks through.
			html.WithUnsafe(),
		),
	)
	return &chapterRenderer{md: md}
}

// render converts markdown to an XHTML fragment. Supports context
// cancellation via goroutine + select since goldmark doesn't take a context.
func (r *chapterRenderer) render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRenderChapter, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// highlightCSS generates the stylesheet for the named chroma style, for
// appending to the package's default CSS. Style names are validated by
// Options.Validate before this runs.
func highlightCSS(styleName string) (string, error) {
	style, ok := styles.Registry[styleName]
	if !ok {
		return "", fmt.Errorf("%w: unknown highlight style %q", ErrInvalidOptions, styleName)
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("generating highlight CSS: %w", err)
	}
	return buf.String(), nil
}
