// Package obsidian rewrites Obsidian-specific markdown constructs (callouts,
// wikilinks, embeds) into markup a standard markdown renderer understands.
// Wikilink resolution needs the full note index, so callers must build an
// Index from every note before transforming any single one.
package obsidian

// Transformer rewrites one note body at a time against a shared, read-only
// index. Block-level callout detection runs before the inline passes so that
// wikilinks and embeds inside a callout body are still resolved.
type Transformer struct {
	index *Index
	mode  string // WikilinkStrip or WikilinkStyled
}

// NewTransformer creates a Transformer over a fully built index.
func NewTransformer(index *Index, mode string) *Transformer {
	if mode == "" {
		mode = WikilinkStrip
	}
	return &Transformer{index: index, mode: mode}
}

// Transform rewrites callouts, embeds, and wikilinks in body. The resolve
// callback maps an embed reference to a package-internal asset href; a false
// return degrades the embed to a placeholder. Non-fatal problems are
// collected into the returned warnings.
func (t *Transformer) Transform(body string, resolve func(ref string) (string, bool)) (string, []string) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	// Block structure first, inline passes after. Embeds must precede
	// wikilinks so the wikilink pattern never sees a ![[...]] form.
	body = ConvertCallouts(body)
	body = ConvertEmbeds(body, resolve, warn)
	body = ConvertWikilinks(body, t.index, t.mode, warn)

	return body, warnings
}
