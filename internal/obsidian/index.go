package obsidian

import (
	"path/filepath"
	"strings"
)

// ChapterRef points a resolvable name at a chapter content document.
type ChapterRef struct {
	Href  string // content document href, e.g. "chapter_002.xhtml"
	Title string // resolved chapter title, used as default display text
}

// Index maps note titles, filename stems, and aliases to chapter refs.
// It is built once from every note before any wikilink is resolved, and is
// read-only afterwards.
type Index struct {
	refs map[string]ChapterRef
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{refs: make(map[string]ChapterRef)}
}

// Add registers a name for a chapter. The first registration of a name wins,
// so duplicate titles across notes resolve to the earliest chapter.
func (ix *Index) Add(name string, ref ChapterRef) {
	key := normalizeKey(name)
	if key == "" {
		return
	}
	if _, exists := ix.refs[key]; !exists {
		ix.refs[key] = ref
	}
}

// Resolve looks up a wikilink target. Matching is case-insensitive and
// ignores a trailing markdown extension.
func (ix *Index) Resolve(target string) (ChapterRef, bool) {
	ref, ok := ix.refs[normalizeKey(target)]
	return ref, ok
}

// Len reports the number of distinct resolvable names.
func (ix *Index) Len() int {
	return len(ix.refs)
}

// normalizeKey lowercases and strips a markdown extension so "Note B",
// "note b.md", and "NOTE B.MARKDOWN" all collide.
func normalizeKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	switch filepath.Ext(key) {
	case ".md", ".markdown":
		key = strings.TrimSuffix(key, filepath.Ext(key))
	}
	return key
}

// HeadingID derives the in-document anchor for a heading the same way the
// markdown renderer's auto heading IDs do: ASCII alphanumerics lowercased,
// spaces/hyphens/underscores collapsed to hyphens, everything else dropped.
func HeadingID(heading string) string {
	heading = strings.TrimSpace(heading)
	var b strings.Builder
	for i := 0; i < len(heading); i++ {
		c := heading[i]
		if c >= 0x80 {
			continue
		}
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		case c == ' ' || c == '-' || c == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "heading"
	}
	return b.String()
}
