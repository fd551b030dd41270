package obsidian

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Wikilink handling modes.
const (
	WikilinkStrip  = "strip"  // unresolved links degrade to plain text
	WikilinkStyled = "styled" // unresolved links keep a styled, dead span
)

// WikiLink is one parsed double-bracket reference.
type WikiLink struct {
	Target  string // note title or filename; empty for same-document links
	Heading string // optional #heading suffix
	Display string // optional pipe-delimited display text
	SameDoc bool   // true when only a heading was given
}

// DisplayText returns what remains visible regardless of resolution:
// the explicit display text when given, else a readable form of the target.
func (w WikiLink) DisplayText() string {
	if w.Display != "" {
		return w.Display
	}
	if w.SameDoc {
		return w.Heading
	}
	if w.Heading != "" {
		return w.Target + " > " + w.Heading
	}
	return w.Target
}

// wikilinkPattern matches [[target#heading|display]] with every part after
// target optional. Embeds (![[...]]) must be rewritten before this runs; the
// embed pass consumes them, so no exclusion prefix is needed here.
var wikilinkPattern = regexp.MustCompile(`\[\[([^\]|#]*)(?:#([^\]|]+))?(?:\|([^\]]+))?\]\]`)

// parseWikiLink decodes one regex match.
func parseWikiLink(m []string) WikiLink {
	target := strings.TrimSpace(m[1])
	heading := strings.TrimSpace(m[2])
	return WikiLink{
		Target:  target,
		Heading: heading,
		Display: strings.TrimSpace(m[3]),
		SameDoc: target == "" && heading != "",
	}
}

// ConvertWikilinks rewrites wikilinks against the note index. Resolution
// never fails the run: known targets become internal cross-document links,
// same-document headings become anchors, and everything else degrades per
// mode. Unresolved targets are reported through warn.
func ConvertWikilinks(content string, index *Index, mode string, warn func(string)) string {
	return wikilinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := wikilinkPattern.FindStringSubmatch(match)
		link := parseWikiLink(m)

		if link.SameDoc {
			return fmt.Sprintf(`<a href="#%s">%s</a>`,
				HeadingID(link.Heading), html.EscapeString(link.DisplayText()))
		}

		if link.Target == "" {
			// [[]] or [[|text]]: nothing to resolve, keep visible text.
			return html.EscapeString(link.DisplayText())
		}

		if ref, ok := index.Resolve(link.Target); ok {
			href := ref.Href
			if link.Heading != "" {
				href += "#" + HeadingID(link.Heading)
			}
			display := link.Display
			if display == "" {
				display = ref.Title
				if link.Heading != "" {
					display = ref.Title + " > " + link.Heading
				}
			}
			return fmt.Sprintf(`<a href="%s">%s</a>`, href, html.EscapeString(display))
		}

		if warn != nil {
			warn(fmt.Sprintf("unresolved wikilink target %q", link.Target))
		}
		if mode == WikilinkStyled {
			return fmt.Sprintf(`<span class="wikilink">%s</span>`,
				html.EscapeString(link.DisplayText()))
		}
		return html.EscapeString(link.DisplayText())
	})
}

// ExtractWikilinks returns the distinct non-empty targets referenced by the
// content, without headings or display text.
func ExtractWikilinks(content string) []string {
	seen := make(map[string]struct{})
	var targets []string
	for _, m := range wikilinkPattern.FindAllStringSubmatch(content, -1) {
		link := parseWikiLink(m)
		if link.Target == "" {
			continue
		}
		if _, ok := seen[link.Target]; ok {
			continue
		}
		seen[link.Target] = struct{}{}
		targets = append(targets, link.Target)
	}
	return targets
}
