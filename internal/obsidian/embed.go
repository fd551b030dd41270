package obsidian

import (
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Embed is one ![[...]] reference.
type Embed struct {
	Target string // asset path, relative or vault-relative
	Size   string // optional |size spec: "300", "300x200", or alt text
}

// IsImage reports whether the target has a known image extension.
func (e Embed) IsImage() bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(e.Target))]
	return ok
}

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".svg":  {},
	".bmp":  {},
}

// embedPattern matches ![[target|size]] and ![[target]]. This pass must run
// before wikilink conversion so the wikilink pattern never sees embeds.
var embedPattern = regexp.MustCompile(`!\[\[([^\]|]+)(?:\|([^\]]+))?\]\]`)

// ConvertEmbeds rewrites embeds to HTML. Image embeds go through resolve,
// which maps the reference to a package-internal href; a false return means
// the asset could not be located and the embed degrades to a placeholder.
// Non-image targets (note embeds) always degrade to a placeholder block.
func ConvertEmbeds(content string, resolve func(ref string) (string, bool), warn func(string)) string {
	return embedPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := embedPattern.FindStringSubmatch(match)
		e := Embed{
			Target: strings.TrimSpace(m[1]),
			Size:   strings.TrimSpace(m[2]),
		}

		if !e.IsImage() {
			return notePlaceholder(e.Target)
		}

		href, ok := resolve(e.Target)
		if !ok {
			if warn != nil {
				warn(fmt.Sprintf("missing embedded asset %q", e.Target))
			}
			return missingPlaceholder(e.Target)
		}
		return e.imgTag(href)
	})
}

// ExtractImageEmbeds returns every image path referenced by embeds, in
// order of appearance, duplicates included.
func ExtractImageEmbeds(content string) []string {
	var images []string
	for _, m := range embedPattern.FindAllStringSubmatch(content, -1) {
		e := Embed{Target: strings.TrimSpace(m[1])}
		if e.IsImage() {
			images = append(images, e.Target)
		}
	}
	return images
}

// imgTag renders the image element, applying the Obsidian size spec:
// a bare number is a width, WxH sets both, anything else is alt text.
func (e Embed) imgTag(href string) string {
	alt := strings.TrimSuffix(filepath.Base(e.Target), filepath.Ext(e.Target))
	var style string

	if e.Size != "" {
		if w, h, ok := parseDimensions(e.Size); ok {
			if h > 0 {
				style = fmt.Sprintf(` style="width: %dpx; height: %dpx"`, w, h)
			} else {
				style = fmt.Sprintf(` style="width: %dpx"`, w)
			}
		} else {
			alt = e.Size
		}
	}

	return fmt.Sprintf(`<img src="%s" alt="%s"%s />`, href, html.EscapeString(alt), style)
}

// parseDimensions reads "300" or "300x200" size specs.
func parseDimensions(spec string) (width, height int, ok bool) {
	if w, h, found := strings.Cut(spec, "x"); found {
		wv, werr := strconv.Atoi(strings.TrimSpace(w))
		hv, herr := strconv.Atoi(strings.TrimSpace(h))
		if werr == nil && herr == nil && wv > 0 && hv > 0 {
			return wv, hv, true
		}
		return 0, 0, false
	}
	if wv, err := strconv.Atoi(spec); err == nil && wv > 0 {
		return wv, 0, true
	}
	return 0, 0, false
}

const placeholderStyle = "border: 1px dashed #ccc; padding: 8px 12px; " +
	"margin: 8px 0; background-color: #f9f9f9; border-radius: 4px; " +
	"font-style: italic; color: #666;"

func notePlaceholder(target string) string {
	label := "Embedded file"
	switch strings.ToLower(filepath.Ext(target)) {
	case "", ".md", ".markdown":
		label = "Embedded note"
	}
	return fmt.Sprintf(`<div class="embed-placeholder" style="%s">%s: %s</div>`,
		placeholderStyle, label, html.EscapeString(target))
}

func missingPlaceholder(target string) string {
	return fmt.Sprintf(`<div class="embed-placeholder" style="%s">Missing image: %s</div>`,
		placeholderStyle, html.EscapeString(target))
}
