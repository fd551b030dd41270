package obsidian

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Kind is the canonical callout kind. Obsidian accepts an open-ended set of
// tags; every tag maps onto one of these, and unrecognized tags map to
// KindDefault instead of failing.
type Kind int

const (
	KindDefault Kind = iota
	KindNote
	KindTip
	KindSuccess
	KindQuestion
	KindWarning
	KindDanger
	KindExample
	KindQuote
)

// String returns the canonical tag name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindTip:
		return "tip"
	case KindSuccess:
		return "success"
	case KindQuestion:
		return "question"
	case KindWarning:
		return "warning"
	case KindDanger:
		return "danger"
	case KindExample:
		return "example"
	case KindQuote:
		return "quote"
	default:
		return "default"
	}
}

// kindStyle carries the presentation for a canonical kind: accent color,
// background color, and the fallback label when the tag is unknown.
type kindStyle struct {
	color      string
	background string
}

// Colors follow Obsidian's defaults.
var kindStyles = map[Kind]kindStyle{
	KindDefault:  {"#9e9e9e", "#f5f5f5"},
	KindNote:     {"#448aff", "#e3f2fd"},
	KindTip:      {"#00c853", "#e8f5e9"},
	KindSuccess:  {"#00c853", "#e8f5e9"},
	KindQuestion: {"#ffb300", "#fff8e1"},
	KindWarning:  {"#ff9100", "#fff3e0"},
	KindDanger:   {"#ff5252", "#ffebee"},
	KindExample:  {"#7c4dff", "#ede7f6"},
	KindQuote:    {"#9e9e9e", "#f5f5f5"},
}

// calloutTag maps one accepted tag string to its canonical kind and the
// display label used when no custom title is given.
type calloutTag struct {
	kind  Kind
	label string
}

var calloutTags = map[string]calloutTag{
	"note":     {KindNote, "Note"},
	"info":     {KindNote, "Info"},
	"abstract": {KindNote, "Abstract"},
	"summary":  {KindNote, "Summary"},
	"tldr":     {KindNote, "TL;DR"},

	"tip":       {KindTip, "Tip"},
	"hint":      {KindTip, "Hint"},
	"important": {KindTip, "Important"},

	"success": {KindSuccess, "Success"},
	"check":   {KindSuccess, "Check"},
	"done":    {KindSuccess, "Done"},

	"question": {KindQuestion, "Question"},
	"help":     {KindQuestion, "Help"},
	"faq":      {KindQuestion, "FAQ"},

	"warning":   {KindWarning, "Warning"},
	"caution":   {KindWarning, "Caution"},
	"attention": {KindWarning, "Attention"},

	"danger":  {KindDanger, "Danger"},
	"error":   {KindDanger, "Error"},
	"failure": {KindDanger, "Failure"},
	"fail":    {KindDanger, "Fail"},
	"missing": {KindDanger, "Missing"},
	"bug":     {KindDanger, "Bug"},

	"example": {KindExample, "Example"},

	"quote": {KindQuote, "Quote"},
	"cite":  {KindQuote, "Cite"},
}

// ParseKind resolves a raw callout tag (case-insensitive) to its canonical
// kind and default label. Unknown tags degrade to KindDefault.
func ParseKind(tag string) (Kind, string) {
	if t, ok := calloutTags[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return t.kind, t.label
	}
	return KindDefault, "Note"
}

// Callout is a typed admonition block lifted out of a marked blockquote.
type Callout struct {
	Kind  Kind
	Tag   string // raw tag as written, lowercased
	Title string
	Body  string // inner markdown, quote markers stripped
}

// Precompiled regex patterns for performance.
var (
	// Callout opener: > [!tag] optional title. The +/- fold indicator is
	// accepted and ignored; folding has no meaning in a packaged document.
	calloutStartPattern = regexp.MustCompile(`^>\s*\[!(\w+)\]([+-])?\s*(.*)$`)

	// Fenced code block delimiter (backticks or tildes).
	fencedCodePattern = regexp.MustCompile("^(```|~~~)")
)

// ConvertCallouts rewrites Obsidian callout blockquotes into styled HTML
// container blocks. The callout body keeps its markdown as-is, so inline
// passes and the markdown renderer still process it. Lines inside fenced
// code blocks are left alone.
func ConvertCallouts(content string) string {
	lines := strings.Split(content, "\n")
	var out []string

	inCode := false
	for i := 0; i < len(lines); {
		line := lines[i]

		if fencedCodePattern.MatchString(line) {
			inCode = !inCode
		}
		if inCode {
			out = append(out, line)
			i++
			continue
		}

		m := calloutStartPattern.FindStringSubmatch(line)
		if m == nil {
			out = append(out, line)
			i++
			continue
		}

		kind, label := ParseKind(m[1])
		title := strings.TrimSpace(m[3])
		if title == "" {
			title = label
		}

		body, next := collectCalloutBody(lines, i+1)
		c := Callout{
			Kind:  kind,
			Tag:   strings.ToLower(m[1]),
			Title: title,
			Body:  body,
		}
		out = append(out, c.html())
		i = next
	}

	return strings.Join(out, "\n")
}

// collectCalloutBody gathers the continuation lines of a callout starting at
// index start, stripping the leading quote marker from each. A blank line
// only continues the callout when the line after it is quoted again.
func collectCalloutBody(lines []string, start int) (string, int) {
	var body []string
	i := start
	for i < len(lines) {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, ">"):
			stripped := strings.TrimPrefix(line, ">")
			stripped = strings.TrimPrefix(stripped, " ")
			body = append(body, stripped)
			i++
		case strings.TrimSpace(line) == "":
			if i+1 < len(lines) && strings.HasPrefix(lines[i+1], ">") {
				body = append(body, "")
				i++
				continue
			}
			return strings.Join(body, "\n"), i
		default:
			return strings.Join(body, "\n"), i
		}
	}
	return strings.Join(body, "\n"), i
}

// html renders the callout container. Styles are inlined because most EPUB
// readers apply external stylesheets inconsistently. The body is emitted
// between blank lines so the markdown renderer still processes it.
func (c Callout) html() string {
	style := kindStyles[c.Kind]

	containerStyle := fmt.Sprintf(
		"border-left: 4px solid %s; background-color: %s; "+
			"padding: 12px 16px; margin: 16px 0; border-radius: 4px;",
		style.color, style.background,
	)
	titleStyle := fmt.Sprintf(
		"color: %s; font-weight: bold; margin: 0 0 8px 0; font-size: 1em;",
		style.color,
	)

	return fmt.Sprintf(`<div class="callout callout-%s" style="%s">
<p class="callout-title" style="%s">%s</p>
<div class="callout-content" style="margin: 0; line-height: 1.6;">

%s

</div>
</div>`, c.Tag, containerStyle, titleStyle, html.EscapeString(c.Title), c.Body)
}
