package epub

import (
	"bytes"
	"fmt"
	"html/template"
)

// Reserved manifest identifiers for the navigation documents.
const (
	navID = "nav"
	ncxID = "ncx"

	navHref = "nav.xhtml"
	ncxHref = "toc.ncx"
)

var navTemplate = template.Must(template.New("nav").Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head>
    <title>Table of Contents</title>
    <link rel="stylesheet" type="text/css" href="style/default.css"/>
</head>
<body>
    <nav epub:type="toc" id="toc">
        <h1>Table of Contents</h1>
        <ol>
{{- range .}}
            <li><a href="{{.Href}}">{{.Title}}</a></li>
{{- end}}
        </ol>
    </nav>
</body>
</html>
`))

// ncxPoint carries per-entry play order for the NCX template.
type ncxPoint struct {
	Order int
	Title string
	Href  string
}

type ncxData struct {
	Identifier string
	Title      string
	Points     []ncxPoint
}

var ncxTemplate = template.Must(template.New("ncx").Parse(`<?xml version="1.0" encoding="utf-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
<head>
    <meta name="dtb:uid" content="{{.Identifier}}"/>
    <meta name="dtb:depth" content="1"/>
</head>
<docTitle><text>{{.Title}}</text></docTitle>
<navMap>
{{- range .Points}}
    <navPoint id="navPoint-{{.Order}}" playOrder="{{.Order}}">
        <navLabel><text>{{.Title}}</text></navLabel>
        <content src="{{.Href}}"/>
    </navPoint>
{{- end}}
</navMap>
</ncx>
`))

// navDocument renders the EPUB 3 navigation document from the entries
// added via AddNavEntry.
func (p *Package) navDocument() ([]byte, error) {
	var buf bytes.Buffer
	if err := navTemplate.Execute(&buf, p.nav); err != nil {
		return nil, fmt.Errorf("rendering navigation document: %w", err)
	}
	return buf.Bytes(), nil
}

// ncxDocument renders the EPUB 2 compatibility table of contents.
func (p *Package) ncxDocument() ([]byte, error) {
	data := ncxData{
		Identifier: p.Meta.Identifier,
		Title:      p.Meta.Title,
		Points:     make([]ncxPoint, 0, len(p.nav)),
	}
	for i, entry := range p.nav {
		data.Points = append(data.Points, ncxPoint{
			Order: i + 1,
			Title: entry.Title,
			Href:  entry.Href,
		})
	}

	var buf bytes.Buffer
	if err := ncxTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering ncx: %w", err)
	}
	return buf.Bytes(), nil
}
