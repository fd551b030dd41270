package epub

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// OPF (Open Packaging Format) document. Rendered from a template rather
// than encoding/xml because the Dublin Core elements need a literal "dc:"
// prefix, which the xml encoder rewrites into a namespace declaration.

type opfItem struct {
	ID         string
	Href       string
	MediaType  string
	Properties string
}

type opfData struct {
	Identifier string
	Title      string
	Author     string
	Language   string
	Date       string
	Modified   string
	Publisher  string
	CoverID    string
	TOC        string
	Items      []opfItem
	Spine      []string
}

var opfTemplate = template.Must(template.New("opf").Parse(`<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="pub-id">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:identifier id="pub-id">{{.Identifier}}</dc:identifier>
    <dc:title>{{.Title}}</dc:title>
    <dc:creator>{{.Author}}</dc:creator>
    <dc:language>{{.Language}}</dc:language>
{{- if .Date}}
    <dc:date>{{.Date}}</dc:date>
{{- end}}
{{- if .Publisher}}
    <dc:publisher>{{.Publisher}}</dc:publisher>
{{- end}}
    <meta property="dcterms:modified">{{.Modified}}</meta>
{{- if .CoverID}}
    <meta name="cover" content="{{.CoverID}}"/>
{{- end}}
  </metadata>
  <manifest>
{{- range .Items}}
    <item id="{{.ID}}" href="{{.Href}}" media-type="{{.MediaType}}"{{if .Properties}} properties="{{.Properties}}"{{end}}/>
{{- end}}
  </manifest>
  <spine{{if .TOC}} toc="{{.TOC}}"{{end}}>
{{- range .Spine}}
    <itemref idref="{{.}}"/>
{{- end}}
  </spine>
</package>
`))

// opf serializes the package document (content.opf).
func (p *Package) opf() ([]byte, error) {
	data := opfData{
		Identifier: p.Meta.Identifier,
		Title:      p.Meta.Title,
		Author:     p.Meta.Author,
		Language:   p.Meta.Language,
		Modified:   p.Meta.Date.UTC().Format("2006-01-02T15:04:05Z"),
		Publisher:  p.Meta.Publisher,
		CoverID:    p.coverID,
		Items:      make([]opfItem, 0, len(p.resources)),
		Spine:      p.spine,
	}
	if !p.Meta.Date.IsZero() {
		data.Date = p.Meta.Date.UTC().Format(time.RFC3339)
	}
	if p.withNCX {
		data.TOC = ncxID
	}

	for _, r := range p.resources {
		item := opfItem{ID: r.ID, Href: r.Href, MediaType: r.MediaType}
		switch {
		case r.ID == navID:
			item.Properties = "nav"
		case r.ID == p.coverID:
			item.Properties = "cover-image"
		}
		data.Items = append(data.Items, item)
	}

	var buf bytes.Buffer
	if err := opfTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering package document: %w", err)
	}
	return buf.Bytes(), nil
}
