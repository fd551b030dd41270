package epub

import (
	"bytes"
	"fmt"
	"html/template"
)

// Content document templates: chapter wrapper plus the generated front
// matter pages (cover, title, copyright).

var chapterTemplate = template.Must(template.New("chapter").Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
    <title>{{.Title}}</title>
    <link rel="stylesheet" type="text/css" href="style/default.css"/>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// ChapterDocument wraps rendered chapter markup in a complete XHTML
// document. The body is trusted markup produced by the rendering pipeline,
// not raw user input.
func ChapterDocument(title, body string) ([]byte, error) {
	var buf bytes.Buffer
	err := chapterTemplate.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body)})
	if err != nil {
		return nil, fmt.Errorf("rendering chapter %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

var coverPageTemplate = template.Must(template.New("cover").Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
    <title>Cover</title>
    <style>
        body { margin: 0; padding: 0; text-align: center; }
        img { max-width: 100%; max-height: 100%; }
    </style>
</head>
<body>
    <img src="{{.}}" alt="Cover"/>
</body>
</html>
`))

// CoverPageDocument renders a full-bleed cover page for readers that expect
// the cover as the first content document.
func CoverPageDocument(coverHref string) ([]byte, error) {
	var buf bytes.Buffer
	if err := coverPageTemplate.Execute(&buf, coverHref); err != nil {
		return nil, fmt.Errorf("rendering cover page: %w", err)
	}
	return buf.Bytes(), nil
}

var titlePageTemplate = template.Must(template.New("title").Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
    <title>Title Page</title>
    <style>
        body { text-align: center; font-family: Georgia, serif; padding: 2em; }
        .title { font-size: 2.5em; font-weight: bold; color: #1a1a1a; margin-top: 30%; line-height: 1.2; }
        .subtitle { font-size: 1.3em; font-style: italic; color: #555; }
        .author { font-size: 1.5em; color: #333; margin-top: 2em; }
    </style>
</head>
<body>
    <h1 class="title">{{.Title}}</h1>
{{- if .Subtitle}}
    <p class="subtitle">{{.Subtitle}}</p>
{{- end}}
    <p class="author">{{.Author}}</p>
</body>
</html>
`))

// TitlePageDocument renders the title page from the package metadata.
func TitlePageDocument(meta Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := titlePageTemplate.Execute(&buf, meta); err != nil {
		return nil, fmt.Errorf("rendering title page: %w", err)
	}
	return buf.Bytes(), nil
}

var copyrightPageTemplate = template.Must(template.New("copyright").Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
    <title>Copyright</title>
    <style>
        body { font-family: Georgia, serif; font-size: 0.9em; color: #333; padding: 2em; line-height: 1.6; }
        .copyright-page { margin-top: 30%; }
    </style>
</head>
<body>
    <div class="copyright-page">
        <p><strong>{{.Title}}</strong></p>
        <p>Copyright &#169; {{.CopyrightYear}} by {{.CopyrightHolder}}</p>
{{- if .Publisher}}
        <p>Published by {{.Publisher}}</p>
{{- end}}
        <p>All rights reserved.</p>
    </div>
</body>
</html>
`))

// CopyrightPageDocument renders the copyright page from the package
// metadata.
func CopyrightPageDocument(meta Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := copyrightPageTemplate.Execute(&buf, meta); err != nil {
		return nil, fmt.Errorf("rendering copyright page: %w", err)
	}
	return buf.Bytes(), nil
}
