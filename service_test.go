package md2epub

import (
	"archive/zip"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-md2epub/internal/frontmatter"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
}

// readEpub opens the archive and returns entry names in order plus a
// name-to-content map.
func readEpub(t *testing.T, path string) ([]string, map[string]string) {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening epub: %v", err)
	}
	defer r.Close()

	var names []string
	contents := make(map[string]string)
	for _, f := range r.File {
		names = append(names, f.Name)
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading entry %s: %v", f.Name, err)
		}
		contents[f.Name] = string(data)
	}
	return names, contents
}

func TestConvertValidatesInput(t *testing.T) {
	t.Parallel()

	note := Note{Path: "a.md", Content: "# A"}

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "no notes",
			input:   Input{OutputPath: "out.epub", Options: DefaultOptions()},
			wantErr: ErrNoNotes,
		},
		{
			name:    "empty output path",
			input:   Input{Notes: []Note{note}, Options: DefaultOptions()},
			wantErr: ErrEmptyOutputPath,
		},
		{
			name: "bad wikilink mode",
			input: Input{
				Notes:      []Note{note},
				OutputPath: "out.epub",
				Options:    Options{WikilinkMode: "underline"},
			},
			wantErr: ErrInvalidOptions,
		},
		{
			name: "unknown highlight style",
			input: Input{
				Notes:      []Note{note},
				OutputPath: "out.epub",
				Options: Options{
					WikilinkMode:   WikilinkModeStrip,
					Highlighting:   true,
					HighlightStyle: "no-such-style",
				},
			},
			wantErr: ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New().Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	writeTestPNG(t, filepath.Join(vault, "diagram.png"))
	writeTestPNG(t, filepath.Join(vault, "cover.png"))

	notes := []Note{
		{
			Path: filepath.Join(vault, "gamma.md"),
			Content: `---
title: Gamma
author: Ada Lovelace
---
Start here, then read [[Alpha]].

![[diagram.png]]
`,
		},
		{
			Path:    filepath.Join(vault, "alpha.md"),
			Content: "# Alpha\n\nBack to [[Gamma|the beginning]].\n\n![[diagram.png]]\n",
		},
		{
			Path:    filepath.Join(vault, "beta-note.md"),
			Content: "No frontmatter, no heading. See [[Nowhere]].\n",
		},
	}

	out := filepath.Join(t.TempDir(), "book.epub")
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := New(WithNow(func() time.Time { return fixed }))

	opts := DefaultOptions()
	opts.VaultRoot = vault

	result, err := svc.Convert(context.Background(), Input{
		Notes:      notes,
		OutputPath: out,
		Book:       Book{CoverPath: "cover.png"},
		Options:    opts,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if result.Chapters != 3 {
		t.Errorf("Chapters = %d, want 3", result.Chapters)
	}
	// diagram.png referenced twice but stored once, plus the cover.
	if result.Assets != 2 {
		t.Errorf("Assets = %d, want 2", result.Assets)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0].Message, "Nowhere") {
		t.Errorf("Warnings = %v, want one unresolved wikilink warning", result.Warnings)
	}

	names, contents := readEpub(t, out)
	if names[0] != "mimetype" {
		t.Fatalf("first entry = %s, want mimetype", names[0])
	}

	opf := contents["OEBPS/content.opf"]
	for _, want := range []string{"Gamma", "Ada Lovelace", "2026", "cover-image"} {
		if !strings.Contains(opf, want) {
			t.Errorf("content.opf missing %q", want)
		}
	}

	// Input order is chapter order regardless of titles.
	nav := contents["OEBPS/nav.xhtml"]
	gamma := strings.Index(nav, "Gamma")
	alpha := strings.Index(nav, "Alpha")
	beta := strings.Index(nav, "Beta Note")
	if gamma < 0 || alpha < 0 || beta < 0 || !(gamma < alpha && alpha < beta) {
		t.Errorf("nav order wrong: gamma=%d alpha=%d beta=%d", gamma, alpha, beta)
	}

	// Cross-note wikilinks resolve to chapter hrefs.
	ch1 := contents["OEBPS/chapter_001.xhtml"]
	if !strings.Contains(ch1, `href="chapter_002.xhtml"`) {
		t.Errorf("chapter 1 should link to chapter 2:\n%s", ch1)
	}
	ch2 := contents["OEBPS/chapter_002.xhtml"]
	if !strings.Contains(ch2, `href="chapter_001.xhtml"`) || !strings.Contains(ch2, "the beginning") {
		t.Errorf("chapter 2 should link back with display text:\n%s", ch2)
	}

	// Unresolved wikilink stripped to display text.
	ch3 := contents["OEBPS/chapter_003.xhtml"]
	if !strings.Contains(ch3, "Nowhere") || strings.Contains(ch3, "[[") || strings.Contains(ch3, "<a") {
		t.Errorf("unresolved wikilink should degrade to text:\n%s", ch3)
	}

	// Spine leads with the cover page, then title and copyright pages.
	for _, want := range []string{"coverpage.xhtml", "titlepage.xhtml", "copyright.xhtml"} {
		if _, ok := contents["OEBPS/"+want]; !ok {
			t.Errorf("missing front matter page %s", want)
		}
	}
	spine := opf[strings.Index(opf, "<spine"):]
	cover := strings.Index(spine, "coverpage")
	title := strings.Index(spine, "titlepage")
	first := strings.Index(spine, "chapter_001")
	if !(cover >= 0 && cover < title && title < first) {
		t.Errorf("spine order wrong:\n%s", spine)
	}
}

func TestConvertMissingImageWarns(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "book.epub")
	result, err := New().Convert(context.Background(), Input{
		Notes:      []Note{{Path: "a.md", Content: "# A\n\n![[ghost.png]]\n"}},
		OutputPath: out,
		Options:    DefaultOptions(),
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0].Message, "ghost.png") {
		t.Errorf("Warnings = %v, want missing image warning", result.Warnings)
	}
	if result.Assets != 0 {
		t.Errorf("Assets = %d, want 0", result.Assets)
	}
}

func TestConvertCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Convert(ctx, Input{
		Notes:      []Note{{Path: "a.md", Content: "# A"}},
		OutputPath: filepath.Join(t.TempDir(), "book.epub"),
		Options:    DefaultOptions(),
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestDeriveTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		front string
		body  string
		path  string
		want  string
	}{
		{"frontmatter wins", "The Declared Title", "# Heading Title", "note.md", "The Declared Title"},
		{"first h1", "", "intro\n\n# Heading Title\n\n## Sub", "note.md", "Heading Title"},
		{"stem fallback", "", "plain text only", "dir/my-great_note.md", "My Great Note"},
		{"h2 is not a title", "", "## Only Subheading", "fallback.md", "Fallback"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			matter := frontmatter.Matter{Title: tt.front}
			got := deriveTitle(matter, tt.body, tt.path)
			if got != tt.want {
				t.Errorf("deriveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	got := preprocessMarkdown("a\r\nb\r\n\n\n\n\nc ==hot== d")
	want := "a\nb\n\nc <mark>hot</mark> d"
	if got != want {
		t.Errorf("preprocessMarkdown() = %q, want %q", got, want)
	}
}

func TestConvertWithoutTOC(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.IncludeTOC = false

	out := filepath.Join(t.TempDir(), "book.epub")
	_, err := New().Convert(context.Background(), Input{
		Notes:      []Note{{Path: "one.md", Content: "# One\n\ntext\n"}},
		OutputPath: out,
		Options:    opts,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	_, contents := readEpub(t, out)

	// The navigation document stays in the package; only the reading
	// order drops it.
	if _, ok := contents["OEBPS/nav.xhtml"]; !ok {
		t.Error("nav.xhtml missing from the archive")
	}
	opf := contents["OEBPS/content.opf"]
	if !strings.Contains(opf, `properties="nav"`) {
		t.Error("nav missing from the manifest")
	}
	if strings.Contains(opf, `<itemref idref="nav"/>`) {
		t.Errorf("nav present in the spine:\n%s", opf)
	}
}
