package obsidian

import (
	"strings"
	"testing"
)

func testIndex() *Index {
	ix := NewIndex()
	ix.Add("Second Note", ChapterRef{Href: "chapter_002.xhtml", Title: "Second Note"})
	ix.Add("second-note", ChapterRef{Href: "chapter_002.xhtml", Title: "Second Note"})
	ix.Add("Intro", ChapterRef{Href: "chapter_001.xhtml", Title: "Intro"})
	return ix
}

func TestConvertWikilinksResolved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "title match uses chapter title as display",
			input: "See [[Second Note]].",
			want:  `See <a href="chapter_002.xhtml">Second Note</a>.`,
		},
		{
			name:  "case and extension insensitive",
			input: "See [[second note.md]].",
			want:  `See <a href="chapter_002.xhtml">Second Note</a>.`,
		},
		{
			name:  "filename stem match",
			input: "See [[second-note]].",
			want:  `See <a href="chapter_002.xhtml">Second Note</a>.`,
		},
		{
			name:  "explicit display text wins",
			input: "See [[Second Note|over there]].",
			want:  `See <a href="chapter_002.xhtml">over there</a>.`,
		},
		{
			name:  "heading inside another note",
			input: "See [[Second Note#Some Section]].",
			want:  `See <a href="chapter_002.xhtml#some-section">Second Note &gt; Some Section</a>.`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertWikilinks(tt.input, testIndex(), WikilinkStrip, nil)
			if got != tt.want {
				t.Errorf("ConvertWikilinks() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertWikilinksSameDocNeverCrossResolves(t *testing.T) {
	t.Parallel()

	// Another note also answers to "Intro", but a bare heading link must
	// stay an in-document anchor.
	got := ConvertWikilinks("Jump to [[#Intro]].", testIndex(), WikilinkStrip, nil)
	want := `Jump to <a href="#intro">Intro</a>.`
	if got != want {
		t.Errorf("ConvertWikilinks() = %q, want %q", got, want)
	}
}

func TestConvertWikilinksUnresolved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode string
		want string
	}{
		{
			name: "strip mode keeps plain text",
			mode: WikilinkStrip,
			want: "See Direct Link.",
		},
		{
			name: "styled mode keeps dead span",
			mode: WikilinkStyled,
			want: `See <span class="wikilink">Direct Link</span>.`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var warned []string
			got := ConvertWikilinks("See [[Direct Link]].", testIndex(), tt.mode,
				func(msg string) { warned = append(warned, msg) })
			if got != tt.want {
				t.Errorf("ConvertWikilinks() = %q, want %q", got, tt.want)
			}
			if len(warned) != 1 || !strings.Contains(warned[0], "Direct Link") {
				t.Errorf("warnings = %v, want one mentioning the target", warned)
			}
		})
	}
}

func TestConvertWikilinksUnresolvedDisplayText(t *testing.T) {
	t.Parallel()

	got := ConvertWikilinks("[[Ghost|visible]]", testIndex(), WikilinkStrip, nil)
	if got != "visible" {
		t.Errorf("ConvertWikilinks() = %q, want explicit display text", got)
	}
}

func TestExtractWikilinks(t *testing.T) {
	t.Parallel()

	content := "[[A]] and [[B#h|x]] and [[A]] and [[#local]]"
	got := ExtractWikilinks(content)
	want := []string{"A", "B"}
	if len(got) != len(want) {
		t.Fatalf("ExtractWikilinks() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExtractWikilinks()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHeadingID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		heading string
		want    string
	}{
		{"Some Section", "some-section"},
		{"With  Punct!?", "with--punct"},
		{"snake_case", "snake-case"},
		{"", "heading"},
	}

	for _, tt := range tests {
		tt := tt
		if got := HeadingID(tt.heading); got != tt.want {
			t.Errorf("HeadingID(%q) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}
