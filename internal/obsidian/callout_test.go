package obsidian

import (
	"strings"
	"testing"
)

func TestParseKindCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want Kind
	}{
		{"note", KindNote},
		{"tip", KindTip},
		{"hint", KindTip},
		{"warning", KindWarning},
		{"caution", KindWarning},
		{"danger", KindDanger},
		{"error", KindDanger},
		{"example", KindExample},
		{"quote", KindQuote},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			// Any case variant must resolve to the same canonical kind.
			capitalized := strings.ToUpper(tt.tag[:1]) + tt.tag[1:]
			for _, variant := range []string{tt.tag, strings.ToUpper(tt.tag), capitalized} {
				kind, _ := ParseKind(variant)
				if kind != tt.want {
					t.Errorf("ParseKind(%q) = %v, want %v", variant, kind, tt.want)
				}
			}
		})
	}
}

func TestParseKindUnknownFallsBack(t *testing.T) {
	t.Parallel()

	kind, label := ParseKind("frobnicate")
	if kind != KindDefault {
		t.Errorf("ParseKind(unknown) = %v, want KindDefault", kind)
	}
	if label != "Note" {
		t.Errorf("ParseKind(unknown) label = %q, want %q", label, "Note")
	}
}

func TestConvertCallouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "tip with custom title",
			input:    "> [!tip] Pro Tip\n> Use keyboard shortcuts.",
			contains: []string{"callout-tip", "Pro Tip", "Use keyboard shortcuts."},
		},
		{
			name:     "default label when no title",
			input:    "> [!warning]\n> Careful now.",
			contains: []string{"callout-warning", ">Warning</p>", "Careful now."},
		},
		{
			name:     "fold indicator ignored",
			input:    "> [!note]- Collapsed\n> Hidden body.",
			contains: []string{"callout-note", "Collapsed", "Hidden body."},
		},
		{
			name:     "unknown kind styled as default",
			input:    "> [!mystery]\n> Who knows.",
			contains: []string{"callout-mystery", "#9e9e9e", "Who knows."},
		},
		{
			name:     "body keeps markdown for later passes",
			input:    "> [!tip]\n> See [[Other Note]] for more.",
			contains: []string{"[[Other Note]]"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertCallouts(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ConvertCallouts() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestConvertCalloutsPlainBlockquoteUntouched(t *testing.T) {
	t.Parallel()

	input := "> just a quote\n> second line"
	if got := ConvertCallouts(input); got != input {
		t.Errorf("ConvertCallouts() = %q, want unchanged input", got)
	}
}

func TestConvertCalloutsSkipsFencedCode(t *testing.T) {
	t.Parallel()

	input := "```\n> [!tip] not a callout\n```"
	got := ConvertCallouts(input)
	if strings.Contains(got, "callout-tip") {
		t.Errorf("ConvertCallouts() rewrote a callout inside a code fence:\n%s", got)
	}
}

func TestConvertCalloutsBlankLineContinuation(t *testing.T) {
	t.Parallel()

	input := "> [!note]\n> first\n\n> second\n\nafter"
	got := ConvertCallouts(input)
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Fatalf("callout body lost lines:\n%s", got)
	}
	if !strings.Contains(got, "after") {
		t.Errorf("text after the callout was consumed:\n%s", got)
	}
	if strings.Count(got, "callout-title") != 1 {
		t.Errorf("expected one callout, got:\n%s", got)
	}
}
