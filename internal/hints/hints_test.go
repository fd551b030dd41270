package hints_test

import (
	"strings"
	"testing"

	"github.com/alnah/go-md2epub/internal/hints"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
	}{
		{
			name:     "suggests config flag",
			paths:    nil,
			contains: []string{"hint:", "--config"},
		},
		{
			name:     "suggests user config path when searched",
			paths:    []string{"book.yaml", "/home/u/.config/go-md2epub/book.yaml"},
			contains: []string{"--config", ".config/go-md2epub/book.yaml"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := hints.ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ForConfigNotFound() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestForMissingImage(t *testing.T) {
	t.Parallel()

	if got := hints.ForMissingImage(""); !strings.Contains(got, "--vault-root") {
		t.Errorf("without vault root, hint should suggest --vault-root, got %q", got)
	}
	if got := hints.ForMissingImage("/vault"); !strings.Contains(got, "/vault") {
		t.Errorf("with vault root, hint should mention it, got %q", got)
	}
}

func TestForUnknownStyle(t *testing.T) {
	t.Parallel()

	if got := hints.ForUnknownStyle(nil); got != "" {
		t.Errorf("no styles should produce no hint, got %q", got)
	}

	got := hints.ForUnknownStyle([]string{"github", "monokai"})
	if !strings.Contains(got, "github, monokai") {
		t.Errorf("ForUnknownStyle() = %q, want available styles listed", got)
	}
}

func TestForEmptyScan(t *testing.T) {
	t.Parallel()

	if got := hints.ForEmptyScan(""); !strings.Contains(got, "markdown") {
		t.Errorf("ForEmptyScan(\"\") = %q", got)
	}
	if got := hints.ForEmptyScan("book"); !strings.Contains(got, "book") {
		t.Errorf("ForEmptyScan(\"book\") = %q, want tag mentioned", got)
	}
}

func TestHintFormatting(t *testing.T) {
	t.Parallel()

	got := hints.ForOutputDirectory()
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hints should start with newline and indent, got %q", got)
	}
}
