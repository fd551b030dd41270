package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2epub/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - File existence checks
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "exists.md")
	if err := os.WriteFile(existing, []byte("# hi"), 0o600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: existing, want: true},
		{name: "missing file", path: filepath.Join(tmpDir, "nope.md"), want: false},
		{name: "directory is not a file", path: tmpDir, want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.md")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	if !fileutil.DirExists(tmpDir) {
		t.Errorf("DirExists(%q) = false, want true", tmpDir)
	}
	if fileutil.DirExists(file) {
		t.Errorf("DirExists(%q) = true for a regular file", file)
	}
	if fileutil.DirExists(filepath.Join(tmpDir, "missing")) {
		t.Error("DirExists() = true for a missing path")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Path vs name detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain name", input: "mybook", want: false},
		{name: "hyphenated name", input: "my-book", want: false},
		{name: "relative path", input: "./book.yaml", want: true},
		{name: "parent path", input: "../shared/book.yaml", want: true},
		{name: "absolute path", input: "/etc/book.yaml", want: true},
		{name: "windows path", input: `C:\books\config.yaml`, want: true},
		{name: "empty string", input: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "md extension", path: "note.md", want: true},
		{name: "markdown extension", path: "note.markdown", want: true},
		{name: "uppercase extension", path: "NOTE.MD", want: true},
		{name: "text file", path: "note.txt", want: false},
		{name: "no extension", path: "note", want: false},
		{name: "md in directory name only", path: "md/note.txt", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.IsMarkdownFile(tt.path); got != tt.want {
				t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
