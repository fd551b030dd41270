// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2epub/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-md2epub) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2epub") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingImage returns hints for unresolved image embeds.
func ForMissingImage(vaultRoot string) string {
	if vaultRoot == "" {
		return format("set --vault-root so attachment folders can be searched")
	}
	return format("check the path relative to " + vaultRoot + " and its attachments/ folder")
}

// ForMissingCover returns hints for a cover image that could not be located.
func ForMissingCover() string {
	return format("supported formats: PNG, JPG, GIF, SVG; path resolves like an embed")
}

// ForUnknownStyle returns hints for highlight style not found errors.
func ForUnknownStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForEmptyScan returns hints when a folder scan selects no notes.
func ForEmptyScan(tag string) string {
	if tag == "" {
		return format("the folder contains no markdown files")
	}
	return format("no note declares tag " + tag + " in its frontmatter")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
