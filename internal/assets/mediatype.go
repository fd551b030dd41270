package assets

import (
	"mime"
	"path/filepath"
	"strings"
)

// MediaType returns the media type for an asset path by extension.
// Unknown extensions fall back to the platform mime table, then to
// application/octet-stream.
func MediaType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".bmp":
		return "image/bmp"
	case ".css":
		return "text/css"
	case ".xhtml":
		return "application/xhtml+xml"
	case ".ncx":
		return "application/x-dtbncx+xml"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
