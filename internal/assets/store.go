// Package assets locates, deduplicates, and optimizes binary resources
// (images) referenced by note embeds, and assigns each one a stable
// package-internal identifier and href.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// attachmentFolders are the conventional Obsidian attachment locations
// searched under the vault root when direct resolution fails.
var attachmentFolders = []string{"attachments", "assets", "images", "media"}

// Asset is one deduplicated binary resource bound for the package manifest.
type Asset struct {
	ID         string // manifest identifier, unique within the package
	Href       string // package-internal path, e.g. "images/diagram.png"
	MediaType  string
	Data       []byte
	SourcePath string // canonical path the asset was loaded from
}

// Store collects assets across all notes. Deduplication keys on the
// canonicalized absolute source path: the first reference to a file assigns
// the identifier, later references reuse it regardless of how they spelled
// the path.
type Store struct {
	vaultRoot string
	optimize  bool

	byPath  map[string]*Asset
	byHref  map[string]struct{}
	ordered []*Asset
	nextID  int
}

// NewStore creates a Store. vaultRoot may be empty, in which case only
// note-relative and absolute references resolve.
func NewStore(vaultRoot string, optimize bool) *Store {
	return &Store{
		vaultRoot: vaultRoot,
		optimize:  optimize,
		byPath:    make(map[string]*Asset),
		byHref:    make(map[string]struct{}),
	}
}

// Add resolves an embed reference against the vault root and the note's own
// directory, loading and registering the file on first sight. It returns the
// package href and true, or "" and false when the file cannot be located or
// read. Never fatal: callers degrade missing assets to placeholders.
func (s *Store) Add(ref, noteDir string) (*Asset, bool) {
	path, ok := s.locate(ref, noteDir)
	if !ok {
		return nil, false
	}

	key := canonicalPath(path)
	if existing, ok := s.byPath[key]; ok {
		return existing, true
	}

	data, err := os.ReadFile(path) // #nosec G304 -- paths come from the user's own vault
	if err != nil {
		return nil, false
	}

	if s.optimize {
		if optimized, err := Optimize(data, filepath.Ext(path)); err == nil {
			data = optimized
		}
	}

	s.nextID++
	asset := &Asset{
		ID:         fmt.Sprintf("img_%03d", s.nextID),
		Href:       "images/" + s.safeFilename(filepath.Base(path)),
		MediaType:  MediaType(path),
		Data:       data,
		SourcePath: key,
	}
	s.byPath[key] = asset
	s.byHref[asset.Href] = struct{}{}
	s.ordered = append(s.ordered, asset)
	return asset, true
}

// Assets returns all registered assets in first-seen order.
func (s *Store) Assets() []*Asset {
	return s.ordered
}

// Len reports the number of distinct assets.
func (s *Store) Len() int {
	return len(s.ordered)
}

// locate tries, in order: the reference as an absolute path, vault-relative,
// note-relative, then the conventional attachment folders under the vault
// root by bare filename.
func (s *Store) locate(ref, noteDir string) (string, bool) {
	if filepath.IsAbs(ref) {
		if fileExists(ref) {
			return ref, true
		}
		return "", false
	}

	if s.vaultRoot != "" {
		if p := filepath.Join(s.vaultRoot, ref); fileExists(p) {
			return p, true
		}
	}

	if noteDir != "" {
		if p := filepath.Join(noteDir, ref); fileExists(p) {
			return p, true
		}
	}

	if s.vaultRoot != "" {
		base := filepath.Base(ref)
		for _, folder := range attachmentFolders {
			if p := filepath.Join(s.vaultRoot, folder, base); fileExists(p) {
				return p, true
			}
		}
	}

	return "", false
}

var unsafeChars = regexp.MustCompile(`[^\w\-]`)

// safeFilename sanitizes a source filename for use inside the package and
// keeps it unique across the store by suffixing a counter on collision.
func (s *Store) safeFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	stem := unsafeChars.ReplaceAllString(strings.TrimSuffix(name, filepath.Ext(name)), "_")

	candidate := stem + ext
	for n := 1; ; n++ {
		if _, taken := s.byHref["images/"+candidate]; !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
	}
}

// canonicalPath normalizes a path for deduplication. Symlinks are resolved
// when possible so two routes to one file collapse to one key.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
