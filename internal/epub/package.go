// Package epub assembles and serializes an EPUB 3 container: manifest,
// linear spine, navigation documents, content files, and assets.
//
// Integrity (identifier uniqueness, spine and navigation referential
// integrity) is validated before a single byte is written; a violation means
// a pipeline defect upstream, never bad user input.
package epub

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for package assembly.
var (
	ErrIntegrity = errors.New("package integrity violation")
	ErrWrite     = errors.New("failed to write package")
)

// Metadata carries the package-level publication metadata.
type Metadata struct {
	Identifier      string
	Title           string
	Subtitle        string
	Author          string
	Language        string
	Publisher       string
	CopyrightYear   string
	CopyrightHolder string
	Date            time.Time
}

// Resource is one manifest entry: a content file or asset with a unique
// identifier and media type.
type Resource struct {
	ID        string
	Href      string
	MediaType string
	Data      []byte
}

// NavEntry is one table-of-contents entry, mirroring spine order.
type NavEntry struct {
	Title string
	Href  string
}

// Package accumulates the full output artifact before serialization.
type Package struct {
	Meta Metadata

	resources []Resource
	spine     []string // manifest idrefs in reading order
	nav       []NavEntry
	coverID   string
	withNCX   bool
	finalized bool
}

// finalize renders the navigation documents and registers them as
// resources. They derive from the accumulated entries, so this runs once,
// immediately before validation and serialization.
func (p *Package) finalize() error {
	if p.finalized {
		return nil
	}

	navDoc, err := p.navDocument()
	if err != nil {
		return err
	}
	p.resources = append(p.resources, Resource{
		ID: navID, Href: navHref, MediaType: "application/xhtml+xml", Data: navDoc,
	})

	if p.withNCX {
		ncxDoc, err := p.ncxDocument()
		if err != nil {
			return err
		}
		p.resources = append(p.resources, Resource{
			ID: ncxID, Href: ncxHref, MediaType: "application/x-dtbncx+xml", Data: ncxDoc,
		})
	}

	p.finalized = true
	return nil
}

// New creates an empty package with the given metadata.
func New(meta Metadata) *Package {
	if meta.Language == "" {
		meta.Language = "en"
	}
	return &Package{Meta: meta, withNCX: true}
}

// AddResource registers a manifest entry. Identifier collisions surface
// later in Validate, not here, so assembly code stays linear.
func (p *Package) AddResource(r Resource) {
	p.resources = append(p.resources, r)
}

// AppendSpine appends a manifest idref to the linear reading order.
func (p *Package) AppendSpine(idref string) {
	p.spine = append(p.spine, idref)
}

// AddNavEntry appends a table-of-contents entry.
func (p *Package) AddNavEntry(title, href string) {
	p.nav = append(p.nav, NavEntry{Title: title, Href: href})
}

// SetCover marks a manifest entry as the cover image.
func (p *Package) SetCover(id string) {
	p.coverID = id
}

// Resources returns the manifest entries in insertion order.
func (p *Package) Resources() []Resource {
	return p.resources
}

// Spine returns the linear reading order as manifest idrefs.
func (p *Package) Spine() []string {
	return p.spine
}

// NavEntries returns the table-of-contents entries.
func (p *Package) NavEntries() []NavEntry {
	return p.nav
}

// Validate checks the structural invariants that must hold before
// serialization: every identifier unique, every spine idref present in the
// manifest, every navigation entry pointing at a spine document, and the
// cover id (when set) present in the manifest.
func (p *Package) Validate() error {
	byID := make(map[string]Resource, len(p.resources))
	for _, r := range p.resources {
		if r.ID == "" {
			return fmt.Errorf("%w: resource %q has empty id", ErrIntegrity, r.Href)
		}
		if _, dup := byID[r.ID]; dup {
			return fmt.Errorf("%w: duplicate manifest id %q", ErrIntegrity, r.ID)
		}
		byID[r.ID] = r
	}

	spineHrefs := make(map[string]struct{}, len(p.spine))
	for _, idref := range p.spine {
		r, ok := byID[idref]
		if !ok {
			return fmt.Errorf("%w: spine references unknown manifest id %q", ErrIntegrity, idref)
		}
		spineHrefs[r.Href] = struct{}{}
	}

	for _, entry := range p.nav {
		if _, ok := spineHrefs[entry.Href]; !ok {
			return fmt.Errorf("%w: navigation entry %q targets %q which is not in the spine",
				ErrIntegrity, entry.Title, entry.Href)
		}
	}

	if p.coverID != "" {
		if _, ok := byID[p.coverID]; !ok {
			return fmt.Errorf("%w: cover references unknown manifest id %q", ErrIntegrity, p.coverID)
		}
	}

	return nil
}
