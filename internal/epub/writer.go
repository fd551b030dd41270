package epub

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
)

const containerXML = `<?xml version="1.0" encoding="utf-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

// Write validates the package and serializes it to path. The archive is
// staged as a temp file in the destination directory and renamed into place
// on success, so a failed run never leaves a partial artifact behind.
// Existing files at path are overwritten.
func (p *Package) Write(path string) error {
	if err := p.finalize(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	opfDoc, err := p.opf()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}

	tmp, err := os.CreateTemp(dir, ".md2epub-*.epub")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// No-ops once the rename has succeeded.
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := writeArchive(tmp, opfDoc, p.resources); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	// CreateTemp defaults to 0600; give the artifact conventional
	// permissions before it lands at the destination.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// writeArchive lays out the EPUB zip: the mimetype entry first and stored
// uncompressed (required by the container spec), then the container
// descriptor, package document, and every resource under OEBPS/.
func writeArchive(f *os.File, opfDoc []byte, resources []Resource) error {
	zw := zip.NewWriter(f)

	mimetype, err := zw.CreateHeader(&zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	})
	if err != nil {
		return err
	}
	if _, err := mimetype.Write([]byte("application/epub+zip")); err != nil {
		return err
	}

	entries := []struct {
		name string
		data []byte
	}{
		{"META-INF/container.xml", []byte(containerXML)},
		{"OEBPS/content.opf", opfDoc},
	}
	for _, r := range resources {
		entries = append(entries, struct {
			name string
			data []byte
		}{"OEBPS/" + r.Href, r.Data})
	}

	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return err
		}
		if _, err := w.Write(e.data); err != nil {
			return err
		}
	}

	return zw.Close()
}
