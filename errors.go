package md2epub

import (
	"errors"

	"github.com/alnah/go-md2epub/internal/epub"
)

// Sentinel errors for library operations.
var (
	ErrNoNotes         = errors.New("no notes provided")
	ErrInvalidOptions  = errors.New("invalid options")
	ErrRenderChapter   = errors.New("chapter rendering failed")
	ErrEmptyOutputPath = errors.New("output path cannot be empty")

	// Assembly-time errors surface from the package builder. Integrity
	// violations indicate a pipeline defect, not bad input.
	ErrPackageIntegrity = epub.ErrIntegrity
	ErrWriteOutput      = epub.ErrWrite
)
