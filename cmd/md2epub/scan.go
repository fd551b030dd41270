package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	md2epub "github.com/alnah/go-md2epub"
	"github.com/alnah/go-md2epub/internal/config"
	"github.com/alnah/go-md2epub/internal/fileutil"
	"github.com/alnah/go-md2epub/internal/frontmatter"
	"github.com/alnah/go-md2epub/internal/hints"
	"github.com/alnah/go-md2epub/internal/logger"
)

// ErrNoNotesFound reports a folder scan that selected nothing.
var ErrNoNotesFound = errors.New("no notes found")

// Notes without a chapter hint sort after every numbered one.
const unnumberedChapter = 999

// scannedNote pairs a note with its ordering key.
type scannedNote struct {
	note    md2epub.Note
	chapter int
}

// discoverNotes walks dir for markdown files, filters by tag, and orders
// them by frontmatter chapter hint, ties broken by path. Notes with
// malformed frontmatter are kept as untagged and unnumbered; filtered and
// degraded files are reported through logg at debug level.
func discoverNotes(dir, tag string, logg *logger.Logger) ([]scannedNote, error) {
	var notes []scannedNote

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories hold vault internals (.obsidian, .git).
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.IsMarkdownFile(path) {
			return nil
		}

		data, err := os.ReadFile(path) // #nosec G304 -- paths come from the scanned folder
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrReadNote, path, err)
		}

		matter, _, err := frontmatter.Parse(data)
		if err != nil {
			logg.NoteError(path, err)
		}
		if tag != "" && !matter.HasTag(tag) {
			logg.NoteSkipped(path, "missing tag "+tag)
			return nil
		}

		ch := unnumberedChapter
		if matter.Chapter != nil {
			ch = *matter.Chapter
		}
		notes = append(notes, scannedNote{
			note:    md2epub.Note{Path: path, Content: string(data)},
			chapter: ch,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].chapter != notes[j].chapter {
			return notes[i].chapter < notes[j].chapter
		}
		return notes[i].note.Path < notes[j].note.Path
	})

	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: %s%s", ErrNoNotesFound, dir, hints.ForEmptyScan(tag))
	}
	return notes, nil
}

// runScan lists the notes a folder conversion would include, in order.
func runScan(args []string, flags *scanFlags, env *Environment) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: scan takes exactly one folder", ErrNoInput)
	}

	logg := newLogger(env, flags.common)

	tag := flags.tag
	if flags.common.config != "" {
		cfg, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return configLoadError(flags.common.config, err)
		}
		logg.ConfigLoaded(flags.common.config)
		if tag == "" {
			tag = cfg.Scan.Tag
		}
	}

	notes, err := discoverNotes(args[0], tag, logg)
	if err != nil {
		return err
	}

	for _, n := range notes {
		if n.chapter == unnumberedChapter {
			fmt.Fprintf(env.Stdout, "  -  %s\n", n.note.Path)
			continue
		}
		fmt.Fprintf(env.Stdout, "%3d  %s\n", n.chapter, n.note.Path)
	}
	return nil
}
