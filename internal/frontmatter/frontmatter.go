// Package frontmatter extracts the YAML metadata block from the top of an
// Obsidian note and returns the remaining body untouched.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrMalformed indicates the metadata block exists but is not valid YAML.
// Callers are expected to treat this as recoverable: keep the full note text
// and proceed with an empty Matter.
var ErrMalformed = errors.New("malformed frontmatter")

// Matter holds the declared metadata of a single note. Keys absent from the
// source are zero values; no defaults are injected here.
type Matter struct {
	Title   string
	Author  string
	Date    string
	Tags    []string
	Aliases []string
	Chapter *int
	// Custom preserves unrecognized keys as opaque metadata.
	Custom map[string]any
}

// IsZero reports whether no metadata was declared at all.
func (m Matter) IsZero() bool {
	return m.Title == "" && m.Author == "" && m.Date == "" &&
		len(m.Tags) == 0 && len(m.Aliases) == 0 && m.Chapter == nil &&
		len(m.Custom) == 0
}

// HasTag reports whether the note declares the given tag (case-insensitive).
func (m Matter) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// envelope is the YAML decoding target. Tags and aliases accept both
// sequences and scalars, so they decode into any and are normalized after.
type envelope struct {
	Title   string         `yaml:"title"`
	Author  string         `yaml:"author"`
	Date    string         `yaml:"date"`
	Tags    any            `yaml:"tags"`
	Aliases any            `yaml:"aliases"`
	Chapter *int           `yaml:"chapter"`
	Custom  map[string]any `yaml:",inline"`
}

// Parse splits source into (Matter, body). When no metadata block is present
// the Matter is zero and the body is the input unchanged. A malformed block
// returns ErrMalformed together with the zero Matter and the full input, so
// callers can degrade without losing text.
func Parse(source []byte) (Matter, []byte, error) {
	var env envelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return Matter{}, source, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	m := Matter{
		Title:   env.Title,
		Author:  env.Author,
		Date:    env.Date,
		Tags:    normalizeList(env.Tags),
		Aliases: normalizeList(env.Aliases),
		Chapter: env.Chapter,
		Custom:  env.Custom,
	}
	return m, body, nil
}

// normalizeList accepts a YAML sequence or a whitespace/comma separated
// scalar and returns a clean []string. Obsidian allows both forms for tags.
func normalizeList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		sep := " "
		if strings.Contains(val, ",") {
			sep = ","
		}
		var out []string
		for _, part := range strings.Split(val, sep) {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out
	case []any:
		var out []string
		for _, item := range val {
			if item == nil {
				continue
			}
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
