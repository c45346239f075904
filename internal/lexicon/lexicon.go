// Package lexicon loads and validates translation text for the 64 hexagrams.
package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Metadata is free-form information about the document's origin.
type Metadata struct {
	Source  string `json:"source,omitempty" toml:"source,omitempty"`
	Version string `json:"version,omitempty" toml:"version,omitempty"`
	Notes   string `json:"notes,omitempty" toml:"notes,omitempty"`
}

// Entry is the text for one hexagram.
type Entry struct {
	Number    int      `json:"number" toml:"number"`
	Name      string   `json:"name" toml:"name"`
	Upper     string   `json:"upper" toml:"upper"`
	Lower     string   `json:"lower" toml:"lower"`
	Image     string   `json:"image" toml:"image"`
	Judgement string   `json:"judgement" toml:"judgement"`
	Lines     []string `json:"lines" toml:"lines"`
}

// Line returns the commentary for 1-indexed position pos, or "" if absent.
func (e Entry) Line(pos int) string {
	if pos < 1 || pos > len(e.Lines) {
		return ""
	}
	return e.Lines[pos-1]
}

// Document is the persisted form of a lexicon. Metadata fields sit at the top
// level, alongside the hexagram list.
type Document struct {
	Metadata
	Hexagrams []Entry `json:"hexagrams" toml:"hexagrams"`
}

// Lexicon is a validated, read-only set of entries keyed by King Wen number.
type Lexicon struct {
	Path     string
	Metadata Metadata
	entries  [65]Entry
}

// Lookup returns the entry for hexagram n.
func (l *Lexicon) Lookup(n int) (Entry, bool) {
	if l == nil || n < 1 || n > 64 {
		return Entry{}, false
	}
	return l.entries[n], true
}

// Len returns the number of entries, always 64 for a loaded lexicon.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return 64
}

// Load reads, parses and validates the lexicon at path. The format is chosen
// by extension: .toml selects TOML, anything else JSON.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	doc, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lex, err := New(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lex.Path = path
	return lex, nil
}

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// Parse decodes a document without validating it.
func Parse(data []byte, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return doc, nil
}

// New validates doc and indexes its entries.
func New(doc Document) (*Lexicon, error) {
	if errs := Validate(doc); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i := range errs {
			joined[i] = &errs[i]
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(joined...))
	}

	lex := &Lexicon{Metadata: doc.Metadata}
	for _, e := range doc.Hexagrams {
		e.Lines = append([]string(nil), e.Lines...)
		lex.entries[e.Number] = e
	}
	return lex, nil
}

// Validate checks the record count, per-record line counts, number range and
// uniqueness. It returns every problem found, in document order.
func Validate(doc Document) []ValidationError {
	var errs []ValidationError

	if n := len(doc.Hexagrams); n != 64 {
		errs = append(errs, ValidationError{
			Category: ValCatCount,
			Index:    -1,
			Err:      ErrHexagramCount,
			Detail:   fmt.Sprintf("found %d", n),
		})
	}

	seen := make(map[int]int, len(doc.Hexagrams))
	for i, e := range doc.Hexagrams {
		if e.Number < 1 || e.Number > 64 {
			errs = append(errs, ValidationError{
				Category: ValCatNumberRange,
				Index:    i,
				Number:   e.Number,
				Err:      ErrNumberRange,
			})
		} else if prev, dup := seen[e.Number]; dup {
			errs = append(errs, ValidationError{
				Category: ValCatDuplicate,
				Index:    i,
				Number:   e.Number,
				Err:      ErrDuplicateNumber,
				Detail:   fmt.Sprintf("first seen at record %d", prev),
			})
		} else {
			seen[e.Number] = i
		}

		if n := len(e.Lines); n != 6 {
			errs = append(errs, ValidationError{
				Category: ValCatLineCount,
				Index:    i,
				Number:   e.Number,
				Err:      ErrLineCount,
				Detail:   fmt.Sprintf("found %d", n),
			})
		}
	}
	return errs
}

// Marshal encodes doc in the given format.
func Marshal(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatTOML:
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
