// Package lexicontest builds lexicon fixtures for tests.
package lexicontest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/papapumpkin/hexcast/internal/hexagram"
	"github.com/papapumpkin/hexcast/internal/lexicon"
)

// Document returns a valid 64-entry document with predictable text:
// judgement "J<n>", image "I<n>", and line commentary "L<n>.<pos>".
func Document() lexicon.Document {
	doc := lexicon.Document{
		Metadata: lexicon.Metadata{Source: "fixture", Version: "1"},
	}
	for n := 1; n <= 64; n++ {
		h, err := hexagram.FromNumber(n)
		if err != nil {
			panic(err)
		}
		e := lexicon.Entry{
			Number:    n,
			Name:      hexagram.Name(n),
			Upper:     h.Upper().Name(),
			Lower:     h.Lower().Name(),
			Image:     fmt.Sprintf("I%d", n),
			Judgement: fmt.Sprintf("J%d", n),
		}
		for pos := 1; pos <= 6; pos++ {
			e.Lines = append(e.Lines, fmt.Sprintf("L%d.%d", n, pos))
		}
		doc.Hexagrams = append(doc.Hexagrams, e)
	}
	return doc
}

// Lexicon returns Document as a validated lexicon.
func Lexicon(t testing.TB) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.New(Document())
	if err != nil {
		t.Fatalf("lexicon.New: %v", err)
	}
	return lex
}

// WriteFile encodes doc into dir/name, choosing the format from the
// extension, and returns the path.
func WriteFile(t testing.TB, dir, name string, doc lexicon.Document) string {
	t.Helper()
	format := lexicon.FormatJSON
	if filepath.Ext(name) == ".toml" {
		format = lexicon.FormatTOML
	}
	data, err := lexicon.Marshal(doc, format)
	if err != nil {
		t.Fatalf("lexicon.Marshal: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
