// Package render formats a Divination as a text report or JSON document.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/papapumpkin/hexcast/internal/divination"
	"github.com/papapumpkin/hexcast/internal/hexagram"
	"github.com/papapumpkin/hexcast/internal/lexicon"
)

// Lookup resolves translation text by King Wen number.
type Lookup interface {
	Lookup(n int) (lexicon.Entry, bool)
}

// Options controls report content.
type Options struct {
	// Lexicon annotates the report with translation text when non-nil.
	Lexicon Lookup
	// Color enables terminal styling.
	Color bool
}

func (o Options) entry(n int) (lexicon.Entry, bool) {
	if o.Lexicon == nil {
		return lexicon.Entry{}, false
	}
	return o.Lexicon.Lookup(n)
}

// Text writes the human-readable report for d to w.
func Text(w io.Writer, d divination.Divination, opts Options) error {
	st := newStyles(w, opts.Color)
	var b strings.Builder

	present := d.Present()
	entry, annotated := opts.entry(present.Number())
	writeHexagram(&b, st, "Hexagram", present, entry, annotated)
	if annotated {
		writeText(&b, st, "Judgement", entry.Judgement)
		writeText(&b, st, "Image", entry.Image)
	}

	future, ok := d.Future()
	if !ok {
		b.WriteString("\n" + st.muted("Unchanging.") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("\n" + st.changing("Changing lines: "+joinInts(d.ChangingLines())) + "\n")
	if annotated {
		for _, pos := range d.ChangingLines() {
			if text := entry.Line(pos); text != "" {
				fmt.Fprintf(&b, "  %d: %s\n", pos, text)
			}
		}
	}

	futureEntry, futureAnnotated := opts.entry(future.Number())
	b.WriteString("\n")
	writeHexagram(&b, st, "Becomes hexagram", future, futureEntry, futureAnnotated)
	if futureAnnotated {
		writeText(&b, st, "Judgement", futureEntry.Judgement)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeHexagram(b *strings.Builder, st styles, label string, h hexagram.Hexagram, e lexicon.Entry, annotated bool) {
	name := h.Name()
	if annotated && e.Name != "" {
		name = e.Name
	}
	b.WriteString(st.header(fmt.Sprintf("%s %d: %s", label, h.Number(), name)) + "\n")

	for pos := hexagram.LineCount; pos >= 1; pos-- {
		l := h.Line(pos)
		glyph := l.Glyph()
		if l.IsChanging() {
			glyph = st.changing(glyph)
		}
		fmt.Fprintf(b, "%d %s\n", pos, glyph)
	}

	trigrams := h.Trigrams()
	if annotated && e.Upper != "" && e.Lower != "" {
		if alt := e.Upper + " over " + e.Lower; alt != trigrams {
			trigrams += " (" + alt + ")"
		}
	}
	b.WriteString(st.muted(trigrams) + "\n")
}

func writeText(b *strings.Builder, st styles, label, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s\n", st.header(label), text)
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

type reportJSON struct {
	Present       hexagramJSON  `json:"present"`
	ChangingLines []int         `json:"changing_lines"`
	Future        *hexagramJSON `json:"future"`
}

type hexagramJSON struct {
	Number     int            `json:"number"`
	Name       string         `json:"name"`
	Lines      []int          `json:"lines"`
	Upper      string         `json:"upper"`
	Lower      string         `json:"lower"`
	Judgement  string         `json:"judgement,omitempty"`
	Image      string         `json:"image,omitempty"`
	Commentary map[int]string `json:"commentary,omitempty"`
}

func newHexagramJSON(h hexagram.Hexagram, opts Options) hexagramJSON {
	out := hexagramJSON{
		Number: h.Number(),
		Name:   h.Name(),
		Upper:  h.Upper().Name(),
		Lower:  h.Lower().Name(),
	}
	for _, l := range h.Lines() {
		out.Lines = append(out.Lines, l.Value())
	}
	if e, ok := opts.entry(h.Number()); ok {
		if e.Name != "" {
			out.Name = e.Name
		}
		out.Judgement = e.Judgement
		out.Image = e.Image
	}
	return out
}

// JSON writes d as an indented JSON document. Lines are listed bottom first as
// coin sums (6..9).
func JSON(w io.Writer, d divination.Divination, opts Options) error {
	out := reportJSON{
		Present:       newHexagramJSON(d.Present(), opts),
		ChangingLines: d.ChangingLines(),
	}
	if out.ChangingLines == nil {
		out.ChangingLines = []int{}
	}
	if e, ok := opts.entry(d.Present().Number()); ok {
		for _, pos := range out.ChangingLines {
			if text := e.Line(pos); text != "" {
				if out.Present.Commentary == nil {
					out.Present.Commentary = make(map[int]string)
				}
				out.Present.Commentary[pos] = text
			}
		}
	}
	if future, ok := d.Future(); ok {
		fj := newHexagramJSON(future, opts)
		out.Future = &fj
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
