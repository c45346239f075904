package hexagram

import (
	"fmt"
	"strings"
)

// LineCount is the number of lines in a hexagram.
const LineCount = 6

// Hexagram is an immutable stack of six lines, index 0 at the bottom, together
// with its King Wen number.
type Hexagram struct {
	lines  [LineCount]LineState
	number int
}

// New encodes lines into a Hexagram. Lines are copied; later changes to the
// caller's array do not affect the result.
func New(lines [LineCount]LineState) Hexagram {
	return Hexagram{lines: lines, number: Encode(lines)}
}

// Cast generates six lines bottom to top from src and encodes them.
func Cast(src Source) Hexagram {
	var lines [LineCount]LineState
	for i := range lines {
		lines[i] = Generate(src)
	}
	return New(lines)
}

// Encode returns the King Wen number (1..64) of a six-line pattern.
// Volatility is ignored; only polarity contributes.
func Encode(lines [LineCount]LineState) int {
	return kingWen[pattern(lines)]
}

func pattern(lines [LineCount]LineState) uint8 {
	var p uint8
	for i, l := range lines {
		if l.IsYang() {
			p |= 1 << i
		}
	}
	return p
}

// FromNumber returns the hexagram with King Wen number n built from static
// lines only.
func FromNumber(n int) (Hexagram, error) {
	if n < 1 || n > 64 {
		return Hexagram{}, fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	return FromPattern(patternOf[n])
}

// FromPattern returns the static-line hexagram for a 6-bit pattern, bit 0 the
// bottom line.
func FromPattern(p uint8) (Hexagram, error) {
	if p > 63 {
		return Hexagram{}, fmt.Errorf("%w: %d", ErrInvalidPattern, p)
	}
	var lines [LineCount]LineState
	for i := range lines {
		if p&(1<<i) != 0 {
			lines[i] = StaticYang
		} else {
			lines[i] = StaticYin
		}
	}
	return New(lines), nil
}

// Lines returns a copy of the six lines, bottom first.
func (h Hexagram) Lines() [LineCount]LineState { return h.lines }

// Line returns the line at 1-indexed position pos (1 = bottom).
func (h Hexagram) Line(pos int) LineState { return h.lines[pos-1] }

// Number is the King Wen sequence number.
func (h Hexagram) Number() int { return h.number }

// Name is the conventional English name of the hexagram.
func (h Hexagram) Name() string { return Name(h.number) }

// Pattern is the 6-bit Yin/Yang pattern, bit 0 = bottom line.
func (h Hexagram) Pattern() uint8 { return pattern(h.lines) }

// Lower returns the trigram formed by lines 1..3.
func (h Hexagram) Lower() Trigram {
	return TrigramOf([3]LineState{h.lines[0], h.lines[1], h.lines[2]})
}

// Upper returns the trigram formed by lines 4..6.
func (h Hexagram) Upper() Trigram {
	return TrigramOf([3]LineState{h.lines[3], h.lines[4], h.lines[5]})
}

// Trigrams renders the decomposition as "<upper> over <lower>".
func (h Hexagram) Trigrams() string {
	return h.Upper().Name() + " over " + h.Lower().Name()
}

// ChangingPositions lists the 1-indexed positions of changing lines in
// ascending order.
func (h Hexagram) ChangingPositions() []int {
	var out []int
	for i, l := range h.lines {
		if l.IsChanging() {
			out = append(out, i+1)
		}
	}
	return out
}

func (h Hexagram) String() string {
	var b strings.Builder
	for i := LineCount - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%d %s\n", i+1, h.lines[i].Glyph())
	}
	return b.String()
}
