// Package divination casts a present hexagram and derives its future
// hexagram from any changing lines.
package divination

import "github.com/papapumpkin/hexcast/internal/hexagram"

// Divination is the immutable result of one casting.
type Divination struct {
	present  hexagram.Hexagram
	future   hexagram.Hexagram
	changing []int
}

// Cast draws six lines from src, bottom to top, and derives the future
// hexagram. It consumes exactly 18 tosses.
func Cast(src hexagram.Source) Divination {
	return fromHexagram(hexagram.Cast(src))
}

// FromLines builds a Divination from explicit lines, bottom first.
func FromLines(lines [hexagram.LineCount]hexagram.LineState) Divination {
	return fromHexagram(hexagram.New(lines))
}

func fromHexagram(present hexagram.Hexagram) Divination {
	d := Divination{
		present:  present,
		changing: present.ChangingPositions(),
	}
	if len(d.changing) == 0 {
		return d
	}

	lines := present.Lines()
	for i, l := range lines {
		lines[i] = Transform(l)
	}
	d.future = hexagram.New(lines)
	return d
}

// Transform applies the changing-line rule: old yang becomes young yin, old
// yin becomes young yang, static lines are unchanged.
func Transform(l hexagram.LineState) hexagram.LineState {
	switch l {
	case hexagram.ChangingYang:
		return hexagram.StaticYin
	case hexagram.ChangingYin:
		return hexagram.StaticYang
	default:
		return l
	}
}

// Present is the hexagram as cast.
func (d Divination) Present() hexagram.Hexagram { return d.present }

// Future returns the derived hexagram, and false when no line is changing.
func (d Divination) Future() (hexagram.Hexagram, bool) {
	return d.future, len(d.changing) > 0
}

// Unchanging reports whether the casting has no changing lines.
func (d Divination) Unchanging() bool { return len(d.changing) == 0 }

// ChangingLines returns the 1-indexed positions of changing lines, bottom to
// top.
func (d Divination) ChangingLines() []int {
	return append([]int(nil), d.changing...)
}
