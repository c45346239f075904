// Package cointest provides scripted and counting coin sources for tests.
package cointest

// Heads and Tails name scripted tosses.
const (
	Heads = true
	Tails = false
)

// Flipper is any coin source.
type Flipper interface {
	Flip() bool
}

// Script replays a fixed sequence of tosses. It panics when the sequence is
// exhausted.
type Script struct {
	seq []bool
	pos int
}

// NewScript returns a source that yields seq in order.
func NewScript(seq ...bool) *Script {
	return &Script{seq: append([]bool(nil), seq...)}
}

// Flip returns the next scripted toss.
func (s *Script) Flip() bool {
	if s.pos >= len(s.seq) {
		panic("cointest: script exhausted")
	}
	v := s.seq[s.pos]
	s.pos++
	return v
}

// Used reports how many tosses have been consumed.
func (s *Script) Used() int { return s.pos }

// Remaining reports how many tosses are left.
func (s *Script) Remaining() int { return len(s.seq) - s.pos }

// Counting wraps a source and counts the tosses drawn through it. It is not
// safe for concurrent use.
type Counting struct {
	src Flipper
	n   int
}

// NewCounting wraps src.
func NewCounting(src Flipper) *Counting {
	return &Counting{src: src}
}

// Flip draws from the wrapped source.
func (c *Counting) Flip() bool {
	c.n++
	return c.src.Flip()
}

// Count returns the number of tosses drawn so far.
func (c *Counting) Count() int { return c.n }
