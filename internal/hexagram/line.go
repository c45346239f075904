// Package hexagram models I Ching lines and hexagrams: the weighted
// three-coin line generator, the King Wen encoder, and trigram decomposition.
package hexagram

import "fmt"

// LineState is one of the four line variants produced by a three-coin toss.
// The underlying value is the traditional coin sum (6..9).
type LineState int

const (
	ChangingYin  LineState = 6 // old yin, becomes yang
	StaticYang   LineState = 7 // young yang
	StaticYin    LineState = 8 // young yin
	ChangingYang LineState = 9 // old yang, becomes yin
)

// Source supplies independent, unbiased boolean draws.
type Source interface {
	// Flip returns the outcome of one fair coin toss (true = heads).
	Flip() bool
}

// Coin values for a single toss.
const (
	headsValue = 3
	tailsValue = 2
)

// Generate tosses three coins from src and returns the resulting line.
// Heads count 3 and tails 2, so sums 6 and 9 (changing lines) each occur with
// probability 1/8 and sums 7 and 8 with probability 3/8.
func Generate(src Source) LineState {
	sum := 0
	for range 3 {
		if src.Flip() {
			sum += headsValue
		} else {
			sum += tailsValue
		}
	}
	l, err := ParseLineState(sum)
	if err != nil {
		panic(fmt.Sprintf("hexagram: unreachable coin sum: %v", err))
	}
	return l
}

// ParseLineState maps a coin sum (6..9) to its line state.
func ParseLineState(sum int) (LineState, error) {
	switch LineState(sum) {
	case ChangingYin, StaticYang, StaticYin, ChangingYang:
		return LineState(sum), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidLine, sum)
	}
}

// Valid reports whether l is one of the four defined variants.
func (l LineState) Valid() bool {
	_, err := ParseLineState(int(l))
	return err == nil
}

// Value returns the coin sum associated with l.
func (l LineState) Value() int { return int(l) }

// IsYang reports whether l is a solid line, static or changing.
func (l LineState) IsYang() bool {
	return l == StaticYang || l == ChangingYang
}

// IsChanging reports whether l is an old line that flips in the future hexagram.
func (l LineState) IsChanging() bool {
	return l == ChangingYin || l == ChangingYang
}

// Glyph returns the nine-character drawing of the line.
func (l LineState) Glyph() string {
	switch l {
	case StaticYang:
		return "---------"
	case StaticYin:
		return "---   ---"
	case ChangingYang:
		return "----o----"
	case ChangingYin:
		return "--- x ---"
	default:
		return "?????????"
	}
}

func (l LineState) String() string {
	switch l {
	case ChangingYin:
		return "ChangingYin"
	case StaticYang:
		return "StaticYang"
	case StaticYin:
		return "StaticYin"
	case ChangingYang:
		return "ChangingYang"
	default:
		return fmt.Sprintf("LineState(%d)", int(l))
	}
}
