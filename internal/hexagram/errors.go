package hexagram

import "errors"

var (
	// ErrInvalidLine indicates a coin sum outside 6..9.
	ErrInvalidLine    = errors.New("invalid line value")
	// ErrInvalidNumber indicates a King Wen number outside 1..64.
	ErrInvalidNumber  = errors.New("hexagram number out of range")
	// ErrInvalidPattern indicates a line pattern wider than six bits.
	ErrInvalidPattern = errors.New("line pattern out of range")
)
