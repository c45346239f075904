package lexicon

import (
	"errors"
	"fmt"
)

// Sentinel errors for lexicon loading. Every Load failure wraps exactly one of
// ErrRead, ErrParse or ErrInvalid.
var (
	// ErrRead indicates the lexicon file could not be read.
	ErrRead = errors.New("lexicon read failed")
	// ErrParse indicates the document is not well-formed JSON or TOML.
	ErrParse = errors.New("lexicon parse failed")
	// ErrInvalid indicates the document parsed but its data is unusable.
	ErrInvalid = errors.New("lexicon validation failed")

	// ErrHexagramCount indicates the document does not hold exactly 64 records.
	ErrHexagramCount = errors.New("lexicon must contain exactly 64 hexagrams")
	// ErrLineCount indicates a record does not hold exactly 6 line entries.
	ErrLineCount = errors.New("hexagram must have exactly 6 lines")
	// ErrNumberRange indicates a record number outside 1..64.
	ErrNumberRange = errors.New("hexagram number must be between 1 and 64")
	// ErrDuplicateNumber indicates two records share a number.
	ErrDuplicateNumber = errors.New("duplicate hexagram number")
	// ErrUnsupportedFormat indicates an unrecognised file extension.
	ErrUnsupportedFormat = errors.New("unsupported lexicon format")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	ValCatCount       ValidationCategory = "count"
	ValCatLineCount   ValidationCategory = "line_count"
	ValCatNumberRange ValidationCategory = "number_range"
	ValCatDuplicate   ValidationCategory = "duplicate"
)

// ValidationError records a data problem with the record that caused it.
// Index is the 0-based position in the document, or -1 for document-level
// problems.
type ValidationError struct {
	Category ValidationCategory
	Index    int
	Number   int
	Err      error
	Detail   string
}

func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Index < 0 {
		return msg
	}
	return fmt.Sprintf("hexagram record %d (number %d): %s", e.Index, e.Number, msg)
}

// Unwrap returns the underlying sentinel for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every *ValidationError in err's tree, in order.
func ValidationErrors(err error) []*ValidationError {
	var out []*ValidationError
	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case nil:
		case *ValidationError:
			out = append(out, x)
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		}
	}
	walk(err)
	return out
}
