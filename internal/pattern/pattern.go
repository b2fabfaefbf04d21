package pattern

import (
	"errors"
	"fmt"
	"iter"
)

// Parse and expansion failures. Errors returned by this package wrap one
// of these sentinels, so callers can classify with errors.Is while still
// seeing the offending token in the message.
var (
	// ErrMalformedPattern indicates the target URL does not contain
	// exactly one well-formed bracket expression, or a component inside
	// the brackets is not a number or a hyphenated number pair.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrReversedRange indicates a range component whose start exceeds
	// its end, such as "5-2".
	ErrReversedRange = errors.New("reversed range")

	// ErrTooManyItems indicates the expression would expand to more
	// items than the configured ceiling allows.
	ErrTooManyItems = errors.New("pattern expands to too many items")
)

// ComponentKind distinguishes the two component shapes the grammar
// allows. The kind is decided once at parse time and never
// re-interpreted downstream.
type ComponentKind int

const (
	// KindSingular is a single number, e.g. "7" or "0007".
	KindSingular ComponentKind = iota

	// KindRange is an inclusive span, e.g. "10-13".
	KindRange
)

// Component is one comma-separated entry of a bracket expression.
//
// For a singular component Start and End are equal. Width is the
// character length of the starting number as written in the source
// pattern and controls zero padding of every value the component emits.
type Component struct {
	Kind  ComponentKind
	Start int64
	End   int64
	Width int
}

// count returns how many tokens this component expands to.
func (c Component) count() uint64 {
	return uint64(c.End-c.Start) + 1
}

// Expression is an ordered, non-empty sequence of components, in the
// order they were written. Component widths are preserved individually;
// they are never normalized across the expression.
type Expression []Component

// Count returns the total number of tokens the expression expands to.
func (e Expression) Count() uint64 {
	var n uint64
	for _, c := range e {
		n += c.count()
	}
	return n
}

// Validate checks the expansion size against a ceiling without
// expanding anything. It returns ErrTooManyItems as soon as the running
// total exceeds maxItems, so even absurd patterns like [0-999999999]
// fail in constant time.
func (e Expression) Validate(maxItems uint64) error {
	var n uint64
	for _, c := range e {
		n += c.count()
		if n > maxItems {
			return fmt.Errorf("%w: more than %d", ErrTooManyItems, maxItems)
		}
	}
	return nil
}

// Tokens returns a lazy, restartable iterator over the expanded tokens.
//
// Components expand in written order; within a range, values ascend
// from Start to End inclusive. Each value is zero-padded to at least
// the component's width. Overlapping components emit their values
// independently: no deduplication or reordering is performed, and
// re-iterating yields an identical sequence.
func (e Expression) Tokens() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range e {
			for v := c.Start; ; v++ {
				if !yield(formatToken(v, c.Width)) {
					return
				}
				if v == c.End {
					break
				}
			}
		}
	}
}

// formatToken renders v padded with leading zeros to at least width
// characters. Values wider than width keep their natural length.
func formatToken(v int64, width int) string {
	return fmt.Sprintf("%0*d", width, v)
}
