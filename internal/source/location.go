// Package source provides the location and span model used to attribute
// diagnostics to a position in an original stylesheet.
//
// A [Location] is a single point in a source text, a [Span] is a half-open
// range between two Locations. Both are immutable values, independent of
// whatever buffers the producing compiler holds internally, so they remain
// valid after a diagnostic call returns.
package source

import (
	"cmp"
	"fmt"
)

// Location is a single point within a source text.
//
// Line and Column are 1 indexed, matching what editors and terminals show.
// Offset is the 0 indexed byte offset from the start of the source, it is
// the authoritative field for ordering and must agree with Line/Column for
// a given source text.
type Location struct {
	Offset int `json:"offset"` // Byte offset from the start of the source (0 indexed)
	Line   int `json:"line"`   // Line number (1 indexed)
	Column int `json:"column"` // Column within the line (1 indexed)
}

// String returns a "line:col" representation of the [Location].
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Compare is like [cmp.Compare] for a [Location], ordering by byte offset.
//
// It returns -1 if x is before y, 0 if they are the same point, and +1
// if x is after y.
func Compare(x, y Location) int {
	return cmp.Compare(x.Offset, y.Offset)
}
