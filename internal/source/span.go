package source

import (
	"cmp"
	"fmt"
)

// Span is a half-open range [Start, End) of source text within a named
// source, carrying the covered text and optional surrounding context
// for display.
//
// A Span is a pure value. Copying it is cheap and the copy is stable, the
// text is owned by the Span itself rather than borrowed from a compiler
// buffer.
type Span struct {
	URL     string   `json:"url,omitempty"`     // Identifier of the originating source, empty for anonymous/inline sources
	Text    string   `json:"text"`              // The substring of source covered by the span
	Context string   `json:"context,omitempty"` // Optional surrounding text, typically the full first line of the span
	Start   Location `json:"start"`             // Start of the span (inclusive)
	End     Location `json:"end"`               // End of the span (exclusive)
}

// String returns a "url:line:col" representation of the [Span], pointing
// at its start. Most editors and terminals support clicking on this format
// to navigate to the position.
//
// Anonymous spans (no URL) render as "line:col" only.
func (s Span) String() string {
	if s.URL == "" {
		return s.Start.String()
	}

	return fmt.Sprintf("%s:%d:%d", s.URL, s.Start.Line, s.Start.Column)
}

// Valid reports whether the [Span] upholds its invariants: Start precedes
// or equals End under offset ordering, and Text covers exactly the bytes
// between the two offsets.
//
// Spans handed out by this package are always valid, Valid exists so
// callers receiving spans from elsewhere can sanity check them.
func (s Span) Valid() bool {
	return Compare(s.Start, s.End) <= 0 && len(s.Text) == s.End.Offset-s.Start.Offset
}

// CompareSpan is like [cmp.Compare] for a [Span].
//
// Spans within the same source are ordered by start offset, with ties
// broken by end offset. Spans from different sources are ordered
// alphabetically by URL.
func CompareSpan(x, y Span) int {
	if x.URL != y.URL {
		return cmp.Compare(x.URL, y.URL)
	}

	if c := Compare(x.Start, y.Start); c != 0 {
		return c
	}

	return Compare(x.End, y.End)
}
