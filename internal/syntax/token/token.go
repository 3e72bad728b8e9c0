// Package token provides the set of lexical tokens for an .scss stylesheet.
package token

import (
	"fmt"
	"slices"
)

// Token is a lexical token in an .scss stylesheet.
type Token struct {
	Kind  Kind // The kind of token this is
	Start int  // Byte offset from the start of the file to the start of this token
	End   int  // Byte offset from the start of the file to the end of this token
}

// String implements [fmt.Stringer] for a [Token].
func (t Token) String() string {
	return fmt.Sprintf("<Token::%s start=%d, end=%d>", t.Kind, t.Start, t.End)
}

// Is reports whether the token is any of the provided [Kind]s.
func (t Token) Is(kinds ...Kind) bool {
	return slices.Contains(kinds, t.Kind)
}

// Directive reports whether a string names a diagnostic-relevant at-rule,
// returning its [Kind] and true if it does. Otherwise [Ident] and false
// are returned.
func Directive(text string) (kind Kind, ok bool) {
	switch text {
	case "warn":
		return Warn, true
	case "debug":
		return Debug, true
	case "import":
		return Import, true
	default:
		return Ident, false
	}
}
