// Package syntax handles reading raw .scss source text into the directives
// that produce diagnostics, and implements the tokeniser and parser as well
// as some language level integration tests.
//
// The packages here are the producer side of the diagnostic contract, they
// build [source.Span]s for each directive they recognise so that warnings
// and debug messages can be attributed back to the original stylesheet.
package syntax

import (
	"github.com/yidnekachew0/sass/internal/source"
)

// DirectiveKind discriminates the diagnostic producing at-rules.
type DirectiveKind int

//go:generate stringer -type DirectiveKind -linecomment
const (
	// Warn is a '@warn' directive, a user issued warning.
	Warn DirectiveKind = iota // Warn

	// Debug is a '@debug' directive, always source attributed.
	Debug // Debug

	// Import is a '@import' directive, which raises a deprecation warning.
	Import // Import
)

// Directive is a single diagnostic producing at-rule recognised in
// a stylesheet.
type Directive struct {
	Message string        `json:"message"` // The message carried by the directive, e.g. the unquoted @warn string
	Span    source.Span   `json:"span"`    // The span of source covered by the directive
	Kind    DirectiveKind `json:"kind"`    // Which at-rule this is
}

// File is a parsed .scss stylesheet, reduced to the directives that
// produce diagnostics. Everything else in the stylesheet is recognised
// and skipped.
type File struct {
	Name       string      `json:"name"`                 // Name of the file
	Directives []Directive `json:"directives,omitempty"` // The directives, in source order
}

// Diagnostic is a syntax level error, distinct from the warning and debug
// events the directives themselves produce.
type Diagnostic struct {
	Msg  string      `json:"msg"`  // A descriptive message explaining the error
	Span source.Span `json:"span"` // The source the diagnostic points to
}

// String prints a [Diagnostic].
func (d Diagnostic) String() string {
	return d.Span.String() + ": " + d.Msg + "\n"
}
