// Package logger defines the diagnostic reporting contract between the
// stylesheet compiler and an embedding host.
//
// A host supplies a [Logger], a capability with optional Warn and Debug
// handlers, wherever a compile is invoked. The compiler calls the matching
// handler synchronously, in the order diagnostics are detected, through a
// [Dispatcher]. When no Logger is configured, or the matching handler is
// absent, a diagnostic falls through to the default sink which formats it
// onto standard error.
//
// This is intentionally not a general logging framework, there are exactly
// two message classes (warning and debug), no levels, and no persistence.
package logger

import "github.com/yidnekachew0/sass/internal/source"

// WarnOptions carries the contextual fields of a warning event, everything
// other than the message itself.
type WarnOptions struct {
	// Span locates the warning in the original source, nil when no location
	// information is available.
	Span *source.Span

	// Stack is an optional textual call stack. Its format is free-form and
	// opaque, hosts must treat it as a display string only.
	Stack string

	// Deprecation marks the warning as concerning a feature scheduled
	// for removal.
	Deprecation bool
}

// DebugOptions carries the contextual fields of a debug event.
type DebugOptions struct {
	// Span locates the debug directive in the original source. Debug
	// output is always source attributed so, unlike warnings, the span
	// is never absent.
	Span source.Span
}

// Logger is the capability a host supplies to receive diagnostics.
//
// Both handlers are optional, a nil handler is a first class state meaning
// "fall through to the default sink", not an error. The Logger itself holds
// no state, anything a handler accumulates is owned by the host that
// supplied it.
//
// A Logger may be invoked many times over one compilation and must be
// safely reusable. The compiler never invokes it concurrently within a
// single compilation, sharing one Logger across concurrent compilations
// is safe only if the host serialises the handlers itself.
type Logger struct {
	// Warn is called for every compiler or user issued warning.
	Warn func(message string, options WarnOptions)

	// Debug is called for every explicit debug directive.
	Debug func(message string, options DebugOptions)
}
