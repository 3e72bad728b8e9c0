package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Rendering applied by the default sink. Each formatted diagnostic is
// written as a single line followed by '\n'.
const (
	// deprecationPrefix marks deprecation warnings in default sink output.
	deprecationPrefix = "DEPRECATION WARNING: "

	// unattributedPrefix is the sentinel distinguishing warnings that carry
	// no usable source location.
	unattributedPrefix = "::: "

	// stackIndent indents each line of a warning's stack trace underneath
	// the formatted message.
	stackIndent = "    "
)

// HandlerError reports that a host supplied handler failed during
// invocation.
//
// It is deliberately distinct from any compile error so a host can tell
// "my logger is broken" apart from "the stylesheet is broken".
type HandlerError struct {
	Recovered any    // The value recovered from the failing handler
	Handler   string // Which handler failed, "warn" or "debug"
}

// Error implements the error interface for a [HandlerError].
func (h *HandlerError) Error() string {
	return fmt.Sprintf("%s handler failed: %v", h.Handler, h.Recovered)
}

// Option is a functional option for configuring a [Dispatcher].
type Option func(*Dispatcher)

// Stderr sets the writer the default sink emits to, overriding the
// process's standard error stream. Primarily useful for embedding
// and testing.
func Stderr(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.stderr = w
	}
}

// PropagatePanics opts out of handler failure protection.
//
// By default a handler that panics is caught and converted into a
// [HandlerError]. With this option set, the panic is allowed to
// propagate to the caller.
func PropagatePanics() Option {
	return func(d *Dispatcher) {
		d.propagate = true
	}
}

// Dispatcher routes diagnostic events to a configured [Logger], falling
// back to the default sink for any event the Logger does not handle.
//
// The Dispatcher holds no mutable state, events are delivered synchronously
// and in the exact order they are raised. A handler that blocks stalls the
// compilation, no timeout is applied, that is a documented host
// responsibility.
type Dispatcher struct {
	logger    *Logger   // The configured Logger, nil means default sink for everything
	stderr    io.Writer // Destination of the default sink
	propagate bool      // Let handler panics propagate instead of catching them
}

// New returns a [Dispatcher] for the given [Logger].
//
// logger may be nil, meaning no Logger is configured and every diagnostic
// takes the default sink path.
func New(logger *Logger, options ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		stderr: os.Stderr,
	}

	for _, option := range options {
		option(d)
	}

	return d
}

// Warn delivers a warning event.
//
// If the configured Logger defines a Warn handler it is invoked
// synchronously with the message and options. Otherwise the event is
// formatted onto the default sink as:
//
//	url:line:col: message    # span with a known URL
//	::: message              # no span, or an anonymous source
//
// with "DEPRECATION WARNING: " prefixed to the message when
// options.Deprecation is set, and the stack (if any) indented underneath.
//
// The returned error is non-nil only when the handler itself fails, in
// which case it is a [*HandlerError]. Emitting a warning never fails
// a compilation.
func (d *Dispatcher) Warn(message string, options WarnOptions) (err error) {
	if d.logger != nil && d.logger.Warn != nil {
		if !d.propagate {
			defer catch("warn", &err)
		}

		d.logger.Warn(message, options)

		return nil
	}

	if options.Deprecation {
		message = deprecationPrefix + message
	}

	if options.Span != nil && options.Span.URL != "" {
		d.sink(fmt.Sprintf("%s: %s", options.Span, message))
	} else {
		d.sink(unattributedPrefix + message)
	}

	if options.Stack != "" {
		for line := range strings.Lines(options.Stack) {
			d.sink(stackIndent + strings.TrimRight(line, "\n"))
		}
	}

	return nil
}

// Debug delivers a debug event.
//
// If the configured Logger defines a Debug handler it is invoked
// synchronously, otherwise the event is formatted onto the default sink
// as "url:line:col: message". Debug events always carry a span and never
// a deprecation marker.
//
// As with [Dispatcher.Warn], the returned error is non-nil only when the
// handler itself fails.
func (d *Dispatcher) Debug(message string, options DebugOptions) (err error) {
	if d.logger != nil && d.logger.Debug != nil {
		if !d.propagate {
			defer catch("debug", &err)
		}

		d.logger.Debug(message, options)

		return nil
	}

	if options.Span.URL != "" {
		d.sink(fmt.Sprintf("%s: %s", options.Span, message))
	} else {
		d.sink(unattributedPrefix + message)
	}

	return nil
}

// sink writes one formatted line to the default sink destination.
//
// Writing is best effort, a broken stderr must not abort a compilation so
// the error is discarded.
func (d *Dispatcher) sink(line string) {
	fmt.Fprintln(d.stderr, line) //nolint:errcheck // best effort by contract
}

// catch converts a panicking handler into a [*HandlerError], for use
// as a deferred call around handler invocation.
func catch(handler string, err *error) {
	if recovered := recover(); recovered != nil {
		*err = &HandlerError{Handler: handler, Recovered: recovered}
	}
}
