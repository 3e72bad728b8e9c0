// Package sass implements the functionality of the program, the CLI in
// package cmd is simply the entrypoint to exported functions and methods
// in this package.
package sass

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/log"

	diag "github.com/yidnekachew0/sass/internal/logger"
	"github.com/yidnekachew0/sass/internal/syntax"
)

// Sass represents the sass program.
type Sass struct {
	stdin   io.Reader   // Program input
	stdout  io.Writer   // Normal program output is written here
	stderr  io.Writer   // Diagnostics, logs and errors are written here
	logger  *log.Logger // The logger for the application itself
	version string      // Version of the program
}

// New returns a new [Sass].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Sass {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(level))

	return Sass{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		version: version,
	}
}

// dispatch replays the directives of a parsed file through a diagnostic
// dispatcher, in source order.
//
// @warn directives become warning events carrying a one-frame textual
// stack, @debug directives become debug events, and @import directives
// become deprecation warnings.
//
// A failing handler does not stop delivery of later diagnostics, the first
// failure is returned once every directive has been dispatched.
func (s Sass) dispatch(dispatcher *diag.Dispatcher, file syntax.File) error {
	var firstErr error

	for _, directive := range file.Directives {
		var err error

		switch directive.Kind {
		case syntax.Warn:
			span := directive.Span
			err = dispatcher.Warn(directive.Message, diag.WarnOptions{
				Span:  &span,
				Stack: stack(directive),
			})
		case syntax.Debug:
			err = dispatcher.Debug(directive.Message, diag.DebugOptions{Span: directive.Span})
		case syntax.Import:
			span := directive.Span
			err = dispatcher.Warn(
				fmt.Sprintf("@import is deprecated, use @use %q instead", directive.Message),
				diag.WarnOptions{Deprecation: true, Span: &span},
			)
		}

		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// stack renders the textual call stack attached to a @warn event.
//
// There is no mixin or function evaluation here so the stack always has
// exactly one frame, the directive itself in the root stylesheet.
func stack(directive syntax.Directive) string {
	return fmt.Sprintf("%s %s  root stylesheet", directive.Span.URL, directive.Span.Start)
}
