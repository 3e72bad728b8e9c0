package syntax

import (
	"fmt"
	"io"
	"strings"

	"go.followtheprocess.codes/hue"

	"github.com/yidnekachew0/sass/internal/source"
)

// Styles for the pretty console handler.
const (
	errorStyle    = hue.Red | hue.Bold    // The "error:" marker
	positionStyle = hue.Bold              // The clickable file:line:col position
	contextStyle  = hue.BrightBlack       // The offending source line
	caretStyle    = hue.Yellow | hue.Bold // The caret underline pointing at the span
)

// ErrorHandler is a function capable of handling syntax errors as they
// occur, it is called with the span and message of every error the scanner
// or parser encounters.
type ErrorHandler func(span source.Span, msg string)

// PrettyConsoleHandler returns an [ErrorHandler] that renders errors to w
// styled for human eyes on a terminal, including the offending line of
// source with the span underlined.
func PrettyConsoleHandler(w io.Writer) ErrorHandler {
	return func(span source.Span, msg string) {
		fmt.Fprintf(w, "%s %s %s\n", errorStyle.Text("error:"), positionStyle.Text(span.String()), msg)

		if span.Context == "" {
			return
		}

		fmt.Fprintf(w, "  %s\n", contextStyle.Text(span.Context))

		// Underline the span within its context line, capped to the line end
		width := span.End.Offset - span.Start.Offset
		if remaining := len(span.Context) - (span.Start.Column - 1); width > remaining {
			width = remaining
		}

		if width < 1 {
			width = 1
		}

		fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", span.Start.Column-1), caretStyle.Text(strings.Repeat("^", width)))
	}
}
