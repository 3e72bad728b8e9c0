package logger_test

import (
	"slices"
	"testing"

	"go.followtheprocess.codes/test"

	"github.com/yidnekachew0/sass/internal/logger"
	"github.com/yidnekachew0/sass/internal/source"
)

func TestCapture(t *testing.T) {
	var events []logger.Event

	capability := logger.Capture(&events)
	dispatcher := logger.New(&capability)

	s := span()

	test.Ok(t, dispatcher.Warn("W1", logger.WarnOptions{Span: &s, Stack: "input.scss 3:5  root stylesheet"}))
	test.Ok(t, dispatcher.Debug("D1", logger.DebugOptions{Span: s}))
	test.Ok(t, dispatcher.Warn("W2", logger.WarnOptions{Deprecation: true}))

	want := []logger.Event{
		{
			Kind:    "warning",
			Message: "W1",
			URL:     "input.scss",
			Stack:   "input.scss 3:5  root stylesheet",
			Line:    3,
			Column:  5,
		},
		{
			Kind:    "debug",
			Message: "D1",
			URL:     "input.scss",
			Line:    3,
			Column:  5,
		},
		{
			Kind:        "warning",
			Message:     "W2",
			Deprecation: true,
		},
	}

	test.EqualFunc(t, events, want, slices.Equal)
}

func TestCaptureAnonymousSpan(t *testing.T) {
	var events []logger.Event

	capability := logger.Capture(&events)
	dispatcher := logger.New(&capability)

	anonymous := source.Span{
		Text:  "42",
		Start: source.Location{Offset: 7, Line: 1, Column: 8},
		End:   source.Location{Offset: 9, Line: 1, Column: 10},
	}

	test.Ok(t, dispatcher.Debug("42", logger.DebugOptions{Span: anonymous}))

	test.Equal(t, len(events), 1)
	test.Equal(t, events[0].URL, "")
	test.Equal(t, events[0].Line, 1)
	test.Equal(t, events[0].Column, 8)
}
