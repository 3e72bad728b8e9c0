package logger

// Event is a flattened record of one diagnostic, as captured by [Capture].
//
// It exists for hosts that want to accumulate diagnostics rather than
// render them immediately, and is shaped for clean serialisation to
// JSON, YAML or TOML.
type Event struct {
	Kind        string `json:"kind"                  toml:"kind"                  yaml:"kind"`        // "warning" or "debug"
	Message     string `json:"message"               toml:"message"               yaml:"message"`     // The diagnostic message
	URL         string `json:"url,omitempty"         toml:"url,omitempty"         yaml:"url,omitempty"`
	Stack       string `json:"stack,omitempty"       toml:"stack,omitempty"       yaml:"stack,omitempty"`
	Line        int    `json:"line,omitempty"        toml:"line,omitempty"        yaml:"line,omitempty"`
	Column      int    `json:"column,omitempty"      toml:"column,omitempty"      yaml:"column,omitempty"`
	Deprecation bool   `json:"deprecation,omitempty" toml:"deprecation,omitempty" yaml:"deprecation,omitempty"`
}

// Capture returns a [Logger] whose handlers append every diagnostic to
// events as an [Event], in delivery order.
//
// The accumulated slice is owned by the caller, the returned Logger holds
// no state of its own and may be discarded after the compile.
func Capture(events *[]Event) Logger {
	return Logger{
		Warn: func(message string, options WarnOptions) {
			event := Event{
				Kind:        "warning",
				Message:     message,
				Stack:       options.Stack,
				Deprecation: options.Deprecation,
			}

			if options.Span != nil {
				event.URL = options.Span.URL
				event.Line = options.Span.Start.Line
				event.Column = options.Span.Start.Column
			}

			*events = append(*events, event)
		},
		Debug: func(message string, options DebugOptions) {
			*events = append(*events, Event{
				Kind:    "debug",
				Message: message,
				URL:     options.Span.URL,
				Line:    options.Span.Start.Line,
				Column:  options.Span.Start.Column,
			})
		},
	}
}
