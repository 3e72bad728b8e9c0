// Package format provides mechanisms for exporting captured diagnostic
// events into external formats.
//
// The package provides the [Exporter] interface for doing this in a
// format-agnostic way, along with the built in JSON, YAML and TOML
// exporters.
package format

import (
	"fmt"
	"io"

	"github.com/yidnekachew0/sass/internal/logger"
)

// Exporter is the interface defining a mechanism for exporting a sequence
// of diagnostic events into an external format.
type Exporter interface {
	// Export writes the events to w in the external format.
	Export(w io.Writer, events []logger.Event) error
}

// document is the top level structure every exporter encodes, a wrapper
// is needed because TOML cannot represent a bare array at the top level
// and the other formats follow suit for consistency.
type document struct {
	Events []logger.Event `json:"events" toml:"events" yaml:"events"`
}

// New returns the [Exporter] for the named format, one of "json", "yaml"
// or "toml".
func New(name string) (Exporter, error) {
	switch name {
	case "json":
		return JSONExporter{}, nil
	case "yaml":
		return YAMLExporter{}, nil
	case "toml":
		return TOMLExporter{}, nil
	default:
		return nil, fmt.Errorf("invalid format %q, allowed values are 'json', 'yaml' or 'toml'", name)
	}
}
