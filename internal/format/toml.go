package format

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/yidnekachew0/sass/internal/logger"
)

// TOMLExporter is an [Exporter] that writes diagnostic events as a TOML document.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter].
func (t TOMLExporter) Export(w io.Writer, events []logger.Event) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(document{Events: events})
}
