package format

import (
	"encoding/json"
	"io"

	"github.com/yidnekachew0/sass/internal/logger"
)

// JSONExporter is an [Exporter] that writes diagnostic events as a JSON document.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter].
func (j JSONExporter) Export(w io.Writer, events []logger.Event) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(document{Events: events})
}
