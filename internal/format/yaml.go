package format

import (
	"io"

	"go.yaml.in/yaml/v4"

	"github.com/yidnekachew0/sass/internal/logger"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes diagnostic events as a YAML document.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter].
func (y YAMLExporter) Export(w io.Writer, events []logger.Event) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(document{Events: events}); err != nil {
		return err
	}

	return encoder.Close()
}
