package sass

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/yidnekachew0/sass/internal/format"
	diag "github.com/yidnekachew0/sass/internal/logger"
	"github.com/yidnekachew0/sass/internal/syntax"
	"github.com/yidnekachew0/sass/internal/syntax/parser"
)

// ExportOptions are the options passed to the export subcommand.
type ExportOptions struct {
	// Format is the export format, one of "json", "yaml" or "toml".
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Export implements the export subcommand.
//
// The stylesheet is parsed and its diagnostics captured with an
// accumulating Logger rather than rendered, then written to stdout in
// the requested format.
//
// handler may be nil, in which case syntax errors are not rendered but
// still fail the export.
func (s Sass) Export(ctx context.Context, file string, handler syntax.ErrorHandler, options ExportOptions) error {
	logger := s.logger.Prefixed("export").With(slog.String("file", file))
	logger.Debug("Export configuration", slog.String("format", options.Format))

	exporter, err := format.New(options.Format)
	if err != nil {
		return err
	}

	start := time.Now()

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	p := parser.New(file, src)

	parsed, err := p.Parse()
	if err != nil {
		if handler != nil {
			for _, diagnostic := range p.Diagnostics() {
				handler(diagnostic.Span, diagnostic.Msg)
			}
		}

		return err
	}

	logger.Debug("Parsed file successfully", slog.Duration("took", time.Since(start)))

	var events []diag.Event

	capability := diag.Capture(&events)

	if err := s.dispatch(diag.New(&capability), parsed); err != nil {
		return fmt.Errorf("diagnostic handler failed: %w", err)
	}

	logger.Debug("Captured diagnostic events", slog.Int("count", len(events)))

	return exporter.Export(s.stdout, events)
}
