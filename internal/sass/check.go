package sass

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"

	diag "github.com/yidnekachew0/sass/internal/logger"
	"github.com/yidnekachew0/sass/internal/syntax"
	"github.com/yidnekachew0/sass/internal/syntax/parser"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Quiet suppresses all warning and debug output by configuring the
	// silent logger.
	Quiet bool

	// Debug enables debug logging.
	Debug bool
}

// checked is the outcome of parsing one stylesheet.
type checked struct {
	path        string              // Path of the stylesheet
	file        syntax.File         // The parsed file (possibly partial)
	diagnostics []syntax.Diagnostic // Syntax errors encountered
}

// Check implements the check subcommand.
//
// The path argument may be a single .scss file or a directory, in which
// case it is scanned recursively for .scss files. Files are parsed
// concurrently but their diagnostics are replayed strictly in path order,
// and in source order within each file, so output is deterministic.
//
// Syntax errors are passed to handler and fail the check. Warnings and
// debug messages never do, they are delivered through the configured
// diagnostic Logger (the default stderr sink, or the silent logger when
// options.Quiet is set).
//
// handler may be nil, in which case syntax errors are not rendered but
// still fail the check.
func (s Sass) Check(ctx context.Context, path string, handler syntax.ErrorHandler, options CheckOptions) error {
	logger := s.logger.Prefixed("check").With(slog.String("path", path))
	logger.Debug("Checking path")

	paths, err := stylesheets(path)
	if err != nil {
		return err
	}

	logger.Debug("Checking stylesheets given by path", slog.Int("number", len(paths)))

	group, ctx := errgroup.WithContext(ctx)

	results := make([]checked, len(paths))

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := checkFile(path)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	var capability *diag.Logger
	if options.Quiet {
		capability = &diag.Silent
	}

	dispatcher := diag.New(capability, diag.Stderr(s.stderr))

	failed := 0

	for _, result := range results {
		if handler != nil {
			for _, diagnostic := range result.diagnostics {
				handler(diagnostic.Span, diagnostic.Msg)
			}
		}

		if len(result.diagnostics) > 0 {
			failed++
			continue
		}

		if err := s.dispatch(dispatcher, result.file); err != nil {
			// The supplied logger is broken, which is not a syntax error in
			// the stylesheet, report it as its own failure
			return fmt.Errorf("diagnostic handler failed: %w", err)
		}

		msg.Fsuccess(s.stdout, "%s is valid", result.path)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d stylesheets contained syntax errors", parser.ErrParse, failed, len(paths))
	}

	return nil
}

// checkFile parses a single stylesheet.
func checkFile(path string) (checked, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return checked{}, fmt.Errorf("could not read file: %w", err)
	}

	p := parser.New(path, src)

	// The error simply signals that diagnostics exist, which we replay
	// later in deterministic order
	file, _ := p.Parse()

	return checked{
		path:        path,
		file:        file,
		diagnostics: p.Diagnostics(),
	}, nil
}

// stylesheets resolves path into the list of .scss files to check.
func stylesheets(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var paths []string

	err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if filepath.Ext(path) == ".scss" {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", path, err)
	}

	return paths, nil
}
