package sass_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/test"
	"go.uber.org/goleak"

	"github.com/yidnekachew0/sass/internal/sass"
)

func TestExportJSON(t *testing.T) {
	defer goleak.VerifyNone(t)

	file := filepath.Join("testdata", "export", "directives.scss")

	stdout := &strings.Builder{}
	stderr := &strings.Builder{}

	app := sass.New(false, "test", os.Stdin, stdout, stderr)

	err := app.Export(t.Context(), file, simpleErrorHandler(stderr), sass.ExportOptions{Format: "json"})
	test.Ok(t, err)

	want := `{
  "events": [
    {
      "kind": "warning",
      "message": "deprecated mixin",
      "url": "` + file + `",
      "stack": "` + file + ` 1:1  root stylesheet",
      "line": 1,
      "column": 1
    },
    {
      "kind": "debug",
      "message": "42",
      "url": "` + file + `",
      "line": 2,
      "column": 1
    },
    {
      "kind": "warning",
      "message": "@import is deprecated, use @use \"base\" instead",
      "url": "` + file + `",
      "line": 3,
      "column": 1,
      "deprecation": true
    }
  ]
}
`

	test.Diff(t, stdout.String(), want)

	// Captured events never hit the default sink
	test.Diff(t, stderr.String(), "")
}

func TestExportFormats(t *testing.T) {
	// The exporters themselves are tested in internal/format, this just
	// proves each one is reachable end to end
	file := filepath.Join("testdata", "export", "directives.scss")

	for _, name := range []string{"json", "yaml", "toml"} {
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			stdout := &strings.Builder{}

			app := sass.New(false, "test", os.Stdin, stdout, io.Discard)

			err := app.Export(t.Context(), file, simpleErrorHandler(io.Discard), sass.ExportOptions{Format: name})
			test.Ok(t, err)

			test.True(t, strings.Contains(stdout.String(), "deprecated mixin"))
		})
	}
}

func TestExportBadFormat(t *testing.T) {
	defer goleak.VerifyNone(t)

	file := filepath.Join("testdata", "export", "directives.scss")

	app := sass.New(false, "test", os.Stdin, io.Discard, io.Discard)

	err := app.Export(t.Context(), file, simpleErrorHandler(io.Discard), sass.ExportOptions{Format: "xml"})
	test.Err(t, err)
}

func TestExportInvalidSyntax(t *testing.T) {
	defer goleak.VerifyNone(t)

	file := filepath.Join("testdata", "check", "invalid", "unterminated.scss")

	stdout := &strings.Builder{}
	stderr := &strings.Builder{}

	app := sass.New(false, "test", os.Stdin, stdout, stderr)

	err := app.Export(t.Context(), file, simpleErrorHandler(stderr), sass.ExportOptions{Format: "json"})
	test.Err(t, err)

	test.Equal(t, stdout.String(), "")
	test.True(t, strings.Contains(stderr.String(), "unterminated string literal"))
}

func TestExportNilHandler(t *testing.T) {
	defer goleak.VerifyNone(t)

	file := filepath.Join("testdata", "check", "invalid", "unterminated.scss")

	stdout := &strings.Builder{}
	stderr := &strings.Builder{}

	app := sass.New(false, "test", os.Stdin, stdout, stderr)

	// A nil handler means syntax errors aren't rendered, but they must
	// still fail the export
	err := app.Export(t.Context(), file, nil, sass.ExportOptions{Format: "json"})
	test.Err(t, err)

	test.Equal(t, stdout.String(), "")
	test.Equal(t, stderr.String(), "")
}
