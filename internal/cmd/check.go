package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"

	"github.com/yidnekachew0/sass/internal/sass"
	"github.com/yidnekachew0/sass/internal/syntax"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of an .scss file, then this file alone is parsed and
its diagnostics reported.

If it is a directory, this directory is scanned recursively for all files
with the '.scss' extension and any matching files will be checked.

Warnings ('@warn' and deprecated constructs) and debug messages ('@debug')
are written to stderr and never fail the check, syntax errors do. Passing
'--quiet' configures the silent logger, suppressing warnings and debug
messages entirely.
`

// check returns the check subcommand.
func check(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options sass.CheckOptions

		return cli.New(
			"check",
			cli.Short("Check .scss files, reporting their diagnostics"),
			cli.Long(checkLong),
			cli.OptionalArg("path", "Path to check, may be directory or file", "."),
			cli.Flag(&options.Quiet, "quiet", 'q', false, "Suppress warning and debug output"),
			cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				app := sass.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
				return app.Check(ctx, cmd.Arg("path"), syntax.PrettyConsoleHandler(cmd.Stderr()), options)
			}),
		)
	}
}
