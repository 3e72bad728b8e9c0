package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"

	"github.com/yidnekachew0/sass/internal/sass"
	"github.com/yidnekachew0/sass/internal/syntax"
)

// export returns the export subcommand.
func export(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options sass.ExportOptions

		return cli.New(
			"export",
			cli.Short("Export a stylesheet's diagnostics to an alternative format"),
			cli.RequiredArg("file", "Path to the .scss file"),
			cli.Flag(&options.Format, "format", 'f', "json", "Export format, one of (json|yaml|toml)"),
			cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				app := sass.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
				return app.Export(ctx, cmd.Arg("file"), syntax.PrettyConsoleHandler(cmd.Stderr()), options)
			}),
		)
	}
}
