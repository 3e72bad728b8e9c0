// Package cmd implements sass's CLI.
package cmd

import (
	"context"
	"errors"

	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the sass CLI.
func Build(ctx context.Context) (*cli.Command, error) {
	return cli.New(
		"sass",
		cli.Short("A diagnostic toolkit for .scss stylesheets"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Check a stylesheet, showing its warnings and debug messages", "sass check ./styles/main.scss"),
		cli.Example("Check every stylesheet in a directory (recursively)", "sass check ./styles"),
		cli.Example("Suppress all warning and debug output", "sass check ./styles --quiet"),
		cli.Example("Export a stylesheet's diagnostics as JSON", "sass export ./styles/main.scss --format json"),
		cli.Allow(cli.NoArgs()),
		cli.SubCommands(check(ctx), export(ctx)),
		cli.Run(func(cmd *cli.Command, args []string) error {
			return errors.New("no subcommand given, run 'sass --help' for usage")
		}),
	)
}
