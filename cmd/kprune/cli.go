package main

import (
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/kprune/internal/errors"
	"github.com/hpungsan/kprune/internal/kubeconfig"
	"github.com/hpungsan/kprune/internal/ops"
	"github.com/hpungsan/kprune/internal/prompt"
)

// newCLIApp creates the CLI application. All I/O and the clock are injected
// so tests can script a full run.
func newCLIApp(stdin io.Reader, stdout, stderr io.Writer, now func() time.Time) *cli.App {
	app := &cli.App{
		Name:      "kprune",
		Usage:     "Interactively delete contexts (and their clusters and users) from a kubeconfig",
		Version:   Version,
		ArgsUsage: "[config-file]",
		Writer:    stdout,
		ErrWriter: stderr,
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return outputError(errors.NewUsage("at most 1 argument allowed"))
			}

			path := c.Args().First()
			if path == "" {
				var err error
				path, err = kubeconfig.DefaultPath()
				if err != nil {
					return outputError(err)
				}
			}

			asker := prompt.New(stdin, stdout, stderr)
			if err := ops.Run(ops.RunInput{Path: path, Asker: asker, Out: stdout, Now: now}); err != nil {
				return outputError(err)
			}
			return nil
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// outputError formats error for CLI.
func outputError(err error) error {
	if pErr, ok := err.(*errors.PruneError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", pErr.Code, pErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
