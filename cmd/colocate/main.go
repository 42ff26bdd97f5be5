// Command colocate merges the configuration fragments of a serverless service
// and prints the effective configuration.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	colocate "github.com/kevinsewell/serverless-plugin-colocate"
)

func main() {
	err := newApp(os.Stdout, os.Stderr).Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "colocate",
		Usage:     "Colocate your configuration and code",
		Version:   colocate.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "service directory containing serverless.yml",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn or error",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: json or text",
				Value: "text",
			},
		},
		Action: func(c *cli.Context) error {
			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			{
				Name:   "effective",
				Usage:  "Print the effective serverless.yml with every fragment merged",
				Action: effective,
			},
		},
	}
}

func effective(c *cli.Context) error {
	app := colocate.NewApp(
		colocate.WithServicePath(c.String("path")),
		colocate.WithLogLevel(c.String("log-level")),
		colocate.WithLogFormat(c.String("log-format")),
		colocate.WithLogOutput(c.App.ErrWriter),
	)

	err := app.Start()
	if err != nil {
		return err
	}

	defer func() { _ = app.Stop() }()

	rendered, err := app.Effective()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.App.Writer, "Effective serverless.yml:\n%s", rendered)

	return err
}
