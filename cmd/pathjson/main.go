package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "pathjson",
		Usage: "stream JSON through a set of JSONPath-style patterns and print matching values",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a JSON or YAML config file"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "trace, debug, info, warn, or error"},
			&cli.StringFlag{Name: "log-format", Value: "dev", Usage: "dev, json, or text"},
		},
		Commands: []*cli.Command{
			runCommand(),
			checkCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
