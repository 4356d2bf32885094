package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	pj "github.com/jacoelho-labs/pathjson"
)

// checkCommand validates a pattern list and prints, for each pattern,
// either OK or the reason it is invalid, without reading any JSON. It
// does not report which shape (exact, array wildcard, object wildcard)
// a pattern classified as. Useful for catching a typo'd pattern before wiring it into
// a long-running stream.
func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate a set of patterns without parsing any JSON",
		ArgsUsage: "pattern [pattern...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := cmd.Args().Slice()
			if len(raw) == 0 {
				return fmt.Errorf("check requires at least one pattern")
			}
			for _, s := range raw {
				p, err := pj.NewPattern(s)
				if err != nil {
					fmt.Printf("%-30s INVALID: %v\n", s, err)
					continue
				}
				fmt.Printf("%-30s OK\n", p.String())
			}
			return nil
		},
	}
}
