package ctl

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	pkgAuth "github.com/polkiloo/iscore/internal/pkg/auth"
)

const (
	keyFlag  = "key"
	costFlag = "cost"
)

func hashKeyCmd() *cli.Command {
	return &cli.Command{
		Name:  "hash-key",
		Usage: "Prints the bcrypt hash to use as API_KEY_HASH",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     keyFlag,
				Usage:    "API key to hash",
				Required: true,
				Sources:  cli.EnvVars("ISCORE_API_KEY"),
			},
			&cli.IntFlag{
				Name:  costFlag,
				Usage: "bcrypt cost, 0 for the library default",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			hash, err := pkgAuth.HashKey(cmd.String(keyFlag), int(cmd.Int(costFlag)))
			if err != nil {
				return fmt.Errorf("hash key: %w", err)
			}
			fmt.Fprintln(cmd.Root().Writer, hash)
			return nil
		},
	}
}
