// Package ctl implements iscorectl, a command line front end that runs the
// view lookups against a local SQLite sandbox.
package ctl

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"
)

const (
	name          = "iscorectl"
	dbPathDefault = "iscore.db"

	debugFlag  = "debug"
	dbPathFlag = "db"
)

// runtime carries state shared by the commands of one invocation.
type runtime struct {
	logger *slog.Logger
}

// New builds the iscorectl command tree. Output goes to stdout, logs to stderr.
func New(version string, stdout, stderr io.Writer) *cli.Command {
	rt := &runtime{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	return &cli.Command{
		Name:      name,
		Version:   version,
		Usage:     "Look up iScore views in a local sandbox database",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  debugFlag,
				Usage: "Prints verbose logs",
			},
			&cli.StringFlag{
				Name:    dbPathFlag,
				Usage:   "Path to the SQLite database file",
				Value:   dbPathDefault,
				Sources: cli.EnvVars("ISCORE_DB"),
			},
		},
		Commands: []*cli.Command{
			rt.initCmd(),
			rt.importCmd(),
			rt.viewCmd(),
			hashKeyCmd(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool(debugFlag) {
				level = slog.LevelDebug
			}
			rt.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			return ctx, nil
		},
	}
}
