package ctl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/polkiloo/iscore/internal/storage/sqlite"
)

func (rt *runtime) initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Creates the record tables in the database file",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := rt.create(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.Root().Writer, "initialized %s\n", cmd.String(dbPathFlag))
			return nil
		},
	}
}

const fileFlag = "file"

func (rt *runtime) importCmd() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Loads users and their records from a YAML fixtures file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     fileFlag,
				Usage:    "Path to the YAML fixtures file",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String(fileFlag)
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open fixtures: %w", err)
			}
			defer f.Close()

			fixtures, err := sqlite.ParseFixtures(f)
			if err != nil {
				return err
			}

			store, err := rt.create(ctx, cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Import(ctx, fixtures)
			if err != nil {
				return err
			}
			rt.logger.Debug("import finished", "file", path, "users", n)
			fmt.Fprintf(cmd.Root().Writer, "imported %d users\n", n)
			return nil
		},
	}
}

// create opens the sandbox database, creating the file and schema when missing.
func (rt *runtime) create(ctx context.Context, cmd *cli.Command) (*sqlite.Store, error) {
	store, err := rt.open(cmd)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// openExisting opens a sandbox database that init or import already created.
func (rt *runtime) openExisting(cmd *cli.Command) (*sqlite.Store, error) {
	path := cmd.String(dbPathFlag)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("database %s does not exist, run init or import first", path)
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}
	return rt.open(cmd)
}

func (rt *runtime) open(cmd *cli.Command) (*sqlite.Store, error) {
	path := cmd.String(dbPathFlag)
	rt.logger.Debug("opening database", "path", path)
	return sqlite.Open(path, rt.logger)
}
