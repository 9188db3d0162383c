package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/San4eeez/Cruzak/pkg/config"
	"github.com/San4eeez/Cruzak/pkg/schema"
	"github.com/San4eeez/Cruzak/pkg/store"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// schemaCmd returns the command that prints the DDL an import runs for the
// configured driver. With --apply the tables are recreated (and emptied)
// without importing anything.
//
// Example usage:
//
//	# Show the PostgreSQL schema
//	cruzak schema
//
//	# Show the ClickHouse schema
//	cruzak schema --driver clickhouse
func schemaCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print or apply the target table DDL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "driver",
				Usage: "database driver: postgres, pgx, sqlite or clickhouse",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "connection string used with --apply",
			},
			&cli.BoolFlag{
				Name:  "apply",
				Usage: "drop and recreate the tables in the database",
				Value: false,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c := withFlags(cfg, cmd)

			if cmd.Bool("apply") {
				return applySchema(ctx, cmd, c.Database)
			}
			return printSchema(cmd, c.Database.Driver)
		},
	}
}

func printSchema(cmd *cli.Command, driver string) error {
	dialect, err := store.DialectFor(driver)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.Root().Writer, strings.Join(schema.Statements(dialect), "\n"))
	return nil
}

func applySchema(ctx context.Context, cmd *cli.Command, db config.Database) error {
	sink, err := store.Open(ctx, db)
	if err != nil {
		return err
	}
	defer func() { _ = sink.Close() }()

	if err := schema.Initialize(ctx, sink, sink.Dialect()); err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}

	fmt.Fprintf(cmd.Root().Writer, "Recreated tables %s and %s\n", schema.Products.Name, schema.Attributes.Name)
	return nil
}
