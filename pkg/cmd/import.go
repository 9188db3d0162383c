package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/San4eeez/Cruzak/pkg/config"
	"github.com/San4eeez/Cruzak/pkg/importer"
	"github.com/San4eeez/Cruzak/pkg/store"
	"github.com/urfave/cli/v3"
)

// importCmd returns the command that loads the workbook into the database.
//
// The target tables are dropped and recreated first, so a run always reflects
// exactly the workbook it read. Every error aborts the run; in the default
// per_product commit mode the products saved before the failure stay in place.
//
// Example usage:
//
//	# Import part.xlsx into the database from cruzak.yaml
//	cruzak import
//
//	# Import another workbook into SQLite, all or nothing
//	cruzak import --file catalog.xlsx --driver sqlite --dsn catalog.db --commit-mode single
func importCmd(cfg *config.Config) *cli.Command {
	flags := append(sourceFlags(),
		&cli.StringFlag{
			Name:  "driver",
			Usage: "database driver: postgres, pgx, sqlite or clickhouse",
		},
		&cli.StringFlag{
			Name:  "dsn",
			Usage: "connection string, overrides the database settings of the config file",
		},
		&cli.StringFlag{
			Name:  "commit-mode",
			Usage: "per_product or single",
		},
	)

	return &cli.Command{
		Name:  "import",
		Usage: "Import the catalog workbook into the database",
		Flags: append(flags, policyFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runImport(ctx, cmd, withFlags(cfg, cmd))
		},
	}
}

func runImport(ctx context.Context, cmd *cli.Command, c config.Config) error {
	opts, err := importOptions(c.Import)
	if err != nil {
		return err
	}

	slog.Info("Reading workbook", "file", c.Source.File, "sheet", c.Source.Sheet)
	rows, err := readRows(c.Source)
	if err != nil {
		return err
	}

	sink, err := store.Open(ctx, c.Database)
	if err != nil {
		return err
	}
	defer func() { _ = sink.Close() }()

	slog.Info("Importing", "rows", len(rows), "driver", c.Database.Driver, "commit_mode", opts.CommitMode)
	stats, err := importer.New(sink, opts).Run(ctx, rows)
	if err != nil {
		slog.Error("Import aborted", "saved", stats.Saved, "err", err)
		return err
	}

	w := cmd.Root().Writer
	fmt.Fprintln(w, "Import completed")
	printStats(w, stats)
	return nil
}
