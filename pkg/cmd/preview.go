package cmd

import (
	"context"
	"fmt"

	"github.com/San4eeez/Cruzak/pkg/config"
	"github.com/San4eeez/Cruzak/pkg/importer"
	"github.com/San4eeez/Cruzak/pkg/store"
	"github.com/urfave/cli/v3"
)

// preview returns the command that runs an import against an in-memory sink
// and prints what would be stored. No database is needed.
func preview(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Show what an import would store without touching the database",
		Flags: append(sourceFlags(), policyFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPreview(ctx, cmd, withFlags(cfg, cmd))
		},
	}
}

func runPreview(ctx context.Context, cmd *cli.Command, c config.Config) error {
	opts, err := importOptions(c.Import)
	if err != nil {
		return err
	}

	rows, err := readRows(c.Source)
	if err != nil {
		return err
	}

	sink := store.NewMemorySink()
	defer func() { _ = sink.Close() }()

	stats, err := importer.New(sink, opts).Run(ctx, rows)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	for _, p := range sink.Products() {
		fmt.Fprintf(w, "%d\t%s\t%d attribute rows\n", p.ID, p.Product.Name, len(sink.AttributesOf(p.ID)))
		if p.Product.InvalidDate != "" {
			fmt.Fprintf(w, "\tinvalid date %q stored as NULL\n", p.Product.InvalidDate)
		}
	}

	fmt.Fprintln(w)
	printStats(w, stats)
	return nil
}
