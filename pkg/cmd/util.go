package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/San4eeez/Cruzak/pkg/catalog"
	"github.com/San4eeez/Cruzak/pkg/config"
	"github.com/San4eeez/Cruzak/pkg/importer"
	"github.com/San4eeez/Cruzak/pkg/sheet"
	"github.com/urfave/cli/v3"
)

// sourceFlags select the workbook, shared by import and preview.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "the catalog workbook (default from config, then part.xlsx)",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringFlag{
			Name:  "sheet",
			Usage: "the worksheet to read (default is the first one)",
		},
		&cli.IntFlag{
			Name:  "skip-rows",
			Usage: "number of leading metadata rows",
		},
	}
}

// policyFlags control normalization, shared by import and preview.
func policyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "numeric-only",
			Usage: "attributes without text values: drop or emit",
		},
		&cli.StringFlag{
			Name:  "invalid-date",
			Usage: "unparseable product dates: null or fail",
		},
	}
}

// withFlags returns a copy of cfg with every explicitly set flag applied.
// Flags win over the config file, which wins over defaults.
func withFlags(cfg *config.Config, cmd *cli.Command) config.Config {
	c := *config.Default()
	if cfg != nil {
		c = *cfg
	}

	strs := []struct {
		flag string
		dst  *string
	}{
		{"file", &c.Source.File},
		{"sheet", &c.Source.Sheet},
		{"driver", &c.Database.Driver},
		{"dsn", &c.Database.DSN},
		{"commit-mode", &c.Import.CommitMode},
		{"numeric-only", &c.Import.NumericOnly},
		{"invalid-date", &c.Import.InvalidDate},
	}
	for _, s := range strs {
		if cmd.IsSet(s.flag) {
			*s.dst = cmd.String(s.flag)
		}
	}

	if cmd.IsSet("skip-rows") {
		c.Source.SkipRows = cmd.Int("skip-rows")
	}

	return c
}

func importOptions(c config.Import) (importer.Options, error) {
	opts := importer.DefaultOptions()

	mode, err := importer.ParseCommitMode(c.CommitMode)
	if err != nil {
		return opts, err
	}

	numericOnly, err := catalog.ParseNumericOnlyPolicy(c.NumericOnly)
	if err != nil {
		return opts, err
	}

	invalidDate, err := catalog.ParseInvalidDatePolicy(c.InvalidDate)
	if err != nil {
		return opts, err
	}

	opts.CommitMode = mode
	opts.NumericOnly = numericOnly
	opts.Catalog.InvalidDate = invalidDate
	if c.AffirmativeToken != "" {
		opts.Catalog.AffirmativeToken = c.AffirmativeToken
	}

	return opts, nil
}

func readRows(src config.Source) ([]sheet.Row, error) {
	return sheet.ReadFile(src.File, sheet.WithSheet(src.Sheet), sheet.WithSkipRows(src.SkipRows))
}

func printStats(w io.Writer, stats *importer.Stats) {
	fmt.Fprintf(w, "Rows read:       %d\n", stats.Rows)
	fmt.Fprintf(w, "Products:        %d\n", stats.Products)
	fmt.Fprintf(w, "Attribute rows:  %d\n", stats.AttributeRows)
	fmt.Fprintf(w, "Dropped rows:    %d\n", stats.Dropped)
	fmt.Fprintf(w, "Numeric-only:    %d\n", stats.NumericOnly)
	fmt.Fprintf(w, "Invalid dates:   %d\n", stats.InvalidDates)
	fmt.Fprintf(w, "Elapsed:         %s\n", stats.Elapsed.Round(time.Millisecond))
}
