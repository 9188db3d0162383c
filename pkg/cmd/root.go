package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/San4eeez/Cruzak/pkg/config"
	"github.com/San4eeez/Cruzak/pkg/consts"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the cruzak CLI with the fx lifecycle. The application runs
// once the fx app starts and shuts it down with exit code 0 on success and 1
// on any error.
//
// Global Flags:
//   - --config, -c: Config file (env CRUZAK_CONFIG, default cruzak.yaml)
//   - --log-level: debug, info, warn or error
//   - --log-format: text or json
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Config, p.Version.Version, p.Commands)

	// Imports outlive fx's start timeout, so the app runs outside the hook.
	p.Lifecycle.Append(fx.StartHook(func() {
		go func() {
			if err := app.Run(p.Ctx, p.Args); err != nil {
				slog.Error("Error running command", "err", err)
				_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				return
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
		}()
	}))
}

func newApp(cfg *config.Config, version string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "cruzak",
		Usage: "Import a product catalog workbook into a database",
		Description: `cruzak reads the product catalog spreadsheet, groups every product header
row with the attribute rows below it and loads the result into the products
and product_attributes tables, recreating both on every run.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "the configuration file",
				Sources:     cli.EnvVars(consts.ConfigEnvVar),
				DefaultText: consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text, json)",
				Value: "text",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger, err := newLogger(cmd.ErrWriter, cmd.String("log-level"), cmd.String("log-format"))
			if err != nil {
				return ctx, err
			}
			slog.SetDefault(logger)

			if !cmd.IsSet("config") {
				return ctx, nil
			}

			loaded, err := config.Load(cmd.String("config"))
			if err != nil {
				return ctx, err
			}

			*cfg = *loaded
			return ctx, nil
		},
		Commands: commands,
	}
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level: %s", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.Errorf("invalid log format: %s", format)
	}
}
