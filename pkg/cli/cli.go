package cli

import (
	"context"

	"github.com/taskops-lab/riskregister/pkg/cli/config"
	"github.com/taskops-lab/riskregister/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "riskregister",
		Usage:   "Project risk register and assessment engine",
		Description: "Tracks project risks with probability/impact scoring, " +
			"an append-only analysis ledger and response plans. " +
			"Run `serve` for the HTTP API, `seed` to load a TOML fixture, " +
			"and `migrate` to manage Firestore indexes.",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("Starting riskregister",
				"version", version,
				"logger", loggerCfg,
			)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdSeed(),
			cmdMigrate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("riskregister exited with error", "error", err)
		return err
	}

	return nil
}
