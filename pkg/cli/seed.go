package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/taskops-lab/riskregister/pkg/cli/config"
	"github.com/taskops-lab/riskregister/pkg/usecase"
	"github.com/taskops-lab/riskregister/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var fixturePath string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "fixture",
			Usage:       "TOML fixture of projects and risks to load",
			Required:    true,
			Sources:     cli.EnvVars("RISKREGISTER_FIXTURE"),
			Destination: &fixturePath,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Load a TOML fixture into the repository and exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			fixture, err := config.LoadFixture(fixturePath)
			if err != nil {
				return goerr.Wrap(err, "failed to load fixture")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			if err := fixture.Apply(ctx, usecase.New(repo), repo.Project()); err != nil {
				return goerr.Wrap(err, "failed to apply fixture")
			}

			logging.Default().Info("Fixture applied",
				"path", fixturePath,
				"projects", len(fixture.Projects),
				"risks", len(fixture.Risks))
			return nil
		},
	}
}
