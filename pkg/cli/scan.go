package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/leakscan/pkg/cli/config"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/infra"
	"github.com/secmon-lab/leakscan/pkg/usecase"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func scanCommand() *cli.Command {
	var (
		gitLab       config.GitLab
		ws           config.Workspace
		scanner      config.Scanner
		bigQuery     config.BigQuery
		sentry       config.Sentry
		fromFiltered bool
	)

	scanFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "from-filtered",
			Usage:       "Scan projects listed in the filtered projects file instead of discovering a catalog batch",
			Category:    "Run",
			Destination: &fromFiltered,
			Sources:     cli.EnvVars("LEAKSCAN_FROM_FILTERED"),
		},
	}

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"sc"},
		Usage:   "Clone projects one by one and scan them with gitleaks, resuming from the checkpoint",
		Flags: slice.Flatten(
			scanFlags,
			gitLab.Flags(),
			ws.Flags(),
			scanner.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			unattended := ws.NoPrompt() || !isInteractive()

			logging.Default().Info("starting scan",
				slog.Bool("FromFiltered", fromFiltered),
				slog.Bool("Unattended", unattended),
				slog.Any("GitLab", gitLab),
				slog.Any("Workspace", ws),
				slog.Any("Scanner", scanner),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(ctx)

			cloner, err := scanner.NewCloner()
			if err != nil {
				return err
			}
			infraOptions := []infra.Option{
				infra.WithCloner(cloner),
				infra.WithScanner(scanner.NewScanner()),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return goerr.Wrap(err, "failed to create BigQuery client")
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			var options []usecase.Option
			if !unattended {
				options = append(options, usecase.WithPrompter(newLinePrompter(os.Stdin, os.Stderr)))
			}

			uc, err := newCatalogUseCase(&gitLab, &ws, unattended, infraOptions, options...)
			if err != nil {
				return err
			}

			var summary *model.RunSummary
			if fromFiltered {
				cfg, err := ws.Config(gitLab.Token(), unattended)
				if err != nil {
					return err
				}
				summary, err = uc.ScanFromFiltered(ctx, cfg.FilteredListPath)
				if err != nil {
					return err
				}
			} else {
				summary, err = uc.DiscoverAndScan(ctx, ws.Page())
				if err != nil {
					return err
				}
			}

			if summary == nil {
				logging.Default().Info("nothing to scan")
				return nil
			}

			usecase.PrintSummary(os.Stdout, summary)
			return nil
		},
	}
}
