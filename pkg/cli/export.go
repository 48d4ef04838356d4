package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/leakscan/pkg/cli/config"
	"github.com/secmon-lab/leakscan/pkg/infra"
	"github.com/secmon-lab/leakscan/pkg/usecase"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// newCatalogUseCase builds a usecase backed by the GitLab catalog. Other
// clients can be added with options.
func newCatalogUseCase(gitLab *config.GitLab, ws *config.Workspace, unattended bool, infraOptions []infra.Option, options ...usecase.Option) (*usecase.UseCase, error) {
	catalog, err := gitLab.NewClient()
	if err != nil {
		return nil, err
	}

	cfg, err := ws.Config(gitLab.Token(), unattended)
	if err != nil {
		return nil, err
	}
	if err := ws.Prepare(); err != nil {
		return nil, err
	}

	clients := infra.New(append([]infra.Option{infra.WithCatalog(catalog)}, infraOptions...)...)
	return usecase.New(clients, cfg, options...), nil
}

func exportCommand() *cli.Command {
	var (
		gitLab config.GitLab
		ws     config.Workspace
	)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"export-filtered"},
		Usage:   "Write the projects of one catalog batch committed to since the cutoff, without scanning",
		Flags:   slice.Flatten(gitLab.Flags(), ws.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting export",
				slog.Any("GitLab", gitLab),
				slog.Any("Workspace", ws),
			)

			uc, err := newCatalogUseCase(&gitLab, &ws, true, nil)
			if err != nil {
				return err
			}

			d, err := uc.ExportFiltered(ctx, ws.Page())
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "%d of %d projects committed to since cutoff: %s\n", len(d.Eligible), len(d.Batch.Projects), d.ListPath)
			fmt.Fprintf(os.Stdout, "commit times: %s\n", d.ReportPath)
			return nil
		},
	}
}

func exportAllCommand() *cli.Command {
	var (
		gitLab config.GitLab
		ws     config.Workspace
	)

	return &cli.Command{
		Name:    "export-all",
		Aliases: []string{"export-filtered-all"},
		Usage:   "Walk the whole catalog and write every project committed to since the cutoff",
		Flags:   slice.Flatten(gitLab.Flags(), ws.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting export-all",
				slog.Any("GitLab", gitLab),
				slog.Any("Workspace", ws),
			)

			uc, err := newCatalogUseCase(&gitLab, &ws, true, nil)
			if err != nil {
				return err
			}

			summary, err := uc.ExportFilteredAll(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "%d of %d projects in %d batches committed to since cutoff: %s\n",
				summary.Matched, summary.Seen, summary.Batches, summary.OutputPath)
			return nil
		},
	}
}
