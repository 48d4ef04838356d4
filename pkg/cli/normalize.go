package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/secmon-lab/leakscan/pkg/usecase"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func normalizeCommand() *cli.Command {
	var (
		reportsDir string
		pattern    string
		output     string
	)

	return &cli.Command{
		Name:    "normalize",
		Aliases: []string{"n"},
		Usage:   "Merge gitleaks JSON reports into one CSV of findings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "reports-dir",
				Aliases:     []string{"d"},
				Usage:       "Directory with gitleaks JSON reports",
				Value:       "reports",
				Destination: &reportsDir,
				Sources:     cli.EnvVars("LEAKSCAN_REPORT_DIR"),
			},
			&cli.StringFlag{
				Name:        "pattern",
				Usage:       "Glob of report files in the reports directory",
				Value:       usecase.DefaultReportPattern,
				Destination: &pattern,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Output CSV path (default: " + usecase.DefaultFindingsFile + " in reports dir)",
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if output == "" {
				output = filepath.Join(reportsDir, usecase.DefaultFindingsFile)
			}

			logging.Default().Info("starting normalize",
				slog.String("reports_dir", reportsDir),
				slog.String("pattern", pattern),
				slog.String("output", output),
			)

			summary, err := usecase.NormalizeReports(ctx, reportsDir, pattern, output)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "%d findings from %d reports (%d skipped): %s\n",
				summary.Rows, summary.Files, summary.Skipped, summary.OutputPath)
			return nil
		},
	}
}
