package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const DefaultCutoffDate = "2025-07-01"

// Workspace holds run selection, file locations and operator interaction settings.
type Workspace struct {
	cutoffDate    string
	page          int64
	projectLimit  int64
	batchSize     int64
	filteredFile  string
	progressFile  string
	workDir       string
	reportDir     string
	noPrompt      bool
	resetProgress bool
}

func (x *Workspace) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cutoff-date",
			Usage:       "Only projects committed to on or after this date (YYYY-MM-DD, UTC) are scanned",
			Category:    "Selection",
			Value:       DefaultCutoffDate,
			Destination: &x.cutoffDate,
			Sources:     cli.EnvVars("LEAKSCAN_CUTOFF_DATE"),
		},
		&cli.Int64Flag{
			Name:        "page",
			Usage:       "1-based catalog batch to discover",
			Category:    "Selection",
			Value:       1,
			Destination: &x.page,
			Sources:     cli.EnvVars("LEAKSCAN_PAGE"),
		},
		&cli.Int64Flag{
			Name:        "project-limit",
			Usage:       "Projects fetched from the catalog per batch",
			Category:    "Selection",
			Value:       usecase.DefaultProjectLimit,
			Destination: &x.projectLimit,
			Sources:     cli.EnvVars("LEAKSCAN_PROJECT_LIMIT"),
		},
		&cli.Int64Flag{
			Name:        "batch-size",
			Usage:       "Projects scanned between pauses",
			Category:    "Selection",
			Value:       usecase.DefaultBatchSize,
			Destination: &x.batchSize,
			Sources:     cli.EnvVars("LEAKSCAN_BATCH_SIZE"),
		},
		&cli.StringFlag{
			Name:        "filtered-projects-file",
			Usage:       "Filtered project list (default: filtered_projects_since_<date>_page_<n>.csv in report dir)",
			Category:    "Files",
			Destination: &x.filteredFile,
			Sources:     cli.EnvVars("LEAKSCAN_FILTERED_PROJECTS_FILE"),
		},
		&cli.StringFlag{
			Name:        "progress-file",
			Usage:       "Checkpoint file (default: scan_progress_since_<date>_page_<n>.txt in report dir)",
			Category:    "Files",
			Destination: &x.progressFile,
			Sources:     cli.EnvVars("LEAKSCAN_PROGRESS_FILE"),
		},
		&cli.StringFlag{
			Name:        "work-dir",
			Usage:       "Directory for temporary clones",
			Category:    "Files",
			Value:       filepath.Join(os.TempDir(), "leakscan"),
			Destination: &x.workDir,
			Sources:     cli.EnvVars("LEAKSCAN_WORK_DIR"),
		},
		&cli.StringFlag{
			Name:        "report-dir",
			Usage:       "Directory for reports, project lists and the checkpoint",
			Category:    "Files",
			Value:       "reports",
			Destination: &x.reportDir,
			Sources:     cli.EnvVars("LEAKSCAN_REPORT_DIR"),
		},
		&cli.BoolFlag{
			Name:        "no-prompt",
			Usage:       "Run unattended: resume without asking and do not pause between batches",
			Category:    "Run",
			Destination: &x.noPrompt,
			Sources:     cli.EnvVars("LEAKSCAN_NO_PROMPT"),
		},
		&cli.BoolFlag{
			Name:        "reset-progress",
			Usage:       "Ignore the checkpoint and start from the first project",
			Category:    "Run",
			Destination: &x.resetProgress,
			Sources:     cli.EnvVars("LEAKSCAN_RESET_PROGRESS"),
		},
	}
}

func (x *Workspace) Page() int {
	return max(1, int(x.page))
}

func (x *Workspace) NoPrompt() bool {
	return x.noPrompt
}

// Prepare creates the work and report directories.
func (x *Workspace) Prepare() error {
	for _, dir := range []string{x.workDir, x.reportDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("dir", dir))
		}
	}
	return nil
}

// Config builds the usecase configuration. Sizes below 1 are raised to 1.
func (x *Workspace) Config(token types.GitLabToken, unattended bool) (usecase.Config, error) {
	cutoff, err := usecase.ParseCutoff(x.cutoffDate)
	if err != nil {
		return usecase.Config{}, err
	}

	page := x.Page()
	cfg := usecase.Config{
		Token:            token,
		Cutoff:           cutoff,
		ProjectLimit:     max(1, int(x.projectLimit)),
		BatchSize:        max(1, int(x.batchSize)),
		WorkDir:          x.workDir,
		ReportDir:        x.reportDir,
		OutputDir:        x.reportDir,
		FilteredListPath: x.filteredFile,
		ProgressPath:     x.progressFile,
		Unattended:       unattended,
		ResetProgress:    x.resetProgress,
	}
	if cfg.FilteredListPath == "" {
		cfg.FilteredListPath = filepath.Join(x.reportDir, usecase.FilteredListName(cutoff, page))
	}
	if cfg.ProgressPath == "" {
		cfg.ProgressPath = filepath.Join(x.reportDir, usecase.ProgressFileName(cutoff, page))
	}

	if err := cfg.Validate(); err != nil {
		return usecase.Config{}, err
	}
	return cfg, nil
}

func (x Workspace) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("CutoffDate", x.cutoffDate),
		slog.Int64("Page", x.page),
		slog.Int64("ProjectLimit", x.projectLimit),
		slog.Int64("BatchSize", x.batchSize),
		slog.String("FilteredFile", x.filteredFile),
		slog.String("ProgressFile", x.progressFile),
		slog.String("WorkDir", x.workDir),
		slog.String("ReportDir", x.reportDir),
		slog.Bool("NoPrompt", x.noPrompt),
		slog.Bool("ResetProgress", x.resetProgress),
	)
}
