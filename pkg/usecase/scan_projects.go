package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/repository/file"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
)

// ScanFromFiltered resumes scanning a previously exported filtered list.
// An empty list is not an error and returns a nil summary.
func (x *UseCase) ScanFromFiltered(ctx context.Context, path string) (*model.RunSummary, error) {
	projects, err := file.ReadProjectList(ctx, path)
	if err != nil {
		return nil, err
	}

	if len(projects) == 0 {
		logging.From(ctx).Warn("filtered project list is empty", slog.String("path", path))
		return nil, nil
	}

	logging.From(ctx).Info("loaded filtered project list",
		slog.String("path", path),
		slog.Int("projects", len(projects)),
	)
	return x.ScanProjects(ctx, projects)
}

// resolveStart decides where the run starts in a list of total projects and
// persists that position before any project is processed.
func (x *UseCase) resolveStart(ctx context.Context, total int) (int, error) {
	logger := logging.From(ctx)
	start := x.progress.Read(ctx)

	if start > total {
		logger.Warn("checkpoint is beyond the project list, starting over",
			slog.Int("checkpoint", start),
			slog.Int("total", total),
		)
		start = 0
	}

	if start > 0 && x.cfg.ResetProgress {
		logger.Info("progress reset requested", slog.Int("checkpoint", start))
		start = 0
	}

	if start > 0 && !x.unattended() && x.prompter.ConfirmRestart(start, total) {
		logger.Info("operator chose to restart all scans", slog.Int("checkpoint", start))
		start = 0
	}

	if err := x.progress.Write(ctx, start); err != nil {
		return 0, goerr.Wrap(err, "failed to persist start position")
	}
	return start, nil
}

// ScanProjects scans projects from the stored checkpoint onwards in batches of
// Config.BatchSize. The checkpoint is advanced after every project so that an
// interrupted run loses at most the project in flight.
func (x *UseCase) ScanProjects(ctx context.Context, projects []*model.Project) (*model.RunSummary, error) {
	logger := logging.From(ctx).With(slog.String("run_id", x.runID.String()))
	ctx = logging.With(ctx, logger)
	total := len(projects)

	start, err := x.resolveStart(ctx, total)
	if err != nil {
		return nil, err
	}

	summary := model.NewRunSummary(x.runID, total, start)
	if start == total {
		logger.Info("all projects already scanned", slog.Int("total", total))
		return summary, nil
	}

	logger.Info("starting scan",
		slog.Int("start", start),
		slog.Int("total", total),
		slog.Int("batch_size", x.cfg.BatchSize),
	)

	batchID := 0
	for offset := start; offset < total; offset += x.cfg.BatchSize {
		batchID++
		end := min(offset+x.cfg.BatchSize, total)
		logger.Info("starting batch",
			slog.Int("batch_id", batchID),
			slog.Int("from", offset+1),
			slog.Int("to", end),
		)

		for index := offset; index < end; index++ {
			if err := ctx.Err(); err != nil {
				logger.Warn("scan interrupted", slog.Int("checkpoint", summary.Checkpoint), slog.Any("error", err))
				summary.Stopped = true
				return summary, nil
			}

			result := x.ScanProject(ctx, projects[index], batchID)
			result.Index = index

			if ctx.Err() != nil {
				// the project was aborted part way, scan it again on the next run
				logger.Warn("scan interrupted during project",
					slog.Any("project_id", result.ProjectID),
					slog.Int("checkpoint", summary.Checkpoint),
				)
				summary.Stopped = true
				return summary, nil
			}

			summary.Add(result)
			x.record(ctx, result)

			if err := x.progress.Write(ctx, index+1); err != nil {
				return summary, goerr.Wrap(err, "failed to persist checkpoint", goerr.V("checkpoint", index+1))
			}
			summary.Checkpoint = index + 1
		}

		if end < total && !x.unattended() && !x.prompter.ContinueNextBatch(batchID+1) {
			logger.Info("operator stopped the scan", slog.Int("checkpoint", summary.Checkpoint))
			summary.Stopped = true
			return summary, nil
		}
	}

	logger.Info("scan finished",
		slog.Int("processed", summary.Processed),
		slog.Int("checkpoint", summary.Checkpoint),
	)
	return summary, nil
}

func (x *UseCase) record(ctx context.Context, result *model.ScanResult) {
	for _, recorder := range x.recorders {
		if err := recorder.Record(ctx, result); err != nil {
			logging.From(ctx).Warn("failed to record scan result",
				slog.Any("project_id", result.ProjectID),
				slog.Any("error", err),
			)
		}
	}
}
