package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/repository/file"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
)

func (x *UseCase) catalog() (interfaces.Catalog, error) {
	if x.clients.Catalog() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitLab catalog is not configured")
	}
	return x.clients.Catalog(), nil
}

// lookupCommits resolves the last commit of every project. Lookup failures are
// kept in CommitInfo.Error and never abort the batch.
func lookupCommits(ctx context.Context, catalog interfaces.Catalog, projects []*model.Project) (model.CommitInfoMap, error) {
	logger := logging.From(ctx)
	infos := make(model.CommitInfoMap, len(projects))

	for i, p := range projects {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "commit lookup interrupted", goerr.V("done", i), goerr.V("total", len(projects)))
		}

		info, err := catalog.FetchLastCommitTime(ctx, p.ID, p.DefaultBranch)
		if err != nil {
			logger.Warn("failed to get last commit time",
				slog.Any("project_id", p.ID),
				slog.String("project", p.PathWithNamespace),
				slog.Any("error", err),
			)
			info = &model.CommitInfo{ProjectID: p.ID, Error: err.Error()}
		}
		if info == nil {
			info = &model.CommitInfo{ProjectID: p.ID}
		}
		infos[p.ID] = info

		logger.Debug("last commit resolved",
			slog.Int("progress", i+1),
			slog.Int("total", len(projects)),
			slog.Any("project_id", p.ID),
			slog.Any("last_commit_at", info.LastCommitAt),
		)
	}

	return infos, nil
}

// DiscoverAndFilter fetches one catalog batch, resolves commit times and
// writes both the filtered list and the commit audit report.
func (x *UseCase) DiscoverAndFilter(ctx context.Context, batchIndex int) (*model.Discovery, error) {
	catalog, err := x.catalog()
	if err != nil {
		return nil, err
	}
	logger := logging.From(ctx)

	batch := catalog.FetchProjectsBatch(ctx, x.cfg.ProjectLimit, batchIndex)
	if batch == nil || len(batch.Projects) == 0 {
		return nil, goerr.Wrap(types.ErrNoProjects, "catalog returned no projects",
			goerr.V("batch_index", batchIndex),
			goerr.V("project_limit", x.cfg.ProjectLimit),
		)
	}
	logger.Info("fetched project batch",
		slog.Int("batch_index", batchIndex),
		slog.Int("projects", len(batch.Projects)),
		slog.Int("first_page", batch.FirstPage),
		slog.Int("last_page", batch.LastPage),
	)

	infos, err := lookupCommits(ctx, catalog, batch.Projects)
	if err != nil {
		return nil, err
	}
	eligible := FilterByActivity(batch.Projects, infos, x.cfg.Cutoff)

	d := &model.Discovery{
		Batch:      batch,
		CommitInfo: infos,
		Eligible:   eligible,
		ListPath:   x.outputPath(x.cfg.FilteredListPath, FilteredListName(x.cfg.Cutoff, batchIndex)),
		ReportPath: x.outputPath(x.cfg.CommitReportPath, CommitReportName(batchIndex)),
	}

	if err := file.WriteProjectList(d.ListPath, eligible, infos); err != nil {
		return nil, err
	}
	if err := file.WriteCommitReport(d.ReportPath, batch.Projects, infos, x.cfg.Cutoff); err != nil {
		return nil, err
	}

	logger.Info("filtered projects by last commit",
		slog.Time("cutoff", x.cfg.Cutoff),
		slog.Int("fetched", len(batch.Projects)),
		slog.Int("eligible", len(eligible)),
		slog.String("filtered_list", d.ListPath),
		slog.String("commit_report", d.ReportPath),
	)

	return d, nil
}

// ExportFiltered writes the filtered list of one catalog batch without scanning.
func (x *UseCase) ExportFiltered(ctx context.Context, batchIndex int) (*model.Discovery, error) {
	return x.DiscoverAndFilter(ctx, batchIndex)
}

// DiscoverAndScan runs discovery for one catalog batch and scans the eligible projects.
// It returns a nil summary when nothing is eligible.
func (x *UseCase) DiscoverAndScan(ctx context.Context, batchIndex int) (*model.RunSummary, error) {
	d, err := x.DiscoverAndFilter(ctx, batchIndex)
	if err != nil {
		return nil, err
	}

	if len(d.Eligible) == 0 {
		logging.From(ctx).Warn("no project was committed to after cutoff",
			slog.Time("cutoff", x.cfg.Cutoff),
			slog.Int("batch_index", batchIndex),
		)
		return nil, nil
	}

	return x.ScanProjects(ctx, d.Eligible)
}

// ExportFilteredAll walks the whole catalog and appends eligible projects of
// every batch to one aggregate list. A batch shorter than the project limit
// ends the walk.
func (x *UseCase) ExportFilteredAll(ctx context.Context) (*model.ExportSummary, error) {
	catalog, err := x.catalog()
	if err != nil {
		return nil, err
	}
	logger := logging.From(ctx)

	summary := &model.ExportSummary{
		OutputPath: x.outputPath(x.cfg.AggregatePath, AggregateListName(x.cfg.Cutoff)),
	}

	w, err := file.CreateProjectList(summary.OutputPath)
	if err != nil {
		return nil, err
	}

	if err := x.exportBatches(ctx, catalog, w, summary); err != nil {
		_ = w.Close()
		return summary, err
	}
	if err := w.Close(); err != nil {
		return summary, err
	}

	if summary.Seen == 0 {
		return summary, goerr.Wrap(types.ErrNoProjects, "catalog returned no projects")
	}

	logger.Info("exported filtered projects",
		slog.Int("batches", summary.Batches),
		slog.Int("seen", summary.Seen),
		slog.Int("matched", summary.Matched),
		slog.String("output", summary.OutputPath),
	)
	return summary, nil
}

func (x *UseCase) exportBatches(ctx context.Context, catalog interfaces.Catalog, w *file.ProjectListWriter, summary *model.ExportSummary) error {
	logger := logging.From(ctx)

	for batchIndex := 1; ; batchIndex++ {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "export interrupted", goerr.V("batch_index", batchIndex))
		}

		batch := catalog.FetchProjectsBatch(ctx, x.cfg.ProjectLimit, batchIndex)
		if batch == nil || len(batch.Projects) == 0 {
			return nil
		}

		infos, err := lookupCommits(ctx, catalog, batch.Projects)
		if err != nil {
			return err
		}
		eligible := FilterByActivity(batch.Projects, infos, x.cfg.Cutoff)
		if err := w.Append(eligible, infos); err != nil {
			return err
		}

		summary.Batches++
		summary.Seen += len(batch.Projects)
		summary.Matched += len(eligible)

		logger.Info("exported batch",
			slog.Int("batch_index", batchIndex),
			slog.Int("fetched", len(batch.Projects)),
			slog.Int("eligible", len(eligible)),
			slog.Int("matched_total", summary.Matched),
		)

		if len(batch.Projects) < x.cfg.ProjectLimit {
			return nil
		}
	}
}
