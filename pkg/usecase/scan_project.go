package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/utils/cleanup"
	"github.com/secmon-lab/leakscan/pkg/utils/errutil"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
	"github.com/secmon-lab/leakscan/pkg/utils/safe"
)

// emptyReportSize is the largest report that cannot hold a finding ("[]" plus whitespace).
const emptyReportSize = 5

// ScanProject clones one project, scans it and removes the clone. It always
// returns exactly one result; failures are reported in its Outcome.
func (x *UseCase) ScanProject(ctx context.Context, project *model.Project, batchID int) *model.ScanResult {
	logger := logging.From(ctx).With(
		slog.Any("project_id", project.ID),
		slog.String("project", project.PathWithNamespace),
		slog.Int("batch_id", batchID),
	)

	result := &model.ScanResult{
		RunID:       x.runID,
		BatchID:     batchID,
		ProjectID:   project.ID,
		ProjectName: project.Name,
		ProjectPath: project.PathWithNamespace,
		StartedAt:   logging.CtxTime(ctx),
	}
	defer func() {
		result.FinishedAt = logging.CtxTime(ctx)
		logger.Info("project processed",
			slog.String("outcome", result.Outcome.String()),
			slog.Int("findings", result.FindingCount),
			slog.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)),
		)
	}()

	cloneURL, err := project.AuthenticatedCloneURL(x.cfg.Token)
	if err != nil {
		result.Outcome = types.ScanOutcomeScanFailed
		result.Error = err.Error()
		logger.Warn("skip project without usable clone URL", slog.Any("error", err))
		return result
	}

	dir, err := os.MkdirTemp(x.cfg.WorkDir, project.DirName()+".*")
	if err != nil {
		result.Outcome = types.ScanOutcomeUnexpectedError
		result.Error = err.Error()
		logger.Error("failed to create clone directory", slog.Any("error", err), slog.String("work_dir", x.cfg.WorkDir))
		return result
	}

	defer func() {
		// cleanup must also run after cancellation
		if err := cleanup.RemoveAll(context.WithoutCancel(ctx), dir, x.cfg.CleanupPolicy); err != nil {
			result.CleanupError = err.Error()
			errutil.HandleError(ctx, "failed to remove clone directory, remove it manually",
				goerr.Wrap(err, "cleanup failed",
					goerr.V("project_id", project.ID),
					goerr.V("run_id", x.runID),
					goerr.V("batch_id", batchID),
				))
		}
	}()

	x.cloneAndScan(ctx, logger, project, cloneURL, dir, batchID, result)
	return result
}

func (x *UseCase) cloneAndScan(ctx context.Context, logger *slog.Logger, project *model.Project, cloneURL, dir string, batchID int, result *model.ScanResult) {
	defer func() {
		if r := recover(); r != nil {
			result.Outcome = types.ScanOutcomeUnexpectedError
			result.Error = model.RedactURLCredentials(fmt.Sprint(r))
			errutil.HandleError(ctx, "panic while scanning project",
				goerr.Wrap(types.ErrScanFailed, "recovered panic",
					goerr.V("panic", result.Error),
					goerr.V("project_id", project.ID),
					goerr.V("run_id", x.runID),
					goerr.V("batch_id", batchID),
				))
		}
	}()

	logger.Debug("cloning project", slog.String("dir", dir))
	if err := x.clients.Cloner().Clone(ctx, cloneURL, dir); err != nil {
		result.Outcome = types.ScanOutcomeCloneFailed
		result.Error = model.RedactURLCredentials(err.Error())
		logger.Warn("failed to clone project", slog.Any("error", err))
		return
	}

	reportPath := filepath.Join(x.cfg.ReportDir, project.ReportName(batchID))
	logger.Debug("scanning project", slog.String("report", reportPath))
	if err := x.clients.Scanner().Scan(ctx, dir, reportPath); err != nil {
		result.Outcome = types.ScanOutcomeScanFailed
		result.Error = err.Error()
		logger.Warn("failed to scan project", slog.Any("error", err))
		return
	}

	count, retained, err := inspectReport(reportPath)
	if err != nil {
		logger.Warn("report is not a findings list, keeping it as is",
			slog.String("report", reportPath),
			slog.Any("error", err),
		)
	}
	if !retained {
		result.Outcome = types.ScanOutcomeClean
		return
	}

	result.Outcome = types.ScanOutcomeLeakFound
	result.ReportPath = reportPath
	result.FindingCount = count
	if err != nil {
		result.Error = err.Error()
	}
	logger.Warn("secrets found", slog.Int("findings", count), slog.String("report", reportPath))
}

// inspectReport counts findings in a scanner report. Reports without findings
// are deleted. Undecodable reports are retained and returned with an error.
func inspectReport(path string) (count int, retained bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, true, goerr.Wrap(err, "failed to stat report", goerr.V("path", path))
	}
	if info.Size() <= emptyReportSize {
		safe.Remove(path)
		return 0, false, nil
	}

	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return 0, true, goerr.Wrap(err, "failed to read report", goerr.V("path", path))
	}

	findings, err := decodeFindings(raw)
	if err != nil {
		return 0, true, goerr.Wrap(err, "failed to decode report", goerr.V("path", path))
	}
	if len(findings) == 0 {
		safe.Remove(path)
		return 0, false, nil
	}

	return len(findings), true, nil
}
