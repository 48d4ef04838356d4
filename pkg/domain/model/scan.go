package model

import (
	"time"

	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// ScanResult is the terminal record of processing one project. A report that
// could not be decoded is kept as leak-found with FindingCount 0 and the
// decode failure in Error, so it stays apart from a confirmed leak.
type ScanResult struct {
	RunID        types.RunID       `json:"run_id" bigquery:"run_id"`
	BatchID      int               `json:"batch_id" bigquery:"batch_id"`
	Index        int               `json:"index" bigquery:"index"`
	ProjectID    types.ProjectID   `json:"project_id" bigquery:"project_id"`
	ProjectName  string            `json:"project_name" bigquery:"project_name"`
	ProjectPath  string            `json:"project_path" bigquery:"project_path"`
	Outcome      types.ScanOutcome `json:"outcome" bigquery:"outcome"`
	ReportPath   string            `json:"report_path,omitempty" bigquery:"report_path"`
	FindingCount int               `json:"finding_count" bigquery:"finding_count"`
	Error        string            `json:"error,omitempty" bigquery:"error"`
	CleanupError string            `json:"cleanup_error,omitempty" bigquery:"cleanup_error"`
	StartedAt    time.Time         `json:"started_at" bigquery:"started_at"`
	FinishedAt   time.Time         `json:"finished_at" bigquery:"finished_at"`
}

// RunSummary aggregates one invocation of the scan loop.
type RunSummary struct {
	RunID      types.RunID
	Total      int
	Start      int
	Checkpoint int
	Processed  int
	Stopped    bool
	Outcomes   map[types.ScanOutcome]int
}

func NewRunSummary(runID types.RunID, total, start int) *RunSummary {
	return &RunSummary{
		RunID:      runID,
		Total:      total,
		Start:      start,
		Checkpoint: start,
		Outcomes:   make(map[types.ScanOutcome]int),
	}
}

// Add folds one result into the summary.
func (x *RunSummary) Add(result *ScanResult) {
	x.Processed++
	x.Outcomes[result.Outcome]++
}

// Discovery is the output of one discover-and-filter pass.
type Discovery struct {
	Batch      *ProjectBatch
	CommitInfo CommitInfoMap
	Eligible   []*Project
	ListPath   string
	ReportPath string
}

// ExportSummary is the output of an export-all pass over the whole catalog.
type ExportSummary struct {
	Batches    int
	Seen       int
	Matched    int
	OutputPath string
}
