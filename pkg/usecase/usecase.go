package usecase

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/infra"
	"github.com/secmon-lab/leakscan/pkg/repository/file"
	"github.com/secmon-lab/leakscan/pkg/utils/cleanup"
)

const (
	DefaultProjectLimit = 500
	DefaultBatchSize    = 20
	cutoffLayout        = "2006-01-02"
	fileDateLayout      = "20060102"
)

// Config is built once at startup and is read-only afterwards.
type Config struct {
	Token  types.GitLabToken
	Cutoff time.Time

	// ProjectLimit is the number of catalog projects fetched per discovery batch.
	ProjectLimit int
	// BatchSize is the number of projects scanned between operator pauses.
	BatchSize int

	WorkDir   string
	ReportDir string
	OutputDir string

	// Optional overrides of the default file names.
	FilteredListPath string
	CommitReportPath string
	AggregatePath    string
	ProgressPath     string

	Unattended    bool
	ResetProgress bool
	CleanupPolicy cleanup.Policy
}

func (x *Config) Validate() error {
	if x.ProjectLimit <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "project limit must be positive", goerr.V("project_limit", x.ProjectLimit))
	}
	if x.BatchSize <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "batch size must be positive", goerr.V("batch_size", x.BatchSize))
	}
	if x.WorkDir == "" {
		return goerr.Wrap(types.ErrInvalidOption, "work directory is required")
	}
	if x.ReportDir == "" {
		return goerr.Wrap(types.ErrInvalidOption, "report directory is required")
	}
	if x.Cutoff.IsZero() {
		return goerr.Wrap(types.ErrInvalidOption, "cutoff is required")
	}
	return nil
}

// FilteredListName is the default file name of the filtered list of one discovery batch.
func FilteredListName(cutoff time.Time, page int) string {
	return fmt.Sprintf("filtered_projects_since_%s_page_%d.csv", cutoff.Format(fileDateLayout), page)
}

// CommitReportName is the default file name of the commit audit report of one discovery batch.
func CommitReportName(page int) string {
	return fmt.Sprintf("project_last_commit_times_page_%d.csv", page)
}

// AggregateListName is the default file name of the filtered list over the whole catalog.
func AggregateListName(cutoff time.Time) string {
	return fmt.Sprintf("filtered_projects_since_%s_all.csv", cutoff.Format(fileDateLayout))
}

// ProgressFileName is the default checkpoint file name.
func ProgressFileName(cutoff time.Time, page int) string {
	return fmt.Sprintf("scan_progress_since_%s_page_%d.txt", cutoff.Format(fileDateLayout), page)
}

type UseCase struct {
	clients   *infra.Clients
	cfg       Config
	runID     types.RunID
	progress  interfaces.ProgressStore
	prompter  interfaces.Prompter
	recorders []interfaces.OutcomeRecorder
}

type Option func(*UseCase)

// WithProgressStore replaces the checkpoint file configured by Config.ProgressPath.
func WithProgressStore(store interfaces.ProgressStore) Option {
	return func(x *UseCase) {
		x.progress = store
	}
}

func WithPrompter(prompter interfaces.Prompter) Option {
	return func(x *UseCase) {
		x.prompter = prompter
	}
}

// WithRecorder adds a destination for per-project results in addition to the outcome log.
func WithRecorder(recorder interfaces.OutcomeRecorder) Option {
	return func(x *UseCase) {
		x.recorders = append(x.recorders, recorder)
	}
}

func WithRunID(runID types.RunID) Option {
	return func(x *UseCase) {
		x.runID = runID
	}
}

func New(clients *infra.Clients, cfg Config, options ...Option) *UseCase {
	if cfg.ProjectLimit <= 0 {
		cfg.ProjectLimit = DefaultProjectLimit
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.CleanupPolicy.Attempts <= 0 {
		cfg.CleanupPolicy = cleanup.DefaultPolicy()
	}

	x := &UseCase{
		clients: clients,
		cfg:     cfg,
	}
	for _, opt := range options {
		opt(x)
	}

	if x.runID == "" {
		x.runID = types.NewRunID()
	}
	if x.progress == nil {
		path := cfg.ProgressPath
		if path == "" {
			path = filepath.Join(cfg.OutputDir, ProgressFileName(cfg.Cutoff, 1))
		}
		x.progress = file.NewProgress(path)
	}

	recorders := []interfaces.OutcomeRecorder{file.NewOutcomeLog(cfg.ReportDir, x.runID)}
	if clients.BigQuery() != nil {
		recorders = append(recorders, newBigQueryRecorder(clients.BigQuery()))
	}
	x.recorders = append(recorders, x.recorders...)

	return x
}

func (x *UseCase) RunID() types.RunID {
	return x.runID
}

func (x *UseCase) unattended() bool {
	return x.cfg.Unattended || x.prompter == nil
}

func (x *UseCase) outputPath(override, name string) string {
	if override != "" {
		return override
	}
	return filepath.Join(x.cfg.OutputDir, name)
}
