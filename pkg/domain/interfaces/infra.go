package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Catalog Cloner Scanner BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// Catalog lists projects of a GitLab instance.
type Catalog interface {
	// FetchProjectsPage returns one remote page. Failures are logged and yield an empty page.
	FetchProjectsPage(ctx context.Context, pageSize, page int) []*model.Project
	// FetchProjectsBatch assembles batchSize projects from as many remote pages as needed.
	// Batch N covers catalog positions [(N-1)*batchSize, N*batchSize).
	FetchProjectsBatch(ctx context.Context, batchSize, batchIndex int) *model.ProjectBatch
	// FetchLastCommitTime looks up the most recent commit of branch.
	FetchLastCommitTime(ctx context.Context, projectID types.ProjectID, branch types.BranchName) (*model.CommitInfo, error)
}

// Cloner materializes a repository into dst. dst may be left partially
// populated on failure and must still be cleaned up by the caller.
type Cloner interface {
	Clone(ctx context.Context, repoURL, dst string) error
}

// Scanner runs the secret scanner against src and writes a JSON report to reportPath.
type Scanner interface {
	Scan(ctx context.Context, src, reportPath string) error
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
