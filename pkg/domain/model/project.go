package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// Project is a GitLab project as returned by the catalog. It is passed by value
// between stages and never mutated after it is fetched.
type Project struct {
	ID                types.ProjectID  `json:"id"`
	Name              string           `json:"name"`
	PathWithNamespace string           `json:"path_with_namespace"`
	WebURL            string           `json:"web_url"`
	HTTPURLToRepo     string           `json:"http_url_to_repo"`
	DefaultBranch     types.BranchName `json:"default_branch"`
}

func (x *Project) Validate() error {
	if x.ID <= 0 {
		return goerr.Wrap(types.ErrValidationFailed, "project ID must be positive", goerr.V("id", x.ID))
	}
	return nil
}

// ProjectBatch is a logical batch of projects assembled from one or more remote pages.
type ProjectBatch struct {
	Projects  []*Project
	FirstPage int
	LastPage  int
}

// CommitInfo is the result of a last-commit lookup for one project. LastCommitAt
// is nil when the project has no commit on its default branch or the lookup
// failed; Error carries the failure text for the audit report.
type CommitInfo struct {
	ProjectID    types.ProjectID
	LastCommitAt *time.Time
	Error        string
}

// Eligible reports whether the project was committed to at or after cutoff.
// Unknown commit times and failed lookups are never eligible.
func (x *CommitInfo) Eligible(cutoff time.Time) bool {
	if x == nil || x.Error != "" || x.LastCommitAt == nil {
		return false
	}
	return !x.LastCommitAt.Before(cutoff)
}

// CommitInfoMap indexes lookup results by project.
type CommitInfoMap map[types.ProjectID]*CommitInfo

// LastCommitAt returns the commit time of id or nil.
func (x CommitInfoMap) LastCommitAt(id types.ProjectID) *time.Time {
	if info, ok := x[id]; ok && info != nil {
		return info.LastCommitAt
	}
	return nil
}
