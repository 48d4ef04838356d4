package usecase

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// ParseCutoff parses a YYYY-MM-DD date as midnight UTC.
func ParseCutoff(s string) (time.Time, error) {
	t, err := time.ParseInLocation(cutoffLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, goerr.Wrap(types.ErrInvalidOption, "cutoff date must be YYYY-MM-DD",
			goerr.V("cutoff", s),
			goerr.V("cause", err.Error()),
		)
	}
	return t, nil
}

// FilterByActivity returns the projects whose last commit is at or after
// cutoff, keeping catalog order. Projects without a known commit time are dropped.
func FilterByActivity(projects []*model.Project, infos model.CommitInfoMap, cutoff time.Time) []*model.Project {
	var eligible []*model.Project
	for _, p := range projects {
		if p == nil {
			continue
		}
		if infos[p.ID].Eligible(cutoff) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}
