package usecase_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/infra"
	"github.com/secmon-lab/leakscan/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("run ID is generated", func(t *testing.T) {
		uc := usecase.New(infra.New(), testConfig(t))
		gt.V(t, uc.RunID()).NotEqual(types.RunID(""))
	})

	t.Run("run ID can be given", func(t *testing.T) {
		uc := usecase.New(infra.New(), testConfig(t), usecase.WithRunID("fixed"))
		gt.V(t, uc.RunID()).Equal(types.RunID("fixed"))
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := testConfig(t)
		gt.NoError(t, cfg.Validate())
	})

	cases := map[string]func(cfg *usecase.Config){
		"zero batch size":    func(cfg *usecase.Config) { cfg.BatchSize = 0 },
		"zero project limit": func(cfg *usecase.Config) { cfg.ProjectLimit = 0 },
		"no work dir":        func(cfg *usecase.Config) { cfg.WorkDir = "" },
		"no report dir":      func(cfg *usecase.Config) { cfg.ReportDir = "" },
		"no cutoff":          func(cfg *usecase.Config) { cfg.Cutoff = time.Time{} },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			modify(&cfg)
			err := cfg.Validate()
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}

func TestFileNames(t *testing.T) {
	cutoff := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	gt.V(t, usecase.FilteredListName(cutoff, 3)).Equal("filtered_projects_since_20250701_page_3.csv")
	gt.V(t, usecase.CommitReportName(3)).Equal("project_last_commit_times_page_3.csv")
	gt.V(t, usecase.AggregateListName(cutoff)).Equal("filtered_projects_since_20250701_all.csv")
	gt.V(t, usecase.ProgressFileName(cutoff, 1)).Equal("scan_progress_since_20250701_page_1.txt")

	// names never contain a directory part
	gt.V(t, filepath.Base(usecase.FilteredListName(cutoff, 1))).Equal(usecase.FilteredListName(cutoff, 1))
}
