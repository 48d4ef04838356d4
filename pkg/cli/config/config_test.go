package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/cli/config"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/infra/gitcmd"
	"github.com/secmon-lab/leakscan/pkg/infra/gogit"
	"github.com/urfave/cli/v3"
)

// parse runs a command with flags and args so that flag destinations are populated.
func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestWorkspaceDefaults(t *testing.T) {
	var ws config.Workspace
	reportDir := t.TempDir()
	parse(t, ws.Flags(), "--report-dir", reportDir)

	cfg := gt.R1(ws.Config("token", false)).NoError(t)
	gt.True(t, cfg.Cutoff.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
	gt.V(t, cfg.ProjectLimit).Equal(500)
	gt.V(t, cfg.BatchSize).Equal(20)
	gt.V(t, cfg.OutputDir).Equal(reportDir)
	gt.V(t, cfg.FilteredListPath).Equal(filepath.Join(reportDir, "filtered_projects_since_20250701_page_1.csv"))
	gt.V(t, cfg.ProgressPath).Equal(filepath.Join(reportDir, "scan_progress_since_20250701_page_1.txt"))
	gt.False(t, cfg.Unattended)
	gt.False(t, cfg.ResetProgress)
}

func TestWorkspaceOverrides(t *testing.T) {
	var ws config.Workspace
	dir := t.TempDir()
	parse(t, ws.Flags(),
		"--cutoff-date", "2024-12-01",
		"--page", "3",
		"--project-limit", "0",
		"--batch-size", "5",
		"--progress-file", filepath.Join(dir, "p.txt"),
		"--work-dir", filepath.Join(dir, "work"),
		"--report-dir", filepath.Join(dir, "reports"),
		"--no-prompt",
		"--reset-progress",
	)

	gt.V(t, ws.Page()).Equal(3)
	gt.True(t, ws.NoPrompt())

	cfg := gt.R1(ws.Config("token", true)).NoError(t)
	gt.V(t, cfg.ProjectLimit).Equal(1)
	gt.V(t, cfg.BatchSize).Equal(5)
	gt.V(t, cfg.ProgressPath).Equal(filepath.Join(dir, "p.txt"))
	gt.V(t, cfg.FilteredListPath).Equal(filepath.Join(dir, "reports", "filtered_projects_since_20241201_page_3.csv"))
	gt.True(t, cfg.Unattended)
	gt.True(t, cfg.ResetProgress)

	gt.NoError(t, ws.Prepare())
	gt.R1(os.Stat(filepath.Join(dir, "work"))).NoError(t)
	gt.R1(os.Stat(filepath.Join(dir, "reports"))).NoError(t)
}

func TestWorkspaceInvalidCutoff(t *testing.T) {
	var ws config.Workspace
	parse(t, ws.Flags(), "--cutoff-date", "07/01/2025")

	_, err := ws.Config("token", false)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestGitLabValidate(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		var gl config.GitLab
		parse(t, gl.Flags(), "--gitlab-url", "https://gitlab.example.com")
		err := gl.Validate()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		_, err = gl.NewClient()
		gt.Error(t, err)
	})

	t.Run("missing url", func(t *testing.T) {
		var gl config.GitLab
		parse(t, gl.Flags(), "--gitlab-token", "glpat-x")
		gt.True(t, errors.Is(gl.Validate(), types.ErrInvalidOption))
	})

	t.Run("configured", func(t *testing.T) {
		var gl config.GitLab
		parse(t, gl.Flags(), "--gitlab-url", "https://gitlab.example.com", "--gitlab-token", "glpat-x")
		gt.NoError(t, gl.Validate())
		gt.V(t, gl.Token()).Equal(types.GitLabToken("glpat-x"))
		gt.R1(gl.NewClient()).NoError(t)
	})

	t.Run("token is not logged", func(t *testing.T) {
		var gl config.GitLab
		parse(t, gl.Flags(), "--gitlab-url", "https://gitlab.example.com", "--gitlab-token", "glpat-very-secret")
		gt.False(t, strings.Contains(gl.LogValue().String(), "glpat-very-secret"))
	})
}

func TestScannerCloneBackend(t *testing.T) {
	t.Run("git by default", func(t *testing.T) {
		var sc config.Scanner
		parse(t, sc.Flags())
		cloner := gt.R1(sc.NewCloner()).NoError(t)
		_, ok := cloner.(*gitcmd.Client)
		gt.True(t, ok)
		gt.True(t, sc.NewScanner() != nil)
	})

	t.Run("go-git", func(t *testing.T) {
		var sc config.Scanner
		parse(t, sc.Flags(), "--clone-backend", "go-git")
		cloner := gt.R1(sc.NewCloner()).NoError(t)
		_, ok := cloner.(*gogit.Client)
		gt.True(t, ok)
	})

	t.Run("unknown", func(t *testing.T) {
		var sc config.Scanner
		parse(t, sc.Flags(), "--clone-backend", "svn")
		_, err := sc.NewCloner()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestBigQueryDisabled(t *testing.T) {
	var bq config.BigQuery
	parse(t, bq.Flags())
	gt.False(t, bq.Enabled())

	client, err := bq.NewClient(context.Background())
	gt.NoError(t, err)
	gt.True(t, client == nil)
}

func TestBigQueryRequiresDataset(t *testing.T) {
	var bq config.BigQuery
	parse(t, bq.Flags(), "--bigquery-project-id", "my-project")
	gt.True(t, bq.Enabled())

	_, err := bq.NewClient(context.Background())
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}
