package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/mock"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/usecase"
	"github.com/secmon-lab/leakscan/pkg/utils/cleanup"
)

const (
	testToken    = types.GitLabToken("glpat-test-secret-token")
	emptyReport  = "[]"
	leakReport   = `[{"RuleID":"aws-access-token","File":"config.yml","Match":"AKIA..."},{"RuleID":"generic-api-key","File":"main.go"}]`
	cutoffString = "2025-07-01"
)

func testConfig(t *testing.T) usecase.Config {
	t.Helper()
	root := t.TempDir()
	cfg := usecase.Config{
		Token:        testToken,
		Cutoff:       gt.R1(usecase.ParseCutoff(cutoffString)).NoError(t),
		ProjectLimit: 100,
		BatchSize:    2,
		WorkDir:      filepath.Join(root, "work"),
		ReportDir:    filepath.Join(root, "reports"),
		OutputDir:    root,
	}
	cfg.CleanupPolicy = cleanup.Policy{
		Attempts:        2,
		InitialInterval: time.Millisecond,
	}
	gt.NoError(t, os.MkdirAll(cfg.WorkDir, 0755))
	gt.NoError(t, os.MkdirAll(cfg.ReportDir, 0755))
	return cfg
}

func newProject(id int64, name string) *model.Project {
	return &model.Project{
		ID:                types.ProjectID(id),
		Name:              name,
		PathWithNamespace: "group/" + name,
		WebURL:            "https://gitlab.example.com/group/" + name,
		HTTPURLToRepo:     "https://gitlab.example.com/group/" + name + ".git",
		DefaultBranch:     "main",
	}
}

// newCloner returns a cloner that populates dst with a working tree including
// read-only git objects.
func newCloner(t *testing.T) *mock.ClonerMock {
	return &mock.ClonerMock{
		CloneFunc: func(ctx context.Context, repoURL string, dst string) error {
			objects := filepath.Join(dst, ".git", "objects", "ab")
			if err := os.MkdirAll(objects, 0755); err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(objects, "cdef"), []byte("blob"), 0444); err != nil {
				return err
			}
			return os.WriteFile(filepath.Join(dst, "README.md"), []byte("# readme"), 0644)
		},
	}
}

// newScanner returns a scanner that writes report as its output. An empty
// report means the scanner writes nothing.
func newScanner(report string) *mock.ScannerMock {
	return &mock.ScannerMock{
		ScanFunc: func(ctx context.Context, src string, reportPath string) error {
			if report == "" {
				return nil
			}
			return os.WriteFile(reportPath, []byte(report), 0644)
		},
	}
}

// assertNoCloneLeft checks that the work directory is empty.
func assertNoCloneLeft(t *testing.T, workDir string) {
	t.Helper()
	entries := gt.R1(os.ReadDir(workDir)).NoError(t)
	gt.A(t, entries).Length(0)
}
