package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/repository"
	"github.com/secmon-lab/leakscan/pkg/repository/file"
)

func testProjects() ([]*model.Project, model.CommitInfoMap) {
	t1 := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	projects := []*model.Project{
		{
			ID:                101,
			Name:              "alpha",
			PathWithNamespace: "group/alpha",
			WebURL:            "https://gitlab.example.com/group/alpha",
			HTTPURLToRepo:     "https://gitlab.example.com/group/alpha.git",
			DefaultBranch:     "main",
		},
		{
			ID:                102,
			Name:              "beta, with comma",
			PathWithNamespace: "group/beta",
			WebURL:            "https://gitlab.example.com/group/beta",
			HTTPURLToRepo:     "https://gitlab.example.com/group/beta.git",
		},
	}
	infos := model.CommitInfoMap{
		101: {ProjectID: 101, LastCommitAt: &t1},
		102: {ProjectID: 102, Error: "404 Not Found"},
	}
	return projects, infos
}

func TestProjectListRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "filtered.csv")
	projects, infos := testProjects()

	gt.NoError(t, file.WriteProjectList(path, projects, infos))

	raw := gt.R1(os.ReadFile(path)).NoError(t)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	gt.A(t, lines).Length(3)
	gt.V(t, lines[0]).Equal("project_id,name,path_with_namespace,web_url,default_branch,http_url_to_repo,last_commit_time")
	gt.S(t, lines[1]).Contains("2025-08-01T12:00:00Z")

	loaded := gt.R1(file.ReadProjectList(ctx, path)).NoError(t)
	gt.V(t, loaded).Equal(projects)
}

func TestReadProjectListLegacyColumns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "legacy.csv")
	content := "project_id,name,path_with_namespace,web_url,default_branch,http_url_to_repo\n" +
		"7,seven,g/seven,https://h/g/seven,main,https://h/g/seven.git\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded := gt.R1(file.ReadProjectList(ctx, path)).NoError(t)
	gt.A(t, loaded).Length(1)
	gt.V(t, loaded[0].ID).Equal(types.ProjectID(7))
	gt.V(t, loaded[0].HTTPURLToRepo).Equal("https://h/g/seven.git")
}

func TestReadProjectListSkipsInvalidRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "list.csv")
	content := "\ufeffproject_id,name,http_url_to_repo\n" +
		"1,one,https://h/one.git\n" +
		",missing,https://h/missing.git\n" +
		"abc,bad,https://h/bad.git\n" +
		"3,three,https://h/three.git\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded := gt.R1(file.ReadProjectList(ctx, path)).NoError(t)
	gt.A(t, loaded).Length(2)
	gt.V(t, loaded[0].ID).Equal(types.ProjectID(1))
	gt.V(t, loaded[1].ID).Equal(types.ProjectID(3))
}

func TestReadProjectListErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := file.ReadProjectList(ctx, filepath.Join(t.TempDir(), "none.csv"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("no project_id column", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.csv")
		gt.NoError(t, os.WriteFile(path, []byte("id,name\n1,a\n"), 0644))
		_, err := file.ReadProjectList(ctx, path)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.csv")
		gt.NoError(t, os.WriteFile(path, nil, 0644))
		loaded := gt.R1(file.ReadProjectList(ctx, path)).NoError(t)
		gt.A(t, loaded).Length(0)
	})
}

func TestProjectListWriter(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "all.csv")
	projects, infos := testProjects()

	w := gt.R1(file.CreateProjectList(path)).NoError(t)
	gt.V(t, w.Path()).Equal(path)

	// header is on disk before any batch is appended
	loaded := gt.R1(file.ReadProjectList(ctx, path)).NoError(t)
	gt.A(t, loaded).Length(0)

	gt.NoError(t, w.Append(projects[:1], infos))
	gt.NoError(t, w.Append(nil, infos))
	gt.NoError(t, w.Append(projects[1:], infos))

	loaded = gt.R1(file.ReadProjectList(ctx, path)).NoError(t)
	gt.V(t, loaded).Equal(projects)

	gt.NoError(t, w.Close())
}

func TestWriteCommitReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commits.csv")
	projects, infos := testProjects()
	cutoff := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	gt.NoError(t, file.WriteCommitReport(path, projects, infos, cutoff))

	raw := gt.R1(os.ReadFile(path)).NoError(t)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	gt.A(t, lines).Length(3)
	gt.V(t, lines[0]).Equal("project_id,name,path_with_namespace,web_url,default_branch,last_commit_time,meets_cutoff,error")
	gt.V(t, lines[1]).Equal("101,alpha,group/alpha,https://gitlab.example.com/group/alpha,main,2025-08-01T12:00:00Z,yes,")
	gt.V(t, lines[2]).Equal(`102,"beta, with comma",group/beta,https://gitlab.example.com/group/beta,,,no,404 Not Found`)
}
