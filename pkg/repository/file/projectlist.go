package file

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/repository"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
	"github.com/secmon-lab/leakscan/pkg/utils/safe"
)

const (
	colProjectID      = "project_id"
	colName           = "name"
	colPath           = "path_with_namespace"
	colWebURL         = "web_url"
	colDefaultBranch  = "default_branch"
	colHTTPURLToRepo  = "http_url_to_repo"
	colLastCommitTime = "last_commit_time"
	colMeetsCutoff    = "meets_cutoff"
	colError          = "error"

	utf8BOM = "\ufeff"
)

// ProjectListColumns is the header of a filtered project list.
var ProjectListColumns = []string{
	colProjectID,
	colName,
	colPath,
	colWebURL,
	colDefaultBranch,
	colHTTPURLToRepo,
	colLastCommitTime,
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func projectRow(p *model.Project, infos model.CommitInfoMap) []string {
	return []string{
		p.ID.String(),
		p.Name,
		p.PathWithNamespace,
		p.WebURL,
		string(p.DefaultBranch),
		p.HTTPURLToRepo,
		formatTime(infos.LastCommitAt(p.ID)),
	}
}

func writeProjectRows(w *csv.Writer, projects []*model.Project, infos model.CommitInfoMap) error {
	for _, p := range projects {
		if p == nil {
			continue
		}
		if err := w.Write(projectRow(p, infos)); err != nil {
			return goerr.Wrap(err, "failed to write project row", goerr.V("project_id", p.ID))
		}
	}
	return nil
}

// WriteProjectList replaces path with the given projects in catalog order.
func WriteProjectList(path string, projects []*model.Project, infos model.CommitInfoMap) error {
	err := writeAtomic(path, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write(ProjectListColumns); err != nil {
			return goerr.Wrap(err, "failed to write header")
		}
		if err := writeProjectRows(w, projects, infos); err != nil {
			return err
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return goerr.Wrap(err, "failed to write project list", goerr.V("path", path), goerr.V("count", len(projects)))
	}
	return nil
}

// ProjectListWriter appends rows to a project list that grows across batches.
type ProjectListWriter struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// CreateProjectList truncates path and writes the header.
func CreateProjectList(path string) (*ProjectListWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create project list", goerr.V("path", path))
	}

	x := &ProjectListWriter{path: path, f: f, w: csv.NewWriter(f)}
	if err := x.w.Write(ProjectListColumns); err != nil {
		safe.Close(f)
		return nil, goerr.Wrap(err, "failed to write header", goerr.V("path", path))
	}
	x.w.Flush()
	if err := x.w.Error(); err != nil {
		safe.Close(f)
		return nil, goerr.Wrap(err, "failed to flush header", goerr.V("path", path))
	}

	return x, nil
}

func (x *ProjectListWriter) Path() string {
	return x.path
}

// Append writes rows and flushes them to disk before returning.
func (x *ProjectListWriter) Append(projects []*model.Project, infos model.CommitInfoMap) error {
	if err := writeProjectRows(x.w, projects, infos); err != nil {
		return goerr.Wrap(err, "failed to append projects", goerr.V("path", x.path))
	}
	x.w.Flush()
	if err := x.w.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush project list", goerr.V("path", x.path))
	}
	if err := x.f.Sync(); err != nil {
		return goerr.Wrap(err, "failed to sync project list", goerr.V("path", x.path))
	}
	return nil
}

func (x *ProjectListWriter) Close() error {
	x.w.Flush()
	if err := x.w.Error(); err != nil {
		safe.Close(x.f)
		return goerr.Wrap(err, "failed to flush project list", goerr.V("path", x.path))
	}
	if err := x.f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close project list", goerr.V("path", x.path))
	}
	return nil
}

// ReadProjectList loads a project list. Columns are matched by header name, so
// lists written without last_commit_time are accepted. Rows without a valid
// project ID are skipped.
func ReadProjectList(ctx context.Context, path string) ([]*model.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "project list not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to open project list", goerr.V("path", path))
	}
	defer safe.Close(f)

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read header", goerr.V("path", path))
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[colProjectID]; !ok {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "project list has no project_id column",
			goerr.V("path", path),
			goerr.V("header", header),
		)
	}

	logger := logging.From(ctx)
	var projects []*model.Project
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read project list", goerr.V("path", path), goerr.V("line", line))
		}

		get := func(col string) string {
			if i, ok := index[col]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		id, err := strconv.ParseInt(get(colProjectID), 10, 64)
		if err != nil || id <= 0 {
			logger.Warn("skip row without valid project ID",
				slog.String("path", path),
				slog.Int("line", line),
				slog.String("project_id", get(colProjectID)),
			)
			continue
		}

		projects = append(projects, &model.Project{
			ID:                types.ProjectID(id),
			Name:              get(colName),
			PathWithNamespace: get(colPath),
			WebURL:            get(colWebURL),
			DefaultBranch:     types.BranchName(get(colDefaultBranch)),
			HTTPURLToRepo:     get(colHTTPURLToRepo),
		})
	}

	return projects, nil
}
