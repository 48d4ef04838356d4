package file

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
)

// CommitReportColumns is the header of the per-batch commit audit report.
var CommitReportColumns = []string{
	colProjectID,
	colName,
	colPath,
	colWebURL,
	colDefaultBranch,
	colLastCommitTime,
	colMeetsCutoff,
	colError,
}

// WriteCommitReport records the commit lookup of every fetched project,
// eligible or not.
func WriteCommitReport(path string, projects []*model.Project, infos model.CommitInfoMap, cutoff time.Time) error {
	err := writeAtomic(path, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write(CommitReportColumns); err != nil {
			return goerr.Wrap(err, "failed to write header")
		}

		for _, p := range projects {
			if p == nil {
				continue
			}
			info := infos[p.ID]
			meets := "no"
			if info.Eligible(cutoff) {
				meets = "yes"
			}
			var errText string
			if info != nil {
				errText = info.Error
			}

			row := []string{
				p.ID.String(),
				p.Name,
				p.PathWithNamespace,
				p.WebURL,
				string(p.DefaultBranch),
				formatTime(infos.LastCommitAt(p.ID)),
				meets,
				errText,
			}
			if err := w.Write(row); err != nil {
				return goerr.Wrap(err, "failed to write row", goerr.V("project_id", p.ID))
			}
		}

		w.Flush()
		return w.Error()
	})
	if err != nil {
		return goerr.Wrap(err, "failed to write commit report", goerr.V("path", path))
	}
	return nil
}
