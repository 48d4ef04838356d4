package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/utils/safe"
)

// OutcomeLog appends one JSON object per processed project.
type OutcomeLog struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.OutcomeRecorder = (*OutcomeLog)(nil)

// OutcomeLogName returns the file name of the outcome log of a run.
func OutcomeLogName(runID types.RunID) string {
	return fmt.Sprintf("scan_outcomes_%s.jsonl", runID)
}

func NewOutcomeLog(dir string, runID types.RunID) *OutcomeLog {
	return &OutcomeLog{path: filepath.Join(dir, OutcomeLogName(runID))}
}

func (x *OutcomeLog) Path() string {
	return x.path
}

func (x *OutcomeLog) Record(ctx context.Context, result *model.ScanResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal scan result", goerr.V("project_id", result.ProjectID))
	}
	raw = append(raw, '\n')

	x.mu.Lock()
	defer x.mu.Unlock()

	f, err := os.OpenFile(x.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to open outcome log", goerr.V("path", x.path))
	}
	defer safe.Close(f)

	if _, err := f.Write(raw); err != nil {
		return goerr.Wrap(err, "failed to write outcome", goerr.V("path", x.path), goerr.V("project_id", result.ProjectID))
	}
	return nil
}
