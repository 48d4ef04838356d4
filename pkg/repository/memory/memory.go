package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/repository"
)

// Progress is an in-memory checkpoint
type Progress struct {
	mu sync.RWMutex
	n  int
}

var _ interfaces.ProgressStore = (*Progress)(nil)

func NewProgress() *Progress {
	return &Progress{}
}

func (x *Progress) Read(ctx context.Context) int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.n
}

func (x *Progress) Write(ctx context.Context, n int) error {
	if n < 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "progress must not be negative", goerr.V("n", n))
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	x.n = n
	return nil
}

func (x *Progress) Reset(ctx context.Context) error {
	return x.Write(ctx, 0)
}

// Outcomes keeps recorded scan results in order
type Outcomes struct {
	mu      sync.RWMutex
	results []*model.ScanResult
}

var _ interfaces.OutcomeRecorder = (*Outcomes)(nil)

func NewOutcomes() *Outcomes {
	return &Outcomes{}
}

func (x *Outcomes) Record(ctx context.Context, result *model.ScanResult) error {
	copied := *result
	x.mu.Lock()
	defer x.mu.Unlock()
	x.results = append(x.results, &copied)
	return nil
}

// Results returns a snapshot of the recorded results.
func (x *Outcomes) Results() []*model.ScanResult {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return append([]*model.ScanResult(nil), x.results...)
}
