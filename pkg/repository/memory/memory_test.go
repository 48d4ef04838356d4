package memory_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/repository/memory"
	"github.com/secmon-lab/leakscan/pkg/repository/testhelper"
)

func TestProgress(t *testing.T) {
	testhelper.TestProgressStore(t, func(t *testing.T) interfaces.ProgressStore {
		return memory.NewProgress()
	})
}

func TestOutcomes(t *testing.T) {
	ctx := context.Background()
	rec := memory.NewOutcomes()

	result := &model.ScanResult{ProjectID: 1, Outcome: types.ScanOutcomeClean}
	gt.NoError(t, rec.Record(ctx, result))
	gt.NoError(t, rec.Record(ctx, &model.ScanResult{ProjectID: 2, Outcome: types.ScanOutcomeLeakFound}))

	// recorded values are copies
	result.Outcome = types.ScanOutcomeScanFailed

	got := rec.Results()
	gt.A(t, got).Length(2)
	gt.V(t, got[0].ProjectID).Equal(types.ProjectID(1))
	gt.V(t, got[0].Outcome).Equal(types.ScanOutcomeClean)
	gt.V(t, got[1].Outcome).Equal(types.ScanOutcomeLeakFound)
}
