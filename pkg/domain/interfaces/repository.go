package interfaces

import (
	"context"

	"github.com/secmon-lab/leakscan/pkg/domain/model"
)

//go:generate moq -out ../mock/repository.go -pkg mock . ProgressStore OutcomeRecorder

// ProgressStore keeps the count of projects fully processed in a filtered list.
type ProgressStore interface {
	// Read returns the checkpoint, or 0 if it is absent or unreadable.
	Read(ctx context.Context) int
	Write(ctx context.Context, n int) error
	Reset(ctx context.Context) error
}

// OutcomeRecorder persists per-project scan results.
type OutcomeRecorder interface {
	Record(ctx context.Context, result *model.ScanResult) error
}
