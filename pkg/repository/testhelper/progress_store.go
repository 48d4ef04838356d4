package testhelper

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/repository"
)

// TestProgressStore runs the behaviour every ProgressStore must share.
// newStore must return an empty store on every call.
func TestProgressStore(t *testing.T, newStore func(t *testing.T) interfaces.ProgressStore) {
	t.Run("EmptyReadsZero", func(t *testing.T) {
		store := newStore(t)
		gt.V(t, store.Read(context.Background())).Equal(0)
	})
	t.Run("WriteThenRead", func(t *testing.T) {
		TestWriteThenRead(t, newStore(t))
	})
	t.Run("Reset", func(t *testing.T) {
		TestReset(t, newStore(t))
	})
	t.Run("RejectNegative", func(t *testing.T) {
		TestRejectNegative(t, newStore(t))
	})
}

// TestWriteThenRead checks that the last write wins
func TestWriteThenRead(t *testing.T, store interfaces.ProgressStore) {
	ctx := context.Background()

	for _, n := range []int{1, 2, 3, 10, 250} {
		gt.NoError(t, store.Write(ctx, n))
		gt.V(t, store.Read(ctx)).Equal(n)
	}

	// rewriting the same value is allowed
	gt.NoError(t, store.Write(ctx, 250))
	gt.V(t, store.Read(ctx)).Equal(250)
}

// TestReset checks that reset is observable immediately and idempotent
func TestReset(t *testing.T, store interfaces.ProgressStore) {
	ctx := context.Background()

	gt.NoError(t, store.Write(ctx, 7))
	gt.NoError(t, store.Reset(ctx))
	gt.V(t, store.Read(ctx)).Equal(0)

	gt.NoError(t, store.Reset(ctx))
	gt.V(t, store.Read(ctx)).Equal(0)
}

// TestRejectNegative checks that a negative checkpoint is refused and the old value kept
func TestRejectNegative(t *testing.T, store interfaces.ProgressStore) {
	ctx := context.Background()

	gt.NoError(t, store.Write(ctx, 4))
	err := store.Write(ctx, -1)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	gt.V(t, store.Read(ctx)).Equal(4)
}
