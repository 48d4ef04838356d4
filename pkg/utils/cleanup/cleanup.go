package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
)

// Policy controls how hard RemoveAll tries before giving up.
type Policy struct {
	Attempts        int
	InitialInterval time.Duration
}

// DefaultPolicy makes 8 attempts, waiting 200ms before the second and doubling after that.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:        8,
		InitialInterval: 200 * time.Millisecond,
	}
}

var removeTree = forceRemoveTree

// RemoveAll removes path and everything below it. Read-only entries are made
// writable right before they are deleted, and the whole removal is retried
// with exponential backoff because freshly cloned trees can be briefly locked
// by other processes. A path that does not exist is not an error.
func RemoveAll(ctx context.Context, path string, policy Policy) error {
	if _, err := os.Lstat(path); os.IsNotExist(err) {
		return nil
	}

	attempts := max(1, policy.Attempts)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.InitialInterval
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = policy.InitialInterval << uint(attempts)
	b.MaxElapsedTime = 0

	var tried int
	op := func() error {
		tried++
		return removeTree(path)
	}
	notify := func(err error, wait time.Duration) {
		logging.From(ctx).Debug("retrying directory removal",
			slog.String("path", path),
			slog.Int("attempt", tried),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	policyWithLimit := backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)
	if err := backoff.RetryNotify(op, policyWithLimit, notify); err != nil {
		return goerr.Wrap(types.ErrCleanupFailed, "failed to remove directory",
			goerr.V("path", path),
			goerr.V("attempts", tried),
			goerr.V("cause", err.Error()),
		)
	}

	return nil
}

func forceRemoveTree(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	switch {
	case info.IsDir():
		// Owner needs write and exec on a directory to unlink its entries
		if err := os.Chmod(path, 0o700); err != nil && !os.IsNotExist(err) {
			return err
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := forceRemoveTree(filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}

	case info.Mode()&os.ModeSymlink == 0:
		if err := os.Chmod(path, 0o600); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
