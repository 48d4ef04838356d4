package cleanup_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/utils/cleanup"
)

var fastPolicy = cleanup.Policy{Attempts: 8, InitialInterval: time.Millisecond}

func TestRemoveAll(t *testing.T) {
	ctx := context.Background()

	t.Run("removes tree with read-only entries", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "repo_1")
		objects := filepath.Join(root, ".git", "objects", "ab")
		gt.NoError(t, os.MkdirAll(objects, 0o755))
		gt.NoError(t, os.WriteFile(filepath.Join(objects, "cdef"), []byte("blob"), 0o444))
		gt.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0o400))
		gt.NoError(t, os.Chmod(objects, 0o555))

		gt.NoError(t, cleanup.RemoveAll(ctx, root, fastPolicy))

		_, err := os.Stat(root)
		gt.True(t, os.IsNotExist(err))
	})

	t.Run("does not follow symlinks", func(t *testing.T) {
		base := t.TempDir()
		outside := filepath.Join(base, "outside.txt")
		gt.NoError(t, os.WriteFile(outside, []byte("keep"), 0o444))

		root := filepath.Join(base, "repo_2")
		gt.NoError(t, os.MkdirAll(root, 0o755))
		gt.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

		gt.NoError(t, cleanup.RemoveAll(ctx, root, fastPolicy))

		info := gt.R1(os.Stat(outside)).NoError(t)
		gt.V(t, info.Mode().Perm()).Equal(os.FileMode(0o444))
	})

	t.Run("missing path is not an error", func(t *testing.T) {
		gt.NoError(t, cleanup.RemoveAll(ctx, filepath.Join(t.TempDir(), "nope"), fastPolicy))
	})

	t.Run("retries transient failures", func(t *testing.T) {
		root := t.TempDir()
		calls := 0
		restore := cleanup.SetRemoveTree(func(path string) error {
			calls++
			if calls < 3 {
				return errors.New("file is locked")
			}
			return os.RemoveAll(path)
		})
		defer restore()

		gt.NoError(t, cleanup.RemoveAll(ctx, root, fastPolicy))
		gt.V(t, calls).Equal(3)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		root := t.TempDir()
		calls := 0
		restore := cleanup.SetRemoveTree(func(path string) error {
			calls++
			return errors.New("access denied")
		})
		defer restore()

		err := cleanup.RemoveAll(ctx, root, fastPolicy)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrCleanupFailed))
		gt.V(t, calls).Equal(8)
	})
}

func TestDefaultPolicy(t *testing.T) {
	p := cleanup.DefaultPolicy()
	gt.V(t, p.Attempts).Equal(8)
	gt.V(t, p.InitialInterval).Equal(200 * time.Millisecond)
}
