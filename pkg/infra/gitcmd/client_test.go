package gitcmd_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/infra/gitcmd"
	"github.com/secmon-lab/leakscan/pkg/utils/testutil"
)

func TestClone(t *testing.T) {
	gitPath := testutil.BinaryOrSkip(t, "TEST_GIT_PATH")
	ctx := context.Background()

	src := t.TempDir()
	for _, args := range [][]string{
		{"init", "--quiet", src},
		{"-C", src, "-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "--quiet", "--allow-empty", "-m", "init"},
	} {
		out, err := exec.Command(gitPath, args...).CombinedOutput()
		gt.NoError(t, err)
		t.Log(string(out))
	}

	client := gitcmd.New(gitPath)

	t.Run("clone local repository", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "clone")
		gt.NoError(t, client.Clone(ctx, src, dst))

		_, err := os.Stat(filepath.Join(dst, ".git"))
		gt.NoError(t, err)
	})

	t.Run("clone missing repository fails", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "clone")
		err := client.Clone(ctx, filepath.Join(t.TempDir(), "missing"), dst)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrCloneFailed))
	})
}

func TestCloneWithMissingBinary(t *testing.T) {
	client := gitcmd.New(filepath.Join(t.TempDir(), "no-such-git"))
	err := client.Clone(context.Background(), "https://git.example.com/a.git", t.TempDir())
	gt.True(t, errors.Is(err, types.ErrCloneFailed))
}
