package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := goerr.Wrap(errors.New("busy"), "failed to remove clone directory",
			goerr.V("project_id", 42),
			goerr.V("dir", "/tmp/leakscan/repo_42"),
		)

		// Should not panic without Sentry
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", nil)
	})
}

func TestValues(t *testing.T) {
	t.Run("goerr values", func(t *testing.T) {
		err := goerr.Wrap(errors.New("busy"), "cleanup failed",
			goerr.V("project_id", 42),
			goerr.V("dir", "/tmp/x"),
		)
		values := errutil.Values(err)
		gt.V(t, values["project_id"]).Equal(42)
		gt.V(t, values["dir"]).Equal("/tmp/x")
	})

	t.Run("plain error has no values", func(t *testing.T) {
		gt.V(t, len(errutil.Values(errors.New("plain")))).Equal(0)
	})
}
