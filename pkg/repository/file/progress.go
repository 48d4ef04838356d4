package file

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/repository"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
)

// Progress is a checkpoint file holding a single non-negative decimal integer.
type Progress struct {
	path string
}

var _ interfaces.ProgressStore = (*Progress)(nil)

func NewProgress(path string) *Progress {
	return &Progress{path: path}
}

func (x *Progress) Path() string {
	return x.path
}

// Read returns the stored checkpoint. A missing, unparseable or negative value reads as 0.
func (x *Progress) Read(ctx context.Context) int {
	raw, err := os.ReadFile(x.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.From(ctx).Warn("failed to read progress file, starting from 0",
				slog.String("path", x.path),
				slog.Any("error", err),
			)
		}
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || n < 0 {
		logging.From(ctx).Warn("invalid progress value, starting from 0",
			slog.String("path", x.path),
			slog.String("value", string(raw)),
		)
		return 0
	}

	return n
}

func (x *Progress) Write(ctx context.Context, n int) error {
	if n < 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "progress must not be negative", goerr.V("n", n), goerr.V("path", x.path))
	}

	err := writeAtomic(x.path, func(w io.Writer) error {
		_, err := io.WriteString(w, strconv.Itoa(n))
		return err
	})
	if err != nil {
		return goerr.Wrap(err, "failed to write progress", goerr.V("n", n), goerr.V("path", x.path))
	}

	return nil
}

func (x *Progress) Reset(ctx context.Context) error {
	return x.Write(ctx, 0)
}
