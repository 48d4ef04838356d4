package gitcmd

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// Client clones repositories with the git binary.
type Client struct {
	path string
}

var _ interfaces.Cloner = (*Client)(nil)

func New(path string) *Client {
	return &Client{path: path}
}

// Clone implements interfaces.Cloner. The full history is fetched because
// secret scanners walk every commit.
func (x *Client) Clone(ctx context.Context, repoURL, dst string) error {
	cmd := exec.CommandContext(ctx, x.path, "clone", "--quiet", repoURL, dst)
	// Never block on a credential prompt
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(types.ErrCloneFailed, "git clone failed",
			goerr.V("url", model.RedactURLCredentials(repoURL)),
			goerr.V("dst", dst),
			goerr.V("cause", err.Error()),
			goerr.V("stderr", model.RedactURLCredentials(stderr.String())),
		)
	}

	return nil
}
