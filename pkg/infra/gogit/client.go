package gogit

import (
	"context"
	"net/url"

	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// Client clones repositories in process with go-git, for hosts without a git binary.
type Client struct{}

var _ interfaces.Cloner = (*Client)(nil)

func New() *Client {
	return &Client{}
}

// Clone implements interfaces.Cloner. Credentials embedded in repoURL are
// moved to HTTP basic auth.
func (x *Client) Clone(ctx context.Context, repoURL, dst string) error {
	opts := &git.CloneOptions{URL: repoURL}

	if u, err := url.Parse(repoURL); err == nil && u.User != nil && (u.Scheme == "http" || u.Scheme == "https") {
		password, _ := u.User.Password()
		opts.Auth = &githttp.BasicAuth{
			Username: u.User.Username(),
			Password: password,
		}
		u.User = nil
		opts.URL = u.String()
	}

	if _, err := git.PlainCloneContext(ctx, dst, false, opts); err != nil {
		return goerr.Wrap(types.ErrCloneFailed, "go-git clone failed",
			goerr.V("url", model.RedactURLCredentials(repoURL)),
			goerr.V("dst", dst),
			goerr.V("cause", model.RedactURLCredentials(err.Error())),
		)
	}

	return nil
}
