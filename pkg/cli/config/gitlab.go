package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/infra/gitlab"
	"github.com/urfave/cli/v3"
)

type GitLab struct {
	url       string
	token     types.GitLabToken `masq:"secret"`
	pageSize  int64
	rateLimit float64
	burst     int64
}

func (x *GitLab) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitlab-url",
			Usage:       "Base URL of the GitLab instance",
			Category:    "GitLab",
			Destination: &x.url,
			Sources:     cli.EnvVars("LEAKSCAN_GITLAB_URL"),
		},
		&cli.StringFlag{
			Name:        "gitlab-token",
			Usage:       "GitLab access token with read_api and read_repository scopes",
			Category:    "GitLab",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("LEAKSCAN_GITLAB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "gitlab-page-size",
			Usage:       "Projects per API page (max 100)",
			Category:    "GitLab",
			Value:       gitlab.MaxPageSize,
			Destination: &x.pageSize,
			Sources:     cli.EnvVars("LEAKSCAN_GITLAB_PAGE_SIZE"),
		},
		&cli.FloatFlag{
			Name:        "rate-limit",
			Usage:       "Max GitLab API requests per second, 0 for unlimited",
			Category:    "GitLab",
			Value:       10,
			Destination: &x.rateLimit,
			Sources:     cli.EnvVars("LEAKSCAN_RATE_LIMIT"),
		},
		&cli.Int64Flag{
			Name:        "rate-burst",
			Usage:       "Burst size of the GitLab API rate limit",
			Category:    "GitLab",
			Value:       5,
			Destination: &x.burst,
			Sources:     cli.EnvVars("LEAKSCAN_RATE_BURST"),
		},
	}
}

// Validate fails when the credential or the instance URL is missing.
func (x *GitLab) Validate() error {
	if x.url == "" {
		return goerr.Wrap(types.ErrInvalidOption, "GitLab URL is required (--gitlab-url or LEAKSCAN_GITLAB_URL)")
	}
	if x.token == "" {
		return goerr.Wrap(types.ErrInvalidOption, "GitLab token is required (--gitlab-token or LEAKSCAN_GITLAB_TOKEN)")
	}
	return nil
}

func (x *GitLab) Token() types.GitLabToken {
	return x.token
}

func (x *GitLab) NewClient() (*gitlab.Client, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	return gitlab.New(x.url, x.token,
		gitlab.WithRemotePageSize(int(x.pageSize)),
		gitlab.WithRateLimit(x.rateLimit, int(x.burst)),
	)
}

func (x GitLab) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.url),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("PageSize", x.pageSize),
		slog.Float64("RateLimit", x.rateLimit),
		slog.Int64("Burst", x.burst),
	)
}
