package model

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// cloneUser is the user name GitLab expects with a personal access token.
const cloneUser = "oauth2"

var urlCredential = regexp.MustCompile(`(https?://)[^/\s@]+@`)

// AuthenticatedCloneURL embeds token as URL userinfo so that clone does not prompt.
func (x *Project) AuthenticatedCloneURL(token types.GitLabToken) (string, error) {
	if x.HTTPURLToRepo == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "project has no clone URL", goerr.V("project_id", x.ID))
	}

	u, err := url.Parse(x.HTTPURLToRepo)
	if err != nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "invalid clone URL",
			goerr.V("project_id", x.ID),
			goerr.V("cause", err.Error()),
		)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", goerr.Wrap(types.ErrValidationFailed, "clone URL must be http(s)",
			goerr.V("project_id", x.ID),
			goerr.V("url", x.HTTPURLToRepo),
		)
	}

	if token != "" {
		u.User = url.UserPassword(cloneUser, token.Raw())
	}
	return u.String(), nil
}

// DirName is the clone directory name, unique per project.
func (x *Project) DirName() string {
	return fmt.Sprintf("%s_%d", sanitizeName(x.Name), x.ID)
}

// ReportName is the report file name of the project within batchID.
func (x *Project) ReportName(batchID int) string {
	return fmt.Sprintf("batch_%d_%s_%d_report.json", batchID, sanitizeName(x.Name), x.ID)
}

// RedactURLCredentials removes userinfo from every http(s) URL in s.
func RedactURLCredentials(s string) string {
	return urlCredential.ReplaceAllString(s, "${1}***@")
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "project"
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, name)
}
