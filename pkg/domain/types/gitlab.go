package types

import (
	"log/slog"
	"strconv"
)

type (
	ProjectID   int64
	GitLabToken string
	BranchName  string
)

func (x ProjectID) String() string {
	return strconv.FormatInt(int64(x), 10)
}

func (x GitLabToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitLabToken) String() string {
	return "***********"
}

// Raw returns the token value to be sent to GitLab. Do not log it.
func (x GitLabToken) Raw() string {
	return string(x)
}
