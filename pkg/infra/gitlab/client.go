package gitlab

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
	"github.com/secmon-lab/leakscan/pkg/utils/safe"
	"golang.org/x/time/rate"
)

const (
	// MaxPageSize is the largest per_page value GitLab accepts.
	MaxPageSize = 100

	pageRequestTimeout   = 10 * time.Second
	commitRequestTimeout = 15 * time.Second
	maxErrorBodySize     = 4096
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the GitLab REST API v4. It never retries: project listing
// failures become empty pages and commit lookup failures are returned.
type Client struct {
	baseURL        *url.URL
	token          types.GitLabToken
	httpClient     HTTPClient
	remotePageSize int
	limiter        *rate.Limiter
}

var _ interfaces.Catalog = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithRemotePageSize sets the per_page value used when assembling batches.
func WithRemotePageSize(n int) Option {
	return func(x *Client) {
		x.remotePageSize = clampPageSize(n)
	}
}

// WithRateLimit paces API requests to rps requests per second. Zero or
// negative rps disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(x *Client) {
		if rps <= 0 {
			x.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		x.limiter = rate.NewLimiter(rate.Limit(rps), max(1, burst))
	}
}

func New(baseURL string, token types.GitLabToken, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitLab URL is empty")
	}
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitLab token is empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GitLab URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitLab URL must be http(s)://host", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:        u,
		token:          token,
		httpClient:     http.DefaultClient,
		remotePageSize: MaxPageSize,
		limiter:        rate.NewLimiter(rate.Inf, 1),
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

type projectResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
	HTTPURLToRepo     string `json:"http_url_to_repo"`
	DefaultBranch     string `json:"default_branch"`
}

func (x *projectResponse) toModel() *model.Project {
	return &model.Project{
		ID:                types.ProjectID(x.ID),
		Name:              x.Name,
		PathWithNamespace: x.PathWithNamespace,
		WebURL:            x.WebURL,
		HTTPURLToRepo:     x.HTTPURLToRepo,
		DefaultBranch:     types.BranchName(x.DefaultBranch),
	}
}

type commitResponse struct {
	CommittedDate string `json:"committed_date"`
	CreatedAt     string `json:"created_at"`
}

// FetchProjectsPage implements interfaces.Catalog.
func (x *Client) FetchProjectsPage(ctx context.Context, pageSize, page int) []*model.Project {
	pageSize = clampPageSize(pageSize)
	page = max(1, page)

	query := url.Values{
		"per_page": {strconv.Itoa(pageSize)},
		"page":     {strconv.Itoa(page)},
		"order_by": {"id"},
		"sort":     {"asc"},
		"simple":   {"false"},
	}

	var resp []*projectResponse
	if err := x.getJSON(ctx, pageRequestTimeout, query, &resp, "projects"); err != nil {
		logging.From(ctx).Warn("failed to fetch project list page",
			slog.Int("page", page),
			slog.Int("per_page", pageSize),
			slog.Any("error", err),
		)
		return nil
	}

	projects := make([]*model.Project, 0, len(resp))
	for _, p := range resp {
		if p == nil {
			continue
		}
		projects = append(projects, p.toModel())
	}
	return projects
}

// FetchProjectsBatch implements interfaces.Catalog. Batch N holds catalog
// positions [(N-1)*batchSize, N*batchSize), so consecutive batches cover the
// catalog without gaps even when batchSize is not a multiple of the remote
// page size. A page shared by two batches is fetched by both.
func (x *Client) FetchProjectsBatch(ctx context.Context, batchSize, batchIndex int) *model.ProjectBatch {
	batchSize = max(1, batchSize)
	batchIndex = max(1, batchIndex)

	offset := (batchIndex - 1) * batchSize
	startPage := offset/x.remotePageSize + 1
	skip := offset % x.remotePageSize

	batch := &model.ProjectBatch{
		FirstPage: startPage,
		LastPage:  startPage - 1,
	}

	for page := startPage; len(batch.Projects) < batchSize; page++ {
		projects := x.FetchProjectsPage(ctx, x.remotePageSize, page)
		batch.LastPage = page
		if len(projects) == 0 {
			break
		}
		full := len(projects) >= x.remotePageSize

		if skip > 0 {
			projects = projects[min(skip, len(projects)):]
			skip = 0
		}
		batch.Projects = append(batch.Projects, projects...)

		// A short page is the last page of the catalog
		if !full {
			break
		}
	}

	if len(batch.Projects) > batchSize {
		batch.Projects = batch.Projects[:batchSize]
	}

	return batch
}

// FetchLastCommitTime implements interfaces.Catalog.
func (x *Client) FetchLastCommitTime(ctx context.Context, projectID types.ProjectID, branch types.BranchName) (*model.CommitInfo, error) {
	info := &model.CommitInfo{ProjectID: projectID}
	if branch == "" {
		return info, nil
	}

	query := url.Values{
		"ref_name": {string(branch)},
		"per_page": {"1"},
	}

	var commits []commitResponse
	if err := x.getJSON(ctx, commitRequestTimeout, query, &commits,
		"projects", projectID.String(), "repository", "commits",
	); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch last commit",
			goerr.V("project_id", projectID),
			goerr.V("branch", branch),
		)
	}
	if len(commits) == 0 {
		return info, nil
	}

	raw := commits[0].CommittedDate
	if raw == "" {
		raw = commits[0].CreatedAt
	}

	ts, err := ParseTimestamp(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse commit timestamp",
			goerr.V("project_id", projectID),
			goerr.V("value", raw),
		)
	}
	info.LastCommitAt = ts

	return info, nil
}

func (x *Client) getJSON(ctx context.Context, timeout time.Duration, query url.Values, out any, path ...string) error {
	if err := x.limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "rate limiter interrupted")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := x.baseURL.JoinPath(append([]string{"api", "v4"}, path...)...)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", endpoint.String()))
	}
	req.Header.Set("PRIVATE-TOKEN", x.token.Raw())
	req.Header.Set("Accept", "application/json")

	logging.From(ctx).Log(ctx, logging.LevelTrace, "sending GitLab API request", slog.String("url", endpoint.String()))

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(types.ErrCatalog, "failed to send request",
			goerr.V("url", endpoint.String()),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return goerr.Wrap(types.ErrCatalog, "unexpected status code",
			goerr.V("url", endpoint.String()),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(types.ErrCatalog, "failed to decode response",
			goerr.V("url", endpoint.String()),
			goerr.V("cause", err.Error()),
		)
	}

	return nil
}

func clampPageSize(n int) int {
	return min(MaxPageSize, max(1, n))
}
