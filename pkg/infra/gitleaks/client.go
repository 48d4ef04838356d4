package gitleaks

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
)

// Client runs the gitleaks binary.
type Client struct {
	path       string
	configPath string
	redact     bool
}

var _ interfaces.Scanner = (*Client)(nil)

type Option func(*Client)

// WithConfig passes a custom rule file to gitleaks.
func WithConfig(path string) Option {
	return func(x *Client) {
		x.configPath = path
	}
}

// WithRedact masks secrets in the written report.
func WithRedact(redact bool) Option {
	return func(x *Client) {
		x.redact = redact
	}
}

func New(path string, options ...Option) *Client {
	client := &Client{path: path}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// Scan implements interfaces.Scanner. gitleaks is told to exit 0 even when it
// finds leaks, so a non-zero exit always means the tool itself failed.
func (x *Client) Scan(ctx context.Context, src, reportPath string) error {
	return x.Run(ctx, x.detectArgs(src, reportPath))
}

func (x *Client) detectArgs(src, reportPath string) []string {
	args := []string{
		"detect",
		"--source", src,
		"--report-path", reportPath,
		"--report-format", "json",
		"--exit-code", "0",
		"--no-banner",
	}
	if x.configPath != "" {
		args = append(args, "--config", x.configPath)
	}
	if x.redact {
		args = append(args, "--redact")
	}
	return args
}

// Run executes gitleaks with arbitrary arguments.
func (x *Client) Run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, x.path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(types.ErrScanFailed, "failed to run gitleaks",
			goerr.V("args", args),
			goerr.V("cause", err.Error()),
			goerr.V("stderr", stderr.String()),
		)
	}

	return nil
}
