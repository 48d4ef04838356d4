package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 5 * time.Second

type Sentry struct {
	dsn         string
	environment string
	configured  bool
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("LEAKSCAN_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("LEAKSCAN_SENTRY_ENV"),
		},
	}
}

func (x *Sentry) Configure(ctx context.Context) error {
	if x.dsn == "" {
		logging.From(ctx).Warn("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}
	x.configured = true

	return nil
}

// Flush waits for buffered events. The process exits right after a run, so
// call it before returning from a command.
func (x *Sentry) Flush(ctx context.Context) {
	if !x.configured {
		return
	}
	if !sentry.Flush(sentryFlushTimeout) {
		logging.From(ctx).Warn("timed out flushing sentry events")
	}
}

func (x Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("Enabled", x.dsn != ""),
		slog.Any("Environment", x.environment),
	)
}
