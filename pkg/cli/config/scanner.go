package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/infra/gitcmd"
	"github.com/secmon-lab/leakscan/pkg/infra/gitleaks"
	"github.com/secmon-lab/leakscan/pkg/infra/gogit"
	"github.com/urfave/cli/v3"
)

const (
	CloneBackendGit   = "git"
	CloneBackendGoGit = "go-git"
)

type Scanner struct {
	gitleaksPath   string
	gitleaksConfig string
	redact         bool
	cloneBackend   string
	gitPath        string
}

func (x *Scanner) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitleaks-path",
			Usage:       "Path to gitleaks binary",
			Category:    "Scanner",
			Value:       "gitleaks",
			Destination: &x.gitleaksPath,
			Sources:     cli.EnvVars("LEAKSCAN_GITLEAKS_PATH"),
		},
		&cli.StringFlag{
			Name:        "gitleaks-config",
			Usage:       "Path to a custom gitleaks configuration",
			Category:    "Scanner",
			Destination: &x.gitleaksConfig,
			Sources:     cli.EnvVars("LEAKSCAN_GITLEAKS_CONFIG"),
		},
		&cli.BoolFlag{
			Name:        "redact",
			Usage:       "Redact secrets in gitleaks reports",
			Category:    "Scanner",
			Destination: &x.redact,
			Sources:     cli.EnvVars("LEAKSCAN_REDACT"),
		},
		&cli.StringFlag{
			Name:        "clone-backend",
			Usage:       "Clone implementation [git|go-git]",
			Category:    "Scanner",
			Value:       CloneBackendGit,
			Destination: &x.cloneBackend,
			Sources:     cli.EnvVars("LEAKSCAN_CLONE_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "git-path",
			Usage:       "Path to git binary, used by the git clone backend",
			Category:    "Scanner",
			Value:       "git",
			Destination: &x.gitPath,
			Sources:     cli.EnvVars("LEAKSCAN_GIT_PATH"),
		},
	}
}

func (x *Scanner) NewCloner() (interfaces.Cloner, error) {
	switch x.cloneBackend {
	case CloneBackendGit, "":
		return gitcmd.New(x.gitPath), nil
	case CloneBackendGoGit:
		return gogit.New(), nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown clone backend", goerr.V("backend", x.cloneBackend))
	}
}

func (x *Scanner) NewScanner() interfaces.Scanner {
	return gitleaks.New(x.gitleaksPath,
		gitleaks.WithConfig(x.gitleaksConfig),
		gitleaks.WithRedact(x.redact),
	)
}

func (x Scanner) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("GitleaksPath", x.gitleaksPath),
		slog.String("GitleaksConfig", x.gitleaksConfig),
		slog.Bool("Redact", x.redact),
		slog.String("CloneBackend", x.cloneBackend),
		slog.String("GitPath", x.gitPath),
	)
}
