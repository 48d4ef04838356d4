package gitleaks_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/infra/gitleaks"
	"github.com/secmon-lab/leakscan/pkg/utils/testutil"
)

func TestDetectArgs(t *testing.T) {
	t.Run("default arguments", func(t *testing.T) {
		client := gitleaks.New("gitleaks")
		gt.V(t, client.DetectArgsForTest("/src", "/out.json")).Equal([]string{
			"detect",
			"--source", "/src",
			"--report-path", "/out.json",
			"--report-format", "json",
			"--exit-code", "0",
			"--no-banner",
		})
	})

	t.Run("config and redact", func(t *testing.T) {
		client := gitleaks.New("gitleaks", gitleaks.WithConfig("rules.toml"), gitleaks.WithRedact(true))
		args := client.DetectArgsForTest("/src", "/out.json")
		gt.V(t, args[len(args)-3:]).Equal([]string{"--config", "rules.toml", "--redact"})
	})
}

func TestRunWithMissingBinary(t *testing.T) {
	client := gitleaks.New(filepath.Join(t.TempDir(), "no-such-gitleaks"))
	err := client.Scan(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "r.json"))
	gt.True(t, errors.Is(err, types.ErrScanFailed))
}

func TestScan(t *testing.T) {
	path := testutil.BinaryOrSkip(t, "TEST_GITLEAKS_PATH")
	ctx := context.Background()

	src := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(src, "main.go"), []byte("package main\n"), 0o644))
	report := filepath.Join(t.TempDir(), "report.json")

	client := gitleaks.New(path)
	gt.NoError(t, client.Run(ctx, []string{
		"detect", "--no-git",
		"--source", src,
		"--report-path", report,
		"--report-format", "json",
		"--exit-code", "0",
	}))

	var findings []map[string]any
	body := gt.R1(os.ReadFile(report)).NoError(t)
	gt.NoError(t, json.Unmarshal(body, &findings))
	gt.V(t, len(findings)).Equal(0)
}
