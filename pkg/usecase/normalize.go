package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
	"github.com/secmon-lab/leakscan/pkg/utils/safe"
)

const (
	DefaultReportPattern = "*.json"
	DefaultFindingsFile  = "gitleaks_findings.csv"
)

var findingListKeys = []string{"Leaks", "leaks", "findings", "Findings"}

// decodeFindings accepts either a JSON array of findings or an object that
// holds the array under one of findingListKeys.
func decodeFindings(raw []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, goerr.Wrap(err, "invalid JSON")
	}

	switch v := payload.(type) {
	case []any:
		return findingObjects(v), nil
	case map[string]any:
		for _, key := range findingListKeys {
			if list, ok := v[key].([]any); ok {
				return findingObjects(list), nil
			}
		}
		return nil, nil
	default:
		return nil, goerr.New("unexpected report payload", goerr.V("type", fmt.Sprintf("%T", payload)))
	}
}

func findingObjects(list []any) []map[string]any {
	var objs []map[string]any
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			objs = append(objs, obj)
		}
	}
	return objs
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// firstOf returns the first non-empty value among keys.
func firstOf(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringify(obj[key]); s != "" {
			return s
		}
	}
	return ""
}

func toFinding(obj map[string]any) *model.Finding {
	entropy := obj["entropy"]
	if v, ok := obj["Entropy"]; ok {
		entropy = v
	}

	return &model.Finding{
		File:    firstOf(obj, "File", "file"),
		RuleID:  firstOf(obj, "RuleID", "rule_id", "ruleID"),
		Author:  firstOf(obj, "Author", "author"),
		Date:    firstOf(obj, "Date", "date"),
		Message: firstOf(obj, "Message", "message"),
		Entropy: stringify(entropy),
		Match:   firstOf(obj, "Match", "match"),
	}
}

// NormalizeReports flattens every finding of the reports in dir into one CSV.
// Empty and malformed reports are skipped.
func NormalizeReports(ctx context.Context, dir, pattern, output string) (*model.NormalizeSummary, error) {
	logger := logging.From(ctx)
	if pattern == "" {
		pattern = DefaultReportPattern
	}

	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "reports directory not found", goerr.V("dir", dir))
	}

	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid report pattern", goerr.V("pattern", pattern), goerr.V("cause", err.Error()))
	}
	sort.Strings(paths)

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("output", output))
	}
	out, err := os.Create(filepath.Clean(output))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create output file", goerr.V("output", output))
	}
	defer safe.Close(out)

	summary := &model.NormalizeSummary{OutputPath: output}
	if err := writeFindings(ctx, out, paths, summary); err != nil {
		return nil, err
	}

	logger.Info("normalized reports",
		slog.Int("files", summary.Files),
		slog.Int("skipped", summary.Skipped),
		slog.Int("rows", summary.Rows),
		slog.String("output", output),
	)
	return summary, nil
}

func writeFindings(ctx context.Context, out io.Writer, paths []string, summary *model.NormalizeSummary) error {
	logger := logging.From(ctx)

	// UTF-8 BOM so that spreadsheet tools detect the encoding
	if _, err := io.WriteString(out, "\ufeff"); err != nil {
		return goerr.Wrap(err, "failed to write BOM")
	}
	w := csv.NewWriter(out)
	if err := w.Write(model.FindingColumns); err != nil {
		return goerr.Wrap(err, "failed to write header")
	}

	for _, path := range paths {
		st, err := os.Stat(path)
		if err != nil || !st.Mode().IsRegular() || strings.HasSuffix(path, ".schema.json") {
			continue
		}
		summary.Files++

		raw, err := os.ReadFile(filepath.Clean(path))
		if err != nil || len(bytes.TrimSpace(raw)) == 0 {
			summary.Skipped++
			continue
		}

		findings, err := decodeFindings(raw)
		if err != nil {
			summary.Skipped++
			logger.Debug("skip malformed report", slog.String("path", path), slog.Any("error", err))
			continue
		}

		for _, obj := range findings {
			if err := w.Write(toFinding(obj).Row()); err != nil {
				return goerr.Wrap(err, "failed to write finding", goerr.V("report", path))
			}
			summary.Rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush findings")
	}
	return nil
}
