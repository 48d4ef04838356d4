package bq_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
	"github.com/secmon-lab/leakscan/pkg/domain/types"
	"github.com/secmon-lab/leakscan/pkg/infra/bq"
	"github.com/secmon-lab/leakscan/pkg/utils/testutil"
	"google.golang.org/api/googleapi"
)

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("outcome_test_20060102_150405"))
	client := gt.R1(bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)).NoError(t)

	var schema bigquery.Schema

	t.Run("table does not exist yet", func(t *testing.T) {
		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.True(t, md == nil)
	})

	t.Run("create table from inferred schema", func(t *testing.T) {
		schema = gt.R1(bqs.Infer(&model.ScanResult{})).NoError(t)
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))

		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.True(t, md != nil)
		gt.True(t, bqs.Equal(md.Schema, schema))
	})

	t.Run("insert outcome", func(t *testing.T) {
		now := time.Now().UTC()
		result := &model.ScanResult{
			RunID:       types.NewRunID(),
			BatchID:     1,
			Index:       0,
			ProjectID:   42,
			ProjectName: "demo",
			Outcome:     types.ScanOutcomeClean,
			StartedAt:   now,
			FinishedAt:  now.Add(time.Second),
		}
		gt.NoError(t, client.Insert(ctx, schema, result))
	})
}

func TestNewValidation(t *testing.T) {
	ctx := context.Background()

	_, err := bq.New(ctx, "", "dataset", "table")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = bq.New(ctx, "project", "dataset", "")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestIsNotFound(t *testing.T) {
	t.Run("404 googleapi error", func(t *testing.T) {
		err := &googleapi.Error{Code: http.StatusNotFound}
		gt.True(t, bq.IsNotFound(err))
	})

	t.Run("wrapped 404", func(t *testing.T) {
		err := goerr.Wrap(&googleapi.Error{Code: http.StatusNotFound}, "failed")
		gt.True(t, bq.IsNotFound(err))
	})

	t.Run("other status", func(t *testing.T) {
		err := &googleapi.Error{Code: http.StatusForbidden}
		gt.False(t, bq.IsNotFound(err))
	})

	t.Run("non-API error", func(t *testing.T) {
		gt.False(t, bq.IsNotFound(errors.New("boom")))
	})
}
