package usecase

import (
	"context"
	"sync"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
	"github.com/secmon-lab/leakscan/pkg/domain/model"
)

// bigQueryRecorder inserts one row per scan result. The table is created or
// its schema merged on the first record.
type bigQueryRecorder struct {
	client interfaces.BigQuery

	mu     sync.Mutex
	schema bigquery.Schema
}

var _ interfaces.OutcomeRecorder = (*bigQueryRecorder)(nil)

func newBigQueryRecorder(client interfaces.BigQuery) *bigQueryRecorder {
	return &bigQueryRecorder{client: client}
}

func (x *bigQueryRecorder) Record(ctx context.Context, result *model.ScanResult) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.schema == nil {
		schema, err := createOrUpdateBigQueryTable(ctx, x.client, result)
		if err != nil {
			return err
		}
		x.schema = schema
	}

	if err := x.client.Insert(ctx, x.schema, result); err != nil {
		return goerr.Wrap(err, "failed to insert scan result to BigQuery", goerr.V("project_id", result.ProjectID))
	}
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, v any) (bigquery.Schema, error) {
	schema, err := bqs.Infer(v)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer scan result schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
