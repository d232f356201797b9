package report

import (
	"context"

	"reportlog-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Ingest reconciles one record: insert on first sight of the execution id,
	// full-field replace afterwards. Safe to retry.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)
	// IngestBatch reconciles each record independently; one malformed record
	// never aborts the rest.
	IngestBatch(ctx context.Context, input IngestBatchInput) (IngestBatchOutput, error)

	// List returns records visible to the caller's groups, most recent first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// Get returns one record by execution id, subject to the same group filter.
	Get(ctx context.Context, sc model.Scope, input GetInput) (model.ReportRecord, error)
	// Flatten renders a record as plain text for downstream evaluation.
	Flatten(ctx context.Context, sc model.Scope, input GetInput) (FlattenOutput, error)
	// ListReferencedFiles returns the distinct source documents cited by a
	// record's steps, with presigned download URLs.
	ListReferencedFiles(ctx context.Context, sc model.Scope, input GetInput) (ListFilesOutput, error)
}
