package report

import (
	"encoding/json"
	"time"

	"reportlog-srv/internal/model"
	"reportlog-srv/pkg/paginator"
)

type IngestInput struct {
	ExecutionID string
	Status      string
	Category    string
	Query       string
	Groups      []int
	Payload     json.RawMessage
}

type IngestBatchInput struct {
	Records []IngestInput
}

type ListInput struct {
	Status   string
	Category string
	PagQuery paginator.PaginateQuery
}

type GetInput struct {
	ExecutionID string
}

type IngestOutput struct {
	ID          string
	ExecutionID string
	LoggedAt    time.Time
}

// IngestBatchItem is the per-record outcome of a batch ingest. Exactly one
// of Record/Err is meaningful.
type IngestBatchItem struct {
	ExecutionID string
	Record      *IngestOutput
	Err         error
}

type IngestBatchOutput struct {
	Imported int
	Failed   int
	Items    []IngestBatchItem
}

type ListOutput struct {
	Records   []model.ReportRecord
	Paginator paginator.Paginator
}

type FlattenOutput struct {
	ExecutionID string
	Text        string
}

// ReferencedFile is one distinct source document cited by a report's steps,
// with a presigned download link when object storage is available.
type ReferencedFile struct {
	FileName    string
	ChunkCount  int
	DownloadURL string
	ExpiresAt   time.Time
}

type ListFilesOutput struct {
	ExecutionID string
	Files       []ReferencedFile
}
