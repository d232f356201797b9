package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report"
	"reportlog-srv/internal/report/repository"
)

// Ingest reconciles one record: insert on first sight of the execution id,
// full-field replace afterwards. Validation errors are reported to the caller
// and never persisted; storage errors surface as ErrStorageUnavailable and are
// safe to retry.
func (uc *implUseCase) Ingest(ctx context.Context, input report.IngestInput) (report.IngestOutput, error) {
	if err := uc.validateIngestInput(ctx, input); err != nil {
		return report.IngestOutput{}, err
	}

	rec, err := uc.repo.Upsert(ctx, repository.UpsertReportOptions{
		ExecutionID: input.ExecutionID,
		Status:      input.Status,
		Category:    input.Category,
		Query:       input.Query,
		Groups:      input.Groups,
		Payload:     input.Payload,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Ingest: Failed to upsert report %s: %v", input.ExecutionID, err)
		return report.IngestOutput{}, report.ErrStorageUnavailable
	}

	uc.invalidateListCache(ctx)
	uc.publishIngestedEvent(ctx, rec)

	return report.IngestOutput{
		ID:          rec.ID,
		ExecutionID: rec.ExecutionID,
		LoggedAt:    rec.LoggedAt,
	}, nil
}

// IngestBatch reconciles each record independently. Partial success is
// allowed; the aggregate reports a per-record outcome.
func (uc *implUseCase) IngestBatch(ctx context.Context, input report.IngestBatchInput) (report.IngestBatchOutput, error) {
	out := report.IngestBatchOutput{
		Items: make([]report.IngestBatchItem, 0, len(input.Records)),
	}

	for _, rec := range input.Records {
		item := report.IngestBatchItem{ExecutionID: rec.ExecutionID}

		res, err := uc.Ingest(ctx, rec)
		if err != nil {
			item.Err = err
			out.Failed++
		} else {
			item.Record = &res
			out.Imported++
		}

		out.Items = append(out.Items, item)
	}

	return out, nil
}

func (uc *implUseCase) validateIngestInput(ctx context.Context, input report.IngestInput) error {
	if strings.TrimSpace(input.ExecutionID) == "" {
		return report.ErrExecutionIDRequired
	}
	if !model.IsValidReportStatus(input.Status) {
		return report.ErrInvalidStatus
	}
	if _, err := model.NormalizePayload(input.Payload); err != nil {
		uc.l.Warnf(ctx, "report.usecase.validateIngestInput: Rejected payload for %s: %v", input.ExecutionID, err)
		return report.ErrInvalidPayload
	}
	return nil
}

func (uc *implUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	uc.cache.Invalidate(ctx)
}

// ingestedEvent is the report.ingested message published after each write.
type ingestedEvent struct {
	ID          string `json:"id"`
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	LoggedAt    string `json:"logged_at"`
}

// publishIngestedEvent notifies downstream consumers of a reconciled record.
// Best-effort: a broker failure never fails the write.
func (uc *implUseCase) publishIngestedEvent(ctx context.Context, rec model.ReportRecord) {
	if uc.producer == nil {
		return
	}

	event := ingestedEvent{
		ID:          rec.ID,
		ExecutionID: rec.ExecutionID,
		Status:      rec.Status,
		Category:    rec.Category,
		LoggedAt:    rec.LoggedAt.UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.publishIngestedEvent: Failed to marshal event: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(rec.ExecutionID), data); err != nil {
		uc.l.Errorf(ctx, "report.usecase.publishIngestedEvent: Failed to publish event for %s: %v", rec.ExecutionID, err)
	}
}

// mapRepositoryError converts storage-layer sentinels to domain sentinels.
func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrReportNotFound):
		return report.ErrReportNotFound
	default:
		return report.ErrStorageUnavailable
	}
}
