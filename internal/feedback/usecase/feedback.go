package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"reportlog-srv/internal/feedback"
	"reportlog-srv/internal/feedback/repository"
	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report"
)

// Submit upserts the caller's assessment of one execution. The execution must
// be visible to the caller's groups; query and category are copied from the
// report record so feedback rows are self-describing.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input feedback.SubmitInput) (feedback.SubmitOutput, error) {
	if input.ExecutionID == "" {
		return feedback.SubmitOutput{}, feedback.ErrExecutionIDRequired
	}
	if !input.Scores.Valid() {
		return feedback.SubmitOutput{}, feedback.ErrInvalidScores
	}

	rec, err := uc.reportUC.Get(ctx, sc, report.GetInput{ExecutionID: input.ExecutionID})
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			return feedback.SubmitOutput{}, feedback.ErrReportNotVisible
		}
		uc.l.Errorf(ctx, "feedback.usecase.Submit: Failed to resolve report %s: %v", input.ExecutionID, err)
		return feedback.SubmitOutput{}, feedback.ErrStorageUnavailable
	}

	data, err := json.Marshal(input.Scores)
	if err != nil {
		uc.l.Errorf(ctx, "feedback.usecase.Submit: Failed to encode scores: %v", err)
		return feedback.SubmitOutput{}, feedback.ErrInvalidScores
	}

	fb, err := uc.repo.Upsert(ctx, repository.UpsertFeedbackOptions{
		Username:    sc.Username,
		ExecutionID: input.ExecutionID,
		Data:        data,
		Query:       rec.Query,
		Category:    rec.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "feedback.usecase.Submit: Failed to upsert feedback for %s/%s: %v", sc.Username, input.ExecutionID, err)
		return feedback.SubmitOutput{}, feedback.ErrStorageUnavailable
	}

	uc.publishSubmittedEvent(ctx, fb)

	return feedback.SubmitOutput{
		ID:          fb.ID,
		ExecutionID: fb.ExecutionID,
		LoggedAt:    fb.LoggedAt,
	}, nil
}

// Get returns the caller's latest assessment of one execution.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input feedback.GetInput) (feedback.FeedbackOutput, error) {
	if input.ExecutionID == "" {
		return feedback.FeedbackOutput{}, feedback.ErrExecutionIDRequired
	}

	fb, err := uc.repo.GetByUserAndExecution(ctx, repository.GetFeedbackOptions{
		Username:    sc.Username,
		ExecutionID: input.ExecutionID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return feedback.FeedbackOutput{}, feedback.ErrFeedbackNotFound
		}
		uc.l.Errorf(ctx, "feedback.usecase.Get: Failed to get feedback for %s/%s: %v", sc.Username, input.ExecutionID, err)
		return feedback.FeedbackOutput{}, feedback.ErrStorageUnavailable
	}

	var scores feedback.Scores
	if len(fb.Data) > 0 {
		if err := json.Unmarshal(fb.Data, &scores); err != nil {
			uc.l.Errorf(ctx, "feedback.usecase.Get: Failed to decode scores for %s/%s: %v", sc.Username, input.ExecutionID, err)
		}
	}

	return feedback.FeedbackOutput{
		ID:          fb.ID,
		Username:    fb.Username,
		ExecutionID: fb.ExecutionID,
		Scores:      scores,
		Query:       fb.Query,
		Category:    fb.Category,
		LoggedAt:    fb.LoggedAt,
	}, nil
}

// ListExecutionIDs returns the execution ids the caller has reviewed.
func (uc *implUseCase) ListExecutionIDs(ctx context.Context, sc model.Scope) (feedback.ListExecutionIDsOutput, error) {
	ids, err := uc.repo.ListExecutionIDsByUser(ctx, sc.Username)
	if err != nil {
		uc.l.Errorf(ctx, "feedback.usecase.ListExecutionIDs: Failed to list feedback for %s: %v", sc.Username, err)
		return feedback.ListExecutionIDsOutput{}, feedback.ErrStorageUnavailable
	}

	return feedback.ListExecutionIDsOutput{ExecutionIDs: ids}, nil
}

// submittedEvent is the feedback.submitted message published after each write.
type submittedEvent struct {
	ID          string `json:"id"`
	Username    string `json:"user_name"`
	ExecutionID string `json:"execution_id"`
	Category    string `json:"category"`
	LoggedAt    string `json:"logged_at"`
}

// publishSubmittedEvent notifies downstream evaluators of a new assessment.
// Best-effort: a broker failure never fails the write.
func (uc *implUseCase) publishSubmittedEvent(ctx context.Context, fb model.Feedback) {
	if uc.publisher == nil {
		return
	}

	event := submittedEvent{
		ID:          fb.ID,
		Username:    fb.Username,
		ExecutionID: fb.ExecutionID,
		Category:    fb.Category,
		LoggedAt:    fb.LoggedAt.UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "feedback.usecase.publishSubmittedEvent: Failed to marshal event: %v", err)
		return
	}

	if err := uc.publisher.Publish(ctx, submittedRoutingKey, data); err != nil {
		uc.l.Errorf(ctx, "feedback.usecase.publishSubmittedEvent: Failed to publish event for %s/%s: %v", fb.Username, fb.ExecutionID, err)
	}
}
