package feedback

import (
	"context"

	"reportlog-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit upserts the caller's assessment of one execution, keyed by
	// (user_name, execution_id). Resubmitting replaces the previous scores.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)
	// Get returns the caller's latest assessment of one execution.
	Get(ctx context.Context, sc model.Scope, input GetInput) (FeedbackOutput, error)
	// ListExecutionIDs returns the execution ids the caller has reviewed.
	ListExecutionIDs(ctx context.Context, sc model.Scope) (ListExecutionIDsOutput, error)
}
