package repository

import (
	"context"

	"reportlog-srv/internal/model"
)

//go:generate mockery --name FeedbackRepository
type FeedbackRepository interface {
	// Upsert inserts an assessment keyed by (user_name, execution_id),
	// replacing scores and refreshing logged_at on conflict.
	Upsert(ctx context.Context, opts UpsertFeedbackOptions) (model.Feedback, error)
	// GetByUserAndExecution returns one user's assessment of one execution,
	// or ErrFeedbackNotFound.
	GetByUserAndExecution(ctx context.Context, opts GetFeedbackOptions) (model.Feedback, error)
	// ListExecutionIDsByUser returns the execution ids a user has reviewed,
	// most recent first.
	ListExecutionIDsByUser(ctx context.Context, username string) ([]string, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	FeedbackRepository
}
