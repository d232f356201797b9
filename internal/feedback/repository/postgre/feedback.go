package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"reportlog-srv/internal/feedback/repository"
	"reportlog-srv/internal/model"
)

// Upsert - Insert an assessment keyed by (user_name, execution_id), full
// replace of scores on conflict, logged_at refreshed on every write.
func (r *implRepository) Upsert(ctx context.Context, opts repository.UpsertFeedbackOptions) (model.Feedback, error) {
	id := uuid.New().String()

	query := `
		INSERT INTO reportlog.report_human_feedback
			(id, user_name, execution_id, feedback, query, category, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_name, execution_id) DO UPDATE SET
			feedback  = EXCLUDED.feedback,
			query     = EXCLUDED.query,
			category  = EXCLUDED.category,
			logged_at = now()
		RETURNING id, user_name, execution_id, feedback, query, category, logged_at
	`

	var fb model.Feedback
	err := r.db.QueryRowContext(ctx, query,
		id, opts.Username, opts.ExecutionID, opts.Data, opts.Query, opts.Category,
	).Scan(&fb.ID, &fb.Username, &fb.ExecutionID, &fb.Data, &fb.Query, &fb.Category, &fb.LoggedAt)
	if err != nil {
		r.l.Errorf(ctx, "feedback.repository.postgre.Upsert: Failed to upsert feedback: %v", err)
		return model.Feedback{}, repository.ErrFeedbackUpsertFailed
	}

	return fb, nil
}

// GetByUserAndExecution - Get one user's assessment of one execution.
func (r *implRepository) GetByUserAndExecution(ctx context.Context, opts repository.GetFeedbackOptions) (model.Feedback, error) {
	query := `
		SELECT id, user_name, execution_id, feedback, query, category, logged_at
		FROM reportlog.report_human_feedback
		WHERE user_name = $1 AND execution_id = $2
	`

	var fb model.Feedback
	err := r.db.QueryRowContext(ctx, query, opts.Username, opts.ExecutionID).Scan(
		&fb.ID, &fb.Username, &fb.ExecutionID, &fb.Data, &fb.Query, &fb.Category, &fb.LoggedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Feedback{}, repository.ErrFeedbackNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "feedback.repository.postgre.GetByUserAndExecution: Failed to get feedback: %v", err)
		return model.Feedback{}, err
	}

	return fb, nil
}

// ListExecutionIDsByUser - Execution ids a user has reviewed, most recent first.
func (r *implRepository) ListExecutionIDsByUser(ctx context.Context, username string) ([]string, error) {
	query := `
		SELECT execution_id
		FROM reportlog.report_human_feedback
		WHERE user_name = $1
		ORDER BY logged_at DESC, execution_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		r.l.Errorf(ctx, "feedback.repository.postgre.ListExecutionIDsByUser: Failed to list feedback: %v", err)
		return nil, repository.ErrFeedbackListFailed
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "feedback.repository.postgre.ListExecutionIDsByUser: Failed to scan execution id: %v", err)
			return nil, repository.ErrFeedbackListFailed
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
