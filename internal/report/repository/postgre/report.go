package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report/repository"
)

// Upsert - Insert a record keyed by execution_id, full-field replace on conflict.
// The surrogate id is assigned only on first insert; logged_at is refreshed on
// every write. Atomicity for concurrent writers on the same execution_id is
// delegated to Postgres ON CONFLICT.
func (r *implRepository) Upsert(ctx context.Context, opts repository.UpsertReportOptions) (model.ReportRecord, error) {
	id := uuid.New().String()

	groupsJSON, err := json.Marshal(normalizeGroups(opts.Groups))
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Upsert: Failed to encode groups: %v", err)
		return model.ReportRecord{}, repository.ErrReportUpsertFailed
	}

	query := `
		INSERT INTO reportlog.report_model_logs
			(id, execution_id, status, category, query, report_groups, payload, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (execution_id) DO UPDATE SET
			status        = EXCLUDED.status,
			category      = EXCLUDED.category,
			query         = EXCLUDED.query,
			report_groups = EXCLUDED.report_groups,
			payload       = EXCLUDED.payload,
			logged_at     = now()
		RETURNING id, execution_id, status, category, query, report_groups, payload, logged_at
	`

	row := r.db.QueryRowContext(ctx, query,
		id, opts.ExecutionID, opts.Status, opts.Category, opts.Query,
		groupsJSON, emptyObjectJSON(opts.Payload),
	)

	rec, err := scanReportRecord(row)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Upsert: Failed to upsert report: %v", err)
		return model.ReportRecord{}, repository.ErrReportUpsertFailed
	}

	return rec, nil
}

// GetByExecutionID - Get one record by execution_id, visible to callerGroups only.
func (r *implRepository) GetByExecutionID(ctx context.Context, opts repository.GetReportOptions) (model.ReportRecord, error) {
	if len(opts.CallerGroups) == 0 {
		return model.ReportRecord{}, repository.ErrReportNotFound
	}

	query := `
		SELECT id, execution_id, status, category, query, report_groups, payload, logged_at
		FROM reportlog.report_model_logs
		WHERE execution_id = $1
		  AND EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(report_groups) AS g
			WHERE g::int = ANY($2)
		  )
	`

	row := r.db.QueryRowContext(ctx, query, opts.ExecutionID, pq.Array(opts.CallerGroups))

	rec, err := scanReportRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ReportRecord{}, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetByExecutionID: Failed to get report: %v", err)
		return model.ReportRecord{}, err
	}

	return rec, nil
}

// List - List records whose groups intersect callerGroups, most recent first.
func (r *implRepository) List(ctx context.Context, opts repository.ListReportsOptions) ([]model.ReportRecord, error) {
	if len(opts.CallerGroups) == 0 {
		return []model.ReportRecord{}, nil
	}

	query, args := r.buildListReportsQuery(opts, false)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.List: Failed to list reports: %v", err)
		return nil, repository.ErrReportListFailed
	}
	defer rows.Close()

	records := make([]model.ReportRecord, 0)
	for rows.Next() {
		rec, err := scanReportRecord(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.List: Failed to scan report: %v", err)
			return nil, repository.ErrReportListFailed
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Count - Count records matching the same filter as List.
func (r *implRepository) Count(ctx context.Context, opts repository.ListReportsOptions) (int64, error) {
	if len(opts.CallerGroups) == 0 {
		return 0, nil
	}

	query, args := r.buildListReportsQuery(opts, true)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Count: Failed to count reports: %v", err)
		return 0, repository.ErrReportListFailed
	}

	return total, nil
}
