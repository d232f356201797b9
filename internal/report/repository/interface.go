package repository

import (
	"context"

	"reportlog-srv/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	// Upsert inserts a record keyed by execution id, replacing every mutable
	// field on conflict. The surrogate id survives updates; logged_at is
	// refreshed on every write.
	Upsert(ctx context.Context, opts UpsertReportOptions) (model.ReportRecord, error)
	// GetByExecutionID returns the record visible to callerGroups, or
	// ErrReportNotFound when absent or not visible.
	GetByExecutionID(ctx context.Context, opts GetReportOptions) (model.ReportRecord, error)
	// List returns records whose groups intersect callerGroups, ordered by
	// logged_at DESC, execution_id DESC.
	List(ctx context.Context, opts ListReportsOptions) ([]model.ReportRecord, error)
	// Count returns the total number of records matching the same filter.
	Count(ctx context.Context, opts ListReportsOptions) (int64, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetList returns a cached listing page, with found=false on miss.
	GetList(ctx context.Context, opts ListReportsOptions) ([]model.ReportRecord, bool)
	// SetList caches a listing page for a short TTL.
	SetList(ctx context.Context, opts ListReportsOptions, records []model.ReportRecord)
	// Invalidate drops all cached listings after a write.
	Invalidate(ctx context.Context)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
}
