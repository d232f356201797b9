package repository

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrReportUpsertFailed = errors.New("failed to upsert report")
	ErrReportListFailed   = errors.New("failed to list reports")
)
