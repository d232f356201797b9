package usecase

import (
	"context"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report"
	"reportlog-srv/internal/report/repository"
	"reportlog-srv/pkg/paginator"
)

// List returns records whose groups intersect the caller's, most recent
// first. An empty caller group set yields an empty page, never all records.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input report.ListInput) (report.ListOutput, error) {
	input.PagQuery.Adjust()

	if len(sc.Groups) == 0 {
		return report.ListOutput{
			Records: []model.ReportRecord{},
			Paginator: paginator.Paginator{
				Total:       0,
				Count:       0,
				PerPage:     input.PagQuery.Limit,
				CurrentPage: input.PagQuery.Page,
			},
		}, nil
	}

	opts := repository.ListReportsOptions{
		CallerGroups: sc.Groups,
		Status:       input.Status,
		Category:     input.Category,
		Limit:        input.PagQuery.Limit,
		Offset:       input.PagQuery.Offset(),
	}

	records, cached := uc.getCachedList(ctx, opts)
	if !cached {
		var err error
		records, err = uc.repo.List(ctx, opts)
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.List: Failed to list reports: %v", err)
			return report.ListOutput{}, report.ErrStorageUnavailable
		}
		uc.setCachedList(ctx, opts, records)
	}

	total, err := uc.repo.Count(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.List: Failed to count reports: %v", err)
		return report.ListOutput{}, report.ErrStorageUnavailable
	}

	return report.ListOutput{
		Records: records,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(records)),
			PerPage:     input.PagQuery.Limit,
			CurrentPage: input.PagQuery.Page,
		},
	}, nil
}

// Get returns one record by execution id, subject to the group filter. A
// record outside the caller's groups is indistinguishable from an absent one.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input report.GetInput) (model.ReportRecord, error) {
	if input.ExecutionID == "" {
		return model.ReportRecord{}, report.ErrExecutionIDRequired
	}
	if len(sc.Groups) == 0 {
		return model.ReportRecord{}, report.ErrReportNotFound
	}

	rec, err := uc.repo.GetByExecutionID(ctx, repository.GetReportOptions{
		ExecutionID:  input.ExecutionID,
		CallerGroups: sc.Groups,
	})
	if err != nil {
		return model.ReportRecord{}, mapRepositoryError(err)
	}

	return rec, nil
}

func (uc *implUseCase) getCachedList(ctx context.Context, opts repository.ListReportsOptions) ([]model.ReportRecord, bool) {
	if uc.cache == nil {
		return nil, false
	}
	return uc.cache.GetList(ctx, opts)
}

func (uc *implUseCase) setCachedList(ctx context.Context, opts repository.ListReportsOptions, records []model.ReportRecord) {
	if uc.cache == nil {
		return
	}
	uc.cache.SetList(ctx, opts, records)
}
