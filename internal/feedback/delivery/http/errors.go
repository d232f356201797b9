package http

import (
	"errors"

	"reportlog-srv/internal/feedback"
	pkgErrors "reportlog-srv/pkg/errors"
)

var (
	errWrongBody           = pkgErrors.NewHTTPError(400, "Wrong body")
	errExecutionIDRequired = pkgErrors.NewHTTPError(400, "Execution ID is required")
	errInvalidScores       = pkgErrors.NewHTTPError(400, "Scores must be between 1 and 5")
	errFeedbackNotFound    = pkgErrors.NewHTTPError(404, "Feedback not found")
	errReportNotVisible    = pkgErrors.NewHTTPError(404, "Report not found")
	errStorageUnavailable  = pkgErrors.NewHTTPError(503, "Feedback storage unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, feedback.ErrExecutionIDRequired):
		return errExecutionIDRequired
	case errors.Is(err, feedback.ErrInvalidScores):
		return errInvalidScores
	case errors.Is(err, feedback.ErrFeedbackNotFound):
		return errFeedbackNotFound
	case errors.Is(err, feedback.ErrReportNotVisible):
		return errReportNotVisible
	case errors.Is(err, feedback.ErrStorageUnavailable):
		return errStorageUnavailable
	default:
		return err
	}
}
