package http

import (
	"errors"

	"reportlog-srv/internal/report"
	pkgErrors "reportlog-srv/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(400, "Wrong query")

	errExecutionIDRequired = pkgErrors.NewHTTPError(400, "Execution ID is required")
	errInvalidStatus       = pkgErrors.NewHTTPError(400, "Status must be success or error")
	errInvalidPayload      = pkgErrors.NewHTTPError(400, "Payload is not a valid execution document")
	errReportNotFound      = pkgErrors.NewHTTPError(404, "Report not found")
	errStorageUnavailable  = pkgErrors.NewHTTPError(503, "Report storage unavailable")
	errDownloadURLFailed   = pkgErrors.NewHTTPError(500, "Failed to generate download URL")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrExecutionIDRequired):
		return errExecutionIDRequired
	case errors.Is(err, report.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, report.ErrInvalidPayload):
		return errInvalidPayload
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrStorageUnavailable):
		return errStorageUnavailable
	case errors.Is(err, report.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		return err
	}
}
