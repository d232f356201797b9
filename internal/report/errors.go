package report

import "errors"

var (
	ErrExecutionIDRequired = errors.New("execution_id is required")
	ErrInvalidStatus       = errors.New("invalid report status")
	ErrInvalidPayload      = errors.New("invalid report payload")
	ErrReportNotFound      = errors.New("report not found")
	ErrStorageUnavailable  = errors.New("report storage unavailable")
	ErrDownloadURLFailed   = errors.New("failed to generate download URL")
)
