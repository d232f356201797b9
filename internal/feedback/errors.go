package feedback

import "errors"

var (
	ErrExecutionIDRequired = errors.New("execution_id is required")
	ErrInvalidScores       = errors.New("invalid feedback scores")
	ErrFeedbackNotFound    = errors.New("feedback not found")
	ErrReportNotVisible    = errors.New("report not visible to caller")
	ErrStorageUnavailable  = errors.New("feedback storage unavailable")
)
