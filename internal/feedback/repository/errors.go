package repository

import "errors"

var (
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrFeedbackUpsertFailed = errors.New("failed to upsert feedback")
	ErrFeedbackListFailed   = errors.New("failed to list feedback")
)
