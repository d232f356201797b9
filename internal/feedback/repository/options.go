package repository

import "encoding/json"

type UpsertFeedbackOptions struct {
	Username    string
	ExecutionID string
	Data        json.RawMessage
	Query       string
	Category    string
}

type GetFeedbackOptions struct {
	Username    string
	ExecutionID string
}
