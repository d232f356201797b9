package repository

import "encoding/json"

type UpsertReportOptions struct {
	ExecutionID string
	Status      string
	Category    string
	Query       string
	Groups      []int
	Payload     json.RawMessage
}

type GetReportOptions struct {
	ExecutionID  string
	CallerGroups []int
}

type ListReportsOptions struct {
	CallerGroups []int
	Status       string
	Category     string
	Limit        int64
	Offset       int64
}
