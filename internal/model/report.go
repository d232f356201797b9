package model

import (
	"encoding/json"
	"time"
)

// Report statuses. An execution either produced a report or failed.
const (
	ReportStatusSuccess = "success"
	ReportStatusError   = "error"
)

// ReportRecord is one agent execution's result plus provenance.
// ExecutionID is the external natural key; ID is the surrogate key assigned
// on first insert and never changed by later writes.
type ReportRecord struct {
	ID          string
	ExecutionID string

	Status   string
	Category string
	Query    string

	// Groups are access-control tags. Never nil; empty means visible to no one.
	Groups []int

	// Payload is the raw execution document: {output: string, steps: [...]}.
	Payload json.RawMessage

	// LoggedAt is server-assigned on write and refreshed on every update.
	LoggedAt time.Time
}

// IsValidReportStatus reports whether s is a recognized report status.
func IsValidReportStatus(s string) bool {
	return s == ReportStatusSuccess || s == ReportStatusError
}
