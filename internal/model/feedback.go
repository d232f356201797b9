package model

import (
	"encoding/json"
	"time"
)

// Feedback is one reviewer's assessment of one report execution.
// At most one live record exists per (Username, ExecutionID); resubmitting
// replaces the previous assessment and refreshes LoggedAt.
type Feedback struct {
	ID          string
	Username    string
	ExecutionID string

	// Data holds the score payload (relevance, completeness, reliability,
	// understandability, comments) as submitted.
	Data json.RawMessage

	Query    string
	Category string
	LoggedAt time.Time
}
