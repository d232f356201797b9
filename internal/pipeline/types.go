package pipeline

import (
	"encoding/json"
	"errors"
)

var (
	ErrInputPathRequired = errors.New("input path is required")
	ErrMalformedInput    = errors.New("input is not a JSON array of records")
)

// RawRecord is one row of the input file, as produced by an agent run.
// It mirrors the wire shape posted by the execution producer.
type RawRecord struct {
	ExecutionID string          `json:"execution_id"`
	Status      string          `json:"status"`
	Category    string          `json:"category"`
	Query       string          `json:"query"`
	Groups      []int           `json:"groups"`
	Payload     json.RawMessage `json:"payload"`
}

// Outcome is the per-record result of the upsert stage.
type Outcome struct {
	ExecutionID string
	RecordID    string
	Err         error
}

// Result is the aggregate of one pipeline run.
type Result struct {
	Total    int
	Imported int
	Failed   int
	Outcomes []Outcome
}
