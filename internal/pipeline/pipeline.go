package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"reportlog-srv/internal/report"
	"reportlog-srv/pkg/log"
)

// Pipeline is the file-based batch ingester: an explicit sequential chain
// Read → Parse → Split → Upsert → Aggregate with typed stage boundaries.
// Partial success is allowed; one malformed record never aborts the rest.
type Pipeline struct {
	uc report.UseCase
	l  log.Logger
}

// New creates a new ingest pipeline over the report usecase.
func New(uc report.UseCase, l log.Logger) *Pipeline {
	return &Pipeline{
		uc: uc,
		l:  l,
	}
}

// Run executes the full pipeline for one input file.
func (p *Pipeline) Run(ctx context.Context, path string) (Result, error) {
	data, err := p.Read(path)
	if err != nil {
		return Result{}, err
	}

	records, err := p.Parse(data)
	if err != nil {
		return Result{}, err
	}

	inputs := p.Split(records)
	outcomes := p.Upsert(ctx, inputs)

	return p.Aggregate(outcomes), nil
}

// Read loads the input file.
func (p *Pipeline) Read(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrInputPathRequired
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file %s: %w", path, err)
	}

	return data, nil
}

// Parse decodes the file into raw records. The file must be a JSON array;
// anything else fails the whole run since no rows can be recovered.
func (p *Pipeline) Parse(data []byte) ([]RawRecord, error) {
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, ErrMalformedInput
	}

	return records, nil
}

// Split maps raw rows to usecase inputs, one per record.
func (p *Pipeline) Split(records []RawRecord) []report.IngestInput {
	inputs := make([]report.IngestInput, 0, len(records))
	for _, rec := range records {
		inputs = append(inputs, report.IngestInput{
			ExecutionID: rec.ExecutionID,
			Status:      rec.Status,
			Category:    rec.Category,
			Query:       rec.Query,
			Groups:      rec.Groups,
			Payload:     rec.Payload,
		})
	}

	return inputs
}

// Upsert reconciles each record independently through the report usecase.
func (p *Pipeline) Upsert(ctx context.Context, inputs []report.IngestInput) []Outcome {
	outcomes := make([]Outcome, 0, len(inputs))

	for _, input := range inputs {
		outcome := Outcome{ExecutionID: input.ExecutionID}

		o, err := p.uc.Ingest(ctx, input)
		if err != nil {
			outcome.Err = err
			p.l.Warnf(ctx, "pipeline.Upsert: Record %s rejected: %v", input.ExecutionID, err)
		} else {
			outcome.RecordID = o.ID
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// Aggregate folds per-record outcomes into the run result.
func (p *Pipeline) Aggregate(outcomes []Outcome) Result {
	result := Result{
		Total:    len(outcomes),
		Outcomes: outcomes,
	}

	for _, o := range outcomes {
		if o.Err != nil {
			result.Failed++
		} else {
			result.Imported++
		}
	}

	return result
}
