package usecase

import (
	"context"
	"fmt"
	"strings"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report"
)

// Flatten renders a record as plain text with [QUERY] / [OUTPUT] / [MID_STEPS]
// sections, one "Step N: tool=… | observation=…" line per step. Downstream
// evaluators consume this form instead of the raw JSON document.
func (uc *implUseCase) Flatten(ctx context.Context, sc model.Scope, input report.GetInput) (report.FlattenOutput, error) {
	rec, err := uc.Get(ctx, sc, input)
	if err != nil {
		return report.FlattenOutput{}, err
	}

	payload, err := model.NormalizePayload(rec.Payload)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Flatten: Failed to normalize payload for %s: %v", rec.ExecutionID, err)
		return report.FlattenOutput{}, report.ErrInvalidPayload
	}

	var sb strings.Builder
	sb.WriteString("[QUERY]\n")
	sb.WriteString(rec.Query)
	sb.WriteString("\n\n[OUTPUT]\n")
	sb.WriteString(payload.Output)
	sb.WriteString("\n\n[MID_STEPS]\n")

	for i, step := range payload.Steps {
		sb.WriteString(fmt.Sprintf("Step %d: tool=%s | observation=%s\n",
			i+1, step.Tool, observationText(step.Observation)))
	}

	return report.FlattenOutput{
		ExecutionID: rec.ExecutionID,
		Text:        sb.String(),
	}, nil
}

// observationText renders an observation for the flattened view. Document
// observations keep their original text when available, otherwise the chunk
// contents are joined.
func observationText(obs model.Observation) string {
	if obs.Kind != model.ObservationKindDocuments {
		return obs.Text
	}
	if obs.Text != "" {
		return obs.Text
	}

	parts := make([]string, 0, len(obs.Chunks))
	for _, chunk := range obs.Chunks {
		parts = append(parts, chunk.PageContent)
	}
	return strings.Join(parts, " | ")
}
