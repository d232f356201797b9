package model

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrStepMissingContent is returned when a step carries neither a tool
// descriptor nor an observation.
var ErrStepMissingContent = errors.New("step has neither tool nor observation")

// ObservationKind discriminates the observation variants a step may carry.
type ObservationKind string

const (
	// ObservationKindText is free-form text returned by a tool.
	ObservationKindText ObservationKind = "text"
	// ObservationKindDocuments is one or more structured document chunks.
	ObservationKindDocuments ObservationKind = "documents"
)

// ChunkMetadata is the optional provenance attached to a document chunk.
// Absent fields stay at their zero values; indices use pointers so a genuine
// zero index is distinguishable from absence.
type ChunkMetadata struct {
	FileName     string `json:"file_name,omitempty"`
	PageIndex    *int   `json:"page_index,omitempty"`
	ChunkIndex   *int   `json:"chunk_index,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
	Section      string `json:"section,omitempty"`
}

// DocumentChunk is one retrieved document fragment referenced by a step.
type DocumentChunk struct {
	PageContent string        `json:"page_content"`
	Metadata    ChunkMetadata `json:"metadata"`
}

// Observation is the tagged variant for what a tool invocation returned:
// plain text, or a sequence of structured document chunks. For the documents
// kind, Text keeps the original encoding for display fallback.
type Observation struct {
	Kind   ObservationKind `json:"kind"`
	Text   string          `json:"text,omitempty"`
	Chunks []DocumentChunk `json:"chunks,omitempty"`
}

// Step is one tool invocation performed during an agent run.
type Step struct {
	Tool        string         `json:"tool,omitempty"`
	ToolInput   map[string]any `json:"tool_input,omitempty"`
	Observation Observation    `json:"observation"`
}

// Payload is the normalized execution document of a report record.
type Payload struct {
	Output string `json:"output"`
	Steps  []Step `json:"steps"`
}

// rawStep matches both the canonical step shape ({tool, tool_input, observation})
// and the legacy agent-log shape ({action: {tool, toolInput}, observation}).
type rawStep struct {
	Tool      string          `json:"tool"`
	ToolInput map[string]any  `json:"tool_input"`
	Action    *rawStepAction  `json:"action"`
	Obs       json.RawMessage `json:"observation"`
}

type rawStepAction struct {
	Tool      string         `json:"tool"`
	ToolInput map[string]any `json:"toolInput"`
}

type rawPayload struct {
	Output   string            `json:"output"`
	Steps    []json.RawMessage `json:"steps"`
	MidSteps []json.RawMessage `json:"mid_steps"`
}

// NormalizePayload validates and normalizes a raw execution payload.
// Output is passed through verbatim; steps are parsed defensively, with
// absent optional fields defaulting to empty. It fails only on unparseable
// JSON or on a step with neither tool nor observation.
func NormalizePayload(raw json.RawMessage) (Payload, error) {
	var rp rawPayload
	if err := json.Unmarshal(raw, &rp); err != nil {
		return Payload{}, err
	}

	rawSteps := rp.Steps
	if rawSteps == nil {
		rawSteps = rp.MidSteps
	}

	steps := make([]Step, 0, len(rawSteps))
	for _, rs := range rawSteps {
		step, err := normalizeStep(rs)
		if err != nil {
			return Payload{}, err
		}
		steps = append(steps, step)
	}

	return Payload{
		Output: rp.Output,
		Steps:  steps,
	}, nil
}

func normalizeStep(raw json.RawMessage) (Step, error) {
	var rs rawStep
	if err := json.Unmarshal(raw, &rs); err != nil {
		return Step{}, err
	}

	step := Step{
		Tool:      rs.Tool,
		ToolInput: rs.ToolInput,
	}
	if rs.Action != nil {
		if step.Tool == "" {
			step.Tool = rs.Action.Tool
		}
		if step.ToolInput == nil {
			step.ToolInput = rs.Action.ToolInput
		}
	}

	hasObservation := len(rs.Obs) > 0 && string(rs.Obs) != "null"
	if step.Tool == "" && !hasObservation {
		return Step{}, ErrStepMissingContent
	}

	if hasObservation {
		step.Observation = ParseObservation(rs.Obs)
	}

	return step, nil
}

// ParseObservation decodes one observation into its tagged variant.
// It never fails: anything that does not decode as a structured document
// is kept as plain text.
func ParseObservation(raw json.RawMessage) Observation {
	// A JSON string may be plain text or an embedded JSON document.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if embedded, ok := parseEmbedded(s); ok {
			return embedded
		}
		return Observation{Kind: ObservationKindText, Text: s}
	}

	if obs, ok := parseStructured(raw); ok {
		return obs
	}

	// Unknown structure: keep raw JSON as display text.
	return Observation{Kind: ObservationKindText, Text: string(raw)}
}

// parseEmbedded attempts to decode a string as an embedded JSON document.
func parseEmbedded(s string) (Observation, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return Observation{}, false
	}
	obs, ok := parseStructured(json.RawMessage(trimmed))
	if !ok {
		return Observation{}, false
	}
	obs.Text = s
	return obs, true
}

// parseStructured decodes arrays of document items, single {type, text}
// documents, and bare {pageContent, metadata} chunks.
func parseStructured(raw json.RawMessage) (Observation, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		chunks := make([]DocumentChunk, 0, len(items))
		for _, item := range items {
			if chunk, ok := parseChunk(item); ok {
				chunks = append(chunks, chunk)
			}
		}
		if len(chunks) == 0 {
			return Observation{}, false
		}
		return Observation{Kind: ObservationKindDocuments, Chunks: chunks}, true
	}

	if chunk, ok := parseChunk(raw); ok {
		return Observation{Kind: ObservationKindDocuments, Chunks: []DocumentChunk{chunk}}, true
	}

	return Observation{}, false
}

// parseChunk decodes one document item. Both the wrapped {type: "document",
// text: "<json>"} form and the bare {pageContent, metadata} form occur in
// agent logs.
func parseChunk(raw json.RawMessage) (DocumentChunk, bool) {
	var wrapped struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Type != "" {
		var inner struct {
			PageContent string        `json:"pageContent"`
			Metadata    ChunkMetadata `json:"metadata"`
		}
		if err := json.Unmarshal([]byte(wrapped.Text), &inner); err == nil && inner.PageContent != "" {
			return DocumentChunk{PageContent: inner.PageContent, Metadata: inner.Metadata}, true
		}
		// Document wrapper whose text is not a chunk: keep the text itself.
		if wrapped.Text != "" {
			return DocumentChunk{PageContent: wrapped.Text}, true
		}
		return DocumentChunk{}, false
	}

	var bare struct {
		PageContent string        `json:"pageContent"`
		Metadata    ChunkMetadata `json:"metadata"`
	}
	if err := json.Unmarshal(raw, &bare); err == nil && bare.PageContent != "" {
		return DocumentChunk{PageContent: bare.PageContent, Metadata: bare.Metadata}, true
	}

	return DocumentChunk{}, false
}
