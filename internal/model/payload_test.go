package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNormalizePayload(t *testing.T) {
	t.Run("canonical shape", func(t *testing.T) {
		raw := json.RawMessage(`{
			"output": "final answer",
			"steps": [
				{"tool": "search", "tool_input": {"q": "acme quarterly earnings"}, "observation": "plain text result"}
			]
		}`)

		p, err := NormalizePayload(raw)
		if err != nil {
			t.Fatalf("NormalizePayload failed: %v", err)
		}
		if p.Output != "final answer" {
			t.Errorf("Output mismatch: got %q", p.Output)
		}
		if len(p.Steps) != 1 {
			t.Fatalf("Steps length mismatch: got %d, want 1", len(p.Steps))
		}
		if p.Steps[0].Tool != "search" {
			t.Errorf("Tool mismatch: got %q", p.Steps[0].Tool)
		}
		if p.Steps[0].Observation.Kind != ObservationKindText {
			t.Errorf("Kind mismatch: got %q, want text", p.Steps[0].Observation.Kind)
		}
		if p.Steps[0].Observation.Text != "plain text result" {
			t.Errorf("Text mismatch: got %q", p.Steps[0].Observation.Text)
		}
	})

	t.Run("mid_steps fallback", func(t *testing.T) {
		raw := json.RawMessage(`{
			"output": "done",
			"mid_steps": [
				{"tool": "lookup", "observation": "found it"}
			]
		}`)

		p, err := NormalizePayload(raw)
		if err != nil {
			t.Fatalf("NormalizePayload failed: %v", err)
		}
		if len(p.Steps) != 1 {
			t.Fatalf("Steps length mismatch: got %d, want 1", len(p.Steps))
		}
		if p.Steps[0].Tool != "lookup" {
			t.Errorf("Tool mismatch: got %q", p.Steps[0].Tool)
		}
	})

	t.Run("legacy action shape", func(t *testing.T) {
		raw := json.RawMessage(`{
			"output": "ok",
			"steps": [
				{"action": {"tool": "retriever", "toolInput": {"query": "guidance"}}, "observation": "text"}
			]
		}`)

		p, err := NormalizePayload(raw)
		if err != nil {
			t.Fatalf("NormalizePayload failed: %v", err)
		}
		if p.Steps[0].Tool != "retriever" {
			t.Errorf("Tool mismatch: got %q, want retriever", p.Steps[0].Tool)
		}
		if p.Steps[0].ToolInput["query"] != "guidance" {
			t.Errorf("ToolInput mismatch: got %v", p.Steps[0].ToolInput)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		p, err := NormalizePayload(json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("NormalizePayload failed: %v", err)
		}
		if p.Output != "" {
			t.Errorf("Output should be empty, got %q", p.Output)
		}
		if len(p.Steps) != 0 {
			t.Errorf("Steps should be empty, got %d", len(p.Steps))
		}
	})

	t.Run("step with neither tool nor observation", func(t *testing.T) {
		raw := json.RawMessage(`{"output": "x", "steps": [{"tool_input": {"a": 1}}]}`)

		_, err := NormalizePayload(raw)
		if !errors.Is(err, ErrStepMissingContent) {
			t.Errorf("Error mismatch: got %v, want ErrStepMissingContent", err)
		}
	})

	t.Run("unparseable json", func(t *testing.T) {
		_, err := NormalizePayload(json.RawMessage(`{not json`))
		if err == nil {
			t.Error("Expected error for unparseable payload")
		}
	})

	t.Run("null observation treated as absent", func(t *testing.T) {
		raw := json.RawMessage(`{"output": "x", "steps": [{"tool": "t", "observation": null}]}`)

		p, err := NormalizePayload(raw)
		if err != nil {
			t.Fatalf("NormalizePayload failed: %v", err)
		}
		if p.Steps[0].Observation.Kind != "" {
			t.Errorf("Observation should be zero, got kind %q", p.Steps[0].Observation.Kind)
		}
	})
}

func TestParseObservation(t *testing.T) {
	t.Run("plain string", func(t *testing.T) {
		obs := ParseObservation(json.RawMessage(`"just some text"`))
		if obs.Kind != ObservationKindText {
			t.Errorf("Kind mismatch: got %q, want text", obs.Kind)
		}
		if obs.Text != "just some text" {
			t.Errorf("Text mismatch: got %q", obs.Text)
		}
	})

	t.Run("array of document wrappers", func(t *testing.T) {
		obs := ParseObservation(json.RawMessage(`[
			{"type": "document", "text": "{\"pageContent\": \"chunk one\", \"metadata\": {\"file_name\": \"annual-report.pdf\", \"chunk_index\": 0}}"},
			{"type": "document", "text": "{\"pageContent\": \"chunk two\", \"metadata\": {\"file_name\": \"annual-report.pdf\", \"chunk_index\": 1}}"}
		]`))

		if obs.Kind != ObservationKindDocuments {
			t.Fatalf("Kind mismatch: got %q, want documents", obs.Kind)
		}
		if len(obs.Chunks) != 2 {
			t.Fatalf("Chunks length mismatch: got %d, want 2", len(obs.Chunks))
		}
		if obs.Chunks[0].PageContent != "chunk one" {
			t.Errorf("PageContent mismatch: got %q", obs.Chunks[0].PageContent)
		}
		if obs.Chunks[0].Metadata.FileName != "annual-report.pdf" {
			t.Errorf("FileName mismatch: got %q", obs.Chunks[0].Metadata.FileName)
		}
		if obs.Chunks[1].Metadata.ChunkIndex == nil || *obs.Chunks[1].Metadata.ChunkIndex != 1 {
			t.Errorf("ChunkIndex mismatch: got %v", obs.Chunks[1].Metadata.ChunkIndex)
		}
	})

	t.Run("embedded json string", func(t *testing.T) {
		obs := ParseObservation(json.RawMessage(`"[{\"pageContent\": \"embedded chunk\", \"metadata\": {\"file_name\": \"doc.pdf\"}}]"`))

		if obs.Kind != ObservationKindDocuments {
			t.Fatalf("Kind mismatch: got %q, want documents", obs.Kind)
		}
		if len(obs.Chunks) != 1 {
			t.Fatalf("Chunks length mismatch: got %d, want 1", len(obs.Chunks))
		}
		if obs.Chunks[0].PageContent != "embedded chunk" {
			t.Errorf("PageContent mismatch: got %q", obs.Chunks[0].PageContent)
		}
		// Original encoding is kept for display fallback.
		if obs.Text == "" {
			t.Error("Text should keep the original encoding")
		}
	})

	t.Run("bare chunk object", func(t *testing.T) {
		obs := ParseObservation(json.RawMessage(`{"pageContent": "bare", "metadata": {"file_name": "a.pdf"}}`))
		if obs.Kind != ObservationKindDocuments {
			t.Fatalf("Kind mismatch: got %q, want documents", obs.Kind)
		}
		if obs.Chunks[0].PageContent != "bare" {
			t.Errorf("PageContent mismatch: got %q", obs.Chunks[0].PageContent)
		}
	})

	t.Run("unknown structure falls back to text", func(t *testing.T) {
		obs := ParseObservation(json.RawMessage(`{"something": "else"}`))
		if obs.Kind != ObservationKindText {
			t.Errorf("Kind mismatch: got %q, want text", obs.Kind)
		}
		if obs.Text == "" {
			t.Error("Text should keep raw JSON")
		}
	})

	t.Run("string that looks like json but is not", func(t *testing.T) {
		obs := ParseObservation(json.RawMessage(`"{broken json"`))
		if obs.Kind != ObservationKindText {
			t.Errorf("Kind mismatch: got %q, want text", obs.Kind)
		}
		if obs.Text != "{broken json" {
			t.Errorf("Text mismatch: got %q", obs.Text)
		}
	})
}
