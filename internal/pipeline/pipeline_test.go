package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"reportlog-srv/internal/report"
	"reportlog-srv/pkg/log"
)

// fakeIngester accepts or rejects records through the real validation
// sentinels so the pipeline's partial-success behavior can be observed.
type fakeIngester struct {
	report.UseCase

	mu       sync.Mutex
	ingested []string
}

func (f *fakeIngester) Ingest(ctx context.Context, input report.IngestInput) (report.IngestOutput, error) {
	if input.ExecutionID == "" {
		return report.IngestOutput{}, report.ErrExecutionIDRequired
	}
	if input.Status != "success" && input.Status != "error" {
		return report.IngestOutput{}, report.ErrInvalidStatus
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ingested = append(f.ingested, input.ExecutionID)

	return report.IngestOutput{
		ID:          "id-" + input.ExecutionID,
		ExecutionID: input.ExecutionID,
		LoggedAt:    time.Now(),
	}, nil
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reports.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Encoding: "console"})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("partial success", func(t *testing.T) {
		uc := &fakeIngester{}
		p := New(uc, testLogger())

		path := writeInput(t, `[
			{"execution_id": "e1", "status": "success", "category": "ACME", "query": "q1", "groups": [1], "payload": {"output": "a", "steps": []}},
			{"execution_id": "e2", "status": "pending", "payload": {"output": "b", "steps": []}},
			{"execution_id": "e3", "status": "error", "groups": [2], "payload": {"output": "c", "steps": []}}
		]`)

		result, err := p.Run(ctx, path)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if result.Total != 3 || result.Imported != 2 || result.Failed != 1 {
			t.Errorf("Counts mismatch: total=%d imported=%d failed=%d, want 3/2/1",
				result.Total, result.Imported, result.Failed)
		}
		if len(uc.ingested) != 2 || uc.ingested[0] != "e1" || uc.ingested[1] != "e3" {
			t.Errorf("Ingested mismatch: %v", uc.ingested)
		}
		if result.Outcomes[1].Err == nil {
			t.Error("Second outcome should carry the rejection")
		}
		if result.Outcomes[0].RecordID != "id-e1" {
			t.Errorf("RecordID mismatch: got %s", result.Outcomes[0].RecordID)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		p := New(&fakeIngester{}, testLogger())

		_, err := p.Run(ctx, "")
		if !errors.Is(err, ErrInputPathRequired) {
			t.Errorf("Error mismatch: got %v, want ErrInputPathRequired", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		p := New(&fakeIngester{}, testLogger())

		_, err := p.Run(ctx, filepath.Join(t.TempDir(), "nope.json"))
		if err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("not a json array", func(t *testing.T) {
		p := New(&fakeIngester{}, testLogger())

		path := writeInput(t, `{"execution_id": "e1"}`)
		_, err := p.Run(ctx, path)
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Error mismatch: got %v, want ErrMalformedInput", err)
		}
	})

	t.Run("empty array", func(t *testing.T) {
		p := New(&fakeIngester{}, testLogger())

		result, err := p.Run(ctx, writeInput(t, `[]`))
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if result.Total != 0 || result.Imported != 0 || result.Failed != 0 {
			t.Errorf("Counts mismatch: %+v", result)
		}
	})
}
