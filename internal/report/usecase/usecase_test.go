package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report"
	"reportlog-srv/internal/report/repository"
	"reportlog-srv/pkg/log"
	pkgMinio "reportlog-srv/pkg/minio"
	"reportlog-srv/pkg/paginator"
)

// fakeRepo is an in-memory ReportRepository with upsert-by-execution-id
// semantics: surrogate id survives updates, logged_at advances on every write.
type fakeRepo struct {
	mu      sync.Mutex
	seq     int
	clock   time.Time
	records map[string]model.ReportRecord

	upsertErr error
	listErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		records: make(map[string]model.ReportRecord),
	}
}

func (r *fakeRepo) Upsert(ctx context.Context, opts repository.UpsertReportOptions) (model.ReportRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.upsertErr != nil {
		return model.ReportRecord{}, r.upsertErr
	}

	r.clock = r.clock.Add(time.Second)

	groups := opts.Groups
	if groups == nil {
		groups = []int{}
	}

	rec, ok := r.records[opts.ExecutionID]
	if !ok {
		r.seq++
		rec = model.ReportRecord{
			ID:          fmt.Sprintf("id-%d", r.seq),
			ExecutionID: opts.ExecutionID,
		}
	}

	rec.Status = opts.Status
	rec.Category = opts.Category
	rec.Query = opts.Query
	rec.Groups = groups
	rec.Payload = opts.Payload
	rec.LoggedAt = r.clock

	r.records[opts.ExecutionID] = rec
	return rec, nil
}

func (r *fakeRepo) GetByExecutionID(ctx context.Context, opts repository.GetReportOptions) (model.ReportRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[opts.ExecutionID]
	if !ok || !groupsIntersect(rec.Groups, opts.CallerGroups) {
		return model.ReportRecord{}, repository.ErrReportNotFound
	}
	return rec, nil
}

func (r *fakeRepo) List(ctx context.Context, opts repository.ListReportsOptions) ([]model.ReportRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	matched := r.match(opts)

	start := opts.Offset
	if start > int64(len(matched)) {
		start = int64(len(matched))
	}
	end := start + opts.Limit
	if opts.Limit <= 0 || end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[start:end], nil
}

func (r *fakeRepo) Count(ctx context.Context, opts repository.ListReportsOptions) (int64, error) {
	return int64(len(r.match(opts))), nil
}

func (r *fakeRepo) match(opts repository.ListReportsOptions) []model.ReportRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]model.ReportRecord, 0, len(r.records))
	for _, rec := range r.records {
		if !groupsIntersect(rec.Groups, opts.CallerGroups) {
			continue
		}
		if opts.Status != "" && rec.Status != opts.Status {
			continue
		}
		if opts.Category != "" && rec.Category != opts.Category {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].LoggedAt.Equal(matched[j].LoggedAt) {
			return matched[i].LoggedAt.After(matched[j].LoggedAt)
		}
		return matched[i].ExecutionID > matched[j].ExecutionID
	})
	return matched
}

func groupsIntersect(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// fakeProducer records published messages.
type fakeProducer struct {
	mu       sync.Mutex
	messages [][]byte
}

func (p *fakeProducer) Publish(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, value)
	return nil
}

func (p *fakeProducer) Close() error       { return nil }
func (p *fakeProducer) HealthCheck() error { return nil }

// fakeMinio presigns deterministic URLs.
type fakeMinio struct {
	presignErr error
}

func (m *fakeMinio) HealthCheck(ctx context.Context) error { return nil }
func (m *fakeMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return true, nil
}
func (m *fakeMinio) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	return true, nil
}
func (m *fakeMinio) GetPresignedDownloadURL(ctx context.Context, req *pkgMinio.PresignedURLRequest) (*pkgMinio.PresignedURLResponse, error) {
	if m.presignErr != nil {
		return nil, m.presignErr
	}
	return &pkgMinio.PresignedURLResponse{
		URL:       "https://minio.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC),
	}, nil
}
func (m *fakeMinio) Close() error { return nil }

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Encoding: "console"})
}

func validInput(execID string, groups []int) report.IngestInput {
	return report.IngestInput{
		ExecutionID: execID,
		Status:      model.ReportStatusSuccess,
		Category:    "ACME",
		Query:       "What drove ACME's revenue growth last quarter?",
		Groups:      groups,
		Payload:     json.RawMessage(`{"output": "revenue grew on subscription renewals", "steps": []}`),
	}
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("insert then update keeps surrogate id", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, nil, nil, nil, testLogger(), Config{})

		first, err := uc.Ingest(ctx, validInput("exec-1", []int{1}))
		if err != nil {
			t.Fatalf("First ingest failed: %v", err)
		}

		in := validInput("exec-1", []int{1, 2})
		in.Status = model.ReportStatusError
		second, err := uc.Ingest(ctx, in)
		if err != nil {
			t.Fatalf("Second ingest failed: %v", err)
		}

		if first.ID != second.ID {
			t.Errorf("Surrogate id changed on update: %s vs %s", first.ID, second.ID)
		}
		if !second.LoggedAt.After(first.LoggedAt) {
			t.Errorf("LoggedAt not refreshed: %v vs %v", first.LoggedAt, second.LoggedAt)
		}
		if len(repo.records) != 1 {
			t.Errorf("Record count mismatch: got %d, want 1", len(repo.records))
		}
		if repo.records["exec-1"].Status != model.ReportStatusError {
			t.Errorf("Status not replaced: got %s", repo.records["exec-1"].Status)
		}
	})

	t.Run("validation", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, nil, nil, nil, testLogger(), Config{})

		cases := []struct {
			name    string
			mutate  func(*report.IngestInput)
			wantErr error
		}{
			{"empty execution id", func(in *report.IngestInput) { in.ExecutionID = "  " }, report.ErrExecutionIDRequired},
			{"unknown status", func(in *report.IngestInput) { in.Status = "pending" }, report.ErrInvalidStatus},
			{"malformed payload", func(in *report.IngestInput) { in.Payload = json.RawMessage(`{broken`) }, report.ErrInvalidPayload},
			{"step without content", func(in *report.IngestInput) {
				in.Payload = json.RawMessage(`{"output": "x", "steps": [{"tool_input": {}}]}`)
			}, report.ErrInvalidPayload},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validInput("exec-v", []int{1})
				tc.mutate(&in)

				_, err := uc.Ingest(ctx, in)
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("Error mismatch: got %v, want %v", err, tc.wantErr)
				}
			})
		}

		if len(repo.records) != 0 {
			t.Errorf("Rejected records must not be persisted, got %d", len(repo.records))
		}
	})

	t.Run("storage error", func(t *testing.T) {
		repo := newFakeRepo()
		repo.upsertErr = errors.New("connection refused")
		uc := New(repo, nil, nil, nil, testLogger(), Config{})

		_, err := uc.Ingest(ctx, validInput("exec-1", []int{1}))
		if !errors.Is(err, report.ErrStorageUnavailable) {
			t.Errorf("Error mismatch: got %v, want ErrStorageUnavailable", err)
		}
	})

	t.Run("publishes ingested event", func(t *testing.T) {
		repo := newFakeRepo()
		producer := &fakeProducer{}
		uc := New(repo, nil, producer, nil, testLogger(), Config{})

		if _, err := uc.Ingest(ctx, validInput("exec-1", []int{1})); err != nil {
			t.Fatalf("Ingest failed: %v", err)
		}

		if len(producer.messages) != 1 {
			t.Fatalf("Message count mismatch: got %d, want 1", len(producer.messages))
		}
		var event map[string]any
		if err := json.Unmarshal(producer.messages[0], &event); err != nil {
			t.Fatalf("Event is not JSON: %v", err)
		}
		if event["execution_id"] != "exec-1" {
			t.Errorf("Event execution_id mismatch: got %v", event["execution_id"])
		}
	})
}

func TestIngestBatch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := New(repo, nil, nil, nil, testLogger(), Config{})

	bad := validInput("", []int{1})
	out, err := uc.IngestBatch(ctx, report.IngestBatchInput{
		Records: []report.IngestInput{
			validInput("exec-1", []int{1}),
			bad,
			validInput("exec-2", []int{2}),
		},
	})
	if err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}

	if out.Imported != 2 || out.Failed != 1 {
		t.Errorf("Counts mismatch: imported=%d failed=%d, want 2/1", out.Imported, out.Failed)
	}
	if len(out.Items) != 3 {
		t.Fatalf("Items length mismatch: got %d, want 3", len(out.Items))
	}
	if out.Items[1].Err == nil {
		t.Error("Second item should carry the validation error")
	}
	if out.Items[0].Record == nil || out.Items[2].Record == nil {
		t.Error("Successful items should carry the record")
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := New(repo, nil, nil, nil, testLogger(), Config{})

	if _, err := uc.Ingest(ctx, validInput("exec-1", []int{1, 3})); err != nil {
		t.Fatalf("Seed ingest failed: %v", err)
	}

	t.Run("visible with intersecting groups", func(t *testing.T) {
		rec, err := uc.Get(ctx, model.Scope{Groups: []int{3}}, report.GetInput{ExecutionID: "exec-1"})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if rec.ExecutionID != "exec-1" {
			t.Errorf("ExecutionID mismatch: got %s", rec.ExecutionID)
		}
	})

	t.Run("hidden without intersection", func(t *testing.T) {
		_, err := uc.Get(ctx, model.Scope{Groups: []int{2}}, report.GetInput{ExecutionID: "exec-1"})
		if !errors.Is(err, report.ErrReportNotFound) {
			t.Errorf("Error mismatch: got %v, want ErrReportNotFound", err)
		}
	})

	t.Run("empty caller groups", func(t *testing.T) {
		_, err := uc.Get(ctx, model.Scope{}, report.GetInput{ExecutionID: "exec-1"})
		if !errors.Is(err, report.ErrReportNotFound) {
			t.Errorf("Error mismatch: got %v, want ErrReportNotFound", err)
		}
	})

	t.Run("missing execution id", func(t *testing.T) {
		_, err := uc.Get(ctx, model.Scope{Groups: []int{1}}, report.GetInput{})
		if !errors.Is(err, report.ErrExecutionIDRequired) {
			t.Errorf("Error mismatch: got %v, want ErrExecutionIDRequired", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := New(repo, nil, nil, nil, testLogger(), Config{})

	// r1 before r2 before r3; logged_at advances per write.
	seed := []struct {
		execID string
		groups []int
	}{
		{"r1", []int{1, 2}},
		{"r2", []int{2, 3}},
		{"r3", []int{1, 3}},
	}
	for _, s := range seed {
		if _, err := uc.Ingest(ctx, validInput(s.execID, s.groups)); err != nil {
			t.Fatalf("Seed ingest %s failed: %v", s.execID, err)
		}
	}

	t.Run("group intersection most recent first", func(t *testing.T) {
		out, err := uc.List(ctx, model.Scope{Groups: []int{3}}, report.ListInput{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}

		if len(out.Records) != 2 {
			t.Fatalf("Records length mismatch: got %d, want 2", len(out.Records))
		}
		if out.Records[0].ExecutionID != "r3" || out.Records[1].ExecutionID != "r2" {
			t.Errorf("Order mismatch: got %s, %s, want r3, r2",
				out.Records[0].ExecutionID, out.Records[1].ExecutionID)
		}
		if out.Paginator.Total != 2 {
			t.Errorf("Total mismatch: got %d, want 2", out.Paginator.Total)
		}
	})

	t.Run("empty caller groups yields empty page", func(t *testing.T) {
		out, err := uc.List(ctx, model.Scope{}, report.ListInput{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(out.Records) != 0 || out.Paginator.Total != 0 {
			t.Errorf("Expected empty page, got %d records total %d", len(out.Records), out.Paginator.Total)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		in := validInput("r4", []int{3})
		in.Status = model.ReportStatusError
		if _, err := uc.Ingest(ctx, in); err != nil {
			t.Fatalf("Seed ingest failed: %v", err)
		}

		out, err := uc.List(ctx, model.Scope{Groups: []int{3}}, report.ListInput{Status: model.ReportStatusError})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(out.Records) != 1 || out.Records[0].ExecutionID != "r4" {
			t.Errorf("Status filter mismatch: got %d records", len(out.Records))
		}
	})

	t.Run("pagination", func(t *testing.T) {
		out, err := uc.List(ctx, model.Scope{Groups: []int{1, 2, 3}}, report.ListInput{
			PagQuery: paginator.PaginateQuery{Page: 2, Limit: 2},
		})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if out.Paginator.CurrentPage != 2 {
			t.Errorf("CurrentPage mismatch: got %d", out.Paginator.CurrentPage)
		}
		if out.Paginator.Total != 4 {
			t.Errorf("Total mismatch: got %d, want 4", out.Paginator.Total)
		}
		if len(out.Records) != 2 {
			t.Errorf("Page size mismatch: got %d, want 2", len(out.Records))
		}
	})
}

func TestFlatten(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := New(repo, nil, nil, nil, testLogger(), Config{})

	in := validInput("exec-1", []int{1})
	in.Query = "did ACME raise its guidance?"
	in.Payload = json.RawMessage(`{
		"output": "guidance was raised for the full year",
		"steps": [
			{"tool": "search", "observation": "found page 3"},
			{"tool": "retrieve", "observation": [{"pageContent": "chunk a", "metadata": {"file_name": "f.pdf"}}, {"pageContent": "chunk b", "metadata": {"file_name": "f.pdf"}}]}
		]
	}`)
	if _, err := uc.Ingest(ctx, in); err != nil {
		t.Fatalf("Seed ingest failed: %v", err)
	}

	out, err := uc.Flatten(ctx, model.Scope{Groups: []int{1}}, report.GetInput{ExecutionID: "exec-1"})
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	for _, want := range []string{
		"[QUERY]\ndid ACME raise its guidance?",
		"[OUTPUT]\nguidance was raised for the full year",
		"[MID_STEPS]\n",
		"Step 1: tool=search | observation=found page 3",
		"Step 2: tool=retrieve | observation=chunk a | chunk b",
	} {
		if !strings.Contains(out.Text, want) {
			t.Errorf("Flattened text missing %q:\n%s", want, out.Text)
		}
	}
}

func TestListReferencedFiles(t *testing.T) {
	ctx := context.Background()

	payload := json.RawMessage(`{
		"output": "done",
		"steps": [
			{"tool": "retrieve", "observation": [
				{"pageContent": "a0", "metadata": {"file_name": "a.pdf", "chunk_index": 0}},
				{"pageContent": "a0 again", "metadata": {"file_name": "a.pdf", "chunk_index": 0}},
				{"pageContent": "a1", "metadata": {"file_name": "a.pdf", "chunk_index": 1}},
				{"pageContent": "b0", "metadata": {"file_name": "b.pdf"}},
				{"pageContent": "anonymous", "metadata": {}}
			]}
		]
	}`)

	seed := func(t *testing.T, uc report.UseCase) {
		in := validInput("exec-1", []int{1})
		in.Payload = payload
		if _, err := uc.Ingest(ctx, in); err != nil {
			t.Fatalf("Seed ingest failed: %v", err)
		}
	}

	t.Run("distinct files with presigned urls", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, nil, nil, &fakeMinio{}, testLogger(), Config{DocumentBucket: "docs"})
		seed(t, uc)

		out, err := uc.ListReferencedFiles(ctx, model.Scope{Groups: []int{1}}, report.GetInput{ExecutionID: "exec-1"})
		if err != nil {
			t.Fatalf("ListReferencedFiles failed: %v", err)
		}

		if len(out.Files) != 2 {
			t.Fatalf("Files length mismatch: got %d, want 2", len(out.Files))
		}
		if out.Files[0].FileName != "a.pdf" || out.Files[0].ChunkCount != 2 {
			t.Errorf("a.pdf mismatch: got %+v", out.Files[0])
		}
		if out.Files[1].FileName != "b.pdf" || out.Files[1].ChunkCount != 1 {
			t.Errorf("b.pdf mismatch: got %+v", out.Files[1])
		}
		if out.Files[0].DownloadURL != "https://minio.local/docs/a.pdf" {
			t.Errorf("DownloadURL mismatch: got %s", out.Files[0].DownloadURL)
		}
	})

	t.Run("no object storage configured", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, nil, nil, nil, testLogger(), Config{})
		seed(t, uc)

		out, err := uc.ListReferencedFiles(ctx, model.Scope{Groups: []int{1}}, report.GetInput{ExecutionID: "exec-1"})
		if err != nil {
			t.Fatalf("ListReferencedFiles failed: %v", err)
		}
		if len(out.Files) != 2 {
			t.Fatalf("Files length mismatch: got %d, want 2", len(out.Files))
		}
		if out.Files[0].DownloadURL != "" {
			t.Errorf("DownloadURL should be empty without storage, got %s", out.Files[0].DownloadURL)
		}
	})

	t.Run("presign failure", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, nil, nil, &fakeMinio{presignErr: errors.New("boom")}, testLogger(), Config{})
		seed(t, uc)

		_, err := uc.ListReferencedFiles(ctx, model.Scope{Groups: []int{1}}, report.GetInput{ExecutionID: "exec-1"})
		if !errors.Is(err, report.ErrDownloadURLFailed) {
			t.Errorf("Error mismatch: got %v, want ErrDownloadURLFailed", err)
		}
	})
}
