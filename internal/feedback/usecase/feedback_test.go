package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"reportlog-srv/internal/feedback"
	"reportlog-srv/internal/feedback/repository"
	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report"
	"reportlog-srv/pkg/log"
)

// fakeFeedbackRepo keys assessments by (username, execution id).
type fakeFeedbackRepo struct {
	mu      sync.Mutex
	seq     int
	clock   time.Time
	records map[string]model.Feedback

	upsertErr error
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		records: make(map[string]model.Feedback),
	}
}

func feedbackKey(username, executionID string) string {
	return username + "/" + executionID
}

func (r *fakeFeedbackRepo) Upsert(ctx context.Context, opts repository.UpsertFeedbackOptions) (model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.upsertErr != nil {
		return model.Feedback{}, r.upsertErr
	}

	r.clock = r.clock.Add(time.Second)

	key := feedbackKey(opts.Username, opts.ExecutionID)
	fb, ok := r.records[key]
	if !ok {
		r.seq++
		fb = model.Feedback{
			ID:          fmt.Sprintf("fb-%d", r.seq),
			Username:    opts.Username,
			ExecutionID: opts.ExecutionID,
		}
	}

	fb.Data = opts.Data
	fb.Query = opts.Query
	fb.Category = opts.Category
	fb.LoggedAt = r.clock

	r.records[key] = fb
	return fb, nil
}

func (r *fakeFeedbackRepo) GetByUserAndExecution(ctx context.Context, opts repository.GetFeedbackOptions) (model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fb, ok := r.records[feedbackKey(opts.Username, opts.ExecutionID)]
	if !ok {
		return model.Feedback{}, repository.ErrFeedbackNotFound
	}
	return fb, nil
}

func (r *fakeFeedbackRepo) ListExecutionIDsByUser(ctx context.Context, username string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0)
	for _, fb := range r.records {
		if fb.Username == username {
			ids = append(ids, fb.ExecutionID)
		}
	}
	return ids, nil
}

// fakeReportUC resolves visibility for the executions it knows about.
type fakeReportUC struct {
	report.UseCase
	records map[string]model.ReportRecord
}

func (uc *fakeReportUC) Get(ctx context.Context, sc model.Scope, input report.GetInput) (model.ReportRecord, error) {
	rec, ok := uc.records[input.ExecutionID]
	if !ok {
		return model.ReportRecord{}, report.ErrReportNotFound
	}
	visible := false
	for _, g := range rec.Groups {
		for _, cg := range sc.Groups {
			if g == cg {
				visible = true
			}
		}
	}
	if !visible {
		return model.ReportRecord{}, report.ErrReportNotFound
	}
	return rec, nil
}

// fakePublisher records published events per routing key.
type fakePublisher struct {
	mu     sync.Mutex
	events map[string][][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.events == nil {
		p.events = make(map[string][][]byte)
	}
	p.events[routingKey] = append(p.events[routingKey], body)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Encoding: "console"})
}

func validScores() feedback.Scores {
	return feedback.Scores{
		Relevance:         4,
		Completeness:      5,
		Reliability:       3,
		Understandability: 4,
		Comments:          "solid answer",
	}
}

func seededReportUC() *fakeReportUC {
	return &fakeReportUC{
		records: map[string]model.ReportRecord{
			"exec-1": {
				ExecutionID: "exec-1",
				Groups:      []int{1, 3},
				Query:       "did ACME raise its guidance?",
				Category:    "ACME",
			},
		},
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	scope := model.Scope{Username: "alice", Groups: []int{3}}

	t.Run("submit and resubmit", func(t *testing.T) {
		repo := newFakeFeedbackRepo()
		uc := New(repo, seededReportUC(), nil, testLogger())

		first, err := uc.Submit(ctx, scope, feedback.SubmitInput{ExecutionID: "exec-1", Scores: validScores()})
		if err != nil {
			t.Fatalf("First submit failed: %v", err)
		}

		scores := validScores()
		scores.Relevance = 1
		second, err := uc.Submit(ctx, scope, feedback.SubmitInput{ExecutionID: "exec-1", Scores: scores})
		if err != nil {
			t.Fatalf("Second submit failed: %v", err)
		}

		if first.ID != second.ID {
			t.Errorf("Resubmit must replace, not duplicate: %s vs %s", first.ID, second.ID)
		}
		if !second.LoggedAt.After(first.LoggedAt) {
			t.Errorf("LoggedAt not refreshed: %v vs %v", first.LoggedAt, second.LoggedAt)
		}

		got, err := uc.Get(ctx, scope, feedback.GetInput{ExecutionID: "exec-1"})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Scores.Relevance != 1 {
			t.Errorf("Scores not replaced: got relevance %d", got.Scores.Relevance)
		}
		if got.Query != "did ACME raise its guidance?" || got.Category != "ACME" {
			t.Errorf("Provenance not copied from report: query=%q category=%q", got.Query, got.Category)
		}
	})

	t.Run("score bounds", func(t *testing.T) {
		repo := newFakeFeedbackRepo()
		uc := New(repo, seededReportUC(), nil, testLogger())

		scores := validScores()
		scores.Reliability = 6
		_, err := uc.Submit(ctx, scope, feedback.SubmitInput{ExecutionID: "exec-1", Scores: scores})
		if !errors.Is(err, feedback.ErrInvalidScores) {
			t.Errorf("Error mismatch: got %v, want ErrInvalidScores", err)
		}

		scores = validScores()
		scores.Completeness = 0
		_, err = uc.Submit(ctx, scope, feedback.SubmitInput{ExecutionID: "exec-1", Scores: scores})
		if !errors.Is(err, feedback.ErrInvalidScores) {
			t.Errorf("Error mismatch: got %v, want ErrInvalidScores", err)
		}
	})

	t.Run("report not visible", func(t *testing.T) {
		repo := newFakeFeedbackRepo()
		uc := New(repo, seededReportUC(), nil, testLogger())

		_, err := uc.Submit(ctx, model.Scope{Username: "bob", Groups: []int{2}},
			feedback.SubmitInput{ExecutionID: "exec-1", Scores: validScores()})
		if !errors.Is(err, feedback.ErrReportNotVisible) {
			t.Errorf("Error mismatch: got %v, want ErrReportNotVisible", err)
		}
		if len(repo.records) != 0 {
			t.Error("No feedback row should be written for an invisible report")
		}
	})

	t.Run("publishes submitted event", func(t *testing.T) {
		repo := newFakeFeedbackRepo()
		publisher := &fakePublisher{}
		uc := New(repo, seededReportUC(), publisher, testLogger())

		if _, err := uc.Submit(ctx, scope, feedback.SubmitInput{ExecutionID: "exec-1", Scores: validScores()}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		events := publisher.events[submittedRoutingKey]
		if len(events) != 1 {
			t.Fatalf("Event count mismatch: got %d, want 1", len(events))
		}
		var event map[string]any
		if err := json.Unmarshal(events[0], &event); err != nil {
			t.Fatalf("Event is not JSON: %v", err)
		}
		if event["execution_id"] != "exec-1" || event["user_name"] != "alice" {
			t.Errorf("Event fields mismatch: %v", event)
		}
	})
}

func TestGetFeedback(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFeedbackRepo()
	uc := New(repo, seededReportUC(), nil, testLogger())

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Get(ctx, model.Scope{Username: "alice"}, feedback.GetInput{ExecutionID: "exec-9"})
		if !errors.Is(err, feedback.ErrFeedbackNotFound) {
			t.Errorf("Error mismatch: got %v, want ErrFeedbackNotFound", err)
		}
	})

	t.Run("missing execution id", func(t *testing.T) {
		_, err := uc.Get(ctx, model.Scope{Username: "alice"}, feedback.GetInput{})
		if !errors.Is(err, feedback.ErrExecutionIDRequired) {
			t.Errorf("Error mismatch: got %v, want ErrExecutionIDRequired", err)
		}
	})
}

func TestListExecutionIDs(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFeedbackRepo()
	reportUC := seededReportUC()
	reportUC.records["exec-2"] = model.ReportRecord{ExecutionID: "exec-2", Groups: []int{3}}
	uc := New(repo, reportUC, nil, testLogger())

	scope := model.Scope{Username: "alice", Groups: []int{3}}
	for _, id := range []string{"exec-1", "exec-2"} {
		if _, err := uc.Submit(ctx, scope, feedback.SubmitInput{ExecutionID: id, Scores: validScores()}); err != nil {
			t.Fatalf("Submit %s failed: %v", id, err)
		}
	}

	out, err := uc.ListExecutionIDs(ctx, scope)
	if err != nil {
		t.Fatalf("ListExecutionIDs failed: %v", err)
	}
	if len(out.ExecutionIDs) != 2 {
		t.Errorf("ExecutionIDs length mismatch: got %d, want 2", len(out.ExecutionIDs))
	}

	other, err := uc.ListExecutionIDs(ctx, model.Scope{Username: "bob"})
	if err != nil {
		t.Fatalf("ListExecutionIDs failed: %v", err)
	}
	if len(other.ExecutionIDs) != 0 {
		t.Errorf("Other user should have no feedback, got %d", len(other.ExecutionIDs))
	}
}
