package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testJourney() *journey.Journey {
	return journey.New("Data Analyst", []journey.PlanStep{
		{Title: "Learn SQL", EstimatedHours: 40, Skills: []string{"SQL"}},
		{Title: "Learn Excel", EstimatedHours: 20, Skills: []string{"Excel"}},
	})
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestJourneyCreateAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	j := testJourney()
	if err := repo.Create(ctx, j); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, version, err := repo.Load(ctx, j.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
	if diff := cmp.Diff(j, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJourneyLoadNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()

	_, _, err := repo.Load(context.Background(), uuid.New())
	if !errors.Is(err, ErrJourneyNotFound) {
		t.Errorf("err = %v, want ErrJourneyNotFound", err)
	}
}

func TestJourneySaveBumpsVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	j := testJourney()
	if err := repo.Create(ctx, j); err != nil {
		t.Fatal(err)
	}

	if err := j.StartStep(1); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, j, 1); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, version, err := repo.Load(ctx, j.ID)
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}
	step, _ := loaded.Step(1)
	if step.Status != journey.StepInProgress {
		t.Errorf("step status = %q, want in_progress", step.Status)
	}
}

func TestJourneySaveVersionConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	j := testJourney()
	if err := repo.Create(ctx, j); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, j, 1); err != nil {
		t.Fatal(err)
	}

	// A stale writer still holding version 1 loses.
	err := repo.Save(ctx, j, 1)
	if !errors.Is(err, ErrVersionConflict) {
		t.Errorf("err = %v, want ErrVersionConflict", err)
	}

	// The stored state is the winner's.
	_, version, err := repo.Load(ctx, j.ID)
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}
}

func TestJourneySaveMissingRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()

	err := repo.Save(context.Background(), testJourney(), 1)
	if !errors.Is(err, ErrJourneyNotFound) {
		t.Errorf("err = %v, want ErrJourneyNotFound", err)
	}
}

func TestJourneyList(t *testing.T) {
	s := openTestStore(t)
	repo := s.JourneyRepo()
	ctx := context.Background()

	a := testJourney()
	b := journey.New("QA Engineer", []journey.PlanStep{{Title: "Testing basics"}})
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	roles := map[string]bool{}
	for _, sum := range summaries {
		roles[sum.TargetRole] = true
	}
	if !roles["Data Analyst"] || !roles["QA Engineer"] {
		t.Errorf("unexpected summaries: %+v", summaries)
	}
}

func TestProgressEventsAppendAndList(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	journeyID := uuid.New()
	otherID := uuid.New()

	appends := []ProgressEventData{
		{JourneyID: journeyID, Kind: "step_completed", StepNumber: 1},
		{JourneyID: journeyID, Kind: "blocker_reported", StepNumber: 2, Detail: "stuck on joins"},
		{JourneyID: otherID, Kind: "step_completed", StepNumber: 1},
		{JourneyID: journeyID, Kind: "reevaluation", StepNumber: 2, Detail: "repeated_blocking"},
	}
	for i, data := range appends {
		if err := events.AppendProgress(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := events.ListProgress(ctx, journeyID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (other journey filtered)", len(records))
	}

	// Newest first, with a global sequence ordering across appends.
	if records[0].Kind != "reevaluation" {
		t.Errorf("newest kind = %q, want reevaluation", records[0].Kind)
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Sequence <= records[i].Sequence {
			t.Errorf("sequence not descending at %d", i)
		}
	}

	limited, err := events.ListProgress(ctx, journeyID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limited list = %d records, want 1", len(limited))
	}
}

func TestLLMRequestEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	entry := llm.AuditEntry{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "roadmap",
		InputTokens:  820,
		OutputTokens: 411,
		LatencyMs:    1450,
		Success:      true,
	}
	if err := events.AppendLLMRequest(ctx, entry); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := events.ListLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if diff := cmp.Diff(entry, records[0].AuditEntry); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEventRepoImplementsAuditSink(t *testing.T) {
	var _ llm.AuditSink = (*eventRepo)(nil)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"journeys", "progress_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
