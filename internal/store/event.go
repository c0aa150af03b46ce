package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/llmrequestevent"
	"github.com/abhisek/pathwise/ent/progressevent"
	"github.com/abhisek/pathwise/internal/llm"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Progress events and LLM request events live in separate
// ent-managed tables, so per-table auto-increment IDs can't establish
// cross-type ordering. A single increasing sequence assigned to every event
// makes the combined audit trail replayable in write order.
//
// Uses raw SQL outside ent because ent doesn't support database-level atomic
// counters. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendProgress(ctx context.Context, data ProgressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProgressEvent.Create().
		SetSequence(seqNum).
		SetJourneyID(data.JourneyID).
		SetKind(data.Kind).
		SetStepNumber(data.StepNumber).
		SetDetail(data.Detail).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, entry llm.AuditEntry) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(entry.Provider).
		SetModel(entry.Model).
		SetPurpose(entry.Purpose).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetLatencyMs(entry.LatencyMs).
		SetSuccess(entry.Success).
		SetErrorMessage(entry.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListProgress(ctx context.Context, journeyID uuid.UUID, limit int) ([]ProgressRecord, error) {
	q := r.client.ProgressEvent.Query().
		Where(progressevent.JourneyID(journeyID)).
		Order(ent.Desc(progressevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress events: %w", err)
	}

	out := make([]ProgressRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, ProgressRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ProgressEventData: ProgressEventData{
				JourneyID:  e.JourneyID,
				Kind:       e.Kind,
				StepNumber: e.StepNumber,
				Detail:     e.Detail,
			},
		})
	}
	return out, nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM request events: %w", err)
	}

	out := make([]LLMRequestRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, LLMRequestRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AuditEntry: llm.AuditEntry{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		})
	}
	return out, nil
}
