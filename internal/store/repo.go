package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/llm"
)

// ErrJourneyNotFound indicates no journey row exists for the given ID.
var ErrJourneyNotFound = errors.New("journey not found")

// ErrVersionConflict indicates a save lost the compare-and-swap: another
// writer updated the journey since it was loaded. Callers reload and retry.
var ErrVersionConflict = errors.New("journey modified concurrently")

// JourneySummary is the listing projection of a journey row.
type JourneySummary struct {
	ID         uuid.UUID
	TargetRole string
	Status     string
	UpdatedAt  time.Time
}

// JourneyRepo persists journey aggregates with optimistic concurrency.
// Load returns the stored version; Save succeeds only if the row still
// carries that version, bumping it by one.
type JourneyRepo interface {
	// Create inserts a new journey at version 1.
	Create(ctx context.Context, j *journey.Journey) error

	// Load returns the aggregate and its current version, or
	// ErrJourneyNotFound.
	Load(ctx context.Context, id uuid.UUID) (*journey.Journey, int64, error)

	// Save persists the aggregate if the row version still equals version,
	// or returns ErrVersionConflict.
	Save(ctx context.Context, j *journey.Journey, version int64) error

	// List returns summaries of all journeys, most recently updated first.
	List(ctx context.Context) ([]JourneySummary, error)
}

// ProgressEventData is one audit record of a journey mutation.
type ProgressEventData struct {
	JourneyID  uuid.UUID
	Kind       string // step_completed, blocker_reported, reevaluation, reroute
	StepNumber int    // 0 when journey-wide
	Detail     string
}

// ProgressRecord is a stored progress event.
type ProgressRecord struct {
	Sequence  int64
	Timestamp time.Time
	ProgressEventData
}

// LLMRequestRecord is a stored LLM call with its audit metadata.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	llm.AuditEntry
}

// EventRepo provides append and query access to the audit trail. It also
// serves as the llm.AuditSink so every collaborator call lands in the same
// event log.
type EventRepo interface {
	// AppendProgress records a journey mutation event.
	AppendProgress(ctx context.Context, data ProgressEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, entry llm.AuditEntry) error

	// ListProgress returns a journey's events, newest first.
	// limit 0 means unlimited.
	ListProgress(ctx context.Context, journeyID uuid.UUID, limit int) ([]ProgressRecord, error)

	// ListLLMRequests returns recent LLM call records, newest first.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}
