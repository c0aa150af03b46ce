// Package guidance is the orchestration layer of the engine. The Service owns
// the write path for journeys: it serializes mutations per journey, runs the
// trigger evaluator after every progress change, calls out to collaborators
// (profile analysis, market intelligence, roadmap authoring, ranking) and
// persists through the store with optimistic concurrency.
//
// Collaborator failures abort the whole operation before anything is saved;
// a journey is never left with a half-applied mutation.
package guidance

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/ranker"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/store"
)

// AlternativesRanker produces scored alternative roles for a reevaluation.
// *ranker.Ranker satisfies it; tests substitute their own.
type AlternativesRanker interface {
	Alternatives(ctx context.Context, prof *profile.StudentProfile, ownedSkills []string, currentRole string) ([]journey.Alternative, error)
}

var _ AlternativesRanker = (*ranker.Ranker)(nil)

// Service coordinates journey mutations.
type Service struct {
	journeys store.JourneyRepo
	events   store.EventRepo
	profiles profile.Analyzer
	market   market.Source
	roadmaps roadmap.Generator
	ranker   AlternativesRanker
	log      *zap.Logger

	locks journeyLocks
}

// New creates a Service. events and log may be nil.
func New(
	journeys store.JourneyRepo,
	events store.EventRepo,
	profiles profile.Analyzer,
	src market.Source,
	roadmaps roadmap.Generator,
	rk AlternativesRanker,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		journeys: journeys,
		events:   events,
		profiles: profiles,
		market:   src,
		roadmaps: roadmaps,
		ranker:   rk,
		log:      log,
	}
}

// CreateRequest is the intake for a new journey.
type CreateRequest struct {
	TargetRole string
	// Intake is the learner's free-form self-description, fed to the
	// profile analyzer.
	Intake string
}

// CreateJourney analyzes the intake, authors the initial roadmap for the
// target role and persists the new journey.
func (s *Service) CreateJourney(ctx context.Context, req CreateRequest) (*journey.Journey, error) {
	prof, err := s.profiles.Analyze(ctx, req.Intake)
	if err != nil {
		return nil, collaboratorErr("profile", err)
	}

	m, err := s.roleSnapshot(ctx, req.TargetRole)
	if err != nil {
		return nil, err
	}

	specs, err := s.roadmaps.Generate(ctx, prof, req.TargetRole, m, prof.KnownSkills)
	if err != nil {
		return nil, collaboratorErr("roadmap", err)
	}

	j := journey.New(req.TargetRole, toPlanSteps(specs))
	j.Profile = prof

	if err := s.journeys.Create(ctx, j); err != nil {
		return nil, err
	}

	s.log.Info("journey created",
		zap.String("journey", j.ID.String()),
		zap.String("target_role", j.TargetRole),
		zap.Int("steps", j.TotalSteps))
	return j, nil
}

// Get loads a journey by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*journey.Journey, error) {
	j, _, err := s.journeys.Load(ctx, id)
	return j, err
}

// List returns summaries of all journeys.
func (s *Service) List(ctx context.Context) ([]store.JourneySummary, error) {
	return s.journeys.List(ctx)
}

// Pause suspends an active journey.
func (s *Service) Pause(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, id, func(j *journey.Journey) error {
		j.Pause()
		return nil
	})
}

// Resume reactivates a paused journey.
func (s *Service) Resume(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, id, func(j *journey.Journey) error {
		j.Resume()
		return nil
	})
}

// Abandon archives a journey. The record is kept.
func (s *Service) Abandon(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, id, func(j *journey.Journey) error {
		j.Abandon()
		return nil
	})
}

// mutate runs fn on the loaded journey under the per-journey lock and saves
// the result with the version read at load.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(*journey.Journey) error) error {
	unlock := s.locks.lock(id)
	defer unlock()

	j, version, err := s.journeys.Load(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(j); err != nil {
		return err
	}
	return s.journeys.Save(ctx, j, version)
}

// roleSnapshot fetches market data for a role. A role the source does not
// cover degrades to nil data; an unreachable source aborts.
func (s *Service) roleSnapshot(ctx context.Context, role string) (*market.Data, error) {
	m, err := s.market.Snapshot(ctx, role)
	if errors.Is(err, market.ErrRoleUnknown) {
		return nil, nil
	}
	if err != nil {
		return nil, collaboratorErr("market", err)
	}
	return m, nil
}

// ownedSkills merges intake skills with everything learned on the journey,
// deduplicated case-insensitively.
func ownedSkills(j *journey.Journey) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, name)
	}
	if j.Profile != nil {
		for _, s := range j.Profile.KnownSkills {
			add(s)
		}
	}
	for _, s := range j.SkillNames() {
		add(s)
	}
	return out
}

func toPlanSteps(specs []roadmap.StepSpec) []journey.PlanStep {
	plan := make([]journey.PlanStep, len(specs))
	for i, sp := range specs {
		plan[i] = journey.PlanStep{
			Title:          sp.Title,
			EstimatedHours: sp.EstimatedHours,
			Skills:         sp.Skills,
		}
	}
	return plan
}

// journeyLocks serializes writers per journey within the process. Cross
// process, the store's version CAS is the backstop.
type journeyLocks struct {
	mu sync.Mutex
	m  map[uuid.UUID]*sync.Mutex
}

func (l *journeyLocks) lock(id uuid.UUID) (unlock func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[uuid.UUID]*sync.Mutex)
	}
	jm, ok := l.m[id]
	if !ok {
		jm = &sync.Mutex{}
		l.m[id] = jm
	}
	l.mu.Unlock()

	jm.Lock()
	return jm.Unlock
}
