package guidance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/store"
)

// Continue records a continue decision on a pending reevaluation: the learner
// keeps the current plan and the checkpoint is closed.
func (s *Service) Continue(ctx context.Context, journeyID, reevaluationID uuid.UUID) error {
	return s.mutate(ctx, journeyID, func(j *journey.Journey) error {
		return j.DecideContinue(reevaluationID)
	})
}

// RerouteResult is the committed outcome of a role switch.
type RerouteResult struct {
	Journey        *journey.Journey
	Record         *journey.Reroute
	NewTargetRole  string
	NewPlan        []*journey.Step
	RetainedSkills []string
}

// Reroute switches the journey to chosenRole, one of the pending
// reevaluation's alternatives. The chosen role's roadmap is authored fresh,
// the old plan is archived and the skill ledger carries over untouched.
//
// Validation runs before any collaborator is called, so a bad choice costs
// nothing; a collaborator failure aborts with the journey unchanged.
func (s *Service) Reroute(ctx context.Context, journeyID, reevaluationID uuid.UUID, chosenRole string) (*RerouteResult, error) {
	unlock := s.locks.lock(journeyID)
	defer unlock()

	j, version, err := s.journeys.Load(ctx, journeyID)
	if err != nil {
		return nil, err
	}

	reeval, err := j.FindReevaluation(reevaluationID)
	if err != nil {
		return nil, err
	}
	if reeval.Decision != journey.DecisionPending {
		return nil, journey.ErrReevaluationNotPending
	}
	if !snapshotHasRole(reeval, chosenRole) {
		return nil, fmt.Errorf("role %q: %w", chosenRole, journey.ErrInvalidChoice)
	}

	m, err := s.roleSnapshot(ctx, chosenRole)
	if err != nil {
		return nil, err
	}

	specs, err := s.roadmaps.Generate(ctx, j.Profile, chosenRole, m, ownedSkills(j))
	if err != nil {
		return nil, collaboratorErr("roadmap", err)
	}

	rec, err := j.ApplyReroute(reevaluationID, chosenRole, string(reeval.Trigger), toPlanSteps(specs))
	if err != nil {
		return nil, err
	}

	if err := s.journeys.Save(ctx, j, version); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.appendEvent(ctx, store.ProgressEventData{
			JourneyID: j.ID,
			Kind:      "reroute",
			Detail:    fmt.Sprintf("%s -> %s", rec.FromRole, rec.ToRole),
		})
	}

	s.log.Info("journey rerouted",
		zap.String("journey", j.ID.String()),
		zap.String("from", rec.FromRole),
		zap.String("to", rec.ToRole),
		zap.Int("retained_skills", len(rec.RetainedSkills)),
		zap.Int("new_steps", len(rec.NewPlan)))

	return &RerouteResult{
		Journey:        j,
		Record:         rec,
		NewTargetRole:  j.TargetRole,
		NewPlan:        j.Steps,
		RetainedSkills: rec.RetainedSkills,
	}, nil
}

func snapshotHasRole(r *journey.Reevaluation, role string) bool {
	for _, a := range r.Alternatives {
		if a.Role == role {
			return true
		}
	}
	return false
}
