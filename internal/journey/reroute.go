package journey

import (
	"time"

	"github.com/google/uuid"
)

// RecordReevaluation appends a pending reevaluation and bumps the counter.
func (j *Journey) RecordReevaluation(r *Reevaluation) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.PlanEpoch = j.RerouteCount
	if r.Decision == "" {
		r.Decision = DecisionPending
	}
	j.Reevaluations = append(j.Reevaluations, r)
	j.ReevaluationCount++
}

// FindReevaluation returns the reevaluation with the given id or
// ErrReevaluationNotFound.
func (j *Journey) FindReevaluation(id uuid.UUID) (*Reevaluation, error) {
	for _, r := range j.Reevaluations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrReevaluationNotFound
}

// PendingReevaluation returns the undecided reevaluation, or nil. At most one
// is pending at a time: the trigger evaluator does not stack new ones while
// a decision is outstanding.
func (j *Journey) PendingReevaluation() *Reevaluation {
	for _, r := range j.Reevaluations {
		if r.Decision == DecisionPending {
			return r
		}
	}
	return nil
}

// HasPeriodicReevaluation reports whether a periodic reevaluation was already
// recorded for this completed-step multiple on the current plan. Keyed on the
// plan epoch too: after a reroute the counter restarts, so the same multiple
// may legitimately fire again on the new plan.
func (j *Journey) HasPeriodicReevaluation(multiple int) bool {
	for _, r := range j.Reevaluations {
		if r.Trigger == TriggerPeriodic && r.Multiple == multiple && r.PlanEpoch == j.RerouteCount {
			return true
		}
	}
	return false
}

// DecideContinue records a continue decision on a pending reevaluation.
// No structural change is made to the journey.
func (j *Journey) DecideContinue(id uuid.UUID) error {
	r, err := j.FindReevaluation(id)
	if err != nil {
		return err
	}
	if r.Decision != DecisionPending {
		return ErrReevaluationNotPending
	}
	now := time.Now().UTC()
	r.Decision = DecisionContinue
	r.DecidedAt = &now
	j.touch()
	return nil
}

// ApplyReroute atomically switches the journey to chosenRole: the current
// plan is archived into a Reroute record, the new plan replaces it with every
// step NotStarted and counters reset, and the reevaluation is marked
// switched. The skill ledger is the one piece of state explicitly carried
// across untouched.
//
// All validation happens before the first mutation; on error the journey is
// exactly as it was.
func (j *Journey) ApplyReroute(reevaluationID uuid.UUID, chosenRole, reasonCode string, newPlan []PlanStep) (*Reroute, error) {
	r, err := j.FindReevaluation(reevaluationID)
	if err != nil {
		return nil, err
	}
	if r.Decision != DecisionPending {
		return nil, ErrReevaluationNotPending
	}
	if !snapshotContains(r.Alternatives, chosenRole) {
		return nil, ErrInvalidChoice
	}

	now := time.Now().UTC()
	steps := buildSteps(newPlan)
	rec := &Reroute{
		FromRole:       j.TargetRole,
		ToRole:         chosenRole,
		ReasonCode:     reasonCode,
		OldPlan:        j.Steps,
		NewPlan:        steps,
		RetainedSkills: j.SkillNames(),
		At:             now,
	}

	j.Reroutes = append(j.Reroutes, rec)
	j.Steps = steps
	j.TargetRole = chosenRole
	j.CompletedSteps = 0
	j.TotalSteps = len(steps)
	j.RerouteCount++
	j.Status = StatusActive

	// Blockers belonged to the archived plan; close them out.
	for _, b := range j.Blockers {
		if !b.Resolved {
			b.Resolved = true
		}
	}
	j.Motivation = max(j.Motivation, 0.5)

	r.Decision = DecisionSwitch
	r.DecidedAt = &now
	j.touch()
	return rec, nil
}

func snapshotContains(alts []Alternative, role string) bool {
	for _, a := range alts {
		if a.Role == role {
			return true
		}
	}
	return false
}
