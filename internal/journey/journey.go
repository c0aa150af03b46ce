// Package journey holds the aggregate root of the guidance engine: one
// learner's pursuit of a target role, with its step plan, blocker ledger,
// skill ledger and reevaluation/reroute history. All counters are owned by
// the aggregate and mutated only through its methods; callers serialize
// writes per journey (see the guidance service).
package journey

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/profile"
)

// Journey is the aggregate root. Fields are exported for JSON persistence;
// mutate only through methods.
type Journey struct {
	ID          uuid.UUID `json:"id"`
	TargetRole  string    `json:"target_role"`
	DesiredRole string    `json:"desired_role"`
	Status      Status    `json:"status"`

	// Motivation is a 0.0-1.0 score: decays when blockers pile up,
	// recovers on completions.
	Motivation float64 `json:"motivation"`

	// Profile is captured once at intake and reused by every later
	// reevaluation and reroute.
	Profile *profile.StudentProfile `json:"profile,omitempty"`

	Steps         []*Step         `json:"steps"`
	Blockers      []*Blocker      `json:"blockers,omitempty"`
	Skills        []*SkillRecord  `json:"skills,omitempty"`
	Reevaluations []*Reevaluation `json:"reevaluations,omitempty"`
	Reroutes      []*Reroute      `json:"reroutes,omitempty"`

	CompletedSteps    int `json:"completed_steps"`
	TotalSteps        int `json:"total_steps"`
	RerouteCount      int `json:"reroute_count"`
	ReevaluationCount int `json:"reevaluation_count"`

	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// PlanStep is the journey-neutral input for building a step plan.
type PlanStep struct {
	Title          string
	EstimatedHours float64
	Skills         []string
}

// New creates an active journey for targetRole with the given plan.
// Steps are numbered contiguously from 1 and start NotStarted.
func New(targetRole string, plan []PlanStep) *Journey {
	now := time.Now().UTC()
	j := &Journey{
		ID:           uuid.New(),
		TargetRole:   targetRole,
		DesiredRole:  targetRole,
		Status:       StatusActive,
		Motivation:   1.0,
		Steps:        buildSteps(plan),
		TotalSteps:   len(plan),
		CreatedAt:    now,
		LastActivity: now,
	}
	return j
}

func buildSteps(plan []PlanStep) []*Step {
	steps := make([]*Step, len(plan))
	for i, p := range plan {
		steps[i] = &Step{
			Number:         i + 1,
			Title:          p.Title,
			EstimatedHours: p.EstimatedHours,
			Status:         StepNotStarted,
			Skills:         p.Skills,
		}
	}
	return steps
}

// Step returns the step with the given number or ErrStepNotFound.
func (j *Journey) Step(number int) (*Step, error) {
	if number < 1 || number > len(j.Steps) {
		return nil, ErrStepNotFound
	}
	return j.Steps[number-1], nil
}

// ProgressPercent is always recomputed from the counters, never cached.
func (j *Journey) ProgressPercent() float64 {
	if j.TotalSteps == 0 {
		return 0
	}
	return float64(j.CompletedSteps) / float64(j.TotalSteps) * 100
}

// Pause sets the journey to Paused. Touches no other state.
func (j *Journey) Pause() {
	if j.Status == StatusActive {
		j.Status = StatusPaused
	}
}

// Resume sets a paused journey back to Active.
func (j *Journey) Resume() {
	if j.Status == StatusPaused {
		j.Status = StatusActive
	}
}

// Abandon archives the journey. The record is retained, never deleted.
func (j *Journey) Abandon() {
	j.Status = StatusAbandoned
	j.touch()
}

func (j *Journey) touch() {
	j.LastActivity = time.Now().UTC()
}
