package journey

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a whole journey.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// StepStatus is a step's position in its lifecycle.
type StepStatus string

const (
	StepNotStarted StepStatus = "not_started"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepBlocked    StepStatus = "blocked"
)

// TriggerType identifies which rule fired a reevaluation.
type TriggerType string

const (
	TriggerRepeatedBlocking TriggerType = "repeated_blocking"
	TriggerMultipleBlockers TriggerType = "multiple_blockers"
	TriggerPeriodic         TriggerType = "periodic"
	TriggerLowMotivation    TriggerType = "low_motivation"
)

// Severity grades how urgent a reevaluation is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Decision is the recorded outcome of a reevaluation.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionContinue Decision = "continue"
	DecisionSwitch   Decision = "switch"
)

// Step is one roadmap unit. Number is immutable once assigned and unique
// within a journey; numbering is contiguous from 1.
type Step struct {
	Number         int        `json:"number"`
	Title          string     `json:"title"`
	EstimatedHours float64    `json:"estimated_hours"`
	Status         StepStatus `json:"status"`
	HoursSpent     float64    `json:"hours_spent"`
	Skills         []string   `json:"skills,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Blocker is a reported obstacle on a step. At most one unresolved blocker
// exists per step; repeated reports bump Attempts instead of duplicating.
type Blocker struct {
	StepNumber    int       `json:"step_number"`
	Reason        string    `json:"reason"`
	Attempts      int       `json:"attempts"`
	FirstReported time.Time `json:"first_reported"`
	LastReported  time.Time `json:"last_reported"`
	Resolved      bool      `json:"resolved"`
}

// SkillRecord is one entry in the append-only skill ledger.
type SkillRecord struct {
	Name       string    `json:"name"`
	Level      string    `json:"level"`
	StepNumber int       `json:"step_number"`
	LearnedAt  time.Time `json:"learned_at"`
}

// Alternative is one scored candidate role in a reevaluation snapshot.
type Alternative struct {
	Role            string  `json:"role"`
	Score           float64 `json:"score"`
	SkillOverlap    float64 `json:"skill_overlap"`
	MarketDemand    float64 `json:"market_demand"`
	Progression     float64 `json:"progression"`
	EaseOfEntry     float64 `json:"ease_of_entry"`
	ActiveJobs      int     `json:"active_jobs"`
	SalaryRange     string  `json:"salary_range,omitempty"`
	EntryBarrier    float64 `json:"entry_barrier"`
	FresherFriendly bool    `json:"fresher_friendly"`
	Justification   string  `json:"justification,omitempty"`
}

// Reevaluation is a system-initiated checkpoint proposing the plan be
// reconsidered. Terminal once Decision leaves pending.
type Reevaluation struct {
	ID           uuid.UUID     `json:"id"`
	Trigger      TriggerType   `json:"trigger"`
	Severity     Severity      `json:"severity"`
	StepNumber   int           `json:"step_number,omitempty"`
	Multiple     int           `json:"multiple,omitempty"`
	PlanEpoch    int           `json:"plan_epoch"`
	Alternatives []Alternative `json:"alternatives"`
	Decision     Decision      `json:"decision"`
	CreatedAt    time.Time     `json:"created_at"`
	DecidedAt    *time.Time    `json:"decided_at,omitempty"`
}

// Reroute is the committed record of a target-role switch.
// Immutable once appended to the journey history.
type Reroute struct {
	FromRole       string    `json:"from_role"`
	ToRole         string    `json:"to_role"`
	ReasonCode     string    `json:"reason_code"`
	OldPlan        []*Step   `json:"old_plan"`
	NewPlan        []*Step   `json:"new_plan"`
	RetainedSkills []string  `json:"retained_skills"`
	At             time.Time `json:"at"`
}
