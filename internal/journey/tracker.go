package journey

import "time"

// Step state machine:
//
//	NotStarted -> InProgress -> Completed (terminal)
//	                        \-> Blocked -> InProgress (retry)
//
// Completed is terminal; no operation reopens it. Every method validates
// before mutating so a returned error leaves the journey untouched.

// StartStep moves a NotStarted or Blocked step to InProgress and stamps the
// start time on the first start.
func (j *Journey) StartStep(number int) error {
	step, err := j.Step(number)
	if err != nil {
		return err
	}
	switch step.Status {
	case StepNotStarted, StepBlocked:
	default:
		return &TransitionError{StepNumber: number, From: step.Status, To: StepInProgress}
	}

	step.Status = StepInProgress
	if step.StartedAt == nil {
		now := time.Now().UTC()
		step.StartedAt = &now
	}
	j.touch()
	return nil
}

// CompleteStep marks an InProgress or Blocked step Completed, accumulates
// hours, grants the step's skills (idempotent per name), resolves any open
// blocker on the step and bumps the completed counter. A NotStarted step
// cannot be completed directly.
func (j *Journey) CompleteStep(number int, hoursSpent float64) error {
	if hoursSpent < 0 {
		return ErrInvalidHours
	}
	step, err := j.Step(number)
	if err != nil {
		return err
	}
	switch step.Status {
	case StepInProgress, StepBlocked:
	default:
		return &TransitionError{StepNumber: number, From: step.Status, To: StepCompleted}
	}

	now := time.Now().UTC()
	step.Status = StepCompleted
	step.HoursSpent += hoursSpent
	step.CompletedAt = &now
	if step.StartedAt == nil {
		step.StartedAt = &now
	}

	for _, name := range step.Skills {
		j.grantSkill(name, number, now)
	}
	j.resolveBlocker(number, now)

	j.CompletedSteps++
	if j.CompletedSteps == j.TotalSteps {
		j.Status = StatusCompleted
	}

	// Finishing something restores a bit of momentum.
	j.Motivation = min(j.Motivation+0.1, 1.0)
	j.touch()
	return nil
}

// ReportBlocker marks a step Blocked and records the obstacle. A repeated
// report on the same unresolved blocker increments its attempt counter and
// refreshes the reason rather than creating a duplicate.
func (j *Journey) ReportBlocker(number int, reason string, hoursSpent float64) (*Blocker, error) {
	if hoursSpent < 0 {
		return nil, ErrInvalidHours
	}
	step, err := j.Step(number)
	if err != nil {
		return nil, err
	}
	if step.Status == StepCompleted {
		return nil, &TransitionError{StepNumber: number, From: step.Status, To: StepBlocked}
	}

	now := time.Now().UTC()
	step.Status = StepBlocked
	step.HoursSpent += hoursSpent
	if step.StartedAt == nil {
		step.StartedAt = &now
	}

	b := j.unresolvedBlocker(number)
	if b != nil {
		b.Attempts++
		b.Reason = reason
		b.LastReported = now
	} else {
		b = &Blocker{
			StepNumber:    number,
			Reason:        reason,
			Attempts:      1,
			FirstReported: now,
			LastReported:  now,
		}
		j.Blockers = append(j.Blockers, b)
	}

	// Motivation sinks as unresolved blockers pile up, floored at 0.1.
	j.Motivation = max(1.0-0.2*float64(j.UnresolvedBlockerCount()), 0.1)
	j.touch()
	return b, nil
}
