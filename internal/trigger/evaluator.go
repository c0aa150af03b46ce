// Package trigger decides, after every progress mutation, whether the
// journey's plan should be reconsidered. Evaluation is a pure function over
// the aggregate; it performs no I/O and records nothing itself.
package trigger

import "github.com/abhisek/pathwise/internal/journey"

// Request describes the reevaluation a rule asked for.
type Request struct {
	Type     journey.TriggerType
	Severity journey.Severity

	// StepNumber is set for repeated_blocking: the step that tripped it.
	StepNumber int

	// Multiple is set for periodic: the completed-step multiple crossed.
	Multiple int
}

// RepeatedBlockingThreshold is the attempt count on a single unresolved
// blocker that forces a reevaluation.
const RepeatedBlockingThreshold = 3

// MultipleBlockersThreshold is the number of concurrently blocked steps that
// forces a reevaluation.
const MultipleBlockersThreshold = 2

// PeriodicInterval fires a low-severity checkpoint every N completed steps.
const PeriodicInterval = 3

// MotivationFloor fires when the motivation score sinks below it.
const MotivationFloor = 0.5

// Evaluate runs the rule cascade in precedence order and returns the first
// matching request, or nil when no rule fires. justBlockedStep is the step a
// blocker was just reported on, 0 for completion mutations.
//
// While a reevaluation is still pending no new one is requested: the learner
// owes a decision first, and stacking identical checkpoints would add
// nothing. Only one reevaluation is ever created per mutation.
func Evaluate(j *journey.Journey, justBlockedStep int) *Request {
	if j.PendingReevaluation() != nil {
		return nil
	}

	// 1. Repeated blocking on the step just reported.
	if justBlockedStep > 0 {
		if b := j.UnresolvedBlocker(justBlockedStep); b != nil && b.Attempts >= RepeatedBlockingThreshold {
			return &Request{
				Type:       journey.TriggerRepeatedBlocking,
				Severity:   journey.SeverityHigh,
				StepNumber: justBlockedStep,
			}
		}
	}

	// 2. Several steps blocked at once.
	if j.UnresolvedBlockerCount() >= MultipleBlockersThreshold {
		return &Request{
			Type:     journey.TriggerMultipleBlockers,
			Severity: journey.SeverityHigh,
		}
	}

	// 3. Periodic checkpoint, once per multiple per plan.
	if j.CompletedSteps > 0 && j.CompletedSteps%PeriodicInterval == 0 &&
		!j.HasPeriodicReevaluation(j.CompletedSteps) {
		return &Request{
			Type:     journey.TriggerPeriodic,
			Severity: journey.SeverityLow,
			Multiple: j.CompletedSteps,
		}
	}

	// 4. Motivation floor.
	if j.Motivation < MotivationFloor {
		return &Request{
			Type:     journey.TriggerLowMotivation,
			Severity: journey.SeverityMedium,
		}
	}

	return nil
}
