package journey

import (
	"errors"
	"fmt"
)

// Validation errors. All are checked before any mutation is applied, so a
// returned error means the journey is exactly as it was before the call.
var (
	ErrStepNotFound           = errors.New("step not found")
	ErrInvalidTransition      = errors.New("invalid step transition")
	ErrInvalidHours           = errors.New("hours spent must be non-negative")
	ErrReevaluationNotFound   = errors.New("reevaluation not found")
	ErrReevaluationNotPending = errors.New("reevaluation already decided")
	ErrInvalidChoice          = errors.New("chosen role not in reevaluation snapshot")
)

// TransitionError wraps ErrInvalidTransition with the offending states.
type TransitionError struct {
	StepNumber int
	From       StepStatus
	To         StepStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("step %d: cannot transition %s -> %s", e.StepNumber, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
