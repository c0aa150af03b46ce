package guidance

import (
	"errors"
	"fmt"
)

// ErrCollaboratorUnavailable is the sentinel all collaborator failures wrap:
// profile analysis, market intelligence, roadmap authoring or ranking failed
// and the operation was aborted with the journey unchanged.
var ErrCollaboratorUnavailable = errors.New("collaborator unavailable")

// CollaboratorError identifies which collaborator failed.
type CollaboratorError struct {
	Name string // profile, market, roadmap, ranker
	Err  error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s collaborator: %v", e.Name, e.Err)
}

func (e *CollaboratorError) Unwrap() []error {
	return []error{ErrCollaboratorUnavailable, e.Err}
}

func collaboratorErr(name string, err error) error {
	return &CollaboratorError{Name: name, Err: err}
}
