package journey

import "time"

// Blocker ledger accessors. Resolving is one-way: a resolved blocker never
// returns to the unresolved pool.

// UnresolvedBlockerCount returns the number of distinct steps that currently
// have an unresolved blocker.
func (j *Journey) UnresolvedBlockerCount() int {
	n := 0
	for _, b := range j.Blockers {
		if !b.Resolved {
			n++
		}
	}
	return n
}

// MaxBlockerAttempts returns the highest attempt count across unresolved
// blockers, 0 when none exist.
func (j *Journey) MaxBlockerAttempts() int {
	maxAttempts := 0
	for _, b := range j.Blockers {
		if !b.Resolved && b.Attempts > maxAttempts {
			maxAttempts = b.Attempts
		}
	}
	return maxAttempts
}

// UnresolvedBlocker returns the open blocker for a step, or nil.
func (j *Journey) UnresolvedBlocker(stepNumber int) *Blocker {
	return j.unresolvedBlocker(stepNumber)
}

func (j *Journey) unresolvedBlocker(stepNumber int) *Blocker {
	for _, b := range j.Blockers {
		if b.StepNumber == stepNumber && !b.Resolved {
			return b
		}
	}
	return nil
}

// ActiveBlockers returns all unresolved blockers in report order.
func (j *Journey) ActiveBlockers() []*Blocker {
	var out []*Blocker
	for _, b := range j.Blockers {
		if !b.Resolved {
			out = append(out, b)
		}
	}
	return out
}

// resolveBlocker marks the step's open blocker resolved, if one exists.
// Completion resolves implicitly; there is no way back.
func (j *Journey) resolveBlocker(stepNumber int, now time.Time) {
	if b := j.unresolvedBlocker(stepNumber); b != nil {
		b.Resolved = true
		b.LastReported = now
	}
}
