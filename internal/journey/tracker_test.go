package journey

import (
	"errors"
	"testing"
)

func testPlan() []PlanStep {
	return []PlanStep{
		{Title: "Learn SQL", EstimatedHours: 40, Skills: []string{"SQL"}},
		{Title: "Learn Python", EstimatedHours: 50, Skills: []string{"Python"}},
		{Title: "Build a dashboard", EstimatedHours: 30, Skills: []string{"Dashboards", "SQL"}},
		{Title: "Portfolio project", EstimatedHours: 60, Skills: []string{"Portfolio"}},
	}
}

func newTestJourney(t *testing.T) *Journey {
	t.Helper()
	return New("Data Analyst", testPlan())
}

func TestNewJourney(t *testing.T) {
	j := newTestJourney(t)

	if j.Status != StatusActive {
		t.Errorf("status = %q, want %q", j.Status, StatusActive)
	}
	if j.TotalSteps != 4 {
		t.Errorf("total steps = %d, want 4", j.TotalSteps)
	}
	if j.Motivation != 1.0 {
		t.Errorf("motivation = %v, want 1.0", j.Motivation)
	}
	for i, step := range j.Steps {
		if step.Number != i+1 {
			t.Errorf("step[%d].Number = %d, want %d", i, step.Number, i+1)
		}
		if step.Status != StepNotStarted {
			t.Errorf("step %d status = %q, want %q", step.Number, step.Status, StepNotStarted)
		}
	}
}

func TestStepNotFound(t *testing.T) {
	j := newTestJourney(t)

	for _, number := range []int{0, -1, 5, 100} {
		if err := j.StartStep(number); !errors.Is(err, ErrStepNotFound) {
			t.Errorf("StartStep(%d) = %v, want ErrStepNotFound", number, err)
		}
	}
}

func TestStepLifecycle(t *testing.T) {
	j := newTestJourney(t)

	if err := j.StartStep(1); err != nil {
		t.Fatalf("start: %v", err)
	}
	step, _ := j.Step(1)
	if step.Status != StepInProgress {
		t.Errorf("status = %q, want %q", step.Status, StepInProgress)
	}
	if step.StartedAt == nil {
		t.Error("expected StartedAt to be set")
	}

	if err := j.CompleteStep(1, 12); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if step.Status != StepCompleted {
		t.Errorf("status = %q, want %q", step.Status, StepCompleted)
	}
	if step.HoursSpent != 12 {
		t.Errorf("hours = %v, want 12", step.HoursSpent)
	}
	if step.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}
	if j.CompletedSteps != 1 {
		t.Errorf("completed steps = %d, want 1", j.CompletedSteps)
	}
}

func TestInvalidTransitions(t *testing.T) {
	j := newTestJourney(t)

	// NotStarted cannot be completed directly.
	if err := j.CompleteStep(1, 5); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("complete not-started = %v, want ErrInvalidTransition", err)
	}

	// Completed is terminal.
	mustStart(t, j, 1)
	mustComplete(t, j, 1, 10)

	if err := j.StartStep(1); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("restart completed = %v, want ErrInvalidTransition", err)
	}
	if err := j.CompleteStep(1, 5); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("re-complete = %v, want ErrInvalidTransition", err)
	}
	if _, err := j.ReportBlocker(1, "stuck", 0); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("block completed = %v, want ErrInvalidTransition", err)
	}

	// Double start is rejected.
	mustStart(t, j, 2)
	if err := j.StartStep(2); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double start = %v, want ErrInvalidTransition", err)
	}
}

func TestTransitionErrorDetail(t *testing.T) {
	j := newTestJourney(t)
	mustStart(t, j, 1)
	mustComplete(t, j, 1, 0)

	err := j.StartStep(1)
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if te.StepNumber != 1 || te.From != StepCompleted || te.To != StepInProgress {
		t.Errorf("unexpected detail: %+v", te)
	}
}

func TestInvalidHours(t *testing.T) {
	j := newTestJourney(t)
	mustStart(t, j, 1)

	if err := j.CompleteStep(1, -1); !errors.Is(err, ErrInvalidHours) {
		t.Errorf("complete with negative hours = %v, want ErrInvalidHours", err)
	}
	if _, err := j.ReportBlocker(1, "stuck", -0.5); !errors.Is(err, ErrInvalidHours) {
		t.Errorf("blocker with negative hours = %v, want ErrInvalidHours", err)
	}

	// Rejected calls leave the step untouched.
	step, _ := j.Step(1)
	if step.Status != StepInProgress || step.HoursSpent != 0 {
		t.Errorf("step mutated by rejected call: %+v", step)
	}
}

func TestBlockedRetry(t *testing.T) {
	j := newTestJourney(t)
	mustStart(t, j, 1)

	if _, err := j.ReportBlocker(1, "concept too hard", 3); err != nil {
		t.Fatalf("report blocker: %v", err)
	}
	step, _ := j.Step(1)
	if step.Status != StepBlocked {
		t.Errorf("status = %q, want %q", step.Status, StepBlocked)
	}

	// Blocked -> InProgress retry, then completion.
	if err := j.StartStep(1); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if err := j.CompleteStep(1, 4); err != nil {
		t.Fatalf("complete after retry: %v", err)
	}
	if step.HoursSpent != 7 {
		t.Errorf("hours = %v, want 7 (accumulated)", step.HoursSpent)
	}
}

func TestBlockerAttemptsAccumulate(t *testing.T) {
	j := newTestJourney(t)
	mustStart(t, j, 2)

	for i := 1; i <= 3; i++ {
		b, err := j.ReportBlocker(2, "recursion confusion", 1)
		if err != nil {
			t.Fatalf("report %d: %v", i, err)
		}
		if b.Attempts != i {
			t.Errorf("report %d: attempts = %d, want %d", i, b.Attempts, i)
		}
	}

	// Still a single ledger entry for the step.
	if len(j.Blockers) != 1 {
		t.Errorf("ledger entries = %d, want 1", len(j.Blockers))
	}
	if got := j.MaxBlockerAttempts(); got != 3 {
		t.Errorf("max attempts = %d, want 3", got)
	}
}

func TestBlockerResolvedOnCompletion(t *testing.T) {
	j := newTestJourney(t)
	mustStart(t, j, 1)
	if _, err := j.ReportBlocker(1, "stuck", 0); err != nil {
		t.Fatal(err)
	}

	mustComplete(t, j, 1, 5)

	if n := j.UnresolvedBlockerCount(); n != 0 {
		t.Errorf("unresolved count = %d, want 0", n)
	}
	if !j.Blockers[0].Resolved {
		t.Error("expected blocker marked resolved")
	}

	// A fresh blocker on the step would be a new entry, but the step is
	// completed so reports are rejected outright.
	if _, err := j.ReportBlocker(1, "again", 0); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("blocker on completed step = %v, want ErrInvalidTransition", err)
	}
}

func TestSkillsGrantedOnceAcrossSteps(t *testing.T) {
	j := newTestJourney(t)

	// Steps 1 and 3 both teach SQL.
	mustStart(t, j, 1)
	mustComplete(t, j, 1, 10)
	mustStart(t, j, 3)
	mustComplete(t, j, 3, 10)

	names := j.SkillNames()
	count := 0
	for _, n := range names {
		if n == "SQL" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("SQL granted %d times, want 1", count)
	}
	if !j.HasSkill("sql") {
		t.Error("HasSkill should match case-insensitively")
	}
}

func TestMotivationDecayAndRecovery(t *testing.T) {
	j := newTestJourney(t)
	mustStart(t, j, 1)
	mustStart(t, j, 2)

	if _, err := j.ReportBlocker(1, "stuck", 0); err != nil {
		t.Fatal(err)
	}
	if j.Motivation != 0.8 {
		t.Errorf("after 1 blocker: motivation = %v, want 0.8", j.Motivation)
	}

	if _, err := j.ReportBlocker(2, "stuck too", 0); err != nil {
		t.Fatal(err)
	}
	if j.Motivation != 0.6 {
		t.Errorf("after 2 blockers: motivation = %v, want 0.6", j.Motivation)
	}

	// Completion restores some momentum and resolves step 1's blocker.
	mustComplete(t, j, 1, 2)
	if j.Motivation != 0.7 {
		t.Errorf("after completion: motivation = %v, want 0.7", j.Motivation)
	}
}

func TestMotivationFloor(t *testing.T) {
	j := New("Data Analyst", []PlanStep{
		{Title: "a"}, {Title: "b"}, {Title: "c"},
		{Title: "d"}, {Title: "e"}, {Title: "f"},
	})
	for i := 1; i <= 6; i++ {
		mustStart(t, j, i)
		if _, err := j.ReportBlocker(i, "stuck", 0); err != nil {
			t.Fatal(err)
		}
	}
	if j.Motivation != 0.1 {
		t.Errorf("motivation = %v, want floor 0.1", j.Motivation)
	}
}

func TestJourneyCompletion(t *testing.T) {
	j := newTestJourney(t)
	for i := 1; i <= 4; i++ {
		mustStart(t, j, i)
		mustComplete(t, j, i, 10)
	}

	if j.Status != StatusCompleted {
		t.Errorf("status = %q, want %q", j.Status, StatusCompleted)
	}
	if got := j.ProgressPercent(); got != 100 {
		t.Errorf("progress = %v, want 100", got)
	}
}

func TestProgressPercent(t *testing.T) {
	j := newTestJourney(t)
	if got := j.ProgressPercent(); got != 0 {
		t.Errorf("initial progress = %v, want 0", got)
	}

	mustStart(t, j, 1)
	mustComplete(t, j, 1, 10)
	if got := j.ProgressPercent(); got != 25 {
		t.Errorf("progress = %v, want 25", got)
	}
}

func TestLifecycleTransitions(t *testing.T) {
	j := newTestJourney(t)

	j.Pause()
	if j.Status != StatusPaused {
		t.Errorf("status = %q, want %q", j.Status, StatusPaused)
	}
	j.Resume()
	if j.Status != StatusActive {
		t.Errorf("status = %q, want %q", j.Status, StatusActive)
	}
	j.Abandon()
	if j.Status != StatusAbandoned {
		t.Errorf("status = %q, want %q", j.Status, StatusAbandoned)
	}

	// Pause/Resume have no effect on an abandoned journey.
	j.Pause()
	if j.Status != StatusAbandoned {
		t.Errorf("pause on abandoned changed status to %q", j.Status)
	}
}

func mustStart(t *testing.T, j *Journey, number int) {
	t.Helper()
	if err := j.StartStep(number); err != nil {
		t.Fatalf("start step %d: %v", number, err)
	}
}

func mustComplete(t *testing.T, j *Journey, number int, hours float64) {
	t.Helper()
	if err := j.CompleteStep(number, hours); err != nil {
		t.Fatalf("complete step %d: %v", number, err)
	}
}
