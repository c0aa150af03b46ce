package journey

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func altSnapshot() []Alternative {
	return []Alternative{
		{Role: "Business Analyst", Score: 0.82, ActiveJobs: 4100},
		{Role: "QA Engineer", Score: 0.75, ActiveJobs: 2800},
		{Role: "Data Analyst", Score: 0.70, ActiveJobs: 3500},
	}
}

func newPlan() []PlanStep {
	return []PlanStep{
		{Title: "Learn Excel", EstimatedHours: 20, Skills: []string{"Excel"}},
		{Title: "Learn requirements analysis", EstimatedHours: 30, Skills: []string{"Requirements"}},
	}
}

func pendingReevaluation(t *testing.T, j *Journey) *Reevaluation {
	t.Helper()
	r := &Reevaluation{
		Trigger:      TriggerRepeatedBlocking,
		Severity:     SeverityHigh,
		StepNumber:   2,
		Alternatives: altSnapshot(),
	}
	j.RecordReevaluation(r)
	return r
}

func TestRecordReevaluation(t *testing.T) {
	j := newTestJourney(t)
	r := pendingReevaluation(t, j)

	if r.ID == uuid.Nil {
		t.Error("expected an ID to be assigned")
	}
	if r.Decision != DecisionPending {
		t.Errorf("decision = %q, want %q", r.Decision, DecisionPending)
	}
	if r.PlanEpoch != 0 {
		t.Errorf("plan epoch = %d, want 0", r.PlanEpoch)
	}
	if j.ReevaluationCount != 1 {
		t.Errorf("reevaluation count = %d, want 1", j.ReevaluationCount)
	}
	if got := j.PendingReevaluation(); got != r {
		t.Error("PendingReevaluation should return the recorded checkpoint")
	}
}

func TestDecideContinue(t *testing.T) {
	j := newTestJourney(t)
	r := pendingReevaluation(t, j)

	if err := j.DecideContinue(r.ID); err != nil {
		t.Fatalf("continue: %v", err)
	}
	if r.Decision != DecisionContinue {
		t.Errorf("decision = %q, want %q", r.Decision, DecisionContinue)
	}
	if r.DecidedAt == nil {
		t.Error("expected DecidedAt to be set")
	}
	if j.PendingReevaluation() != nil {
		t.Error("no reevaluation should be pending after the decision")
	}

	// A decided reevaluation is terminal.
	if err := j.DecideContinue(r.ID); !errors.Is(err, ErrReevaluationNotPending) {
		t.Errorf("second decision = %v, want ErrReevaluationNotPending", err)
	}
	if _, err := j.ApplyReroute(r.ID, "Business Analyst", "repeated_blocking", newPlan()); !errors.Is(err, ErrReevaluationNotPending) {
		t.Errorf("reroute after continue = %v, want ErrReevaluationNotPending", err)
	}
}

func TestDecideUnknownReevaluation(t *testing.T) {
	j := newTestJourney(t)
	pendingReevaluation(t, j)

	if err := j.DecideContinue(uuid.New()); !errors.Is(err, ErrReevaluationNotFound) {
		t.Errorf("unknown id = %v, want ErrReevaluationNotFound", err)
	}
}

func TestApplyReroute(t *testing.T) {
	j := newTestJourney(t)

	// Earn some skills first; they must survive the switch.
	mustStart(t, j, 1)
	mustComplete(t, j, 1, 10)
	mustStart(t, j, 2)
	if _, err := j.ReportBlocker(2, "stuck on python", 5); err != nil {
		t.Fatal(err)
	}
	r := pendingReevaluation(t, j)
	before := mustClone(t, j)

	rec, err := j.ApplyReroute(r.ID, "Business Analyst", "repeated_blocking", newPlan())
	if err != nil {
		t.Fatalf("reroute: %v", err)
	}

	if j.TargetRole != "Business Analyst" {
		t.Errorf("target role = %q, want Business Analyst", j.TargetRole)
	}
	if j.DesiredRole != "Data Analyst" {
		t.Errorf("desired role = %q, want the original Data Analyst", j.DesiredRole)
	}
	if j.RerouteCount != 1 {
		t.Errorf("reroute count = %d, want 1", j.RerouteCount)
	}
	if j.CompletedSteps != 0 || j.TotalSteps != 2 {
		t.Errorf("counters = %d/%d, want 0/2", j.CompletedSteps, j.TotalSteps)
	}
	for _, step := range j.Steps {
		if step.Status != StepNotStarted {
			t.Errorf("new step %d status = %q, want %q", step.Number, step.Status, StepNotStarted)
		}
	}

	// Skill ledger carried over untouched: records, levels and learned
	// timestamps all survive byte for byte.
	if diff := cmp.Diff([]string{"SQL"}, j.SkillNames()); diff != "" {
		t.Errorf("skills changed across reroute (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before.Skills, j.Skills); diff != "" {
		t.Errorf("skill records changed across reroute (-want +got):\n%s", diff)
	}

	// Old plan archived exactly as it stood, blockers closed out.
	if diff := cmp.Diff(before.Steps, rec.OldPlan); diff != "" {
		t.Errorf("archived plan mismatch (-want +got):\n%s", diff)
	}
	if n := j.UnresolvedBlockerCount(); n != 0 {
		t.Errorf("unresolved blockers = %d, want 0", n)
	}

	if r.Decision != DecisionSwitch {
		t.Errorf("decision = %q, want %q", r.Decision, DecisionSwitch)
	}
	if j.Status != StatusActive {
		t.Errorf("status = %q, want %q", j.Status, StatusActive)
	}
}

func TestApplyRerouteRestoresMotivation(t *testing.T) {
	j := New("Data Analyst", []PlanStep{
		{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"},
	})
	for i := 1; i <= 4; i++ {
		mustStart(t, j, i)
		if _, err := j.ReportBlocker(i, "stuck", 0); err != nil {
			t.Fatal(err)
		}
	}
	if j.Motivation >= 0.5 {
		t.Fatalf("precondition: motivation = %v, want < 0.5", j.Motivation)
	}

	r := pendingReevaluation(t, j)
	if _, err := j.ApplyReroute(r.ID, "QA Engineer", "multiple_blockers", newPlan()); err != nil {
		t.Fatal(err)
	}
	if j.Motivation != 0.5 {
		t.Errorf("motivation = %v, want reset to 0.5", j.Motivation)
	}
}

func TestApplyRerouteInvalidChoiceLeavesJourneyUntouched(t *testing.T) {
	j := newTestJourney(t)
	mustStart(t, j, 1)
	mustComplete(t, j, 1, 8)
	r := pendingReevaluation(t, j)

	before := mustClone(t, j)

	_, err := j.ApplyReroute(r.ID, "Astronaut", "repeated_blocking", newPlan())
	if !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("err = %v, want ErrInvalidChoice", err)
	}

	if diff := cmp.Diff(before, j); diff != "" {
		t.Errorf("journey mutated by rejected reroute (-want +got):\n%s", diff)
	}
}

// mustClone deep-copies a journey through its JSON form, the same round trip
// the store uses.
func mustClone(t *testing.T, j *Journey) *Journey {
	t.Helper()
	b, err := json.Marshal(j)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Journey
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &out
}

func TestHasPeriodicReevaluationKeyedOnPlanEpoch(t *testing.T) {
	j := newTestJourney(t)

	j.RecordReevaluation(&Reevaluation{
		Trigger:      TriggerPeriodic,
		Severity:     SeverityLow,
		Multiple:     3,
		Alternatives: altSnapshot(),
	})
	if !j.HasPeriodicReevaluation(3) {
		t.Error("expected multiple 3 to be recorded for the current plan")
	}
	if j.HasPeriodicReevaluation(6) {
		t.Error("multiple 6 was never recorded")
	}

	// After a reroute the counter restarts; the same multiple may fire
	// again on the new plan.
	pending := j.PendingReevaluation()
	if _, err := j.ApplyReroute(pending.ID, "QA Engineer", "periodic", newPlan()); err != nil {
		t.Fatal(err)
	}
	if j.HasPeriodicReevaluation(3) {
		t.Error("multiple 3 belongs to the archived plan, not the new one")
	}
}
