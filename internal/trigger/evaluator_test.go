package trigger

import (
	"testing"

	"github.com/abhisek/pathwise/internal/journey"
)

func plan(n int) []journey.PlanStep {
	steps := make([]journey.PlanStep, n)
	for i := range steps {
		steps[i] = journey.PlanStep{Title: "step", EstimatedHours: 10}
	}
	return steps
}

func activeJourney(t *testing.T, steps int) *journey.Journey {
	t.Helper()
	return journey.New("Data Analyst", plan(steps))
}

func block(t *testing.T, j *journey.Journey, step int, times int) {
	t.Helper()
	if err := j.StartStep(step); err != nil {
		t.Fatalf("start %d: %v", step, err)
	}
	for i := 0; i < times; i++ {
		if _, err := j.ReportBlocker(step, "stuck", 0); err != nil {
			t.Fatalf("block %d: %v", step, err)
		}
	}
}

func complete(t *testing.T, j *journey.Journey, step int) {
	t.Helper()
	if err := j.StartStep(step); err != nil {
		t.Fatalf("start %d: %v", step, err)
	}
	if err := j.CompleteStep(step, 1); err != nil {
		t.Fatalf("complete %d: %v", step, err)
	}
}

func TestNoTriggerOnQuietJourney(t *testing.T) {
	j := activeJourney(t, 8)
	complete(t, j, 1)

	if req := Evaluate(j, 0); req != nil {
		t.Errorf("expected no trigger, got %+v", req)
	}
}

func TestRepeatedBlockingFiresAtThreshold(t *testing.T) {
	j := activeJourney(t, 8)

	block(t, j, 2, 2)
	if req := Evaluate(j, 2); req != nil {
		t.Errorf("2 attempts should not fire, got %+v", req)
	}

	if _, err := j.ReportBlocker(2, "still stuck", 0); err != nil {
		t.Fatal(err)
	}
	req := Evaluate(j, 2)
	if req == nil {
		t.Fatal("3rd attempt should fire")
	}
	if req.Type != journey.TriggerRepeatedBlocking {
		t.Errorf("type = %q, want repeated_blocking", req.Type)
	}
	if req.Severity != journey.SeverityHigh {
		t.Errorf("severity = %q, want high", req.Severity)
	}
	if req.StepNumber != 2 {
		t.Errorf("step = %d, want 2", req.StepNumber)
	}
}

func TestMultipleBlockersFires(t *testing.T) {
	j := activeJourney(t, 8)
	block(t, j, 1, 1)
	block(t, j, 2, 1)

	req := Evaluate(j, 2)
	if req == nil {
		t.Fatal("2 blocked steps should fire")
	}
	if req.Type != journey.TriggerMultipleBlockers {
		t.Errorf("type = %q, want multiple_blockers", req.Type)
	}
	if req.Severity != journey.SeverityHigh {
		t.Errorf("severity = %q, want high", req.Severity)
	}
}

func TestRepeatedBlockingWinsOverMultipleBlockers(t *testing.T) {
	j := activeJourney(t, 8)
	block(t, j, 1, 1)
	block(t, j, 2, 3)

	req := Evaluate(j, 2)
	if req == nil {
		t.Fatal("expected a trigger")
	}
	if req.Type != journey.TriggerRepeatedBlocking {
		t.Errorf("type = %q, want repeated_blocking to take precedence", req.Type)
	}
}

func TestPeriodicFiresEveryThirdCompletion(t *testing.T) {
	j := activeJourney(t, 8)

	complete(t, j, 1)
	complete(t, j, 2)
	if req := Evaluate(j, 0); req != nil {
		t.Errorf("2 completions should not fire, got %+v", req)
	}

	complete(t, j, 3)
	req := Evaluate(j, 0)
	if req == nil {
		t.Fatal("3rd completion should fire")
	}
	if req.Type != journey.TriggerPeriodic {
		t.Errorf("type = %q, want periodic", req.Type)
	}
	if req.Severity != journey.SeverityLow {
		t.Errorf("severity = %q, want low", req.Severity)
	}
	if req.Multiple != 3 {
		t.Errorf("multiple = %d, want 3", req.Multiple)
	}
}

func TestPeriodicIdempotentPerMultiple(t *testing.T) {
	j := activeJourney(t, 8)
	for i := 1; i <= 3; i++ {
		complete(t, j, i)
	}

	req := Evaluate(j, 0)
	if req == nil {
		t.Fatal("expected periodic trigger")
	}
	record(t, j, req)
	decideContinue(t, j)

	// The same multiple does not fire again on a later mutation.
	if req := Evaluate(j, 0); req != nil {
		t.Errorf("multiple 3 already handled, got %+v", req)
	}

	// The next multiple does.
	for i := 4; i <= 6; i++ {
		complete(t, j, i)
	}
	req = Evaluate(j, 0)
	if req == nil || req.Multiple != 6 {
		t.Fatalf("expected periodic at multiple 6, got %+v", req)
	}
}

func TestBlockerRulesPrecedeLowMotivation(t *testing.T) {
	j := activeJourney(t, 8)

	// Three concurrent blockers push motivation to 0.4; the blocker rule
	// still wins.
	block(t, j, 1, 1)
	block(t, j, 2, 1)
	block(t, j, 3, 1)
	if j.Motivation >= MotivationFloor {
		t.Fatalf("precondition: motivation = %v", j.Motivation)
	}

	req := Evaluate(j, 3)
	if req == nil || req.Type != journey.TriggerMultipleBlockers {
		t.Fatalf("expected multiple_blockers first, got %+v", req)
	}
}

func TestLowMotivationFires(t *testing.T) {
	j := activeJourney(t, 8)

	// One unresolved blocker trips neither blocker rule; with the score
	// below the floor, the motivation rule fires.
	block(t, j, 1, 1)
	j.Motivation = 0.4

	req := Evaluate(j, 1)
	if req == nil {
		t.Fatal("expected low_motivation to fire")
	}
	if req.Type != journey.TriggerLowMotivation {
		t.Errorf("type = %q, want low_motivation", req.Type)
	}
	if req.Severity != journey.SeverityMedium {
		t.Errorf("severity = %q, want medium", req.Severity)
	}
}

func TestPendingReevaluationSuppressesNewTriggers(t *testing.T) {
	j := activeJourney(t, 8)
	block(t, j, 1, 3)

	req := Evaluate(j, 1)
	if req == nil {
		t.Fatal("expected repeated_blocking")
	}
	record(t, j, req)

	// More trouble arrives while the decision is outstanding.
	block(t, j, 2, 1)
	if req := Evaluate(j, 2); req != nil {
		t.Errorf("pending decision should suppress new triggers, got %+v", req)
	}
}

func record(t *testing.T, j *journey.Journey, req *Request) {
	t.Helper()
	if req == nil {
		t.Fatal("no trigger request to record")
	}
	j.RecordReevaluation(&journey.Reevaluation{
		Trigger:    req.Type,
		Severity:   req.Severity,
		StepNumber: req.StepNumber,
		Multiple:   req.Multiple,
		Alternatives: []journey.Alternative{
			{Role: "Business Analyst", Score: 0.8},
		},
	})
}

func decideContinue(t *testing.T, j *journey.Journey) {
	t.Helper()
	pending := j.PendingReevaluation()
	if pending == nil {
		t.Fatal("no pending reevaluation")
	}
	if err := j.DecideContinue(pending.ID); err != nil {
		t.Fatal(err)
	}
}
