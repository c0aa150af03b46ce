package guidance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/ranker"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/store"
)

// memJourneyRepo is an in-memory JourneyRepo with the same version CAS
// semantics as the SQLite implementation. onLoad, when set, runs after every
// load and can simulate a concurrent writer.
type memJourneyRepo struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]*memRow
	onLoad   func()
	saveErrs int
}

type memRow struct {
	data    []byte
	version int64
}

func newMemJourneyRepo() *memJourneyRepo {
	return &memJourneyRepo{rows: make(map[uuid.UUID]*memRow)}
}

func (r *memJourneyRepo) Create(_ context.Context, j *journey.Journey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := json.Marshal(j)
	if err != nil {
		return err
	}
	r.rows[j.ID] = &memRow{data: b, version: 1}
	return nil
}

func (r *memJourneyRepo) Load(_ context.Context, id uuid.UUID) (*journey.Journey, int64, error) {
	r.mu.Lock()
	row, ok := r.rows[id]
	if !ok {
		r.mu.Unlock()
		return nil, 0, store.ErrJourneyNotFound
	}
	var j journey.Journey
	if err := json.Unmarshal(row.data, &j); err != nil {
		r.mu.Unlock()
		return nil, 0, err
	}
	version := row.version
	r.mu.Unlock()

	if r.onLoad != nil {
		r.onLoad()
	}
	return &j, version, nil
}

func (r *memJourneyRepo) Save(_ context.Context, j *journey.Journey, version int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[j.ID]
	if !ok {
		return store.ErrJourneyNotFound
	}
	if row.version != version {
		r.saveErrs++
		return store.ErrVersionConflict
	}
	b, err := json.Marshal(j)
	if err != nil {
		return err
	}
	row.data = b
	row.version = version + 1
	return nil
}

func (r *memJourneyRepo) List(_ context.Context) ([]store.JourneySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []store.JourneySummary
	for id, row := range r.rows {
		var j journey.Journey
		if err := json.Unmarshal(row.data, &j); err != nil {
			return nil, err
		}
		out = append(out, store.JourneySummary{ID: id, TargetRole: j.TargetRole, Status: string(j.Status)})
	}
	return out, nil
}

// raw returns the stored bytes, for unchanged-on-error assertions.
func (r *memJourneyRepo) raw(id uuid.UUID) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.rows[id].data...)
}

// stubRanker returns fixed alternatives, or an error.
type stubRanker struct {
	alts  []journey.Alternative
	err   error
	calls int
}

func (s *stubRanker) Alternatives(_ context.Context, _ *profile.StudentProfile, _ []string, _ string) ([]journey.Alternative, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.alts, nil
}

// fixedGenerator returns a canned plan keyed by role.
type fixedGenerator struct {
	plans map[string][]roadmap.StepSpec
	err   error
}

func (g *fixedGenerator) Generate(_ context.Context, _ *profile.StudentProfile, role string, _ *market.Data, _ []string) ([]roadmap.StepSpec, error) {
	if g.err != nil {
		return nil, g.err
	}
	plan, ok := g.plans[role]
	if !ok {
		return nil, fmt.Errorf("no canned plan for %q", role)
	}
	return plan, nil
}

func analystPlan() []roadmap.StepSpec {
	steps := make([]roadmap.StepSpec, 8)
	for i := range steps {
		steps[i] = roadmap.StepSpec{
			Title:          fmt.Sprintf("Analyst step %d", i+1),
			EstimatedHours: 20,
			Skills:         []string{fmt.Sprintf("Analyst Skill %d", i+1)},
		}
	}
	return steps
}

func businessPlan() []roadmap.StepSpec {
	return []roadmap.StepSpec{
		{Title: "Requirements gathering", EstimatedHours: 25, Skills: []string{"Requirements"}},
		{Title: "Stakeholder communication", EstimatedHours: 20, Skills: []string{"Communication"}},
		{Title: "Process modeling", EstimatedHours: 30, Skills: []string{"BPMN"}},
	}
}

func defaultAlternatives() []journey.Alternative {
	return []journey.Alternative{
		{Role: "Business Analyst", Score: 0.82, ActiveJobs: 4100},
		{Role: "QA Engineer", Score: 0.74, ActiveJobs: 2800},
		{Role: "Data Scientist", Score: 0.69, ActiveJobs: 3100},
	}
}

type fixture struct {
	svc     *Service
	repo    *memJourneyRepo
	ranker  *stubRanker
	journey *journey.Journey
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newMemJourneyRepo()
	rk := &stubRanker{alts: defaultAlternatives()}
	src, err := market.NewDefaultSource()
	if err != nil {
		t.Fatal(err)
	}
	gen := &fixedGenerator{plans: map[string][]roadmap.StepSpec{
		"Data Analyst":     analystPlan(),
		"Business Analyst": businessPlan(),
	}}
	analyzer := &profile.StaticAnalyzer{Profile: profile.StudentProfile{
		ExperienceLevel: profile.LevelBeginner,
		KnownSkills:     []string{"Excel"},
	}}

	svc := New(repo, nil, analyzer, src, gen, rk, nil)

	j, err := svc.CreateJourney(context.Background(), CreateRequest{
		TargetRole: "Data Analyst",
		Intake:     "spreadsheet power user looking to switch careers",
	})
	if err != nil {
		t.Fatalf("create journey: %v", err)
	}
	return &fixture{svc: svc, repo: repo, ranker: rk, journey: j}
}

func (f *fixture) report(t *testing.T, update ProgressUpdate) *ProgressResult {
	t.Helper()
	res, err := f.svc.ReportProgress(context.Background(), f.journey.ID, update)
	if err != nil {
		t.Fatalf("report %+v: %v", update, err)
	}
	return res
}

func (f *fixture) completeStep(t *testing.T, n int, hours float64) *ProgressResult {
	t.Helper()
	f.report(t, ProgressUpdate{StepNumber: n, Status: journey.StepInProgress})
	return f.report(t, ProgressUpdate{StepNumber: n, Status: journey.StepCompleted, HoursSpent: hours})
}

func (f *fixture) blockStep(t *testing.T, n int, reason string) *ProgressResult {
	t.Helper()
	return f.report(t, ProgressUpdate{StepNumber: n, Status: journey.StepBlocked, BlockerReason: reason})
}

func TestCreateJourney(t *testing.T) {
	f := newFixture(t)

	if f.journey.TotalSteps != 8 {
		t.Errorf("total steps = %d, want 8", f.journey.TotalSteps)
	}
	if f.journey.Profile == nil || f.journey.Profile.ExperienceLevel != profile.LevelBeginner {
		t.Error("profile not captured on the journey")
	}

	loaded, err := f.svc.Get(context.Background(), f.journey.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.TargetRole != "Data Analyst" {
		t.Errorf("persisted target role = %q", loaded.TargetRole)
	}
}

func TestReportProgressUpdatesJourney(t *testing.T) {
	f := newFixture(t)

	res := f.completeStep(t, 1, 12)
	if res.ProgressPercent != 12.5 {
		t.Errorf("progress = %v, want 12.5", res.ProgressPercent)
	}
	res = f.completeStep(t, 2, 8)
	if res.ProgressPercent != 25 {
		t.Errorf("progress = %v, want 25", res.ProgressPercent)
	}
	if res.Reevaluation != nil {
		t.Errorf("unexpected reevaluation: %+v", res.Reevaluation)
	}

	loaded, _ := f.svc.Get(context.Background(), f.journey.ID)
	if loaded.CompletedSteps != 2 {
		t.Errorf("persisted completed steps = %d, want 2", loaded.CompletedSteps)
	}
	if len(loaded.Skills) != 2 {
		t.Errorf("skills banked = %d, want 2", len(loaded.Skills))
	}
}

func TestReportProgressUnknownJourney(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ReportProgress(context.Background(), uuid.New(), ProgressUpdate{
		StepNumber: 1, Status: journey.StepInProgress,
	})
	if !errors.Is(err, store.ErrJourneyNotFound) {
		t.Errorf("err = %v, want ErrJourneyNotFound", err)
	}
}

func TestReportProgressValidationErrorLeavesStoreUntouched(t *testing.T) {
	f := newFixture(t)
	before := f.repo.raw(f.journey.ID)

	_, err := f.svc.ReportProgress(context.Background(), f.journey.ID, ProgressUpdate{
		StepNumber: 1, Status: journey.StepCompleted, HoursSpent: -3,
	})
	if !errors.Is(err, journey.ErrInvalidHours) {
		t.Fatalf("err = %v, want ErrInvalidHours", err)
	}

	if diff := cmp.Diff(string(before), string(f.repo.raw(f.journey.ID))); diff != "" {
		t.Errorf("store changed by rejected report (-want +got):\n%s", diff)
	}
}

func TestRepeatedBlockingScenario(t *testing.T) {
	// Two completions in, the learner hits a wall on step 3 and reports the
	// blocker three times.
	f := newFixture(t)
	f.completeStep(t, 1, 10)
	f.completeStep(t, 2, 10)

	f.report(t, ProgressUpdate{StepNumber: 3, Status: journey.StepInProgress})
	f.blockStep(t, 3, "SQL joins make no sense")
	res := f.blockStep(t, 3, "still lost")
	if res.Reevaluation != nil {
		t.Fatalf("2 attempts should not trigger, got %+v", res.Reevaluation)
	}

	res = f.blockStep(t, 3, "giving up on joins")
	if res.Reevaluation == nil {
		t.Fatal("3rd attempt should trigger a reevaluation")
	}
	r := res.Reevaluation
	if r.Trigger != journey.TriggerRepeatedBlocking || r.Severity != journey.SeverityHigh {
		t.Errorf("trigger = %s/%s, want repeated_blocking/high", r.Trigger, r.Severity)
	}
	if r.StepNumber != 3 {
		t.Errorf("step = %d, want 3", r.StepNumber)
	}
	if len(r.Alternatives) != 3 {
		t.Errorf("alternatives = %d, want 3", len(r.Alternatives))
	}
	if r.Decision != journey.DecisionPending {
		t.Errorf("decision = %q, want pending", r.Decision)
	}

	// The snapshot is persisted with the journey.
	loaded, _ := f.svc.Get(context.Background(), f.journey.ID)
	if loaded.PendingReevaluation() == nil {
		t.Error("pending reevaluation not persisted")
	}
}

func TestRerouteScenario(t *testing.T) {
	// The full arc: 25% progress, repeated blocking, switch to the top
	// alternative. Skills earned on the old plan survive.
	f := newFixture(t)
	f.completeStep(t, 1, 10)
	f.completeStep(t, 2, 10)
	f.report(t, ProgressUpdate{StepNumber: 3, Status: journey.StepInProgress})
	var reeval *journey.Reevaluation
	for _, reason := range []string{"stuck", "still stuck", "hopeless"} {
		if res := f.blockStep(t, 3, reason); res.Reevaluation != nil {
			reeval = res.Reevaluation
		}
	}
	if reeval == nil {
		t.Fatal("expected a reevaluation")
	}

	res, err := f.svc.Reroute(context.Background(), f.journey.ID, reeval.ID, "Business Analyst")
	if err != nil {
		t.Fatalf("reroute: %v", err)
	}

	if res.NewTargetRole != "Business Analyst" {
		t.Errorf("new target = %q", res.NewTargetRole)
	}
	if len(res.NewPlan) != 3 {
		t.Errorf("new plan steps = %d, want 3", len(res.NewPlan))
	}
	want := []string{"Analyst Skill 1", "Analyst Skill 2"}
	if diff := cmp.Diff(want, res.RetainedSkills); diff != "" {
		t.Errorf("retained skills (-want +got):\n%s", diff)
	}

	loaded, _ := f.svc.Get(context.Background(), f.journey.ID)
	if loaded.RerouteCount != 1 {
		t.Errorf("reroute count = %d, want 1", loaded.RerouteCount)
	}
	if loaded.CompletedSteps != 0 {
		t.Errorf("completed steps = %d, want 0 on the new plan", loaded.CompletedSteps)
	}
	if loaded.DesiredRole != "Data Analyst" {
		t.Errorf("desired role = %q, want the original", loaded.DesiredRole)
	}
	if loaded.PendingReevaluation() != nil {
		t.Error("reevaluation should be decided after the switch")
	}
	if n := loaded.UnresolvedBlockerCount(); n != 0 {
		t.Errorf("unresolved blockers = %d, want 0", n)
	}
}

func TestRerouteInvalidChoiceLeavesStoreUntouched(t *testing.T) {
	f := newFixture(t)
	f.report(t, ProgressUpdate{StepNumber: 1, Status: journey.StepInProgress})
	var reeval *journey.Reevaluation
	for _, reason := range []string{"a", "b", "c"} {
		if res := f.blockStep(t, 1, reason); res.Reevaluation != nil {
			reeval = res.Reevaluation
		}
	}
	before := f.repo.raw(f.journey.ID)

	_, err := f.svc.Reroute(context.Background(), f.journey.ID, reeval.ID, "Astronaut")
	if !errors.Is(err, journey.ErrInvalidChoice) {
		t.Fatalf("err = %v, want ErrInvalidChoice", err)
	}

	if diff := cmp.Diff(string(before), string(f.repo.raw(f.journey.ID))); diff != "" {
		t.Errorf("store changed by rejected reroute (-want +got):\n%s", diff)
	}
}

func TestRerouteAlreadyDecided(t *testing.T) {
	f := newFixture(t)
	f.report(t, ProgressUpdate{StepNumber: 1, Status: journey.StepInProgress})
	var reeval *journey.Reevaluation
	for _, reason := range []string{"a", "b", "c"} {
		if res := f.blockStep(t, 1, reason); res.Reevaluation != nil {
			reeval = res.Reevaluation
		}
	}

	if err := f.svc.Continue(context.Background(), f.journey.ID, reeval.ID); err != nil {
		t.Fatalf("continue: %v", err)
	}

	_, err := f.svc.Reroute(context.Background(), f.journey.ID, reeval.ID, "Business Analyst")
	if !errors.Is(err, journey.ErrReevaluationNotPending) {
		t.Errorf("err = %v, want ErrReevaluationNotPending", err)
	}
}

func TestRankerFailureAbortsReport(t *testing.T) {
	f := newFixture(t)
	f.ranker.err = errors.New("market service down")
	f.report(t, ProgressUpdate{StepNumber: 1, Status: journey.StepInProgress})
	f.blockStep(t, 1, "a")
	f.blockStep(t, 1, "b")
	before := f.repo.raw(f.journey.ID)

	_, err := f.svc.ReportProgress(context.Background(), f.journey.ID, ProgressUpdate{
		StepNumber: 1, Status: journey.StepBlocked, BlockerReason: "c",
	})
	if !errors.Is(err, ErrCollaboratorUnavailable) {
		t.Fatalf("err = %v, want ErrCollaboratorUnavailable", err)
	}

	// The blocker report itself must not be half-committed.
	if diff := cmp.Diff(string(before), string(f.repo.raw(f.journey.ID))); diff != "" {
		t.Errorf("store changed by aborted report (-want +got):\n%s", diff)
	}
}

func TestNoAlternativesRecordsContinue(t *testing.T) {
	f := newFixture(t)
	f.ranker.err = ranker.ErrNoAlternatives
	f.report(t, ProgressUpdate{StepNumber: 1, Status: journey.StepInProgress})
	f.blockStep(t, 1, "a")
	f.blockStep(t, 1, "b")

	res := f.blockStep(t, 1, "c")
	if res.Reevaluation == nil {
		t.Fatal("expected a reevaluation record")
	}
	if res.Reevaluation.Decision != journey.DecisionContinue {
		t.Errorf("decision = %q, want continue (nothing to choose)", res.Reevaluation.Decision)
	}
	if len(res.Reevaluation.Alternatives) != 0 {
		t.Errorf("alternatives = %d, want 0", len(res.Reevaluation.Alternatives))
	}

	loaded, _ := f.svc.Get(context.Background(), f.journey.ID)
	if loaded.PendingReevaluation() != nil {
		t.Error("nothing should be pending")
	}
}

func TestConcurrentModificationSurfaces(t *testing.T) {
	f := newFixture(t)

	// A concurrent writer bumps the version between load and save.
	fired := false
	f.repo.onLoad = func() {
		if fired {
			return
		}
		fired = true
		f.repo.mu.Lock()
		f.repo.rows[f.journey.ID].version++
		f.repo.mu.Unlock()
	}

	_, err := f.svc.ReportProgress(context.Background(), f.journey.ID, ProgressUpdate{
		StepNumber: 1, Status: journey.StepInProgress,
	})
	if !errors.Is(err, store.ErrVersionConflict) {
		t.Errorf("err = %v, want ErrVersionConflict", err)
	}
}

func TestPeriodicCheckpointViaService(t *testing.T) {
	f := newFixture(t)

	var reeval *journey.Reevaluation
	for i := 1; i <= 3; i++ {
		if res := f.completeStep(t, i, 5); res.Reevaluation != nil {
			reeval = res.Reevaluation
		}
	}
	if reeval == nil {
		t.Fatal("3rd completion should fire the periodic checkpoint")
	}
	if reeval.Trigger != journey.TriggerPeriodic || reeval.Multiple != 3 {
		t.Errorf("got %s/multiple %d, want periodic/3", reeval.Trigger, reeval.Multiple)
	}

	if err := f.svc.Continue(context.Background(), f.journey.ID, reeval.ID); err != nil {
		t.Fatalf("continue: %v", err)
	}

	// The same multiple does not fire again.
	res := f.blockStep(t, 4, "minor wobble")
	if res.Reevaluation != nil {
		t.Errorf("unexpected reevaluation: %+v", res.Reevaluation)
	}
}

func TestLifecycleOperations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.Pause(ctx, f.journey.ID); err != nil {
		t.Fatal(err)
	}
	j, _ := f.svc.Get(ctx, f.journey.ID)
	if j.Status != journey.StatusPaused {
		t.Errorf("status = %q, want paused", j.Status)
	}

	if err := f.svc.Resume(ctx, f.journey.ID); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.Abandon(ctx, f.journey.ID); err != nil {
		t.Fatal(err)
	}
	j, _ = f.svc.Get(ctx, f.journey.ID)
	if j.Status != journey.StatusAbandoned {
		t.Errorf("status = %q, want abandoned", j.Status)
	}
}
