package ranker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
)

// fakeSource serves a fixed role set without touching the embedded dataset.
type fakeSource struct {
	roles map[string]*market.Data
	err   error
}

func (f *fakeSource) Snapshot(_ context.Context, role string) (*market.Data, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.roles[strings.ToLower(role)]
	if !ok {
		return nil, market.ErrRoleUnknown
	}
	copied := *d
	return &copied, nil
}

func (f *fakeSource) CandidateRoles(_ context.Context, _ *profile.StudentProfile) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var names []string
	for _, d := range f.roles {
		names = append(names, d.Role)
	}
	return names, nil
}

func sourceWith(roles ...*market.Data) *fakeSource {
	m := make(map[string]*market.Data, len(roles))
	for _, d := range roles {
		m[strings.ToLower(d.Role)] = d
	}
	return &fakeSource{roles: m}
}

func role(name string, jobs int, skills ...string) *market.Data {
	return &market.Data{
		Role:           name,
		ActiveJobs:     jobs,
		RequiredSkills: skills,
		Trend:          market.TrendStable,
		EntryBarrier:   0.2,
	}
}

func beginnerProfile() *profile.StudentProfile {
	return &profile.StudentProfile{ExperienceLevel: profile.LevelBeginner}
}

func TestAlternativesExcludesCurrentRole(t *testing.T) {
	src := sourceWith(
		role("Data Analyst", 3000, "SQL"),
		role("Business Analyst", 3000, "SQL"),
		role("QA Engineer", 3000, "SQL"),
	)
	r := New(src, nil, nil)

	alts, err := r.Alternatives(context.Background(), beginnerProfile(), []string{"SQL"}, "data analyst")
	if err != nil {
		t.Fatalf("alternatives: %v", err)
	}
	for _, alt := range alts {
		if strings.EqualFold(alt.Role, "Data Analyst") {
			t.Errorf("current role %q offered as its own alternative", alt.Role)
		}
	}
	if len(alts) != 2 {
		t.Errorf("got %d alternatives, want 2", len(alts))
	}
}

func TestAlternativesOrderingAndTruncation(t *testing.T) {
	// Same skills and barrier; job volume alone separates the scores.
	src := sourceWith(
		role("Data Analyst", 1000, "SQL"),
		role("Role A", 4000, "SQL"),
		role("Role B", 3000, "SQL"),
		role("Role C", 2000, "SQL"),
		role("Role D", 1000, "SQL"),
	)
	r := New(src, nil, nil)

	alts, err := r.Alternatives(context.Background(), beginnerProfile(), []string{"SQL"}, "Data Analyst")
	if err != nil {
		t.Fatalf("alternatives: %v", err)
	}

	if len(alts) != TopN {
		t.Fatalf("got %d alternatives, want %d", len(alts), TopN)
	}
	want := []string{"Role A", "Role B", "Role C"}
	for i, name := range want {
		if alts[i].Role != name {
			t.Errorf("alts[%d] = %q, want %q", i, alts[i].Role, name)
		}
	}
	for i := 1; i < len(alts); i++ {
		if alts[i-1].Score < alts[i].Score {
			t.Errorf("scores not descending at %d: %v < %v", i, alts[i-1].Score, alts[i].Score)
		}
	}
}

func TestAlternativesTieBreaks(t *testing.T) {
	// Identical scores: demand breaks the tie, then name.
	src := sourceWith(
		role("Data Analyst", 1000, "SQL"),
		role("Zeta Role", 3000, "SQL"),
		role("Alpha Role", 3000, "SQL"),
		role("Mid Role", 2000, "SQL", "Obscure Skill Nobody Has"),
	)
	r := New(src, nil, nil)

	alts, err := r.Alternatives(context.Background(), beginnerProfile(), []string{"SQL"}, "Data Analyst")
	if err != nil {
		t.Fatalf("alternatives: %v", err)
	}

	if alts[0].Role != "Alpha Role" || alts[1].Role != "Zeta Role" {
		t.Errorf("tied scores should order alphabetically: got %q, %q", alts[0].Role, alts[1].Role)
	}
}

func TestAlternativesNoCandidates(t *testing.T) {
	src := sourceWith(role("Data Analyst", 3000, "SQL"))
	r := New(src, nil, nil)

	_, err := r.Alternatives(context.Background(), beginnerProfile(), []string{"SQL"}, "Data Analyst")
	if !errors.Is(err, ErrNoAlternatives) {
		t.Errorf("err = %v, want ErrNoAlternatives", err)
	}
}

func TestAlternativesSourceFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("market service down")}
	r := New(src, nil, nil)

	_, err := r.Alternatives(context.Background(), beginnerProfile(), nil, "Data Analyst")
	if err == nil || errors.Is(err, ErrNoAlternatives) {
		t.Errorf("expected a hard failure, got %v", err)
	}
}

func TestJustificationFallbackTemplate(t *testing.T) {
	current := role("Data Analyst", 2000, "SQL")
	alt := journey.Alternative{
		Role:         "Business Analyst",
		ActiveJobs:   3000,
		SkillOverlap: 0.5,
		EntryBarrier: 0.3,
		Progression:  0.6,
	}

	text := fallbackJustification("Data Analyst", current, alt)
	for _, want := range []string{"Business Analyst", "3000", "50% more", "50%", "30%", "stepping stone"} {
		if !strings.Contains(text, want) {
			t.Errorf("justification missing %q:\n%s", want, text)
		}
	}

	// Without current-role data the comparison clause is dropped.
	text = fallbackJustification("Data Analyst", nil, alt)
	if strings.Contains(text, "more than") || strings.Contains(text, "fewer than") {
		t.Errorf("unexpected comparison without current data:\n%s", text)
	}
}

type failingJustifier struct{}

func (failingJustifier) Justify(context.Context, string, *market.Data, journey.Alternative, *profile.StudentProfile) (string, error) {
	return "", errors.New("llm unavailable")
}

func TestJustifierFailureDegradesToTemplate(t *testing.T) {
	src := sourceWith(
		role("Data Analyst", 2000, "SQL"),
		role("Business Analyst", 3000, "SQL"),
	)
	r := New(src, failingJustifier{}, nil)

	alts, err := r.Alternatives(context.Background(), beginnerProfile(), []string{"SQL"}, "Data Analyst")
	if err != nil {
		t.Fatalf("alternatives: %v", err)
	}
	if len(alts) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(alts))
	}
	if alts[0].Justification == "" {
		t.Error("expected template justification despite justifier failure")
	}
}
