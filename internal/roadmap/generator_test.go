package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
)

func analystMarket() *market.Data {
	return &market.Data{
		Role:           "Data Analyst",
		RequiredSkills: []string{"SQL", "Excel", "Python", "Statistics"},
		EntryBarrier:   0.3,
	}
}

func TestStaticGeneratorSkipsKnownSkills(t *testing.T) {
	g := &StaticGenerator{}
	steps, err := g.Generate(context.Background(), nil, "Data Analyst", analystMarket(), []string{"sql", "Excel"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Python, Statistics, plus the capstone.
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3: %+v", len(steps), steps)
	}
	for _, step := range steps[:2] {
		for _, skill := range step.Skills {
			if skill == "SQL" || skill == "Excel" {
				t.Errorf("step %q re-teaches known skill %s", step.Title, skill)
			}
		}
		if step.EstimatedHours != 40 {
			t.Errorf("step %q hours = %v, want default 40", step.Title, step.EstimatedHours)
		}
	}

	capstone := steps[len(steps)-1]
	if capstone.EstimatedHours != 60 {
		t.Errorf("capstone hours = %v, want 60", capstone.EstimatedHours)
	}
}

func TestStaticGeneratorWithoutMarketData(t *testing.T) {
	g := &StaticGenerator{}
	steps, err := g.Generate(context.Background(), nil, "Data Analyst", nil, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Only the capstone remains.
	if len(steps) != 1 {
		t.Errorf("got %d steps, want 1", len(steps))
	}
}

func TestLLMGeneratorParsesPlan(t *testing.T) {
	canned, _ := json.Marshal(map[string]any{
		"steps": []map[string]any{
			{"title": "Learn Python basics", "estimated_hours": 40, "skills": []string{"Python"}},
			{"title": "Statistics fundamentals", "estimated_hours": 35, "skills": []string{"Statistics"}},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: canned})
	g := NewLLMGenerator(mock)

	prof := &profile.StudentProfile{ExperienceLevel: profile.LevelBeginner}
	steps, err := g.Generate(context.Background(), prof, "Data Analyst", analystMarket(), []string{"SQL", "Excel"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(steps))
	}
	if steps[0].Title != "Learn Python basics" || steps[0].EstimatedHours != 40 {
		t.Errorf("unexpected first step: %+v", steps[0])
	}

	// The request carried the target role and known skills.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Data Analyst", "SQL", "Excel"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema == nil {
		t.Error("expected a schema-constrained request")
	}
}

func TestLLMGeneratorRejectsEmptyPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"steps": []}`)})
	g := NewLLMGenerator(mock)

	if _, err := g.Generate(context.Background(), nil, "Data Analyst", nil, nil); err == nil {
		t.Error("expected error for empty plan")
	}
}

func TestLLMGeneratorPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewLLMGenerator(mock)

	_, err := g.Generate(context.Background(), nil, "Data Analyst", nil, nil)
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}
