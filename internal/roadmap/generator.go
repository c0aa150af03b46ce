// Package roadmap is the roadmap-authoring collaborator boundary: given a
// profile, a target role and its market snapshot, produce the ordered step
// plan a journey tracks. Skills the learner already holds are reflected by
// skipping the steps that would re-teach them.
package roadmap

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
)

// StepSpec is one authored roadmap unit.
type StepSpec struct {
	Title          string   `json:"title"`
	EstimatedHours float64  `json:"estimated_hours"`
	Skills         []string `json:"skills"`
	Resources      []string `json:"resources,omitempty"`
}

// Generator is the roadmap-authoring contract.
type Generator interface {
	Generate(ctx context.Context, prof *profile.StudentProfile, role string, m *market.Data, knownSkills []string) ([]StepSpec, error)
}

// StaticGenerator derives a deterministic plan from the role's required
// skills: one step per skill not already known, then a portfolio capstone.
// Used offline and in tests.
type StaticGenerator struct {
	// HoursPerStep defaults to 40 when zero.
	HoursPerStep float64
	Err          error
}

func (g *StaticGenerator) Generate(_ context.Context, _ *profile.StudentProfile, role string, m *market.Data, knownSkills []string) ([]StepSpec, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	hours := g.HoursPerStep
	if hours == 0 {
		hours = 40
	}

	known := make(map[string]bool, len(knownSkills))
	for _, s := range knownSkills {
		known[strings.ToLower(s)] = true
	}

	var steps []StepSpec
	if m != nil {
		for _, skill := range m.RequiredSkills {
			if known[strings.ToLower(skill)] {
				continue
			}
			steps = append(steps, StepSpec{
				Title:          fmt.Sprintf("Learn %s", skill),
				EstimatedHours: hours,
				Skills:         []string{skill},
			})
		}
	}
	steps = append(steps, StepSpec{
		Title:          fmt.Sprintf("Build a %s portfolio project", role),
		EstimatedHours: hours * 1.5,
		Skills:         []string{fmt.Sprintf("%s Portfolio", role)},
	})
	return steps, nil
}
