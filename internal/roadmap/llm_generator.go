package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
)

// LLMGenerator authors a step plan through the language collaborator with
// schema-constrained output.
type LLMGenerator struct {
	provider llm.Provider
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider}
}

const roadmapSystemPrompt = `You design practical learning roadmaps for
career changers. Produce 5-10 ordered steps from the learner's current
skills to job readiness for the target role. Each step teaches concrete,
nameable skills and carries a realistic hour estimate. Never re-teach a
skill the learner already has. Output JSON only.`

// PlanSchema constrains the generated plan.
var PlanSchema = &llm.Schema{
	Name:        "roadmap-plan",
	Description: "Ordered learning plan toward a target role",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 12,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":           map[string]any{"type": "string"},
						"estimated_hours": map[string]any{"type": "number", "minimum": 1},
						"skills":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"resources":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required":             []any{"title", "estimated_hours", "skills"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"steps"},
		"additionalProperties": false,
	},
}

func (g *LLMGenerator) Generate(ctx context.Context, prof *profile.StudentProfile, role string, m *market.Data, knownSkills []string) ([]StepSpec, error) {
	ctx = llm.WithPurpose(ctx, "roadmap")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: roadmapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoadmapMessage(prof, role, m, knownSkills)},
		},
		Schema:      PlanSchema,
		MaxTokens:   4096,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("roadmap generation: %w", err)
	}

	var out struct {
		Steps []StepSpec `json:"steps"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse roadmap response: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, fmt.Errorf("roadmap generation returned an empty plan")
	}
	return out.Steps, nil
}

func buildRoadmapMessage(prof *profile.StudentProfile, role string, m *market.Data, knownSkills []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TARGET ROLE: %s\n", role)
	if m != nil {
		fmt.Fprintf(&b, "REQUIRED SKILLS: %s\n", strings.Join(m.RequiredSkills, ", "))
		fmt.Fprintf(&b, "ENTRY BARRIER: %.0f%%\n", m.EntryBarrier*100)
	}
	if len(knownSkills) > 0 {
		fmt.Fprintf(&b, "ALREADY KNOWN (do not re-teach): %s\n", strings.Join(knownSkills, ", "))
	}
	if prof != nil {
		fmt.Fprintf(&b, "EXPERIENCE: %s\n", prof.ExperienceLevel)
		if len(prof.Strengths) > 0 {
			fmt.Fprintf(&b, "STRENGTHS: %s\n", strings.Join(prof.Strengths, ", "))
		}
		if len(prof.Gaps) > 0 {
			fmt.Fprintf(&b, "GAPS: %s\n", strings.Join(prof.Gaps, ", "))
		}
	}
	return b.String()
}
