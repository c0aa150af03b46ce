package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathwise/internal/llm"
)

// LLMAnalyzer extracts a structured profile from free-form intake text.
type LLMAnalyzer struct {
	provider llm.Provider
}

// NewLLMAnalyzer creates an analyzer backed by the given provider.
func NewLLMAnalyzer(provider llm.Provider) *LLMAnalyzer {
	return &LLMAnalyzer{provider: provider}
}

const analyzerSystemPrompt = `You are a career counselor's intake assistant.
Extract a structured learner profile from the text. Classify experience as
beginner, intermediate or advanced. List concrete technical skills the
learner already has, their strength areas, and the gaps that stand between
them and professional readiness. Output JSON only.`

// ProfileSchema constrains the analyzer's structured output.
var ProfileSchema = &llm.Schema{
	Name:        "student-profile",
	Description: "Structured learner profile extracted from intake text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"experience_level": map[string]any{
				"type": "string",
				"enum": []any{LevelBeginner, LevelIntermediate, LevelAdvanced},
			},
			"known_skills": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"strengths":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"gaps":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"interests":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []any{"experience_level", "known_skills", "strengths", "gaps"},
		"additionalProperties": false,
	},
}

func (a *LLMAnalyzer) Analyze(ctx context.Context, raw string) (*StudentProfile, error) {
	ctx = llm.WithPurpose(ctx, "profile")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: analyzerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: raw},
		},
		Schema:    ProfileSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("profile analysis: %w", err)
	}

	var p StudentProfile
	if err := json.Unmarshal(resp.Content, &p); err != nil {
		return nil, fmt.Errorf("parse profile response: %w", err)
	}
	return &p, nil
}
