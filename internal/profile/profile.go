// Package profile defines the learner profile consumed by the ranker and the
// roadmap generator, and the analyzer collaborator that produces it from raw
// intake text at initial assessment.
package profile

import "context"

// Experience levels recognized by the scoring model.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// StudentProfile captures what is known about a learner.
type StudentProfile struct {
	ExperienceLevel string   `json:"experience_level"`
	KnownSkills     []string `json:"known_skills"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Interests       []string `json:"interests,omitempty"`
}

// Analyzer is the profile-analysis collaborator: raw intake text in,
// structured profile out. Used once, at journey creation.
type Analyzer interface {
	Analyze(ctx context.Context, raw string) (*StudentProfile, error)
}

// StaticAnalyzer returns a fixed profile. Used in tests and offline mode.
type StaticAnalyzer struct {
	Profile StudentProfile
	Err     error
}

func (a *StaticAnalyzer) Analyze(_ context.Context, _ string) (*StudentProfile, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	p := a.Profile
	return &p, nil
}
