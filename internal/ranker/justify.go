package ranker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
)

// Justifier produces the human-readable case for one alternative.
type Justifier interface {
	Justify(ctx context.Context, currentRole string, current *market.Data, alt journey.Alternative, prof *profile.StudentProfile) (string, error)
}

// LLMJustifier asks the language collaborator for a short, data-grounded
// pitch. Errors propagate to the ranker, which falls back to the template.
type LLMJustifier struct {
	provider llm.Provider
}

// NewLLMJustifier creates a justifier backed by the given provider.
func NewLLMJustifier(provider llm.Provider) *LLMJustifier {
	return &LLMJustifier{provider: provider}
}

const justifySystemPrompt = `You write brief, encouraging career-switch
justifications for learners. Use the specific numbers provided. 3-4
sentences, strategic in tone, never framed as a downgrade. If the data shows
a path back to the original goal, mention it. Output only the justification
text.`

func (j *LLMJustifier) Justify(ctx context.Context, currentRole string, current *market.Data, alt journey.Alternative, prof *profile.StudentProfile) (string, error) {
	ctx = llm.WithPurpose(ctx, "justification")

	var b strings.Builder
	fmt.Fprintf(&b, "ORIGINAL GOAL: %s\n", currentRole)
	if current != nil {
		fmt.Fprintf(&b, "- Active jobs: %d\n- Entry barrier: %.0f%%\n", current.ActiveJobs, current.EntryBarrier*100)
	}
	fmt.Fprintf(&b, "\nALTERNATIVE: %s\n", alt.Role)
	fmt.Fprintf(&b, "- Active jobs: %d\n", alt.ActiveJobs)
	fmt.Fprintf(&b, "- Entry barrier: %.0f%%\n", alt.EntryBarrier*100)
	fmt.Fprintf(&b, "- Skill match: %.0f%%\n", alt.SkillOverlap*100)
	if alt.SalaryRange != "" {
		fmt.Fprintf(&b, "- Salary: %s\n", alt.SalaryRange)
	}
	fmt.Fprintf(&b, "- Path back to %s: %.0f%%\n", currentRole, alt.Progression*100)
	if prof != nil {
		fmt.Fprintf(&b, "\nLEARNER: %s, strengths: %s\n", prof.ExperienceLevel, strings.Join(prof.Strengths, ", "))
	}

	resp, err := j.provider.Generate(ctx, llm.Request{
		System: justifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens:   512,
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("justify %s: %w", alt.Role, err)
	}

	return decodeText(resp.Content), nil
}

// decodeText unwraps a JSON-encoded string response; raw text passes through.
func decodeText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}

// fallbackJustification is the deterministic template used when the language
// collaborator is unavailable.
func fallbackJustification(currentRole string, current *market.Data, alt journey.Alternative) string {
	var b strings.Builder
	if current != nil && current.ActiveJobs > 0 {
		diff := float64(alt.ActiveJobs-current.ActiveJobs) / float64(current.ActiveJobs) * 100
		direction := "more"
		if diff < 0 {
			direction = "fewer"
		}
		fmt.Fprintf(&b, "%s has %d active openings (%.0f%% %s than %s). ",
			alt.Role, alt.ActiveJobs, absFloat(diff), direction, currentRole)
	} else {
		fmt.Fprintf(&b, "%s has %d active openings. ", alt.Role, alt.ActiveJobs)
	}
	fmt.Fprintf(&b, "You already cover %.0f%% of its required skills and its entry barrier is %.0f%%.",
		alt.SkillOverlap*100, alt.EntryBarrier*100)
	if alt.Progression > 0.5 {
		fmt.Fprintf(&b, " It is a natural stepping stone back to %s later.", currentRole)
	}
	return b.String()
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
