package journey

import (
	"strings"
	"time"
)

// Skill ledger. Append-only: entries are never removed or downgraded by any
// journey operation; only deleting the whole journey deletes them.

// grantSkill appends a skill record unless one with the same name (case
// insensitive) already exists. Re-granting an existing skill changes nothing,
// including its learned timestamp.
func (j *Journey) grantSkill(name string, stepNumber int, now time.Time) {
	if j.HasSkill(name) {
		return
	}
	j.Skills = append(j.Skills, &SkillRecord{
		Name:       name,
		Level:      "practiced",
		StepNumber: stepNumber,
		LearnedAt:  now,
	})
}

// HasSkill reports whether the ledger already holds a skill by name.
func (j *Journey) HasSkill(name string) bool {
	for _, s := range j.Skills {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// SkillNames returns the ledger's skill names in learned order.
func (j *Journey) SkillNames() []string {
	names := make([]string, len(j.Skills))
	for i, s := range j.Skills {
		names[i] = s.Name
	}
	return names
}
