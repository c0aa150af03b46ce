package ranker

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
)

// Score weights, summing to 1. Skill overlap dominates: the whole point of a
// reroute is cashing in progress already made.
const (
	weightSkillOverlap = 0.35
	weightMarketDemand = 0.30
	weightProgression  = 0.20
	weightEntryBarrier = 0.15
)

// demandSaturation is the job count treated as a full-demand market.
const demandSaturation = 5000

// scoreBreakdown holds the per-criterion components of a candidate's score.
type scoreBreakdown struct {
	total        float64
	skillOverlap float64
	marketDemand float64
	progression  float64
	easeOfEntry  float64
}

func scoreCandidate(cand *market.Data, owned []string, current *market.Data, prof *profile.StudentProfile) scoreBreakdown {
	b := scoreBreakdown{
		skillOverlap: skillOverlap(owned, cand.RequiredSkills),
		marketDemand: demandScore(cand),
		progression:  progressionPotential(cand, current),
		easeOfEntry:  barrierScore(cand.EntryBarrier, prof),
	}
	b.total = b.skillOverlap*weightSkillOverlap +
		b.marketDemand*weightMarketDemand +
		b.progression*weightProgression +
		b.easeOfEntry*weightEntryBarrier
	return b
}

// skillOverlap returns the fraction of required skills the learner already
// has. Matching is case-insensitive with substring and fuzzy fallback, so
// "Postgres SQL" satisfies a "SQL" requirement and minor spelling variants
// still count.
func skillOverlap(owned, required []string) float64 {
	if len(required) == 0 {
		return 0
	}
	matched := 0
	for _, req := range required {
		if skillMatches(req, owned) {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

func skillMatches(required string, owned []string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	for _, o := range owned {
		have := strings.ToLower(strings.TrimSpace(o))
		if have == req || strings.Contains(have, req) || strings.Contains(req, have) {
			return true
		}
	}
	// Fuzzy fallback for longer names only: short tokens like "Git" produce
	// too many subsequence false positives.
	if len(req) >= 5 {
		if matches := fuzzy.Find(required, owned); len(matches) > 0 {
			return true
		}
	}
	return false
}

// demandScore normalizes job volume, trend and growth into 0-1.
func demandScore(d *market.Data) float64 {
	base := min(float64(d.ActiveJobs)/demandSaturation, 1.0)

	multiplier := 1.0
	switch d.Trend {
	case market.TrendGrowing:
		multiplier = 1.2
	case market.TrendDeclining:
		multiplier = 0.8
	}

	growthBonus := min(d.GrowthRate/100, 0.2)
	return min(base*multiplier+growthBonus, 1.0)
}

// progressionPotential estimates how well the candidate keeps the door open
// to the current target: skill similarity between the two roles, capped at
// 0.6. When the current role has no snapshot a neutral 0.3 applies.
func progressionPotential(cand, current *market.Data) float64 {
	if current == nil || len(current.RequiredSkills) == 0 {
		return 0.3
	}
	overlap := skillOverlap(cand.RequiredSkills, current.RequiredSkills)
	return overlap * 0.6
}

// barrierScore rewards roles whose entry barrier sits at or below the
// learner's experience. A barrier above it decays the score steeply.
func barrierScore(entryBarrier float64, prof *profile.StudentProfile) float64 {
	level := 0.2
	if prof != nil {
		switch prof.ExperienceLevel {
		case profile.LevelIntermediate:
			level = 0.5
		case profile.LevelAdvanced:
			level = 0.9
		}
	}
	if entryBarrier <= level {
		return 1.0
	}
	return max(1.0-(entryBarrier-level)*1.5, 0.0)
}
