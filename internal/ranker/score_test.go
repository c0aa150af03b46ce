package ranker

import (
	"math"
	"testing"

	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
)

func TestSkillOverlap(t *testing.T) {
	tests := []struct {
		name     string
		owned    []string
		required []string
		want     float64
	}{
		{"no requirements", []string{"SQL"}, nil, 0},
		{"no skills", nil, []string{"SQL", "Excel"}, 0},
		{"exact", []string{"SQL", "Excel"}, []string{"SQL", "Excel"}, 1},
		{"case insensitive", []string{"sql"}, []string{"SQL", "Excel"}, 0.5},
		{"substring match", []string{"Postgres SQL"}, []string{"SQL"}, 1},
		{"partial", []string{"Python"}, []string{"Python", "Statistics", "SQL", "Excel"}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skillOverlap(tt.owned, tt.required)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("skillOverlap(%v, %v) = %v, want %v", tt.owned, tt.required, got, tt.want)
			}
		})
	}
}

func TestSkillMatchesFuzzy(t *testing.T) {
	// Minor spelling variants of longer names still count.
	if !skillMatches("Javascrpt", []string{"JavaScript"}) {
		t.Error("expected fuzzy match for Javascrpt/JavaScript")
	}
	// Short tokens never go through the fuzzy path.
	if skillMatches("Git", []string{"Graphite"}) {
		t.Error("short token matched via subsequence")
	}
}

func TestDemandScore(t *testing.T) {
	tests := []struct {
		name string
		d    market.Data
		want float64
	}{
		{"saturated stable", market.Data{ActiveJobs: 5000, Trend: market.TrendStable}, 1.0},
		{"half stable", market.Data{ActiveJobs: 2500, Trend: market.TrendStable}, 0.5},
		{"declining", market.Data{ActiveJobs: 2500, Trend: market.TrendDeclining}, 0.4},
		{"growing with bonus", market.Data{ActiveJobs: 2500, Trend: market.TrendGrowing, GrowthRate: 10}, 0.7},
		{"capped at 1", market.Data{ActiveJobs: 9000, Trend: market.TrendGrowing, GrowthRate: 50}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := demandScore(&tt.d)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("demandScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressionPotential(t *testing.T) {
	current := &market.Data{RequiredSkills: []string{"SQL", "Python"}}

	// Candidate covering half the current role's skills.
	cand := &market.Data{RequiredSkills: []string{"SQL", "Excel"}}
	got := progressionPotential(cand, current)
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("progression = %v, want 0.3 (0.5 overlap * 0.6)", got)
	}

	// No snapshot for the current role: neutral default.
	if got := progressionPotential(cand, nil); got != 0.3 {
		t.Errorf("progression without current = %v, want 0.3", got)
	}
}

func TestBarrierScore(t *testing.T) {
	beginner := &profile.StudentProfile{ExperienceLevel: profile.LevelBeginner}
	advanced := &profile.StudentProfile{ExperienceLevel: profile.LevelAdvanced}

	if got := barrierScore(0.2, beginner); got != 1.0 {
		t.Errorf("barrier at level = %v, want 1.0", got)
	}
	// 0.6 barrier vs 0.2 level: 1 - 0.4*1.5 = 0.4
	if got := barrierScore(0.6, beginner); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("barrier above level = %v, want 0.4", got)
	}
	if got := barrierScore(0.9, advanced); got != 1.0 {
		t.Errorf("advanced at hard barrier = %v, want 1.0", got)
	}
	// Way above level floors at 0.
	if got := barrierScore(1.0, beginner); got != 0 {
		t.Errorf("impossible barrier = %v, want 0", got)
	}
	// Nil profile is treated as beginner.
	if got := barrierScore(0.2, nil); got != 1.0 {
		t.Errorf("nil profile = %v, want 1.0", got)
	}
}
