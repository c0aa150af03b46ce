// Package market is the market-intelligence collaborator boundary: role
// snapshots (demand, salary, required skills, entry barrier) and the
// candidate-role pool the ranker scores. Implementations may call a live
// service; the engine only depends on the Source contract.
package market

import (
	"context"
	"errors"

	"github.com/abhisek/pathwise/internal/profile"
)

// ErrRoleUnknown indicates the source has no data for a role.
var ErrRoleUnknown = errors.New("role not covered by market data")

// Trend values reported in a snapshot.
const (
	TrendGrowing   = "growing"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// Data is a market snapshot for one role.
type Data struct {
	Role            string   `json:"role"`
	ActiveJobs      int      `json:"active_jobs"`
	MedianSalary    int      `json:"median_salary"`
	SalaryRange     string   `json:"salary_range"`
	RequiredSkills  []string `json:"required_skills"`
	EntryBarrier    float64  `json:"entry_barrier"` // 0 (open) .. 1 (hard)
	FresherFriendly bool     `json:"fresher_friendly"`
	Trend           string   `json:"trend"`
	GrowthRate      float64  `json:"growth_rate"` // % year over year
}

// clone returns a copy that shares nothing with the receiver, so callers can
// mutate a snapshot without corrupting cached or embedded state.
func (d *Data) clone() *Data {
	copied := *d
	copied.RequiredSkills = append([]string(nil), d.RequiredSkills...)
	return &copied
}

// Source is the market-intelligence contract.
type Source interface {
	// Snapshot returns current market data for a role, or ErrRoleUnknown.
	Snapshot(ctx context.Context, role string) (*Data, error)

	// CandidateRoles returns the pool of role names worth considering for
	// a learner. The ranker excludes the current target and scores the rest.
	CandidateRoles(ctx context.Context, prof *profile.StudentProfile) ([]string, error)
}
