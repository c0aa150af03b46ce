// Package ranker scores candidate roles as alternatives to a journey's
// current target. Scoring is pure rule logic over market snapshots; only the
// per-alternative justification text comes from the language collaborator,
// with a deterministic template fallback.
package ranker

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/pathwise/internal/journey"
	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
)

// ErrNoAlternatives indicates the candidate pool was empty after excluding
// the current target role. Callers treat it as "continue current path only".
var ErrNoAlternatives = errors.New("no alternative roles found")

// TopN is how many alternatives a reevaluation snapshot carries.
const TopN = 3

// snapshotConcurrency bounds parallel market fetches.
const snapshotConcurrency = 4

// Ranker produces ranked alternatives for a journey.
type Ranker struct {
	market    market.Source
	justifier Justifier
	log       *zap.Logger
}

// New creates a Ranker. justifier may be nil; the template fallback is then
// used for every alternative.
func New(src market.Source, justifier Justifier, log *zap.Logger) *Ranker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ranker{market: src, justifier: justifier, log: log}
}

// Alternatives returns the top candidates ordered by descending match score.
// Ties break on higher market demand, then alphabetical role name so the
// ranking is deterministic.
func (r *Ranker) Alternatives(ctx context.Context, prof *profile.StudentProfile, ownedSkills []string, currentRole string) ([]journey.Alternative, error) {
	pool, err := r.market.CandidateRoles(ctx, prof)
	if err != nil {
		return nil, err
	}

	// The current target is never its own alternative.
	candidates := pool[:0:0]
	for _, role := range pool {
		if !strings.EqualFold(role, currentRole) {
			candidates = append(candidates, role)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoAlternatives
	}

	current, err := r.currentSnapshot(ctx, currentRole)
	if err != nil {
		return nil, err
	}

	snapshots, err := r.fetchSnapshots(ctx, candidates)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, ErrNoAlternatives
	}

	alts := make([]journey.Alternative, 0, len(snapshots))
	for _, d := range snapshots {
		b := scoreCandidate(d, ownedSkills, current, prof)
		alts = append(alts, journey.Alternative{
			Role:            d.Role,
			Score:           b.total,
			SkillOverlap:    b.skillOverlap,
			MarketDemand:    b.marketDemand,
			Progression:     b.progression,
			EaseOfEntry:     b.easeOfEntry,
			ActiveJobs:      d.ActiveJobs,
			SalaryRange:     d.SalaryRange,
			EntryBarrier:    d.EntryBarrier,
			FresherFriendly: d.FresherFriendly,
		})
	}

	sort.Slice(alts, func(i, k int) bool {
		if alts[i].Score != alts[k].Score {
			return alts[i].Score > alts[k].Score
		}
		if alts[i].ActiveJobs != alts[k].ActiveJobs {
			return alts[i].ActiveJobs > alts[k].ActiveJobs
		}
		return alts[i].Role < alts[k].Role
	})

	if len(alts) > TopN {
		alts = alts[:TopN]
	}

	r.justifyAll(ctx, alts, currentRole, current, prof)
	return alts, nil
}

// currentSnapshot fetches the current role's market data for the progression
// term. A role missing from the dataset is fine; an unreachable source is not.
func (r *Ranker) currentSnapshot(ctx context.Context, role string) (*market.Data, error) {
	d, err := r.market.Snapshot(ctx, role)
	if errors.Is(err, market.ErrRoleUnknown) {
		return nil, nil
	}
	return d, err
}

// fetchSnapshots pulls candidate snapshots concurrently, dropping roles the
// source does not cover.
func (r *Ranker) fetchSnapshots(ctx context.Context, roles []string) ([]*market.Data, error) {
	results := make([]*market.Data, len(roles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotConcurrency)
	for i, role := range roles {
		g.Go(func() error {
			d, err := r.market.Snapshot(gctx, role)
			if errors.Is(err, market.ErrRoleUnknown) {
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := results[:0]
	for _, d := range results {
		if d != nil {
			out = append(out, d)
		}
	}
	return out, nil
}

// justifyAll fills in justification text for each alternative. Language
// collaborator failures degrade to the template; they never fail the ranking.
func (r *Ranker) justifyAll(ctx context.Context, alts []journey.Alternative, currentRole string, current *market.Data, prof *profile.StudentProfile) {
	for i := range alts {
		if r.justifier != nil {
			text, err := r.justifier.Justify(ctx, currentRole, current, alts[i], prof)
			if err == nil {
				alts[i].Justification = text
				continue
			}
			r.log.Warn("justification fell back to template",
				zap.String("role", alts[i].Role), zap.Error(err))
		}
		alts[i].Justification = fallbackJustification(currentRole, current, alts[i])
	}
}
