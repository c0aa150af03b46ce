package market

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/pathwise/internal/profile"
)

//go:embed data/roles.json
var defaultDataset []byte

// StaticSource serves snapshots from a fixed JSON dataset. Used for offline
// runs and tests; production deployments point Source at a live service.
type StaticSource struct {
	roles map[string]*Data // keyed by lowercase role name
}

// NewStaticSource parses a dataset of the form {"roles": [Data, ...]}.
func NewStaticSource(raw []byte) (*StaticSource, error) {
	var doc struct {
		Roles []*Data `json:"roles"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse market dataset: %w", err)
	}
	if len(doc.Roles) == 0 {
		return nil, fmt.Errorf("market dataset has no roles")
	}

	roles := make(map[string]*Data, len(doc.Roles))
	for _, d := range doc.Roles {
		roles[strings.ToLower(d.Role)] = d
	}
	return &StaticSource{roles: roles}, nil
}

// NewDefaultSource loads the dataset shipped with the binary.
func NewDefaultSource() (*StaticSource, error) {
	return NewStaticSource(defaultDataset)
}

func (s *StaticSource) Snapshot(_ context.Context, role string) (*Data, error) {
	d, ok := s.roles[strings.ToLower(role)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", role, ErrRoleUnknown)
	}
	return d.clone(), nil
}

// CandidateRoles returns every covered role, fresher-friendly ones only for
// beginners, sorted by name for determinism.
func (s *StaticSource) CandidateRoles(_ context.Context, prof *profile.StudentProfile) ([]string, error) {
	var names []string
	for _, d := range s.roles {
		if prof != nil && prof.ExperienceLevel == profile.LevelBeginner && !d.FresherFriendly {
			continue
		}
		names = append(names, d.Role)
	}
	sort.Strings(names)
	return names, nil
}
