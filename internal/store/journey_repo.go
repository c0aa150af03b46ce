package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent"
	entjourney "github.com/abhisek/pathwise/ent/journey"
	"github.com/abhisek/pathwise/internal/journey"
)

// journeyRepo implements JourneyRepo using the ent client.
type journeyRepo struct {
	client *ent.Client
}

func (r *journeyRepo) Create(ctx context.Context, j *journey.Journey) error {
	dataMap, err := journeyToMap(j)
	if err != nil {
		return fmt.Errorf("marshal journey: %w", err)
	}

	_, err = r.client.Journey.Create().
		SetID(j.ID).
		SetTargetRole(j.TargetRole).
		SetStatus(string(j.Status)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create journey: %w", err)
	}
	return nil
}

func (r *journeyRepo) Load(ctx context.Context, id uuid.UUID) (*journey.Journey, int64, error) {
	row, err := r.client.Journey.Query().
		Where(entjourney.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, ErrJourneyNotFound
		}
		return nil, 0, fmt.Errorf("query journey: %w", err)
	}

	j, err := entToJourney(row)
	if err != nil {
		return nil, 0, err
	}
	return j, row.Version, nil
}

// Save is the compare-and-swap write: the update matches on (id, version)
// and bumps version by one. Zero affected rows means another writer won.
func (r *journeyRepo) Save(ctx context.Context, j *journey.Journey, version int64) error {
	dataMap, err := journeyToMap(j)
	if err != nil {
		return fmt.Errorf("marshal journey: %w", err)
	}

	n, err := r.client.Journey.Update().
		Where(
			entjourney.ID(j.ID),
			entjourney.Version(version),
		).
		SetVersion(version + 1).
		SetTargetRole(j.TargetRole).
		SetStatus(string(j.Status)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save journey: %w", err)
	}
	if n == 0 {
		exists, err := r.client.Journey.Query().
			Where(entjourney.ID(j.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check journey exists: %w", err)
		}
		if !exists {
			return ErrJourneyNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

func (r *journeyRepo) List(ctx context.Context) ([]JourneySummary, error) {
	rows, err := r.client.Journey.Query().
		Order(ent.Desc(entjourney.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journeys: %w", err)
	}

	out := make([]JourneySummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, JourneySummary{
			ID:         row.ID,
			TargetRole: row.TargetRole,
			Status:     row.Status,
			UpdatedAt:  row.UpdatedAt,
		})
	}
	return out, nil
}

// journeyToMap converts the aggregate to map[string]any for ent JSON storage.
func journeyToMap(j *journey.Journey) (map[string]any, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entToJourney converts an ent row back to the aggregate.
func entToJourney(row *ent.Journey) (*journey.Journey, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var j journey.Journey
	if err := json.Unmarshal(b, &j); err != nil {
		return nil, fmt.Errorf("unmarshal journey data: %w", err)
	}
	return &j, nil
}
