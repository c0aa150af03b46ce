package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Journey is the aggregate root row: the full aggregate state lives in the
// data JSON document, while version carries the optimistic-concurrency token
// and a few columns are lifted out for querying.
type Journey struct {
	ent.Schema
}

func (Journey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Comment("Journey identifier"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic-concurrency token, incremented on every save"),
		field.String("target_role").
			NotEmpty().
			Comment("Current target role (denormalized for listing)"),
		field.String("status").
			NotEmpty().
			Comment("active, paused, completed, abandoned"),
		field.JSON("data", map[string]any{}).
			Comment("Full journey aggregate as JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Journey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("target_role"),
	}
}
