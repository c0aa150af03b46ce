package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProgressEvent records every observable journey mutation for audit:
// step completions, blocker reports, reevaluations and reroutes.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("journey_id", uuid.UUID{}),
		field.String("kind").
			NotEmpty().
			Comment("step_started, step_completed, blocker_reported, reevaluation, reroute"),
		field.Int("step_number").
			Default(0).
			Comment("Step involved, 0 when the event is journey-wide"),
		field.String("detail").
			Default("").
			Comment("Free-form context: blocker reason, trigger type, role switch"),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("journey_id"),
		index.Fields("kind"),
	}
}
