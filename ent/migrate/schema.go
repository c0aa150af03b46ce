// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JourneysColumns holds the columns for the "journeys" table.
	JourneysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "target_role", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JourneysTable holds the schema information for the "journeys" table.
	JourneysTable = &schema.Table{
		Name:       "journeys",
		Columns:    JourneysColumns,
		PrimaryKey: []*schema.Column{JourneysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "journey_status",
				Unique:  false,
				Columns: []*schema.Column{JourneysColumns[3]},
			},
			{
				Name:    "journey_target_role",
				Unique:  false,
				Columns: []*schema.Column{JourneysColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "journey_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "step_number", Type: field.TypeInt, Default: 0},
		{Name: "detail", Type: field.TypeString, Default: ""},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[1]},
			},
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2]},
			},
			{
				Name:    "progressevent_journey_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[3]},
			},
			{
				Name:    "progressevent_kind",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JourneysTable,
		LlmRequestEventsTable,
		ProgressEventsTable,
	}
)

func init() {
}
