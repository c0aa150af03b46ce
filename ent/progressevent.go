// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/progressevent"
	"github.com/google/uuid"
)

// ProgressEvent is the model entity for the ProgressEvent schema.
type ProgressEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// JourneyID holds the value of the "journey_id" field.
	JourneyID uuid.UUID `json:"journey_id,omitempty"`
	// step_started, step_completed, blocker_reported, reevaluation, reroute
	Kind string `json:"kind,omitempty"`
	// Step involved, 0 when the event is journey-wide
	StepNumber int `json:"step_number,omitempty"`
	// Free-form context: blocker reason, trigger type, role switch
	Detail       string `json:"detail,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressevent.FieldID, progressevent.FieldSequence, progressevent.FieldStepNumber:
			values[i] = new(sql.NullInt64)
		case progressevent.FieldKind, progressevent.FieldDetail:
			values[i] = new(sql.NullString)
		case progressevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case progressevent.FieldJourneyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressEvent fields.
func (_m *ProgressEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progressevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case progressevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case progressevent.FieldJourneyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field journey_id", values[i])
			} else if value != nil {
				_m.JourneyID = *value
			}
		case progressevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case progressevent.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case progressevent.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressEvent.
// Note that you need to call ProgressEvent.Unwrap() before calling this method if this ProgressEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressEvent) Update() *ProgressEventUpdateOne {
	return NewProgressEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressEvent) Unwrap() *ProgressEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("journey_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JourneyID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("step_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNumber))
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteByte(')')
	return builder.String()
}

// ProgressEvents is a parsable slice of ProgressEvent.
type ProgressEvents []*ProgressEvent
