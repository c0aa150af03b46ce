// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/journey"
	"github.com/google/uuid"
)

// Journey is the model entity for the Journey schema.
type Journey struct {
	config `json:"-"`
	// ID of the ent.
	// Journey identifier
	ID uuid.UUID `json:"id,omitempty"`
	// Optimistic-concurrency token, incremented on every save
	Version int64 `json:"version,omitempty"`
	// Current target role (denormalized for listing)
	TargetRole string `json:"target_role,omitempty"`
	// active, paused, completed, abandoned
	Status string `json:"status,omitempty"`
	// Full journey aggregate as JSON
	Data map[string]interface{} `json:"data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Journey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journey.FieldData:
			values[i] = new([]byte)
		case journey.FieldVersion:
			values[i] = new(sql.NullInt64)
		case journey.FieldTargetRole, journey.FieldStatus:
			values[i] = new(sql.NullString)
		case journey.FieldCreatedAt, journey.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case journey.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Journey fields.
func (_m *Journey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journey.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case journey.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case journey.FieldTargetRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_role", values[i])
			} else if value.Valid {
				_m.TargetRole = value.String
			}
		case journey.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case journey.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case journey.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case journey.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Journey.
// This includes values selected through modifiers, order, etc.
func (_m *Journey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Journey.
// Note that you need to call Journey.Unwrap() before calling this method if this Journey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Journey) Update() *JourneyUpdateOne {
	return NewJourneyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Journey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Journey) Unwrap() *Journey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Journey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Journey) String() string {
	var builder strings.Builder
	builder.WriteString("Journey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("target_role=")
	builder.WriteString(_m.TargetRole)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Journeys is a parsable slice of Journey.
type Journeys []*Journey
