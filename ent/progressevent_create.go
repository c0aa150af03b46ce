// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/progressevent"
	"github.com/google/uuid"
)

// ProgressEventCreate is the builder for creating a ProgressEvent entity.
type ProgressEventCreate struct {
	config
	mutation *ProgressEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProgressEventCreate) SetSequence(v int64) *ProgressEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProgressEventCreate) SetTimestamp(v time.Time) *ProgressEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableTimestamp(v *time.Time) *ProgressEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetJourneyID sets the "journey_id" field.
func (_c *ProgressEventCreate) SetJourneyID(v uuid.UUID) *ProgressEventCreate {
	_c.mutation.SetJourneyID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ProgressEventCreate) SetKind(v string) *ProgressEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *ProgressEventCreate) SetStepNumber(v int) *ProgressEventCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableStepNumber(v *int) *ProgressEventCreate {
	if v != nil {
		_c.SetStepNumber(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *ProgressEventCreate) SetDetail(v string) *ProgressEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableDetail(v *string) *ProgressEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_c *ProgressEventCreate) Mutation() *ProgressEventMutation {
	return _c.mutation
}

// Save creates the ProgressEvent in the database.
func (_c *ProgressEventCreate) Save(ctx context.Context) (*ProgressEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressEventCreate) SaveX(ctx context.Context) *ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := progressevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		v := progressevent.DefaultStepNumber
		_c.mutation.SetStepNumber(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := progressevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProgressEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProgressEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.JourneyID(); !ok {
		return &ValidationError{Name: "journey_id", err: errors.New(`ent: missing required field "ProgressEvent.journey_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ProgressEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := progressevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "ProgressEvent.step_number"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "ProgressEvent.detail"`)}
	}
	return nil
}

func (_c *ProgressEventCreate) sqlSave(ctx context.Context) (*ProgressEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressEventCreate) createSpec() (*ProgressEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressevent.Table, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(progressevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(progressevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.JourneyID(); ok {
		_spec.SetField(progressevent.FieldJourneyID, field.TypeUUID, value)
		_node.JourneyID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(progressevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(progressevent.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(progressevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	return _node, _spec
}

// ProgressEventCreateBulk is the builder for creating many ProgressEvent entities in bulk.
type ProgressEventCreateBulk struct {
	config
	err      error
	builders []*ProgressEventCreate
}

// Save creates the ProgressEvent entities in the database.
func (_c *ProgressEventCreateBulk) Save(ctx context.Context) ([]*ProgressEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProgressEventCreateBulk) SaveX(ctx context.Context) []*ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
