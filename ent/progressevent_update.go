// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/abhisek/pathwise/ent/progressevent"
	"github.com/google/uuid"
)

// ProgressEventUpdate is the builder for updating ProgressEvent entities.
type ProgressEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressEventMutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdate) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJourneyID sets the "journey_id" field.
func (_u *ProgressEventUpdate) SetJourneyID(v uuid.UUID) *ProgressEventUpdate {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableJourneyID(v *uuid.UUID) *ProgressEventUpdate {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ProgressEventUpdate) SetKind(v string) *ProgressEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableKind(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStepNumber sets the "step_number" field.
func (_u *ProgressEventUpdate) SetStepNumber(v int) *ProgressEventUpdate {
	_u.mutation.ResetStepNumber()
	_u.mutation.SetStepNumber(v)
	return _u
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableStepNumber(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetStepNumber(*v)
	}
	return _u
}

// AddStepNumber adds value to the "step_number" field.
func (_u *ProgressEventUpdate) AddStepNumber(v int) *ProgressEventUpdate {
	_u.mutation.AddStepNumber(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ProgressEventUpdate) SetDetail(v string) *ProgressEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableDetail(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdate) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := progressevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JourneyID(); ok {
		_spec.SetField(progressevent.FieldJourneyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(progressevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepNumber(); ok {
		_spec.SetField(progressevent.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNumber(); ok {
		_spec.AddField(progressevent.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(progressevent.FieldDetail, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressEventUpdateOne is the builder for updating a single ProgressEvent entity.
type ProgressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressEventMutation
}

// SetJourneyID sets the "journey_id" field.
func (_u *ProgressEventUpdateOne) SetJourneyID(v uuid.UUID) *ProgressEventUpdateOne {
	_u.mutation.SetJourneyID(v)
	return _u
}

// SetNillableJourneyID sets the "journey_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableJourneyID(v *uuid.UUID) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetJourneyID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ProgressEventUpdateOne) SetKind(v string) *ProgressEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableKind(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStepNumber sets the "step_number" field.
func (_u *ProgressEventUpdateOne) SetStepNumber(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetStepNumber()
	_u.mutation.SetStepNumber(v)
	return _u
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableStepNumber(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetStepNumber(*v)
	}
	return _u
}

// AddStepNumber adds value to the "step_number" field.
func (_u *ProgressEventUpdateOne) AddStepNumber(v int) *ProgressEventUpdateOne {
	_u.mutation.AddStepNumber(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ProgressEventUpdateOne) SetDetail(v string) *ProgressEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableDetail(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdateOne) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdateOne) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressEventUpdateOne) Select(field string, fields ...string) *ProgressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressEvent entity.
func (_u *ProgressEventUpdateOne) Save(ctx context.Context) (*ProgressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) SaveX(ctx context.Context) *ProgressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := progressevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdateOne) sqlSave(ctx context.Context) (_node *ProgressEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressevent.FieldID)
		for _, f := range fields {
			if !progressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JourneyID(); ok {
		_spec.SetField(progressevent.FieldJourneyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(progressevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepNumber(); ok {
		_spec.SetField(progressevent.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNumber(); ok {
		_spec.AddField(progressevent.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(progressevent.FieldDetail, field.TypeString, value)
	}
	_node = &ProgressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
