// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/journey"
	"github.com/abhisek/pathwise/ent/predicate"
)

// JourneyUpdate is the builder for updating Journey entities.
type JourneyUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyMutation
}

// Where appends a list predicates to the JourneyUpdate builder.
func (_u *JourneyUpdate) Where(ps ...predicate.Journey) *JourneyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *JourneyUpdate) SetVersion(v int64) *JourneyUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableVersion(v *int64) *JourneyUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *JourneyUpdate) AddVersion(v int64) *JourneyUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *JourneyUpdate) SetTargetRole(v string) *JourneyUpdate {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableTargetRole(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JourneyUpdate) SetStatus(v string) *JourneyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JourneyUpdate) SetNillableStatus(v *string) *JourneyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *JourneyUpdate) SetData(v map[string]interface{}) *JourneyUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JourneyUpdate) SetUpdatedAt(v time.Time) *JourneyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JourneyMutation object of the builder.
func (_u *JourneyUpdate) Mutation() *JourneyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JourneyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := journey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyUpdate) check() error {
	if v, ok := _u.mutation.TargetRole(); ok {
		if err := journey.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "Journey.target_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := journey.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Journey.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journey.Table, journey.Columns, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(journey.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(journey.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(journey.FieldTargetRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(journey.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(journey.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(journey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyUpdateOne is the builder for updating a single Journey entity.
type JourneyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyMutation
}

// SetVersion sets the "version" field.
func (_u *JourneyUpdateOne) SetVersion(v int64) *JourneyUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableVersion(v *int64) *JourneyUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *JourneyUpdateOne) AddVersion(v int64) *JourneyUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *JourneyUpdateOne) SetTargetRole(v string) *JourneyUpdateOne {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableTargetRole(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JourneyUpdateOne) SetStatus(v string) *JourneyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JourneyUpdateOne) SetNillableStatus(v *string) *JourneyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *JourneyUpdateOne) SetData(v map[string]interface{}) *JourneyUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JourneyUpdateOne) SetUpdatedAt(v time.Time) *JourneyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JourneyMutation object of the builder.
func (_u *JourneyUpdateOne) Mutation() *JourneyMutation {
	return _u.mutation
}

// Where appends a list predicates to the JourneyUpdate builder.
func (_u *JourneyUpdateOne) Where(ps ...predicate.Journey) *JourneyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyUpdateOne) Select(field string, fields ...string) *JourneyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Journey entity.
func (_u *JourneyUpdateOne) Save(ctx context.Context) (*Journey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyUpdateOne) SaveX(ctx context.Context) *Journey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JourneyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := journey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyUpdateOne) check() error {
	if v, ok := _u.mutation.TargetRole(); ok {
		if err := journey.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "Journey.target_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := journey.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Journey.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyUpdateOne) sqlSave(ctx context.Context) (_node *Journey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journey.Table, journey.Columns, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Journey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journey.FieldID)
		for _, f := range fields {
			if !journey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journey.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(journey.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(journey.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(journey.FieldTargetRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(journey.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(journey.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(journey.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Journey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
