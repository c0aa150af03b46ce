// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/journey"
	"github.com/google/uuid"
)

// JourneyCreate is the builder for creating a Journey entity.
type JourneyCreate struct {
	config
	mutation *JourneyMutation
	hooks    []Hook
}

// SetVersion sets the "version" field.
func (_c *JourneyCreate) SetVersion(v int64) *JourneyCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableVersion(v *int64) *JourneyCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetTargetRole sets the "target_role" field.
func (_c *JourneyCreate) SetTargetRole(v string) *JourneyCreate {
	_c.mutation.SetTargetRole(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JourneyCreate) SetStatus(v string) *JourneyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetData sets the "data" field.
func (_c *JourneyCreate) SetData(v map[string]interface{}) *JourneyCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JourneyCreate) SetCreatedAt(v time.Time) *JourneyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableCreatedAt(v *time.Time) *JourneyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JourneyCreate) SetUpdatedAt(v time.Time) *JourneyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableUpdatedAt(v *time.Time) *JourneyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JourneyCreate) SetID(v uuid.UUID) *JourneyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JourneyCreate) SetNillableID(v *uuid.UUID) *JourneyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the JourneyMutation object of the builder.
func (_c *JourneyCreate) Mutation() *JourneyMutation {
	return _c.mutation
}

// Save creates the Journey in the database.
func (_c *JourneyCreate) Save(ctx context.Context) (*Journey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JourneyCreate) SaveX(ctx context.Context) *Journey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JourneyCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := journey.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := journey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := journey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := journey.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JourneyCreate) check() error {
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Journey.version"`)}
	}
	if _, ok := _c.mutation.TargetRole(); !ok {
		return &ValidationError{Name: "target_role", err: errors.New(`ent: missing required field "Journey.target_role"`)}
	}
	if v, ok := _c.mutation.TargetRole(); ok {
		if err := journey.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "Journey.target_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Journey.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := journey.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Journey.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "Journey.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Journey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Journey.updated_at"`)}
	}
	return nil
}

func (_c *JourneyCreate) sqlSave(ctx context.Context) (*Journey, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JourneyCreate) createSpec() (*Journey, *sqlgraph.CreateSpec) {
	var (
		_node = &Journey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journey.Table, sqlgraph.NewFieldSpec(journey.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(journey.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.TargetRole(); ok {
		_spec.SetField(journey.FieldTargetRole, field.TypeString, value)
		_node.TargetRole = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(journey.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(journey.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(journey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(journey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// JourneyCreateBulk is the builder for creating many Journey entities in bulk.
type JourneyCreateBulk struct {
	config
	err      error
	builders []*JourneyCreate
}

// Save creates the Journey entities in the database.
func (_c *JourneyCreateBulk) Save(ctx context.Context) ([]*Journey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Journey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JourneyMutation)
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
func (_c *JourneyCreateBulk) SaveX(ctx context.Context) []*Journey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
