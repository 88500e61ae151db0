// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/serviceoffering"
	"github.com/google/uuid"
)

// ServiceOfferingCreate is the builder for creating a ServiceOffering entity.
type ServiceOfferingCreate struct {
	config
	mutation *ServiceOfferingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceOfferingCreate) SetCreatedAt(v time.Time) *ServiceOfferingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceOfferingCreate) SetNillableCreatedAt(v *time.Time) *ServiceOfferingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServiceOfferingCreate) SetUpdatedAt(v time.Time) *ServiceOfferingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServiceOfferingCreate) SetNillableUpdatedAt(v *time.Time) *ServiceOfferingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ServiceOfferingCreate) SetDeletedAt(v time.Time) *ServiceOfferingCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ServiceOfferingCreate) SetNillableDeletedAt(v *time.Time) *ServiceOfferingCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *ServiceOfferingCreate) SetBusinessID(v uuid.UUID) *ServiceOfferingCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ServiceOfferingCreate) SetName(v string) *ServiceOfferingCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ServiceOfferingCreate) SetDescription(v string) *ServiceOfferingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ServiceOfferingCreate) SetNillableDescription(v *string) *ServiceOfferingCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *ServiceOfferingCreate) SetDurationMin(v int) *ServiceOfferingCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *ServiceOfferingCreate) SetPrice(v int64) *ServiceOfferingCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ServiceOfferingCreate) SetIsActive(v bool) *ServiceOfferingCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ServiceOfferingCreate) SetNillableIsActive(v *bool) *ServiceOfferingCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceOfferingCreate) SetID(v uuid.UUID) *ServiceOfferingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceOfferingCreate) SetNillableID(v *uuid.UUID) *ServiceOfferingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServiceOfferingMutation object of the builder.
func (_c *ServiceOfferingCreate) Mutation() *ServiceOfferingMutation {
	return _c.mutation
}

// Save creates the ServiceOffering in the database.
func (_c *ServiceOfferingCreate) Save(ctx context.Context) (*ServiceOffering, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceOfferingCreate) SaveX(ctx context.Context) *ServiceOffering {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceOfferingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceOfferingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceOfferingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := serviceoffering.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := serviceoffering.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := serviceoffering.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := serviceoffering.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceOfferingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ServiceOffering.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ServiceOffering.updated_at"`)}
	}
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`repo: missing required field "ServiceOffering.business_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "ServiceOffering.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := serviceoffering.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`repo: missing required field "ServiceOffering.duration_min"`)}
	}
	if v, ok := _c.mutation.DurationMin(); ok {
		if err := serviceoffering.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "ServiceOffering.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := serviceoffering.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ServiceOffering.is_active"`)}
	}
	return nil
}

func (_c *ServiceOfferingCreate) sqlSave(ctx context.Context) (*ServiceOffering, error) {
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

func (_c *ServiceOfferingCreate) createSpec() (*ServiceOffering, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceOffering{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serviceoffering.Table, sqlgraph.NewFieldSpec(serviceoffering.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(serviceoffering.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceoffering.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(serviceoffering.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(serviceoffering.FieldBusinessID, field.TypeUUID, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(serviceoffering.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(serviceoffering.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(serviceoffering.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(serviceoffering.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(serviceoffering.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// ServiceOfferingCreateBulk is the builder for creating many ServiceOffering entities in bulk.
type ServiceOfferingCreateBulk struct {
	config
	err      error
	builders []*ServiceOfferingCreate
}

// Save creates the ServiceOffering entities in the database.
func (_c *ServiceOfferingCreateBulk) Save(ctx context.Context) ([]*ServiceOffering, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceOffering, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceOfferingMutation)
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
func (_c *ServiceOfferingCreateBulk) SaveX(ctx context.Context) []*ServiceOffering {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceOfferingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceOfferingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
