// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/availabilityrule"
	"github.com/google/uuid"
)

// AvailabilityRuleCreate is the builder for creating a AvailabilityRule entity.
type AvailabilityRuleCreate struct {
	config
	mutation *AvailabilityRuleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AvailabilityRuleCreate) SetCreatedAt(v time.Time) *AvailabilityRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableCreatedAt(v *time.Time) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AvailabilityRuleCreate) SetUpdatedAt(v time.Time) *AvailabilityRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableUpdatedAt(v *time.Time) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *AvailabilityRuleCreate) SetBusinessID(v uuid.UUID) *AvailabilityRuleCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *AvailabilityRuleCreate) SetProviderID(v uuid.UUID) *AvailabilityRuleCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *AvailabilityRuleCreate) SetDayOfWeek(v int8) *AvailabilityRuleCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AvailabilityRuleCreate) SetStartTime(v string) *AvailabilityRuleCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AvailabilityRuleCreate) SetEndTime(v string) *AvailabilityRuleCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetIsAvailable sets the "is_available" field.
func (_c *AvailabilityRuleCreate) SetIsAvailable(v bool) *AvailabilityRuleCreate {
	_c.mutation.SetIsAvailable(v)
	return _c
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableIsAvailable(v *bool) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetIsAvailable(*v)
	}
	return _c
}

// SetEffectiveDate sets the "effective_date" field.
func (_c *AvailabilityRuleCreate) SetEffectiveDate(v string) *AvailabilityRuleCreate {
	_c.mutation.SetEffectiveDate(v)
	return _c
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableEffectiveDate(v *string) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetEffectiveDate(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *AvailabilityRuleCreate) SetExpiryDate(v string) *AvailabilityRuleCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableExpiryDate(v *string) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AvailabilityRuleCreate) SetID(v uuid.UUID) *AvailabilityRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableID(v *uuid.UUID) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AvailabilityRuleMutation object of the builder.
func (_c *AvailabilityRuleCreate) Mutation() *AvailabilityRuleMutation {
	return _c.mutation
}

// Save creates the AvailabilityRule in the database.
func (_c *AvailabilityRuleCreate) Save(ctx context.Context) (*AvailabilityRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AvailabilityRuleCreate) SaveX(ctx context.Context) *AvailabilityRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AvailabilityRuleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := availabilityrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := availabilityrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsAvailable(); !ok {
		v := availabilityrule.DefaultIsAvailable
		_c.mutation.SetIsAvailable(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := availabilityrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AvailabilityRuleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AvailabilityRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AvailabilityRule.updated_at"`)}
	}
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`repo: missing required field "AvailabilityRule.business_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "AvailabilityRule.provider_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "AvailabilityRule.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := availabilityrule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "AvailabilityRule.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := availabilityrule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "AvailabilityRule.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := availabilityrule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAvailable(); !ok {
		return &ValidationError{Name: "is_available", err: errors.New(`repo: missing required field "AvailabilityRule.is_available"`)}
	}
	if v, ok := _c.mutation.EffectiveDate(); ok {
		if err := availabilityrule.EffectiveDateValidator(v); err != nil {
			return &ValidationError{Name: "effective_date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.effective_date": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExpiryDate(); ok {
		if err := availabilityrule.ExpiryDateValidator(v); err != nil {
			return &ValidationError{Name: "expiry_date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.expiry_date": %w`, err)}
		}
	}
	return nil
}

func (_c *AvailabilityRuleCreate) sqlSave(ctx context.Context) (*AvailabilityRule, error) {
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

func (_c *AvailabilityRuleCreate) createSpec() (*AvailabilityRule, *sqlgraph.CreateSpec) {
	var (
		_node = &AvailabilityRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(availabilityrule.Table, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(availabilityrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(availabilityrule.FieldBusinessID, field.TypeUUID, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(availabilityrule.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(availabilityrule.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(availabilityrule.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.IsAvailable(); ok {
		_spec.SetField(availabilityrule.FieldIsAvailable, field.TypeBool, value)
		_node.IsAvailable = value
	}
	if value, ok := _c.mutation.EffectiveDate(); ok {
		_spec.SetField(availabilityrule.FieldEffectiveDate, field.TypeString, value)
		_node.EffectiveDate = &value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(availabilityrule.FieldExpiryDate, field.TypeString, value)
		_node.ExpiryDate = &value
	}
	return _node, _spec
}

// AvailabilityRuleCreateBulk is the builder for creating many AvailabilityRule entities in bulk.
type AvailabilityRuleCreateBulk struct {
	config
	err      error
	builders []*AvailabilityRuleCreate
}

// Save creates the AvailabilityRule entities in the database.
func (_c *AvailabilityRuleCreateBulk) Save(ctx context.Context) ([]*AvailabilityRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AvailabilityRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AvailabilityRuleMutation)
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
func (_c *AvailabilityRuleCreateBulk) SaveX(ctx context.Context) []*AvailabilityRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
