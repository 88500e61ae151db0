// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/business"
	"github.com/danahmadi/bookora_backend/internal/repo/businesssettings"
	"github.com/google/uuid"
)

// BusinessSettingsCreate is the builder for creating a BusinessSettings entity.
type BusinessSettingsCreate struct {
	config
	mutation *BusinessSettingsMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessSettingsCreate) SetCreatedAt(v time.Time) *BusinessSettingsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableCreatedAt(v *time.Time) *BusinessSettingsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessSettingsCreate) SetUpdatedAt(v time.Time) *BusinessSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableUpdatedAt(v *time.Time) *BusinessSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *BusinessSettingsCreate) SetBusinessID(v uuid.UUID) *BusinessSettingsCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (_c *BusinessSettingsCreate) SetCancellationWindowHours(v int) *BusinessSettingsCreate {
	_c.mutation.SetCancellationWindowHours(v)
	return _c
}

// SetNillableCancellationWindowHours sets the "cancellation_window_hours" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableCancellationWindowHours(v *int) *BusinessSettingsCreate {
	if v != nil {
		_c.SetCancellationWindowHours(*v)
	}
	return _c
}

// SetCancellationFeeAmount sets the "cancellation_fee_amount" field.
func (_c *BusinessSettingsCreate) SetCancellationFeeAmount(v int64) *BusinessSettingsCreate {
	_c.mutation.SetCancellationFeeAmount(v)
	return _c
}

// SetNillableCancellationFeeAmount sets the "cancellation_fee_amount" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableCancellationFeeAmount(v *int64) *BusinessSettingsCreate {
	if v != nil {
		_c.SetCancellationFeeAmount(*v)
	}
	return _c
}

// SetAllowCustomerSelfBook sets the "allow_customer_self_book" field.
func (_c *BusinessSettingsCreate) SetAllowCustomerSelfBook(v bool) *BusinessSettingsCreate {
	_c.mutation.SetAllowCustomerSelfBook(v)
	return _c
}

// SetNillableAllowCustomerSelfBook sets the "allow_customer_self_book" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableAllowCustomerSelfBook(v *bool) *BusinessSettingsCreate {
	if v != nil {
		_c.SetAllowCustomerSelfBook(*v)
	}
	return _c
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_c *BusinessSettingsCreate) SetDefaultDurationMin(v int) *BusinessSettingsCreate {
	_c.mutation.SetDefaultDurationMin(v)
	return _c
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableDefaultDurationMin(v *int) *BusinessSettingsCreate {
	if v != nil {
		_c.SetDefaultDurationMin(*v)
	}
	return _c
}

// SetDefaultPrice sets the "default_price" field.
func (_c *BusinessSettingsCreate) SetDefaultPrice(v int64) *BusinessSettingsCreate {
	_c.mutation.SetDefaultPrice(v)
	return _c
}

// SetNillableDefaultPrice sets the "default_price" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableDefaultPrice(v *int64) *BusinessSettingsCreate {
	if v != nil {
		_c.SetDefaultPrice(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessSettingsCreate) SetID(v uuid.UUID) *BusinessSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BusinessSettingsCreate) SetNillableID(v *uuid.UUID) *BusinessSettingsCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *BusinessSettingsCreate) SetBusiness(v *Business) *BusinessSettingsCreate {
	return _c.SetBusinessID(v.ID)
}

// Mutation returns the BusinessSettingsMutation object of the builder.
func (_c *BusinessSettingsCreate) Mutation() *BusinessSettingsMutation {
	return _c.mutation
}

// Save creates the BusinessSettings in the database.
func (_c *BusinessSettingsCreate) Save(ctx context.Context) (*BusinessSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessSettingsCreate) SaveX(ctx context.Context) *BusinessSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessSettingsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := businesssettings.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := businesssettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CancellationWindowHours(); !ok {
		v := businesssettings.DefaultCancellationWindowHours
		_c.mutation.SetCancellationWindowHours(v)
	}
	if _, ok := _c.mutation.CancellationFeeAmount(); !ok {
		v := businesssettings.DefaultCancellationFeeAmount
		_c.mutation.SetCancellationFeeAmount(v)
	}
	if _, ok := _c.mutation.AllowCustomerSelfBook(); !ok {
		v := businesssettings.DefaultAllowCustomerSelfBook
		_c.mutation.SetAllowCustomerSelfBook(v)
	}
	if _, ok := _c.mutation.DefaultDurationMin(); !ok {
		v := businesssettings.DefaultDefaultDurationMin
		_c.mutation.SetDefaultDurationMin(v)
	}
	if _, ok := _c.mutation.DefaultPrice(); !ok {
		v := businesssettings.DefaultDefaultPrice
		_c.mutation.SetDefaultPrice(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := businesssettings.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessSettingsCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BusinessSettings.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BusinessSettings.updated_at"`)}
	}
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`repo: missing required field "BusinessSettings.business_id"`)}
	}
	if _, ok := _c.mutation.CancellationWindowHours(); !ok {
		return &ValidationError{Name: "cancellation_window_hours", err: errors.New(`repo: missing required field "BusinessSettings.cancellation_window_hours"`)}
	}
	if _, ok := _c.mutation.CancellationFeeAmount(); !ok {
		return &ValidationError{Name: "cancellation_fee_amount", err: errors.New(`repo: missing required field "BusinessSettings.cancellation_fee_amount"`)}
	}
	if _, ok := _c.mutation.AllowCustomerSelfBook(); !ok {
		return &ValidationError{Name: "allow_customer_self_book", err: errors.New(`repo: missing required field "BusinessSettings.allow_customer_self_book"`)}
	}
	if _, ok := _c.mutation.DefaultDurationMin(); !ok {
		return &ValidationError{Name: "default_duration_min", err: errors.New(`repo: missing required field "BusinessSettings.default_duration_min"`)}
	}
	if _, ok := _c.mutation.DefaultPrice(); !ok {
		return &ValidationError{Name: "default_price", err: errors.New(`repo: missing required field "BusinessSettings.default_price"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`repo: missing required edge "BusinessSettings.business"`)}
	}
	return nil
}

func (_c *BusinessSettingsCreate) sqlSave(ctx context.Context) (*BusinessSettings, error) {
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

func (_c *BusinessSettingsCreate) createSpec() (*BusinessSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businesssettings.Table, sqlgraph.NewFieldSpec(businesssettings.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(businesssettings.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(businesssettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CancellationWindowHours(); ok {
		_spec.SetField(businesssettings.FieldCancellationWindowHours, field.TypeInt, value)
		_node.CancellationWindowHours = value
	}
	if value, ok := _c.mutation.CancellationFeeAmount(); ok {
		_spec.SetField(businesssettings.FieldCancellationFeeAmount, field.TypeInt64, value)
		_node.CancellationFeeAmount = value
	}
	if value, ok := _c.mutation.AllowCustomerSelfBook(); ok {
		_spec.SetField(businesssettings.FieldAllowCustomerSelfBook, field.TypeBool, value)
		_node.AllowCustomerSelfBook = value
	}
	if value, ok := _c.mutation.DefaultDurationMin(); ok {
		_spec.SetField(businesssettings.FieldDefaultDurationMin, field.TypeInt, value)
		_node.DefaultDurationMin = value
	}
	if value, ok := _c.mutation.DefaultPrice(); ok {
		_spec.SetField(businesssettings.FieldDefaultPrice, field.TypeInt64, value)
		_node.DefaultPrice = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   businesssettings.BusinessTable,
			Columns: []string{businesssettings.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BusinessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BusinessSettingsCreateBulk is the builder for creating many BusinessSettings entities in bulk.
type BusinessSettingsCreateBulk struct {
	config
	err      error
	builders []*BusinessSettingsCreate
}

// Save creates the BusinessSettings entities in the database.
func (_c *BusinessSettingsCreateBulk) Save(ctx context.Context) ([]*BusinessSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessSettingsMutation)
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
func (_c *BusinessSettingsCreateBulk) SaveX(ctx context.Context) []*BusinessSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
