// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/charge"
	"github.com/google/uuid"
)

// ChargeCreate is the builder for creating a Charge entity.
type ChargeCreate struct {
	config
	mutation *ChargeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChargeCreate) SetCreatedAt(v time.Time) *ChargeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChargeCreate) SetNillableCreatedAt(v *time.Time) *ChargeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChargeCreate) SetUpdatedAt(v time.Time) *ChargeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChargeCreate) SetNillableUpdatedAt(v *time.Time) *ChargeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *ChargeCreate) SetBusinessID(v uuid.UUID) *ChargeCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetBookingID sets the "booking_id" field.
func (_c *ChargeCreate) SetBookingID(v uuid.UUID) *ChargeCreate {
	_c.mutation.SetBookingID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ChargeCreate) SetAmount(v int64) *ChargeCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ChargeCreate) SetCurrency(v string) *ChargeCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ChargeCreate) SetNillableCurrency(v *string) *ChargeCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChargeCreate) SetStatus(v charge.Status) *ChargeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChargeCreate) SetNillableStatus(v *charge.Status) *ChargeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPaymentLinkURL sets the "payment_link_url" field.
func (_c *ChargeCreate) SetPaymentLinkURL(v string) *ChargeCreate {
	_c.mutation.SetPaymentLinkURL(v)
	return _c
}

// SetNillablePaymentLinkURL sets the "payment_link_url" field if the given value is not nil.
func (_c *ChargeCreate) SetNillablePaymentLinkURL(v *string) *ChargeCreate {
	if v != nil {
		_c.SetPaymentLinkURL(*v)
	}
	return _c
}

// SetGatewayReference sets the "gateway_reference" field.
func (_c *ChargeCreate) SetGatewayReference(v string) *ChargeCreate {
	_c.mutation.SetGatewayReference(v)
	return _c
}

// SetNillableGatewayReference sets the "gateway_reference" field if the given value is not nil.
func (_c *ChargeCreate) SetNillableGatewayReference(v *string) *ChargeCreate {
	if v != nil {
		_c.SetGatewayReference(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *ChargeCreate) SetFailureReason(v string) *ChargeCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *ChargeCreate) SetNillableFailureReason(v *string) *ChargeCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetPaidAt sets the "paid_at" field.
func (_c *ChargeCreate) SetPaidAt(v time.Time) *ChargeCreate {
	_c.mutation.SetPaidAt(v)
	return _c
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_c *ChargeCreate) SetNillablePaidAt(v *time.Time) *ChargeCreate {
	if v != nil {
		_c.SetPaidAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChargeCreate) SetID(v uuid.UUID) *ChargeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChargeCreate) SetNillableID(v *uuid.UUID) *ChargeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChargeMutation object of the builder.
func (_c *ChargeCreate) Mutation() *ChargeMutation {
	return _c.mutation
}

// Save creates the Charge in the database.
func (_c *ChargeCreate) Save(ctx context.Context) (*Charge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChargeCreate) SaveX(ctx context.Context) *Charge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChargeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChargeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChargeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := charge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := charge.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := charge.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := charge.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := charge.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChargeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Charge.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Charge.updated_at"`)}
	}
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`repo: missing required field "Charge.business_id"`)}
	}
	if _, ok := _c.mutation.BookingID(); !ok {
		return &ValidationError{Name: "booking_id", err: errors.New(`repo: missing required field "Charge.booking_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`repo: missing required field "Charge.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := charge.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Charge.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "Charge.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := charge.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Charge.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Charge.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := charge.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Charge.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PaymentLinkURL(); ok {
		if err := charge.PaymentLinkURLValidator(v); err != nil {
			return &ValidationError{Name: "payment_link_url", err: fmt.Errorf(`repo: validator failed for field "Charge.payment_link_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GatewayReference(); ok {
		if err := charge.GatewayReferenceValidator(v); err != nil {
			return &ValidationError{Name: "gateway_reference", err: fmt.Errorf(`repo: validator failed for field "Charge.gateway_reference": %w`, err)}
		}
	}
	return nil
}

func (_c *ChargeCreate) sqlSave(ctx context.Context) (*Charge, error) {
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

func (_c *ChargeCreate) createSpec() (*Charge, *sqlgraph.CreateSpec) {
	var (
		_node = &Charge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(charge.Table, sqlgraph.NewFieldSpec(charge.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(charge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(charge.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(charge.FieldBusinessID, field.TypeUUID, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.BookingID(); ok {
		_spec.SetField(charge.FieldBookingID, field.TypeUUID, value)
		_node.BookingID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(charge.FieldAmount, field.TypeInt64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(charge.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(charge.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PaymentLinkURL(); ok {
		_spec.SetField(charge.FieldPaymentLinkURL, field.TypeString, value)
		_node.PaymentLinkURL = &value
	}
	if value, ok := _c.mutation.GatewayReference(); ok {
		_spec.SetField(charge.FieldGatewayReference, field.TypeString, value)
		_node.GatewayReference = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(charge.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.PaidAt(); ok {
		_spec.SetField(charge.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	return _node, _spec
}

// ChargeCreateBulk is the builder for creating many Charge entities in bulk.
type ChargeCreateBulk struct {
	config
	err      error
	builders []*ChargeCreate
}

// Save creates the Charge entities in the database.
func (_c *ChargeCreateBulk) Save(ctx context.Context) ([]*Charge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Charge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChargeMutation)
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
func (_c *ChargeCreateBulk) SaveX(ctx context.Context) []*Charge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChargeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChargeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
