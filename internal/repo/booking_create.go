// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/booking"
	"github.com/google/uuid"
)

// BookingCreate is the builder for creating a Booking entity.
type BookingCreate struct {
	config
	mutation *BookingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BookingCreate) SetCreatedAt(v time.Time) *BookingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCreatedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BookingCreate) SetUpdatedAt(v time.Time) *BookingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableUpdatedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *BookingCreate) SetBusinessID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *BookingCreate) SetProviderID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *BookingCreate) SetCustomerID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetServiceOfferingID sets the "service_offering_id" field.
func (_c *BookingCreate) SetServiceOfferingID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetServiceOfferingID(v)
	return _c
}

// SetNillableServiceOfferingID sets the "service_offering_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableServiceOfferingID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetServiceOfferingID(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *BookingCreate) SetDate(v string) *BookingCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *BookingCreate) SetStartTime(v string) *BookingCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *BookingCreate) SetEndTime(v string) *BookingCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BookingCreate) SetStatus(v booking.Status) *BookingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BookingCreate) SetNillableStatus(v *booking.Status) *BookingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *BookingCreate) SetPrice(v int64) *BookingCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *BookingCreate) SetPaymentStatus(v booking.PaymentStatus) *BookingCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *BookingCreate) SetNillablePaymentStatus(v *booking.PaymentStatus) *BookingCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BookingCreate) SetNotes(v string) *BookingCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BookingCreate) SetNillableNotes(v *string) *BookingCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *BookingCreate) SetCancellationReason(v string) *BookingCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancellationReason(v *string) *BookingCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (_c *BookingCreate) SetCancelRequestedBy(v booking.CancelRequestedBy) *BookingCreate {
	_c.mutation.SetCancelRequestedBy(v)
	return _c
}

// SetNillableCancelRequestedBy sets the "cancel_requested_by" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancelRequestedBy(v *booking.CancelRequestedBy) *BookingCreate {
	if v != nil {
		_c.SetCancelRequestedBy(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *BookingCreate) SetCancelledAt(v time.Time) *BookingCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancelledAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCancellationFee sets the "cancellation_fee" field.
func (_c *BookingCreate) SetCancellationFee(v int64) *BookingCreate {
	_c.mutation.SetCancellationFee(v)
	return _c
}

// SetNillableCancellationFee sets the "cancellation_fee" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancellationFee(v *int64) *BookingCreate {
	if v != nil {
		_c.SetCancellationFee(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BookingCreate) SetCompletedAt(v time.Time) *BookingCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCompletedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BookingCreate) SetID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableID(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BookingMutation object of the builder.
func (_c *BookingCreate) Mutation() *BookingMutation {
	return _c.mutation
}

// Save creates the Booking in the database.
func (_c *BookingCreate) Save(ctx context.Context) (*Booking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookingCreate) SaveX(ctx context.Context) *Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := booking.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := booking.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := booking.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := booking.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.CancellationFee(); !ok {
		v := booking.DefaultCancellationFee
		_c.mutation.SetCancellationFee(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := booking.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Booking.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Booking.updated_at"`)}
	}
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`repo: missing required field "Booking.business_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "Booking.provider_id"`)}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`repo: missing required field "Booking.customer_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "Booking.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := booking.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Booking.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Booking.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := booking.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "Booking.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Booking.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := booking.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "Booking.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Booking.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "Booking.price"`)}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`repo: missing required field "Booking.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := booking.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Booking.payment_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CancelRequestedBy(); ok {
		if err := booking.CancelRequestedByValidator(v); err != nil {
			return &ValidationError{Name: "cancel_requested_by", err: fmt.Errorf(`repo: validator failed for field "Booking.cancel_requested_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancellationFee(); !ok {
		return &ValidationError{Name: "cancellation_fee", err: errors.New(`repo: missing required field "Booking.cancellation_fee"`)}
	}
	return nil
}

func (_c *BookingCreate) sqlSave(ctx context.Context) (*Booking, error) {
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

func (_c *BookingCreate) createSpec() (*Booking, *sqlgraph.CreateSpec) {
	var (
		_node = &Booking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(booking.Table, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(booking.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(booking.FieldBusinessID, field.TypeUUID, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(booking.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(booking.FieldCustomerID, field.TypeUUID, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.ServiceOfferingID(); ok {
		_spec.SetField(booking.FieldServiceOfferingID, field.TypeUUID, value)
		_node.ServiceOfferingID = &value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(booking.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(booking.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(booking.FieldPaymentStatus, field.TypeEnum, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	if value, ok := _c.mutation.CancelRequestedBy(); ok {
		_spec.SetField(booking.FieldCancelRequestedBy, field.TypeEnum, value)
		_node.CancelRequestedBy = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CancellationFee(); ok {
		_spec.SetField(booking.FieldCancellationFee, field.TypeInt64, value)
		_node.CancellationFee = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// BookingCreateBulk is the builder for creating many Booking entities in bulk.
type BookingCreateBulk struct {
	config
	err      error
	builders []*BookingCreate
}

// Save creates the Booking entities in the database.
func (_c *BookingCreateBulk) Save(ctx context.Context) ([]*Booking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Booking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookingMutation)
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
func (_c *BookingCreateBulk) SaveX(ctx context.Context) []*Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
