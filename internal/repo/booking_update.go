// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/booking"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// BookingUpdate is the builder for updating Booking entities.
type BookingUpdate struct {
	config
	hooks    []Hook
	mutation *BookingMutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdate) Where(ps ...predicate.Booking) *BookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdate) SetUpdatedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *BookingUpdate) SetBusinessID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableBusinessID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *BookingUpdate) SetProviderID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableProviderID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *BookingUpdate) SetCustomerID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCustomerID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetServiceOfferingID sets the "service_offering_id" field.
func (_u *BookingUpdate) SetServiceOfferingID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetServiceOfferingID(v)
	return _u
}

// SetNillableServiceOfferingID sets the "service_offering_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableServiceOfferingID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetServiceOfferingID(*v)
	}
	return _u
}

// ClearServiceOfferingID clears the value of the "service_offering_id" field.
func (_u *BookingUpdate) ClearServiceOfferingID() *BookingUpdate {
	_u.mutation.ClearServiceOfferingID()
	return _u
}

// SetDate sets the "date" field.
func (_u *BookingUpdate) SetDate(v string) *BookingUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableDate(v *string) *BookingUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *BookingUpdate) SetStartTime(v string) *BookingUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStartTime(v *string) *BookingUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *BookingUpdate) SetEndTime(v string) *BookingUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableEndTime(v *string) *BookingUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdate) SetStatus(v booking.Status) *BookingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStatus(v *booking.Status) *BookingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *BookingUpdate) SetPrice(v int64) *BookingUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePrice(v *int64) *BookingUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *BookingUpdate) AddPrice(v int64) *BookingUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *BookingUpdate) SetPaymentStatus(v booking.PaymentStatus) *BookingUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePaymentStatus(v *booking.PaymentStatus) *BookingUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingUpdate) SetNotes(v string) *BookingUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableNotes(v *string) *BookingUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BookingUpdate) ClearNotes() *BookingUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *BookingUpdate) SetCancellationReason(v string) *BookingUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancellationReason(v *string) *BookingUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *BookingUpdate) ClearCancellationReason() *BookingUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (_u *BookingUpdate) SetCancelRequestedBy(v booking.CancelRequestedBy) *BookingUpdate {
	_u.mutation.SetCancelRequestedBy(v)
	return _u
}

// SetNillableCancelRequestedBy sets the "cancel_requested_by" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancelRequestedBy(v *booking.CancelRequestedBy) *BookingUpdate {
	if v != nil {
		_u.SetCancelRequestedBy(*v)
	}
	return _u
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (_u *BookingUpdate) ClearCancelRequestedBy() *BookingUpdate {
	_u.mutation.ClearCancelRequestedBy()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BookingUpdate) SetCancelledAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancelledAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BookingUpdate) ClearCancelledAt() *BookingUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationFee sets the "cancellation_fee" field.
func (_u *BookingUpdate) SetCancellationFee(v int64) *BookingUpdate {
	_u.mutation.ResetCancellationFee()
	_u.mutation.SetCancellationFee(v)
	return _u
}

// SetNillableCancellationFee sets the "cancellation_fee" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancellationFee(v *int64) *BookingUpdate {
	if v != nil {
		_u.SetCancellationFee(*v)
	}
	return _u
}

// AddCancellationFee adds value to the "cancellation_fee" field.
func (_u *BookingUpdate) AddCancellationFee(v int64) *BookingUpdate {
	_u.mutation.AddCancellationFee(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdate) SetCompletedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCompletedAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdate) ClearCompletedAt() *BookingUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdate) Mutation() *BookingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := booking.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Booking.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := booking.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "Booking.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := booking.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "Booking.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := booking.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Booking.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancelRequestedBy(); ok {
		if err := booking.CancelRequestedByValidator(v); err != nil {
			return &ValidationError{Name: "cancel_requested_by", err: fmt.Errorf(`repo: validator failed for field "Booking.cancel_requested_by": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(booking.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(booking.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(booking.FieldCustomerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceOfferingID(); ok {
		_spec.SetField(booking.FieldServiceOfferingID, field.TypeUUID, value)
	}
	if _u.mutation.ServiceOfferingIDCleared() {
		_spec.ClearField(booking.FieldServiceOfferingID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(booking.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(booking.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(booking.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(booking.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(booking.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(booking.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequestedBy(); ok {
		_spec.SetField(booking.FieldCancelRequestedBy, field.TypeEnum, value)
	}
	if _u.mutation.CancelRequestedByCleared() {
		_spec.ClearField(booking.FieldCancelRequestedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(booking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationFee(); ok {
		_spec.SetField(booking.FieldCancellationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCancellationFee(); ok {
		_spec.AddField(booking.FieldCancellationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookingUpdateOne is the builder for updating a single Booking entity.
type BookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdateOne) SetUpdatedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *BookingUpdateOne) SetBusinessID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableBusinessID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *BookingUpdateOne) SetProviderID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableProviderID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *BookingUpdateOne) SetCustomerID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCustomerID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetServiceOfferingID sets the "service_offering_id" field.
func (_u *BookingUpdateOne) SetServiceOfferingID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetServiceOfferingID(v)
	return _u
}

// SetNillableServiceOfferingID sets the "service_offering_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableServiceOfferingID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetServiceOfferingID(*v)
	}
	return _u
}

// ClearServiceOfferingID clears the value of the "service_offering_id" field.
func (_u *BookingUpdateOne) ClearServiceOfferingID() *BookingUpdateOne {
	_u.mutation.ClearServiceOfferingID()
	return _u
}

// SetDate sets the "date" field.
func (_u *BookingUpdateOne) SetDate(v string) *BookingUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableDate(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *BookingUpdateOne) SetStartTime(v string) *BookingUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStartTime(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *BookingUpdateOne) SetEndTime(v string) *BookingUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableEndTime(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdateOne) SetStatus(v booking.Status) *BookingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStatus(v *booking.Status) *BookingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *BookingUpdateOne) SetPrice(v int64) *BookingUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePrice(v *int64) *BookingUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *BookingUpdateOne) AddPrice(v int64) *BookingUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *BookingUpdateOne) SetPaymentStatus(v booking.PaymentStatus) *BookingUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePaymentStatus(v *booking.PaymentStatus) *BookingUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingUpdateOne) SetNotes(v string) *BookingUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableNotes(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BookingUpdateOne) ClearNotes() *BookingUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *BookingUpdateOne) SetCancellationReason(v string) *BookingUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancellationReason(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *BookingUpdateOne) ClearCancellationReason() *BookingUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (_u *BookingUpdateOne) SetCancelRequestedBy(v booking.CancelRequestedBy) *BookingUpdateOne {
	_u.mutation.SetCancelRequestedBy(v)
	return _u
}

// SetNillableCancelRequestedBy sets the "cancel_requested_by" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancelRequestedBy(v *booking.CancelRequestedBy) *BookingUpdateOne {
	if v != nil {
		_u.SetCancelRequestedBy(*v)
	}
	return _u
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (_u *BookingUpdateOne) ClearCancelRequestedBy() *BookingUpdateOne {
	_u.mutation.ClearCancelRequestedBy()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BookingUpdateOne) SetCancelledAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancelledAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BookingUpdateOne) ClearCancelledAt() *BookingUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationFee sets the "cancellation_fee" field.
func (_u *BookingUpdateOne) SetCancellationFee(v int64) *BookingUpdateOne {
	_u.mutation.ResetCancellationFee()
	_u.mutation.SetCancellationFee(v)
	return _u
}

// SetNillableCancellationFee sets the "cancellation_fee" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancellationFee(v *int64) *BookingUpdateOne {
	if v != nil {
		_u.SetCancellationFee(*v)
	}
	return _u
}

// AddCancellationFee adds value to the "cancellation_fee" field.
func (_u *BookingUpdateOne) AddCancellationFee(v int64) *BookingUpdateOne {
	_u.mutation.AddCancellationFee(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdateOne) SetCompletedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCompletedAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdateOne) ClearCompletedAt() *BookingUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdateOne) Mutation() *BookingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdateOne) Where(ps ...predicate.Booking) *BookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookingUpdateOne) Select(field string, fields ...string) *BookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Booking entity.
func (_u *BookingUpdateOne) Save(ctx context.Context) (*Booking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdateOne) SaveX(ctx context.Context) *Booking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := booking.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Booking.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := booking.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "Booking.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := booking.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "Booking.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := booking.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Booking.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancelRequestedBy(); ok {
		if err := booking.CancelRequestedByValidator(v); err != nil {
			return &ValidationError{Name: "cancel_requested_by", err: fmt.Errorf(`repo: validator failed for field "Booking.cancel_requested_by": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdateOne) sqlSave(ctx context.Context) (_node *Booking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Booking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booking.FieldID)
		for _, f := range fields {
			if !booking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != booking.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(booking.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(booking.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(booking.FieldCustomerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceOfferingID(); ok {
		_spec.SetField(booking.FieldServiceOfferingID, field.TypeUUID, value)
	}
	if _u.mutation.ServiceOfferingIDCleared() {
		_spec.ClearField(booking.FieldServiceOfferingID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(booking.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(booking.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(booking.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(booking.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(booking.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(booking.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequestedBy(); ok {
		_spec.SetField(booking.FieldCancelRequestedBy, field.TypeEnum, value)
	}
	if _u.mutation.CancelRequestedByCleared() {
		_spec.ClearField(booking.FieldCancelRequestedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(booking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationFee(); ok {
		_spec.SetField(booking.FieldCancellationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCancellationFee(); ok {
		_spec.AddField(booking.FieldCancellationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	_node = &Booking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
