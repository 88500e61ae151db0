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
	"github.com/danahmadi/bookora_backend/internal/repo/charge"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ChargeUpdate is the builder for updating Charge entities.
type ChargeUpdate struct {
	config
	hooks    []Hook
	mutation *ChargeMutation
}

// Where appends a list predicates to the ChargeUpdate builder.
func (_u *ChargeUpdate) Where(ps ...predicate.Charge) *ChargeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChargeUpdate) SetUpdatedAt(v time.Time) *ChargeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *ChargeUpdate) SetBusinessID(v uuid.UUID) *ChargeUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillableBusinessID(v *uuid.UUID) *ChargeUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *ChargeUpdate) SetBookingID(v uuid.UUID) *ChargeUpdate {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillableBookingID(v *uuid.UUID) *ChargeUpdate {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ChargeUpdate) SetAmount(v int64) *ChargeUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillableAmount(v *int64) *ChargeUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ChargeUpdate) AddAmount(v int64) *ChargeUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ChargeUpdate) SetCurrency(v string) *ChargeUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillableCurrency(v *string) *ChargeUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChargeUpdate) SetStatus(v charge.Status) *ChargeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillableStatus(v *charge.Status) *ChargeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentLinkURL sets the "payment_link_url" field.
func (_u *ChargeUpdate) SetPaymentLinkURL(v string) *ChargeUpdate {
	_u.mutation.SetPaymentLinkURL(v)
	return _u
}

// SetNillablePaymentLinkURL sets the "payment_link_url" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillablePaymentLinkURL(v *string) *ChargeUpdate {
	if v != nil {
		_u.SetPaymentLinkURL(*v)
	}
	return _u
}

// ClearPaymentLinkURL clears the value of the "payment_link_url" field.
func (_u *ChargeUpdate) ClearPaymentLinkURL() *ChargeUpdate {
	_u.mutation.ClearPaymentLinkURL()
	return _u
}

// SetGatewayReference sets the "gateway_reference" field.
func (_u *ChargeUpdate) SetGatewayReference(v string) *ChargeUpdate {
	_u.mutation.SetGatewayReference(v)
	return _u
}

// SetNillableGatewayReference sets the "gateway_reference" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillableGatewayReference(v *string) *ChargeUpdate {
	if v != nil {
		_u.SetGatewayReference(*v)
	}
	return _u
}

// ClearGatewayReference clears the value of the "gateway_reference" field.
func (_u *ChargeUpdate) ClearGatewayReference() *ChargeUpdate {
	_u.mutation.ClearGatewayReference()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ChargeUpdate) SetFailureReason(v string) *ChargeUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillableFailureReason(v *string) *ChargeUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ChargeUpdate) ClearFailureReason() *ChargeUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *ChargeUpdate) SetPaidAt(v time.Time) *ChargeUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *ChargeUpdate) SetNillablePaidAt(v *time.Time) *ChargeUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *ChargeUpdate) ClearPaidAt() *ChargeUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// Mutation returns the ChargeMutation object of the builder.
func (_u *ChargeUpdate) Mutation() *ChargeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChargeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChargeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChargeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChargeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChargeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := charge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChargeUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := charge.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Charge.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := charge.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Charge.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := charge.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Charge.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentLinkURL(); ok {
		if err := charge.PaymentLinkURLValidator(v); err != nil {
			return &ValidationError{Name: "payment_link_url", err: fmt.Errorf(`repo: validator failed for field "Charge.payment_link_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GatewayReference(); ok {
		if err := charge.GatewayReferenceValidator(v); err != nil {
			return &ValidationError{Name: "gateway_reference", err: fmt.Errorf(`repo: validator failed for field "Charge.gateway_reference": %w`, err)}
		}
	}
	return nil
}

func (_u *ChargeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(charge.Table, charge.Columns, sqlgraph.NewFieldSpec(charge.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(charge.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(charge.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(charge.FieldBookingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(charge.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(charge.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(charge.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(charge.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentLinkURL(); ok {
		_spec.SetField(charge.FieldPaymentLinkURL, field.TypeString, value)
	}
	if _u.mutation.PaymentLinkURLCleared() {
		_spec.ClearField(charge.FieldPaymentLinkURL, field.TypeString)
	}
	if value, ok := _u.mutation.GatewayReference(); ok {
		_spec.SetField(charge.FieldGatewayReference, field.TypeString, value)
	}
	if _u.mutation.GatewayReferenceCleared() {
		_spec.ClearField(charge.FieldGatewayReference, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(charge.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(charge.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(charge.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(charge.FieldPaidAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{charge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChargeUpdateOne is the builder for updating a single Charge entity.
type ChargeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChargeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChargeUpdateOne) SetUpdatedAt(v time.Time) *ChargeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *ChargeUpdateOne) SetBusinessID(v uuid.UUID) *ChargeUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillableBusinessID(v *uuid.UUID) *ChargeUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *ChargeUpdateOne) SetBookingID(v uuid.UUID) *ChargeUpdateOne {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillableBookingID(v *uuid.UUID) *ChargeUpdateOne {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ChargeUpdateOne) SetAmount(v int64) *ChargeUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillableAmount(v *int64) *ChargeUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ChargeUpdateOne) AddAmount(v int64) *ChargeUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ChargeUpdateOne) SetCurrency(v string) *ChargeUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillableCurrency(v *string) *ChargeUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChargeUpdateOne) SetStatus(v charge.Status) *ChargeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillableStatus(v *charge.Status) *ChargeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentLinkURL sets the "payment_link_url" field.
func (_u *ChargeUpdateOne) SetPaymentLinkURL(v string) *ChargeUpdateOne {
	_u.mutation.SetPaymentLinkURL(v)
	return _u
}

// SetNillablePaymentLinkURL sets the "payment_link_url" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillablePaymentLinkURL(v *string) *ChargeUpdateOne {
	if v != nil {
		_u.SetPaymentLinkURL(*v)
	}
	return _u
}

// ClearPaymentLinkURL clears the value of the "payment_link_url" field.
func (_u *ChargeUpdateOne) ClearPaymentLinkURL() *ChargeUpdateOne {
	_u.mutation.ClearPaymentLinkURL()
	return _u
}

// SetGatewayReference sets the "gateway_reference" field.
func (_u *ChargeUpdateOne) SetGatewayReference(v string) *ChargeUpdateOne {
	_u.mutation.SetGatewayReference(v)
	return _u
}

// SetNillableGatewayReference sets the "gateway_reference" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillableGatewayReference(v *string) *ChargeUpdateOne {
	if v != nil {
		_u.SetGatewayReference(*v)
	}
	return _u
}

// ClearGatewayReference clears the value of the "gateway_reference" field.
func (_u *ChargeUpdateOne) ClearGatewayReference() *ChargeUpdateOne {
	_u.mutation.ClearGatewayReference()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ChargeUpdateOne) SetFailureReason(v string) *ChargeUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillableFailureReason(v *string) *ChargeUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ChargeUpdateOne) ClearFailureReason() *ChargeUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *ChargeUpdateOne) SetPaidAt(v time.Time) *ChargeUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *ChargeUpdateOne) SetNillablePaidAt(v *time.Time) *ChargeUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *ChargeUpdateOne) ClearPaidAt() *ChargeUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// Mutation returns the ChargeMutation object of the builder.
func (_u *ChargeUpdateOne) Mutation() *ChargeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChargeUpdate builder.
func (_u *ChargeUpdateOne) Where(ps ...predicate.Charge) *ChargeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChargeUpdateOne) Select(field string, fields ...string) *ChargeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Charge entity.
func (_u *ChargeUpdateOne) Save(ctx context.Context) (*Charge, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChargeUpdateOne) SaveX(ctx context.Context) *Charge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChargeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChargeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChargeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := charge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChargeUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := charge.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`repo: validator failed for field "Charge.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := charge.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`repo: validator failed for field "Charge.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := charge.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Charge.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentLinkURL(); ok {
		if err := charge.PaymentLinkURLValidator(v); err != nil {
			return &ValidationError{Name: "payment_link_url", err: fmt.Errorf(`repo: validator failed for field "Charge.payment_link_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GatewayReference(); ok {
		if err := charge.GatewayReferenceValidator(v); err != nil {
			return &ValidationError{Name: "gateway_reference", err: fmt.Errorf(`repo: validator failed for field "Charge.gateway_reference": %w`, err)}
		}
	}
	return nil
}

func (_u *ChargeUpdateOne) sqlSave(ctx context.Context) (_node *Charge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(charge.Table, charge.Columns, sqlgraph.NewFieldSpec(charge.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Charge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, charge.FieldID)
		for _, f := range fields {
			if !charge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != charge.FieldID {
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
		_spec.SetField(charge.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(charge.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(charge.FieldBookingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(charge.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(charge.FieldAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(charge.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(charge.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentLinkURL(); ok {
		_spec.SetField(charge.FieldPaymentLinkURL, field.TypeString, value)
	}
	if _u.mutation.PaymentLinkURLCleared() {
		_spec.ClearField(charge.FieldPaymentLinkURL, field.TypeString)
	}
	if value, ok := _u.mutation.GatewayReference(); ok {
		_spec.SetField(charge.FieldGatewayReference, field.TypeString, value)
	}
	if _u.mutation.GatewayReferenceCleared() {
		_spec.ClearField(charge.FieldGatewayReference, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(charge.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(charge.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(charge.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(charge.FieldPaidAt, field.TypeTime)
	}
	_node = &Charge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{charge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
