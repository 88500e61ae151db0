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
	"github.com/danahmadi/bookora_backend/internal/repo/availabilityrule"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AvailabilityRuleUpdate is the builder for updating AvailabilityRule entities.
type AvailabilityRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityRuleMutation
}

// Where appends a list predicates to the AvailabilityRuleUpdate builder.
func (_u *AvailabilityRuleUpdate) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityRuleUpdate) SetUpdatedAt(v time.Time) *AvailabilityRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *AvailabilityRuleUpdate) SetBusinessID(v uuid.UUID) *AvailabilityRuleUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableBusinessID(v *uuid.UUID) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *AvailabilityRuleUpdate) SetProviderID(v uuid.UUID) *AvailabilityRuleUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableProviderID(v *uuid.UUID) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityRuleUpdate) SetDayOfWeek(v int8) *AvailabilityRuleUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableDayOfWeek(v *int8) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *AvailabilityRuleUpdate) AddDayOfWeek(v int8) *AvailabilityRuleUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilityRuleUpdate) SetStartTime(v string) *AvailabilityRuleUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableStartTime(v *string) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilityRuleUpdate) SetEndTime(v string) *AvailabilityRuleUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableEndTime(v *string) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *AvailabilityRuleUpdate) SetIsAvailable(v bool) *AvailabilityRuleUpdate {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableIsAvailable(v *bool) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *AvailabilityRuleUpdate) SetEffectiveDate(v string) *AvailabilityRuleUpdate {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableEffectiveDate(v *string) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *AvailabilityRuleUpdate) ClearEffectiveDate() *AvailabilityRuleUpdate {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *AvailabilityRuleUpdate) SetExpiryDate(v string) *AvailabilityRuleUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableExpiryDate(v *string) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *AvailabilityRuleUpdate) ClearExpiryDate() *AvailabilityRuleUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// Mutation returns the AvailabilityRuleMutation object of the builder.
func (_u *AvailabilityRuleUpdate) Mutation() *AvailabilityRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityRuleUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := availabilityrule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := availabilityrule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := availabilityrule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EffectiveDate(); ok {
		if err := availabilityrule.EffectiveDateValidator(v); err != nil {
			return &ValidationError{Name: "effective_date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.effective_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpiryDate(); ok {
		if err := availabilityrule.ExpiryDateValidator(v); err != nil {
			return &ValidationError{Name: "expiry_date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.expiry_date": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilityrule.Table, availabilityrule.Columns, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(availabilityrule.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(availabilityrule.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availabilityrule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availabilityrule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(availabilityrule.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(availabilityrule.FieldEffectiveDate, field.TypeString, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(availabilityrule.FieldEffectiveDate, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(availabilityrule.FieldExpiryDate, field.TypeString, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(availabilityrule.FieldExpiryDate, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityRuleUpdateOne is the builder for updating a single AvailabilityRule entity.
type AvailabilityRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityRuleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityRuleUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *AvailabilityRuleUpdateOne) SetBusinessID(v uuid.UUID) *AvailabilityRuleUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableBusinessID(v *uuid.UUID) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *AvailabilityRuleUpdateOne) SetProviderID(v uuid.UUID) *AvailabilityRuleUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableProviderID(v *uuid.UUID) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityRuleUpdateOne) SetDayOfWeek(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableDayOfWeek(v *int8) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *AvailabilityRuleUpdateOne) AddDayOfWeek(v int8) *AvailabilityRuleUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilityRuleUpdateOne) SetStartTime(v string) *AvailabilityRuleUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableStartTime(v *string) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilityRuleUpdateOne) SetEndTime(v string) *AvailabilityRuleUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableEndTime(v *string) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *AvailabilityRuleUpdateOne) SetIsAvailable(v bool) *AvailabilityRuleUpdateOne {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableIsAvailable(v *bool) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *AvailabilityRuleUpdateOne) SetEffectiveDate(v string) *AvailabilityRuleUpdateOne {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableEffectiveDate(v *string) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *AvailabilityRuleUpdateOne) ClearEffectiveDate() *AvailabilityRuleUpdateOne {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *AvailabilityRuleUpdateOne) SetExpiryDate(v string) *AvailabilityRuleUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableExpiryDate(v *string) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *AvailabilityRuleUpdateOne) ClearExpiryDate() *AvailabilityRuleUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// Mutation returns the AvailabilityRuleMutation object of the builder.
func (_u *AvailabilityRuleUpdateOne) Mutation() *AvailabilityRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilityRuleUpdate builder.
func (_u *AvailabilityRuleUpdateOne) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityRuleUpdateOne) Select(field string, fields ...string) *AvailabilityRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AvailabilityRule entity.
func (_u *AvailabilityRuleUpdateOne) Save(ctx context.Context) (*AvailabilityRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityRuleUpdateOne) SaveX(ctx context.Context) *AvailabilityRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityRuleUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := availabilityrule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := availabilityrule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := availabilityrule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EffectiveDate(); ok {
		if err := availabilityrule.EffectiveDateValidator(v); err != nil {
			return &ValidationError{Name: "effective_date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.effective_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpiryDate(); ok {
		if err := availabilityrule.ExpiryDateValidator(v); err != nil {
			return &ValidationError{Name: "expiry_date", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.expiry_date": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityRuleUpdateOne) sqlSave(ctx context.Context) (_node *AvailabilityRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilityrule.Table, availabilityrule.Columns, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AvailabilityRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilityrule.FieldID)
		for _, f := range fields {
			if !availabilityrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availabilityrule.FieldID {
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
		_spec.SetField(availabilityrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(availabilityrule.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(availabilityrule.FieldProviderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(availabilityrule.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availabilityrule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availabilityrule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(availabilityrule.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(availabilityrule.FieldEffectiveDate, field.TypeString, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(availabilityrule.FieldEffectiveDate, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(availabilityrule.FieldExpiryDate, field.TypeString, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(availabilityrule.FieldExpiryDate, field.TypeString)
	}
	_node = &AvailabilityRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
