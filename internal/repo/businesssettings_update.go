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
	"github.com/danahmadi/bookora_backend/internal/repo/business"
	"github.com/danahmadi/bookora_backend/internal/repo/businesssettings"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// BusinessSettingsUpdate is the builder for updating BusinessSettings entities.
type BusinessSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessSettingsMutation
}

// Where appends a list predicates to the BusinessSettingsUpdate builder.
func (_u *BusinessSettingsUpdate) Where(ps ...predicate.BusinessSettings) *BusinessSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessSettingsUpdate) SetUpdatedAt(v time.Time) *BusinessSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *BusinessSettingsUpdate) SetBusinessID(v uuid.UUID) *BusinessSettingsUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableBusinessID(v *uuid.UUID) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (_u *BusinessSettingsUpdate) SetCancellationWindowHours(v int) *BusinessSettingsUpdate {
	_u.mutation.ResetCancellationWindowHours()
	_u.mutation.SetCancellationWindowHours(v)
	return _u
}

// SetNillableCancellationWindowHours sets the "cancellation_window_hours" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableCancellationWindowHours(v *int) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetCancellationWindowHours(*v)
	}
	return _u
}

// AddCancellationWindowHours adds value to the "cancellation_window_hours" field.
func (_u *BusinessSettingsUpdate) AddCancellationWindowHours(v int) *BusinessSettingsUpdate {
	_u.mutation.AddCancellationWindowHours(v)
	return _u
}

// SetCancellationFeeAmount sets the "cancellation_fee_amount" field.
func (_u *BusinessSettingsUpdate) SetCancellationFeeAmount(v int64) *BusinessSettingsUpdate {
	_u.mutation.ResetCancellationFeeAmount()
	_u.mutation.SetCancellationFeeAmount(v)
	return _u
}

// SetNillableCancellationFeeAmount sets the "cancellation_fee_amount" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableCancellationFeeAmount(v *int64) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetCancellationFeeAmount(*v)
	}
	return _u
}

// AddCancellationFeeAmount adds value to the "cancellation_fee_amount" field.
func (_u *BusinessSettingsUpdate) AddCancellationFeeAmount(v int64) *BusinessSettingsUpdate {
	_u.mutation.AddCancellationFeeAmount(v)
	return _u
}

// SetAllowCustomerSelfBook sets the "allow_customer_self_book" field.
func (_u *BusinessSettingsUpdate) SetAllowCustomerSelfBook(v bool) *BusinessSettingsUpdate {
	_u.mutation.SetAllowCustomerSelfBook(v)
	return _u
}

// SetNillableAllowCustomerSelfBook sets the "allow_customer_self_book" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableAllowCustomerSelfBook(v *bool) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetAllowCustomerSelfBook(*v)
	}
	return _u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_u *BusinessSettingsUpdate) SetDefaultDurationMin(v int) *BusinessSettingsUpdate {
	_u.mutation.ResetDefaultDurationMin()
	_u.mutation.SetDefaultDurationMin(v)
	return _u
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableDefaultDurationMin(v *int) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetDefaultDurationMin(*v)
	}
	return _u
}

// AddDefaultDurationMin adds value to the "default_duration_min" field.
func (_u *BusinessSettingsUpdate) AddDefaultDurationMin(v int) *BusinessSettingsUpdate {
	_u.mutation.AddDefaultDurationMin(v)
	return _u
}

// SetDefaultPrice sets the "default_price" field.
func (_u *BusinessSettingsUpdate) SetDefaultPrice(v int64) *BusinessSettingsUpdate {
	_u.mutation.ResetDefaultPrice()
	_u.mutation.SetDefaultPrice(v)
	return _u
}

// SetNillableDefaultPrice sets the "default_price" field if the given value is not nil.
func (_u *BusinessSettingsUpdate) SetNillableDefaultPrice(v *int64) *BusinessSettingsUpdate {
	if v != nil {
		_u.SetDefaultPrice(*v)
	}
	return _u
}

// AddDefaultPrice adds value to the "default_price" field.
func (_u *BusinessSettingsUpdate) AddDefaultPrice(v int64) *BusinessSettingsUpdate {
	_u.mutation.AddDefaultPrice(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *BusinessSettingsUpdate) SetBusiness(v *Business) *BusinessSettingsUpdate {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the BusinessSettingsMutation object of the builder.
func (_u *BusinessSettingsUpdate) Mutation() *BusinessSettingsMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *BusinessSettingsUpdate) ClearBusiness() *BusinessSettingsUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businesssettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessSettingsUpdate) check() error {
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BusinessSettings.business"`)
	}
	return nil
}

func (_u *BusinessSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesssettings.Table, businesssettings.Columns, sqlgraph.NewFieldSpec(businesssettings.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businesssettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CancellationWindowHours(); ok {
		_spec.SetField(businesssettings.FieldCancellationWindowHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancellationWindowHours(); ok {
		_spec.AddField(businesssettings.FieldCancellationWindowHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancellationFeeAmount(); ok {
		_spec.SetField(businesssettings.FieldCancellationFeeAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCancellationFeeAmount(); ok {
		_spec.AddField(businesssettings.FieldCancellationFeeAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AllowCustomerSelfBook(); ok {
		_spec.SetField(businesssettings.FieldAllowCustomerSelfBook, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultDurationMin(); ok {
		_spec.SetField(businesssettings.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMin(); ok {
		_spec.AddField(businesssettings.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultPrice(); ok {
		_spec.SetField(businesssettings.FieldDefaultPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultPrice(); ok {
		_spec.AddField(businesssettings.FieldDefaultPrice, field.TypeInt64, value)
	}
	if _u.mutation.BusinessCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesssettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessSettingsUpdateOne is the builder for updating a single BusinessSettings entity.
type BusinessSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessSettingsMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessSettingsUpdateOne) SetUpdatedAt(v time.Time) *BusinessSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *BusinessSettingsUpdateOne) SetBusinessID(v uuid.UUID) *BusinessSettingsUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableBusinessID(v *uuid.UUID) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (_u *BusinessSettingsUpdateOne) SetCancellationWindowHours(v int) *BusinessSettingsUpdateOne {
	_u.mutation.ResetCancellationWindowHours()
	_u.mutation.SetCancellationWindowHours(v)
	return _u
}

// SetNillableCancellationWindowHours sets the "cancellation_window_hours" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableCancellationWindowHours(v *int) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetCancellationWindowHours(*v)
	}
	return _u
}

// AddCancellationWindowHours adds value to the "cancellation_window_hours" field.
func (_u *BusinessSettingsUpdateOne) AddCancellationWindowHours(v int) *BusinessSettingsUpdateOne {
	_u.mutation.AddCancellationWindowHours(v)
	return _u
}

// SetCancellationFeeAmount sets the "cancellation_fee_amount" field.
func (_u *BusinessSettingsUpdateOne) SetCancellationFeeAmount(v int64) *BusinessSettingsUpdateOne {
	_u.mutation.ResetCancellationFeeAmount()
	_u.mutation.SetCancellationFeeAmount(v)
	return _u
}

// SetNillableCancellationFeeAmount sets the "cancellation_fee_amount" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableCancellationFeeAmount(v *int64) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetCancellationFeeAmount(*v)
	}
	return _u
}

// AddCancellationFeeAmount adds value to the "cancellation_fee_amount" field.
func (_u *BusinessSettingsUpdateOne) AddCancellationFeeAmount(v int64) *BusinessSettingsUpdateOne {
	_u.mutation.AddCancellationFeeAmount(v)
	return _u
}

// SetAllowCustomerSelfBook sets the "allow_customer_self_book" field.
func (_u *BusinessSettingsUpdateOne) SetAllowCustomerSelfBook(v bool) *BusinessSettingsUpdateOne {
	_u.mutation.SetAllowCustomerSelfBook(v)
	return _u
}

// SetNillableAllowCustomerSelfBook sets the "allow_customer_self_book" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableAllowCustomerSelfBook(v *bool) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetAllowCustomerSelfBook(*v)
	}
	return _u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_u *BusinessSettingsUpdateOne) SetDefaultDurationMin(v int) *BusinessSettingsUpdateOne {
	_u.mutation.ResetDefaultDurationMin()
	_u.mutation.SetDefaultDurationMin(v)
	return _u
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableDefaultDurationMin(v *int) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetDefaultDurationMin(*v)
	}
	return _u
}

// AddDefaultDurationMin adds value to the "default_duration_min" field.
func (_u *BusinessSettingsUpdateOne) AddDefaultDurationMin(v int) *BusinessSettingsUpdateOne {
	_u.mutation.AddDefaultDurationMin(v)
	return _u
}

// SetDefaultPrice sets the "default_price" field.
func (_u *BusinessSettingsUpdateOne) SetDefaultPrice(v int64) *BusinessSettingsUpdateOne {
	_u.mutation.ResetDefaultPrice()
	_u.mutation.SetDefaultPrice(v)
	return _u
}

// SetNillableDefaultPrice sets the "default_price" field if the given value is not nil.
func (_u *BusinessSettingsUpdateOne) SetNillableDefaultPrice(v *int64) *BusinessSettingsUpdateOne {
	if v != nil {
		_u.SetDefaultPrice(*v)
	}
	return _u
}

// AddDefaultPrice adds value to the "default_price" field.
func (_u *BusinessSettingsUpdateOne) AddDefaultPrice(v int64) *BusinessSettingsUpdateOne {
	_u.mutation.AddDefaultPrice(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *BusinessSettingsUpdateOne) SetBusiness(v *Business) *BusinessSettingsUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the BusinessSettingsMutation object of the builder.
func (_u *BusinessSettingsUpdateOne) Mutation() *BusinessSettingsMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *BusinessSettingsUpdateOne) ClearBusiness() *BusinessSettingsUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// Where appends a list predicates to the BusinessSettingsUpdate builder.
func (_u *BusinessSettingsUpdateOne) Where(ps ...predicate.BusinessSettings) *BusinessSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessSettingsUpdateOne) Select(field string, fields ...string) *BusinessSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessSettings entity.
func (_u *BusinessSettingsUpdateOne) Save(ctx context.Context) (*BusinessSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessSettingsUpdateOne) SaveX(ctx context.Context) *BusinessSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businesssettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessSettingsUpdateOne) check() error {
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BusinessSettings.business"`)
	}
	return nil
}

func (_u *BusinessSettingsUpdateOne) sqlSave(ctx context.Context) (_node *BusinessSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businesssettings.Table, businesssettings.Columns, sqlgraph.NewFieldSpec(businesssettings.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BusinessSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businesssettings.FieldID)
		for _, f := range fields {
			if !businesssettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != businesssettings.FieldID {
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
		_spec.SetField(businesssettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CancellationWindowHours(); ok {
		_spec.SetField(businesssettings.FieldCancellationWindowHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancellationWindowHours(); ok {
		_spec.AddField(businesssettings.FieldCancellationWindowHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancellationFeeAmount(); ok {
		_spec.SetField(businesssettings.FieldCancellationFeeAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCancellationFeeAmount(); ok {
		_spec.AddField(businesssettings.FieldCancellationFeeAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AllowCustomerSelfBook(); ok {
		_spec.SetField(businesssettings.FieldAllowCustomerSelfBook, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultDurationMin(); ok {
		_spec.SetField(businesssettings.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMin(); ok {
		_spec.AddField(businesssettings.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultPrice(); ok {
		_spec.SetField(businesssettings.FieldDefaultPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultPrice(); ok {
		_spec.AddField(businesssettings.FieldDefaultPrice, field.TypeInt64, value)
	}
	if _u.mutation.BusinessCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BusinessSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businesssettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
