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
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/danahmadi/bookora_backend/internal/repo/serviceoffering"
	"github.com/google/uuid"
)

// ServiceOfferingUpdate is the builder for updating ServiceOffering entities.
type ServiceOfferingUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceOfferingMutation
}

// Where appends a list predicates to the ServiceOfferingUpdate builder.
func (_u *ServiceOfferingUpdate) Where(ps ...predicate.ServiceOffering) *ServiceOfferingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceOfferingUpdate) SetUpdatedAt(v time.Time) *ServiceOfferingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ServiceOfferingUpdate) SetDeletedAt(v time.Time) *ServiceOfferingUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ServiceOfferingUpdate) SetNillableDeletedAt(v *time.Time) *ServiceOfferingUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ServiceOfferingUpdate) ClearDeletedAt() *ServiceOfferingUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *ServiceOfferingUpdate) SetBusinessID(v uuid.UUID) *ServiceOfferingUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *ServiceOfferingUpdate) SetNillableBusinessID(v *uuid.UUID) *ServiceOfferingUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceOfferingUpdate) SetName(v string) *ServiceOfferingUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceOfferingUpdate) SetNillableName(v *string) *ServiceOfferingUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceOfferingUpdate) SetDescription(v string) *ServiceOfferingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceOfferingUpdate) SetNillableDescription(v *string) *ServiceOfferingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServiceOfferingUpdate) ClearDescription() *ServiceOfferingUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *ServiceOfferingUpdate) SetDurationMin(v int) *ServiceOfferingUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *ServiceOfferingUpdate) SetNillableDurationMin(v *int) *ServiceOfferingUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *ServiceOfferingUpdate) AddDurationMin(v int) *ServiceOfferingUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *ServiceOfferingUpdate) SetPrice(v int64) *ServiceOfferingUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ServiceOfferingUpdate) SetNillablePrice(v *int64) *ServiceOfferingUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ServiceOfferingUpdate) AddPrice(v int64) *ServiceOfferingUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceOfferingUpdate) SetIsActive(v bool) *ServiceOfferingUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceOfferingUpdate) SetNillableIsActive(v *bool) *ServiceOfferingUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ServiceOfferingMutation object of the builder.
func (_u *ServiceOfferingUpdate) Mutation() *ServiceOfferingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceOfferingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceOfferingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceOfferingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceOfferingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceOfferingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := serviceoffering.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceOfferingUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := serviceoffering.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := serviceoffering.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := serviceoffering.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.price": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceOfferingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serviceoffering.Table, serviceoffering.Columns, sqlgraph.NewFieldSpec(serviceoffering.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceoffering.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(serviceoffering.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(serviceoffering.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(serviceoffering.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(serviceoffering.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(serviceoffering.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(serviceoffering.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(serviceoffering.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(serviceoffering.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(serviceoffering.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(serviceoffering.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(serviceoffering.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceoffering.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceOfferingUpdateOne is the builder for updating a single ServiceOffering entity.
type ServiceOfferingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceOfferingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceOfferingUpdateOne) SetUpdatedAt(v time.Time) *ServiceOfferingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ServiceOfferingUpdateOne) SetDeletedAt(v time.Time) *ServiceOfferingUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ServiceOfferingUpdateOne) SetNillableDeletedAt(v *time.Time) *ServiceOfferingUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ServiceOfferingUpdateOne) ClearDeletedAt() *ServiceOfferingUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *ServiceOfferingUpdateOne) SetBusinessID(v uuid.UUID) *ServiceOfferingUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *ServiceOfferingUpdateOne) SetNillableBusinessID(v *uuid.UUID) *ServiceOfferingUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceOfferingUpdateOne) SetName(v string) *ServiceOfferingUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceOfferingUpdateOne) SetNillableName(v *string) *ServiceOfferingUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceOfferingUpdateOne) SetDescription(v string) *ServiceOfferingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceOfferingUpdateOne) SetNillableDescription(v *string) *ServiceOfferingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServiceOfferingUpdateOne) ClearDescription() *ServiceOfferingUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *ServiceOfferingUpdateOne) SetDurationMin(v int) *ServiceOfferingUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *ServiceOfferingUpdateOne) SetNillableDurationMin(v *int) *ServiceOfferingUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *ServiceOfferingUpdateOne) AddDurationMin(v int) *ServiceOfferingUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *ServiceOfferingUpdateOne) SetPrice(v int64) *ServiceOfferingUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ServiceOfferingUpdateOne) SetNillablePrice(v *int64) *ServiceOfferingUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ServiceOfferingUpdateOne) AddPrice(v int64) *ServiceOfferingUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceOfferingUpdateOne) SetIsActive(v bool) *ServiceOfferingUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceOfferingUpdateOne) SetNillableIsActive(v *bool) *ServiceOfferingUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ServiceOfferingMutation object of the builder.
func (_u *ServiceOfferingUpdateOne) Mutation() *ServiceOfferingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServiceOfferingUpdate builder.
func (_u *ServiceOfferingUpdateOne) Where(ps ...predicate.ServiceOffering) *ServiceOfferingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceOfferingUpdateOne) Select(field string, fields ...string) *ServiceOfferingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceOffering entity.
func (_u *ServiceOfferingUpdateOne) Save(ctx context.Context) (*ServiceOffering, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceOfferingUpdateOne) SaveX(ctx context.Context) *ServiceOffering {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceOfferingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceOfferingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceOfferingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := serviceoffering.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceOfferingUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := serviceoffering.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := serviceoffering.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := serviceoffering.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "ServiceOffering.price": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceOfferingUpdateOne) sqlSave(ctx context.Context) (_node *ServiceOffering, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serviceoffering.Table, serviceoffering.Columns, sqlgraph.NewFieldSpec(serviceoffering.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ServiceOffering.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, serviceoffering.FieldID)
		for _, f := range fields {
			if !serviceoffering.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != serviceoffering.FieldID {
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
		_spec.SetField(serviceoffering.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(serviceoffering.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(serviceoffering.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(serviceoffering.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(serviceoffering.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(serviceoffering.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(serviceoffering.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(serviceoffering.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(serviceoffering.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(serviceoffering.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(serviceoffering.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(serviceoffering.FieldIsActive, field.TypeBool, value)
	}
	_node = &ServiceOffering{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceoffering.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
