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
	"github.com/danahmadi/bookora_backend/internal/repo/providerprofile"
	"github.com/google/uuid"
)

// ProviderProfileUpdate is the builder for updating ProviderProfile entities.
type ProviderProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderProfileMutation
}

// Where appends a list predicates to the ProviderProfileUpdate builder.
func (_u *ProviderProfileUpdate) Where(ps ...predicate.ProviderProfile) *ProviderProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderProfileUpdate) SetUpdatedAt(v time.Time) *ProviderProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *ProviderProfileUpdate) SetBusinessID(v uuid.UUID) *ProviderProfileUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *ProviderProfileUpdate) SetNillableBusinessID(v *uuid.UUID) *ProviderProfileUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *ProviderProfileUpdate) SetMemberID(v uuid.UUID) *ProviderProfileUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *ProviderProfileUpdate) SetNillableMemberID(v *uuid.UUID) *ProviderProfileUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ProviderProfileUpdate) SetDisplayName(v string) *ProviderProfileUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ProviderProfileUpdate) SetNillableDisplayName(v *string) *ProviderProfileUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *ProviderProfileUpdate) SetBio(v string) *ProviderProfileUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *ProviderProfileUpdate) SetNillableBio(v *string) *ProviderProfileUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *ProviderProfileUpdate) ClearBio() *ProviderProfileUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *ProviderProfileUpdate) SetIsAccepting(v bool) *ProviderProfileUpdate {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *ProviderProfileUpdate) SetNillableIsAccepting(v *bool) *ProviderProfileUpdate {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_u *ProviderProfileUpdate) SetDefaultDurationMin(v int) *ProviderProfileUpdate {
	_u.mutation.ResetDefaultDurationMin()
	_u.mutation.SetDefaultDurationMin(v)
	return _u
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_u *ProviderProfileUpdate) SetNillableDefaultDurationMin(v *int) *ProviderProfileUpdate {
	if v != nil {
		_u.SetDefaultDurationMin(*v)
	}
	return _u
}

// AddDefaultDurationMin adds value to the "default_duration_min" field.
func (_u *ProviderProfileUpdate) AddDefaultDurationMin(v int) *ProviderProfileUpdate {
	_u.mutation.AddDefaultDurationMin(v)
	return _u
}

// ClearDefaultDurationMin clears the value of the "default_duration_min" field.
func (_u *ProviderProfileUpdate) ClearDefaultDurationMin() *ProviderProfileUpdate {
	_u.mutation.ClearDefaultDurationMin()
	return _u
}

// SetDefaultPrice sets the "default_price" field.
func (_u *ProviderProfileUpdate) SetDefaultPrice(v int64) *ProviderProfileUpdate {
	_u.mutation.ResetDefaultPrice()
	_u.mutation.SetDefaultPrice(v)
	return _u
}

// SetNillableDefaultPrice sets the "default_price" field if the given value is not nil.
func (_u *ProviderProfileUpdate) SetNillableDefaultPrice(v *int64) *ProviderProfileUpdate {
	if v != nil {
		_u.SetDefaultPrice(*v)
	}
	return _u
}

// AddDefaultPrice adds value to the "default_price" field.
func (_u *ProviderProfileUpdate) AddDefaultPrice(v int64) *ProviderProfileUpdate {
	_u.mutation.AddDefaultPrice(v)
	return _u
}

// ClearDefaultPrice clears the value of the "default_price" field.
func (_u *ProviderProfileUpdate) ClearDefaultPrice() *ProviderProfileUpdate {
	_u.mutation.ClearDefaultPrice()
	return _u
}

// Mutation returns the ProviderProfileMutation object of the builder.
func (_u *ProviderProfileUpdate) Mutation() *ProviderProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := providerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderProfileUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := providerprofile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "ProviderProfile.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerprofile.Table, providerprofile.Columns, sqlgraph.NewFieldSpec(providerprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(providerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(providerprofile.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(providerprofile.FieldMemberID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(providerprofile.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(providerprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(providerprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(providerprofile.FieldIsAccepting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultDurationMin(); ok {
		_spec.SetField(providerprofile.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMin(); ok {
		_spec.AddField(providerprofile.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if _u.mutation.DefaultDurationMinCleared() {
		_spec.ClearField(providerprofile.FieldDefaultDurationMin, field.TypeInt)
	}
	if value, ok := _u.mutation.DefaultPrice(); ok {
		_spec.SetField(providerprofile.FieldDefaultPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultPrice(); ok {
		_spec.AddField(providerprofile.FieldDefaultPrice, field.TypeInt64, value)
	}
	if _u.mutation.DefaultPriceCleared() {
		_spec.ClearField(providerprofile.FieldDefaultPrice, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderProfileUpdateOne is the builder for updating a single ProviderProfile entity.
type ProviderProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderProfileUpdateOne) SetUpdatedAt(v time.Time) *ProviderProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *ProviderProfileUpdateOne) SetBusinessID(v uuid.UUID) *ProviderProfileUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *ProviderProfileUpdateOne) SetNillableBusinessID(v *uuid.UUID) *ProviderProfileUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *ProviderProfileUpdateOne) SetMemberID(v uuid.UUID) *ProviderProfileUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *ProviderProfileUpdateOne) SetNillableMemberID(v *uuid.UUID) *ProviderProfileUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ProviderProfileUpdateOne) SetDisplayName(v string) *ProviderProfileUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ProviderProfileUpdateOne) SetNillableDisplayName(v *string) *ProviderProfileUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetBio sets the "bio" field.
func (_u *ProviderProfileUpdateOne) SetBio(v string) *ProviderProfileUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *ProviderProfileUpdateOne) SetNillableBio(v *string) *ProviderProfileUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *ProviderProfileUpdateOne) ClearBio() *ProviderProfileUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *ProviderProfileUpdateOne) SetIsAccepting(v bool) *ProviderProfileUpdateOne {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *ProviderProfileUpdateOne) SetNillableIsAccepting(v *bool) *ProviderProfileUpdateOne {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_u *ProviderProfileUpdateOne) SetDefaultDurationMin(v int) *ProviderProfileUpdateOne {
	_u.mutation.ResetDefaultDurationMin()
	_u.mutation.SetDefaultDurationMin(v)
	return _u
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_u *ProviderProfileUpdateOne) SetNillableDefaultDurationMin(v *int) *ProviderProfileUpdateOne {
	if v != nil {
		_u.SetDefaultDurationMin(*v)
	}
	return _u
}

// AddDefaultDurationMin adds value to the "default_duration_min" field.
func (_u *ProviderProfileUpdateOne) AddDefaultDurationMin(v int) *ProviderProfileUpdateOne {
	_u.mutation.AddDefaultDurationMin(v)
	return _u
}

// ClearDefaultDurationMin clears the value of the "default_duration_min" field.
func (_u *ProviderProfileUpdateOne) ClearDefaultDurationMin() *ProviderProfileUpdateOne {
	_u.mutation.ClearDefaultDurationMin()
	return _u
}

// SetDefaultPrice sets the "default_price" field.
func (_u *ProviderProfileUpdateOne) SetDefaultPrice(v int64) *ProviderProfileUpdateOne {
	_u.mutation.ResetDefaultPrice()
	_u.mutation.SetDefaultPrice(v)
	return _u
}

// SetNillableDefaultPrice sets the "default_price" field if the given value is not nil.
func (_u *ProviderProfileUpdateOne) SetNillableDefaultPrice(v *int64) *ProviderProfileUpdateOne {
	if v != nil {
		_u.SetDefaultPrice(*v)
	}
	return _u
}

// AddDefaultPrice adds value to the "default_price" field.
func (_u *ProviderProfileUpdateOne) AddDefaultPrice(v int64) *ProviderProfileUpdateOne {
	_u.mutation.AddDefaultPrice(v)
	return _u
}

// ClearDefaultPrice clears the value of the "default_price" field.
func (_u *ProviderProfileUpdateOne) ClearDefaultPrice() *ProviderProfileUpdateOne {
	_u.mutation.ClearDefaultPrice()
	return _u
}

// Mutation returns the ProviderProfileMutation object of the builder.
func (_u *ProviderProfileUpdateOne) Mutation() *ProviderProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderProfileUpdate builder.
func (_u *ProviderProfileUpdateOne) Where(ps ...predicate.ProviderProfile) *ProviderProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderProfileUpdateOne) Select(field string, fields ...string) *ProviderProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderProfile entity.
func (_u *ProviderProfileUpdateOne) Save(ctx context.Context) (*ProviderProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderProfileUpdateOne) SaveX(ctx context.Context) *ProviderProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := providerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderProfileUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := providerprofile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "ProviderProfile.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderProfileUpdateOne) sqlSave(ctx context.Context) (_node *ProviderProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerprofile.Table, providerprofile.Columns, sqlgraph.NewFieldSpec(providerprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ProviderProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providerprofile.FieldID)
		for _, f := range fields {
			if !providerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != providerprofile.FieldID {
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
		_spec.SetField(providerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BusinessID(); ok {
		_spec.SetField(providerprofile.FieldBusinessID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(providerprofile.FieldMemberID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(providerprofile.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(providerprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(providerprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(providerprofile.FieldIsAccepting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultDurationMin(); ok {
		_spec.SetField(providerprofile.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMin(); ok {
		_spec.AddField(providerprofile.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if _u.mutation.DefaultDurationMinCleared() {
		_spec.ClearField(providerprofile.FieldDefaultDurationMin, field.TypeInt)
	}
	if value, ok := _u.mutation.DefaultPrice(); ok {
		_spec.SetField(providerprofile.FieldDefaultPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultPrice(); ok {
		_spec.AddField(providerprofile.FieldDefaultPrice, field.TypeInt64, value)
	}
	if _u.mutation.DefaultPriceCleared() {
		_spec.ClearField(providerprofile.FieldDefaultPrice, field.TypeInt64)
	}
	_node = &ProviderProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
