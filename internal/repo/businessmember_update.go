// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/business"
	"github.com/danahmadi/bookora_backend/internal/repo/businessmember"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/danahmadi/bookora_backend/internal/repo/user"
	"github.com/google/uuid"
)

// BusinessMemberUpdate is the builder for updating BusinessMember entities.
type BusinessMemberUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessMemberMutation
}

// Where appends a list predicates to the BusinessMemberUpdate builder.
func (_u *BusinessMemberUpdate) Where(ps ...predicate.BusinessMember) *BusinessMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *BusinessMemberUpdate) SetBusinessID(v uuid.UUID) *BusinessMemberUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *BusinessMemberUpdate) SetNillableBusinessID(v *uuid.UUID) *BusinessMemberUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BusinessMemberUpdate) SetUserID(v uuid.UUID) *BusinessMemberUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BusinessMemberUpdate) SetNillableUserID(v *uuid.UUID) *BusinessMemberUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *BusinessMemberUpdate) SetRole(v businessmember.Role) *BusinessMemberUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *BusinessMemberUpdate) SetNillableRole(v *businessmember.Role) *BusinessMemberUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BusinessMemberUpdate) SetIsActive(v bool) *BusinessMemberUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BusinessMemberUpdate) SetNillableIsActive(v *bool) *BusinessMemberUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *BusinessMemberUpdate) SetBusiness(v *Business) *BusinessMemberUpdate {
	return _u.SetBusinessID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *BusinessMemberUpdate) SetUser(v *User) *BusinessMemberUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the BusinessMemberMutation object of the builder.
func (_u *BusinessMemberUpdate) Mutation() *BusinessMemberMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *BusinessMemberUpdate) ClearBusiness() *BusinessMemberUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *BusinessMemberUpdate) ClearUser() *BusinessMemberUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessMemberUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := businessmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "BusinessMember.role": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BusinessMember.business"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BusinessMember.user"`)
	}
	return nil
}

func (_u *BusinessMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessmember.Table, businessmember.Columns, sqlgraph.NewFieldSpec(businessmember.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(businessmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(businessmember.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   businessmember.BusinessTable,
			Columns: []string{businessmember.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   businessmember.BusinessTable,
			Columns: []string{businessmember.BusinessColumn},
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
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   businessmember.UserTable,
			Columns: []string{businessmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   businessmember.UserTable,
			Columns: []string{businessmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessMemberUpdateOne is the builder for updating a single BusinessMember entity.
type BusinessMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessMemberMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *BusinessMemberUpdateOne) SetBusinessID(v uuid.UUID) *BusinessMemberUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *BusinessMemberUpdateOne) SetNillableBusinessID(v *uuid.UUID) *BusinessMemberUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BusinessMemberUpdateOne) SetUserID(v uuid.UUID) *BusinessMemberUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BusinessMemberUpdateOne) SetNillableUserID(v *uuid.UUID) *BusinessMemberUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *BusinessMemberUpdateOne) SetRole(v businessmember.Role) *BusinessMemberUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *BusinessMemberUpdateOne) SetNillableRole(v *businessmember.Role) *BusinessMemberUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BusinessMemberUpdateOne) SetIsActive(v bool) *BusinessMemberUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BusinessMemberUpdateOne) SetNillableIsActive(v *bool) *BusinessMemberUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *BusinessMemberUpdateOne) SetBusiness(v *Business) *BusinessMemberUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *BusinessMemberUpdateOne) SetUser(v *User) *BusinessMemberUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the BusinessMemberMutation object of the builder.
func (_u *BusinessMemberUpdateOne) Mutation() *BusinessMemberMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *BusinessMemberUpdateOne) ClearBusiness() *BusinessMemberUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *BusinessMemberUpdateOne) ClearUser() *BusinessMemberUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the BusinessMemberUpdate builder.
func (_u *BusinessMemberUpdateOne) Where(ps ...predicate.BusinessMember) *BusinessMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessMemberUpdateOne) Select(field string, fields ...string) *BusinessMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessMember entity.
func (_u *BusinessMemberUpdateOne) Save(ctx context.Context) (*BusinessMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessMemberUpdateOne) SaveX(ctx context.Context) *BusinessMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessMemberUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := businessmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "BusinessMember.role": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BusinessMember.business"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "BusinessMember.user"`)
	}
	return nil
}

func (_u *BusinessMemberUpdateOne) sqlSave(ctx context.Context) (_node *BusinessMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessmember.Table, businessmember.Columns, sqlgraph.NewFieldSpec(businessmember.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BusinessMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businessmember.FieldID)
		for _, f := range fields {
			if !businessmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != businessmember.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(businessmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(businessmember.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   businessmember.BusinessTable,
			Columns: []string{businessmember.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   businessmember.BusinessTable,
			Columns: []string{businessmember.BusinessColumn},
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
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   businessmember.UserTable,
			Columns: []string{businessmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   businessmember.UserTable,
			Columns: []string{businessmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BusinessMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
