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
	"github.com/danahmadi/bookora_backend/internal/repo/businessmember"
	"github.com/danahmadi/bookora_backend/internal/repo/user"
	"github.com/google/uuid"
)

// BusinessMemberCreate is the builder for creating a BusinessMember entity.
type BusinessMemberCreate struct {
	config
	mutation *BusinessMemberMutation
	hooks    []Hook
}

// SetBusinessID sets the "business_id" field.
func (_c *BusinessMemberCreate) SetBusinessID(v uuid.UUID) *BusinessMemberCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BusinessMemberCreate) SetUserID(v uuid.UUID) *BusinessMemberCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *BusinessMemberCreate) SetRole(v businessmember.Role) *BusinessMemberCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *BusinessMemberCreate) SetIsActive(v bool) *BusinessMemberCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *BusinessMemberCreate) SetNillableIsActive(v *bool) *BusinessMemberCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetJoinedAt sets the "joined_at" field.
func (_c *BusinessMemberCreate) SetJoinedAt(v time.Time) *BusinessMemberCreate {
	_c.mutation.SetJoinedAt(v)
	return _c
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_c *BusinessMemberCreate) SetNillableJoinedAt(v *time.Time) *BusinessMemberCreate {
	if v != nil {
		_c.SetJoinedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessMemberCreate) SetID(v uuid.UUID) *BusinessMemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BusinessMemberCreate) SetNillableID(v *uuid.UUID) *BusinessMemberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *BusinessMemberCreate) SetBusiness(v *Business) *BusinessMemberCreate {
	return _c.SetBusinessID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *BusinessMemberCreate) SetUser(v *User) *BusinessMemberCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the BusinessMemberMutation object of the builder.
func (_c *BusinessMemberCreate) Mutation() *BusinessMemberMutation {
	return _c.mutation
}

// Save creates the BusinessMember in the database.
func (_c *BusinessMemberCreate) Save(ctx context.Context) (*BusinessMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessMemberCreate) SaveX(ctx context.Context) *BusinessMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessMemberCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := businessmember.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		v := businessmember.DefaultJoinedAt()
		_c.mutation.SetJoinedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := businessmember.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessMemberCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`repo: missing required field "BusinessMember.business_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "BusinessMember.user_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required field "BusinessMember.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := businessmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "BusinessMember.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "BusinessMember.is_active"`)}
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		return &ValidationError{Name: "joined_at", err: errors.New(`repo: missing required field "BusinessMember.joined_at"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`repo: missing required edge "BusinessMember.business"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "BusinessMember.user"`)}
	}
	return nil
}

func (_c *BusinessMemberCreate) sqlSave(ctx context.Context) (*BusinessMember, error) {
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

func (_c *BusinessMemberCreate) createSpec() (*BusinessMember, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businessmember.Table, sqlgraph.NewFieldSpec(businessmember.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(businessmember.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(businessmember.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.JoinedAt(); ok {
		_spec.SetField(businessmember.FieldJoinedAt, field.TypeTime, value)
		_node.JoinedAt = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_node.BusinessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BusinessMemberCreateBulk is the builder for creating many BusinessMember entities in bulk.
type BusinessMemberCreateBulk struct {
	config
	err      error
	builders []*BusinessMemberCreate
}

// Save creates the BusinessMember entities in the database.
func (_c *BusinessMemberCreateBulk) Save(ctx context.Context) ([]*BusinessMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessMemberMutation)
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
func (_c *BusinessMemberCreateBulk) SaveX(ctx context.Context) []*BusinessMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
