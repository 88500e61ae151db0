// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/providerprofile"
	"github.com/google/uuid"
)

// ProviderProfileCreate is the builder for creating a ProviderProfile entity.
type ProviderProfileCreate struct {
	config
	mutation *ProviderProfileMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderProfileCreate) SetCreatedAt(v time.Time) *ProviderProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderProfileCreate) SetNillableCreatedAt(v *time.Time) *ProviderProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProviderProfileCreate) SetUpdatedAt(v time.Time) *ProviderProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProviderProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProviderProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBusinessID sets the "business_id" field.
func (_c *ProviderProfileCreate) SetBusinessID(v uuid.UUID) *ProviderProfileCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *ProviderProfileCreate) SetMemberID(v uuid.UUID) *ProviderProfileCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ProviderProfileCreate) SetDisplayName(v string) *ProviderProfileCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetBio sets the "bio" field.
func (_c *ProviderProfileCreate) SetBio(v string) *ProviderProfileCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *ProviderProfileCreate) SetNillableBio(v *string) *ProviderProfileCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetIsAccepting sets the "is_accepting" field.
func (_c *ProviderProfileCreate) SetIsAccepting(v bool) *ProviderProfileCreate {
	_c.mutation.SetIsAccepting(v)
	return _c
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_c *ProviderProfileCreate) SetNillableIsAccepting(v *bool) *ProviderProfileCreate {
	if v != nil {
		_c.SetIsAccepting(*v)
	}
	return _c
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_c *ProviderProfileCreate) SetDefaultDurationMin(v int) *ProviderProfileCreate {
	_c.mutation.SetDefaultDurationMin(v)
	return _c
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_c *ProviderProfileCreate) SetNillableDefaultDurationMin(v *int) *ProviderProfileCreate {
	if v != nil {
		_c.SetDefaultDurationMin(*v)
	}
	return _c
}

// SetDefaultPrice sets the "default_price" field.
func (_c *ProviderProfileCreate) SetDefaultPrice(v int64) *ProviderProfileCreate {
	_c.mutation.SetDefaultPrice(v)
	return _c
}

// SetNillableDefaultPrice sets the "default_price" field if the given value is not nil.
func (_c *ProviderProfileCreate) SetNillableDefaultPrice(v *int64) *ProviderProfileCreate {
	if v != nil {
		_c.SetDefaultPrice(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderProfileCreate) SetID(v uuid.UUID) *ProviderProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProviderProfileCreate) SetNillableID(v *uuid.UUID) *ProviderProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProviderProfileMutation object of the builder.
func (_c *ProviderProfileCreate) Mutation() *ProviderProfileMutation {
	return _c.mutation
}

// Save creates the ProviderProfile in the database.
func (_c *ProviderProfileCreate) Save(ctx context.Context) (*ProviderProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderProfileCreate) SaveX(ctx context.Context) *ProviderProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := providerprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := providerprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsAccepting(); !ok {
		v := providerprofile.DefaultIsAccepting
		_c.mutation.SetIsAccepting(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := providerprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ProviderProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ProviderProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`repo: missing required field "ProviderProfile.business_id"`)}
	}
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`repo: missing required field "ProviderProfile.member_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`repo: missing required field "ProviderProfile.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := providerprofile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`repo: validator failed for field "ProviderProfile.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAccepting(); !ok {
		return &ValidationError{Name: "is_accepting", err: errors.New(`repo: missing required field "ProviderProfile.is_accepting"`)}
	}
	return nil
}

func (_c *ProviderProfileCreate) sqlSave(ctx context.Context) (*ProviderProfile, error) {
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

func (_c *ProviderProfileCreate) createSpec() (*ProviderProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(providerprofile.Table, sqlgraph.NewFieldSpec(providerprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(providerprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(providerprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BusinessID(); ok {
		_spec.SetField(providerprofile.FieldBusinessID, field.TypeUUID, value)
		_node.BusinessID = value
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(providerprofile.FieldMemberID, field.TypeUUID, value)
		_node.MemberID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(providerprofile.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(providerprofile.FieldBio, field.TypeString, value)
		_node.Bio = &value
	}
	if value, ok := _c.mutation.IsAccepting(); ok {
		_spec.SetField(providerprofile.FieldIsAccepting, field.TypeBool, value)
		_node.IsAccepting = value
	}
	if value, ok := _c.mutation.DefaultDurationMin(); ok {
		_spec.SetField(providerprofile.FieldDefaultDurationMin, field.TypeInt, value)
		_node.DefaultDurationMin = &value
	}
	if value, ok := _c.mutation.DefaultPrice(); ok {
		_spec.SetField(providerprofile.FieldDefaultPrice, field.TypeInt64, value)
		_node.DefaultPrice = &value
	}
	return _node, _spec
}

// ProviderProfileCreateBulk is the builder for creating many ProviderProfile entities in bulk.
type ProviderProfileCreateBulk struct {
	config
	err      error
	builders []*ProviderProfileCreate
}

// Save creates the ProviderProfile entities in the database.
func (_c *ProviderProfileCreateBulk) Save(ctx context.Context) ([]*ProviderProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderProfileMutation)
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
func (_c *ProviderProfileCreateBulk) SaveX(ctx context.Context) []*ProviderProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
