// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danahmadi/bookora_backend/internal/repo/availabilityrule"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
)

// AvailabilityRuleDelete is the builder for deleting a AvailabilityRule entity.
type AvailabilityRuleDelete struct {
	config
	hooks    []Hook
	mutation *AvailabilityRuleMutation
}

// Where appends a list predicates to the AvailabilityRuleDelete builder.
func (_d *AvailabilityRuleDelete) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AvailabilityRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityRuleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AvailabilityRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(availabilityrule.Table, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AvailabilityRuleDeleteOne is the builder for deleting a single AvailabilityRule entity.
type AvailabilityRuleDeleteOne struct {
	_d *AvailabilityRuleDelete
}

// Where appends a list predicates to the AvailabilityRuleDelete builder.
func (_d *AvailabilityRuleDeleteOne) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AvailabilityRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{availabilityrule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityRuleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
