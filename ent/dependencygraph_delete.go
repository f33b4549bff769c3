// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/siftstack/sift/ent/dependencygraph"
	"github.com/siftstack/sift/ent/predicate"
)

// DependencyGraphDelete is the builder for deleting a DependencyGraph entity.
type DependencyGraphDelete struct {
	config
	hooks    []Hook
	mutation *DependencyGraphMutation
}

// Where appends a list predicates to the DependencyGraphDelete builder.
func (_d *DependencyGraphDelete) Where(ps ...predicate.DependencyGraph) *DependencyGraphDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DependencyGraphDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DependencyGraphDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DependencyGraphDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dependencygraph.Table, sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString))
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

// DependencyGraphDeleteOne is the builder for deleting a single DependencyGraph entity.
type DependencyGraphDeleteOne struct {
	_d *DependencyGraphDelete
}

// Where appends a list predicates to the DependencyGraphDelete builder.
func (_d *DependencyGraphDeleteOne) Where(ps ...predicate.DependencyGraph) *DependencyGraphDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DependencyGraphDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dependencygraph.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DependencyGraphDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
