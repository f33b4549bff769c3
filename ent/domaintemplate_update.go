// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/siftstack/sift/ent/domaintemplate"
	"github.com/siftstack/sift/ent/predicate"
)

// DomainTemplateUpdate is the builder for updating DomainTemplate entities.
type DomainTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *DomainTemplateMutation
}

// Where appends a list predicates to the DomainTemplateUpdate builder.
func (_u *DomainTemplateUpdate) Where(ps ...predicate.DomainTemplate) *DomainTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DomainTemplateMutation object of the builder.
func (_u *DomainTemplateUpdate) Mutation() *DomainTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DomainTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(domaintemplate.Table, domaintemplate.Columns, sqlgraph.NewFieldSpec(domaintemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TenantIDCleared() {
		_spec.ClearField(domaintemplate.FieldTenantID, field.TypeString)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(domaintemplate.FieldCreatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domaintemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainTemplateUpdateOne is the builder for updating a single DomainTemplate entity.
type DomainTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainTemplateMutation
}

// Mutation returns the DomainTemplateMutation object of the builder.
func (_u *DomainTemplateUpdateOne) Mutation() *DomainTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the DomainTemplateUpdate builder.
func (_u *DomainTemplateUpdateOne) Where(ps ...predicate.DomainTemplate) *DomainTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainTemplateUpdateOne) Select(field string, fields ...string) *DomainTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DomainTemplate entity.
func (_u *DomainTemplateUpdateOne) Save(ctx context.Context) (*DomainTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainTemplateUpdateOne) SaveX(ctx context.Context) *DomainTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DomainTemplateUpdateOne) sqlSave(ctx context.Context) (_node *DomainTemplate, err error) {
	_spec := sqlgraph.NewUpdateSpec(domaintemplate.Table, domaintemplate.Columns, sqlgraph.NewFieldSpec(domaintemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domaintemplate.FieldID)
		for _, f := range fields {
			if !domaintemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domaintemplate.FieldID {
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
	if _u.mutation.TenantIDCleared() {
		_spec.ClearField(domaintemplate.FieldTenantID, field.TypeString)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(domaintemplate.FieldCreatedBy, field.TypeString)
	}
	_node = &DomainTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domaintemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
