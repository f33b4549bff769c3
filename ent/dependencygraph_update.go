// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/siftstack/sift/ent/dependencygraph"
	"github.com/siftstack/sift/ent/predicate"
	"github.com/siftstack/sift/pkg/models"
)

// DependencyGraphUpdate is the builder for updating DependencyGraph entities.
type DependencyGraphUpdate struct {
	config
	hooks    []Hook
	mutation *DependencyGraphMutation
}

// Where appends a list predicates to the DependencyGraphUpdate builder.
func (_u *DependencyGraphUpdate) Where(ps ...predicate.DependencyGraph) *DependencyGraphUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGraphEdges sets the "graph_edges" field.
func (_u *DependencyGraphUpdate) SetGraphEdges(v []models.GraphEdge) *DependencyGraphUpdate {
	_u.mutation.SetGraphEdges(v)
	return _u
}

// AppendGraphEdges appends value to the "graph_edges" field.
func (_u *DependencyGraphUpdate) AppendGraphEdges(v []models.GraphEdge) *DependencyGraphUpdate {
	_u.mutation.AppendGraphEdges(v)
	return _u
}

// ClearGraphEdges clears the value of the "graph_edges" field.
func (_u *DependencyGraphUpdate) ClearGraphEdges() *DependencyGraphUpdate {
	_u.mutation.ClearGraphEdges()
	return _u
}

// SetVersion sets the "version" field.
func (_u *DependencyGraphUpdate) SetVersion(v int) *DependencyGraphUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *DependencyGraphUpdate) SetNillableVersion(v *int) *DependencyGraphUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *DependencyGraphUpdate) AddVersion(v int) *DependencyGraphUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DependencyGraphUpdate) SetUpdatedAt(v time.Time) *DependencyGraphUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DependencyGraphMutation object of the builder.
func (_u *DependencyGraphUpdate) Mutation() *DependencyGraphMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DependencyGraphUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DependencyGraphUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DependencyGraphUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DependencyGraphUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DependencyGraphUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dependencygraph.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DependencyGraphUpdate) check() error {
	if _u.mutation.PlaybookCleared() && len(_u.mutation.PlaybookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DependencyGraph.playbook"`)
	}
	return nil
}

func (_u *DependencyGraphUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dependencygraph.Table, dependencygraph.Columns, sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GraphEdges(); ok {
		_spec.SetField(dependencygraph.FieldGraphEdges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGraphEdges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dependencygraph.FieldGraphEdges, value)
		})
	}
	if _u.mutation.GraphEdgesCleared() {
		_spec.ClearField(dependencygraph.FieldGraphEdges, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(dependencygraph.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(dependencygraph.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dependencygraph.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dependencygraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DependencyGraphUpdateOne is the builder for updating a single DependencyGraph entity.
type DependencyGraphUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DependencyGraphMutation
}

// SetGraphEdges sets the "graph_edges" field.
func (_u *DependencyGraphUpdateOne) SetGraphEdges(v []models.GraphEdge) *DependencyGraphUpdateOne {
	_u.mutation.SetGraphEdges(v)
	return _u
}

// AppendGraphEdges appends value to the "graph_edges" field.
func (_u *DependencyGraphUpdateOne) AppendGraphEdges(v []models.GraphEdge) *DependencyGraphUpdateOne {
	_u.mutation.AppendGraphEdges(v)
	return _u
}

// ClearGraphEdges clears the value of the "graph_edges" field.
func (_u *DependencyGraphUpdateOne) ClearGraphEdges() *DependencyGraphUpdateOne {
	_u.mutation.ClearGraphEdges()
	return _u
}

// SetVersion sets the "version" field.
func (_u *DependencyGraphUpdateOne) SetVersion(v int) *DependencyGraphUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *DependencyGraphUpdateOne) SetNillableVersion(v *int) *DependencyGraphUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *DependencyGraphUpdateOne) AddVersion(v int) *DependencyGraphUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DependencyGraphUpdateOne) SetUpdatedAt(v time.Time) *DependencyGraphUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DependencyGraphMutation object of the builder.
func (_u *DependencyGraphUpdateOne) Mutation() *DependencyGraphMutation {
	return _u.mutation
}

// Where appends a list predicates to the DependencyGraphUpdate builder.
func (_u *DependencyGraphUpdateOne) Where(ps ...predicate.DependencyGraph) *DependencyGraphUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DependencyGraphUpdateOne) Select(field string, fields ...string) *DependencyGraphUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DependencyGraph entity.
func (_u *DependencyGraphUpdateOne) Save(ctx context.Context) (*DependencyGraph, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DependencyGraphUpdateOne) SaveX(ctx context.Context) *DependencyGraph {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DependencyGraphUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DependencyGraphUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DependencyGraphUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dependencygraph.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DependencyGraphUpdateOne) check() error {
	if _u.mutation.PlaybookCleared() && len(_u.mutation.PlaybookIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DependencyGraph.playbook"`)
	}
	return nil
}

func (_u *DependencyGraphUpdateOne) sqlSave(ctx context.Context) (_node *DependencyGraph, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dependencygraph.Table, dependencygraph.Columns, sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DependencyGraph.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dependencygraph.FieldID)
		for _, f := range fields {
			if !dependencygraph.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dependencygraph.FieldID {
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
	if value, ok := _u.mutation.GraphEdges(); ok {
		_spec.SetField(dependencygraph.FieldGraphEdges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGraphEdges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dependencygraph.FieldGraphEdges, value)
		})
	}
	if _u.mutation.GraphEdgesCleared() {
		_spec.ClearField(dependencygraph.FieldGraphEdges, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(dependencygraph.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(dependencygraph.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dependencygraph.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DependencyGraph{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dependencygraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
