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
	"github.com/siftstack/sift/ent/playbook"
	"github.com/siftstack/sift/ent/predicate"
)

// PlaybookUpdate is the builder for updating Playbook entities.
type PlaybookUpdate struct {
	config
	hooks    []Hook
	mutation *PlaybookMutation
}

// Where appends a list predicates to the PlaybookUpdate builder.
func (_u *PlaybookUpdate) Where(ps ...predicate.Playbook) *PlaybookUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentKeys sets the "agent_keys" field.
func (_u *PlaybookUpdate) SetAgentKeys(v []string) *PlaybookUpdate {
	_u.mutation.SetAgentKeys(v)
	return _u
}

// AppendAgentKeys appends value to the "agent_keys" field.
func (_u *PlaybookUpdate) AppendAgentKeys(v []string) *PlaybookUpdate {
	_u.mutation.AppendAgentKeys(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *PlaybookUpdate) SetVersion(v int) *PlaybookUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PlaybookUpdate) SetNillableVersion(v *int) *PlaybookUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PlaybookUpdate) AddVersion(v int) *PlaybookUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PlaybookUpdate) SetCreatedBy(v string) *PlaybookUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PlaybookUpdate) SetNillableCreatedBy(v *string) *PlaybookUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PlaybookUpdate) ClearCreatedBy() *PlaybookUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlaybookUpdate) SetUpdatedAt(v time.Time) *PlaybookUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PlaybookUpdate) SetDeletedAt(v time.Time) *PlaybookUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PlaybookUpdate) SetNillableDeletedAt(v *time.Time) *PlaybookUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PlaybookUpdate) ClearDeletedAt() *PlaybookUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetGraphID sets the "graph" edge to the DependencyGraph entity by ID.
func (_u *PlaybookUpdate) SetGraphID(id string) *PlaybookUpdate {
	_u.mutation.SetGraphID(id)
	return _u
}

// SetNillableGraphID sets the "graph" edge to the DependencyGraph entity by ID if the given value is not nil.
func (_u *PlaybookUpdate) SetNillableGraphID(id *string) *PlaybookUpdate {
	if id != nil {
		_u = _u.SetGraphID(*id)
	}
	return _u
}

// SetGraph sets the "graph" edge to the DependencyGraph entity.
func (_u *PlaybookUpdate) SetGraph(v *DependencyGraph) *PlaybookUpdate {
	return _u.SetGraphID(v.ID)
}

// Mutation returns the PlaybookMutation object of the builder.
func (_u *PlaybookUpdate) Mutation() *PlaybookMutation {
	return _u.mutation
}

// ClearGraph clears the "graph" edge to the DependencyGraph entity.
func (_u *PlaybookUpdate) ClearGraph() *PlaybookUpdate {
	_u.mutation.ClearGraph()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlaybookUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybookUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlaybookUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybookUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlaybookUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playbook.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PlaybookUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(playbook.Table, playbook.Columns, sqlgraph.NewFieldSpec(playbook.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentKeys(); ok {
		_spec.SetField(playbook.FieldAgentKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playbook.FieldAgentKeys, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(playbook.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(playbook.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(playbook.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(playbook.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playbook.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(playbook.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(playbook.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.GraphCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   playbook.GraphTable,
			Columns: []string{playbook.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GraphIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   playbook.GraphTable,
			Columns: []string{playbook.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlaybookUpdateOne is the builder for updating a single Playbook entity.
type PlaybookUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlaybookMutation
}

// SetAgentKeys sets the "agent_keys" field.
func (_u *PlaybookUpdateOne) SetAgentKeys(v []string) *PlaybookUpdateOne {
	_u.mutation.SetAgentKeys(v)
	return _u
}

// AppendAgentKeys appends value to the "agent_keys" field.
func (_u *PlaybookUpdateOne) AppendAgentKeys(v []string) *PlaybookUpdateOne {
	_u.mutation.AppendAgentKeys(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *PlaybookUpdateOne) SetVersion(v int) *PlaybookUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PlaybookUpdateOne) SetNillableVersion(v *int) *PlaybookUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PlaybookUpdateOne) AddVersion(v int) *PlaybookUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PlaybookUpdateOne) SetCreatedBy(v string) *PlaybookUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PlaybookUpdateOne) SetNillableCreatedBy(v *string) *PlaybookUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PlaybookUpdateOne) ClearCreatedBy() *PlaybookUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlaybookUpdateOne) SetUpdatedAt(v time.Time) *PlaybookUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PlaybookUpdateOne) SetDeletedAt(v time.Time) *PlaybookUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PlaybookUpdateOne) SetNillableDeletedAt(v *time.Time) *PlaybookUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PlaybookUpdateOne) ClearDeletedAt() *PlaybookUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetGraphID sets the "graph" edge to the DependencyGraph entity by ID.
func (_u *PlaybookUpdateOne) SetGraphID(id string) *PlaybookUpdateOne {
	_u.mutation.SetGraphID(id)
	return _u
}

// SetNillableGraphID sets the "graph" edge to the DependencyGraph entity by ID if the given value is not nil.
func (_u *PlaybookUpdateOne) SetNillableGraphID(id *string) *PlaybookUpdateOne {
	if id != nil {
		_u = _u.SetGraphID(*id)
	}
	return _u
}

// SetGraph sets the "graph" edge to the DependencyGraph entity.
func (_u *PlaybookUpdateOne) SetGraph(v *DependencyGraph) *PlaybookUpdateOne {
	return _u.SetGraphID(v.ID)
}

// Mutation returns the PlaybookMutation object of the builder.
func (_u *PlaybookUpdateOne) Mutation() *PlaybookMutation {
	return _u.mutation
}

// ClearGraph clears the "graph" edge to the DependencyGraph entity.
func (_u *PlaybookUpdateOne) ClearGraph() *PlaybookUpdateOne {
	_u.mutation.ClearGraph()
	return _u
}

// Where appends a list predicates to the PlaybookUpdate builder.
func (_u *PlaybookUpdateOne) Where(ps ...predicate.Playbook) *PlaybookUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlaybookUpdateOne) Select(field string, fields ...string) *PlaybookUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Playbook entity.
func (_u *PlaybookUpdateOne) Save(ctx context.Context) (*Playbook, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybookUpdateOne) SaveX(ctx context.Context) *Playbook {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlaybookUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybookUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlaybookUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playbook.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PlaybookUpdateOne) sqlSave(ctx context.Context) (_node *Playbook, err error) {
	_spec := sqlgraph.NewUpdateSpec(playbook.Table, playbook.Columns, sqlgraph.NewFieldSpec(playbook.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Playbook.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playbook.FieldID)
		for _, f := range fields {
			if !playbook.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playbook.FieldID {
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
	if value, ok := _u.mutation.AgentKeys(); ok {
		_spec.SetField(playbook.FieldAgentKeys, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentKeys(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playbook.FieldAgentKeys, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(playbook.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(playbook.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(playbook.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(playbook.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playbook.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(playbook.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(playbook.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.GraphCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   playbook.GraphTable,
			Columns: []string{playbook.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GraphIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   playbook.GraphTable,
			Columns: []string{playbook.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dependencygraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Playbook{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
