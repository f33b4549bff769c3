// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/siftstack/sift/ent/predicate"
	"github.com/siftstack/sift/ent/resultartifact"
	"github.com/siftstack/sift/pkg/models"
)

// ResultArtifactUpdate is the builder for updating ResultArtifact entities.
type ResultArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *ResultArtifactMutation
}

// Where appends a list predicates to the ResultArtifactUpdate builder.
func (_u *ResultArtifactUpdate) Where(ps ...predicate.ResultArtifact) *ResultArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ResultArtifactUpdate) SetFields(v map[string]interface{}) *ResultArtifactUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ResultArtifactUpdate) ClearFields() *ResultArtifactUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetBullets sets the "bullets" field.
func (_u *ResultArtifactUpdate) SetBullets(v []models.Bullet) *ResultArtifactUpdate {
	_u.mutation.SetBullets(v)
	return _u
}

// AppendBullets appends value to the "bullets" field.
func (_u *ResultArtifactUpdate) AppendBullets(v []models.Bullet) *ResultArtifactUpdate {
	_u.mutation.AppendBullets(v)
	return _u
}

// ClearBullets clears the value of the "bullets" field.
func (_u *ResultArtifactUpdate) ClearBullets() *ResultArtifactUpdate {
	_u.mutation.ClearBullets()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ResultArtifactUpdate) SetSummary(v string) *ResultArtifactUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ResultArtifactUpdate) SetNillableSummary(v *string) *ResultArtifactUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ResultArtifactUpdate) ClearSummary() *ResultArtifactUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetVisualization sets the "visualization" field.
func (_u *ResultArtifactUpdate) SetVisualization(v *models.VisualizationSpec) *ResultArtifactUpdate {
	_u.mutation.SetVisualization(v)
	return _u
}

// ClearVisualization clears the value of the "visualization" field.
func (_u *ResultArtifactUpdate) ClearVisualization() *ResultArtifactUpdate {
	_u.mutation.ClearVisualization()
	return _u
}

// SetAgentStatuses sets the "agent_statuses" field.
func (_u *ResultArtifactUpdate) SetAgentStatuses(v map[string]models.AgentStatus) *ResultArtifactUpdate {
	_u.mutation.SetAgentStatuses(v)
	return _u
}

// SetInputRefs sets the "input_refs" field.
func (_u *ResultArtifactUpdate) SetInputRefs(v []string) *ResultArtifactUpdate {
	_u.mutation.SetInputRefs(v)
	return _u
}

// AppendInputRefs appends value to the "input_refs" field.
func (_u *ResultArtifactUpdate) AppendInputRefs(v []string) *ResultArtifactUpdate {
	_u.mutation.AppendInputRefs(v)
	return _u
}

// ClearInputRefs clears the value of the "input_refs" field.
func (_u *ResultArtifactUpdate) ClearInputRefs() *ResultArtifactUpdate {
	_u.mutation.ClearInputRefs()
	return _u
}

// Mutation returns the ResultArtifactMutation object of the builder.
func (_u *ResultArtifactUpdate) Mutation() *ResultArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultArtifactUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResultArtifact.job"`)
	}
	return nil
}

func (_u *ResultArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultartifact.Table, resultartifact.Columns, sqlgraph.NewFieldSpec(resultartifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(resultartifact.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(resultartifact.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bullets(); ok {
		_spec.SetField(resultartifact.FieldBullets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBullets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultartifact.FieldBullets, value)
		})
	}
	if _u.mutation.BulletsCleared() {
		_spec.ClearField(resultartifact.FieldBullets, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(resultartifact.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(resultartifact.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Visualization(); ok {
		_spec.SetField(resultartifact.FieldVisualization, field.TypeJSON, value)
	}
	if _u.mutation.VisualizationCleared() {
		_spec.ClearField(resultartifact.FieldVisualization, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentStatuses(); ok {
		_spec.SetField(resultartifact.FieldAgentStatuses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.InputRefs(); ok {
		_spec.SetField(resultartifact.FieldInputRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultartifact.FieldInputRefs, value)
		})
	}
	if _u.mutation.InputRefsCleared() {
		_spec.ClearField(resultartifact.FieldInputRefs, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultArtifactUpdateOne is the builder for updating a single ResultArtifact entity.
type ResultArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultArtifactMutation
}

// SetFields sets the "fields" field.
func (_u *ResultArtifactUpdateOne) SetFields(v map[string]interface{}) *ResultArtifactUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ResultArtifactUpdateOne) ClearFields() *ResultArtifactUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetBullets sets the "bullets" field.
func (_u *ResultArtifactUpdateOne) SetBullets(v []models.Bullet) *ResultArtifactUpdateOne {
	_u.mutation.SetBullets(v)
	return _u
}

// AppendBullets appends value to the "bullets" field.
func (_u *ResultArtifactUpdateOne) AppendBullets(v []models.Bullet) *ResultArtifactUpdateOne {
	_u.mutation.AppendBullets(v)
	return _u
}

// ClearBullets clears the value of the "bullets" field.
func (_u *ResultArtifactUpdateOne) ClearBullets() *ResultArtifactUpdateOne {
	_u.mutation.ClearBullets()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ResultArtifactUpdateOne) SetSummary(v string) *ResultArtifactUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ResultArtifactUpdateOne) SetNillableSummary(v *string) *ResultArtifactUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ResultArtifactUpdateOne) ClearSummary() *ResultArtifactUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetVisualization sets the "visualization" field.
func (_u *ResultArtifactUpdateOne) SetVisualization(v *models.VisualizationSpec) *ResultArtifactUpdateOne {
	_u.mutation.SetVisualization(v)
	return _u
}

// ClearVisualization clears the value of the "visualization" field.
func (_u *ResultArtifactUpdateOne) ClearVisualization() *ResultArtifactUpdateOne {
	_u.mutation.ClearVisualization()
	return _u
}

// SetAgentStatuses sets the "agent_statuses" field.
func (_u *ResultArtifactUpdateOne) SetAgentStatuses(v map[string]models.AgentStatus) *ResultArtifactUpdateOne {
	_u.mutation.SetAgentStatuses(v)
	return _u
}

// SetInputRefs sets the "input_refs" field.
func (_u *ResultArtifactUpdateOne) SetInputRefs(v []string) *ResultArtifactUpdateOne {
	_u.mutation.SetInputRefs(v)
	return _u
}

// AppendInputRefs appends value to the "input_refs" field.
func (_u *ResultArtifactUpdateOne) AppendInputRefs(v []string) *ResultArtifactUpdateOne {
	_u.mutation.AppendInputRefs(v)
	return _u
}

// ClearInputRefs clears the value of the "input_refs" field.
func (_u *ResultArtifactUpdateOne) ClearInputRefs() *ResultArtifactUpdateOne {
	_u.mutation.ClearInputRefs()
	return _u
}

// Mutation returns the ResultArtifactMutation object of the builder.
func (_u *ResultArtifactUpdateOne) Mutation() *ResultArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultArtifactUpdate builder.
func (_u *ResultArtifactUpdateOne) Where(ps ...predicate.ResultArtifact) *ResultArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultArtifactUpdateOne) Select(field string, fields ...string) *ResultArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultArtifact entity.
func (_u *ResultArtifactUpdateOne) Save(ctx context.Context) (*ResultArtifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultArtifactUpdateOne) SaveX(ctx context.Context) *ResultArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultArtifactUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResultArtifact.job"`)
	}
	return nil
}

func (_u *ResultArtifactUpdateOne) sqlSave(ctx context.Context) (_node *ResultArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultartifact.Table, resultartifact.Columns, sqlgraph.NewFieldSpec(resultartifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultartifact.FieldID)
		for _, f := range fields {
			if !resultartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultartifact.FieldID {
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
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(resultartifact.FieldFields, field.TypeJSON, value)
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(resultartifact.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bullets(); ok {
		_spec.SetField(resultartifact.FieldBullets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBullets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultartifact.FieldBullets, value)
		})
	}
	if _u.mutation.BulletsCleared() {
		_spec.ClearField(resultartifact.FieldBullets, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(resultartifact.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(resultartifact.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Visualization(); ok {
		_spec.SetField(resultartifact.FieldVisualization, field.TypeJSON, value)
	}
	if _u.mutation.VisualizationCleared() {
		_spec.ClearField(resultartifact.FieldVisualization, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentStatuses(); ok {
		_spec.SetField(resultartifact.FieldAgentStatuses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.InputRefs(); ok {
		_spec.SetField(resultartifact.FieldInputRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultartifact.FieldInputRefs, value)
		})
	}
	if _u.mutation.InputRefsCleared() {
		_spec.ClearField(resultartifact.FieldInputRefs, field.TypeJSON)
	}
	_node = &ResultArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
