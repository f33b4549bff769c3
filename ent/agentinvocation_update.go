// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/siftstack/sift/ent/agentinvocation"
	"github.com/siftstack/sift/ent/predicate"
)

// AgentInvocationUpdate is the builder for updating AgentInvocation entities.
type AgentInvocationUpdate struct {
	config
	hooks    []Hook
	mutation *AgentInvocationMutation
}

// Where appends a list predicates to the AgentInvocationUpdate builder.
func (_u *AgentInvocationUpdate) Where(ps ...predicate.AgentInvocation) *AgentInvocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputView sets the "input_view" field.
func (_u *AgentInvocationUpdate) SetInputView(v string) *AgentInvocationUpdate {
	_u.mutation.SetInputView(v)
	return _u
}

// SetNillableInputView sets the "input_view" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableInputView(v *string) *AgentInvocationUpdate {
	if v != nil {
		_u.SetInputView(*v)
	}
	return _u
}

// ClearInputView clears the value of the "input_view" field.
func (_u *AgentInvocationUpdate) ClearInputView() *AgentInvocationUpdate {
	_u.mutation.ClearInputView()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentInvocationUpdate) SetOutput(v map[string]interface{}) *AgentInvocationUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentInvocationUpdate) ClearOutput() *AgentInvocationUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentInvocationUpdate) SetStatus(v agentinvocation.Status) *AgentInvocationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableStatus(v *agentinvocation.Status) *AgentInvocationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *AgentInvocationUpdate) SetErrorCode(v string) *AgentInvocationUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableErrorCode(v *string) *AgentInvocationUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *AgentInvocationUpdate) ClearErrorCode() *AgentInvocationUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentInvocationUpdate) SetErrorMessage(v string) *AgentInvocationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableErrorMessage(v *string) *AgentInvocationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentInvocationUpdate) ClearErrorMessage() *AgentInvocationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentInvocationUpdate) SetStartedAt(v time.Time) *AgentInvocationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableStartedAt(v *time.Time) *AgentInvocationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentInvocationUpdate) ClearStartedAt() *AgentInvocationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AgentInvocationUpdate) SetFinishedAt(v time.Time) *AgentInvocationUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AgentInvocationUpdate) SetNillableFinishedAt(v *time.Time) *AgentInvocationUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AgentInvocationUpdate) ClearFinishedAt() *AgentInvocationUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the AgentInvocationMutation object of the builder.
func (_u *AgentInvocationUpdate) Mutation() *AgentInvocationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentInvocationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentInvocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentInvocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentInvocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentInvocationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentInvocation.job"`)
	}
	return nil
}

func (_u *AgentInvocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentinvocation.Table, agentinvocation.Columns, sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InputView(); ok {
		_spec.SetField(agentinvocation.FieldInputView, field.TypeString, value)
	}
	if _u.mutation.InputViewCleared() {
		_spec.ClearField(agentinvocation.FieldInputView, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentinvocation.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentinvocation.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentinvocation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(agentinvocation.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(agentinvocation.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentinvocation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentinvocation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentinvocation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentinvocation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(agentinvocation.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(agentinvocation.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentInvocationUpdateOne is the builder for updating a single AgentInvocation entity.
type AgentInvocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentInvocationMutation
}

// SetInputView sets the "input_view" field.
func (_u *AgentInvocationUpdateOne) SetInputView(v string) *AgentInvocationUpdateOne {
	_u.mutation.SetInputView(v)
	return _u
}

// SetNillableInputView sets the "input_view" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableInputView(v *string) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetInputView(*v)
	}
	return _u
}

// ClearInputView clears the value of the "input_view" field.
func (_u *AgentInvocationUpdateOne) ClearInputView() *AgentInvocationUpdateOne {
	_u.mutation.ClearInputView()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentInvocationUpdateOne) SetOutput(v map[string]interface{}) *AgentInvocationUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentInvocationUpdateOne) ClearOutput() *AgentInvocationUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentInvocationUpdateOne) SetStatus(v agentinvocation.Status) *AgentInvocationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableStatus(v *agentinvocation.Status) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *AgentInvocationUpdateOne) SetErrorCode(v string) *AgentInvocationUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableErrorCode(v *string) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *AgentInvocationUpdateOne) ClearErrorCode() *AgentInvocationUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentInvocationUpdateOne) SetErrorMessage(v string) *AgentInvocationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableErrorMessage(v *string) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentInvocationUpdateOne) ClearErrorMessage() *AgentInvocationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentInvocationUpdateOne) SetStartedAt(v time.Time) *AgentInvocationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableStartedAt(v *time.Time) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentInvocationUpdateOne) ClearStartedAt() *AgentInvocationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AgentInvocationUpdateOne) SetFinishedAt(v time.Time) *AgentInvocationUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AgentInvocationUpdateOne) SetNillableFinishedAt(v *time.Time) *AgentInvocationUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AgentInvocationUpdateOne) ClearFinishedAt() *AgentInvocationUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the AgentInvocationMutation object of the builder.
func (_u *AgentInvocationUpdateOne) Mutation() *AgentInvocationMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentInvocationUpdate builder.
func (_u *AgentInvocationUpdateOne) Where(ps ...predicate.AgentInvocation) *AgentInvocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentInvocationUpdateOne) Select(field string, fields ...string) *AgentInvocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentInvocation entity.
func (_u *AgentInvocationUpdateOne) Save(ctx context.Context) (*AgentInvocation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentInvocationUpdateOne) SaveX(ctx context.Context) *AgentInvocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentInvocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentInvocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentInvocationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentInvocation.job"`)
	}
	return nil
}

func (_u *AgentInvocationUpdateOne) sqlSave(ctx context.Context) (_node *AgentInvocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentinvocation.Table, agentinvocation.Columns, sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentInvocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentinvocation.FieldID)
		for _, f := range fields {
			if !agentinvocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentinvocation.FieldID {
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
	if value, ok := _u.mutation.InputView(); ok {
		_spec.SetField(agentinvocation.FieldInputView, field.TypeString, value)
	}
	if _u.mutation.InputViewCleared() {
		_spec.ClearField(agentinvocation.FieldInputView, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentinvocation.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentinvocation.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentinvocation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(agentinvocation.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(agentinvocation.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentinvocation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentinvocation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentinvocation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentinvocation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(agentinvocation.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(agentinvocation.FieldFinishedAt, field.TypeTime)
	}
	_node = &AgentInvocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
