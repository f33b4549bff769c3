// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/siftstack/sift/ent/agentinvocation"
	"github.com/siftstack/sift/ent/job"
)

// AgentInvocationCreate is the builder for creating a AgentInvocation entity.
type AgentInvocationCreate struct {
	config
	mutation *AgentInvocationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *AgentInvocationCreate) SetJobID(v string) *AgentInvocationCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *AgentInvocationCreate) SetTenantID(v string) *AgentInvocationCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAgentKey sets the "agent_key" field.
func (_c *AgentInvocationCreate) SetAgentKey(v string) *AgentInvocationCreate {
	_c.mutation.SetAgentKey(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *AgentInvocationCreate) SetLevel(v int) *AgentInvocationCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetInputView sets the "input_view" field.
func (_c *AgentInvocationCreate) SetInputView(v string) *AgentInvocationCreate {
	_c.mutation.SetInputView(v)
	return _c
}

// SetNillableInputView sets the "input_view" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableInputView(v *string) *AgentInvocationCreate {
	if v != nil {
		_c.SetInputView(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *AgentInvocationCreate) SetOutput(v map[string]interface{}) *AgentInvocationCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentInvocationCreate) SetStatus(v agentinvocation.Status) *AgentInvocationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableStatus(v *agentinvocation.Status) *AgentInvocationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *AgentInvocationCreate) SetErrorCode(v string) *AgentInvocationCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableErrorCode(v *string) *AgentInvocationCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentInvocationCreate) SetErrorMessage(v string) *AgentInvocationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableErrorMessage(v *string) *AgentInvocationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentInvocationCreate) SetStartedAt(v time.Time) *AgentInvocationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableStartedAt(v *time.Time) *AgentInvocationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AgentInvocationCreate) SetFinishedAt(v time.Time) *AgentInvocationCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AgentInvocationCreate) SetNillableFinishedAt(v *time.Time) *AgentInvocationCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentInvocationCreate) SetID(v string) *AgentInvocationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *AgentInvocationCreate) SetJob(v *Job) *AgentInvocationCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the AgentInvocationMutation object of the builder.
func (_c *AgentInvocationCreate) Mutation() *AgentInvocationMutation {
	return _c.mutation
}

// Save creates the AgentInvocation in the database.
func (_c *AgentInvocationCreate) Save(ctx context.Context) (*AgentInvocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentInvocationCreate) SaveX(ctx context.Context) *AgentInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentInvocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentInvocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentInvocationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentinvocation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentInvocationCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "AgentInvocation.job_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AgentInvocation.tenant_id"`)}
	}
	if _, ok := _c.mutation.AgentKey(); !ok {
		return &ValidationError{Name: "agent_key", err: errors.New(`ent: missing required field "AgentInvocation.agent_key"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "AgentInvocation.level"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentInvocation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInvocation.status": %w`, err)}
		}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "AgentInvocation.job"`)}
	}
	return nil
}

func (_c *AgentInvocationCreate) sqlSave(ctx context.Context) (*AgentInvocation, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentInvocation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentInvocationCreate) createSpec() (*AgentInvocation, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentInvocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentinvocation.Table, sqlgraph.NewFieldSpec(agentinvocation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(agentinvocation.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AgentKey(); ok {
		_spec.SetField(agentinvocation.FieldAgentKey, field.TypeString, value)
		_node.AgentKey = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(agentinvocation.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.InputView(); ok {
		_spec.SetField(agentinvocation.FieldInputView, field.TypeString, value)
		_node.InputView = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(agentinvocation.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentinvocation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(agentinvocation.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentinvocation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentinvocation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(agentinvocation.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinvocation.JobTable,
			Columns: []string{agentinvocation.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentInvocation.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentInvocationUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentInvocationCreate) OnConflict(opts ...sql.ConflictOption) *AgentInvocationUpsertOne {
	_c.conflict = opts
	return &AgentInvocationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentInvocation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentInvocationCreate) OnConflictColumns(columns ...string) *AgentInvocationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentInvocationUpsertOne{
		create: _c,
	}
}

type (
	// AgentInvocationUpsertOne is the builder for "upsert"-ing
	//  one AgentInvocation node.
	AgentInvocationUpsertOne struct {
		create *AgentInvocationCreate
	}

	// AgentInvocationUpsert is the "OnConflict" setter.
	AgentInvocationUpsert struct {
		*sql.UpdateSet
	}
)

// SetInputView sets the "input_view" field.
func (u *AgentInvocationUpsert) SetInputView(v string) *AgentInvocationUpsert {
	u.Set(agentinvocation.FieldInputView, v)
	return u
}

// UpdateInputView sets the "input_view" field to the value that was provided on create.
func (u *AgentInvocationUpsert) UpdateInputView() *AgentInvocationUpsert {
	u.SetExcluded(agentinvocation.FieldInputView)
	return u
}

// ClearInputView clears the value of the "input_view" field.
func (u *AgentInvocationUpsert) ClearInputView() *AgentInvocationUpsert {
	u.SetNull(agentinvocation.FieldInputView)
	return u
}

// SetOutput sets the "output" field.
func (u *AgentInvocationUpsert) SetOutput(v map[string]interface{}) *AgentInvocationUpsert {
	u.Set(agentinvocation.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *AgentInvocationUpsert) UpdateOutput() *AgentInvocationUpsert {
	u.SetExcluded(agentinvocation.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *AgentInvocationUpsert) ClearOutput() *AgentInvocationUpsert {
	u.SetNull(agentinvocation.FieldOutput)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentInvocationUpsert) SetStatus(v agentinvocation.Status) *AgentInvocationUpsert {
	u.Set(agentinvocation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentInvocationUpsert) UpdateStatus() *AgentInvocationUpsert {
	u.SetExcluded(agentinvocation.FieldStatus)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *AgentInvocationUpsert) SetErrorCode(v string) *AgentInvocationUpsert {
	u.Set(agentinvocation.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *AgentInvocationUpsert) UpdateErrorCode() *AgentInvocationUpsert {
	u.SetExcluded(agentinvocation.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *AgentInvocationUpsert) ClearErrorCode() *AgentInvocationUpsert {
	u.SetNull(agentinvocation.FieldErrorCode)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentInvocationUpsert) SetErrorMessage(v string) *AgentInvocationUpsert {
	u.Set(agentinvocation.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentInvocationUpsert) UpdateErrorMessage() *AgentInvocationUpsert {
	u.SetExcluded(agentinvocation.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentInvocationUpsert) ClearErrorMessage() *AgentInvocationUpsert {
	u.SetNull(agentinvocation.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *AgentInvocationUpsert) SetStartedAt(v time.Time) *AgentInvocationUpsert {
	u.Set(agentinvocation.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AgentInvocationUpsert) UpdateStartedAt() *AgentInvocationUpsert {
	u.SetExcluded(agentinvocation.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AgentInvocationUpsert) ClearStartedAt() *AgentInvocationUpsert {
	u.SetNull(agentinvocation.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *AgentInvocationUpsert) SetFinishedAt(v time.Time) *AgentInvocationUpsert {
	u.Set(agentinvocation.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *AgentInvocationUpsert) UpdateFinishedAt() *AgentInvocationUpsert {
	u.SetExcluded(agentinvocation.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *AgentInvocationUpsert) ClearFinishedAt() *AgentInvocationUpsert {
	u.SetNull(agentinvocation.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentInvocation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentinvocation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentInvocationUpsertOne) UpdateNewValues() *AgentInvocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentinvocation.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(agentinvocation.FieldJobID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(agentinvocation.FieldTenantID)
		}
		if _, exists := u.create.mutation.AgentKey(); exists {
			s.SetIgnore(agentinvocation.FieldAgentKey)
		}
		if _, exists := u.create.mutation.Level(); exists {
			s.SetIgnore(agentinvocation.FieldLevel)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentInvocation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentInvocationUpsertOne) Ignore() *AgentInvocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentInvocationUpsertOne) DoNothing() *AgentInvocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentInvocationCreate.OnConflict
// documentation for more info.
func (u *AgentInvocationUpsertOne) Update(set func(*AgentInvocationUpsert)) *AgentInvocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentInvocationUpsert{UpdateSet: update})
	}))
	return u
}

// SetInputView sets the "input_view" field.
func (u *AgentInvocationUpsertOne) SetInputView(v string) *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetInputView(v)
	})
}

// UpdateInputView sets the "input_view" field to the value that was provided on create.
func (u *AgentInvocationUpsertOne) UpdateInputView() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateInputView()
	})
}

// ClearInputView clears the value of the "input_view" field.
func (u *AgentInvocationUpsertOne) ClearInputView() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearInputView()
	})
}

// SetOutput sets the "output" field.
func (u *AgentInvocationUpsertOne) SetOutput(v map[string]interface{}) *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *AgentInvocationUpsertOne) UpdateOutput() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *AgentInvocationUpsertOne) ClearOutput() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearOutput()
	})
}

// SetStatus sets the "status" field.
func (u *AgentInvocationUpsertOne) SetStatus(v agentinvocation.Status) *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentInvocationUpsertOne) UpdateStatus() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *AgentInvocationUpsertOne) SetErrorCode(v string) *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *AgentInvocationUpsertOne) UpdateErrorCode() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *AgentInvocationUpsertOne) ClearErrorCode() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearErrorCode()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentInvocationUpsertOne) SetErrorMessage(v string) *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentInvocationUpsertOne) UpdateErrorMessage() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentInvocationUpsertOne) ClearErrorMessage() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AgentInvocationUpsertOne) SetStartedAt(v time.Time) *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AgentInvocationUpsertOne) UpdateStartedAt() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AgentInvocationUpsertOne) ClearStartedAt() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *AgentInvocationUpsertOne) SetFinishedAt(v time.Time) *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *AgentInvocationUpsertOne) UpdateFinishedAt() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *AgentInvocationUpsertOne) ClearFinishedAt() *AgentInvocationUpsertOne {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *AgentInvocationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentInvocationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentInvocationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentInvocationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentInvocationUpsertOne.ID is not supported by MySQL driver. Use AgentInvocationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentInvocationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentInvocationCreateBulk is the builder for creating many AgentInvocation entities in bulk.
type AgentInvocationCreateBulk struct {
	config
	err      error
	builders []*AgentInvocationCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentInvocation entities in the database.
func (_c *AgentInvocationCreateBulk) Save(ctx context.Context) ([]*AgentInvocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentInvocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentInvocationMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *AgentInvocationCreateBulk) SaveX(ctx context.Context) []*AgentInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentInvocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentInvocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentInvocation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentInvocationUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentInvocationCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentInvocationUpsertBulk {
	_c.conflict = opts
	return &AgentInvocationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentInvocation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentInvocationCreateBulk) OnConflictColumns(columns ...string) *AgentInvocationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentInvocationUpsertBulk{
		create: _c,
	}
}

// AgentInvocationUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentInvocation nodes.
type AgentInvocationUpsertBulk struct {
	create *AgentInvocationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentInvocation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentinvocation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentInvocationUpsertBulk) UpdateNewValues() *AgentInvocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentinvocation.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(agentinvocation.FieldJobID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(agentinvocation.FieldTenantID)
			}
			if _, exists := b.mutation.AgentKey(); exists {
				s.SetIgnore(agentinvocation.FieldAgentKey)
			}
			if _, exists := b.mutation.Level(); exists {
				s.SetIgnore(agentinvocation.FieldLevel)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentInvocation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentInvocationUpsertBulk) Ignore() *AgentInvocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentInvocationUpsertBulk) DoNothing() *AgentInvocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentInvocationCreateBulk.OnConflict
// documentation for more info.
func (u *AgentInvocationUpsertBulk) Update(set func(*AgentInvocationUpsert)) *AgentInvocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentInvocationUpsert{UpdateSet: update})
	}))
	return u
}

// SetInputView sets the "input_view" field.
func (u *AgentInvocationUpsertBulk) SetInputView(v string) *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetInputView(v)
	})
}

// UpdateInputView sets the "input_view" field to the value that was provided on create.
func (u *AgentInvocationUpsertBulk) UpdateInputView() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateInputView()
	})
}

// ClearInputView clears the value of the "input_view" field.
func (u *AgentInvocationUpsertBulk) ClearInputView() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearInputView()
	})
}

// SetOutput sets the "output" field.
func (u *AgentInvocationUpsertBulk) SetOutput(v map[string]interface{}) *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *AgentInvocationUpsertBulk) UpdateOutput() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *AgentInvocationUpsertBulk) ClearOutput() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearOutput()
	})
}

// SetStatus sets the "status" field.
func (u *AgentInvocationUpsertBulk) SetStatus(v agentinvocation.Status) *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentInvocationUpsertBulk) UpdateStatus() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *AgentInvocationUpsertBulk) SetErrorCode(v string) *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *AgentInvocationUpsertBulk) UpdateErrorCode() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *AgentInvocationUpsertBulk) ClearErrorCode() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearErrorCode()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentInvocationUpsertBulk) SetErrorMessage(v string) *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentInvocationUpsertBulk) UpdateErrorMessage() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentInvocationUpsertBulk) ClearErrorMessage() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AgentInvocationUpsertBulk) SetStartedAt(v time.Time) *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AgentInvocationUpsertBulk) UpdateStartedAt() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AgentInvocationUpsertBulk) ClearStartedAt() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *AgentInvocationUpsertBulk) SetFinishedAt(v time.Time) *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *AgentInvocationUpsertBulk) UpdateFinishedAt() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *AgentInvocationUpsertBulk) ClearFinishedAt() *AgentInvocationUpsertBulk {
	return u.Update(func(s *AgentInvocationUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *AgentInvocationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentInvocationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentInvocationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentInvocationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
