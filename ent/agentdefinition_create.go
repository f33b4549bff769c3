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
	"github.com/siftstack/sift/ent/agentdefinition"
)

// AgentDefinitionCreate is the builder for creating a AgentDefinition entity.
type AgentDefinitionCreate struct {
	config
	mutation *AgentDefinitionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *AgentDefinitionCreate) SetTenantID(v string) *AgentDefinitionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAgentKey sets the "agent_key" field.
func (_c *AgentDefinitionCreate) SetAgentKey(v string) *AgentDefinitionCreate {
	_c.mutation.SetAgentKey(v)
	return _c
}

// SetClass sets the "class" field.
func (_c *AgentDefinitionCreate) SetClass(v agentdefinition.Class) *AgentDefinitionCreate {
	_c.mutation.SetClass(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentDefinitionCreate) SetSystemPrompt(v string) *AgentDefinitionCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetAllowedTools sets the "allowed_tools" field.
func (_c *AgentDefinitionCreate) SetAllowedTools(v []string) *AgentDefinitionCreate {
	_c.mutation.SetAllowedTools(v)
	return _c
}

// SetOutputSchema sets the "output_schema" field.
func (_c *AgentDefinitionCreate) SetOutputSchema(v map[string]string) *AgentDefinitionCreate {
	_c.mutation.SetOutputSchema(v)
	return _c
}

// SetDependencyParent sets the "dependency_parent" field.
func (_c *AgentDefinitionCreate) SetDependencyParent(v string) *AgentDefinitionCreate {
	_c.mutation.SetDependencyParent(v)
	return _c
}

// SetNillableDependencyParent sets the "dependency_parent" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableDependencyParent(v *string) *AgentDefinitionCreate {
	if v != nil {
		_c.SetDependencyParent(*v)
	}
	return _c
}

// SetInterrogative sets the "interrogative" field.
func (_c *AgentDefinitionCreate) SetInterrogative(v string) *AgentDefinitionCreate {
	_c.mutation.SetInterrogative(v)
	return _c
}

// SetNillableInterrogative sets the "interrogative" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableInterrogative(v *string) *AgentDefinitionCreate {
	if v != nil {
		_c.SetInterrogative(*v)
	}
	return _c
}

// SetIsBuiltin sets the "is_builtin" field.
func (_c *AgentDefinitionCreate) SetIsBuiltin(v bool) *AgentDefinitionCreate {
	_c.mutation.SetIsBuiltin(v)
	return _c
}

// SetNillableIsBuiltin sets the "is_builtin" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableIsBuiltin(v *bool) *AgentDefinitionCreate {
	if v != nil {
		_c.SetIsBuiltin(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *AgentDefinitionCreate) SetEnabled(v bool) *AgentDefinitionCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableEnabled(v *bool) *AgentDefinitionCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentDefinitionCreate) SetVersion(v int) *AgentDefinitionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableVersion(v *int) *AgentDefinitionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *AgentDefinitionCreate) SetIsCurrent(v bool) *AgentDefinitionCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableIsCurrent(v *bool) *AgentDefinitionCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *AgentDefinitionCreate) SetCreatedBy(v string) *AgentDefinitionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableCreatedBy(v *string) *AgentDefinitionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentDefinitionCreate) SetCreatedAt(v time.Time) *AgentDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableCreatedAt(v *time.Time) *AgentDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentDefinitionCreate) SetUpdatedAt(v time.Time) *AgentDefinitionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableUpdatedAt(v *time.Time) *AgentDefinitionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AgentDefinitionCreate) SetDeletedAt(v time.Time) *AgentDefinitionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableDeletedAt(v *time.Time) *AgentDefinitionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentDefinitionCreate) SetID(v string) *AgentDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_c *AgentDefinitionCreate) Mutation() *AgentDefinitionMutation {
	return _c.mutation
}

// Save creates the AgentDefinition in the database.
func (_c *AgentDefinitionCreate) Save(ctx context.Context) (*AgentDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentDefinitionCreate) SaveX(ctx context.Context) *AgentDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentDefinitionCreate) defaults() {
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		v := agentdefinition.DefaultIsBuiltin
		_c.mutation.SetIsBuiltin(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := agentdefinition.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := agentdefinition.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := agentdefinition.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentdefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentdefinition.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentDefinitionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AgentDefinition.tenant_id"`)}
	}
	if _, ok := _c.mutation.AgentKey(); !ok {
		return &ValidationError{Name: "agent_key", err: errors.New(`ent: missing required field "AgentDefinition.agent_key"`)}
	}
	if _, ok := _c.mutation.Class(); !ok {
		return &ValidationError{Name: "class", err: errors.New(`ent: missing required field "AgentDefinition.class"`)}
	}
	if v, ok := _c.mutation.Class(); ok {
		if err := agentdefinition.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "AgentDefinition.system_prompt"`)}
	}
	if _, ok := _c.mutation.AllowedTools(); !ok {
		return &ValidationError{Name: "allowed_tools", err: errors.New(`ent: missing required field "AgentDefinition.allowed_tools"`)}
	}
	if _, ok := _c.mutation.OutputSchema(); !ok {
		return &ValidationError{Name: "output_schema", err: errors.New(`ent: missing required field "AgentDefinition.output_schema"`)}
	}
	if _, ok := _c.mutation.IsBuiltin(); !ok {
		return &ValidationError{Name: "is_builtin", err: errors.New(`ent: missing required field "AgentDefinition.is_builtin"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "AgentDefinition.enabled"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentDefinition.version"`)}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "AgentDefinition.is_current"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentDefinition.updated_at"`)}
	}
	return nil
}

func (_c *AgentDefinitionCreate) sqlSave(ctx context.Context) (*AgentDefinition, error) {
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
			return nil, fmt.Errorf("unexpected AgentDefinition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentDefinitionCreate) createSpec() (*AgentDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentdefinition.Table, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(agentdefinition.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AgentKey(); ok {
		_spec.SetField(agentdefinition.FieldAgentKey, field.TypeString, value)
		_node.AgentKey = value
	}
	if value, ok := _c.mutation.Class(); ok {
		_spec.SetField(agentdefinition.FieldClass, field.TypeEnum, value)
		_node.Class = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.AllowedTools(); ok {
		_spec.SetField(agentdefinition.FieldAllowedTools, field.TypeJSON, value)
		_node.AllowedTools = value
	}
	if value, ok := _c.mutation.OutputSchema(); ok {
		_spec.SetField(agentdefinition.FieldOutputSchema, field.TypeJSON, value)
		_node.OutputSchema = value
	}
	if value, ok := _c.mutation.DependencyParent(); ok {
		_spec.SetField(agentdefinition.FieldDependencyParent, field.TypeString, value)
		_node.DependencyParent = &value
	}
	if value, ok := _c.mutation.Interrogative(); ok {
		_spec.SetField(agentdefinition.FieldInterrogative, field.TypeString, value)
		_node.Interrogative = &value
	}
	if value, ok := _c.mutation.IsBuiltin(); ok {
		_spec.SetField(agentdefinition.FieldIsBuiltin, field.TypeBool, value)
		_node.IsBuiltin = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(agentdefinition.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentdefinition.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(agentdefinition.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(agentdefinition.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentdefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdefinition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(agentdefinition.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentDefinition.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentDefinitionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentDefinitionCreate) OnConflict(opts ...sql.ConflictOption) *AgentDefinitionUpsertOne {
	_c.conflict = opts
	return &AgentDefinitionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentDefinition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentDefinitionCreate) OnConflictColumns(columns ...string) *AgentDefinitionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentDefinitionUpsertOne{
		create: _c,
	}
}

type (
	// AgentDefinitionUpsertOne is the builder for "upsert"-ing
	//  one AgentDefinition node.
	AgentDefinitionUpsertOne struct {
		create *AgentDefinitionCreate
	}

	// AgentDefinitionUpsert is the "OnConflict" setter.
	AgentDefinitionUpsert struct {
		*sql.UpdateSet
	}
)

// SetClass sets the "class" field.
func (u *AgentDefinitionUpsert) SetClass(v agentdefinition.Class) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldClass, v)
	return u
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateClass() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldClass)
	return u
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentDefinitionUpsert) SetSystemPrompt(v string) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldSystemPrompt, v)
	return u
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateSystemPrompt() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldSystemPrompt)
	return u
}

// SetAllowedTools sets the "allowed_tools" field.
func (u *AgentDefinitionUpsert) SetAllowedTools(v []string) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldAllowedTools, v)
	return u
}

// UpdateAllowedTools sets the "allowed_tools" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateAllowedTools() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldAllowedTools)
	return u
}

// SetOutputSchema sets the "output_schema" field.
func (u *AgentDefinitionUpsert) SetOutputSchema(v map[string]string) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldOutputSchema, v)
	return u
}

// UpdateOutputSchema sets the "output_schema" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateOutputSchema() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldOutputSchema)
	return u
}

// SetDependencyParent sets the "dependency_parent" field.
func (u *AgentDefinitionUpsert) SetDependencyParent(v string) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldDependencyParent, v)
	return u
}

// UpdateDependencyParent sets the "dependency_parent" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateDependencyParent() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldDependencyParent)
	return u
}

// ClearDependencyParent clears the value of the "dependency_parent" field.
func (u *AgentDefinitionUpsert) ClearDependencyParent() *AgentDefinitionUpsert {
	u.SetNull(agentdefinition.FieldDependencyParent)
	return u
}

// SetInterrogative sets the "interrogative" field.
func (u *AgentDefinitionUpsert) SetInterrogative(v string) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldInterrogative, v)
	return u
}

// UpdateInterrogative sets the "interrogative" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateInterrogative() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldInterrogative)
	return u
}

// ClearInterrogative clears the value of the "interrogative" field.
func (u *AgentDefinitionUpsert) ClearInterrogative() *AgentDefinitionUpsert {
	u.SetNull(agentdefinition.FieldInterrogative)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *AgentDefinitionUpsert) SetEnabled(v bool) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateEnabled() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldEnabled)
	return u
}

// SetVersion sets the "version" field.
func (u *AgentDefinitionUpsert) SetVersion(v int) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateVersion() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *AgentDefinitionUpsert) AddVersion(v int) *AgentDefinitionUpsert {
	u.Add(agentdefinition.FieldVersion, v)
	return u
}

// SetIsCurrent sets the "is_current" field.
func (u *AgentDefinitionUpsert) SetIsCurrent(v bool) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldIsCurrent, v)
	return u
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateIsCurrent() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldIsCurrent)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *AgentDefinitionUpsert) SetCreatedBy(v string) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateCreatedBy() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AgentDefinitionUpsert) ClearCreatedBy() *AgentDefinitionUpsert {
	u.SetNull(agentdefinition.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentDefinitionUpsert) SetUpdatedAt(v time.Time) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateUpdatedAt() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentDefinitionUpsert) SetDeletedAt(v time.Time) *AgentDefinitionUpsert {
	u.Set(agentdefinition.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentDefinitionUpsert) UpdateDeletedAt() *AgentDefinitionUpsert {
	u.SetExcluded(agentdefinition.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentDefinitionUpsert) ClearDeletedAt() *AgentDefinitionUpsert {
	u.SetNull(agentdefinition.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentDefinition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentdefinition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentDefinitionUpsertOne) UpdateNewValues() *AgentDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentdefinition.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(agentdefinition.FieldTenantID)
		}
		if _, exists := u.create.mutation.AgentKey(); exists {
			s.SetIgnore(agentdefinition.FieldAgentKey)
		}
		if _, exists := u.create.mutation.IsBuiltin(); exists {
			s.SetIgnore(agentdefinition.FieldIsBuiltin)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentdefinition.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentDefinition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentDefinitionUpsertOne) Ignore() *AgentDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentDefinitionUpsertOne) DoNothing() *AgentDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentDefinitionCreate.OnConflict
// documentation for more info.
func (u *AgentDefinitionUpsertOne) Update(set func(*AgentDefinitionUpsert)) *AgentDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentDefinitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetClass sets the "class" field.
func (u *AgentDefinitionUpsertOne) SetClass(v agentdefinition.Class) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetClass(v)
	})
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateClass() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateClass()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentDefinitionUpsertOne) SetSystemPrompt(v string) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateSystemPrompt() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateSystemPrompt()
	})
}

// SetAllowedTools sets the "allowed_tools" field.
func (u *AgentDefinitionUpsertOne) SetAllowedTools(v []string) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetAllowedTools(v)
	})
}

// UpdateAllowedTools sets the "allowed_tools" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateAllowedTools() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateAllowedTools()
	})
}

// SetOutputSchema sets the "output_schema" field.
func (u *AgentDefinitionUpsertOne) SetOutputSchema(v map[string]string) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetOutputSchema(v)
	})
}

// UpdateOutputSchema sets the "output_schema" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateOutputSchema() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateOutputSchema()
	})
}

// SetDependencyParent sets the "dependency_parent" field.
func (u *AgentDefinitionUpsertOne) SetDependencyParent(v string) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetDependencyParent(v)
	})
}

// UpdateDependencyParent sets the "dependency_parent" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateDependencyParent() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateDependencyParent()
	})
}

// ClearDependencyParent clears the value of the "dependency_parent" field.
func (u *AgentDefinitionUpsertOne) ClearDependencyParent() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.ClearDependencyParent()
	})
}

// SetInterrogative sets the "interrogative" field.
func (u *AgentDefinitionUpsertOne) SetInterrogative(v string) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetInterrogative(v)
	})
}

// UpdateInterrogative sets the "interrogative" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateInterrogative() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateInterrogative()
	})
}

// ClearInterrogative clears the value of the "interrogative" field.
func (u *AgentDefinitionUpsertOne) ClearInterrogative() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.ClearInterrogative()
	})
}

// SetEnabled sets the "enabled" field.
func (u *AgentDefinitionUpsertOne) SetEnabled(v bool) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateEnabled() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateEnabled()
	})
}

// SetVersion sets the "version" field.
func (u *AgentDefinitionUpsertOne) SetVersion(v int) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *AgentDefinitionUpsertOne) AddVersion(v int) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateVersion() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateVersion()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *AgentDefinitionUpsertOne) SetIsCurrent(v bool) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateIsCurrent() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AgentDefinitionUpsertOne) SetCreatedBy(v string) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateCreatedBy() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AgentDefinitionUpsertOne) ClearCreatedBy() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentDefinitionUpsertOne) SetUpdatedAt(v time.Time) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateUpdatedAt() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentDefinitionUpsertOne) SetDeletedAt(v time.Time) *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentDefinitionUpsertOne) UpdateDeletedAt() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentDefinitionUpsertOne) ClearDeletedAt() *AgentDefinitionUpsertOne {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AgentDefinitionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentDefinitionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentDefinitionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentDefinitionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentDefinitionUpsertOne.ID is not supported by MySQL driver. Use AgentDefinitionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentDefinitionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentDefinitionCreateBulk is the builder for creating many AgentDefinition entities in bulk.
type AgentDefinitionCreateBulk struct {
	config
	err      error
	builders []*AgentDefinitionCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentDefinition entities in the database.
func (_c *AgentDefinitionCreateBulk) Save(ctx context.Context) ([]*AgentDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentDefinitionMutation)
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
func (_c *AgentDefinitionCreateBulk) SaveX(ctx context.Context) []*AgentDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentDefinition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentDefinitionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentDefinitionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentDefinitionUpsertBulk {
	_c.conflict = opts
	return &AgentDefinitionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentDefinition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentDefinitionCreateBulk) OnConflictColumns(columns ...string) *AgentDefinitionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentDefinitionUpsertBulk{
		create: _c,
	}
}

// AgentDefinitionUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentDefinition nodes.
type AgentDefinitionUpsertBulk struct {
	create *AgentDefinitionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentDefinition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentdefinition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentDefinitionUpsertBulk) UpdateNewValues() *AgentDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentdefinition.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(agentdefinition.FieldTenantID)
			}
			if _, exists := b.mutation.AgentKey(); exists {
				s.SetIgnore(agentdefinition.FieldAgentKey)
			}
			if _, exists := b.mutation.IsBuiltin(); exists {
				s.SetIgnore(agentdefinition.FieldIsBuiltin)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentdefinition.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentDefinition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentDefinitionUpsertBulk) Ignore() *AgentDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentDefinitionUpsertBulk) DoNothing() *AgentDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentDefinitionCreateBulk.OnConflict
// documentation for more info.
func (u *AgentDefinitionUpsertBulk) Update(set func(*AgentDefinitionUpsert)) *AgentDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentDefinitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetClass sets the "class" field.
func (u *AgentDefinitionUpsertBulk) SetClass(v agentdefinition.Class) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetClass(v)
	})
}

// UpdateClass sets the "class" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateClass() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateClass()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentDefinitionUpsertBulk) SetSystemPrompt(v string) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateSystemPrompt() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateSystemPrompt()
	})
}

// SetAllowedTools sets the "allowed_tools" field.
func (u *AgentDefinitionUpsertBulk) SetAllowedTools(v []string) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetAllowedTools(v)
	})
}

// UpdateAllowedTools sets the "allowed_tools" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateAllowedTools() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateAllowedTools()
	})
}

// SetOutputSchema sets the "output_schema" field.
func (u *AgentDefinitionUpsertBulk) SetOutputSchema(v map[string]string) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetOutputSchema(v)
	})
}

// UpdateOutputSchema sets the "output_schema" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateOutputSchema() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateOutputSchema()
	})
}

// SetDependencyParent sets the "dependency_parent" field.
func (u *AgentDefinitionUpsertBulk) SetDependencyParent(v string) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetDependencyParent(v)
	})
}

// UpdateDependencyParent sets the "dependency_parent" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateDependencyParent() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateDependencyParent()
	})
}

// ClearDependencyParent clears the value of the "dependency_parent" field.
func (u *AgentDefinitionUpsertBulk) ClearDependencyParent() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.ClearDependencyParent()
	})
}

// SetInterrogative sets the "interrogative" field.
func (u *AgentDefinitionUpsertBulk) SetInterrogative(v string) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetInterrogative(v)
	})
}

// UpdateInterrogative sets the "interrogative" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateInterrogative() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateInterrogative()
	})
}

// ClearInterrogative clears the value of the "interrogative" field.
func (u *AgentDefinitionUpsertBulk) ClearInterrogative() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.ClearInterrogative()
	})
}

// SetEnabled sets the "enabled" field.
func (u *AgentDefinitionUpsertBulk) SetEnabled(v bool) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateEnabled() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateEnabled()
	})
}

// SetVersion sets the "version" field.
func (u *AgentDefinitionUpsertBulk) SetVersion(v int) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *AgentDefinitionUpsertBulk) AddVersion(v int) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateVersion() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateVersion()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *AgentDefinitionUpsertBulk) SetIsCurrent(v bool) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateIsCurrent() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AgentDefinitionUpsertBulk) SetCreatedBy(v string) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateCreatedBy() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *AgentDefinitionUpsertBulk) ClearCreatedBy() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentDefinitionUpsertBulk) SetUpdatedAt(v time.Time) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateUpdatedAt() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentDefinitionUpsertBulk) SetDeletedAt(v time.Time) *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentDefinitionUpsertBulk) UpdateDeletedAt() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentDefinitionUpsertBulk) ClearDeletedAt() *AgentDefinitionUpsertBulk {
	return u.Update(func(s *AgentDefinitionUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AgentDefinitionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentDefinitionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentDefinitionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentDefinitionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
