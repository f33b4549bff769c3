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
	"github.com/siftstack/sift/ent/agentdefinition"
	"github.com/siftstack/sift/ent/predicate"
)

// AgentDefinitionUpdate is the builder for updating AgentDefinition entities.
type AgentDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentDefinitionMutation
}

// Where appends a list predicates to the AgentDefinitionUpdate builder.
func (_u *AgentDefinitionUpdate) Where(ps ...predicate.AgentDefinition) *AgentDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClass sets the "class" field.
func (_u *AgentDefinitionUpdate) SetClass(v agentdefinition.Class) *AgentDefinitionUpdate {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableClass(v *agentdefinition.Class) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentDefinitionUpdate) SetSystemPrompt(v string) *AgentDefinitionUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableSystemPrompt(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetAllowedTools sets the "allowed_tools" field.
func (_u *AgentDefinitionUpdate) SetAllowedTools(v []string) *AgentDefinitionUpdate {
	_u.mutation.SetAllowedTools(v)
	return _u
}

// AppendAllowedTools appends value to the "allowed_tools" field.
func (_u *AgentDefinitionUpdate) AppendAllowedTools(v []string) *AgentDefinitionUpdate {
	_u.mutation.AppendAllowedTools(v)
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *AgentDefinitionUpdate) SetOutputSchema(v map[string]string) *AgentDefinitionUpdate {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// SetDependencyParent sets the "dependency_parent" field.
func (_u *AgentDefinitionUpdate) SetDependencyParent(v string) *AgentDefinitionUpdate {
	_u.mutation.SetDependencyParent(v)
	return _u
}

// SetNillableDependencyParent sets the "dependency_parent" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableDependencyParent(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetDependencyParent(*v)
	}
	return _u
}

// ClearDependencyParent clears the value of the "dependency_parent" field.
func (_u *AgentDefinitionUpdate) ClearDependencyParent() *AgentDefinitionUpdate {
	_u.mutation.ClearDependencyParent()
	return _u
}

// SetInterrogative sets the "interrogative" field.
func (_u *AgentDefinitionUpdate) SetInterrogative(v string) *AgentDefinitionUpdate {
	_u.mutation.SetInterrogative(v)
	return _u
}

// SetNillableInterrogative sets the "interrogative" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableInterrogative(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetInterrogative(*v)
	}
	return _u
}

// ClearInterrogative clears the value of the "interrogative" field.
func (_u *AgentDefinitionUpdate) ClearInterrogative() *AgentDefinitionUpdate {
	_u.mutation.ClearInterrogative()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AgentDefinitionUpdate) SetEnabled(v bool) *AgentDefinitionUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableEnabled(v *bool) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentDefinitionUpdate) SetVersion(v int) *AgentDefinitionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableVersion(v *int) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentDefinitionUpdate) AddVersion(v int) *AgentDefinitionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *AgentDefinitionUpdate) SetIsCurrent(v bool) *AgentDefinitionUpdate {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableIsCurrent(v *bool) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AgentDefinitionUpdate) SetCreatedBy(v string) *AgentDefinitionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableCreatedBy(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *AgentDefinitionUpdate) ClearCreatedBy() *AgentDefinitionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentDefinitionUpdate) SetUpdatedAt(v time.Time) *AgentDefinitionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AgentDefinitionUpdate) SetDeletedAt(v time.Time) *AgentDefinitionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableDeletedAt(v *time.Time) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AgentDefinitionUpdate) ClearDeletedAt() *AgentDefinitionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_u *AgentDefinitionUpdate) Mutation() *AgentDefinitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentDefinitionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentDefinitionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentdefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Class(); ok {
		if err := agentdefinition.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.class": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdefinition.Table, agentdefinition.Columns, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(agentdefinition.FieldClass, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedTools(); ok {
		_spec.SetField(agentdefinition.FieldAllowedTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentdefinition.FieldAllowedTools, value)
		})
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(agentdefinition.FieldOutputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DependencyParent(); ok {
		_spec.SetField(agentdefinition.FieldDependencyParent, field.TypeString, value)
	}
	if _u.mutation.DependencyParentCleared() {
		_spec.ClearField(agentdefinition.FieldDependencyParent, field.TypeString)
	}
	if value, ok := _u.mutation.Interrogative(); ok {
		_spec.SetField(agentdefinition.FieldInterrogative, field.TypeString, value)
	}
	if _u.mutation.InterrogativeCleared() {
		_spec.ClearField(agentdefinition.FieldInterrogative, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(agentdefinition.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentdefinition.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentdefinition.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(agentdefinition.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(agentdefinition.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(agentdefinition.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(agentdefinition.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(agentdefinition.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentDefinitionUpdateOne is the builder for updating a single AgentDefinition entity.
type AgentDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentDefinitionMutation
}

// SetClass sets the "class" field.
func (_u *AgentDefinitionUpdateOne) SetClass(v agentdefinition.Class) *AgentDefinitionUpdateOne {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableClass(v *agentdefinition.Class) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentDefinitionUpdateOne) SetSystemPrompt(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableSystemPrompt(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetAllowedTools sets the "allowed_tools" field.
func (_u *AgentDefinitionUpdateOne) SetAllowedTools(v []string) *AgentDefinitionUpdateOne {
	_u.mutation.SetAllowedTools(v)
	return _u
}

// AppendAllowedTools appends value to the "allowed_tools" field.
func (_u *AgentDefinitionUpdateOne) AppendAllowedTools(v []string) *AgentDefinitionUpdateOne {
	_u.mutation.AppendAllowedTools(v)
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *AgentDefinitionUpdateOne) SetOutputSchema(v map[string]string) *AgentDefinitionUpdateOne {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// SetDependencyParent sets the "dependency_parent" field.
func (_u *AgentDefinitionUpdateOne) SetDependencyParent(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetDependencyParent(v)
	return _u
}

// SetNillableDependencyParent sets the "dependency_parent" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableDependencyParent(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetDependencyParent(*v)
	}
	return _u
}

// ClearDependencyParent clears the value of the "dependency_parent" field.
func (_u *AgentDefinitionUpdateOne) ClearDependencyParent() *AgentDefinitionUpdateOne {
	_u.mutation.ClearDependencyParent()
	return _u
}

// SetInterrogative sets the "interrogative" field.
func (_u *AgentDefinitionUpdateOne) SetInterrogative(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetInterrogative(v)
	return _u
}

// SetNillableInterrogative sets the "interrogative" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableInterrogative(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetInterrogative(*v)
	}
	return _u
}

// ClearInterrogative clears the value of the "interrogative" field.
func (_u *AgentDefinitionUpdateOne) ClearInterrogative() *AgentDefinitionUpdateOne {
	_u.mutation.ClearInterrogative()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AgentDefinitionUpdateOne) SetEnabled(v bool) *AgentDefinitionUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableEnabled(v *bool) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentDefinitionUpdateOne) SetVersion(v int) *AgentDefinitionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableVersion(v *int) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentDefinitionUpdateOne) AddVersion(v int) *AgentDefinitionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *AgentDefinitionUpdateOne) SetIsCurrent(v bool) *AgentDefinitionUpdateOne {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableIsCurrent(v *bool) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AgentDefinitionUpdateOne) SetCreatedBy(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableCreatedBy(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *AgentDefinitionUpdateOne) ClearCreatedBy() *AgentDefinitionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentDefinitionUpdateOne) SetUpdatedAt(v time.Time) *AgentDefinitionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AgentDefinitionUpdateOne) SetDeletedAt(v time.Time) *AgentDefinitionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableDeletedAt(v *time.Time) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AgentDefinitionUpdateOne) ClearDeletedAt() *AgentDefinitionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_u *AgentDefinitionUpdateOne) Mutation() *AgentDefinitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentDefinitionUpdate builder.
func (_u *AgentDefinitionUpdateOne) Where(ps ...predicate.AgentDefinition) *AgentDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentDefinitionUpdateOne) Select(field string, fields ...string) *AgentDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentDefinition entity.
func (_u *AgentDefinitionUpdateOne) Save(ctx context.Context) (*AgentDefinition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDefinitionUpdateOne) SaveX(ctx context.Context) *AgentDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentDefinitionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentdefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Class(); ok {
		if err := agentdefinition.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.class": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *AgentDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdefinition.Table, agentdefinition.Columns, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentdefinition.FieldID)
		for _, f := range fields {
			if !agentdefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentdefinition.FieldID {
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
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(agentdefinition.FieldClass, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedTools(); ok {
		_spec.SetField(agentdefinition.FieldAllowedTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentdefinition.FieldAllowedTools, value)
		})
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(agentdefinition.FieldOutputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DependencyParent(); ok {
		_spec.SetField(agentdefinition.FieldDependencyParent, field.TypeString, value)
	}
	if _u.mutation.DependencyParentCleared() {
		_spec.ClearField(agentdefinition.FieldDependencyParent, field.TypeString)
	}
	if value, ok := _u.mutation.Interrogative(); ok {
		_spec.SetField(agentdefinition.FieldInterrogative, field.TypeString, value)
	}
	if _u.mutation.InterrogativeCleared() {
		_spec.ClearField(agentdefinition.FieldInterrogative, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(agentdefinition.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentdefinition.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentdefinition.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(agentdefinition.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(agentdefinition.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(agentdefinition.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(agentdefinition.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(agentdefinition.FieldDeletedAt, field.TypeTime)
	}
	_node = &AgentDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
