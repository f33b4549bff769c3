// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/siftstack/sift/ent/agentdefinition"
	"github.com/siftstack/sift/ent/agentinvocation"
	"github.com/siftstack/sift/ent/dependencygraph"
	"github.com/siftstack/sift/ent/domaintemplate"
	"github.com/siftstack/sift/ent/event"
	"github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/ent/playbook"
	"github.com/siftstack/sift/ent/predicate"
	"github.com/siftstack/sift/ent/resultartifact"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentDefinition = "AgentDefinition"
	TypeAgentInvocation = "AgentInvocation"
	TypeDependencyGraph = "DependencyGraph"
	TypeDomainTemplate  = "DomainTemplate"
	TypeEvent           = "Event"
	TypeJob             = "Job"
	TypePlaybook        = "Playbook"
	TypeResultArtifact  = "ResultArtifact"
)

// AgentDefinitionMutation represents an operation that mutates the AgentDefinition nodes in the graph.
type AgentDefinitionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	agent_key           *string
	class               *agentdefinition.Class
	system_prompt       *string
	allowed_tools       *[]string
	appendallowed_tools []string
	output_schema       *map[string]string
	dependency_parent   *string
	interrogative       *string
	is_builtin          *bool
	enabled             *bool
	version             *int
	addversion          *int
	is_current          *bool
	created_by          *string
	created_at          *time.Time
	updated_at          *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AgentDefinition, error)
	predicates          []predicate.AgentDefinition
}

var _ ent.Mutation = (*AgentDefinitionMutation)(nil)

// agentdefinitionOption allows management of the mutation configuration using functional options.
type agentdefinitionOption func(*AgentDefinitionMutation)

// newAgentDefinitionMutation creates new mutation for the AgentDefinition entity.
func newAgentDefinitionMutation(c config, op Op, opts ...agentdefinitionOption) *AgentDefinitionMutation {
	m := &AgentDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentDefinitionID sets the ID field of the mutation.
func withAgentDefinitionID(id string) agentdefinitionOption {
	return func(m *AgentDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentDefinition
		)
		m.oldValue = func(ctx context.Context) (*AgentDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentDefinition sets the old AgentDefinition of the mutation.
func withAgentDefinition(node *AgentDefinition) agentdefinitionOption {
	return func(m *AgentDefinitionMutation) {
		m.oldValue = func(context.Context) (*AgentDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentDefinition entities.
func (m *AgentDefinitionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentDefinitionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentDefinitionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentDefinitionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentDefinitionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentDefinitionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAgentKey sets the "agent_key" field.
func (m *AgentDefinitionMutation) SetAgentKey(s string) {
	m.agent_key = &s
}

// AgentKey returns the value of the "agent_key" field in the mutation.
func (m *AgentDefinitionMutation) AgentKey() (r string, exists bool) {
	v := m.agent_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKey returns the old "agent_key" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldAgentKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKey: %w", err)
	}
	return oldValue.AgentKey, nil
}

// ResetAgentKey resets all changes to the "agent_key" field.
func (m *AgentDefinitionMutation) ResetAgentKey() {
	m.agent_key = nil
}

// SetClass sets the "class" field.
func (m *AgentDefinitionMutation) SetClass(a agentdefinition.Class) {
	m.class = &a
}

// Class returns the value of the "class" field in the mutation.
func (m *AgentDefinitionMutation) Class() (r agentdefinition.Class, exists bool) {
	v := m.class
	if v == nil {
		return
	}
	return *v, true
}

// OldClass returns the old "class" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldClass(ctx context.Context) (v agentdefinition.Class, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClass: %w", err)
	}
	return oldValue.Class, nil
}

// ResetClass resets all changes to the "class" field.
func (m *AgentDefinitionMutation) ResetClass() {
	m.class = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentDefinitionMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentDefinitionMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentDefinitionMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetAllowedTools sets the "allowed_tools" field.
func (m *AgentDefinitionMutation) SetAllowedTools(s []string) {
	m.allowed_tools = &s
	m.appendallowed_tools = nil
}

// AllowedTools returns the value of the "allowed_tools" field in the mutation.
func (m *AgentDefinitionMutation) AllowedTools() (r []string, exists bool) {
	v := m.allowed_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedTools returns the old "allowed_tools" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldAllowedTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedTools: %w", err)
	}
	return oldValue.AllowedTools, nil
}

// AppendAllowedTools adds s to the "allowed_tools" field.
func (m *AgentDefinitionMutation) AppendAllowedTools(s []string) {
	m.appendallowed_tools = append(m.appendallowed_tools, s...)
}

// AppendedAllowedTools returns the list of values that were appended to the "allowed_tools" field in this mutation.
func (m *AgentDefinitionMutation) AppendedAllowedTools() ([]string, bool) {
	if len(m.appendallowed_tools) == 0 {
		return nil, false
	}
	return m.appendallowed_tools, true
}

// ResetAllowedTools resets all changes to the "allowed_tools" field.
func (m *AgentDefinitionMutation) ResetAllowedTools() {
	m.allowed_tools = nil
	m.appendallowed_tools = nil
}

// SetOutputSchema sets the "output_schema" field.
func (m *AgentDefinitionMutation) SetOutputSchema(value map[string]string) {
	m.output_schema = &value
}

// OutputSchema returns the value of the "output_schema" field in the mutation.
func (m *AgentDefinitionMutation) OutputSchema() (r map[string]string, exists bool) {
	v := m.output_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSchema returns the old "output_schema" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldOutputSchema(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSchema: %w", err)
	}
	return oldValue.OutputSchema, nil
}

// ResetOutputSchema resets all changes to the "output_schema" field.
func (m *AgentDefinitionMutation) ResetOutputSchema() {
	m.output_schema = nil
}

// SetDependencyParent sets the "dependency_parent" field.
func (m *AgentDefinitionMutation) SetDependencyParent(s string) {
	m.dependency_parent = &s
}

// DependencyParent returns the value of the "dependency_parent" field in the mutation.
func (m *AgentDefinitionMutation) DependencyParent() (r string, exists bool) {
	v := m.dependency_parent
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencyParent returns the old "dependency_parent" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldDependencyParent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencyParent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencyParent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencyParent: %w", err)
	}
	return oldValue.DependencyParent, nil
}

// ClearDependencyParent clears the value of the "dependency_parent" field.
func (m *AgentDefinitionMutation) ClearDependencyParent() {
	m.dependency_parent = nil
	m.clearedFields[agentdefinition.FieldDependencyParent] = struct{}{}
}

// DependencyParentCleared returns if the "dependency_parent" field was cleared in this mutation.
func (m *AgentDefinitionMutation) DependencyParentCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldDependencyParent]
	return ok
}

// ResetDependencyParent resets all changes to the "dependency_parent" field.
func (m *AgentDefinitionMutation) ResetDependencyParent() {
	m.dependency_parent = nil
	delete(m.clearedFields, agentdefinition.FieldDependencyParent)
}

// SetInterrogative sets the "interrogative" field.
func (m *AgentDefinitionMutation) SetInterrogative(s string) {
	m.interrogative = &s
}

// Interrogative returns the value of the "interrogative" field in the mutation.
func (m *AgentDefinitionMutation) Interrogative() (r string, exists bool) {
	v := m.interrogative
	if v == nil {
		return
	}
	return *v, true
}

// OldInterrogative returns the old "interrogative" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldInterrogative(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterrogative is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterrogative requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterrogative: %w", err)
	}
	return oldValue.Interrogative, nil
}

// ClearInterrogative clears the value of the "interrogative" field.
func (m *AgentDefinitionMutation) ClearInterrogative() {
	m.interrogative = nil
	m.clearedFields[agentdefinition.FieldInterrogative] = struct{}{}
}

// InterrogativeCleared returns if the "interrogative" field was cleared in this mutation.
func (m *AgentDefinitionMutation) InterrogativeCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldInterrogative]
	return ok
}

// ResetInterrogative resets all changes to the "interrogative" field.
func (m *AgentDefinitionMutation) ResetInterrogative() {
	m.interrogative = nil
	delete(m.clearedFields, agentdefinition.FieldInterrogative)
}

// SetIsBuiltin sets the "is_builtin" field.
func (m *AgentDefinitionMutation) SetIsBuiltin(b bool) {
	m.is_builtin = &b
}

// IsBuiltin returns the value of the "is_builtin" field in the mutation.
func (m *AgentDefinitionMutation) IsBuiltin() (r bool, exists bool) {
	v := m.is_builtin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBuiltin returns the old "is_builtin" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldIsBuiltin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBuiltin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBuiltin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBuiltin: %w", err)
	}
	return oldValue.IsBuiltin, nil
}

// ResetIsBuiltin resets all changes to the "is_builtin" field.
func (m *AgentDefinitionMutation) ResetIsBuiltin() {
	m.is_builtin = nil
}

// SetEnabled sets the "enabled" field.
func (m *AgentDefinitionMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AgentDefinitionMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AgentDefinitionMutation) ResetEnabled() {
	m.enabled = nil
}

// SetVersion sets the "version" field.
func (m *AgentDefinitionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentDefinitionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentDefinitionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentDefinitionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentDefinitionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIsCurrent sets the "is_current" field.
func (m *AgentDefinitionMutation) SetIsCurrent(b bool) {
	m.is_current = &b
}

// IsCurrent returns the value of the "is_current" field in the mutation.
func (m *AgentDefinitionMutation) IsCurrent() (r bool, exists bool) {
	v := m.is_current
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCurrent returns the old "is_current" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldIsCurrent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCurrent: %w", err)
	}
	return oldValue.IsCurrent, nil
}

// ResetIsCurrent resets all changes to the "is_current" field.
func (m *AgentDefinitionMutation) ResetIsCurrent() {
	m.is_current = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *AgentDefinitionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AgentDefinitionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *AgentDefinitionMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[agentdefinition.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *AgentDefinitionMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AgentDefinitionMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, agentdefinition.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AgentDefinitionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AgentDefinitionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the AgentDefinition entity.
// If the AgentDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDefinitionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AgentDefinitionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[agentdefinition.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AgentDefinitionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[agentdefinition.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AgentDefinitionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, agentdefinition.FieldDeletedAt)
}

// Where appends a list predicates to the AgentDefinitionMutation builder.
func (m *AgentDefinitionMutation) Where(ps ...predicate.AgentDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentDefinition).
func (m *AgentDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.tenant_id != nil {
		fields = append(fields, agentdefinition.FieldTenantID)
	}
	if m.agent_key != nil {
		fields = append(fields, agentdefinition.FieldAgentKey)
	}
	if m.class != nil {
		fields = append(fields, agentdefinition.FieldClass)
	}
	if m.system_prompt != nil {
		fields = append(fields, agentdefinition.FieldSystemPrompt)
	}
	if m.allowed_tools != nil {
		fields = append(fields, agentdefinition.FieldAllowedTools)
	}
	if m.output_schema != nil {
		fields = append(fields, agentdefinition.FieldOutputSchema)
	}
	if m.dependency_parent != nil {
		fields = append(fields, agentdefinition.FieldDependencyParent)
	}
	if m.interrogative != nil {
		fields = append(fields, agentdefinition.FieldInterrogative)
	}
	if m.is_builtin != nil {
		fields = append(fields, agentdefinition.FieldIsBuiltin)
	}
	if m.enabled != nil {
		fields = append(fields, agentdefinition.FieldEnabled)
	}
	if m.version != nil {
		fields = append(fields, agentdefinition.FieldVersion)
	}
	if m.is_current != nil {
		fields = append(fields, agentdefinition.FieldIsCurrent)
	}
	if m.created_by != nil {
		fields = append(fields, agentdefinition.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, agentdefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentdefinition.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, agentdefinition.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentdefinition.FieldTenantID:
		return m.TenantID()
	case agentdefinition.FieldAgentKey:
		return m.AgentKey()
	case agentdefinition.FieldClass:
		return m.Class()
	case agentdefinition.FieldSystemPrompt:
		return m.SystemPrompt()
	case agentdefinition.FieldAllowedTools:
		return m.AllowedTools()
	case agentdefinition.FieldOutputSchema:
		return m.OutputSchema()
	case agentdefinition.FieldDependencyParent:
		return m.DependencyParent()
	case agentdefinition.FieldInterrogative:
		return m.Interrogative()
	case agentdefinition.FieldIsBuiltin:
		return m.IsBuiltin()
	case agentdefinition.FieldEnabled:
		return m.Enabled()
	case agentdefinition.FieldVersion:
		return m.Version()
	case agentdefinition.FieldIsCurrent:
		return m.IsCurrent()
	case agentdefinition.FieldCreatedBy:
		return m.CreatedBy()
	case agentdefinition.FieldCreatedAt:
		return m.CreatedAt()
	case agentdefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	case agentdefinition.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentdefinition.FieldTenantID:
		return m.OldTenantID(ctx)
	case agentdefinition.FieldAgentKey:
		return m.OldAgentKey(ctx)
	case agentdefinition.FieldClass:
		return m.OldClass(ctx)
	case agentdefinition.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agentdefinition.FieldAllowedTools:
		return m.OldAllowedTools(ctx)
	case agentdefinition.FieldOutputSchema:
		return m.OldOutputSchema(ctx)
	case agentdefinition.FieldDependencyParent:
		return m.OldDependencyParent(ctx)
	case agentdefinition.FieldInterrogative:
		return m.OldInterrogative(ctx)
	case agentdefinition.FieldIsBuiltin:
		return m.OldIsBuiltin(ctx)
	case agentdefinition.FieldEnabled:
		return m.OldEnabled(ctx)
	case agentdefinition.FieldVersion:
		return m.OldVersion(ctx)
	case agentdefinition.FieldIsCurrent:
		return m.OldIsCurrent(ctx)
	case agentdefinition.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case agentdefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentdefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case agentdefinition.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentdefinition.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agentdefinition.FieldAgentKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKey(v)
		return nil
	case agentdefinition.FieldClass:
		v, ok := value.(agentdefinition.Class)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClass(v)
		return nil
	case agentdefinition.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agentdefinition.FieldAllowedTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedTools(v)
		return nil
	case agentdefinition.FieldOutputSchema:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSchema(v)
		return nil
	case agentdefinition.FieldDependencyParent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencyParent(v)
		return nil
	case agentdefinition.FieldInterrogative:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterrogative(v)
		return nil
	case agentdefinition.FieldIsBuiltin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBuiltin(v)
		return nil
	case agentdefinition.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case agentdefinition.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentdefinition.FieldIsCurrent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCurrent(v)
		return nil
	case agentdefinition.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case agentdefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentdefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case agentdefinition.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentDefinitionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, agentdefinition.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentdefinition.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentdefinition.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentdefinition.FieldDependencyParent) {
		fields = append(fields, agentdefinition.FieldDependencyParent)
	}
	if m.FieldCleared(agentdefinition.FieldInterrogative) {
		fields = append(fields, agentdefinition.FieldInterrogative)
	}
	if m.FieldCleared(agentdefinition.FieldCreatedBy) {
		fields = append(fields, agentdefinition.FieldCreatedBy)
	}
	if m.FieldCleared(agentdefinition.FieldDeletedAt) {
		fields = append(fields, agentdefinition.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentDefinitionMutation) ClearField(name string) error {
	switch name {
	case agentdefinition.FieldDependencyParent:
		m.ClearDependencyParent()
		return nil
	case agentdefinition.FieldInterrogative:
		m.ClearInterrogative()
		return nil
	case agentdefinition.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case agentdefinition.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentDefinitionMutation) ResetField(name string) error {
	switch name {
	case agentdefinition.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agentdefinition.FieldAgentKey:
		m.ResetAgentKey()
		return nil
	case agentdefinition.FieldClass:
		m.ResetClass()
		return nil
	case agentdefinition.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agentdefinition.FieldAllowedTools:
		m.ResetAllowedTools()
		return nil
	case agentdefinition.FieldOutputSchema:
		m.ResetOutputSchema()
		return nil
	case agentdefinition.FieldDependencyParent:
		m.ResetDependencyParent()
		return nil
	case agentdefinition.FieldInterrogative:
		m.ResetInterrogative()
		return nil
	case agentdefinition.FieldIsBuiltin:
		m.ResetIsBuiltin()
		return nil
	case agentdefinition.FieldEnabled:
		m.ResetEnabled()
		return nil
	case agentdefinition.FieldVersion:
		m.ResetVersion()
		return nil
	case agentdefinition.FieldIsCurrent:
		m.ResetIsCurrent()
		return nil
	case agentdefinition.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case agentdefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentdefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case agentdefinition.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentDefinitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentDefinitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentDefinitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentDefinitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentDefinitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentDefinition edge %s", name)
}

// AgentInvocationMutation represents an operation that mutates the AgentInvocation nodes in the graph.
type AgentInvocationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	agent_key     *string
	level         *int
	addlevel      *int
	input_view    *string
	output        *map[string]interface{}
	status        *agentinvocation.Status
	error_code    *string
	error_message *string
	started_at    *time.Time
	finished_at   *time.Time
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*AgentInvocation, error)
	predicates    []predicate.AgentInvocation
}

var _ ent.Mutation = (*AgentInvocationMutation)(nil)

// agentinvocationOption allows management of the mutation configuration using functional options.
type agentinvocationOption func(*AgentInvocationMutation)

// newAgentInvocationMutation creates new mutation for the AgentInvocation entity.
func newAgentInvocationMutation(c config, op Op, opts ...agentinvocationOption) *AgentInvocationMutation {
	m := &AgentInvocationMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentInvocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentInvocationID sets the ID field of the mutation.
func withAgentInvocationID(id string) agentinvocationOption {
	return func(m *AgentInvocationMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentInvocation
		)
		m.oldValue = func(ctx context.Context) (*AgentInvocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentInvocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentInvocation sets the old AgentInvocation of the mutation.
func withAgentInvocation(node *AgentInvocation) agentinvocationOption {
	return func(m *AgentInvocationMutation) {
		m.oldValue = func(context.Context) (*AgentInvocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentInvocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentInvocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentInvocation entities.
func (m *AgentInvocationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentInvocationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentInvocationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentInvocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *AgentInvocationMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *AgentInvocationMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *AgentInvocationMutation) ResetJobID() {
	m.job = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentInvocationMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentInvocationMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentInvocationMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAgentKey sets the "agent_key" field.
func (m *AgentInvocationMutation) SetAgentKey(s string) {
	m.agent_key = &s
}

// AgentKey returns the value of the "agent_key" field in the mutation.
func (m *AgentInvocationMutation) AgentKey() (r string, exists bool) {
	v := m.agent_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKey returns the old "agent_key" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldAgentKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKey: %w", err)
	}
	return oldValue.AgentKey, nil
}

// ResetAgentKey resets all changes to the "agent_key" field.
func (m *AgentInvocationMutation) ResetAgentKey() {
	m.agent_key = nil
}

// SetLevel sets the "level" field.
func (m *AgentInvocationMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *AgentInvocationMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *AgentInvocationMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *AgentInvocationMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *AgentInvocationMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetInputView sets the "input_view" field.
func (m *AgentInvocationMutation) SetInputView(s string) {
	m.input_view = &s
}

// InputView returns the value of the "input_view" field in the mutation.
func (m *AgentInvocationMutation) InputView() (r string, exists bool) {
	v := m.input_view
	if v == nil {
		return
	}
	return *v, true
}

// OldInputView returns the old "input_view" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldInputView(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputView is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputView requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputView: %w", err)
	}
	return oldValue.InputView, nil
}

// ClearInputView clears the value of the "input_view" field.
func (m *AgentInvocationMutation) ClearInputView() {
	m.input_view = nil
	m.clearedFields[agentinvocation.FieldInputView] = struct{}{}
}

// InputViewCleared returns if the "input_view" field was cleared in this mutation.
func (m *AgentInvocationMutation) InputViewCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldInputView]
	return ok
}

// ResetInputView resets all changes to the "input_view" field.
func (m *AgentInvocationMutation) ResetInputView() {
	m.input_view = nil
	delete(m.clearedFields, agentinvocation.FieldInputView)
}

// SetOutput sets the "output" field.
func (m *AgentInvocationMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *AgentInvocationMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *AgentInvocationMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[agentinvocation.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *AgentInvocationMutation) OutputCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *AgentInvocationMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, agentinvocation.FieldOutput)
}

// SetStatus sets the "status" field.
func (m *AgentInvocationMutation) SetStatus(a agentinvocation.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentInvocationMutation) Status() (r agentinvocation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldStatus(ctx context.Context) (v agentinvocation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentInvocationMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCode sets the "error_code" field.
func (m *AgentInvocationMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *AgentInvocationMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *AgentInvocationMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[agentinvocation.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *AgentInvocationMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *AgentInvocationMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, agentinvocation.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentInvocationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentInvocationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentInvocationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentinvocation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentInvocationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentInvocationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentinvocation.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentInvocationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentInvocationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentInvocationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentinvocation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentInvocationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentInvocationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentinvocation.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *AgentInvocationMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AgentInvocationMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the AgentInvocation entity.
// If the AgentInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentInvocationMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AgentInvocationMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[agentinvocation.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AgentInvocationMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[agentinvocation.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AgentInvocationMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, agentinvocation.FieldFinishedAt)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *AgentInvocationMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[agentinvocation.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *AgentInvocationMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *AgentInvocationMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *AgentInvocationMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the AgentInvocationMutation builder.
func (m *AgentInvocationMutation) Where(ps ...predicate.AgentInvocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentInvocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentInvocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentInvocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentInvocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentInvocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentInvocation).
func (m *AgentInvocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentInvocationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.job != nil {
		fields = append(fields, agentinvocation.FieldJobID)
	}
	if m.tenant_id != nil {
		fields = append(fields, agentinvocation.FieldTenantID)
	}
	if m.agent_key != nil {
		fields = append(fields, agentinvocation.FieldAgentKey)
	}
	if m.level != nil {
		fields = append(fields, agentinvocation.FieldLevel)
	}
	if m.input_view != nil {
		fields = append(fields, agentinvocation.FieldInputView)
	}
	if m.output != nil {
		fields = append(fields, agentinvocation.FieldOutput)
	}
	if m.status != nil {
		fields = append(fields, agentinvocation.FieldStatus)
	}
	if m.error_code != nil {
		fields = append(fields, agentinvocation.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, agentinvocation.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, agentinvocation.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, agentinvocation.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentInvocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentinvocation.FieldJobID:
		return m.JobID()
	case agentinvocation.FieldTenantID:
		return m.TenantID()
	case agentinvocation.FieldAgentKey:
		return m.AgentKey()
	case agentinvocation.FieldLevel:
		return m.Level()
	case agentinvocation.FieldInputView:
		return m.InputView()
	case agentinvocation.FieldOutput:
		return m.Output()
	case agentinvocation.FieldStatus:
		return m.Status()
	case agentinvocation.FieldErrorCode:
		return m.ErrorCode()
	case agentinvocation.FieldErrorMessage:
		return m.ErrorMessage()
	case agentinvocation.FieldStartedAt:
		return m.StartedAt()
	case agentinvocation.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentInvocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentinvocation.FieldJobID:
		return m.OldJobID(ctx)
	case agentinvocation.FieldTenantID:
		return m.OldTenantID(ctx)
	case agentinvocation.FieldAgentKey:
		return m.OldAgentKey(ctx)
	case agentinvocation.FieldLevel:
		return m.OldLevel(ctx)
	case agentinvocation.FieldInputView:
		return m.OldInputView(ctx)
	case agentinvocation.FieldOutput:
		return m.OldOutput(ctx)
	case agentinvocation.FieldStatus:
		return m.OldStatus(ctx)
	case agentinvocation.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case agentinvocation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentinvocation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentinvocation.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentInvocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentInvocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentinvocation.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case agentinvocation.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agentinvocation.FieldAgentKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKey(v)
		return nil
	case agentinvocation.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case agentinvocation.FieldInputView:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputView(v)
		return nil
	case agentinvocation.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case agentinvocation.FieldStatus:
		v, ok := value.(agentinvocation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentinvocation.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case agentinvocation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentinvocation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentinvocation.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentInvocationMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, agentinvocation.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentInvocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentinvocation.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentInvocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentinvocation.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentInvocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentinvocation.FieldInputView) {
		fields = append(fields, agentinvocation.FieldInputView)
	}
	if m.FieldCleared(agentinvocation.FieldOutput) {
		fields = append(fields, agentinvocation.FieldOutput)
	}
	if m.FieldCleared(agentinvocation.FieldErrorCode) {
		fields = append(fields, agentinvocation.FieldErrorCode)
	}
	if m.FieldCleared(agentinvocation.FieldErrorMessage) {
		fields = append(fields, agentinvocation.FieldErrorMessage)
	}
	if m.FieldCleared(agentinvocation.FieldStartedAt) {
		fields = append(fields, agentinvocation.FieldStartedAt)
	}
	if m.FieldCleared(agentinvocation.FieldFinishedAt) {
		fields = append(fields, agentinvocation.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentInvocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentInvocationMutation) ClearField(name string) error {
	switch name {
	case agentinvocation.FieldInputView:
		m.ClearInputView()
		return nil
	case agentinvocation.FieldOutput:
		m.ClearOutput()
		return nil
	case agentinvocation.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case agentinvocation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentinvocation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentinvocation.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentInvocationMutation) ResetField(name string) error {
	switch name {
	case agentinvocation.FieldJobID:
		m.ResetJobID()
		return nil
	case agentinvocation.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agentinvocation.FieldAgentKey:
		m.ResetAgentKey()
		return nil
	case agentinvocation.FieldLevel:
		m.ResetLevel()
		return nil
	case agentinvocation.FieldInputView:
		m.ResetInputView()
		return nil
	case agentinvocation.FieldOutput:
		m.ResetOutput()
		return nil
	case agentinvocation.FieldStatus:
		m.ResetStatus()
		return nil
	case agentinvocation.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case agentinvocation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentinvocation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentinvocation.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentInvocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, agentinvocation.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentInvocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentinvocation.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentInvocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentInvocationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentInvocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, agentinvocation.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentInvocationMutation) EdgeCleared(name string) bool {
	switch name {
	case agentinvocation.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentInvocationMutation) ClearEdge(name string) error {
	switch name {
	case agentinvocation.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentInvocationMutation) ResetEdge(name string) error {
	switch name {
	case agentinvocation.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown AgentInvocation edge %s", name)
}

// DependencyGraphMutation represents an operation that mutates the DependencyGraph nodes in the graph.
type DependencyGraphMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	graph_edges       *[]models.GraphEdge
	appendgraph_edges []models.GraphEdge
	version           *int
	addversion        *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	playbook          *string
	clearedplaybook   bool
	done              bool
	oldValue          func(context.Context) (*DependencyGraph, error)
	predicates        []predicate.DependencyGraph
}

var _ ent.Mutation = (*DependencyGraphMutation)(nil)

// dependencygraphOption allows management of the mutation configuration using functional options.
type dependencygraphOption func(*DependencyGraphMutation)

// newDependencyGraphMutation creates new mutation for the DependencyGraph entity.
func newDependencyGraphMutation(c config, op Op, opts ...dependencygraphOption) *DependencyGraphMutation {
	m := &DependencyGraphMutation{
		config:        c,
		op:            op,
		typ:           TypeDependencyGraph,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDependencyGraphID sets the ID field of the mutation.
func withDependencyGraphID(id string) dependencygraphOption {
	return func(m *DependencyGraphMutation) {
		var (
			err   error
			once  sync.Once
			value *DependencyGraph
		)
		m.oldValue = func(ctx context.Context) (*DependencyGraph, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DependencyGraph.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDependencyGraph sets the old DependencyGraph of the mutation.
func withDependencyGraph(node *DependencyGraph) dependencygraphOption {
	return func(m *DependencyGraphMutation) {
		m.oldValue = func(context.Context) (*DependencyGraph, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DependencyGraphMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DependencyGraphMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DependencyGraph entities.
func (m *DependencyGraphMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DependencyGraphMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DependencyGraphMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DependencyGraph.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DependencyGraphMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DependencyGraphMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DependencyGraph entity.
// If the DependencyGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyGraphMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DependencyGraphMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPlaybookID sets the "playbook_id" field.
func (m *DependencyGraphMutation) SetPlaybookID(s string) {
	m.playbook = &s
}

// PlaybookID returns the value of the "playbook_id" field in the mutation.
func (m *DependencyGraphMutation) PlaybookID() (r string, exists bool) {
	v := m.playbook
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaybookID returns the old "playbook_id" field's value of the DependencyGraph entity.
// If the DependencyGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyGraphMutation) OldPlaybookID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaybookID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaybookID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaybookID: %w", err)
	}
	return oldValue.PlaybookID, nil
}

// ResetPlaybookID resets all changes to the "playbook_id" field.
func (m *DependencyGraphMutation) ResetPlaybookID() {
	m.playbook = nil
}

// SetGraphEdges sets the "graph_edges" field.
func (m *DependencyGraphMutation) SetGraphEdges(me []models.GraphEdge) {
	m.graph_edges = &me
	m.appendgraph_edges = nil
}

// GraphEdges returns the value of the "graph_edges" field in the mutation.
func (m *DependencyGraphMutation) GraphEdges() (r []models.GraphEdge, exists bool) {
	v := m.graph_edges
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphEdges returns the old "graph_edges" field's value of the DependencyGraph entity.
// If the DependencyGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyGraphMutation) OldGraphEdges(ctx context.Context) (v []models.GraphEdge, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphEdges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphEdges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphEdges: %w", err)
	}
	return oldValue.GraphEdges, nil
}

// AppendGraphEdges adds me to the "graph_edges" field.
func (m *DependencyGraphMutation) AppendGraphEdges(me []models.GraphEdge) {
	m.appendgraph_edges = append(m.appendgraph_edges, me...)
}

// AppendedGraphEdges returns the list of values that were appended to the "graph_edges" field in this mutation.
func (m *DependencyGraphMutation) AppendedGraphEdges() ([]models.GraphEdge, bool) {
	if len(m.appendgraph_edges) == 0 {
		return nil, false
	}
	return m.appendgraph_edges, true
}

// ClearGraphEdges clears the value of the "graph_edges" field.
func (m *DependencyGraphMutation) ClearGraphEdges() {
	m.graph_edges = nil
	m.appendgraph_edges = nil
	m.clearedFields[dependencygraph.FieldGraphEdges] = struct{}{}
}

// GraphEdgesCleared returns if the "graph_edges" field was cleared in this mutation.
func (m *DependencyGraphMutation) GraphEdgesCleared() bool {
	_, ok := m.clearedFields[dependencygraph.FieldGraphEdges]
	return ok
}

// ResetGraphEdges resets all changes to the "graph_edges" field.
func (m *DependencyGraphMutation) ResetGraphEdges() {
	m.graph_edges = nil
	m.appendgraph_edges = nil
	delete(m.clearedFields, dependencygraph.FieldGraphEdges)
}

// SetVersion sets the "version" field.
func (m *DependencyGraphMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *DependencyGraphMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the DependencyGraph entity.
// If the DependencyGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyGraphMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *DependencyGraphMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *DependencyGraphMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *DependencyGraphMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DependencyGraphMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DependencyGraphMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DependencyGraph entity.
// If the DependencyGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyGraphMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DependencyGraphMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DependencyGraphMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DependencyGraphMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DependencyGraph entity.
// If the DependencyGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyGraphMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DependencyGraphMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPlaybook clears the "playbook" edge to the Playbook entity.
func (m *DependencyGraphMutation) ClearPlaybook() {
	m.clearedplaybook = true
	m.clearedFields[dependencygraph.FieldPlaybookID] = struct{}{}
}

// PlaybookCleared reports if the "playbook" edge to the Playbook entity was cleared.
func (m *DependencyGraphMutation) PlaybookCleared() bool {
	return m.clearedplaybook
}

// PlaybookIDs returns the "playbook" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlaybookID instead. It exists only for internal usage by the builders.
func (m *DependencyGraphMutation) PlaybookIDs() (ids []string) {
	if id := m.playbook; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlaybook resets all changes to the "playbook" edge.
func (m *DependencyGraphMutation) ResetPlaybook() {
	m.playbook = nil
	m.clearedplaybook = false
}

// Where appends a list predicates to the DependencyGraphMutation builder.
func (m *DependencyGraphMutation) Where(ps ...predicate.DependencyGraph) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DependencyGraphMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DependencyGraphMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DependencyGraph, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DependencyGraphMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DependencyGraphMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DependencyGraph).
func (m *DependencyGraphMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DependencyGraphMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, dependencygraph.FieldTenantID)
	}
	if m.playbook != nil {
		fields = append(fields, dependencygraph.FieldPlaybookID)
	}
	if m.graph_edges != nil {
		fields = append(fields, dependencygraph.FieldGraphEdges)
	}
	if m.version != nil {
		fields = append(fields, dependencygraph.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, dependencygraph.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dependencygraph.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DependencyGraphMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dependencygraph.FieldTenantID:
		return m.TenantID()
	case dependencygraph.FieldPlaybookID:
		return m.PlaybookID()
	case dependencygraph.FieldGraphEdges:
		return m.GraphEdges()
	case dependencygraph.FieldVersion:
		return m.Version()
	case dependencygraph.FieldCreatedAt:
		return m.CreatedAt()
	case dependencygraph.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DependencyGraphMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dependencygraph.FieldTenantID:
		return m.OldTenantID(ctx)
	case dependencygraph.FieldPlaybookID:
		return m.OldPlaybookID(ctx)
	case dependencygraph.FieldGraphEdges:
		return m.OldGraphEdges(ctx)
	case dependencygraph.FieldVersion:
		return m.OldVersion(ctx)
	case dependencygraph.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dependencygraph.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DependencyGraph field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DependencyGraphMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dependencygraph.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case dependencygraph.FieldPlaybookID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaybookID(v)
		return nil
	case dependencygraph.FieldGraphEdges:
		v, ok := value.([]models.GraphEdge)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphEdges(v)
		return nil
	case dependencygraph.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case dependencygraph.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dependencygraph.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DependencyGraph field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DependencyGraphMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, dependencygraph.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DependencyGraphMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dependencygraph.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DependencyGraphMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dependencygraph.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown DependencyGraph numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DependencyGraphMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dependencygraph.FieldGraphEdges) {
		fields = append(fields, dependencygraph.FieldGraphEdges)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DependencyGraphMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DependencyGraphMutation) ClearField(name string) error {
	switch name {
	case dependencygraph.FieldGraphEdges:
		m.ClearGraphEdges()
		return nil
	}
	return fmt.Errorf("unknown DependencyGraph nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DependencyGraphMutation) ResetField(name string) error {
	switch name {
	case dependencygraph.FieldTenantID:
		m.ResetTenantID()
		return nil
	case dependencygraph.FieldPlaybookID:
		m.ResetPlaybookID()
		return nil
	case dependencygraph.FieldGraphEdges:
		m.ResetGraphEdges()
		return nil
	case dependencygraph.FieldVersion:
		m.ResetVersion()
		return nil
	case dependencygraph.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dependencygraph.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DependencyGraph field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DependencyGraphMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.playbook != nil {
		edges = append(edges, dependencygraph.EdgePlaybook)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DependencyGraphMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dependencygraph.EdgePlaybook:
		if id := m.playbook; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DependencyGraphMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DependencyGraphMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DependencyGraphMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedplaybook {
		edges = append(edges, dependencygraph.EdgePlaybook)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DependencyGraphMutation) EdgeCleared(name string) bool {
	switch name {
	case dependencygraph.EdgePlaybook:
		return m.clearedplaybook
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DependencyGraphMutation) ClearEdge(name string) error {
	switch name {
	case dependencygraph.EdgePlaybook:
		m.ClearPlaybook()
		return nil
	}
	return fmt.Errorf("unknown DependencyGraph unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DependencyGraphMutation) ResetEdge(name string) error {
	switch name {
	case dependencygraph.EdgePlaybook:
		m.ResetPlaybook()
		return nil
	}
	return fmt.Errorf("unknown DependencyGraph edge %s", name)
}

// DomainTemplateMutation represents an operation that mutates the DomainTemplate nodes in the graph.
type DomainTemplateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	tenant_id     *string
	spec          **models.TemplateSpec
	is_builtin    *bool
	created_by    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DomainTemplate, error)
	predicates    []predicate.DomainTemplate
}

var _ ent.Mutation = (*DomainTemplateMutation)(nil)

// domaintemplateOption allows management of the mutation configuration using functional options.
type domaintemplateOption func(*DomainTemplateMutation)

// newDomainTemplateMutation creates new mutation for the DomainTemplate entity.
func newDomainTemplateMutation(c config, op Op, opts ...domaintemplateOption) *DomainTemplateMutation {
	m := &DomainTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeDomainTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainTemplateID sets the ID field of the mutation.
func withDomainTemplateID(id string) domaintemplateOption {
	return func(m *DomainTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *DomainTemplate
		)
		m.oldValue = func(ctx context.Context) (*DomainTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DomainTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomainTemplate sets the old DomainTemplate of the mutation.
func withDomainTemplate(node *DomainTemplate) domaintemplateOption {
	return func(m *DomainTemplateMutation) {
		m.oldValue = func(context.Context) (*DomainTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DomainTemplate entities.
func (m *DomainTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DomainTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DomainTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DomainTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DomainTemplate entity.
// If the DomainTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DomainTemplateMutation) ResetName() {
	m.name = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *DomainTemplateMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DomainTemplateMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DomainTemplate entity.
// If the DomainTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTemplateMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ClearTenantID clears the value of the "tenant_id" field.
func (m *DomainTemplateMutation) ClearTenantID() {
	m.tenant_id = nil
	m.clearedFields[domaintemplate.FieldTenantID] = struct{}{}
}

// TenantIDCleared returns if the "tenant_id" field was cleared in this mutation.
func (m *DomainTemplateMutation) TenantIDCleared() bool {
	_, ok := m.clearedFields[domaintemplate.FieldTenantID]
	return ok
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DomainTemplateMutation) ResetTenantID() {
	m.tenant_id = nil
	delete(m.clearedFields, domaintemplate.FieldTenantID)
}

// SetSpec sets the "spec" field.
func (m *DomainTemplateMutation) SetSpec(ms *models.TemplateSpec) {
	m.spec = &ms
}

// Spec returns the value of the "spec" field in the mutation.
func (m *DomainTemplateMutation) Spec() (r *models.TemplateSpec, exists bool) {
	v := m.spec
	if v == nil {
		return
	}
	return *v, true
}

// OldSpec returns the old "spec" field's value of the DomainTemplate entity.
// If the DomainTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTemplateMutation) OldSpec(ctx context.Context) (v *models.TemplateSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpec: %w", err)
	}
	return oldValue.Spec, nil
}

// ResetSpec resets all changes to the "spec" field.
func (m *DomainTemplateMutation) ResetSpec() {
	m.spec = nil
}

// SetIsBuiltin sets the "is_builtin" field.
func (m *DomainTemplateMutation) SetIsBuiltin(b bool) {
	m.is_builtin = &b
}

// IsBuiltin returns the value of the "is_builtin" field in the mutation.
func (m *DomainTemplateMutation) IsBuiltin() (r bool, exists bool) {
	v := m.is_builtin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBuiltin returns the old "is_builtin" field's value of the DomainTemplate entity.
// If the DomainTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTemplateMutation) OldIsBuiltin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBuiltin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBuiltin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBuiltin: %w", err)
	}
	return oldValue.IsBuiltin, nil
}

// ResetIsBuiltin resets all changes to the "is_builtin" field.
func (m *DomainTemplateMutation) ResetIsBuiltin() {
	m.is_builtin = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *DomainTemplateMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *DomainTemplateMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the DomainTemplate entity.
// If the DomainTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTemplateMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *DomainTemplateMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[domaintemplate.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *DomainTemplateMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[domaintemplate.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *DomainTemplateMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, domaintemplate.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *DomainTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DomainTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DomainTemplate entity.
// If the DomainTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DomainTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DomainTemplateMutation builder.
func (m *DomainTemplateMutation) Where(ps ...predicate.DomainTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DomainTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DomainTemplate).
func (m *DomainTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainTemplateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, domaintemplate.FieldName)
	}
	if m.tenant_id != nil {
		fields = append(fields, domaintemplate.FieldTenantID)
	}
	if m.spec != nil {
		fields = append(fields, domaintemplate.FieldSpec)
	}
	if m.is_builtin != nil {
		fields = append(fields, domaintemplate.FieldIsBuiltin)
	}
	if m.created_by != nil {
		fields = append(fields, domaintemplate.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, domaintemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domaintemplate.FieldName:
		return m.Name()
	case domaintemplate.FieldTenantID:
		return m.TenantID()
	case domaintemplate.FieldSpec:
		return m.Spec()
	case domaintemplate.FieldIsBuiltin:
		return m.IsBuiltin()
	case domaintemplate.FieldCreatedBy:
		return m.CreatedBy()
	case domaintemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domaintemplate.FieldName:
		return m.OldName(ctx)
	case domaintemplate.FieldTenantID:
		return m.OldTenantID(ctx)
	case domaintemplate.FieldSpec:
		return m.OldSpec(ctx)
	case domaintemplate.FieldIsBuiltin:
		return m.OldIsBuiltin(ctx)
	case domaintemplate.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case domaintemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DomainTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domaintemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case domaintemplate.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case domaintemplate.FieldSpec:
		v, ok := value.(*models.TemplateSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpec(v)
		return nil
	case domaintemplate.FieldIsBuiltin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBuiltin(v)
		return nil
	case domaintemplate.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case domaintemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DomainTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DomainTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(domaintemplate.FieldTenantID) {
		fields = append(fields, domaintemplate.FieldTenantID)
	}
	if m.FieldCleared(domaintemplate.FieldCreatedBy) {
		fields = append(fields, domaintemplate.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainTemplateMutation) ClearField(name string) error {
	switch name {
	case domaintemplate.FieldTenantID:
		m.ClearTenantID()
		return nil
	case domaintemplate.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown DomainTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainTemplateMutation) ResetField(name string) error {
	switch name {
	case domaintemplate.FieldName:
		m.ResetName()
		return nil
	case domaintemplate.FieldTenantID:
		m.ResetTenantID()
		return nil
	case domaintemplate.FieldSpec:
		m.ResetSpec()
		return nil
	case domaintemplate.FieldIsBuiltin:
		m.ResetIsBuiltin()
		return nil
	case domaintemplate.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case domaintemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DomainTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DomainTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DomainTemplate edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	tenant_id     *string
	user_id       *string
	sequence      *int64
	addsequence   *int64
	kind          *string
	agent_key     *string
	tool_name     *string
	message       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *EventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetJobID sets the "job_id" field.
func (m *EventMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *EventMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *EventMutation) ResetJobID() {
	m.job = nil
}

// SetUserID sets the "user_id" field.
func (m *EventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSequence sets the "sequence" field.
func (m *EventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetKind sets the "kind" field.
func (m *EventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *EventMutation) ResetKind() {
	m.kind = nil
}

// SetAgentKey sets the "agent_key" field.
func (m *EventMutation) SetAgentKey(s string) {
	m.agent_key = &s
}

// AgentKey returns the value of the "agent_key" field in the mutation.
func (m *EventMutation) AgentKey() (r string, exists bool) {
	v := m.agent_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKey returns the old "agent_key" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAgentKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKey: %w", err)
	}
	return oldValue.AgentKey, nil
}

// ClearAgentKey clears the value of the "agent_key" field.
func (m *EventMutation) ClearAgentKey() {
	m.agent_key = nil
	m.clearedFields[event.FieldAgentKey] = struct{}{}
}

// AgentKeyCleared returns if the "agent_key" field was cleared in this mutation.
func (m *EventMutation) AgentKeyCleared() bool {
	_, ok := m.clearedFields[event.FieldAgentKey]
	return ok
}

// ResetAgentKey resets all changes to the "agent_key" field.
func (m *EventMutation) ResetAgentKey() {
	m.agent_key = nil
	delete(m.clearedFields, event.FieldAgentKey)
}

// SetToolName sets the "tool_name" field.
func (m *EventMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *EventMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *EventMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[event.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *EventMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[event.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *EventMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, event.FieldToolName)
}

// SetMessage sets the "message" field.
func (m *EventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *EventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *EventMutation) ResetMessage() {
	m.message = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *EventMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[event.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *EventMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *EventMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *EventMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, event.FieldTenantID)
	}
	if m.job != nil {
		fields = append(fields, event.FieldJobID)
	}
	if m.user_id != nil {
		fields = append(fields, event.FieldUserID)
	}
	if m.sequence != nil {
		fields = append(fields, event.FieldSequence)
	}
	if m.kind != nil {
		fields = append(fields, event.FieldKind)
	}
	if m.agent_key != nil {
		fields = append(fields, event.FieldAgentKey)
	}
	if m.tool_name != nil {
		fields = append(fields, event.FieldToolName)
	}
	if m.message != nil {
		fields = append(fields, event.FieldMessage)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTenantID:
		return m.TenantID()
	case event.FieldJobID:
		return m.JobID()
	case event.FieldUserID:
		return m.UserID()
	case event.FieldSequence:
		return m.Sequence()
	case event.FieldKind:
		return m.Kind()
	case event.FieldAgentKey:
		return m.AgentKey()
	case event.FieldToolName:
		return m.ToolName()
	case event.FieldMessage:
		return m.Message()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTenantID:
		return m.OldTenantID(ctx)
	case event.FieldJobID:
		return m.OldJobID(ctx)
	case event.FieldUserID:
		return m.OldUserID(ctx)
	case event.FieldSequence:
		return m.OldSequence(ctx)
	case event.FieldKind:
		return m.OldKind(ctx)
	case event.FieldAgentKey:
		return m.OldAgentKey(ctx)
	case event.FieldToolName:
		return m.OldToolName(ctx)
	case event.FieldMessage:
		return m.OldMessage(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case event.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case event.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case event.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case event.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case event.FieldAgentKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKey(v)
		return nil
	case event.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case event.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, event.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldAgentKey) {
		fields = append(fields, event.FieldAgentKey)
	}
	if m.FieldCleared(event.FieldToolName) {
		fields = append(fields, event.FieldToolName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldAgentKey:
		m.ClearAgentKey()
		return nil
	case event.FieldToolName:
		m.ClearToolName()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTenantID:
		m.ResetTenantID()
		return nil
	case event.FieldJobID:
		m.ResetJobID()
		return nil
	case event.FieldUserID:
		m.ResetUserID()
		return nil
	case event.FieldSequence:
		m.ResetSequence()
		return nil
	case event.FieldKind:
		m.ResetKind()
		return nil
	case event.FieldAgentKey:
		m.ResetAgentKey()
		return nil
	case event.FieldToolName:
		m.ResetToolName()
		return nil
	case event.FieldMessage:
		m.ResetMessage()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, event.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, event.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tenant_id          *string
	user_id            *string
	class              *job.Class
	domain_id          *string
	input              **models.JobInput
	plan_snapshot      **plan.Snapshot
	status             *job.Status
	error_code         *string
	error_message      *string
	pod_id             *string
	last_heartbeat_at  *time.Time
	created_at         *time.Time
	started_at         *time.Time
	finished_at        *time.Time
	clearedFields      map[string]struct{}
	invocations        map[string]struct{}
	removedinvocations map[string]struct{}
	clearedinvocations bool
	artifact           *string
	clearedartifact    bool
	events             map[int64]struct{}
	removedevents      map[int64]struct{}
	clearedevents      bool
	done               bool
	oldValue           func(context.Context) (*Job, error)
	predicates         []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *JobMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *JobMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *JobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *JobMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *JobMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *JobMutation) ResetUserID() {
	m.user_id = nil
}

// SetClass sets the "class" field.
func (m *JobMutation) SetClass(j job.Class) {
	m.class = &j
}

// Class returns the value of the "class" field in the mutation.
func (m *JobMutation) Class() (r job.Class, exists bool) {
	v := m.class
	if v == nil {
		return
	}
	return *v, true
}

// OldClass returns the old "class" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldClass(ctx context.Context) (v job.Class, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClass: %w", err)
	}
	return oldValue.Class, nil
}

// ResetClass resets all changes to the "class" field.
func (m *JobMutation) ResetClass() {
	m.class = nil
}

// SetDomainID sets the "domain_id" field.
func (m *JobMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *JobMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *JobMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetInput sets the "input" field.
func (m *JobMutation) SetInput(mi *models.JobInput) {
	m.input = &mi
}

// Input returns the value of the "input" field in the mutation.
func (m *JobMutation) Input() (r *models.JobInput, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldInput(ctx context.Context) (v *models.JobInput, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *JobMutation) ResetInput() {
	m.input = nil
}

// SetPlanSnapshot sets the "plan_snapshot" field.
func (m *JobMutation) SetPlanSnapshot(pl *plan.Snapshot) {
	m.plan_snapshot = &pl
}

// PlanSnapshot returns the value of the "plan_snapshot" field in the mutation.
func (m *JobMutation) PlanSnapshot() (r *plan.Snapshot, exists bool) {
	v := m.plan_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanSnapshot returns the old "plan_snapshot" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPlanSnapshot(ctx context.Context) (v *plan.Snapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanSnapshot: %w", err)
	}
	return oldValue.PlanSnapshot, nil
}

// ClearPlanSnapshot clears the value of the "plan_snapshot" field.
func (m *JobMutation) ClearPlanSnapshot() {
	m.plan_snapshot = nil
	m.clearedFields[job.FieldPlanSnapshot] = struct{}{}
}

// PlanSnapshotCleared returns if the "plan_snapshot" field was cleared in this mutation.
func (m *JobMutation) PlanSnapshotCleared() bool {
	_, ok := m.clearedFields[job.FieldPlanSnapshot]
	return ok
}

// ResetPlanSnapshot resets all changes to the "plan_snapshot" field.
func (m *JobMutation) ResetPlanSnapshot() {
	m.plan_snapshot = nil
	delete(m.clearedFields, job.FieldPlanSnapshot)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCode sets the "error_code" field.
func (m *JobMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *JobMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *JobMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[job.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *JobMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *JobMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, job.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *JobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *JobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *JobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[job.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *JobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *JobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, job.FieldFinishedAt)
}

// AddInvocationIDs adds the "invocations" edge to the AgentInvocation entity by ids.
func (m *JobMutation) AddInvocationIDs(ids ...string) {
	if m.invocations == nil {
		m.invocations = make(map[string]struct{})
	}
	for i := range ids {
		m.invocations[ids[i]] = struct{}{}
	}
}

// ClearInvocations clears the "invocations" edge to the AgentInvocation entity.
func (m *JobMutation) ClearInvocations() {
	m.clearedinvocations = true
}

// InvocationsCleared reports if the "invocations" edge to the AgentInvocation entity was cleared.
func (m *JobMutation) InvocationsCleared() bool {
	return m.clearedinvocations
}

// RemoveInvocationIDs removes the "invocations" edge to the AgentInvocation entity by IDs.
func (m *JobMutation) RemoveInvocationIDs(ids ...string) {
	if m.removedinvocations == nil {
		m.removedinvocations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.invocations, ids[i])
		m.removedinvocations[ids[i]] = struct{}{}
	}
}

// RemovedInvocations returns the removed IDs of the "invocations" edge to the AgentInvocation entity.
func (m *JobMutation) RemovedInvocationsIDs() (ids []string) {
	for id := range m.removedinvocations {
		ids = append(ids, id)
	}
	return
}

// InvocationsIDs returns the "invocations" edge IDs in the mutation.
func (m *JobMutation) InvocationsIDs() (ids []string) {
	for id := range m.invocations {
		ids = append(ids, id)
	}
	return
}

// ResetInvocations resets all changes to the "invocations" edge.
func (m *JobMutation) ResetInvocations() {
	m.invocations = nil
	m.clearedinvocations = false
	m.removedinvocations = nil
}

// SetArtifactID sets the "artifact" edge to the ResultArtifact entity by id.
func (m *JobMutation) SetArtifactID(id string) {
	m.artifact = &id
}

// ClearArtifact clears the "artifact" edge to the ResultArtifact entity.
func (m *JobMutation) ClearArtifact() {
	m.clearedartifact = true
}

// ArtifactCleared reports if the "artifact" edge to the ResultArtifact entity was cleared.
func (m *JobMutation) ArtifactCleared() bool {
	return m.clearedartifact
}

// ArtifactID returns the "artifact" edge ID in the mutation.
func (m *JobMutation) ArtifactID() (id string, exists bool) {
	if m.artifact != nil {
		return *m.artifact, true
	}
	return
}

// ArtifactIDs returns the "artifact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArtifactID instead. It exists only for internal usage by the builders.
func (m *JobMutation) ArtifactIDs() (ids []string) {
	if id := m.artifact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArtifact resets all changes to the "artifact" edge.
func (m *JobMutation) ResetArtifact() {
	m.artifact = nil
	m.clearedartifact = false
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *JobMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *JobMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *JobMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *JobMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *JobMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *JobMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *JobMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, job.FieldTenantID)
	}
	if m.user_id != nil {
		fields = append(fields, job.FieldUserID)
	}
	if m.class != nil {
		fields = append(fields, job.FieldClass)
	}
	if m.domain_id != nil {
		fields = append(fields, job.FieldDomainID)
	}
	if m.input != nil {
		fields = append(fields, job.FieldInput)
	}
	if m.plan_snapshot != nil {
		fields = append(fields, job.FieldPlanSnapshot)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.error_code != nil {
		fields = append(fields, job.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTenantID:
		return m.TenantID()
	case job.FieldUserID:
		return m.UserID()
	case job.FieldClass:
		return m.Class()
	case job.FieldDomainID:
		return m.DomainID()
	case job.FieldInput:
		return m.Input()
	case job.FieldPlanSnapshot:
		return m.PlanSnapshot()
	case job.FieldStatus:
		return m.Status()
	case job.FieldErrorCode:
		return m.ErrorCode()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTenantID:
		return m.OldTenantID(ctx)
	case job.FieldUserID:
		return m.OldUserID(ctx)
	case job.FieldClass:
		return m.OldClass(ctx)
	case job.FieldDomainID:
		return m.OldDomainID(ctx)
	case job.FieldInput:
		return m.OldInput(ctx)
	case job.FieldPlanSnapshot:
		return m.OldPlanSnapshot(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case job.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case job.FieldClass:
		v, ok := value.(job.Class)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClass(v)
		return nil
	case job.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case job.FieldInput:
		v, ok := value.(*models.JobInput)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case job.FieldPlanSnapshot:
		v, ok := value.(*plan.Snapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanSnapshot(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldPlanSnapshot) {
		fields = append(fields, job.FieldPlanSnapshot)
	}
	if m.FieldCleared(job.FieldErrorCode) {
		fields = append(fields, job.FieldErrorCode)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldFinishedAt) {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldPlanSnapshot:
		m.ClearPlanSnapshot()
		return nil
	case job.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTenantID:
		m.ResetTenantID()
		return nil
	case job.FieldUserID:
		m.ResetUserID()
		return nil
	case job.FieldClass:
		m.ResetClass()
		return nil
	case job.FieldDomainID:
		m.ResetDomainID()
		return nil
	case job.FieldInput:
		m.ResetInput()
		return nil
	case job.FieldPlanSnapshot:
		m.ResetPlanSnapshot()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.invocations != nil {
		edges = append(edges, job.EdgeInvocations)
	}
	if m.artifact != nil {
		edges = append(edges, job.EdgeArtifact)
	}
	if m.events != nil {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeInvocations:
		ids := make([]ent.Value, 0, len(m.invocations))
		for id := range m.invocations {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeArtifact:
		if id := m.artifact; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedinvocations != nil {
		edges = append(edges, job.EdgeInvocations)
	}
	if m.removedevents != nil {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeInvocations:
		ids := make([]ent.Value, 0, len(m.removedinvocations))
		for id := range m.removedinvocations {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedinvocations {
		edges = append(edges, job.EdgeInvocations)
	}
	if m.clearedartifact {
		edges = append(edges, job.EdgeArtifact)
	}
	if m.clearedevents {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeInvocations:
		return m.clearedinvocations
	case job.EdgeArtifact:
		return m.clearedartifact
	case job.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeArtifact:
		m.ClearArtifact()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeInvocations:
		m.ResetInvocations()
		return nil
	case job.EdgeArtifact:
		m.ResetArtifact()
		return nil
	case job.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// PlaybookMutation represents an operation that mutates the Playbook nodes in the graph.
type PlaybookMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	domain_id        *string
	class            *playbook.Class
	agent_keys       *[]string
	appendagent_keys []string
	version          *int
	addversion       *int
	created_by       *string
	created_at       *time.Time
	updated_at       *time.Time
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	graph            *string
	clearedgraph     bool
	done             bool
	oldValue         func(context.Context) (*Playbook, error)
	predicates       []predicate.Playbook
}

var _ ent.Mutation = (*PlaybookMutation)(nil)

// playbookOption allows management of the mutation configuration using functional options.
type playbookOption func(*PlaybookMutation)

// newPlaybookMutation creates new mutation for the Playbook entity.
func newPlaybookMutation(c config, op Op, opts ...playbookOption) *PlaybookMutation {
	m := &PlaybookMutation{
		config:        c,
		op:            op,
		typ:           TypePlaybook,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlaybookID sets the ID field of the mutation.
func withPlaybookID(id string) playbookOption {
	return func(m *PlaybookMutation) {
		var (
			err   error
			once  sync.Once
			value *Playbook
		)
		m.oldValue = func(ctx context.Context) (*Playbook, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Playbook.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlaybook sets the old Playbook of the mutation.
func withPlaybook(node *Playbook) playbookOption {
	return func(m *PlaybookMutation) {
		m.oldValue = func(context.Context) (*Playbook, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlaybookMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlaybookMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Playbook entities.
func (m *PlaybookMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlaybookMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlaybookMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Playbook.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PlaybookMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PlaybookMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PlaybookMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetDomainID sets the "domain_id" field.
func (m *PlaybookMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *PlaybookMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *PlaybookMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetClass sets the "class" field.
func (m *PlaybookMutation) SetClass(pl playbook.Class) {
	m.class = &pl
}

// Class returns the value of the "class" field in the mutation.
func (m *PlaybookMutation) Class() (r playbook.Class, exists bool) {
	v := m.class
	if v == nil {
		return
	}
	return *v, true
}

// OldClass returns the old "class" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldClass(ctx context.Context) (v playbook.Class, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClass: %w", err)
	}
	return oldValue.Class, nil
}

// ResetClass resets all changes to the "class" field.
func (m *PlaybookMutation) ResetClass() {
	m.class = nil
}

// SetAgentKeys sets the "agent_keys" field.
func (m *PlaybookMutation) SetAgentKeys(s []string) {
	m.agent_keys = &s
	m.appendagent_keys = nil
}

// AgentKeys returns the value of the "agent_keys" field in the mutation.
func (m *PlaybookMutation) AgentKeys() (r []string, exists bool) {
	v := m.agent_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentKeys returns the old "agent_keys" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldAgentKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentKeys: %w", err)
	}
	return oldValue.AgentKeys, nil
}

// AppendAgentKeys adds s to the "agent_keys" field.
func (m *PlaybookMutation) AppendAgentKeys(s []string) {
	m.appendagent_keys = append(m.appendagent_keys, s...)
}

// AppendedAgentKeys returns the list of values that were appended to the "agent_keys" field in this mutation.
func (m *PlaybookMutation) AppendedAgentKeys() ([]string, bool) {
	if len(m.appendagent_keys) == 0 {
		return nil, false
	}
	return m.appendagent_keys, true
}

// ResetAgentKeys resets all changes to the "agent_keys" field.
func (m *PlaybookMutation) ResetAgentKeys() {
	m.agent_keys = nil
	m.appendagent_keys = nil
}

// SetVersion sets the "version" field.
func (m *PlaybookMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PlaybookMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PlaybookMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PlaybookMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PlaybookMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *PlaybookMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PlaybookMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *PlaybookMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[playbook.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *PlaybookMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[playbook.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PlaybookMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, playbook.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlaybookMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlaybookMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlaybookMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlaybookMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlaybookMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlaybookMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PlaybookMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PlaybookMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Playbook entity.
// If the Playbook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PlaybookMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[playbook.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PlaybookMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[playbook.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PlaybookMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, playbook.FieldDeletedAt)
}

// SetGraphID sets the "graph" edge to the DependencyGraph entity by id.
func (m *PlaybookMutation) SetGraphID(id string) {
	m.graph = &id
}

// ClearGraph clears the "graph" edge to the DependencyGraph entity.
func (m *PlaybookMutation) ClearGraph() {
	m.clearedgraph = true
}

// GraphCleared reports if the "graph" edge to the DependencyGraph entity was cleared.
func (m *PlaybookMutation) GraphCleared() bool {
	return m.clearedgraph
}

// GraphID returns the "graph" edge ID in the mutation.
func (m *PlaybookMutation) GraphID() (id string, exists bool) {
	if m.graph != nil {
		return *m.graph, true
	}
	return
}

// GraphIDs returns the "graph" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GraphID instead. It exists only for internal usage by the builders.
func (m *PlaybookMutation) GraphIDs() (ids []string) {
	if id := m.graph; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGraph resets all changes to the "graph" edge.
func (m *PlaybookMutation) ResetGraph() {
	m.graph = nil
	m.clearedgraph = false
}

// Where appends a list predicates to the PlaybookMutation builder.
func (m *PlaybookMutation) Where(ps ...predicate.Playbook) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlaybookMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlaybookMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Playbook, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlaybookMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlaybookMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Playbook).
func (m *PlaybookMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlaybookMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, playbook.FieldTenantID)
	}
	if m.domain_id != nil {
		fields = append(fields, playbook.FieldDomainID)
	}
	if m.class != nil {
		fields = append(fields, playbook.FieldClass)
	}
	if m.agent_keys != nil {
		fields = append(fields, playbook.FieldAgentKeys)
	}
	if m.version != nil {
		fields = append(fields, playbook.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, playbook.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, playbook.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, playbook.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, playbook.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlaybookMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playbook.FieldTenantID:
		return m.TenantID()
	case playbook.FieldDomainID:
		return m.DomainID()
	case playbook.FieldClass:
		return m.Class()
	case playbook.FieldAgentKeys:
		return m.AgentKeys()
	case playbook.FieldVersion:
		return m.Version()
	case playbook.FieldCreatedBy:
		return m.CreatedBy()
	case playbook.FieldCreatedAt:
		return m.CreatedAt()
	case playbook.FieldUpdatedAt:
		return m.UpdatedAt()
	case playbook.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlaybookMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playbook.FieldTenantID:
		return m.OldTenantID(ctx)
	case playbook.FieldDomainID:
		return m.OldDomainID(ctx)
	case playbook.FieldClass:
		return m.OldClass(ctx)
	case playbook.FieldAgentKeys:
		return m.OldAgentKeys(ctx)
	case playbook.FieldVersion:
		return m.OldVersion(ctx)
	case playbook.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case playbook.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case playbook.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case playbook.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Playbook field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybookMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playbook.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case playbook.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case playbook.FieldClass:
		v, ok := value.(playbook.Class)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClass(v)
		return nil
	case playbook.FieldAgentKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentKeys(v)
		return nil
	case playbook.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case playbook.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case playbook.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case playbook.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case playbook.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Playbook field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlaybookMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, playbook.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlaybookMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case playbook.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybookMutation) AddField(name string, value ent.Value) error {
	switch name {
	case playbook.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Playbook numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlaybookMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(playbook.FieldCreatedBy) {
		fields = append(fields, playbook.FieldCreatedBy)
	}
	if m.FieldCleared(playbook.FieldDeletedAt) {
		fields = append(fields, playbook.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlaybookMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlaybookMutation) ClearField(name string) error {
	switch name {
	case playbook.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case playbook.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Playbook nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlaybookMutation) ResetField(name string) error {
	switch name {
	case playbook.FieldTenantID:
		m.ResetTenantID()
		return nil
	case playbook.FieldDomainID:
		m.ResetDomainID()
		return nil
	case playbook.FieldClass:
		m.ResetClass()
		return nil
	case playbook.FieldAgentKeys:
		m.ResetAgentKeys()
		return nil
	case playbook.FieldVersion:
		m.ResetVersion()
		return nil
	case playbook.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case playbook.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case playbook.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case playbook.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Playbook field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlaybookMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.graph != nil {
		edges = append(edges, playbook.EdgeGraph)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlaybookMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case playbook.EdgeGraph:
		if id := m.graph; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlaybookMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlaybookMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlaybookMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgraph {
		edges = append(edges, playbook.EdgeGraph)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlaybookMutation) EdgeCleared(name string) bool {
	switch name {
	case playbook.EdgeGraph:
		return m.clearedgraph
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlaybookMutation) ClearEdge(name string) error {
	switch name {
	case playbook.EdgeGraph:
		m.ClearGraph()
		return nil
	}
	return fmt.Errorf("unknown Playbook unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlaybookMutation) ResetEdge(name string) error {
	switch name {
	case playbook.EdgeGraph:
		m.ResetGraph()
		return nil
	}
	return fmt.Errorf("unknown Playbook edge %s", name)
}

// ResultArtifactMutation represents an operation that mutates the ResultArtifact nodes in the graph.
type ResultArtifactMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	class            *resultartifact.Class
	fields           *map[string]interface{}
	bullets          *[]models.Bullet
	appendbullets    []models.Bullet
	summary          *string
	visualization    **models.VisualizationSpec
	agent_statuses   *map[string]models.AgentStatus
	input_refs       *[]string
	appendinput_refs []string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	job              *string
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*ResultArtifact, error)
	predicates       []predicate.ResultArtifact
}

var _ ent.Mutation = (*ResultArtifactMutation)(nil)

// resultartifactOption allows management of the mutation configuration using functional options.
type resultartifactOption func(*ResultArtifactMutation)

// newResultArtifactMutation creates new mutation for the ResultArtifact entity.
func newResultArtifactMutation(c config, op Op, opts ...resultartifactOption) *ResultArtifactMutation {
	m := &ResultArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeResultArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResultArtifactID sets the ID field of the mutation.
func withResultArtifactID(id string) resultartifactOption {
	return func(m *ResultArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *ResultArtifact
		)
		m.oldValue = func(ctx context.Context) (*ResultArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResultArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResultArtifact sets the old ResultArtifact of the mutation.
func withResultArtifact(node *ResultArtifact) resultartifactOption {
	return func(m *ResultArtifactMutation) {
		m.oldValue = func(context.Context) (*ResultArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResultArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResultArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResultArtifact entities.
func (m *ResultArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResultArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResultArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResultArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ResultArtifactMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ResultArtifactMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ResultArtifactMutation) ResetJobID() {
	m.job = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *ResultArtifactMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ResultArtifactMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ResultArtifactMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetClass sets the "class" field.
func (m *ResultArtifactMutation) SetClass(r resultartifact.Class) {
	m.class = &r
}

// Class returns the value of the "class" field in the mutation.
func (m *ResultArtifactMutation) Class() (r resultartifact.Class, exists bool) {
	v := m.class
	if v == nil {
		return
	}
	return *v, true
}

// OldClass returns the old "class" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldClass(ctx context.Context) (v resultartifact.Class, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClass: %w", err)
	}
	return oldValue.Class, nil
}

// ResetClass resets all changes to the "class" field.
func (m *ResultArtifactMutation) ResetClass() {
	m.class = nil
}

// SetFields sets the "fields" field.
func (m *ResultArtifactMutation) SetFields(value map[string]interface{}) {
	m.fields = &value
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *ResultArtifactMutation) GetFields() (r map[string]interface{}, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// ClearFields clears the value of the "fields" field.
func (m *ResultArtifactMutation) ClearFields() {
	m.fields = nil
	m.clearedFields[resultartifact.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *ResultArtifactMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[resultartifact.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *ResultArtifactMutation) ResetFields() {
	m.fields = nil
	delete(m.clearedFields, resultartifact.FieldFields)
}

// SetBullets sets the "bullets" field.
func (m *ResultArtifactMutation) SetBullets(value []models.Bullet) {
	m.bullets = &value
	m.appendbullets = nil
}

// Bullets returns the value of the "bullets" field in the mutation.
func (m *ResultArtifactMutation) Bullets() (r []models.Bullet, exists bool) {
	v := m.bullets
	if v == nil {
		return
	}
	return *v, true
}

// OldBullets returns the old "bullets" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldBullets(ctx context.Context) (v []models.Bullet, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBullets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBullets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBullets: %w", err)
	}
	return oldValue.Bullets, nil
}

// AppendBullets adds value to the "bullets" field.
func (m *ResultArtifactMutation) AppendBullets(value []models.Bullet) {
	m.appendbullets = append(m.appendbullets, value...)
}

// AppendedBullets returns the list of values that were appended to the "bullets" field in this mutation.
func (m *ResultArtifactMutation) AppendedBullets() ([]models.Bullet, bool) {
	if len(m.appendbullets) == 0 {
		return nil, false
	}
	return m.appendbullets, true
}

// ClearBullets clears the value of the "bullets" field.
func (m *ResultArtifactMutation) ClearBullets() {
	m.bullets = nil
	m.appendbullets = nil
	m.clearedFields[resultartifact.FieldBullets] = struct{}{}
}

// BulletsCleared returns if the "bullets" field was cleared in this mutation.
func (m *ResultArtifactMutation) BulletsCleared() bool {
	_, ok := m.clearedFields[resultartifact.FieldBullets]
	return ok
}

// ResetBullets resets all changes to the "bullets" field.
func (m *ResultArtifactMutation) ResetBullets() {
	m.bullets = nil
	m.appendbullets = nil
	delete(m.clearedFields, resultartifact.FieldBullets)
}

// SetSummary sets the "summary" field.
func (m *ResultArtifactMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ResultArtifactMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ResultArtifactMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[resultartifact.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ResultArtifactMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[resultartifact.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ResultArtifactMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, resultartifact.FieldSummary)
}

// SetVisualization sets the "visualization" field.
func (m *ResultArtifactMutation) SetVisualization(ms *models.VisualizationSpec) {
	m.visualization = &ms
}

// Visualization returns the value of the "visualization" field in the mutation.
func (m *ResultArtifactMutation) Visualization() (r *models.VisualizationSpec, exists bool) {
	v := m.visualization
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualization returns the old "visualization" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldVisualization(ctx context.Context) (v *models.VisualizationSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualization: %w", err)
	}
	return oldValue.Visualization, nil
}

// ClearVisualization clears the value of the "visualization" field.
func (m *ResultArtifactMutation) ClearVisualization() {
	m.visualization = nil
	m.clearedFields[resultartifact.FieldVisualization] = struct{}{}
}

// VisualizationCleared returns if the "visualization" field was cleared in this mutation.
func (m *ResultArtifactMutation) VisualizationCleared() bool {
	_, ok := m.clearedFields[resultartifact.FieldVisualization]
	return ok
}

// ResetVisualization resets all changes to the "visualization" field.
func (m *ResultArtifactMutation) ResetVisualization() {
	m.visualization = nil
	delete(m.clearedFields, resultartifact.FieldVisualization)
}

// SetAgentStatuses sets the "agent_statuses" field.
func (m *ResultArtifactMutation) SetAgentStatuses(ms map[string]models.AgentStatus) {
	m.agent_statuses = &ms
}

// AgentStatuses returns the value of the "agent_statuses" field in the mutation.
func (m *ResultArtifactMutation) AgentStatuses() (r map[string]models.AgentStatus, exists bool) {
	v := m.agent_statuses
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentStatuses returns the old "agent_statuses" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldAgentStatuses(ctx context.Context) (v map[string]models.AgentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentStatuses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentStatuses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentStatuses: %w", err)
	}
	return oldValue.AgentStatuses, nil
}

// ResetAgentStatuses resets all changes to the "agent_statuses" field.
func (m *ResultArtifactMutation) ResetAgentStatuses() {
	m.agent_statuses = nil
}

// SetInputRefs sets the "input_refs" field.
func (m *ResultArtifactMutation) SetInputRefs(s []string) {
	m.input_refs = &s
	m.appendinput_refs = nil
}

// InputRefs returns the value of the "input_refs" field in the mutation.
func (m *ResultArtifactMutation) InputRefs() (r []string, exists bool) {
	v := m.input_refs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputRefs returns the old "input_refs" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldInputRefs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputRefs: %w", err)
	}
	return oldValue.InputRefs, nil
}

// AppendInputRefs adds s to the "input_refs" field.
func (m *ResultArtifactMutation) AppendInputRefs(s []string) {
	m.appendinput_refs = append(m.appendinput_refs, s...)
}

// AppendedInputRefs returns the list of values that were appended to the "input_refs" field in this mutation.
func (m *ResultArtifactMutation) AppendedInputRefs() ([]string, bool) {
	if len(m.appendinput_refs) == 0 {
		return nil, false
	}
	return m.appendinput_refs, true
}

// ClearInputRefs clears the value of the "input_refs" field.
func (m *ResultArtifactMutation) ClearInputRefs() {
	m.input_refs = nil
	m.appendinput_refs = nil
	m.clearedFields[resultartifact.FieldInputRefs] = struct{}{}
}

// InputRefsCleared returns if the "input_refs" field was cleared in this mutation.
func (m *ResultArtifactMutation) InputRefsCleared() bool {
	_, ok := m.clearedFields[resultartifact.FieldInputRefs]
	return ok
}

// ResetInputRefs resets all changes to the "input_refs" field.
func (m *ResultArtifactMutation) ResetInputRefs() {
	m.input_refs = nil
	m.appendinput_refs = nil
	delete(m.clearedFields, resultartifact.FieldInputRefs)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResultArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResultArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResultArtifact entity.
// If the ResultArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResultArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *ResultArtifactMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[resultartifact.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *ResultArtifactMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ResultArtifactMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ResultArtifactMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ResultArtifactMutation builder.
func (m *ResultArtifactMutation) Where(ps ...predicate.ResultArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResultArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResultArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResultArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResultArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResultArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResultArtifact).
func (m *ResultArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResultArtifactMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.job != nil {
		fields = append(fields, resultartifact.FieldJobID)
	}
	if m.tenant_id != nil {
		fields = append(fields, resultartifact.FieldTenantID)
	}
	if m.class != nil {
		fields = append(fields, resultartifact.FieldClass)
	}
	if m.fields != nil {
		fields = append(fields, resultartifact.FieldFields)
	}
	if m.bullets != nil {
		fields = append(fields, resultartifact.FieldBullets)
	}
	if m.summary != nil {
		fields = append(fields, resultartifact.FieldSummary)
	}
	if m.visualization != nil {
		fields = append(fields, resultartifact.FieldVisualization)
	}
	if m.agent_statuses != nil {
		fields = append(fields, resultartifact.FieldAgentStatuses)
	}
	if m.input_refs != nil {
		fields = append(fields, resultartifact.FieldInputRefs)
	}
	if m.created_at != nil {
		fields = append(fields, resultartifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResultArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resultartifact.FieldJobID:
		return m.JobID()
	case resultartifact.FieldTenantID:
		return m.TenantID()
	case resultartifact.FieldClass:
		return m.Class()
	case resultartifact.FieldFields:
		return m.GetFields()
	case resultartifact.FieldBullets:
		return m.Bullets()
	case resultartifact.FieldSummary:
		return m.Summary()
	case resultartifact.FieldVisualization:
		return m.Visualization()
	case resultartifact.FieldAgentStatuses:
		return m.AgentStatuses()
	case resultartifact.FieldInputRefs:
		return m.InputRefs()
	case resultartifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResultArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resultartifact.FieldJobID:
		return m.OldJobID(ctx)
	case resultartifact.FieldTenantID:
		return m.OldTenantID(ctx)
	case resultartifact.FieldClass:
		return m.OldClass(ctx)
	case resultartifact.FieldFields:
		return m.OldFields(ctx)
	case resultartifact.FieldBullets:
		return m.OldBullets(ctx)
	case resultartifact.FieldSummary:
		return m.OldSummary(ctx)
	case resultartifact.FieldVisualization:
		return m.OldVisualization(ctx)
	case resultartifact.FieldAgentStatuses:
		return m.OldAgentStatuses(ctx)
	case resultartifact.FieldInputRefs:
		return m.OldInputRefs(ctx)
	case resultartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResultArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resultartifact.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case resultartifact.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case resultartifact.FieldClass:
		v, ok := value.(resultartifact.Class)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClass(v)
		return nil
	case resultartifact.FieldFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case resultartifact.FieldBullets:
		v, ok := value.([]models.Bullet)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBullets(v)
		return nil
	case resultartifact.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case resultartifact.FieldVisualization:
		v, ok := value.(*models.VisualizationSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualization(v)
		return nil
	case resultartifact.FieldAgentStatuses:
		v, ok := value.(map[string]models.AgentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentStatuses(v)
		return nil
	case resultartifact.FieldInputRefs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputRefs(v)
		return nil
	case resultartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResultArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResultArtifactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResultArtifactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResultArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResultArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resultartifact.FieldFields) {
		fields = append(fields, resultartifact.FieldFields)
	}
	if m.FieldCleared(resultartifact.FieldBullets) {
		fields = append(fields, resultartifact.FieldBullets)
	}
	if m.FieldCleared(resultartifact.FieldSummary) {
		fields = append(fields, resultartifact.FieldSummary)
	}
	if m.FieldCleared(resultartifact.FieldVisualization) {
		fields = append(fields, resultartifact.FieldVisualization)
	}
	if m.FieldCleared(resultartifact.FieldInputRefs) {
		fields = append(fields, resultartifact.FieldInputRefs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResultArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResultArtifactMutation) ClearField(name string) error {
	switch name {
	case resultartifact.FieldFields:
		m.ClearFields()
		return nil
	case resultartifact.FieldBullets:
		m.ClearBullets()
		return nil
	case resultartifact.FieldSummary:
		m.ClearSummary()
		return nil
	case resultartifact.FieldVisualization:
		m.ClearVisualization()
		return nil
	case resultartifact.FieldInputRefs:
		m.ClearInputRefs()
		return nil
	}
	return fmt.Errorf("unknown ResultArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResultArtifactMutation) ResetField(name string) error {
	switch name {
	case resultartifact.FieldJobID:
		m.ResetJobID()
		return nil
	case resultartifact.FieldTenantID:
		m.ResetTenantID()
		return nil
	case resultartifact.FieldClass:
		m.ResetClass()
		return nil
	case resultartifact.FieldFields:
		m.ResetFields()
		return nil
	case resultartifact.FieldBullets:
		m.ResetBullets()
		return nil
	case resultartifact.FieldSummary:
		m.ResetSummary()
		return nil
	case resultartifact.FieldVisualization:
		m.ResetVisualization()
		return nil
	case resultartifact.FieldAgentStatuses:
		m.ResetAgentStatuses()
		return nil
	case resultartifact.FieldInputRefs:
		m.ResetInputRefs()
		return nil
	case resultartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResultArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResultArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, resultartifact.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResultArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resultartifact.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResultArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResultArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResultArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, resultartifact.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResultArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case resultartifact.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResultArtifactMutation) ClearEdge(name string) error {
	switch name {
	case resultartifact.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ResultArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResultArtifactMutation) ResetEdge(name string) error {
	switch name {
	case resultartifact.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ResultArtifact edge %s", name)
}
