// Package catalog is the tenant-scoped config store: agent definitions,
// playbooks, dependency graphs, and domain templates, all validated
// before persist. Writes are versioned; prior agent rows are retained
// as backups. Plans are assembled read-only from the current catalog.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/agentdefinition"
	"github.com/siftstack/sift/pkg/config"
)

// maxOutputSchemaKeys caps an agent's declared output schema.
const maxOutputSchemaKeys = 5

// PutAgentInput is a full agent definition submission. Puts are
// replace-style: the submitted definition becomes the new current
// version in its entirety.
type PutAgentInput struct {
	Key              string
	Class            config.AgentClass
	SystemPrompt     string
	AllowedTools     []string
	OutputSchema     map[string]string
	DependencyParent string
	Interrogative    string
	Enabled          *bool // nil means enabled
	CreatedBy        string
}

// AgentService manages agent definitions. It also serves the tool
// broker's permission lookups.
type AgentService struct {
	client *ent.Client

	// onPermissionChange invalidates the broker's ACL cache after a
	// definition write. Optional.
	onPermissionChange func(tenantID, agentKey string)
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	if client == nil {
		panic("NewAgentService: client must not be nil")
	}
	return &AgentService{client: client}
}

// OnPermissionChange registers the broker cache invalidation hook.
func (s *AgentService) OnPermissionChange(fn func(tenantID, agentKey string)) {
	s.onPermissionChange = fn
}

// PutAgent validates and persists an agent definition. An existing
// definition for the same key is superseded: its row is kept with
// is_current unset and the new row carries the next version. Returns
// the new version.
func (s *AgentService) PutAgent(ctx context.Context, tenantID string, input PutAgentInput) (int, error) {
	if err := s.validatePut(ctx, tenantID, input); err != nil {
		return 0, err
	}

	current, err := s.currentRow(ctx, tenantID, input.Key)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to load current definition: %w", err)
	}
	if current != nil && current.IsBuiltin {
		return 0, fmt.Errorf("%w: agent %q", ErrBuiltinImmutable, input.Key)
	}

	version := 1
	if current != nil {
		version = current.Version + 1
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to open transaction: %w", err)
	}
	defer tx.Rollback()

	if current != nil {
		if err := tx.AgentDefinition.UpdateOne(current).
			SetIsCurrent(false).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to supersede version %d: %w", current.Version, err)
		}
	}

	builder := tx.AgentDefinition.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetAgentKey(input.Key).
		SetClass(agentdefinition.Class(input.Class)).
		SetSystemPrompt(input.SystemPrompt).
		SetAllowedTools(input.AllowedTools).
		SetOutputSchema(input.OutputSchema).
		SetVersion(version).
		SetIsCurrent(true)

	if input.DependencyParent != "" {
		builder.SetDependencyParent(input.DependencyParent)
	}
	if input.Interrogative != "" {
		builder.SetInterrogative(input.Interrogative)
	}
	if input.Enabled != nil {
		builder.SetEnabled(*input.Enabled)
	}
	if input.CreatedBy != "" {
		builder.SetCreatedBy(input.CreatedBy)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to create definition: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	if s.onPermissionChange != nil {
		s.onPermissionChange(tenantID, input.Key)
	}
	return version, nil
}

func (s *AgentService) validatePut(ctx context.Context, tenantID string, input PutAgentInput) error {
	if input.Key == "" {
		return fmt.Errorf("%w: agent key is required", ErrSchemaViolation)
	}
	if !input.Class.IsValid() {
		return fmt.Errorf("%w: unknown class %q", ErrSchemaViolation, input.Class)
	}
	if len(input.OutputSchema) > maxOutputSchemaKeys {
		return fmt.Errorf("%w: output schema has %d keys, the cap is %d",
			ErrSchemaViolation, len(input.OutputSchema), maxOutputSchemaKeys)
	}
	for _, t := range input.AllowedTools {
		if !config.ToolName(t).IsValid() {
			return fmt.Errorf("%w: unknown tool %q", ErrSchemaViolation, t)
		}
	}
	if input.Interrogative != "" {
		if input.Class != config.AgentClassQuery {
			return fmt.Errorf("%w: interrogative is query-class only", ErrSchemaViolation)
		}
		if !config.Interrogative(input.Interrogative).IsValid() {
			return fmt.Errorf("%w: unknown interrogative %q", ErrSchemaViolation, input.Interrogative)
		}
	}

	if input.DependencyParent == "" {
		return nil
	}
	if input.DependencyParent == input.Key {
		return fmt.Errorf("%w: agent %q cannot depend on itself", ErrBadReference, input.Key)
	}
	parent, err := s.currentRow(ctx, tenantID, input.DependencyParent)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: dependency parent %q does not exist", ErrBadReference, input.DependencyParent)
	}
	if err != nil {
		return fmt.Errorf("failed to load dependency parent: %w", err)
	}
	if parent.Class != agentdefinition.Class(input.Class) {
		return fmt.Errorf("%w: dependency parent %q has class %s, agent has class %s",
			ErrBadReference, input.DependencyParent, parent.Class, input.Class)
	}
	return nil
}

// GetAgent returns the current live definition for a key.
func (s *AgentService) GetAgent(ctx context.Context, tenantID, key string) (*ent.AgentDefinition, error) {
	def, err := s.currentRow(ctx, tenantID, key)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: agent %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	return def, nil
}

// ListAgents returns all current live definitions for a tenant,
// optionally filtered by class, ordered by key.
func (s *AgentService) ListAgents(ctx context.Context, tenantID string, class config.AgentClass) ([]*ent.AgentDefinition, error) {
	query := s.client.AgentDefinition.Query().
		Where(
			agentdefinition.TenantID(tenantID),
			agentdefinition.IsCurrent(true),
			agentdefinition.DeletedAtIsNil(),
		)
	if class != "" {
		query.Where(agentdefinition.ClassEQ(agentdefinition.Class(class)))
	}
	defs, err := query.Order(ent.Asc(agentdefinition.FieldAgentKey)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return defs, nil
}

// DeleteAgent removes a definition. If any live playbook still lists
// the key the delete is soft (tombstoned); otherwise every version of
// the key is removed.
func (s *AgentService) DeleteAgent(ctx context.Context, tenantID, key string) error {
	current, err := s.currentRow(ctx, tenantID, key)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: agent %q", ErrNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("failed to load agent: %w", err)
	}
	if current.IsBuiltin {
		return fmt.Errorf("%w: agent %q", ErrBuiltinImmutable, key)
	}

	referenced, err := agentReferenced(ctx, s.client, tenantID, key)
	if err != nil {
		return err
	}

	if referenced {
		if err := s.client.AgentDefinition.UpdateOne(current).
			SetDeletedAt(nowUTC()).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to tombstone agent: %w", err)
		}
	} else {
		if _, err := s.client.AgentDefinition.Delete().
			Where(
				agentdefinition.TenantID(tenantID),
				agentdefinition.AgentKey(key),
			).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete agent: %w", err)
		}
	}

	if s.onPermissionChange != nil {
		s.onPermissionChange(tenantID, key)
	}
	return nil
}

// AllowedTools serves the tool broker's ACL lookups. An absent,
// deleted, or disabled agent has no permissions.
func (s *AgentService) AllowedTools(ctx context.Context, tenantID, agentKey string) ([]config.ToolName, error) {
	def, err := s.currentRow(ctx, tenantID, agentKey)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load agent permissions: %w", err)
	}
	if !def.Enabled {
		return nil, nil
	}
	tools := make([]config.ToolName, 0, len(def.AllowedTools))
	for _, t := range def.AllowedTools {
		tools = append(tools, config.ToolName(t))
	}
	return tools, nil
}

func (s *AgentService) currentRow(ctx context.Context, tenantID, key string) (*ent.AgentDefinition, error) {
	return s.client.AgentDefinition.Query().
		Where(
			agentdefinition.TenantID(tenantID),
			agentdefinition.AgentKey(key),
			agentdefinition.IsCurrent(true),
			agentdefinition.DeletedAtIsNil(),
		).
		Only(ctx)
}
