package catalog

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/agentdefinition"
	"github.com/siftstack/sift/ent/playbook"
	"github.com/siftstack/sift/pkg/config"
)

// PutPlaybookInput binds a (domain, class) to the agent keys its jobs
// run. One playbook per (tenant, domain, class); puts replace.
type PutPlaybookInput struct {
	DomainID  string
	Class     config.AgentClass
	AgentKeys []string
	CreatedBy string
}

// PlaybookService manages playbooks and their dependency graphs.
type PlaybookService struct {
	client *ent.Client
}

// NewPlaybookService creates a new PlaybookService.
func NewPlaybookService(client *ent.Client) *PlaybookService {
	if client == nil {
		panic("NewPlaybookService: client must not be nil")
	}
	return &PlaybookService{client: client}
}

// PutPlaybook validates and persists a playbook. Every listed key must
// have a live definition of the playbook's class. An existing playbook
// for the same (domain, class) is replaced and its version bumped; the
// prior member set survives inside any running job's plan snapshot.
func (s *PlaybookService) PutPlaybook(ctx context.Context, tenantID string, input PutPlaybookInput) (*ent.Playbook, error) {
	if input.DomainID == "" {
		return nil, fmt.Errorf("%w: domain_id is required", ErrSchemaViolation)
	}
	if !input.Class.IsValid() {
		return nil, fmt.Errorf("%w: unknown class %q", ErrSchemaViolation, input.Class)
	}
	if len(input.AgentKeys) == 0 {
		return nil, fmt.Errorf("%w: playbook needs at least one agent", ErrSchemaViolation)
	}
	seen := make(map[string]bool, len(input.AgentKeys))
	for _, key := range input.AgentKeys {
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate agent %q", ErrSchemaViolation, key)
		}
		seen[key] = true
	}

	defs, err := currentAgents(ctx, s.client, tenantID, input.AgentKeys)
	if err != nil {
		return nil, err
	}
	for _, key := range input.AgentKeys {
		def, ok := defs[key]
		if !ok {
			return nil, fmt.Errorf("%w: agent %q does not exist", ErrBadReference, key)
		}
		if def.Class != agentdefinition.Class(input.Class) {
			return nil, fmt.Errorf("%w: agent %q has class %s, playbook has class %s",
				ErrClassMismatch, key, def.Class, input.Class)
		}
	}

	existing, err := s.find(ctx, tenantID, input.DomainID, input.Class)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load playbook: %w", err)
	}

	if existing != nil {
		updated, err := s.client.Playbook.UpdateOne(existing).
			SetAgentKeys(input.AgentKeys).
			SetVersion(existing.Version + 1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update playbook: %w", err)
		}
		return updated, nil
	}

	builder := s.client.Playbook.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetDomainID(input.DomainID).
		SetClass(playbook.Class(input.Class)).
		SetAgentKeys(input.AgentKeys)
	if input.CreatedBy != "" {
		builder.SetCreatedBy(input.CreatedBy)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create playbook: %w", err)
	}
	return created, nil
}

// GetPlaybook returns the live playbook for a (domain, class).
func (s *PlaybookService) GetPlaybook(ctx context.Context, tenantID, domainID string, class config.AgentClass) (*ent.Playbook, error) {
	pb, err := s.find(ctx, tenantID, domainID, class)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: no %s playbook for domain %q", ErrNotFound, class, domainID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load playbook: %w", err)
	}
	return pb, nil
}

// ListPlaybooks returns all live playbooks for a tenant.
func (s *PlaybookService) ListPlaybooks(ctx context.Context, tenantID string) ([]*ent.Playbook, error) {
	pbs, err := s.client.Playbook.Query().
		Where(
			playbook.TenantID(tenantID),
			playbook.DeletedAtIsNil(),
		).
		Order(ent.Asc(playbook.FieldDomainID), ent.Asc(playbook.FieldClass)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list playbooks: %w", err)
	}
	return pbs, nil
}

// DeletePlaybook tombstones a playbook. Its graph cascades away with a
// hard delete later; running jobs keep their snapshots.
func (s *PlaybookService) DeletePlaybook(ctx context.Context, tenantID, domainID string, class config.AgentClass) error {
	pb, err := s.find(ctx, tenantID, domainID, class)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: no %s playbook for domain %q", ErrNotFound, class, domainID)
	}
	if err != nil {
		return fmt.Errorf("failed to load playbook: %w", err)
	}
	if err := s.client.Playbook.UpdateOne(pb).
		SetDeletedAt(nowUTC()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to tombstone playbook: %w", err)
	}
	return nil
}

func (s *PlaybookService) find(ctx context.Context, tenantID, domainID string, class config.AgentClass) (*ent.Playbook, error) {
	return s.client.Playbook.Query().
		Where(
			playbook.TenantID(tenantID),
			playbook.DomainID(domainID),
			playbook.ClassEQ(playbook.Class(class)),
			playbook.DeletedAtIsNil(),
		).
		Only(ctx)
}

// currentAgents loads the current live definitions for a key set.
func currentAgents(ctx context.Context, client *ent.Client, tenantID string, keys []string) (map[string]*ent.AgentDefinition, error) {
	defs, err := client.AgentDefinition.Query().
		Where(
			agentdefinition.TenantID(tenantID),
			agentdefinition.AgentKeyIn(keys...),
			agentdefinition.IsCurrent(true),
			agentdefinition.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent definitions: %w", err)
	}
	byKey := make(map[string]*ent.AgentDefinition, len(defs))
	for _, def := range defs {
		byKey[def.AgentKey] = def
	}
	return byKey, nil
}

// agentReferenced reports whether any live playbook lists the key.
func agentReferenced(ctx context.Context, client *ent.Client, tenantID, key string) (bool, error) {
	pbs, err := client.Playbook.Query().
		Where(
			playbook.TenantID(tenantID),
			playbook.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to scan playbooks: %w", err)
	}
	for _, pb := range pbs {
		if slices.Contains(pb.AgentKeys, key) {
			return true, nil
		}
	}
	return false, nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
