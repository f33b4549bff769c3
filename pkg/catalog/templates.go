package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/agentdefinition"
	"github.com/siftstack/sift/ent/domaintemplate"
	"github.com/siftstack/sift/ent/playbook"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
)

// TemplateService manages domain templates. Templates are immutable
// once created; instantiation copies their content into a tenant's
// catalog under fresh agent keys.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(client *ent.Client) *TemplateService {
	if client == nil {
		panic("NewTemplateService: client must not be nil")
	}
	return &TemplateService{client: client}
}

// PutTemplate validates and persists a tenant-owned template. Names
// are unique per tenant and collide with builtin names.
func (s *TemplateService) PutTemplate(ctx context.Context, tenantID, name string, spec *models.TemplateSpec, createdBy string) (*ent.DomainTemplate, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: template name is required", ErrSchemaViolation)
	}
	if name == config.BuiltinTemplateName {
		return nil, fmt.Errorf("%w: template %q", ErrBuiltinImmutable, name)
	}
	if err := validateTemplateSpec(spec); err != nil {
		return nil, err
	}

	exists, err := s.client.DomainTemplate.Query().
		Where(domaintemplate.TenantID(tenantID), domaintemplate.Name(name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check template name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: template %q already exists and templates are immutable", ErrSchemaViolation, name)
	}

	builder := s.client.DomainTemplate.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(name).
		SetSpec(spec)
	if createdBy != "" {
		builder.SetCreatedBy(createdBy)
	}
	tmpl, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tmpl, nil
}

// GetTemplate returns a template visible to the tenant: its own or a
// builtin.
func (s *TemplateService) GetTemplate(ctx context.Context, tenantID, templateID string) (*ent.DomainTemplate, error) {
	tmpl, err := s.client.DomainTemplate.Query().
		Where(
			domaintemplate.ID(templateID),
			domaintemplate.Or(
				domaintemplate.TenantID(tenantID),
				domaintemplate.IsBuiltin(true),
			),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: template %q", ErrNotFound, templateID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return tmpl, nil
}

// ListTemplates returns the templates visible to a tenant.
func (s *TemplateService) ListTemplates(ctx context.Context, tenantID string) ([]*ent.DomainTemplate, error) {
	tmpls, err := s.client.DomainTemplate.Query().
		Where(
			domaintemplate.Or(
				domaintemplate.TenantID(tenantID),
				domaintemplate.IsBuiltin(true),
			),
		).
		Order(ent.Asc(domaintemplate.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return tmpls, nil
}

// InstantiateTemplate copies a template into the tenant's catalog for
// one domain. Fresh agent keys are minted and every symbolic reference
// (dependency parents, playbook members, graph edges) is rewritten
// before anything becomes visible; the whole copy is one transaction.
func (s *TemplateService) InstantiateTemplate(ctx context.Context, tenantID, templateID, domainID, createdBy string) (*models.InstantiationResult, error) {
	if domainID == "" {
		return nil, fmt.Errorf("%w: domain_id is required", ErrSchemaViolation)
	}
	tmpl, err := s.GetTemplate(ctx, tenantID, templateID)
	if err != nil {
		return nil, err
	}
	spec := tmpl.Spec

	for _, tp := range spec.Playbooks {
		taken, err := s.client.Playbook.Query().
			Where(
				playbook.TenantID(tenantID),
				playbook.DomainID(domainID),
				playbook.ClassEQ(playbook.Class(tp.Class)),
				playbook.DeletedAtIsNil(),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check playbook slot: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("%w: domain %q already has a %s playbook", ErrSchemaViolation, domainID, tp.Class)
		}
	}

	keyMap := make(map[string]string, len(spec.Agents))
	for _, agent := range spec.Agents {
		keyMap[agent.Key] = freshAgentKey(agent.Key)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}
	defer tx.Rollback()

	for _, agent := range spec.Agents {
		builder := tx.AgentDefinition.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetAgentKey(keyMap[agent.Key]).
			SetClass(agentdefinition.Class(agent.Class)).
			SetSystemPrompt(agent.SystemPrompt).
			SetAllowedTools(agent.AllowedTools).
			SetOutputSchema(agent.OutputSchema).
			SetIsBuiltin(tmpl.IsBuiltin)
		if agent.DependencyParent != "" {
			builder.SetDependencyParent(keyMap[agent.DependencyParent])
		}
		if agent.Interrogative != "" {
			builder.SetInterrogative(agent.Interrogative)
		}
		if createdBy != "" {
			builder.SetCreatedBy(createdBy)
		}
		if _, err := builder.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create agent %q: %w", keyMap[agent.Key], err)
		}
	}

	result := &models.InstantiationResult{AgentKeyMap: keyMap}
	playbookIDs := make(map[string]string, len(spec.Playbooks))
	for _, tp := range spec.Playbooks {
		keys := make([]string, 0, len(tp.AgentKeys))
		for _, symbolic := range tp.AgentKeys {
			keys = append(keys, keyMap[symbolic])
		}
		pb, err := tx.Playbook.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetDomainID(domainID).
			SetClass(playbook.Class(tp.Class)).
			SetAgentKeys(keys).
			SetCreatedBy(createdBy).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s playbook: %w", tp.Class, err)
		}
		playbookIDs[tp.Class] = pb.ID
		result.PlaybookIDs = append(result.PlaybookIDs, pb.ID)
	}

	for _, tg := range spec.Graphs {
		pbID, ok := playbookIDs[tg.Class]
		if !ok {
			return nil, fmt.Errorf("%w: graph for class %s has no playbook in the template", ErrBadReference, tg.Class)
		}
		edges := make([]models.GraphEdge, 0, len(tg.Edges))
		for _, e := range tg.Edges {
			edges = append(edges, models.GraphEdge{From: keyMap[e.From], To: keyMap[e.To]})
		}
		graph, err := tx.DependencyGraph.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenantID).
			SetPlaybookID(pbID).
			SetGraphEdges(edges).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s graph: %w", tg.Class, err)
		}
		result.GraphIDs = append(result.GraphIDs, graph.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit instantiation: %w", err)
	}
	return result, nil
}

// SeedBuiltin ensures the builtin template row exists. Idempotent;
// called once at startup.
func (s *TemplateService) SeedBuiltin(ctx context.Context) (*ent.DomainTemplate, error) {
	existing, err := s.client.DomainTemplate.Query().
		Where(
			domaintemplate.Name(config.BuiltinTemplateName),
			domaintemplate.IsBuiltin(true),
		).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check builtin template: %w", err)
	}

	tmpl, err := s.client.DomainTemplate.Create().
		SetID(uuid.New().String()).
		SetName(config.BuiltinTemplateName).
		SetSpec(config.GetBuiltinTemplate()).
		SetIsBuiltin(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed builtin template: %w", err)
	}
	return tmpl, nil
}

// freshAgentKey derives a per-instantiation key from a symbolic one so
// repeated instantiations in the same tenant never collide.
func freshAgentKey(symbolic string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return symbolic + "-" + suffix
}

// validateTemplateSpec checks a template bundle the same way the
// catalog checks live writes, with references resolved inside the
// bundle instead of the database.
func validateTemplateSpec(spec *models.TemplateSpec) error {
	if spec == nil || len(spec.Agents) == 0 {
		return fmt.Errorf("%w: template has no agents", ErrSchemaViolation)
	}

	classByKey := make(map[string]string, len(spec.Agents))
	for _, agent := range spec.Agents {
		if agent.Key == "" {
			return fmt.Errorf("%w: agent key is required", ErrSchemaViolation)
		}
		if _, dup := classByKey[agent.Key]; dup {
			return fmt.Errorf("%w: duplicate agent %q", ErrSchemaViolation, agent.Key)
		}
		if !config.AgentClass(agent.Class).IsValid() {
			return fmt.Errorf("%w: agent %q has unknown class %q", ErrSchemaViolation, agent.Key, agent.Class)
		}
		if len(agent.OutputSchema) > maxOutputSchemaKeys {
			return fmt.Errorf("%w: agent %q output schema has %d keys, the cap is %d",
				ErrSchemaViolation, agent.Key, len(agent.OutputSchema), maxOutputSchemaKeys)
		}
		for _, t := range agent.AllowedTools {
			if !config.ToolName(t).IsValid() {
				return fmt.Errorf("%w: agent %q lists unknown tool %q", ErrSchemaViolation, agent.Key, t)
			}
		}
		if agent.Interrogative != "" {
			if config.AgentClass(agent.Class) != config.AgentClassQuery {
				return fmt.Errorf("%w: agent %q: interrogative is query-class only", ErrSchemaViolation, agent.Key)
			}
			if !config.Interrogative(agent.Interrogative).IsValid() {
				return fmt.Errorf("%w: agent %q has unknown interrogative %q", ErrSchemaViolation, agent.Key, agent.Interrogative)
			}
		}
		classByKey[agent.Key] = agent.Class
	}

	for _, agent := range spec.Agents {
		if agent.DependencyParent == "" {
			continue
		}
		parentClass, ok := classByKey[agent.DependencyParent]
		if !ok {
			return fmt.Errorf("%w: agent %q depends on absent %q", ErrBadReference, agent.Key, agent.DependencyParent)
		}
		if parentClass != agent.Class {
			return fmt.Errorf("%w: agent %q depends on %q of class %s", ErrBadReference, agent.Key, agent.DependencyParent, parentClass)
		}
	}

	keysByClass := make(map[string][]string, len(spec.Playbooks))
	for _, tp := range spec.Playbooks {
		if !config.AgentClass(tp.Class).IsValid() {
			return fmt.Errorf("%w: playbook has unknown class %q", ErrSchemaViolation, tp.Class)
		}
		if _, dup := keysByClass[tp.Class]; dup {
			return fmt.Errorf("%w: duplicate %s playbook", ErrSchemaViolation, tp.Class)
		}
		seen := make(map[string]bool, len(tp.AgentKeys))
		for _, key := range tp.AgentKeys {
			if seen[key] {
				return fmt.Errorf("%w: %s playbook lists %q twice", ErrSchemaViolation, tp.Class, key)
			}
			seen[key] = true
			class, ok := classByKey[key]
			if !ok {
				return fmt.Errorf("%w: %s playbook lists absent agent %q", ErrBadReference, tp.Class, key)
			}
			if class != tp.Class {
				return fmt.Errorf("%w: %s playbook lists %s agent %q", ErrClassMismatch, tp.Class, class, key)
			}
		}
		keysByClass[tp.Class] = tp.AgentKeys
	}

	for _, tg := range spec.Graphs {
		keys, ok := keysByClass[tg.Class]
		if !ok {
			return fmt.Errorf("%w: graph for class %s has no playbook", ErrBadReference, tg.Class)
		}
		if err := plan.ValidateGraph(tg.Edges, keys); err != nil {
			return err
		}
	}
	return nil
}
