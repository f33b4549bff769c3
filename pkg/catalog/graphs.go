package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/dependencygraph"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
)

// PutGraphInput sets the dependency edges for one playbook. Edges are
// expressed over the playbook's agent keys; an empty edge set is valid
// and means one fully parallel level.
type PutGraphInput struct {
	DomainID string
	Class    config.AgentClass
	Edges    []models.GraphEdge
}

// GraphService manages dependency graphs. At most one graph per
// playbook; puts replace.
type GraphService struct {
	client    *ent.Client
	playbooks *PlaybookService
}

// NewGraphService creates a new GraphService.
func NewGraphService(client *ent.Client, playbooks *PlaybookService) *GraphService {
	if client == nil {
		panic("NewGraphService: client must not be nil")
	}
	if playbooks == nil {
		panic("NewGraphService: playbooks must not be nil")
	}
	return &GraphService{client: client, playbooks: playbooks}
}

// PutGraph validates and persists a dependency graph against its
// playbook's member set. Validation errors carry the plan package's
// sentinels (dangling edge, multiple parents, chain too deep, cycle).
func (s *GraphService) PutGraph(ctx context.Context, tenantID string, input PutGraphInput) (*ent.DependencyGraph, error) {
	pb, err := s.playbooks.GetPlaybook(ctx, tenantID, input.DomainID, input.Class)
	if err != nil {
		return nil, err
	}

	if err := plan.ValidateGraph(input.Edges, pb.AgentKeys); err != nil {
		return nil, err
	}

	existing, err := s.find(ctx, tenantID, pb.ID)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	if existing != nil {
		updated, err := s.client.DependencyGraph.UpdateOne(existing).
			SetGraphEdges(input.Edges).
			SetVersion(existing.Version + 1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update graph: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.DependencyGraph.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPlaybookID(pb.ID).
		SetGraphEdges(input.Edges).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph: %w", err)
	}
	return created, nil
}

// GetGraph returns the graph for a (domain, class) playbook, or
// ErrNotFound if the playbook has no graph yet.
func (s *GraphService) GetGraph(ctx context.Context, tenantID, domainID string, class config.AgentClass) (*ent.DependencyGraph, error) {
	pb, err := s.playbooks.GetPlaybook(ctx, tenantID, domainID, class)
	if err != nil {
		return nil, err
	}
	graph, err := s.find(ctx, tenantID, pb.ID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: no graph for %s playbook of domain %q", ErrNotFound, class, domainID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	return graph, nil
}

func (s *GraphService) find(ctx context.Context, tenantID, playbookID string) (*ent.DependencyGraph, error) {
	return s.client.DependencyGraph.Query().
		Where(
			dependencygraph.TenantID(tenantID),
			dependencygraph.PlaybookID(playbookID),
		).
		Only(ctx)
}
