package catalog

import (
	"context"
	"fmt"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
)

// PlanService assembles read-only plan snapshots from the current
// catalog. Snapshots are embedded into jobs at start so later catalog
// edits cannot change a running job.
type PlanService struct {
	client    *ent.Client
	playbooks *PlaybookService
	graphs    *GraphService
}

// NewPlanService creates a new PlanService.
func NewPlanService(client *ent.Client, playbooks *PlaybookService, graphs *GraphService) *PlanService {
	if client == nil {
		panic("NewPlanService: client must not be nil")
	}
	if playbooks == nil {
		panic("NewPlanService: playbooks must not be nil")
	}
	if graphs == nil {
		panic("NewPlanService: graphs must not be nil")
	}
	return &PlanService{client: client, playbooks: playbooks, graphs: graphs}
}

// GetPlan resolves the (domain, class) playbook, its graph, and the
// current definitions of its members into a frozen snapshot with
// precomputed execution levels. Disabled agents are dropped together
// with any edge touching them; a missing definition is ErrBadReference.
func (s *PlanService) GetPlan(ctx context.Context, tenantID, domainID string, class config.AgentClass) (*plan.Snapshot, error) {
	pb, err := s.playbooks.GetPlaybook(ctx, tenantID, domainID, class)
	if err != nil {
		return nil, err
	}

	var edges []models.GraphEdge
	graph, err := s.graphs.find(ctx, tenantID, pb.ID)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	if graph != nil {
		edges = graph.GraphEdges
	}

	defs, err := currentAgents(ctx, s.client, tenantID, pb.AgentKeys)
	if err != nil {
		return nil, err
	}

	enabled := make(map[string]bool, len(pb.AgentKeys))
	var specs []plan.AgentSpec
	for _, key := range pb.AgentKeys {
		def, ok := defs[key]
		if !ok {
			return nil, fmt.Errorf("%w: playbook lists agent %q but no definition exists", ErrBadReference, key)
		}
		if !def.Enabled {
			continue
		}
		enabled[key] = true
		specs = append(specs, specFromDefinition(def))
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: every agent in the %s playbook for domain %q is disabled", ErrBadReference, class, domainID)
	}

	var liveEdges []models.GraphEdge
	for _, e := range edges {
		if enabled[e.From] && enabled[e.To] {
			liveEdges = append(liveEdges, e)
		}
	}

	keys := make([]string, 0, len(specs))
	for _, spec := range specs {
		keys = append(keys, spec.Key)
	}
	levels, err := plan.AssignLevels(liveEdges, keys)
	if err != nil {
		return nil, err
	}

	return &plan.Snapshot{
		TenantID:        tenantID,
		DomainID:        domainID,
		Class:           class,
		PlaybookID:      pb.ID,
		PlaybookVersion: pb.Version,
		Agents:          specs,
		Edges:           liveEdges,
		Levels:          levels,
	}, nil
}

func specFromDefinition(def *ent.AgentDefinition) plan.AgentSpec {
	spec := plan.AgentSpec{
		Key:          def.AgentKey,
		Class:        config.AgentClass(def.Class),
		SystemPrompt: def.SystemPrompt,
		AllowedTools: def.AllowedTools,
		OutputSchema: def.OutputSchema,
		Version:      def.Version,
	}
	if def.DependencyParent != nil {
		spec.DependencyParent = *def.DependencyParent
	}
	if def.Interrogative != nil {
		spec.Interrogative = config.Interrogative(*def.Interrogative)
	}
	return spec
}
