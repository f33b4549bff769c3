package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
)

func TestPutPlaybook(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	seedAgent(t, c, "tenant-1", "geo")
	seedAgent(t, c, "tenant-1", "entity")

	pb, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
		DomainID:  "flood-watch",
		Class:     config.AgentClassIngest,
		AgentKeys: []string{"geo", "entity"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pb.Version)

	t.Run("replace bumps version", func(t *testing.T) {
		pb, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
			DomainID:  "flood-watch",
			Class:     config.AgentClassIngest,
			AgentKeys: []string{"geo"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, pb.Version)
		assert.Equal(t, []string{"geo"}, pb.AgentKeys)
	})

	t.Run("absent agent", func(t *testing.T) {
		_, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
			DomainID:  "flood-watch",
			Class:     config.AgentClassIngest,
			AgentKeys: []string{"geo", "ghost"},
		})
		assert.ErrorIs(t, err, ErrBadReference)
	})

	t.Run("class mismatch", func(t *testing.T) {
		seedAgent(t, c, "tenant-1", "what", func(in *PutAgentInput) {
			in.Class = config.AgentClassQuery
			in.Interrogative = "what"
		})
		_, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
			DomainID:  "flood-watch",
			Class:     config.AgentClassIngest,
			AgentKeys: []string{"geo", "what"},
		})
		assert.ErrorIs(t, err, ErrClassMismatch)
	})

	t.Run("duplicate member", func(t *testing.T) {
		_, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
			DomainID:  "flood-watch",
			Class:     config.AgentClassIngest,
			AgentKeys: []string{"geo", "geo"},
		})
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("other tenant's agents are invisible", func(t *testing.T) {
		_, err := c.playbooks.PutPlaybook(ctx, "tenant-2", PutPlaybookInput{
			DomainID:  "flood-watch",
			Class:     config.AgentClassIngest,
			AgentKeys: []string{"geo"},
		})
		assert.ErrorIs(t, err, ErrBadReference)
	})
}

func TestPutGraph(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	seedAgent(t, c, "tenant-1", "entity")
	seedAgent(t, c, "tenant-1", "severity", func(in *PutAgentInput) {
		in.DependencyParent = "entity"
	})
	seedAgent(t, c, "tenant-1", "geo")
	_, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
		DomainID:  "flood-watch",
		Class:     config.AgentClassIngest,
		AgentKeys: []string{"entity", "severity", "geo"},
	})
	require.NoError(t, err)

	graph, err := c.graphs.PutGraph(ctx, "tenant-1", PutGraphInput{
		DomainID: "flood-watch",
		Class:    config.AgentClassIngest,
		Edges:    []models.GraphEdge{{From: "entity", To: "severity"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, graph.Version)

	t.Run("replace bumps version", func(t *testing.T) {
		graph, err := c.graphs.PutGraph(ctx, "tenant-1", PutGraphInput{
			DomainID: "flood-watch",
			Class:    config.AgentClassIngest,
			Edges:    nil,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, graph.Version)
		assert.Empty(t, graph.GraphEdges)
	})

	t.Run("dangling edge", func(t *testing.T) {
		_, err := c.graphs.PutGraph(ctx, "tenant-1", PutGraphInput{
			DomainID: "flood-watch",
			Class:    config.AgentClassIngest,
			Edges:    []models.GraphEdge{{From: "ghost", To: "severity"}},
		})
		assert.ErrorIs(t, err, plan.ErrDanglingEdge)
	})

	t.Run("multiple parents", func(t *testing.T) {
		_, err := c.graphs.PutGraph(ctx, "tenant-1", PutGraphInput{
			DomainID: "flood-watch",
			Class:    config.AgentClassIngest,
			Edges: []models.GraphEdge{
				{From: "entity", To: "severity"},
				{From: "geo", To: "severity"},
			},
		})
		assert.ErrorIs(t, err, plan.ErrMultiParent)
	})

	t.Run("chain too deep", func(t *testing.T) {
		_, err := c.graphs.PutGraph(ctx, "tenant-1", PutGraphInput{
			DomainID: "flood-watch",
			Class:    config.AgentClassIngest,
			Edges: []models.GraphEdge{
				{From: "entity", To: "severity"},
				{From: "severity", To: "geo"},
			},
		})
		assert.ErrorIs(t, err, plan.ErrMultiLevel)
	})

	t.Run("no playbook", func(t *testing.T) {
		_, err := c.graphs.PutGraph(ctx, "tenant-1", PutGraphInput{
			DomainID: "wildfires",
			Class:    config.AgentClassIngest,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
