package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
)

func TestGetPlan(t *testing.T) {
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
	_, err = c.graphs.PutGraph(ctx, "tenant-1", PutGraphInput{
		DomainID: "flood-watch",
		Class:    config.AgentClassIngest,
		Edges:    []models.GraphEdge{{From: "entity", To: "severity"}},
	})
	require.NoError(t, err)

	snap, err := c.plans.GetPlan(ctx, "tenant-1", "flood-watch", config.AgentClassIngest)
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", snap.TenantID)
	assert.Equal(t, config.AgentClassIngest, snap.Class)
	assert.Len(t, snap.Agents, 3)
	// Lexicographic inside levels, parent before child across them.
	assert.Equal(t, [][]string{{"entity", "geo"}, {"severity"}}, snap.Levels)

	t.Run("no graph means one level", func(t *testing.T) {
		_, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
			DomainID:  "wildfires",
			Class:     config.AgentClassIngest,
			AgentKeys: []string{"geo", "entity"},
		})
		require.NoError(t, err)

		snap, err := c.plans.GetPlan(ctx, "tenant-1", "wildfires", config.AgentClassIngest)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"entity", "geo"}}, snap.Levels)
	})

	t.Run("disabled agent drops out with its edges", func(t *testing.T) {
		disabled := false
		seedAgent(t, c, "tenant-1", "entity", func(in *PutAgentInput) {
			in.Enabled = &disabled
		})

		snap, err := c.plans.GetPlan(ctx, "tenant-1", "flood-watch", config.AgentClassIngest)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"geo", "severity"}}, snap.Levels)
		assert.Empty(t, snap.Edges)
	})

	t.Run("missing playbook", func(t *testing.T) {
		_, err := c.plans.GetPlan(ctx, "tenant-1", "flood-watch", config.AgentClassQuery)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetPlan_SnapshotIsFrozen(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	seedAgent(t, c, "tenant-1", "geo", func(in *PutAgentInput) {
		in.SystemPrompt = "Original prompt."
	})
	_, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
		DomainID:  "flood-watch",
		Class:     config.AgentClassIngest,
		AgentKeys: []string{"geo"},
	})
	require.NoError(t, err)

	snap, err := c.plans.GetPlan(ctx, "tenant-1", "flood-watch", config.AgentClassIngest)
	require.NoError(t, err)

	seedAgent(t, c, "tenant-1", "geo", func(in *PutAgentInput) {
		in.SystemPrompt = "Edited prompt."
	})

	assert.Equal(t, "Original prompt.", snap.Agents[0].SystemPrompt)
	assert.Equal(t, 1, snap.Agents[0].Version)
}
