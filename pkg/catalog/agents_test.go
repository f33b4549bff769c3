package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/ent/agentdefinition"
	"github.com/siftstack/sift/pkg/config"
)

func TestPutAgent_CreateAndVersion(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	version := seedAgent(t, c, "tenant-1", "geo")
	assert.Equal(t, 1, version)

	version, err := c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
		Key:          "geo",
		Class:        config.AgentClassIngest,
		SystemPrompt: "Updated prompt.",
		AllowedTools: []string{string(config.ToolLLM), string(config.ToolGeocode)},
		OutputSchema: map[string]string{"location": "string"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	// The prior row survives as a non-current backup.
	rows, err := c.client.AgentDefinition.Query().
		Where(agentdefinition.TenantID("tenant-1"), agentdefinition.AgentKey("geo")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	current, err := c.agents.GetAgent(ctx, "tenant-1", "geo")
	require.NoError(t, err)
	assert.Equal(t, 2, current.Version)
	assert.Equal(t, "Updated prompt.", current.SystemPrompt)
}

func TestPutAgent_SchemaViolations(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	t.Run("output schema over cap", func(t *testing.T) {
		_, err := c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
			Key:   "big",
			Class: config.AgentClassIngest,
			OutputSchema: map[string]string{
				"a": "string", "b": "string", "c": "string",
				"d": "string", "e": "string", "f": "string",
			},
		})
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
			Key:          "bad-tool",
			Class:        config.AgentClassIngest,
			AllowedTools: []string{"shell"},
		})
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("interrogative on ingest agent", func(t *testing.T) {
		_, err := c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
			Key:           "bad-axis",
			Class:         config.AgentClassIngest,
			Interrogative: "where",
		})
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})
}

func TestPutAgent_DependencyParent(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	seedAgent(t, c, "tenant-1", "entity")

	t.Run("valid parent", func(t *testing.T) {
		_, err := c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
			Key:              "severity",
			Class:            config.AgentClassIngest,
			DependencyParent: "entity",
		})
		assert.NoError(t, err)
	})

	t.Run("absent parent", func(t *testing.T) {
		_, err := c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
			Key:              "orphan",
			Class:            config.AgentClassIngest,
			DependencyParent: "nope",
		})
		assert.ErrorIs(t, err, ErrBadReference)
	})

	t.Run("parent of another class", func(t *testing.T) {
		_, err := c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
			Key:              "cross",
			Class:            config.AgentClassQuery,
			DependencyParent: "entity",
		})
		assert.ErrorIs(t, err, ErrBadReference)
	})

	t.Run("self parent", func(t *testing.T) {
		_, err := c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
			Key:              "loop",
			Class:            config.AgentClassIngest,
			DependencyParent: "loop",
		})
		assert.ErrorIs(t, err, ErrBadReference)
	})

	t.Run("parent in another tenant is invisible", func(t *testing.T) {
		_, err := c.agents.PutAgent(ctx, "tenant-2", PutAgentInput{
			Key:              "severity",
			Class:            config.AgentClassIngest,
			DependencyParent: "entity",
		})
		assert.ErrorIs(t, err, ErrBadReference)
	})
}

func TestPutAgent_BuiltinImmutable(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	_, err := c.client.AgentDefinition.Create().
		SetID("builtin-1").
		SetTenantID("tenant-1").
		SetAgentKey("geo").
		SetClass(agentdefinition.ClassIngest).
		SetSystemPrompt("builtin").
		SetAllowedTools([]string{string(config.ToolLLM)}).
		SetOutputSchema(map[string]string{"location": "string"}).
		SetIsBuiltin(true).
		Save(ctx)
	require.NoError(t, err)

	_, err = c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
		Key:   "geo",
		Class: config.AgentClassIngest,
	})
	assert.ErrorIs(t, err, ErrBuiltinImmutable)

	err = c.agents.DeleteAgent(ctx, "tenant-1", "geo")
	assert.ErrorIs(t, err, ErrBuiltinImmutable)
}

func TestDeleteAgent_SoftWhenReferenced(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	seedAgent(t, c, "tenant-1", "geo")
	_, err := c.playbooks.PutPlaybook(ctx, "tenant-1", PutPlaybookInput{
		DomainID:  "flood-watch",
		Class:     config.AgentClassIngest,
		AgentKeys: []string{"geo"},
	})
	require.NoError(t, err)

	require.NoError(t, c.agents.DeleteAgent(ctx, "tenant-1", "geo"))

	// Tombstoned, not gone.
	_, err = c.agents.GetAgent(ctx, "tenant-1", "geo")
	assert.ErrorIs(t, err, ErrNotFound)
	count, err := c.client.AgentDefinition.Query().
		Where(agentdefinition.TenantID("tenant-1"), agentdefinition.AgentKey("geo")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDeleteAgent_HardWhenUnreferenced(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	seedAgent(t, c, "tenant-1", "geo")
	seedAgent(t, c, "tenant-1", "geo") // version 2, keeps a backup row

	require.NoError(t, c.agents.DeleteAgent(ctx, "tenant-1", "geo"))

	count, err := c.client.AgentDefinition.Query().
		Where(agentdefinition.TenantID("tenant-1"), agentdefinition.AgentKey("geo")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAllowedTools(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	seedAgent(t, c, "tenant-1", "geo", func(in *PutAgentInput) {
		in.AllowedTools = []string{string(config.ToolLLM), string(config.ToolGeocode)}
	})

	tools, err := c.agents.AllowedTools(ctx, "tenant-1", "geo")
	require.NoError(t, err)
	assert.ElementsMatch(t, []config.ToolName{config.ToolLLM, config.ToolGeocode}, tools)

	t.Run("absent agent has no permissions", func(t *testing.T) {
		tools, err := c.agents.AllowedTools(ctx, "tenant-1", "ghost")
		require.NoError(t, err)
		assert.Empty(t, tools)
	})

	t.Run("disabled agent has no permissions", func(t *testing.T) {
		disabled := false
		seedAgent(t, c, "tenant-1", "geo", func(in *PutAgentInput) {
			in.Enabled = &disabled
		})
		tools, err := c.agents.AllowedTools(ctx, "tenant-1", "geo")
		require.NoError(t, err)
		assert.Empty(t, tools)
	})
}

func TestPutAgent_FiresPermissionChangeHook(t *testing.T) {
	c := setupTestCatalog(t)

	var invalidated []string
	c.agents.OnPermissionChange(func(tenantID, agentKey string) {
		invalidated = append(invalidated, tenantID+"/"+agentKey)
	})

	seedAgent(t, c, "tenant-1", "geo")
	assert.Equal(t, []string{"tenant-1/geo"}, invalidated)
}

func TestListAgents_FiltersByClass(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	seedAgent(t, c, "tenant-1", "geo")
	seedAgent(t, c, "tenant-1", "what", func(in *PutAgentInput) {
		in.Class = config.AgentClassQuery
		in.Interrogative = "what"
	})
	seedAgent(t, c, "tenant-2", "geo")

	all, err := c.agents.ListAgents(ctx, "tenant-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	queries, err := c.agents.ListAgents(ctx, "tenant-1", config.AgentClassQuery)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "what", queries[0].AgentKey)
}
