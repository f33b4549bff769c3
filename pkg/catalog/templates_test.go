package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
)

func testTemplateSpec() *models.TemplateSpec {
	return &models.TemplateSpec{
		Agents: []models.TemplateAgent{
			{
				Key:          "classifier",
				Class:        string(config.AgentClassIngest),
				SystemPrompt: "Classify the report.",
				AllowedTools: []string{string(config.ToolLLM)},
				OutputSchema: map[string]string{"category": "string"},
			},
			{
				Key:              "scorer",
				Class:            string(config.AgentClassIngest),
				SystemPrompt:     "Score the report.",
				AllowedTools:     []string{string(config.ToolLLM)},
				OutputSchema:     map[string]string{"score": "number"},
				DependencyParent: "classifier",
			},
		},
		Playbooks: []models.TemplatePlaybook{
			{
				Class:     string(config.AgentClassIngest),
				AgentKeys: []string{"classifier", "scorer"},
			},
		},
		Graphs: []models.TemplateGraph{
			{
				Class: string(config.AgentClassIngest),
				Edges: []models.GraphEdge{{From: "classifier", To: "scorer"}},
			},
		},
	}
}

func TestPutTemplate(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	tmpl, err := c.templates.PutTemplate(ctx, "tenant-1", "triage", testTemplateSpec(), "alice")
	require.NoError(t, err)
	assert.False(t, tmpl.IsBuiltin)

	t.Run("templates are immutable", func(t *testing.T) {
		_, err := c.templates.PutTemplate(ctx, "tenant-1", "triage", testTemplateSpec(), "alice")
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("builtin name is reserved", func(t *testing.T) {
		_, err := c.templates.PutTemplate(ctx, "tenant-1", config.BuiltinTemplateName, testTemplateSpec(), "alice")
		assert.ErrorIs(t, err, ErrBuiltinImmutable)
	})

	t.Run("dangling playbook member", func(t *testing.T) {
		spec := testTemplateSpec()
		spec.Playbooks[0].AgentKeys = append(spec.Playbooks[0].AgentKeys, "ghost")
		_, err := c.templates.PutTemplate(ctx, "tenant-1", "broken", spec, "alice")
		assert.ErrorIs(t, err, ErrBadReference)
	})

	t.Run("graph validated against playbook", func(t *testing.T) {
		spec := testTemplateSpec()
		spec.Graphs[0].Edges = []models.GraphEdge{
			{From: "classifier", To: "scorer"},
			{From: "scorer", To: "classifier"},
		}
		_, err := c.templates.PutTemplate(ctx, "tenant-1", "cyclic", spec, "alice")
		assert.Error(t, err)
	})
}

func TestInstantiateTemplate(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	tmpl, err := c.templates.PutTemplate(ctx, "tenant-1", "triage", testTemplateSpec(), "alice")
	require.NoError(t, err)

	result, err := c.templates.InstantiateTemplate(ctx, "tenant-1", tmpl.ID, "flood-watch", "alice")
	require.NoError(t, err)
	require.Len(t, result.AgentKeyMap, 2)
	require.Len(t, result.PlaybookIDs, 1)
	require.Len(t, result.GraphIDs, 1)

	// Fresh keys, rewritten references.
	classifierKey := result.AgentKeyMap["classifier"]
	scorerKey := result.AgentKeyMap["scorer"]
	assert.NotEqual(t, "classifier", classifierKey)

	scorer, err := c.agents.GetAgent(ctx, "tenant-1", scorerKey)
	require.NoError(t, err)
	require.NotNil(t, scorer.DependencyParent)
	assert.Equal(t, classifierKey, *scorer.DependencyParent)

	snap, err := c.plans.GetPlan(ctx, "tenant-1", "flood-watch", config.AgentClassIngest)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{classifierKey}, {scorerKey}}, snap.Levels)

	t.Run("second instantiation in same domain refused", func(t *testing.T) {
		_, err := c.templates.InstantiateTemplate(ctx, "tenant-1", tmpl.ID, "flood-watch", "alice")
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("same template in another domain mints distinct keys", func(t *testing.T) {
		other, err := c.templates.InstantiateTemplate(ctx, "tenant-1", tmpl.ID, "wildfires", "alice")
		require.NoError(t, err)
		assert.NotEqual(t, classifierKey, other.AgentKeyMap["classifier"])
	})

	t.Run("other tenant's template invisible", func(t *testing.T) {
		_, err := c.templates.InstantiateTemplate(ctx, "tenant-2", tmpl.ID, "flood-watch", "bob")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSeedBuiltinAndInstantiate(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	tmpl, err := c.templates.SeedBuiltin(ctx)
	require.NoError(t, err)
	assert.True(t, tmpl.IsBuiltin)

	t.Run("idempotent", func(t *testing.T) {
		again, err := c.templates.SeedBuiltin(ctx)
		require.NoError(t, err)
		assert.Equal(t, tmpl.ID, again.ID)
	})

	result, err := c.templates.InstantiateTemplate(ctx, "tenant-1", tmpl.ID, "flood-watch", "alice")
	require.NoError(t, err)
	assert.Len(t, result.PlaybookIDs, 3)

	// Builtin-derived agents become immutable in the tenant catalog.
	geoKey := result.AgentKeyMap["geo"]
	_, err = c.agents.PutAgent(ctx, "tenant-1", PutAgentInput{
		Key:   geoKey,
		Class: config.AgentClassIngest,
	})
	assert.ErrorIs(t, err, ErrBuiltinImmutable)

	// Every class planned from the builtin resolves.
	for _, class := range []config.AgentClass{config.AgentClassIngest, config.AgentClassQuery, config.AgentClassManagement} {
		snap, err := c.plans.GetPlan(ctx, "tenant-1", "flood-watch", class)
		require.NoError(t, err)
		assert.NotEmpty(t, snap.Levels)
	}

	// Builtin templates are visible to every tenant.
	tmpls, err := c.templates.ListTemplates(ctx, "tenant-2")
	require.NoError(t, err)
	require.Len(t, tmpls, 1)
	assert.Equal(t, config.BuiltinTemplateName, tmpls[0].Name)
}
