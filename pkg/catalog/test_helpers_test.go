package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/pkg/config"
	testdb "github.com/siftstack/sift/test/database"
)

type testCatalog struct {
	client    *ent.Client
	agents    *AgentService
	playbooks *PlaybookService
	graphs    *GraphService
	plans     *PlanService
	templates *TemplateService
}

func setupTestCatalog(t *testing.T) *testCatalog {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	agents := NewAgentService(client)
	playbooks := NewPlaybookService(client)
	graphs := NewGraphService(client, playbooks)
	return &testCatalog{
		client:    client,
		agents:    agents,
		playbooks: playbooks,
		graphs:    graphs,
		plans:     NewPlanService(client, playbooks, graphs),
		templates: NewTemplateService(client),
	}
}

// seedAgent creates a minimal ingest-class definition.
func seedAgent(t *testing.T, c *testCatalog, tenantID, key string, mutate ...func(*PutAgentInput)) int {
	t.Helper()
	input := PutAgentInput{
		Key:          key,
		Class:        config.AgentClassIngest,
		SystemPrompt: "You extract " + key + " facts.",
		AllowedTools: []string{string(config.ToolLLM)},
		OutputSchema: map[string]string{"value": "string", "confidence": "number"},
	}
	for _, m := range mutate {
		m(&input)
	}
	version, err := c.agents.PutAgent(context.Background(), tenantID, input)
	require.NoError(t, err)
	return version
}
