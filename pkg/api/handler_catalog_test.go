package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agentBody(class string) map[string]any {
	return map[string]any{
		"class":         class,
		"system_prompt": "Extract entities from the report.",
		"allowed_tools": []string{"llm", "entity_nlp"},
		"output_schema": map[string]string{"entities": "list", "summary": "string"},
	}
}

func TestPutAndGetAgent(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPut, "/api/v1/catalog/agents/extract", agentBody("ingest"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	put := decodeJSON[map[string]any](t, w)
	assert.Equal(t, float64(1), put["version"])

	w = f.do(t, http.MethodGet, "/api/v1/catalog/agents/extract", nil)
	require.Equal(t, http.StatusOK, w.Code)
	agent := decodeJSON[AgentResponse](t, w)
	assert.Equal(t, "extract", agent.Key)
	assert.Equal(t, "ingest", agent.Class)
	assert.Equal(t, []string{"llm", "entity_nlp"}, agent.AllowedTools)
	assert.True(t, agent.Enabled)
	assert.False(t, agent.IsBuiltin)

	// Updating bumps the version.
	w = f.do(t, http.MethodPut, "/api/v1/catalog/agents/extract", agentBody("ingest"))
	require.Equal(t, http.StatusOK, w.Code)
	put = decodeJSON[map[string]any](t, w)
	assert.Equal(t, float64(2), put["version"])
}

func TestPutAgentValidation(t *testing.T) {
	f := setupAPI(t)

	tests := []struct {
		name     string
		mutate   func(map[string]any)
		wantCode string
	}{
		{"unknown class", func(b map[string]any) { b["class"] = "triage" }, "SchemaViolation"},
		{"unknown tool", func(b map[string]any) { b["allowed_tools"] = []string{"rm_rf"} }, "SchemaViolation"},
		{"schema over cap", func(b map[string]any) {
			b["output_schema"] = map[string]string{
				"a": "string", "b": "string", "c": "string",
				"d": "string", "e": "string", "f": "string",
			}
		}, "SchemaViolation"},
		{"interrogative on ingest", func(b map[string]any) { b["interrogative"] = "where" }, "SchemaViolation"},
		{"missing parent", func(b map[string]any) { b["dependency_parent"] = "ghost" }, "BadReference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := agentBody("ingest")
			tt.mutate(body)
			w := f.do(t, http.MethodPut, "/api/v1/catalog/agents/extract", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeJSON[ErrorResponse](t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestListAgentsByClass(t *testing.T) {
	f := setupAPI(t)

	for _, put := range []struct{ key, class string }{
		{"extract", "ingest"},
		{"assess", "ingest"},
		{"locate", "query"},
	} {
		w := f.do(t, http.MethodPut, "/api/v1/catalog/agents/"+put.key, agentBody(put.class))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := f.do(t, http.MethodGet, "/api/v1/catalog/agents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeJSON[map[string][]AgentResponse](t, w)
	assert.Len(t, all["agents"], 3)

	w = f.do(t, http.MethodGet, "/api/v1/catalog/agents?class=query", nil)
	require.Equal(t, http.StatusOK, w.Code)
	queryOnly := decodeJSON[map[string][]AgentResponse](t, w)
	require.Len(t, queryOnly["agents"], 1)
	assert.Equal(t, "locate", queryOnly["agents"][0].Key)

	w = f.do(t, http.MethodGet, "/api/v1/catalog/agents?class=triage", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAgent(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPut, "/api/v1/catalog/agents/extract", agentBody("ingest"))
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/catalog/agents/extract", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/catalog/agents/extract", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/catalog/agents/extract", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutPlaybookAndGraph(t *testing.T) {
	f := setupAPI(t)

	for _, key := range []string{"extract", "assess"} {
		w := f.do(t, http.MethodPut, "/api/v1/catalog/agents/"+key, agentBody("ingest"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := f.do(t, http.MethodPut, "/api/v1/catalog/playbooks/flood-watch/ingest", map[string]any{
		"agent_keys": []string{"extract", "assess"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	pb := decodeJSON[PlaybookResponse](t, w)
	assert.Equal(t, "flood-watch", pb.DomainID)
	assert.Equal(t, []string{"extract", "assess"}, pb.AgentKeys)

	// Unknown agent key in the playbook.
	w = f.do(t, http.MethodPut, "/api/v1/catalog/playbooks/flood-watch/ingest", map[string]any{
		"agent_keys": []string{"extract", "ghost"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, "BadReference", resp.Code)

	w = f.do(t, http.MethodPut, "/api/v1/catalog/graphs/flood-watch/ingest", map[string]any{
		"edges": []map[string]string{{"from": "extract", "to": "assess"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	graph := decodeJSON[GraphResponse](t, w)
	require.Len(t, graph.Edges, 1)
	assert.Equal(t, "extract", graph.Edges[0].From)

	// An edge naming an agent outside the playbook is dangling.
	w = f.do(t, http.MethodPut, "/api/v1/catalog/graphs/flood-watch/ingest", map[string]any{
		"edges": []map[string]string{{"from": "extract", "to": "ghost"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp = decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, "DanglingEdge", resp.Code)
}

func TestGetPlan(t *testing.T) {
	f := setupAPI(t)

	for _, key := range []string{"extract", "assess"} {
		w := f.do(t, http.MethodPut, "/api/v1/catalog/agents/"+key, agentBody("ingest"))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := f.do(t, http.MethodPut, "/api/v1/catalog/playbooks/flood-watch/ingest", map[string]any{
		"agent_keys": []string{"extract", "assess"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodPut, "/api/v1/catalog/graphs/flood-watch/ingest", map[string]any{
		"edges": []map[string]string{{"from": "extract", "to": "assess"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/catalog/plans/flood-watch/ingest", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	snap := decodeJSON[struct {
		PlaybookID string     `json:"playbook_id"`
		Levels     [][]string `json:"levels"`
	}](t, w)
	assert.NotEmpty(t, snap.PlaybookID)
	assert.Equal(t, [][]string{{"extract"}, {"assess"}}, snap.Levels)

	// No playbook for this domain.
	w = f.do(t, http.MethodGet, "/api/v1/catalog/plans/unknown/ingest", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTemplateLifecycle(t *testing.T) {
	f := setupAPI(t)

	spec := map[string]any{
		"agents": []map[string]any{
			{
				"key":           "extract",
				"class":         "ingest",
				"system_prompt": "Extract entities.",
				"allowed_tools": []string{"llm"},
				"output_schema": map[string]string{"entities": "list"},
			},
		},
		"playbooks": []map[string]any{
			{"class": "ingest", "agent_keys": []string{"extract"}},
		},
		"graphs": []map[string]any{},
	}

	w := f.do(t, http.MethodPost, "/api/v1/catalog/templates", map[string]any{
		"name": "incident-basic",
		"spec": spec,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeJSON[TemplateResponse](t, w)
	require.NotEmpty(t, created.TemplateID)
	assert.Equal(t, "incident-basic", created.Name)

	w = f.do(t, http.MethodGet, "/api/v1/catalog/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeJSON[map[string][]TemplateResponse](t, w)
	require.Len(t, list["templates"], 1)

	w = f.do(t, http.MethodGet, "/api/v1/catalog/templates/"+created.TemplateID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJSON[TemplateResponse](t, w)
	require.NotNil(t, got.Spec)
	assert.Len(t, got.Spec.Agents, 1)

	w = f.do(t, http.MethodPost, "/api/v1/catalog/templates/"+created.TemplateID+"/instantiate",
		map[string]any{"domain_id": "flood-watch"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The instantiated playbook is live.
	w = f.do(t, http.MethodGet, "/api/v1/catalog/playbooks/flood-watch/ingest", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogTenantIsolation(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPut, "/api/v1/catalog/agents/extract", agentBody("ingest"))
	require.Equal(t, http.StatusOK, w.Code)

	w = f.doAs(t, "tenant-2", "bob", http.MethodGet, "/api/v1/catalog/agents/extract", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.doAs(t, "tenant-2", "bob", http.MethodGet, "/api/v1/catalog/agents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeJSON[map[string][]AgentResponse](t, w)
	assert.Empty(t, list["agents"])
}
