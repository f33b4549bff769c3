package synthesis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/agent"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
	"github.com/siftstack/sift/pkg/tool"
)

type stubCompleter struct {
	response string
	err      error
	lastReq  tool.CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req tool.CompletionRequest) (string, error) {
	s.lastReq = req
	return s.response, s.err
}

func queryPlan(keys ...config.Interrogative) *plan.ExecutionPlan {
	level := plan.Level{Index: 0}
	for _, q := range keys {
		level.Agents = append(level.Agents, plan.ScheduledAgent{
			AgentKey: string(q),
			Spec: plan.AgentSpec{
				Key:           string(q),
				Class:         config.AgentClassQuery,
				Interrogative: q,
			},
		})
	}
	return &plan.ExecutionPlan{Levels: []plan.Level{level}}
}

func TestSynthesize_Ingest(t *testing.T) {
	s := NewSynthesizer(nil, config.DefaultLLMConfig())

	artifact, err := s.Synthesize(context.Background(), config.AgentClassIngest, nil, []agent.Outcome{
		{AgentKey: "geo", Status: agent.StatusOK, Output: map[string]any{"location": "London", "confidence": 0.9}},
		{AgentKey: "entity", Status: agent.StatusError, ErrorCode: "ParseError", ErrorMessage: "no JSON object"},
	})
	require.NoError(t, err)

	assert.Equal(t, "London", artifact.Fields["location"])
	assert.Equal(t, "ok", artifact.AgentStatuses["geo"].Status)
	assert.Equal(t, "error", artifact.AgentStatuses["entity"].Status)
	assert.Equal(t, "no JSON object", artifact.AgentStatuses["entity"].Error)
	assert.Empty(t, artifact.Bullets)
}

func TestSynthesize_AllAgentsFailed(t *testing.T) {
	s := NewSynthesizer(nil, config.DefaultLLMConfig())

	_, err := s.Synthesize(context.Background(), config.AgentClassIngest, nil, []agent.Outcome{
		{AgentKey: "geo", Status: agent.StatusError},
		{AgentKey: "entity", Status: agent.StatusTimeout},
	})
	assert.ErrorIs(t, err, ErrNoViableAgents)
}

func TestSynthesize_Query(t *testing.T) {
	llm := &stubCompleter{response: "Flooding is concentrated in two districts. Severity is rising."}
	s := NewSynthesizer(llm, config.DefaultLLMConfig())
	eplan := queryPlan(config.InterrogativeWhere, config.InterrogativeWhat, config.InterrogativeHowMany)

	artifact, err := s.Synthesize(context.Background(), config.AgentClassQuery, eplan, []agent.Outcome{
		{AgentKey: "how_many", Status: agent.StatusOK, Output: map[string]any{"insight": "12 reports this week"}},
		{AgentKey: "where", Status: agent.StatusOK, Output: map[string]any{"insight": "Mostly riverside districts"}},
		{AgentKey: "what", Status: agent.StatusError, ErrorCode: "AgentTimeout"},
	})
	require.NoError(t, err)

	// Canonical order: What, Where, ..., HowMany. Failed agents still
	// hold their slot with "no data".
	require.Len(t, artifact.Bullets, 3)
	assert.Equal(t, "What: no data", artifact.Bullets[0].Text)
	assert.Equal(t, "Where: Mostly riverside districts", artifact.Bullets[1].Text)
	assert.Equal(t, "How many: 12 reports this week", artifact.Bullets[2].Text)

	assert.Equal(t, "Flooding is concentrated in two districts. Severity is rising.", artifact.Summary)
	assert.Contains(t, llm.lastReq.User, "- Mostly riverside districts")
}

func TestSynthesize_QueryRefusedWhenAllEmpty(t *testing.T) {
	s := NewSynthesizer(&stubCompleter{}, config.DefaultLLMConfig())
	eplan := queryPlan(config.InterrogativeWhat, config.InterrogativeWhere)

	_, err := s.Synthesize(context.Background(), config.AgentClassQuery, eplan, []agent.Outcome{
		{AgentKey: "what", Status: agent.StatusOK, Output: map[string]any{"insight": "no data"}},
		{AgentKey: "where", Status: agent.StatusError},
	})
	assert.ErrorIs(t, err, ErrSynthesisRefused)
}

func TestSynthesize_SummaryFailureKeepsBullets(t *testing.T) {
	llm := &stubCompleter{err: errors.New("provider unavailable")}
	s := NewSynthesizer(llm, config.DefaultLLMConfig())
	eplan := queryPlan(config.InterrogativeWhat)

	artifact, err := s.Synthesize(context.Background(), config.AgentClassQuery, eplan, []agent.Outcome{
		{AgentKey: "what", Status: agent.StatusOK, Output: map[string]any{"insight": "Flood reports dominate"}},
	})
	require.NoError(t, err)
	assert.Empty(t, artifact.Summary)
	require.Len(t, artifact.Bullets, 1)
}

func TestSynthesize_SummaryUsesSummaryModel(t *testing.T) {
	llm := &stubCompleter{response: "Summary."}
	cfg := config.DefaultLLMConfig()
	cfg.SummaryModel = "gpt-4o"
	s := NewSynthesizer(llm, cfg)
	eplan := queryPlan(config.InterrogativeWhat)

	_, err := s.Synthesize(context.Background(), config.AgentClassQuery, eplan, []agent.Outcome{
		{AgentKey: "what", Status: agent.StatusOK, Output: map[string]any{"insight": "Something happened"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", llm.lastReq.Model)
}

func TestSynthesize_Visualization(t *testing.T) {
	s := NewSynthesizer(&stubCompleter{response: "Summary."}, config.DefaultLLMConfig())
	eplan := queryPlan(config.InterrogativeWhere)

	artifact, err := s.Synthesize(context.Background(), config.AgentClassQuery, eplan, []agent.Outcome{
		{AgentKey: "where", Status: agent.StatusOK, Output: map[string]any{
			"insight": "Two hotspots along the river",
			"features": []any{
				map[string]any{"label": "Bridge Rd", "lat": 51.5, "lon": -0.12},
				map[string]any{"label": "Mill St", "lat": 48.85, "lon": 2.35},
				map[string]any{"label": "bad", "lat": "not a number"},
			},
		}},
	})
	require.NoError(t, err)

	require.NotNil(t, artifact.Visualization)
	require.Len(t, artifact.Visualization.Features, 2)
	bounds := artifact.Visualization.Bounds
	require.NotNil(t, bounds)
	assert.InDelta(t, 48.85, bounds.MinLat, 0.001)
	assert.InDelta(t, 51.5, bounds.MaxLat, 0.001)
	assert.InDelta(t, -0.12, bounds.MinLon, 0.001)
	assert.InDelta(t, 2.35, bounds.MaxLon, 0.001)
}

func TestSynthesize_NoSpatialDataMeansNoVisualization(t *testing.T) {
	s := NewSynthesizer(&stubCompleter{response: "Summary."}, config.DefaultLLMConfig())
	eplan := queryPlan(config.InterrogativeWhat)

	artifact, err := s.Synthesize(context.Background(), config.AgentClassQuery, eplan, []agent.Outcome{
		{AgentKey: "what", Status: agent.StatusOK, Output: map[string]any{"insight": "Flood reports dominate"}},
	})
	require.NoError(t, err)
	assert.Nil(t, artifact.Visualization)
}

func TestSynthesize_ExplicitBoundsPreferred(t *testing.T) {
	s := NewSynthesizer(&stubCompleter{response: "Summary."}, config.DefaultLLMConfig())
	eplan := queryPlan(config.InterrogativeWhere)

	artifact, err := s.Synthesize(context.Background(), config.AgentClassQuery, eplan, []agent.Outcome{
		{AgentKey: "where", Status: agent.StatusOK, Output: map[string]any{
			"insight": "One hotspot",
			"features": []any{
				map[string]any{"label": "Bridge Rd", "lat": 51.5, "lon": -0.12},
			},
			"bounds": map[string]any{
				"min_lat": 51.0, "min_lon": -1.0, "max_lat": 52.0, "max_lon": 1.0,
			},
		}},
	})
	require.NoError(t, err)
	require.NotNil(t, artifact.Visualization)
	assert.InDelta(t, 51.0, artifact.Visualization.Bounds.MinLat, 0.001)
	assert.InDelta(t, 1.0, artifact.Visualization.Bounds.MaxLon, 0.001)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate(nil))
	assert.Error(t, Validate([]agent.Outcome{
		{AgentKey: "geo"}, {AgentKey: "geo"},
	}))
	assert.NoError(t, Validate([]agent.Outcome{
		{AgentKey: "geo"}, {AgentKey: "entity"},
	}))
}

func TestSynthesize_Management(t *testing.T) {
	s := NewSynthesizer(nil, config.DefaultLLMConfig())

	artifact, err := s.Synthesize(context.Background(), config.AgentClassManagement, nil, []agent.Outcome{
		{AgentKey: "management_summarizer", Status: agent.StatusOK, Output: map[string]any{
			"summary": "42 records, mostly floods.", "record_count": 42.0,
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 42.0, artifact.Fields["management_summarizer.record_count"])
	assert.IsType(t, map[string]models.AgentStatus{}, artifact.AgentStatuses)
}
