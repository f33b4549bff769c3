package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siftstack/sift/pkg/agent"
)

func TestMergeFields_Namespacing(t *testing.T) {
	fields := mergeFields([]agent.Outcome{
		{AgentKey: "geo", Status: agent.StatusOK, Output: map[string]any{
			"location": "London", "confidence": 0.9,
		}},
		{AgentKey: "entity", Status: agent.StatusOK, Output: map[string]any{
			"category": "flood", "confidence": 0.8,
		}},
	})

	assert.Equal(t, "London", fields["geo.location"])
	assert.Equal(t, "flood", fields["entity.category"])
	// Promoted to top level alongside the namespaced copies.
	assert.Equal(t, "London", fields["location"])
	assert.Equal(t, "flood", fields["category"])
}

func TestMergeFields_PromotionPrecedence(t *testing.T) {
	t.Run("higher confidence wins", func(t *testing.T) {
		fields := mergeFields([]agent.Outcome{
			{AgentKey: "a", Status: agent.StatusOK, Output: map[string]any{
				"location": "Paris", "confidence": 0.4,
			}},
			{AgentKey: "b", Status: agent.StatusOK, Output: map[string]any{
				"location": "London", "confidence": 0.9,
			}},
		})
		assert.Equal(t, "London", fields["location"])
	})

	t.Run("tie breaks on agent key", func(t *testing.T) {
		fields := mergeFields([]agent.Outcome{
			{AgentKey: "zeta", Status: agent.StatusOK, Output: map[string]any{
				"location": "Paris", "confidence": 0.7,
			}},
			{AgentKey: "alpha", Status: agent.StatusOK, Output: map[string]any{
				"location": "London", "confidence": 0.7,
			}},
		})
		assert.Equal(t, "London", fields["location"])
	})

	t.Run("explicit confidence beats none", func(t *testing.T) {
		fields := mergeFields([]agent.Outcome{
			{AgentKey: "a", Status: agent.StatusOK, Output: map[string]any{
				"location": "Paris",
			}},
			{AgentKey: "b", Status: agent.StatusOK, Output: map[string]any{
				"location": "London", "confidence": 0.1,
			}},
		})
		assert.Equal(t, "London", fields["location"])
	})

	t.Run("empty values are not candidates", func(t *testing.T) {
		fields := mergeFields([]agent.Outcome{
			{AgentKey: "a", Status: agent.StatusOK, Output: map[string]any{
				"location": "", "confidence": 0.9,
			}},
			{AgentKey: "b", Status: agent.StatusOK, Output: map[string]any{
				"location": "London", "confidence": 0.1,
			}},
		})
		assert.Equal(t, "London", fields["location"])
	})
}

func TestMergeFields_SkipsFailedAgents(t *testing.T) {
	fields := mergeFields([]agent.Outcome{
		{AgentKey: "geo", Status: agent.StatusError, ErrorCode: "ParseError"},
		{AgentKey: "entity", Status: agent.StatusOK, Output: map[string]any{
			"category": "flood",
		}},
	})

	assert.NotContains(t, fields, "geo.location")
	assert.Equal(t, "flood", fields["entity.category"])
}

func TestMergeFields_Deterministic(t *testing.T) {
	outcomes := []agent.Outcome{
		{AgentKey: "b", Status: agent.StatusOK, Output: map[string]any{"timestamp": "2026-08-01", "confidence": 0.5}},
		{AgentKey: "a", Status: agent.StatusOK, Output: map[string]any{"timestamp": "2026-08-02", "confidence": 0.5}},
	}
	first := mergeFields(outcomes)
	reversed := mergeFields([]agent.Outcome{outcomes[1], outcomes[0]})
	assert.Equal(t, first, reversed)
	assert.Equal(t, "2026-08-02", first["timestamp"])
}
