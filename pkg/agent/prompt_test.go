package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siftstack/sift/pkg/plan"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := Request{
		RawInput: "Flooding reported near the riverbank.",
		Spec: plan.AgentSpec{
			Key: "geo",
			OutputSchema: map[string]string{
				"location":   "string",
				"confidence": "number",
				"bbox":       "array",
			},
		},
	}

	first := BuildPrompt(req)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildPrompt(req))
	}
}

func TestBuildPrompt_SchemaKeysSorted(t *testing.T) {
	req := Request{
		RawInput: "input",
		Spec: plan.AgentSpec{
			OutputSchema: map[string]string{
				"zeta":  "string",
				"alpha": "number",
				"mid":   "array",
			},
		},
	}

	prompt := BuildPrompt(req)
	alpha := strings.Index(prompt, `"alpha"`)
	mid := strings.Index(prompt, `"mid"`)
	zeta := strings.Index(prompt, `"zeta"`)
	assert.True(t, alpha >= 0 && alpha < mid && mid < zeta)
	assert.Contains(t, prompt, `"alpha" (number)`)
}

func TestBuildPrompt_IncludesParentOutput(t *testing.T) {
	req := Request{
		RawInput: "What areas flooded?",
		Spec: plan.AgentSpec{
			Key:              "where",
			DependencyParent: "what",
			OutputSchema:     map[string]string{"answer": "string"},
		},
		ParentOutput: map[string]any{"category": "flood", "severity": "high"},
	}

	prompt := BuildPrompt(req)
	assert.Contains(t, prompt, "## Output from agent what")
	assert.Contains(t, prompt, `"category":"flood"`)
	assert.Contains(t, prompt, `"severity":"high"`)
}

func TestBuildPrompt_OmitsParentSectionWhenNil(t *testing.T) {
	req := Request{
		RawInput: "What areas flooded?",
		Spec: plan.AgentSpec{
			Key:              "where",
			DependencyParent: "what",
			OutputSchema:     map[string]string{"answer": "string"},
		},
	}

	prompt := BuildPrompt(req)
	assert.NotContains(t, prompt, "## Output from agent")
}

func TestBuildRepairPrompt(t *testing.T) {
	prompt := buildRepairPrompt("sure! here you go", map[string]string{
		"location": "string",
		"category": "string",
	})
	assert.Contains(t, prompt, "sure! here you go")
	assert.Contains(t, prompt, "category, location")
	assert.Contains(t, prompt, "No prose, no code fences.")
}

func TestBuildPrompt_ToolSection(t *testing.T) {
	req := Request{
		RawInput: "input",
		Spec: plan.AgentSpec{
			AllowedTools: []string{"llm", "web_search", "geocode"},
			OutputSchema: map[string]string{"location": "string"},
		},
	}

	prompt := BuildPrompt(req)
	assert.Contains(t, prompt, "## Tools")
	assert.Contains(t, prompt, "geocode, web_search")
	assert.Contains(t, prompt, `"tool_calls"`)
}

func TestBuildPrompt_NoToolSectionForLLMOnlyAgents(t *testing.T) {
	req := Request{
		RawInput: "input",
		Spec: plan.AgentSpec{
			AllowedTools: []string{"llm"},
			OutputSchema: map[string]string{"location": "string"},
		},
	}

	assert.NotContains(t, BuildPrompt(req), "## Tools")
}
