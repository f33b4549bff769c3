package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTemplateAgentsWellFormed(t *testing.T) {
	tmpl := GetBuiltinTemplate()

	allKeys := make(map[string]bool)
	for _, a := range tmpl.Agents {
		allKeys[a.Key] = true
	}

	seen := make(map[string]bool)
	for _, a := range tmpl.Agents {
		require.False(t, seen[a.Key], "duplicate agent key %s", a.Key)
		seen[a.Key] = true

		assert.True(t, AgentClass(a.Class).IsValid(), "agent %s class", a.Key)
		assert.NotEmpty(t, a.SystemPrompt, "agent %s prompt", a.Key)
		assert.LessOrEqual(t, len(a.OutputSchema), 5, "agent %s schema size", a.Key)
		assert.NotEmpty(t, a.OutputSchema, "agent %s schema", a.Key)

		for _, tool := range a.AllowedTools {
			assert.True(t, ToolName(tool).IsValid(), "agent %s tool %s", a.Key, tool)
		}

		if AgentClass(a.Class) == AgentClassQuery {
			assert.True(t, Interrogative(a.Interrogative).IsValid(), "agent %s interrogative", a.Key)
		} else {
			assert.Empty(t, a.Interrogative, "agent %s interrogative", a.Key)
		}

		if a.DependencyParent != "" {
			require.True(t, allKeys[a.DependencyParent],
				"agent %s parent %s missing", a.Key, a.DependencyParent)
		}
	}
}

func TestBuiltinTemplateCoversAllInterrogatives(t *testing.T) {
	tmpl := GetBuiltinTemplate()

	byInterrogative := make(map[string]bool)
	for _, a := range tmpl.Agents {
		if AgentClass(a.Class) == AgentClassQuery {
			byInterrogative[a.Interrogative] = true
		}
	}

	require.Len(t, byInterrogative, len(CanonicalInterrogatives))
	for _, q := range CanonicalInterrogatives {
		assert.True(t, byInterrogative[string(q)], "missing query agent for %s", q)
	}
}

func TestBuiltinTemplatePlaybooksReferenceBundledAgents(t *testing.T) {
	tmpl := GetBuiltinTemplate()

	keysByClass := make(map[string]map[string]bool)
	for _, a := range tmpl.Agents {
		if keysByClass[a.Class] == nil {
			keysByClass[a.Class] = make(map[string]bool)
		}
		keysByClass[a.Class][a.Key] = true
	}

	require.Len(t, tmpl.Playbooks, 3)
	for _, pb := range tmpl.Playbooks {
		require.True(t, AgentClass(pb.Class).IsValid())
		require.NotEmpty(t, pb.AgentKeys)
		for _, key := range pb.AgentKeys {
			assert.True(t, keysByClass[pb.Class][key],
				"playbook %s references %s outside its class", pb.Class, key)
		}
	}
}

func TestBuiltinTemplateGraphEdgesWithinPlaybook(t *testing.T) {
	tmpl := GetBuiltinTemplate()

	membersByClass := make(map[string]map[string]bool)
	for _, pb := range tmpl.Playbooks {
		members := make(map[string]bool)
		for _, key := range pb.AgentKeys {
			members[key] = true
		}
		membersByClass[pb.Class] = members
	}

	for _, g := range tmpl.Graphs {
		members := membersByClass[g.Class]
		require.NotNil(t, members, "graph for class %s has no playbook", g.Class)
		for _, e := range g.Edges {
			assert.True(t, members[e.From], "edge from %s outside playbook", e.From)
			assert.True(t, members[e.To], "edge to %s outside playbook", e.To)
		}
	}
}
