package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
)

func TestAssignLevelsNoEdges(t *testing.T) {
	levels, err := AssignLevels(nil, []string{"c", "a", "b"})
	require.NoError(t, err)

	// Single level, lexicographically ordered.
	require.Len(t, levels, 1)
	assert.Equal(t, []string{"a", "b", "c"}, levels[0])
}

func TestAssignLevelsSingleParent(t *testing.T) {
	levels, err := AssignLevels(
		[]models.GraphEdge{edge("entity", "severity")},
		[]string{"geo", "temporal", "entity", "severity"},
	)
	require.NoError(t, err)

	require.Len(t, levels, 2)
	assert.Equal(t, []string{"entity", "geo", "temporal"}, levels[0])
	assert.Equal(t, []string{"severity"}, levels[1])
}

func TestAssignLevelsDeterministic(t *testing.T) {
	edges := []models.GraphEdge{edge("a", "x"), edge("b", "y")}
	keys := []string{"y", "b", "x", "a"}

	first, err := AssignLevels(edges, keys)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := AssignLevels(edges, keys)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAssignLevelsRejectsInvalidGraph(t *testing.T) {
	_, err := AssignLevels([]models.GraphEdge{edge("a", "b"), edge("b", "a")}, []string{"a", "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycle)
}

func testSnapshot() *Snapshot {
	return &Snapshot{
		TenantID:   "tenant-1",
		DomainID:   "city-reports",
		Class:      config.AgentClassIngest,
		PlaybookID: "pb-1",
		Agents: []AgentSpec{
			{Key: "geo", Class: config.AgentClassIngest},
			{Key: "temporal", Class: config.AgentClassIngest},
			{Key: "entity", Class: config.AgentClassIngest},
			{Key: "severity", Class: config.AgentClassIngest, DependencyParent: "entity"},
		},
		Edges: []models.GraphEdge{edge("entity", "severity")},
	}
}

func TestBuild(t *testing.T) {
	eplan, err := Build(testSnapshot())
	require.NoError(t, err)

	require.Len(t, eplan.Levels, 2)
	assert.Equal(t, 4, eplan.AgentCount())

	level0 := eplan.Levels[0]
	assert.Equal(t, 0, level0.Index)
	require.Len(t, level0.Agents, 3)
	for _, a := range level0.Agents {
		assert.Empty(t, a.ParentKey, "agent %s", a.AgentKey)
	}

	level1 := eplan.Levels[1]
	assert.Equal(t, 1, level1.Index)
	require.Len(t, level1.Agents, 1)
	assert.Equal(t, "severity", level1.Agents[0].AgentKey)
	assert.Equal(t, "entity", level1.Agents[0].ParentKey)
}

func TestBuildCarriesFrozenSpecs(t *testing.T) {
	snap := testSnapshot()
	snap.Agents[0].SystemPrompt = "extract locations"
	snap.Agents[0].OutputSchema = map[string]string{"location": "string"}

	eplan, err := Build(snap)
	require.NoError(t, err)

	spec, ok := eplan.Spec("geo")
	require.True(t, ok)
	assert.Equal(t, "extract locations", spec.SystemPrompt)
	assert.Equal(t, map[string]string{"location": "string"}, spec.OutputSchema)

	_, ok = eplan.Spec("missing")
	assert.False(t, ok)
}

func TestBuildIgnoresStaleSnapshotLevels(t *testing.T) {
	snap := testSnapshot()
	// Hand-edited snapshot levels must not leak into the plan.
	snap.Levels = [][]string{{"severity"}, {"entity", "geo", "temporal"}}

	eplan, err := Build(snap)
	require.NoError(t, err)
	assert.Equal(t, "severity", eplan.Levels[1].Agents[0].AgentKey)
}

func TestBuildRejectsBadSnapshot(t *testing.T) {
	snap := testSnapshot()
	snap.Edges = append(snap.Edges, edge("severity", "geo"), edge("geo", "entity"))

	_, err := Build(snap)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycle)
}
