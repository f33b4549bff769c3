package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/models"
)

func edge(from, to string) models.GraphEdge {
	return models.GraphEdge{From: from, To: to}
}

func TestValidateGraphAccepts(t *testing.T) {
	tests := []struct {
		name  string
		edges []models.GraphEdge
		keys  []string
	}{
		{
			name: "no edges",
			keys: []string{"a", "b", "c"},
		},
		{
			name:  "single parent child",
			edges: []models.GraphEdge{edge("entity", "severity")},
			keys:  []string{"geo", "temporal", "entity", "severity"},
		},
		{
			name:  "one parent with two children",
			edges: []models.GraphEdge{edge("a", "b"), edge("a", "c")},
			keys:  []string{"a", "b", "c"},
		},
		{
			name:  "two independent pairs",
			edges: []models.GraphEdge{edge("a", "b"), edge("c", "d")},
			keys:  []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateGraph(tt.edges, tt.keys))
		})
	}
}

func TestValidateGraphRejects(t *testing.T) {
	tests := []struct {
		name    string
		edges   []models.GraphEdge
		keys    []string
		wantErr error
	}{
		{
			name:    "dangling from",
			edges:   []models.GraphEdge{edge("ghost", "a")},
			keys:    []string{"a", "b"},
			wantErr: ErrDanglingEdge,
		},
		{
			name:    "dangling to",
			edges:   []models.GraphEdge{edge("a", "ghost")},
			keys:    []string{"a", "b"},
			wantErr: ErrDanglingEdge,
		},
		{
			name:    "multi parent",
			edges:   []models.GraphEdge{edge("a", "c"), edge("b", "c")},
			keys:    []string{"a", "b", "c"},
			wantErr: ErrMultiParent,
		},
		{
			name:    "two node cycle",
			edges:   []models.GraphEdge{edge("a", "b"), edge("b", "a")},
			keys:    []string{"a", "b"},
			wantErr: ErrCycle,
		},
		{
			name:    "three node cycle",
			edges:   []models.GraphEdge{edge("a", "b"), edge("b", "c"), edge("c", "a")},
			keys:    []string{"a", "b", "c"},
			wantErr: ErrCycle,
		},
		{
			name:    "multi level chain",
			edges:   []models.GraphEdge{edge("a", "b"), edge("b", "c")},
			keys:    []string{"a", "b", "c"},
			wantErr: ErrMultiLevel,
		},
		{
			name:    "duplicate edge counts as multi parent",
			edges:   []models.GraphEdge{edge("a", "b"), edge("a", "b")},
			keys:    []string{"a", "b"},
			wantErr: ErrMultiParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraph(tt.edges, tt.keys)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateGraphSelfLoopIsCycle(t *testing.T) {
	err := ValidateGraph([]models.GraphEdge{edge("a", "a")}, []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycle)
}
