package plan

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/siftstack/sift/pkg/models"
)

// randomGraph is a generated candidate graph: n nodes named a0..a(n-1)
// and arbitrary edges between them (valid or not).
type randomGraph struct {
	Keys  []string
	Edges []models.GraphEdge
}

func genGraph() gopter.Gen {
	return gen.IntRange(1, 8).FlatMap(func(v interface{}) gopter.Gen {
		n := v.(int)
		keys := make([]string, n)
		for i := range keys {
			keys[i] = fmt.Sprintf("a%d", i)
		}
		edgeGen := gopter.CombineGens(gen.IntRange(0, n-1), gen.IntRange(0, n-1)).
			Map(func(vals []interface{}) models.GraphEdge {
				return models.GraphEdge{From: keys[vals[0].(int)], To: keys[vals[1].(int)]}
			})
		return gen.SliceOf(edgeGen).Map(func(edges []models.GraphEdge) randomGraph {
			if len(edges) > n {
				edges = edges[:n]
			}
			return randomGraph{Keys: keys, Edges: edges}
		})
	}, reflect.TypeOf(randomGraph{}))
}

func TestGraphValidatorSoundness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("accepted graphs level every node exactly once", prop.ForAll(
		func(g randomGraph) bool {
			levels, err := AssignLevels(g.Edges, g.Keys)
			if err != nil {
				// Rejections are checked by the other properties.
				return true
			}
			seen := make(map[string]int)
			for _, level := range levels {
				for _, key := range level {
					seen[key]++
				}
			}
			if len(seen) != len(g.Keys) {
				return false
			}
			for _, key := range g.Keys {
				if seen[key] != 1 {
					return false
				}
			}
			return true
		},
		genGraph(),
	))

	properties.Property("accepted graphs place every child after its parent", prop.ForAll(
		func(g randomGraph) bool {
			levels, err := AssignLevels(g.Edges, g.Keys)
			if err != nil {
				return true
			}
			levelOf := make(map[string]int)
			for i, level := range levels {
				for _, key := range level {
					levelOf[key] = i
				}
			}
			for _, e := range g.Edges {
				if levelOf[e.From] >= levelOf[e.To] {
					return false
				}
			}
			return true
		},
		genGraph(),
	))

	properties.Property("rejections name a real defect", prop.ForAll(
		func(g randomGraph) bool {
			err := ValidateGraph(g.Edges, g.Keys)
			if err == nil {
				return true
			}
			switch {
			case errors.Is(err, ErrDanglingEdge):
				return hasDanglingEdge(g)
			case errors.Is(err, ErrMultiParent):
				return hasMultiParent(g)
			case errors.Is(err, ErrCycle):
				return hasCycle(g)
			case errors.Is(err, ErrMultiLevel):
				return hasMultiLevel(g)
			default:
				return false
			}
		},
		genGraph(),
	))

	properties.Property("validation is deterministic", prop.ForAll(
		func(g randomGraph) bool {
			first := ValidateGraph(g.Edges, g.Keys)
			second := ValidateGraph(g.Edges, g.Keys)
			if (first == nil) != (second == nil) {
				return false
			}
			if first != nil && first.Error() != second.Error() {
				return false
			}
			return true
		},
		genGraph(),
	))

	properties.TestingRun(t)
}

// Independent oracles for the three structural defects. Written as
// brute-force checks so a validator bug cannot hide in shared code.

func hasDanglingEdge(g randomGraph) bool {
	members := make(map[string]bool)
	for _, key := range g.Keys {
		members[key] = true
	}
	for _, e := range g.Edges {
		if !members[e.From] || !members[e.To] {
			return true
		}
	}
	return false
}

func hasMultiParent(g randomGraph) bool {
	inDegree := make(map[string]int)
	for _, e := range g.Edges {
		inDegree[e.To]++
	}
	for _, d := range inDegree {
		if d > 1 {
			return true
		}
	}
	return false
}

func hasCycle(g randomGraph) bool {
	// Walk every node forward; with bounded steps a revisit of the
	// start proves a cycle.
	next := make(map[string][]string)
	for _, e := range g.Edges {
		next[e.From] = append(next[e.From], e.To)
	}
	var reachable func(from, target string, depth int) bool
	reachable = func(from, target string, depth int) bool {
		if depth > len(g.Keys)+1 {
			return false
		}
		for _, to := range next[from] {
			if to == target || reachable(to, target, depth+1) {
				return true
			}
		}
		return false
	}
	for _, key := range g.Keys {
		if reachable(key, key, 0) {
			return true
		}
	}
	return false
}

func hasMultiLevel(g randomGraph) bool {
	hasParent := make(map[string]bool)
	for _, e := range g.Edges {
		hasParent[e.To] = true
	}
	for _, e := range g.Edges {
		if hasParent[e.From] {
			return true
		}
	}
	return false
}
