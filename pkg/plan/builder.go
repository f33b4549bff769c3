package plan

import (
	"fmt"
	"sort"

	"github.com/siftstack/sift/pkg/models"
)

// AssignLevels runs Kahn's algorithm over a validated edge set. Level 0
// holds the nodes with no parent; each later level holds the nodes whose
// sole parent sits in a prior level. Ties inside a level are broken by
// lexicographic agent key so the result is reproducible.
func AssignLevels(edges []models.GraphEdge, agentKeys []string) ([][]string, error) {
	if err := ValidateGraph(edges, agentKeys); err != nil {
		return nil, err
	}

	inDegree := make(map[string]int, len(agentKeys))
	children := make(map[string][]string, len(edges))
	for _, key := range agentKeys {
		inDegree[key] = 0
	}
	for _, e := range edges {
		inDegree[e.To]++
		children[e.From] = append(children[e.From], e.To)
	}

	var levels [][]string
	current := make([]string, 0, len(agentKeys))
	for _, key := range agentKeys {
		if inDegree[key] == 0 {
			current = append(current, key)
		}
	}

	placed := 0
	for len(current) > 0 {
		sort.Strings(current)
		levels = append(levels, current)
		placed += len(current)

		var next []string
		for _, key := range current {
			for _, child := range children[key] {
				inDegree[child]--
				if inDegree[child] == 0 {
					next = append(next, child)
				}
			}
		}
		current = next
	}

	// ValidateGraph already rejected cycles, so every node must place.
	if placed != len(agentKeys) {
		return nil, fmt.Errorf("%w: %d of %d agents unplaced", ErrCycle, len(agentKeys)-placed, placed)
	}

	return levels, nil
}

// Build materializes the execution plan from a snapshot. The snapshot's
// precomputed levels are ignored and recomputed from the edges, so a
// stale or hand-edited snapshot cannot smuggle in an inconsistent order.
func Build(snap *Snapshot) (*ExecutionPlan, error) {
	specs := make(map[string]AgentSpec, len(snap.Agents))
	keys := make([]string, 0, len(snap.Agents))
	for _, spec := range snap.Agents {
		specs[spec.Key] = spec
		keys = append(keys, spec.Key)
	}

	levelKeys, err := AssignLevels(snap.Edges, keys)
	if err != nil {
		return nil, err
	}

	parents := make(map[string]string, len(snap.Edges))
	for _, e := range snap.Edges {
		parents[e.To] = e.From
	}

	eplan := &ExecutionPlan{Levels: make([]Level, 0, len(levelKeys))}
	for i, lk := range levelKeys {
		level := Level{Index: i, Agents: make([]ScheduledAgent, 0, len(lk))}
		for _, key := range lk {
			level.Agents = append(level.Agents, ScheduledAgent{
				AgentKey:  key,
				ParentKey: parents[key],
				Spec:      specs[key],
			})
		}
		eplan.Levels = append(eplan.Levels, level)
	}

	return eplan, nil
}
