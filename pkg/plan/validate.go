package plan

import (
	"errors"
	"fmt"

	"github.com/siftstack/sift/pkg/models"
)

var (
	// ErrDanglingEdge indicates an edge endpoint outside the playbook.
	ErrDanglingEdge = errors.New("edge endpoint not in playbook")

	// ErrMultiParent indicates a node with more than one incoming edge.
	ErrMultiParent = errors.New("agent has multiple parents")

	// ErrMultiLevel indicates a chain deeper than parent -> child.
	ErrMultiLevel = errors.New("dependency chain exceeds one level")

	// ErrCycle indicates a cycle in the dependency graph.
	ErrCycle = errors.New("dependency graph contains a cycle")
)

// ValidateGraph checks dependency edges against the playbook's agent
// set. Checks run in a fixed order so rejection reasons are stable:
// dangling endpoints, multi-parent, cycles, then multi-level chains.
// Cycles are reported before the multi-level check because every cycle
// also looks like a chain and the cycle is the more useful diagnosis.
func ValidateGraph(edges []models.GraphEdge, agentKeys []string) error {
	members := make(map[string]bool, len(agentKeys))
	for _, key := range agentKeys {
		members[key] = true
	}

	parents := make(map[string]string, len(edges))
	children := make(map[string][]string, len(edges))
	for _, e := range edges {
		if !members[e.From] {
			return fmt.Errorf("%w: %q", ErrDanglingEdge, e.From)
		}
		if !members[e.To] {
			return fmt.Errorf("%w: %q", ErrDanglingEdge, e.To)
		}
		if prev, ok := parents[e.To]; ok {
			return fmt.Errorf("%w: %q has parents %q and %q", ErrMultiParent, e.To, prev, e.From)
		}
		parents[e.To] = e.From
		children[e.From] = append(children[e.From], e.To)
	}

	if node, ok := findCycle(agentKeys, children); ok {
		return fmt.Errorf("%w: via %q", ErrCycle, node)
	}

	// With cycles and multi-parent excluded, a chain deeper than one
	// level shows up as a parent that itself has a parent.
	for _, e := range edges {
		if _, ok := parents[e.From]; ok {
			return fmt.Errorf("%w: %q -> %q, but %q already has a parent", ErrMultiLevel, e.From, e.To, e.From)
		}
	}

	return nil
}

// findCycle runs a DFS with a recursion stack over the child adjacency.
// Returns any node on a cycle.
func findCycle(agentKeys []string, children map[string][]string) (string, bool) {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(agentKeys))

	var visit func(node string) (string, bool)
	visit = func(node string) (string, bool) {
		state[node] = inStack
		for _, child := range children[node] {
			switch state[child] {
			case inStack:
				return child, true
			case unvisited:
				if n, found := visit(child); found {
					return n, true
				}
			}
		}
		state[node] = done
		return "", false
	}

	for _, key := range agentKeys {
		if state[key] == unvisited {
			if n, found := visit(key); found {
				return n, true
			}
		}
	}
	return "", false
}
