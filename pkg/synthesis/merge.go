package synthesis

import (
	"sort"

	"github.com/siftstack/sift/pkg/agent"
)

// promotedKeys are the semantic fields lifted from namespaced agent
// outputs to the artifact's top level.
var promotedKeys = []string{"location", "timestamp", "category"}

// mergeFields builds the ingest artifact's field map: every output key
// k from agent A lands as "A.k", and promoted keys additionally land
// at the top level. Conflicts on a promoted key go to the output with
// the highest confidence; ties break on lexicographic agent key so the
// merge is deterministic.
func mergeFields(outcomes []agent.Outcome) map[string]any {
	ordered := make([]agent.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Status == agent.StatusOK && len(o.Output) > 0 {
			ordered = append(ordered, o)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].AgentKey < ordered[j].AgentKey })

	fields := make(map[string]any)
	for _, o := range ordered {
		for k, v := range o.Output {
			fields[o.AgentKey+"."+k] = v
		}
	}

	for _, key := range promotedKeys {
		if winner, ok := promote(ordered, key); ok {
			fields[key] = winner
		}
	}
	return fields
}

// promote picks the value for one promoted key across agent outputs.
func promote(ordered []agent.Outcome, key string) (any, bool) {
	var best any
	bestConfidence := -1.0
	found := false

	for _, o := range ordered {
		value, ok := o.Output[key]
		if !ok || value == nil {
			continue
		}
		if s, isStr := value.(string); isStr && s == "" {
			continue
		}
		confidence := outputConfidence(o.Output)
		// Strictly greater: on a tie the earlier (lexicographically
		// smaller) agent key keeps the slot.
		if !found || confidence > bestConfidence {
			best = value
			bestConfidence = confidence
			found = true
		}
	}
	return best, found
}

// outputConfidence reads the conventional confidence field. Outputs
// without one rank below any explicit confidence.
func outputConfidence(output map[string]any) float64 {
	if c, ok := output["confidence"].(float64); ok {
		return c
	}
	return -1
}
