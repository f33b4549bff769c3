// Package plan turns a (playbook, dependency graph) snapshot into an
// ordered set of execution levels. Everything here is pure: no I/O, no
// clock, and identical inputs always produce identical plans.
package plan

import (
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
)

// AgentSpec is a frozen agent definition carried inside a plan snapshot.
// It is copied out of the catalog when the job starts so later catalog
// edits cannot change a running or replayed job.
type AgentSpec struct {
	Key              string               `json:"key"`
	Class            config.AgentClass    `json:"class"`
	SystemPrompt     string               `json:"system_prompt"`
	AllowedTools     []string             `json:"allowed_tools"`
	OutputSchema     map[string]string    `json:"output_schema"`
	DependencyParent string               `json:"dependency_parent,omitempty"`
	Interrogative    config.Interrogative `json:"interrogative,omitempty"`
	Version          int                  `json:"version"`
}

// Snapshot is the read-only plan material returned by the config store
// and embedded into the job record at start.
type Snapshot struct {
	TenantID        string             `json:"tenant_id"`
	DomainID        string             `json:"domain_id"`
	Class           config.AgentClass  `json:"class"`
	PlaybookID      string             `json:"playbook_id"`
	PlaybookVersion int                `json:"playbook_version"`
	Agents          []AgentSpec        `json:"agents"`
	Edges           []models.GraphEdge `json:"edges"`
	Levels          [][]string         `json:"levels"`
}

// ScheduledAgent is one agent slot in an execution level.
type ScheduledAgent struct {
	AgentKey  string
	ParentKey string
	Spec      AgentSpec
}

// Level is one parallel fan-out group. All agents in a level run
// concurrently; the next level starts only after the whole level joined.
type Level struct {
	Index  int
	Agents []ScheduledAgent
}

// ExecutionPlan is the ordered set of levels for one job.
type ExecutionPlan struct {
	Levels []Level
}

// AgentCount returns the total number of scheduled agents.
func (p *ExecutionPlan) AgentCount() int {
	n := 0
	for _, l := range p.Levels {
		n += len(l.Agents)
	}
	return n
}

// Spec returns the frozen definition for an agent key, if scheduled.
func (p *ExecutionPlan) Spec(agentKey string) (AgentSpec, bool) {
	for _, l := range p.Levels {
		for _, a := range l.Agents {
			if a.AgentKey == agentKey {
				return a.Spec, true
			}
		}
	}
	return AgentSpec{}, false
}
