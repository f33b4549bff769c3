// Package models contains wire and storage DTOs shared between the API
// layer, the catalog services, and the queue executor. It must not import
// ent or any transport package.
package models

import "time"

// GraphEdge is one parent→child edge in a dependency graph.
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// JobInput carries the raw submission payload for a job.
// Ingest jobs fill Text (+ optional AttachmentRefs); query jobs fill
// Question (+ optional Filters). Attachment bytes never pass through
// the engine, only opaque references.
type JobInput struct {
	Text           string            `json:"text,omitempty"`
	AttachmentRefs []string          `json:"attachment_refs,omitempty"`
	Question       string            `json:"question,omitempty"`
	Filters        map[string]string `json:"filters,omitempty"`
}

// Bullet is one line of a query result, prefixed by its interrogative.
type Bullet struct {
	Interrogative string `json:"interrogative"`
	Text          string `json:"text"`
}

// VisualizationSpec describes map rendering hints for spatial results.
type VisualizationSpec struct {
	Bounds   *GeoBounds   `json:"bounds,omitempty"`
	Features []GeoFeature `json:"features,omitempty"`
}

// GeoBounds is a lat/lon bounding box.
type GeoBounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// GeoFeature is a single point of interest extracted from agent output.
type GeoFeature struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// AgentStatus summarizes one invocation for the artifact's per-agent map.
type AgentStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// TemplateSpec is the bundled content of a domain template. Agent keys
// inside a template are symbolic; instantiation rewrites them to fresh
// per-tenant keys before anything becomes visible.
type TemplateSpec struct {
	Agents    []TemplateAgent    `json:"agents" yaml:"agents"`
	Playbooks []TemplatePlaybook `json:"playbooks" yaml:"playbooks"`
	Graphs    []TemplateGraph    `json:"graphs" yaml:"graphs"`
}

// TemplateAgent is an agent definition carried inside a template.
type TemplateAgent struct {
	Key              string            `json:"key" yaml:"key"`
	Class            string            `json:"class" yaml:"class"`
	SystemPrompt     string            `json:"system_prompt" yaml:"system_prompt"`
	AllowedTools     []string          `json:"allowed_tools" yaml:"allowed_tools"`
	OutputSchema     map[string]string `json:"output_schema" yaml:"output_schema"`
	DependencyParent string            `json:"dependency_parent,omitempty" yaml:"dependency_parent,omitempty"`
	Interrogative    string            `json:"interrogative,omitempty" yaml:"interrogative,omitempty"`
}

// TemplatePlaybook binds a class to an ordered set of symbolic agent keys.
type TemplatePlaybook struct {
	Class     string   `json:"class" yaml:"class"`
	AgentKeys []string `json:"agent_keys" yaml:"agent_keys"`
}

// TemplateGraph holds the dependency edges for one class's playbook,
// expressed over symbolic agent keys.
type TemplateGraph struct {
	Class string      `json:"class" yaml:"class"`
	Edges []GraphEdge `json:"edges" yaml:"edges"`
}

// InstantiationResult reports what instantiate_template created.
type InstantiationResult struct {
	AgentKeyMap map[string]string `json:"agent_key_map"`
	PlaybookIDs []string          `json:"playbook_ids"`
	GraphIDs    []string          `json:"graph_ids"`
}

// JobSubmission is the API-level acknowledgement for a submitted job.
type JobSubmission struct {
	JobID      string    `json:"job_id"`
	AcceptedAt time.Time `json:"accepted_at"`
}
