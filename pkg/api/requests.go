package api

import "github.com/siftstack/sift/pkg/models"

// submitJobRequest is the body for the three job submission routes.
// The class comes from the route, never from the body.
type submitJobRequest struct {
	DomainID       string            `json:"domain_id" binding:"required"`
	Text           string            `json:"text,omitempty"`
	AttachmentRefs []string          `json:"attachment_refs,omitempty"`
	Question       string            `json:"question,omitempty"`
	Filters        map[string]string `json:"filters,omitempty"`
}

func (r *submitJobRequest) input() models.JobInput {
	return models.JobInput{
		Text:           r.Text,
		AttachmentRefs: r.AttachmentRefs,
		Question:       r.Question,
		Filters:        r.Filters,
	}
}

// putAgentRequest is the body for PUT /catalog/agents/:key.
type putAgentRequest struct {
	Class            string            `json:"class" binding:"required"`
	SystemPrompt     string            `json:"system_prompt" binding:"required"`
	AllowedTools     []string          `json:"allowed_tools"`
	OutputSchema     map[string]string `json:"output_schema" binding:"required"`
	DependencyParent string            `json:"dependency_parent,omitempty"`
	Interrogative    string            `json:"interrogative,omitempty"`
	Enabled          *bool             `json:"enabled,omitempty"`
}

// putPlaybookRequest is the body for PUT /catalog/playbooks/:domain/:class.
type putPlaybookRequest struct {
	AgentKeys []string `json:"agent_keys" binding:"required"`
}

// putGraphRequest is the body for PUT /catalog/graphs/:domain/:class.
type putGraphRequest struct {
	Edges []models.GraphEdge `json:"edges"`
}

// putTemplateRequest is the body for POST /catalog/templates.
type putTemplateRequest struct {
	Name string              `json:"name" binding:"required"`
	Spec models.TemplateSpec `json:"spec" binding:"required"`
}

// instantiateTemplateRequest is the body for
// POST /catalog/templates/:id/instantiate.
type instantiateTemplateRequest struct {
	DomainID string `json:"domain_id" binding:"required"`
}
