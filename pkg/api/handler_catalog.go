package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/pkg/catalog"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
)

// AgentResponse is the wire shape of one agent definition version.
type AgentResponse struct {
	Key              string            `json:"key"`
	Class            string            `json:"class"`
	SystemPrompt     string            `json:"system_prompt"`
	AllowedTools     []string          `json:"allowed_tools"`
	OutputSchema     map[string]string `json:"output_schema"`
	DependencyParent string            `json:"dependency_parent,omitempty"`
	Interrogative    string            `json:"interrogative,omitempty"`
	IsBuiltin        bool              `json:"is_builtin"`
	Enabled          bool              `json:"enabled"`
	Version          int               `json:"version"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// PlaybookResponse is the wire shape of one playbook.
type PlaybookResponse struct {
	DomainID  string    `json:"domain_id"`
	Class     string    `json:"class"`
	AgentKeys []string  `json:"agent_keys"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GraphResponse is the wire shape of one dependency graph.
type GraphResponse struct {
	DomainID string             `json:"domain_id"`
	Class    string             `json:"class"`
	Edges    []models.GraphEdge `json:"edges"`
	Version  int                `json:"version"`
}

// TemplateResponse is the wire shape of one domain template.
type TemplateResponse struct {
	TemplateID string               `json:"template_id"`
	Name       string               `json:"name"`
	IsBuiltin  bool                 `json:"is_builtin"`
	Spec       *models.TemplateSpec `json:"spec,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

func agentToResponse(a *ent.AgentDefinition) AgentResponse {
	resp := AgentResponse{
		Key:          a.AgentKey,
		Class:        string(a.Class),
		SystemPrompt: a.SystemPrompt,
		AllowedTools: a.AllowedTools,
		OutputSchema: a.OutputSchema,
		IsBuiltin:    a.IsBuiltin,
		Enabled:      a.Enabled,
		Version:      a.Version,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.DependencyParent != nil {
		resp.DependencyParent = *a.DependencyParent
	}
	if a.Interrogative != nil {
		resp.Interrogative = *a.Interrogative
	}
	return resp
}

func playbookToResponse(p *ent.Playbook) PlaybookResponse {
	return PlaybookResponse{
		DomainID:  p.DomainID,
		Class:     string(p.Class),
		AgentKeys: p.AgentKeys,
		Version:   p.Version,
		UpdatedAt: p.UpdatedAt,
	}
}

func templateToResponse(t *ent.DomainTemplate, withSpec bool) TemplateResponse {
	resp := TemplateResponse{
		TemplateID: t.ID,
		Name:       t.Name,
		IsBuiltin:  t.IsBuiltin,
		CreatedAt:  t.CreatedAt,
	}
	if withSpec {
		resp.Spec = t.Spec
	}
	return resp
}

// classParam parses the :class path segment.
func classParam(c *gin.Context) (config.AgentClass, bool) {
	class := config.AgentClass(c.Param("class"))
	if !class.IsValid() {
		c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code:    "SchemaViolation",
			Message: "unknown agent class: " + c.Param("class"),
		})
		return "", false
	}
	return class, true
}

func (s *Server) putAgentHandler(c *gin.Context) {
	var req putAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code:    "SchemaViolation",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	version, err := s.agents.PutAgent(c.Request.Context(), tenantOf(c), catalog.PutAgentInput{
		Key:              c.Param("key"),
		Class:            config.AgentClass(req.Class),
		SystemPrompt:     req.SystemPrompt,
		AllowedTools:     req.AllowedTools,
		OutputSchema:     req.OutputSchema,
		DependencyParent: req.DependencyParent,
		Interrogative:    req.Interrogative,
		Enabled:          req.Enabled,
		CreatedBy:        userOf(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key"), "version": version})
}

func (s *Server) listAgentsHandler(c *gin.Context) {
	class := config.AgentClass(c.Query("class"))
	if class != "" && !class.IsValid() {
		c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code:    "SchemaViolation",
			Message: "unknown agent class: " + c.Query("class"),
		})
		return
	}

	agents, err := s.agents.ListAgents(c.Request.Context(), tenantOf(c), class)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		resp = append(resp, agentToResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"agents": resp})
}

func (s *Server) getAgentHandler(c *gin.Context) {
	agent, err := s.agents.GetAgent(c.Request.Context(), tenantOf(c), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agentToResponse(agent))
}

func (s *Server) deleteAgentHandler(c *gin.Context) {
	if err := s.agents.DeleteAgent(c.Request.Context(), tenantOf(c), c.Param("key")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) putPlaybookHandler(c *gin.Context) {
	class, ok := classParam(c)
	if !ok {
		return
	}
	var req putPlaybookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code:    "SchemaViolation",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	playbook, err := s.playbooks.PutPlaybook(c.Request.Context(), tenantOf(c), catalog.PutPlaybookInput{
		DomainID:  c.Param("domain"),
		Class:     class,
		AgentKeys: req.AgentKeys,
		CreatedBy: userOf(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playbookToResponse(playbook))
}

func (s *Server) listPlaybooksHandler(c *gin.Context) {
	playbooks, err := s.playbooks.ListPlaybooks(c.Request.Context(), tenantOf(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]PlaybookResponse, 0, len(playbooks))
	for _, p := range playbooks {
		resp = append(resp, playbookToResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"playbooks": resp})
}

func (s *Server) getPlaybookHandler(c *gin.Context) {
	class, ok := classParam(c)
	if !ok {
		return
	}
	playbook, err := s.playbooks.GetPlaybook(c.Request.Context(), tenantOf(c), c.Param("domain"), class)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playbookToResponse(playbook))
}

func (s *Server) deletePlaybookHandler(c *gin.Context) {
	class, ok := classParam(c)
	if !ok {
		return
	}
	if err := s.playbooks.DeletePlaybook(c.Request.Context(), tenantOf(c), c.Param("domain"), class); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) putGraphHandler(c *gin.Context) {
	class, ok := classParam(c)
	if !ok {
		return
	}
	var req putGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code:    "SchemaViolation",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	graph, err := s.graphs.PutGraph(c.Request.Context(), tenantOf(c), catalog.PutGraphInput{
		DomainID: c.Param("domain"),
		Class:    class,
		Edges:    req.Edges,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, GraphResponse{
		DomainID: c.Param("domain"),
		Class:    string(class),
		Edges:    graph.GraphEdges,
		Version:  graph.Version,
	})
}

func (s *Server) getGraphHandler(c *gin.Context) {
	class, ok := classParam(c)
	if !ok {
		return
	}
	graph, err := s.graphs.GetGraph(c.Request.Context(), tenantOf(c), c.Param("domain"), class)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, GraphResponse{
		DomainID: c.Param("domain"),
		Class:    string(class),
		Edges:    graph.GraphEdges,
		Version:  graph.Version,
	})
}

func (s *Server) getPlanHandler(c *gin.Context) {
	class, ok := classParam(c)
	if !ok {
		return
	}
	snapshot, err := s.plans.GetPlan(c.Request.Context(), tenantOf(c), c.Param("domain"), class)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) putTemplateHandler(c *gin.Context) {
	var req putTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code:    "SchemaViolation",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	tpl, err := s.templates.PutTemplate(c.Request.Context(), tenantOf(c), req.Name, &req.Spec, userOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, templateToResponse(tpl, false))
}

func (s *Server) listTemplatesHandler(c *gin.Context) {
	templates, err := s.templates.ListTemplates(c.Request.Context(), tenantOf(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, templateToResponse(t, false))
	}
	c.JSON(http.StatusOK, gin.H{"templates": resp})
}

func (s *Server) getTemplateHandler(c *gin.Context) {
	tpl, err := s.templates.GetTemplate(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templateToResponse(tpl, true))
}

func (s *Server) instantiateTemplateHandler(c *gin.Context) {
	var req instantiateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code:    "SchemaViolation",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	result, err := s.templates.InstantiateTemplate(c.Request.Context(), tenantOf(c), c.Param("id"), req.DomainID, userOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
