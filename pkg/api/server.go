// Package api is the HTTP surface: job submission and retrieval,
// catalog CRUD, template instantiation, the WebSocket status stream,
// and health. Identity arrives as trusted proxy headers; every handler
// operates inside the authenticated tenant.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/siftstack/sift/pkg/catalog"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/database"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/jobs"
	"github.com/siftstack/sift/pkg/queue"
)

// Server carries the handler dependencies.
type Server struct {
	db          *database.Client
	jobs        *jobs.Service
	agents      *catalog.AgentService
	playbooks   *catalog.PlaybookService
	graphs      *catalog.GraphService
	plans       *catalog.PlanService
	templates   *catalog.TemplateService
	pool        *queue.WorkerPool
	connManager *events.ConnectionManager
	serverCfg   *config.ServerConfig
}

// Deps bundles the server's constructor dependencies. pool and
// connManager may be nil (API-only replicas).
type Deps struct {
	DB          *database.Client
	Jobs        *jobs.Service
	Agents      *catalog.AgentService
	Playbooks   *catalog.PlaybookService
	Graphs      *catalog.GraphService
	Plans       *catalog.PlanService
	Templates   *catalog.TemplateService
	Pool        *queue.WorkerPool
	ConnManager *events.ConnectionManager
	ServerCfg   *config.ServerConfig
}

// NewServer creates a new API server.
func NewServer(deps Deps) *Server {
	if deps.DB == nil {
		panic("NewServer: DB must not be nil")
	}
	if deps.Jobs == nil {
		panic("NewServer: Jobs must not be nil")
	}
	return &Server{
		db:          deps.DB,
		jobs:        deps.Jobs,
		agents:      deps.Agents,
		playbooks:   deps.Playbooks,
		graphs:      deps.Graphs,
		plans:       deps.Plans,
		templates:   deps.Templates,
		pool:        deps.Pool,
		connManager: deps.ConnManager,
		serverCfg:   deps.ServerCfg,
	}
}

// RegisterRoutes wires all routes onto the router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1", identity())

	v1.POST("/jobs/ingest", s.submitIngestHandler)
	v1.POST("/jobs/query", s.submitQueryHandler)
	v1.POST("/jobs/management", s.submitManagementHandler)
	v1.GET("/jobs", s.listJobsHandler)
	v1.GET("/jobs/:id", s.getJobHandler)
	v1.POST("/jobs/:id/cancel", s.cancelJobHandler)

	v1.PUT("/catalog/agents/:key", s.putAgentHandler)
	v1.GET("/catalog/agents", s.listAgentsHandler)
	v1.GET("/catalog/agents/:key", s.getAgentHandler)
	v1.DELETE("/catalog/agents/:key", s.deleteAgentHandler)

	v1.PUT("/catalog/playbooks/:domain/:class", s.putPlaybookHandler)
	v1.GET("/catalog/playbooks", s.listPlaybooksHandler)
	v1.GET("/catalog/playbooks/:domain/:class", s.getPlaybookHandler)
	v1.DELETE("/catalog/playbooks/:domain/:class", s.deletePlaybookHandler)

	v1.PUT("/catalog/graphs/:domain/:class", s.putGraphHandler)
	v1.GET("/catalog/graphs/:domain/:class", s.getGraphHandler)

	v1.GET("/catalog/plans/:domain/:class", s.getPlanHandler)

	v1.POST("/catalog/templates", s.putTemplateHandler)
	v1.GET("/catalog/templates", s.listTemplatesHandler)
	v1.GET("/catalog/templates/:id", s.getTemplateHandler)
	v1.POST("/catalog/templates/:id/instantiate", s.instantiateTemplateHandler)
}
