package api

import (
	"time"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/pkg/database"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/queue"
)

// JobResponse is the wire shape of one job, with artifact and
// invocations when loaded.
type JobResponse struct {
	JobID        string               `json:"job_id"`
	Class        string               `json:"class"`
	DomainID     string               `json:"domain_id"`
	Status       string               `json:"status"`
	ErrorCode    string               `json:"error_code,omitempty"`
	ErrorMessage string               `json:"error_message,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	StartedAt    *time.Time           `json:"started_at,omitempty"`
	FinishedAt   *time.Time           `json:"finished_at,omitempty"`
	Artifact     *ArtifactResponse    `json:"artifact,omitempty"`
	Invocations  []InvocationResponse `json:"invocations,omitempty"`
}

// ArtifactResponse is the wire shape of a result artifact.
type ArtifactResponse struct {
	Fields        map[string]any                `json:"fields,omitempty"`
	Bullets       []models.Bullet               `json:"bullets,omitempty"`
	Summary       string                        `json:"summary,omitempty"`
	Visualization *models.VisualizationSpec     `json:"visualization,omitempty"`
	AgentStatuses map[string]models.AgentStatus `json:"agent_statuses"`
	InputRefs     []string                      `json:"input_refs,omitempty"`
	CreatedAt     time.Time                     `json:"created_at"`
}

// InvocationResponse is the wire shape of one agent invocation.
type InvocationResponse struct {
	AgentKey     string         `json:"agent_key"`
	Level        int            `json:"level"`
	Status       string         `json:"status"`
	ErrorCode    string         `json:"error_code,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Output       map[string]any `json:"output,omitempty"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	FinishedAt   *time.Time     `json:"finished_at,omitempty"`
}

// JobListResponse is one page of a tenant's jobs.
type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// CancelResponse is returned by POST /api/v1/jobs/:id/cancel.
type CancelResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Checks     map[string]HealthCheck `json:"checks"`
}

func jobToResponse(job *ent.Job) JobResponse {
	resp := JobResponse{
		JobID:      job.ID,
		Class:      string(job.Class),
		DomainID:   job.DomainID,
		Status:     string(job.Status),
		CreatedAt:  job.CreatedAt,
		StartedAt:  job.StartedAt,
		FinishedAt: job.FinishedAt,
	}
	if job.ErrorCode != nil {
		resp.ErrorCode = *job.ErrorCode
	}
	if job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}
	if artifact := job.Edges.Artifact; artifact != nil {
		resp.Artifact = &ArtifactResponse{
			Fields:        artifact.Fields,
			Bullets:       artifact.Bullets,
			Summary:       artifact.Summary,
			Visualization: artifact.Visualization,
			AgentStatuses: artifact.AgentStatuses,
			InputRefs:     artifact.InputRefs,
			CreatedAt:     artifact.CreatedAt,
		}
	}
	for _, inv := range job.Edges.Invocations {
		resp.Invocations = append(resp.Invocations, invocationToResponse(inv))
	}
	return resp
}

func invocationToResponse(inv *ent.AgentInvocation) InvocationResponse {
	r := InvocationResponse{
		AgentKey:   inv.AgentKey,
		Level:      inv.Level,
		Status:     string(inv.Status),
		Output:     inv.Output,
		StartedAt:  inv.StartedAt,
		FinishedAt: inv.FinishedAt,
	}
	if inv.ErrorCode != nil {
		r.ErrorCode = *inv.ErrorCode
	}
	if inv.ErrorMessage != nil {
		r.ErrorMessage = *inv.ErrorMessage
	}
	return r
}
