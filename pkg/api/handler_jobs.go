package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	entjob "github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/jobs"
	"github.com/siftstack/sift/pkg/models"
)

func (s *Server) submitIngestHandler(c *gin.Context) {
	s.submitJob(c, config.AgentClassIngest)
}

func (s *Server) submitQueryHandler(c *gin.Context) {
	s.submitJob(c, config.AgentClassQuery)
}

func (s *Server) submitManagementHandler(c *gin.Context) {
	s.submitJob(c, config.AgentClassManagement)
}

func (s *Server) submitJob(c *gin.Context, class config.AgentClass) {
	var req submitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code:    "SchemaViolation",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	job, err := s.jobs.Submit(c.Request.Context(), jobs.SubmitInput{
		TenantID: tenantOf(c),
		UserID:   userOf(c),
		DomainID: req.DomainID,
		Class:    class,
		Input:    req.input(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, &models.JobSubmission{
		JobID:      job.ID,
		AcceptedAt: job.CreatedAt,
	})
}

func (s *Server) getJobHandler(c *gin.Context) {
	job, err := s.jobs.GetJob(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobToResponse(job))
}

func (s *Server) listJobsHandler(c *gin.Context) {
	filters := jobs.ListFilters{
		Status:   c.Query("status"),
		DomainID: c.Query("domain_id"),
		Class:    c.Query("class"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, &ErrorResponse{
				Code:    "SchemaViolation",
				Message: "limit must be a non-negative integer",
			})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, &ErrorResponse{
				Code:    "SchemaViolation",
				Message: "offset must be a non-negative integer",
			})
			return
		}
		filters.Offset = n
	}

	result, err := s.jobs.ListJobs(c.Request.Context(), tenantOf(c), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := JobListResponse{
		Jobs:       make([]JobResponse, 0, len(result.Jobs)),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	}
	for _, job := range result.Jobs {
		resp.Jobs = append(resp.Jobs, jobToResponse(job))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) cancelJobHandler(c *gin.Context) {
	job, err := s.jobs.Cancel(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := CancelResponse{JobID: job.ID, Status: string(job.Status)}
	switch job.Status {
	case entjob.StatusCancelled:
		resp.Message = "job cancelled"
	case entjob.StatusRunning:
		resp.Message = "cancellation requested, job will stop at the next checkpoint"
	default:
		resp.Message = "job already finished"
	}
	c.JSON(http.StatusAccepted, resp)
}
