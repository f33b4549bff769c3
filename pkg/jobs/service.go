// Package jobs manages the job lifecycle outside the worker pool:
// submission with backpressure, tenant-scoped retrieval, and
// cancellation. Execution itself lives in pkg/queue.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/agentinvocation"
	entjob "github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/queue"
)

// ErrNotFound is returned when a job does not exist in the caller's
// tenant. Cross-tenant lookups are indistinguishable from absence.
var ErrNotFound = errors.New("job not found")

// Canceller delivers cooperative cancellation to a running job.
// Satisfied by *queue.WorkerPool.
type Canceller interface {
	CancelJob(jobID string) bool
}

// EventSink receives job lifecycle events.
type EventSink interface {
	Publish(ctx context.Context, evt *events.StatusEvent) error
}

// SubmitInput is one job submission.
type SubmitInput struct {
	TenantID string
	UserID   string
	DomainID string
	Class    config.AgentClass
	Input    models.JobInput
}

// ListFilters narrows a tenant's job listing.
type ListFilters struct {
	Status   string
	DomainID string
	Class    string
	Limit    int
	Offset   int
}

// ListResult is one page of a tenant's jobs.
type ListResult struct {
	Jobs       []*ent.Job
	TotalCount int
	Limit      int
	Offset     int
}

// Service manages job submission, retrieval, and cancellation.
type Service struct {
	client *ent.Client
	cfg    *config.QueueConfig
	sink   EventSink
	pool   Canceller
}

// NewService creates a new job Service. sink and pool may be nil
// (streaming and running-job cancellation disabled).
func NewService(client *ent.Client, cfg *config.QueueConfig, sink EventSink, pool Canceller) *Service {
	if client == nil {
		panic("NewService: client must not be nil")
	}
	if cfg == nil {
		panic("NewService: cfg must not be nil")
	}
	return &Service{client: client, cfg: cfg, sink: sink, pool: pool}
}

// Submit validates and enqueues a job. The queue high-water mark
// applies backpressure before anything is written.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*ent.Job, error) {
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	depth, err := s.client.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusQueued)).
		Count(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to check queue depth: %w", err)
	}
	if depth >= s.cfg.QueueHighWaterMark {
		return nil, fmt.Errorf("%w: %d jobs queued", queue.ErrAtCapacity, depth)
	}

	input := in.Input
	job, err := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetUserID(in.UserID).
		SetClass(entjob.Class(in.Class)).
		SetDomainID(in.DomainID).
		SetInput(&input).
		SetStatus(entjob.StatusQueued).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	slog.Info("Job submitted",
		"job_id", job.ID,
		"tenant_id", job.TenantID,
		"class", job.Class,
		"domain_id", job.DomainID,
	)
	return job, nil
}

func validateSubmit(in SubmitInput) error {
	if in.TenantID == "" {
		return config.NewValidationError("job", "", "tenant_id", config.ErrMissingRequiredField)
	}
	if in.UserID == "" {
		return config.NewValidationError("job", "", "user_id", config.ErrMissingRequiredField)
	}
	if in.DomainID == "" {
		return config.NewValidationError("job", "", "domain_id", config.ErrMissingRequiredField)
	}
	if !in.Class.IsValid() {
		return config.NewValidationError("job", "", "class",
			fmt.Errorf("%w: %q", config.ErrInvalidValue, in.Class))
	}
	switch in.Class {
	case config.AgentClassQuery:
		if in.Input.Question == "" {
			return config.NewValidationError("job", "", "question", config.ErrMissingRequiredField)
		}
	default:
		if in.Input.Text == "" {
			return config.NewValidationError("job", "", "text", config.ErrMissingRequiredField)
		}
	}
	return nil
}

// GetJob retrieves a tenant's job with its artifact and invocations.
func (s *Service) GetJob(ctx context.Context, tenantID, jobID string) (*ent.Job, error) {
	job, err := s.client.Job.Query().
		Where(
			entjob.ID(jobID),
			entjob.TenantID(tenantID),
		).
		WithArtifact().
		WithInvocations(func(q *ent.AgentInvocationQuery) {
			q.Order(ent.Asc(agentinvocation.FieldLevel), ent.Asc(agentinvocation.FieldAgentKey))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs lists a tenant's jobs, newest first.
func (s *Service) ListJobs(ctx context.Context, tenantID string, filters ListFilters) (*ListResult, error) {
	query := s.client.Job.Query().
		Where(entjob.TenantID(tenantID))

	if filters.Status != "" {
		query = query.Where(entjob.StatusEQ(entjob.Status(filters.Status)))
	}
	if filters.DomainID != "" {
		query = query.Where(entjob.DomainID(filters.DomainID))
	}
	if filters.Class != "" {
		query = query.Where(entjob.ClassEQ(entjob.Class(filters.Class)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	jobs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &ListResult{Jobs: jobs, TotalCount: totalCount, Limit: limit, Offset: offset}, nil
}

// Cancel requests cancellation of a tenant's job. Cancelling a job that
// is already terminal is a no-op and reports the terminal state. A
// queued job is cancelled directly; a running job is signalled through
// the pool and reaches its terminal state when the worker observes the
// cancellation.
func (s *Service) Cancel(ctx context.Context, tenantID, jobID string) (*ent.Job, error) {
	job, err := s.client.Job.Query().
		Where(
			entjob.ID(jobID),
			entjob.TenantID(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	switch job.Status {
	case entjob.StatusSucceeded, entjob.StatusFailed, entjob.StatusCancelled:
		// Idempotent.
		return job, nil

	case entjob.StatusQueued:
		return s.cancelQueued(ctx, job)

	default:
		if s.pool != nil && s.pool.CancelJob(job.ID) {
			slog.Info("Cancellation signalled to running job", "job_id", job.ID)
		} else {
			// Running on another replica; that pod's worker owns the
			// terminal state and this request cannot reach it.
			slog.Warn("Job running on another pod, cancellation not delivered", "job_id", job.ID)
		}
		return job, nil
	}
}

// cancelQueued flips a queued job to cancelled. The status guard loses
// gracefully against a worker claiming the job at the same moment.
func (s *Service) cancelQueued(ctx context.Context, job *ent.Job) (*ent.Job, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := s.client.Job.Update().
		Where(
			entjob.ID(job.ID),
			entjob.StatusEQ(entjob.StatusQueued),
		).
		SetStatus(entjob.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel queued job: %w", err)
	}

	if count == 0 {
		// A worker claimed it first; retry down the running path.
		return s.Cancel(ctx, job.TenantID, job.ID)
	}

	if s.sink != nil {
		evt := events.NewStatusEvent(job.TenantID, job.ID, job.UserID, config.EventCancelled, "job cancelled")
		if err := s.sink.Publish(writeCtx, &evt); err != nil {
			slog.Warn("Failed to publish cancellation event", "job_id", job.ID, "error", err)
		}
	}

	job, err = s.client.Job.Get(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch cancelled job: %w", err)
	}
	return job, nil
}
