package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/siftstack/sift/ent"
	entjob "github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// JobRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// EventSink receives job status events.
type EventSink interface {
	Publish(ctx context.Context, evt *events.StatusEvent) error
}

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	sink     EventSink
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker. sink may be nil (streaming
// disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, pool JobRegistry, sink EventSink) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		sink:         sink,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its
// current job. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and runs it to a
// terminal state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort global capacity check; racy across workers but
	// bounded by WorkerCount and smoothed by poll jitter.
	running, err := w.client.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking running jobs: %w", err)
	}
	if running >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "tenant_id", job.TenantID, "worker_id", w.id)
	log.Info("Job claimed", "class", job.Class, "domain_id", job.DomainID)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	w.pool.RegisterJob(job.ID, cancelJob)
	defer w.pool.UnregisterJob(job.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID)

	result := w.executor.Execute(jobCtx, job)
	if result == nil {
		switch {
		case errors.Is(jobCtx.Err(), context.Canceled):
			result = &ExecutionResult{Status: entjob.StatusCancelled, ErrorCode: "Cancelled", Error: context.Canceled}
		default:
			result = &ExecutionResult{
				Status:    entjob.StatusFailed,
				ErrorCode: "Internal",
				Error:     fmt.Errorf("executor returned nil result"),
			}
		}
	}

	cancelHeartbeat()

	// Terminal write uses a background context; the job context may
	// already be cancelled or expired.
	if err := w.writeTerminalStatus(context.Background(), job, result); err != nil {
		log.Error("Failed to write terminal job status", "error", err)
		return err
	}
	w.publishTerminalEvent(context.Background(), job, result)

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "status", result.Status)
	return nil
}

// claimNextJob atomically claims the oldest queued job using
// FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusQueued)).
		Order(ent.Asc(entjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query queued job: %w", err)
	}

	now := time.Now()
	job, err = job.Update().
		SetStatus(entjob.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return job, nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan
// detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// writeTerminalStatus records the job's terminal state. Terminal
// states are sticky: a job another path already finished (an
// idempotent cancel racing completion) is left alone.
func (w *Worker) writeTerminalStatus(ctx context.Context, job *ent.Job, result *ExecutionResult) error {
	update := w.client.Job.Update().
		Where(
			entjob.ID(job.ID),
			entjob.StatusEQ(entjob.StatusRunning),
		).
		SetStatus(result.Status).
		SetFinishedAt(time.Now())
	if result.ErrorCode != "" {
		update.SetErrorCode(result.ErrorCode)
	}
	if result.Error != nil {
		update.SetErrorMessage(result.Error.Error())
	}
	_, err := update.Save(ctx)
	return err
}

// publishTerminalEvent emits the job's terminal status event.
// Best-effort; subscribers that miss it reconcile by polling the job.
func (w *Worker) publishTerminalEvent(ctx context.Context, job *ent.Job, result *ExecutionResult) {
	if w.sink == nil {
		return
	}
	var kind config.EventKind
	message := "job " + string(result.Status)
	switch result.Status {
	case entjob.StatusSucceeded:
		kind = config.EventComplete
	case entjob.StatusCancelled:
		kind = config.EventCancelled
	default:
		kind = config.EventFailed
		if result.Error != nil {
			message = fmt.Sprintf("job failed: %s", result.ErrorCode)
		}
	}
	evt := events.NewStatusEvent(job.TenantID, job.ID, job.UserID, kind, message)
	if err := w.sink.Publish(ctx, &evt); err != nil {
		slog.Warn("Failed to publish terminal event", "job_id", job.ID, "kind", kind, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
