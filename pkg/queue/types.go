// Package queue provides the job queue: per-replica worker pools that
// claim queued jobs with FOR UPDATE SKIP LOCKED, the executor that
// drives a claimed job through its plan levels to a terminal state,
// and orphan recovery for jobs whose pod died mid-run.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/siftstack/sift/ent"
	entjob "github.com/siftstack/sift/ent/job"
)

var (
	// ErrNoJobsAvailable indicates an empty queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit is reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor drives one claimed job to a terminal state. The executor
// writes invocations and the artifact progressively; the worker only
// handles claiming, heartbeat, and the terminal status write.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.Job) *ExecutionResult
}

// ExecutionResult is the terminal state of one job run.
type ExecutionResult struct {
	Status    entjob.Status
	ErrorCode string
	Error     error
}

// PoolHealth is the pool's health snapshot, served by the API.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
