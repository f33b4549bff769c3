package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/agentinvocation"
	entjob "github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
	testdb "github.com/siftstack/sift/test/database"
)

// createTestJob creates a queued ingest job.
func createTestJob(ctx context.Context, t *testing.T, client *ent.Client) *ent.Job {
	t.Helper()
	job, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetUserID("alice").
		SetClass(entjob.ClassIngest).
		SetDomainID("flood-watch").
		SetInput(&models.JobInput{Text: "River level rising near the old bridge."}).
		SetStatus(entjob.StatusQueued).
		Save(ctx)
	require.NoError(t, err)
	return job
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentJobs:       10,
		QueueHighWaterMark:      100,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		JobTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       30 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically
// claim a queued job, oldest first.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	job := createTestJob(ctx, t, client)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the queued job")
	assert.Equal(t, job.ID, claimed.ID)
	assert.Equal(t, entjob.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoJobsAvailable
	claimed2, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Nil(t, claimed2, "no more queued jobs should be available")
}

// TestConcurrentClaimsDifferentJobs tests that concurrent workers claim
// different jobs.
func TestConcurrentClaimsDifferentJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		j := createTestJob(ctx, t, client)
		jobIDs[j.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil)
			job, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if job != nil {
				mu.Lock()
				claimed = append(claimed, job.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d got nil job without error", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, claimed, 5, "all 5 jobs should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in original set", id)
	}
}

// TestOrphanRecovery tests that jobs with stale heartbeats are failed
// and their open invocations closed.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	staleBeat := time.Now().Add(-10 * time.Minute)
	job, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetUserID("alice").
		SetClass(entjob.ClassIngest).
		SetDomainID("flood-watch").
		SetInput(&models.JobInput{Text: "orphan test data"}).
		SetStatus(entjob.StatusRunning).
		SetPodID("crashed-pod").
		SetLastHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	// An invocation left open by the dead pod.
	_, err = client.AgentInvocation.Create().
		SetID(uuid.New().String()).
		SetJobID(job.ID).
		SetTenantID("tenant-1").
		SetAgentKey("extract").
		SetLevel(0).
		SetStatus(agentinvocation.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	err = pool.detectAndRecoverOrphans(ctx)
	require.NoError(t, err)

	updated, err := client.Job.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorCode)
	assert.Equal(t, "Internal", *updated.ErrorCode)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "orphaned")
	assert.Contains(t, *updated.ErrorMessage, "crashed-pod")

	inv, err := client.AgentInvocation.Query().
		Where(agentinvocation.JobID(job.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentinvocation.StatusError, inv.Status)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestStartupOrphanCleanup tests the one-time startup orphan cleanup.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	for i := 0; i < 3; i++ {
		_, err := client.Job.Create().
			SetID(uuid.New().String()).
			SetTenantID("tenant-1").
			SetUserID("alice").
			SetClass(entjob.ClassIngest).
			SetDomainID("flood-watch").
			SetInput(&models.JobInput{Text: "startup orphan data"}).
			SetStatus(entjob.StatusRunning).
			SetPodID(podID).
			Save(ctx)
		require.NoError(t, err)
	}

	// A job owned by a different pod must not be touched.
	otherJob, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetUserID("alice").
		SetClass(entjob.ClassIngest).
		SetDomainID("flood-watch").
		SetInput(&models.JobInput{Text: "other pod data"}).
		SetStatus(entjob.StatusRunning).
		SetPodID("other-pod").
		Save(ctx)
	require.NoError(t, err)

	err = CleanupStartupOrphans(ctx, client, podID)
	require.NoError(t, err)

	jobs, err := client.Job.Query().
		Where(entjob.PodID(podID)).
		All(ctx)
	require.NoError(t, err)
	for _, j := range jobs {
		assert.Equal(t, entjob.StatusFailed, j.Status, "job %s should be failed", j.ID)
		require.NotNil(t, j.ErrorMessage)
		assert.Contains(t, *j.ErrorMessage, "restarted")
	}

	other, err := client.Job.Get(ctx, otherJob.ID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusRunning, other.Status, "other pod's job should be untouched")
}

// mockExecutor counts executions and tracks which jobs were processed.
type mockExecutor struct {
	processed  atomic.Int64
	jobs       sync.Map // string -> struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, job *ent.Job) *ExecutionResult {
	m.processed.Add(1)
	if job != nil {
		m.jobs.Store(job.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{Status: entjob.StatusCancelled, Error: ctx.Err()}
		}
	} else {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{Status: entjob.StatusCancelled, Error: ctx.Err()}
		}
	}

	return &ExecutionResult{Status: entjob.StatusSucceeded}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestJob(ctx, t, client)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for jobs to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	jobs, err := client.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusSucceeded)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 3, "all 3 jobs should succeed")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestJob(ctx, t, client)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentJobs = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for jobs in progress",
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentJobs) })

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentJobs), executor.inProgress.Load(),
		"should have exactly MaxConcurrentJobs in progress")

	dbRunning, err := client.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusRunning)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentJobs, dbRunning, "DB should show MaxConcurrentJobs running")

	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for first batch to complete",
		func() bool { return executor.inProgress.Load() == 0 })

	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all jobs to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	succeeded, err := client.Job.Query().
		Where(entjob.StatusEQ(entjob.StatusSucceeded)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, succeeded, "all 5 jobs should succeed")
}

// TestHeartbeatUpdates tests that heartbeats refresh last_heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	job := createTestJob(ctx, t, client)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for job to be claimed",
		func() bool {
			j, err := client.Job.Get(ctx, job.ID)
			require.NoError(t, err)
			return j.Status == entjob.StatusRunning && j.LastHeartbeatAt != nil
		})

	j1, err := client.Job.Get(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, j1.LastHeartbeatAt)
	initialBeat := *j1.LastHeartbeatAt

	time.Sleep(250 * time.Millisecond)

	j2, err := client.Job.Get(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, entjob.StatusRunning, j2.Status, "job should still be running")
	require.NotNil(t, j2.LastHeartbeatAt)
	assert.True(t, j2.LastHeartbeatAt.After(initialBeat), "last_heartbeat_at should be refreshed")

	close(releaseCh)
	pool.Stop()
}

// TestTerminalStatusIsSticky tests that a terminal write does not
// overwrite a job another path already finished.
func TestTerminalStatusIsSticky(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	job := createTestJob(ctx, t, client)
	job, err := job.Update().
		SetStatus(entjob.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker", "test-pod", client, cfg, nil, nil, nil)

	err = w.writeTerminalStatus(ctx, job, &ExecutionResult{Status: entjob.StatusSucceeded})
	require.NoError(t, err)

	updated, err := client.Job.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusCancelled, updated.Status, "cancelled must stick")
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.Job) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult does
// not panic and is translated into the correct terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks job failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		job := createTestJob(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for job to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.Job.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, entjob.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorCode)
		assert.Equal(t, "Internal", *updated.ErrorCode)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result with cancellation marks job cancelled", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		job := createTestJob(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.JobTimeout = 30 * time.Second

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for job to be claimed",
			func() bool {
				j, err := client.Job.Get(ctx, job.ID)
				require.NoError(t, err)
				return j.Status == entjob.StatusRunning
			})

		cancelled := pool.CancelJob(job.ID)
		require.True(t, cancelled, "CancelJob should find the active job")

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for job to reach terminal status",
			func() bool {
				j, err := client.Job.Get(ctx, job.ID)
				require.NoError(t, err)
				return j.Status == entjob.StatusCancelled
			})

		pool.Stop()

		updated, err := client.Job.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, entjob.StatusCancelled, updated.Status)
	})
}
