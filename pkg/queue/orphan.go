package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/agentinvocation"
	entjob "github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for running jobs whose
// heartbeat went stale. All pods run this independently; the
// operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans fails running jobs with stale heartbeats.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			entjob.StatusEQ(entjob.StatusRunning),
			entjob.LastHeartbeatAtNotNil(),
			entjob.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		if err := p.recoverOrphanedJob(ctx, job); err != nil {
			slog.Error("Failed to recover orphaned job", "job_id", job.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob fails a single orphaned job. No resume: the
// partially run plan is not trustworthy after a pod death.
func (p *WorkerPool) recoverOrphanedJob(ctx context.Context, job *ent.Job) error {
	log := slog.With("job_id", job.ID, "old_pod_id", job.PodID)

	now := time.Now()
	lastHeartbeat := "unknown"
	if job.LastHeartbeatAt != nil {
		lastHeartbeat = job.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if job.PodID != nil {
		podID = *job.PodID
	}

	err := job.Update().
		SetStatus(entjob.StatusFailed).
		SetErrorCode("Internal").
		SetErrorMessage(fmt.Sprintf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		SetFinishedAt(now).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job as failed: %w", err)
	}

	// Close out any invocations left open by the dead pod.
	_, _ = p.client.AgentInvocation.Update().
		Where(
			agentinvocation.JobID(job.ID),
			agentinvocation.StatusIn(agentinvocation.StatusPending, agentinvocation.StatusRunning),
		).
		SetStatus(agentinvocation.StatusError).
		SetErrorCode("Internal").
		SetErrorMessage("pod died mid-run").
		SetFinishedAt(now).
		Save(ctx)

	if p.sink != nil {
		evt := events.NewStatusEvent(job.TenantID, job.ID, job.UserID, config.EventFailed, "job failed: Internal")
		if err := p.sink.Publish(ctx, &evt); err != nil {
			slog.Warn("Failed to publish orphan failure event", "job_id", job.ID, "error", err)
		}
	}

	log.Warn("Orphaned job failed", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans fails jobs this pod owned when it previously
// crashed. Called once during startup, before workers begin claiming.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			entjob.StatusEQ(entjob.StatusRunning),
			entjob.PodID(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "pod_id", podID, "count", len(orphans))

	now := time.Now()
	for _, job := range orphans {
		err := job.Update().
			SetStatus(entjob.StatusFailed).
			SetErrorCode("Internal").
			SetErrorMessage(fmt.Sprintf("orphaned: pod %s restarted while job was running", podID)).
			SetFinishedAt(now).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan", "job_id", job.ID, "error", err)
			continue
		}

		_, _ = client.AgentInvocation.Update().
			Where(
				agentinvocation.JobID(job.ID),
				agentinvocation.StatusIn(agentinvocation.StatusPending, agentinvocation.StatusRunning),
			).
			SetStatus(agentinvocation.StatusError).
			SetErrorCode("Internal").
			SetErrorMessage("pod restarted mid-run").
			SetFinishedAt(now).
			Save(ctx)

		slog.Info("Startup orphan recovered", "job_id", job.ID)
	}

	return nil
}
