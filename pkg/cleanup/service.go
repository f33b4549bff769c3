// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/siftstack/sift/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes event rows for terminal jobs past the event grace period
//   - Purges terminal jobs (with invocations and artifacts) past the job TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	db     *sql.DB

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, db *sql.DB) *Service {
	return &Service{
		config: cfg,
		db:     db,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_ttl", s.config.JobTTL,
		"event_grace_period", s.config.EventGracePeriod,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupStaleEvents(ctx)
	s.purgeExpiredJobs(ctx)
}

// cleanupStaleEvents removes event rows once a job has been terminal
// for longer than the grace period. The grace period keeps catchup
// working for clients that reconnect shortly after completion; the job
// row and its artifact remain the durable record until the job TTL.
func (s *Service) cleanupStaleEvents(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.EventGracePeriod)

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM events e
		 USING jobs j
		 WHERE e.job_id = j.job_id
		   AND j.status IN ('succeeded', 'failed', 'cancelled')
		   AND j.finished_at IS NOT NULL
		   AND j.finished_at < $1`,
		cutoff,
	)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count, _ := res.RowsAffected(); count > 0 {
		slog.Info("Retention: cleaned up stale events", "count", count)
	}
}

// purgeExpiredJobs deletes terminal jobs past the job TTL. Invocations,
// artifacts, and any remaining events go with them via FK cascade.
func (s *Service) purgeExpiredJobs(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.JobTTL)

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM jobs
		 WHERE status IN ('succeeded', 'failed', 'cancelled')
		   AND finished_at IS NOT NULL
		   AND finished_at < $1`,
		cutoff,
	)
	if err != nil {
		slog.Error("Retention: job purge failed", "error", err)
		return
	}
	if count, _ := res.RowsAffected(); count > 0 {
		slog.Info("Retention: purged expired jobs", "count", count)
	}
}
