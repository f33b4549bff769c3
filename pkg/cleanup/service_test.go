package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/database"
	"github.com/siftstack/sift/pkg/models"
	testdb "github.com/siftstack/sift/test/database"
)

func retentionService(client *database.Client) *Service {
	return NewService(&config.RetentionConfig{
		JobTTL:           24 * time.Hour,
		EventGracePeriod: 1 * time.Hour,
		CleanupInterval:  15 * time.Minute,
	}, client.DB())
}

func createJob(t *testing.T, client *database.Client, status job.Status, finishedAt time.Time) *ent.Job {
	t.Helper()
	ctx := context.Background()

	builder := client.Job.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetUserID("alice").
		SetClass(job.ClassIngest).
		SetDomainID("flood-watch").
		SetInput(&models.JobInput{Text: "river level rising"}).
		SetStatus(status)
	if !finishedAt.IsZero() {
		builder = builder.SetFinishedAt(finishedAt)
	}

	j, err := builder.Save(ctx)
	require.NoError(t, err)
	return j
}

func insertEvent(t *testing.T, client *database.Client, jobID string, sequence int64) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(),
		`INSERT INTO events (tenant_id, job_id, user_id, sequence, kind, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		"tenant-1", jobID, "alice", sequence, "complete", "done", time.Now())
	require.NoError(t, err)
}

func countEvents(t *testing.T, client *database.Client, jobID string) int {
	t.Helper()
	var count int
	err := client.DB().QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM events WHERE job_id = $1`, jobID).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestService_PurgesExpiredTerminalJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	expired := createJob(t, client, job.StatusSucceeded, time.Now().Add(-48*time.Hour))
	recent := createJob(t, client, job.StatusSucceeded, time.Now().Add(-10*time.Minute))
	running := createJob(t, client, job.StatusRunning, time.Time{})

	retentionService(client).runAll(ctx)

	_, err := client.Job.Get(ctx, expired.ID)
	assert.True(t, ent.IsNotFound(err))

	_, err = client.Job.Get(ctx, recent.ID)
	assert.NoError(t, err)
	_, err = client.Job.Get(ctx, running.ID)
	assert.NoError(t, err)
}

func TestService_CleansEventsAfterGracePeriod(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Terminal for 2h: past the 1h grace period but inside the job TTL.
	stale := createJob(t, client, job.StatusFailed, time.Now().Add(-2*time.Hour))
	insertEvent(t, client, stale.ID, 1)
	insertEvent(t, client, stale.ID, 2)

	// Terminal 10 minutes ago: events still needed for catchup.
	fresh := createJob(t, client, job.StatusSucceeded, time.Now().Add(-10*time.Minute))
	insertEvent(t, client, fresh.ID, 1)

	retentionService(client).runAll(ctx)

	assert.Zero(t, countEvents(t, client, stale.ID))
	assert.Equal(t, 1, countEvents(t, client, fresh.ID))

	// The job row outlives its events until the TTL.
	_, err := client.Job.Get(ctx, stale.ID)
	assert.NoError(t, err)
}

func TestService_LeavesRunningJobEventsAlone(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	running := createJob(t, client, job.StatusRunning, time.Time{})
	insertEvent(t, client, running.ID, 1)

	retentionService(client).runAll(ctx)

	assert.Equal(t, 1, countEvents(t, client, running.ID))
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := retentionService(client)
	svc.Start(context.Background())
	svc.Stop()
}
