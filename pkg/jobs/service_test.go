package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/ent"
	entjob "github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/queue"
	testdb "github.com/siftstack/sift/test/database"
)

type stubCanceller struct {
	mu       sync.Mutex
	found    bool
	received []string
}

func (c *stubCanceller) CancelJob(jobID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.received = append(c.received, jobID)
	return c.found
}

type captureSink struct {
	mu     sync.Mutex
	events []events.StatusEvent
}

func (s *captureSink) Publish(_ context.Context, evt *events.StatusEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *evt)
	return nil
}

type fixture struct {
	client *ent.Client
	sink   *captureSink
	pool   *stubCanceller
	svc    *Service
}

func setupService(t *testing.T) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	f := &fixture{
		client: client,
		sink:   &captureSink{},
		pool:   &stubCanceller{},
	}
	f.svc = NewService(client, config.DefaultQueueConfig(), f.sink, f.pool)
	return f
}

func ingestInput() SubmitInput {
	return SubmitInput{
		TenantID: "tenant-1",
		UserID:   "alice",
		DomainID: "flood-watch",
		Class:    config.AgentClassIngest,
		Input:    models.JobInput{Text: "River level rising near the old bridge."},
	}
}

func TestSubmitCreatesQueuedJob(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	job, err := f.svc.Submit(ctx, ingestInput())
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusQueued, job.Status)
	assert.Equal(t, "tenant-1", job.TenantID)
	assert.Equal(t, entjob.ClassIngest, job.Class)
	require.NotNil(t, job.Input)
	assert.Equal(t, "River level rising near the old bridge.", job.Input.Text)
	assert.Nil(t, job.PlanSnapshot, "plan is captured at claim time, not submission")
}

func TestSubmitValidation(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"missing tenant", func(in *SubmitInput) { in.TenantID = "" }},
		{"missing user", func(in *SubmitInput) { in.UserID = "" }},
		{"missing domain", func(in *SubmitInput) { in.DomainID = "" }},
		{"invalid class", func(in *SubmitInput) { in.Class = "triage" }},
		{"ingest without text", func(in *SubmitInput) { in.Input.Text = "" }},
		{"query without question", func(in *SubmitInput) {
			in.Class = config.AgentClassQuery
			in.Input = models.JobInput{}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ingestInput()
			tt.mutate(&in)
			_, err := f.svc.Submit(ctx, in)
			require.Error(t, err)
			var ve *config.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestSubmitAtCapacity(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	cfg := config.DefaultQueueConfig()
	cfg.QueueHighWaterMark = 2
	svc := NewService(f.client, cfg, nil, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Submit(ctx, ingestInput())
		require.NoError(t, err)
	}

	_, err := svc.Submit(ctx, ingestInput())
	assert.ErrorIs(t, err, queue.ErrAtCapacity)

	// Claimed jobs free queue slots.
	_, err = f.client.Job.Update().
		Where(entjob.StatusEQ(entjob.StatusQueued)).
		SetStatus(entjob.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, ingestInput())
	assert.NoError(t, err, "running jobs do not count against the high-water mark")
}

func TestGetJob(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	job, err := f.svc.Submit(ctx, ingestInput())
	require.NoError(t, err)

	got, err := f.svc.GetJob(ctx, "tenant-1", job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)

	// Cross-tenant lookup is indistinguishable from absence.
	_, err = f.svc.GetJob(ctx, "tenant-2", job.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.GetJob(ctx, "tenant-1", uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetJobLoadsArtifact(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	job, err := f.svc.Submit(ctx, ingestInput())
	require.NoError(t, err)
	job, err = job.Update().
		SetStatus(entjob.StatusSucceeded).
		SetFinishedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.client.ResultArtifact.Create().
		SetID(uuid.New().String()).
		SetJobID(job.ID).
		SetTenantID("tenant-1").
		SetClass("ingest").
		SetFields(map[string]any{"category": "flood"}).
		SetAgentStatuses(map[string]models.AgentStatus{"extract": {Status: "ok"}}).
		Save(ctx)
	require.NoError(t, err)

	got, err := f.svc.GetJob(ctx, "tenant-1", job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Edges.Artifact)
	assert.Equal(t, "flood", got.Edges.Artifact.Fields["category"])
}

func TestListJobs(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.Submit(ctx, ingestInput())
		require.NoError(t, err)
	}
	queryIn := ingestInput()
	queryIn.Class = config.AgentClassQuery
	queryIn.Input = models.JobInput{Question: "Where is the flooding?"}
	_, err := f.svc.Submit(ctx, queryIn)
	require.NoError(t, err)

	all, err := f.svc.ListJobs(ctx, "tenant-1", ListFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.TotalCount)

	queries, err := f.svc.ListJobs(ctx, "tenant-1", ListFilters{Class: "query"})
	require.NoError(t, err)
	assert.Equal(t, 1, queries.TotalCount)

	paged, err := f.svc.ListJobs(ctx, "tenant-1", ListFilters{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, paged.Jobs, 2)
	assert.Equal(t, 4, paged.TotalCount)

	other, err := f.svc.ListJobs(ctx, "tenant-2", ListFilters{})
	require.NoError(t, err)
	assert.Zero(t, other.TotalCount)
}

func TestCancelQueuedJob(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	job, err := f.svc.Submit(ctx, ingestInput())
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(ctx, "tenant-1", job.ID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.FinishedAt)

	// The terminal event comes from this path, not a worker.
	require.Len(t, f.sink.events, 1)
	assert.Equal(t, config.EventCancelled, f.sink.events[0].Kind)
	assert.Equal(t, job.ID, f.sink.events[0].JobID)

	// The pool was never consulted.
	assert.Empty(t, f.pool.received)
}

func TestCancelTerminalIsIdempotent(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	job, err := f.svc.Submit(ctx, ingestInput())
	require.NoError(t, err)
	job, err = job.Update().
		SetStatus(entjob.StatusSucceeded).
		SetFinishedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	got, err := f.svc.Cancel(ctx, "tenant-1", job.ID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusSucceeded, got.Status, "terminal states are sticky")
	assert.Empty(t, f.sink.events, "no event for a no-op cancel")
}

func TestCancelRunningJobSignalsPool(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	f.pool.found = true

	job, err := f.svc.Submit(ctx, ingestInput())
	require.NoError(t, err)
	job, err = job.Update().
		SetStatus(entjob.StatusRunning).
		SetPodID("pod-1").
		Save(ctx)
	require.NoError(t, err)

	got, err := f.svc.Cancel(ctx, "tenant-1", job.ID)
	require.NoError(t, err)

	// Cooperative: the worker writes the terminal state later.
	assert.Equal(t, entjob.StatusRunning, got.Status)
	assert.Equal(t, []string{job.ID}, f.pool.received)
	assert.Empty(t, f.sink.events, "terminal event is the worker's to publish")
}

func TestCancelUnknownJob(t *testing.T) {
	f := setupService(t)

	_, err := f.svc.Cancel(context.Background(), "tenant-1", uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}
