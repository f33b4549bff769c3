package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/agentinvocation"
	entjob "github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/pkg/agent"
	"github.com/siftstack/sift/pkg/catalog"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
	"github.com/siftstack/sift/pkg/synthesis"
	testdb "github.com/siftstack/sift/test/database"
)

// testSnapshot is a two-level ingest plan: extract feeds assess.
func testSnapshot() *plan.Snapshot {
	return &plan.Snapshot{
		TenantID:        "tenant-1",
		DomainID:        "flood-watch",
		Class:           config.AgentClassIngest,
		PlaybookID:      "pb-1",
		PlaybookVersion: 1,
		Agents: []plan.AgentSpec{
			{
				Key:          "extract",
				Class:        config.AgentClassIngest,
				SystemPrompt: "Extract entities.",
				AllowedTools: []string{string(config.ToolLLM)},
				OutputSchema: map[string]string{"location": "string"},
				Version:      1,
			},
			{
				Key:              "assess",
				Class:            config.AgentClassIngest,
				SystemPrompt:     "Assess severity.",
				AllowedTools:     []string{string(config.ToolLLM)},
				OutputSchema:     map[string]string{"severity": "string"},
				DependencyParent: "extract",
				Version:          1,
			},
		},
		Edges: []models.GraphEdge{{From: "extract", To: "assess"}},
	}
}

type fakePlanSource struct {
	snap  *plan.Snapshot
	err   error
	calls int
}

func (f *fakePlanSource) GetPlan(_ context.Context, _, _ string, _ config.AgentClass) (*plan.Snapshot, error) {
	f.calls++
	return f.snap, f.err
}

// fakeRunner records requests and returns canned outcomes per agent key.
type fakeRunner struct {
	mu       sync.Mutex
	requests map[string]agent.Request
	outcomes map[string]agent.Outcome
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		requests: make(map[string]agent.Request),
		outcomes: make(map[string]agent.Outcome),
	}
}

func (f *fakeRunner) Run(_ context.Context, req agent.Request) agent.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[req.Spec.Key] = req
	if outcome, ok := f.outcomes[req.Spec.Key]; ok {
		return outcome
	}
	return agent.Outcome{
		AgentKey: req.Spec.Key,
		Status:   agent.StatusOK,
		Output:   map[string]any{"value": req.Spec.Key},
	}
}

type fakeSynth struct {
	artifact *synthesis.Artifact
	err      error
	outcomes []agent.Outcome
}

func (f *fakeSynth) Synthesize(_ context.Context, _ config.AgentClass, _ *plan.ExecutionPlan, outcomes []agent.Outcome) (*synthesis.Artifact, error) {
	f.outcomes = outcomes
	if f.err != nil {
		return nil, f.err
	}
	if f.artifact != nil {
		return f.artifact, nil
	}
	return &synthesis.Artifact{
		Fields:        map[string]any{"merged": true},
		AgentStatuses: map[string]models.AgentStatus{},
	}, nil
}

type fakeIndexer struct {
	mu       sync.Mutex
	tenantID string
	domainID string
	id       string
	content  string
	metadata map[string]string
	calls    int
}

func (f *fakeIndexer) Index(_ context.Context, tenantID, domainID, id, content string, metadata map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.tenantID = tenantID
	f.domainID = domainID
	f.id = id
	f.content = content
	f.metadata = metadata
	return nil
}

// captureSink records published event kinds in order.
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

func (s *captureSink) kinds() []config.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]config.EventKind, len(s.events))
	for i, e := range s.events {
		kinds[i] = e.Kind
	}
	return kinds
}

type executorFixture struct {
	client  *ent.Client
	plans   *fakePlanSource
	runner  *fakeRunner
	synth   *fakeSynth
	sink    *captureSink
	indexer *fakeIndexer
	exec    *Executor
}

func setupExecutor(t *testing.T) *executorFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	f := &executorFixture{
		client:  client,
		plans:   &fakePlanSource{snap: testSnapshot()},
		runner:  newFakeRunner(),
		synth:   &fakeSynth{},
		sink:    &captureSink{},
		indexer: &fakeIndexer{},
	}
	f.exec = NewExecutor(client, f.plans, f.runner, f.synth, f.sink, f.indexer)
	return f
}

func (f *executorFixture) createJob(t *testing.T, class entjob.Class, input *models.JobInput) *ent.Job {
	t.Helper()
	job, err := f.client.Job.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-1").
		SetUserID("alice").
		SetClass(class).
		SetDomainID("flood-watch").
		SetInput(input).
		SetStatus(entjob.StatusRunning).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestExecutorSuccess(t *testing.T) {
	f := setupExecutor(t)
	ctx := context.Background()
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "River rising fast."})

	result := f.exec.Execute(ctx, job)
	require.NotNil(t, result)
	assert.Equal(t, entjob.StatusSucceeded, result.Status)
	assert.Empty(t, result.ErrorCode)

	// Snapshot is frozen into the job.
	stored, err := f.client.Job.Get(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PlanSnapshot)
	assert.Equal(t, "pb-1", stored.PlanSnapshot.PlaybookID)

	// One invocation row per agent, terminal with output.
	invs, err := f.client.AgentInvocation.Query().
		Where(agentinvocation.JobID(job.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, invs, 2)
	byKey := map[string]*ent.AgentInvocation{}
	for _, inv := range invs {
		byKey[inv.AgentKey] = inv
	}
	assert.Equal(t, 0, byKey["extract"].Level)
	assert.Equal(t, 1, byKey["assess"].Level)
	for _, inv := range invs {
		assert.Equal(t, agentinvocation.StatusOk, inv.Status)
		assert.NotEmpty(t, inv.Output)
		assert.NotEmpty(t, inv.InputView)
		require.NotNil(t, inv.FinishedAt)
	}

	// The child saw its parent's output.
	assessReq := f.runner.requests["assess"]
	require.NotNil(t, assessReq.ParentOutput)
	assert.Equal(t, "extract", assessReq.ParentOutput["value"])

	// Artifact persisted.
	artifact, err := job.QueryArtifact().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, true, artifact.Fields["merged"])

	// Progress events in order.
	assert.Equal(t, []config.EventKind{
		config.EventPlanLoaded,
		config.EventValidating,
		config.EventSynthesizing,
	}, f.sink.kinds())
}

func TestExecutorReusesStoredSnapshot(t *testing.T) {
	f := setupExecutor(t)
	ctx := context.Background()
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "Already planned."})
	job, err := job.Update().SetPlanSnapshot(testSnapshot()).Save(ctx)
	require.NoError(t, err)

	result := f.exec.Execute(ctx, job)
	require.NotNil(t, result)
	assert.Equal(t, entjob.StatusSucceeded, result.Status)
	assert.Zero(t, f.plans.calls, "stored snapshot must not be recomputed")
}

func TestExecutorChildOfFailedParentRunsWithoutParentOutput(t *testing.T) {
	f := setupExecutor(t)
	ctx := context.Background()
	f.runner.outcomes["extract"] = agent.Outcome{
		AgentKey:     "extract",
		Status:       agent.StatusError,
		ErrorCode:    "ToolFailed",
		ErrorMessage: "tool failure",
	}
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "Partial run."})

	result := f.exec.Execute(ctx, job)
	require.NotNil(t, result)
	assert.Equal(t, entjob.StatusSucceeded, result.Status)

	// The child still ran, with no parent output.
	assessReq, ok := f.runner.requests["assess"]
	require.True(t, ok, "child of failed parent must still run")
	assert.Nil(t, assessReq.ParentOutput)

	// Failed parent's invocation records the error.
	inv, err := f.client.AgentInvocation.Query().
		Where(
			agentinvocation.JobID(job.ID),
			agentinvocation.AgentKey("extract"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentinvocation.StatusError, inv.Status)
	require.NotNil(t, inv.ErrorCode)
	assert.Equal(t, "ToolFailed", *inv.ErrorCode)
}

func TestExecutorNoViableAgents(t *testing.T) {
	f := setupExecutor(t)
	f.synth.err = synthesis.ErrNoViableAgents
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "All agents failed."})

	result := f.exec.Execute(context.Background(), job)
	require.NotNil(t, result)
	assert.Equal(t, entjob.StatusFailed, result.Status)
	assert.Equal(t, "NoViableAgents", result.ErrorCode)
}

func TestExecutorSynthesisRefused(t *testing.T) {
	f := setupExecutor(t)
	f.synth.err = synthesis.ErrSynthesisRefused
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "Nothing to merge."})

	result := f.exec.Execute(context.Background(), job)
	require.NotNil(t, result)
	assert.Equal(t, entjob.StatusFailed, result.Status)
	assert.Equal(t, "SynthesisRefused", result.ErrorCode)
}

func TestExecutorPlanCaptureFailure(t *testing.T) {
	f := setupExecutor(t)
	f.plans.snap = nil
	f.plans.err = catalog.ErrNotFound
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "No playbook."})

	result := f.exec.Execute(context.Background(), job)
	require.NotNil(t, result)
	assert.Equal(t, entjob.StatusFailed, result.Status)
	assert.Equal(t, "BadReference", result.ErrorCode)
}

// cancellingRunner cancels the job context while the first level runs.
type cancellingRunner struct {
	cancel context.CancelFunc
}

func (r *cancellingRunner) Run(_ context.Context, req agent.Request) agent.Outcome {
	r.cancel()
	return agent.Outcome{AgentKey: req.Spec.Key, Status: agent.StatusCancelled, ErrorCode: "Cancelled"}
}

func TestExecutorCancelledMidRun(t *testing.T) {
	f := setupExecutor(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := NewExecutor(f.client, f.plans, &cancellingRunner{cancel: cancel}, f.synth, f.sink, nil)
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "Cancelled mid-run."})

	result := exec.Execute(ctx, job)
	require.NotNil(t, result)
	assert.Equal(t, entjob.StatusCancelled, result.Status)
	assert.Equal(t, "Cancelled", result.ErrorCode)

	// All invocations end cancelled: the first level by its own
	// outcome, the second because it never ran.
	invs, err := f.client.AgentInvocation.Query().
		Where(agentinvocation.JobID(job.ID)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, invs, 2)
	for _, inv := range invs {
		assert.Equal(t, agentinvocation.StatusCancelled, inv.Status, "invocation %s", inv.AgentKey)
	}
}

func TestExecutorAlreadyCancelled(t *testing.T) {
	f := setupExecutor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "Cancelled before start."})

	result := f.exec.Execute(ctx, job)
	require.NotNil(t, result)
	assert.Equal(t, entjob.StatusCancelled, result.Status)

	// Nothing was scheduled.
	count, err := f.client.AgentInvocation.Query().
		Where(agentinvocation.JobID(job.ID)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecutorIndexesIngestArtifact(t *testing.T) {
	f := setupExecutor(t)
	f.synth.artifact = &synthesis.Artifact{
		Fields:        map[string]any{"category": "flood"},
		AgentStatuses: map[string]models.AgentStatus{},
	}
	job := f.createJob(t, entjob.ClassIngest, &models.JobInput{Text: "River rising fast."})

	result := f.exec.Execute(context.Background(), job)
	require.NotNil(t, result)
	require.Equal(t, entjob.StatusSucceeded, result.Status)

	assert.Equal(t, 1, f.indexer.calls)
	assert.Equal(t, "tenant-1", f.indexer.tenantID)
	assert.Equal(t, "flood-watch", f.indexer.domainID)
	assert.Equal(t, job.ID, f.indexer.id)
	assert.Equal(t, "River rising fast.", f.indexer.content)
	assert.Equal(t, job.ID, f.indexer.metadata["job_id"])
	assert.Equal(t, "flood", f.indexer.metadata["category"])
}

func TestExecutorDoesNotIndexQueryJobs(t *testing.T) {
	f := setupExecutor(t)
	snap := testSnapshot()
	snap.Class = config.AgentClassQuery
	f.plans.snap = snap
	job := f.createJob(t, entjob.ClassQuery, &models.JobInput{Question: "Where is the flooding?"})

	result := f.exec.Execute(context.Background(), job)
	require.NotNil(t, result)
	require.Equal(t, entjob.StatusSucceeded, result.Status)
	assert.Zero(t, f.indexer.calls, "query jobs must not be indexed")

	// The raw input agents receive is the question.
	assert.Equal(t, "Where is the flooding?", f.runner.requests["extract"].RawInput)
}

func TestJobRawInputFiltersSorted(t *testing.T) {
	job := &ent.Job{
		Class: entjob.ClassQuery,
		Input: &models.JobInput{
			Question: "Where is the flooding?",
			Filters: map[string]string{
				"severity": "high",
				"category": "flood",
				"district": "riverside",
			},
		},
	}

	want := "Where is the flooding?\nfilter category: flood\nfilter district: riverside\nfilter severity: high"
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, jobRawInput(job))
	}
}
