package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/siftstack/sift/ent"
	"github.com/siftstack/sift/ent/agentinvocation"
	entjob "github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/ent/resultartifact"
	"github.com/siftstack/sift/pkg/agent"
	"github.com/siftstack/sift/pkg/catalog"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/plan"
	"github.com/siftstack/sift/pkg/synthesis"
)

// PlanSource resolves plan snapshots. Satisfied by *catalog.PlanService.
type PlanSource interface {
	GetPlan(ctx context.Context, tenantID, domainID string, class config.AgentClass) (*plan.Snapshot, error)
}

// AgentRunner executes one agent invocation. Satisfied by *agent.Runtime.
type AgentRunner interface {
	Run(ctx context.Context, req agent.Request) agent.Outcome
}

// ResultSynthesizer builds the artifact from outcomes. Satisfied by
// *synthesis.Synthesizer.
type ResultSynthesizer interface {
	Synthesize(ctx context.Context, class config.AgentClass, eplan *plan.ExecutionPlan, outcomes []agent.Outcome) (*synthesis.Artifact, error)
}

// VectorIndexer feeds successful ingest artifacts into the search
// store. Satisfied by *tool.VectorStore. Optional.
type VectorIndexer interface {
	Index(ctx context.Context, tenantID, domainID, id, content string, metadata map[string]string) error
}

// Executor drives one claimed job through its plan: snapshot capture,
// per-level fan-out, invocation recording, validation, synthesis, and
// artifact persist. Agent failures stay local; the job outcome follows
// the partial-failure rules.
type Executor struct {
	client  *ent.Client
	plans   PlanSource
	runtime AgentRunner
	synth   ResultSynthesizer
	sink    EventSink
	vectors VectorIndexer
}

// NewExecutor creates a new Executor. vectors may be nil (search
// indexing disabled).
func NewExecutor(client *ent.Client, plans PlanSource, runtime AgentRunner, synth ResultSynthesizer, sink EventSink, vectors VectorIndexer) *Executor {
	if client == nil {
		panic("NewExecutor: client must not be nil")
	}
	if plans == nil {
		panic("NewExecutor: plans must not be nil")
	}
	if runtime == nil {
		panic("NewExecutor: runtime must not be nil")
	}
	if synth == nil {
		panic("NewExecutor: synth must not be nil")
	}
	return &Executor{
		client:  client,
		plans:   plans,
		runtime: runtime,
		synth:   synth,
		sink:    sink,
		vectors: vectors,
	}
}

// Execute runs the job to a terminal result. The worker owns the
// terminal status write; everything else is written here.
func (e *Executor) Execute(ctx context.Context, job *ent.Job) *ExecutionResult {
	log := slog.With("job_id", job.ID, "tenant_id", job.TenantID)

	if errors.Is(ctx.Err(), context.Canceled) {
		return &ExecutionResult{Status: entjob.StatusCancelled, ErrorCode: "Cancelled", Error: ctx.Err()}
	}

	snap, err := e.captureSnapshot(ctx, job)
	if err != nil {
		log.Error("Plan capture failed", "error", err)
		return &ExecutionResult{Status: entjob.StatusFailed, ErrorCode: planErrorCode(err), Error: err}
	}

	eplan, err := plan.Build(snap)
	if err != nil {
		log.Error("Plan build failed", "error", err)
		return &ExecutionResult{Status: entjob.StatusFailed, ErrorCode: "Internal", Error: err}
	}

	e.emit(ctx, job, config.EventPlanLoaded, "",
		fmt.Sprintf("plan loaded: %d levels, %d agents", len(eplan.Levels), eplan.AgentCount()))

	if err := e.createInvocations(ctx, job, eplan); err != nil {
		log.Error("Failed to create invocation records", "error", err)
		return &ExecutionResult{Status: entjob.StatusFailed, ErrorCode: "Internal", Error: err}
	}

	outcomes, cancelled := e.runLevels(ctx, job, eplan)
	if cancelled {
		log.Info("Job cancelled mid-run")
		return &ExecutionResult{Status: entjob.StatusCancelled, ErrorCode: "Cancelled", Error: context.Canceled}
	}

	e.emit(ctx, job, config.EventValidating, "", "validating agent outputs")
	if err := synthesis.Validate(outcomes); err != nil {
		log.Error("Cross-agent validation failed", "error", err)
		return &ExecutionResult{Status: entjob.StatusFailed, ErrorCode: "Internal", Error: err}
	}

	e.emit(ctx, job, config.EventSynthesizing, "", "synthesizing result")
	artifact, err := e.synth.Synthesize(ctx, config.AgentClass(job.Class), eplan, outcomes)
	if err != nil {
		log.Warn("Synthesis produced no artifact", "error", err)
		return &ExecutionResult{Status: entjob.StatusFailed, ErrorCode: synthesisErrorCode(err), Error: err}
	}

	if err := e.persistArtifact(ctx, job, artifact); err != nil {
		log.Error("Failed to persist artifact", "error", err)
		return &ExecutionResult{Status: entjob.StatusFailed, ErrorCode: "Internal", Error: err}
	}

	e.indexArtifact(ctx, job, artifact)

	return &ExecutionResult{Status: entjob.StatusSucceeded}
}

// captureSnapshot freezes the plan into the job on first execution.
func (e *Executor) captureSnapshot(ctx context.Context, job *ent.Job) (*plan.Snapshot, error) {
	if job.PlanSnapshot != nil {
		return job.PlanSnapshot, nil
	}
	snap, err := e.plans.GetPlan(ctx, job.TenantID, job.DomainID, config.AgentClass(job.Class))
	if err != nil {
		return nil, err
	}
	if err := e.client.Job.UpdateOneID(job.ID).
		SetPlanSnapshot(snap).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store plan snapshot: %w", err)
	}
	return snap, nil
}

func (e *Executor) createInvocations(ctx context.Context, job *ent.Job, eplan *plan.ExecutionPlan) error {
	builders := make([]*ent.AgentInvocationCreate, 0, eplan.AgentCount())
	for _, level := range eplan.Levels {
		for _, scheduled := range level.Agents {
			builders = append(builders, e.client.AgentInvocation.Create().
				SetID(uuid.New().String()).
				SetJobID(job.ID).
				SetTenantID(job.TenantID).
				SetAgentKey(scheduled.AgentKey).
				SetLevel(level.Index).
				SetStatus(agentinvocation.StatusPending))
		}
	}
	if _, err := e.client.AgentInvocation.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to create invocations: %w", err)
	}
	return nil
}

// runLevels fans each level out concurrently and joins before the
// next. A child of a failed parent still runs, with a nil parent
// output. Returns cancelled=true when the job context was cancelled.
func (e *Executor) runLevels(ctx context.Context, job *ent.Job, eplan *plan.ExecutionPlan) ([]agent.Outcome, bool) {
	jobDeadline, _ := ctx.Deadline()
	rawInput := jobRawInput(job)

	byKey := make(map[string]agent.Outcome, eplan.AgentCount())
	outcomes := make([]agent.Outcome, 0, eplan.AgentCount())

	for _, level := range eplan.Levels {
		if errors.Is(ctx.Err(), context.Canceled) {
			e.markRemainingCancelled(job.ID)
			return nil, true
		}

		var wg sync.WaitGroup
		var mu sync.Mutex
		for _, scheduled := range level.Agents {
			req := agent.Request{
				TenantID:    job.TenantID,
				UserID:      job.UserID,
				JobID:       job.ID,
				Spec:        scheduled.Spec,
				RawInput:    rawInput,
				JobDeadline: jobDeadline,
			}
			if scheduled.ParentKey != "" {
				if parent, ok := byKey[scheduled.ParentKey]; ok && parent.Status == agent.StatusOK {
					req.ParentOutput = parent.Output
				}
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				e.markInvocationRunning(ctx, job.ID, req)
				outcome := e.runtime.Run(ctx, req)
				e.recordInvocation(job.ID, outcome)
				mu.Lock()
				byKey[outcome.AgentKey] = outcome
				outcomes = append(outcomes, outcome)
				mu.Unlock()
			}()
		}
		wg.Wait()
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		e.markRemainingCancelled(job.ID)
		return nil, true
	}
	return outcomes, false
}

func (e *Executor) markInvocationRunning(ctx context.Context, jobID string, req agent.Request) {
	err := e.client.AgentInvocation.Update().
		Where(
			agentinvocation.JobID(jobID),
			agentinvocation.AgentKey(req.Spec.Key),
		).
		SetStatus(agentinvocation.StatusRunning).
		SetInputView(agent.BuildPrompt(req)).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to mark invocation running", "job_id", jobID, "agent", req.Spec.Key, "error", err)
	}
}

// recordInvocation writes an invocation's terminal state. Background
// context: the job context may have expired with the agent.
func (e *Executor) recordInvocation(jobID string, outcome agent.Outcome) {
	update := e.client.AgentInvocation.Update().
		Where(
			agentinvocation.JobID(jobID),
			agentinvocation.AgentKey(outcome.AgentKey),
		).
		SetStatus(agentinvocation.Status(outcome.Status)).
		SetFinishedAt(time.Now())
	if outcome.Output != nil {
		update.SetOutput(outcome.Output)
	}
	if outcome.ErrorCode != "" {
		update.SetErrorCode(outcome.ErrorCode)
	}
	if outcome.ErrorMessage != "" {
		update.SetErrorMessage(outcome.ErrorMessage)
	}
	if err := update.Exec(context.Background()); err != nil {
		slog.Warn("Failed to record invocation", "job_id", jobID, "agent", outcome.AgentKey, "error", err)
	}
}

// markRemainingCancelled closes out invocations that never ran.
func (e *Executor) markRemainingCancelled(jobID string) {
	_, err := e.client.AgentInvocation.Update().
		Where(
			agentinvocation.JobID(jobID),
			agentinvocation.StatusIn(agentinvocation.StatusPending, agentinvocation.StatusRunning),
		).
		SetStatus(agentinvocation.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(context.Background())
	if err != nil {
		slog.Warn("Failed to cancel remaining invocations", "job_id", jobID, "error", err)
	}
}

func (e *Executor) persistArtifact(ctx context.Context, job *ent.Job, artifact *synthesis.Artifact) error {
	builder := e.client.ResultArtifact.Create().
		SetID(uuid.New().String()).
		SetJobID(job.ID).
		SetTenantID(job.TenantID).
		SetClass(resultartifact.Class(job.Class)).
		SetAgentStatuses(artifact.AgentStatuses)
	if artifact.Fields != nil {
		builder.SetFields(artifact.Fields)
	}
	if artifact.Bullets != nil {
		builder.SetBullets(artifact.Bullets)
	}
	if artifact.Summary != "" {
		builder.SetSummary(artifact.Summary)
	}
	if artifact.Visualization != nil {
		builder.SetVisualization(artifact.Visualization)
	}
	if job.Input != nil && len(job.Input.AttachmentRefs) > 0 {
		builder.SetInputRefs(job.Input.AttachmentRefs)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	return nil
}

// indexArtifact feeds a successful ingest job into the vector store so
// query agents can search it. Best-effort.
func (e *Executor) indexArtifact(ctx context.Context, job *ent.Job, artifact *synthesis.Artifact) {
	if e.vectors == nil || job.Class != entjob.ClassIngest {
		return
	}
	content := ""
	if job.Input != nil {
		content = job.Input.Text
	}
	if content == "" {
		return
	}
	metadata := map[string]string{"job_id": job.ID}
	if category, ok := artifact.Fields["category"].(string); ok {
		metadata["category"] = category
	}
	if err := e.vectors.Index(ctx, job.TenantID, job.DomainID, job.ID, content, metadata); err != nil {
		slog.Warn("Vector indexing failed", "job_id", job.ID, "error", err)
	}
}

func (e *Executor) emit(ctx context.Context, job *ent.Job, kind config.EventKind, agentID, message string) {
	if e.sink == nil {
		return
	}
	evt := events.NewStatusEvent(job.TenantID, job.ID, job.UserID, kind, message)
	evt.AgentID = agentID
	if err := e.sink.Publish(ctx, &evt); err != nil {
		slog.Warn("Failed to publish job event", "job_id", job.ID, "kind", kind, "error", err)
	}
}

// jobRawInput renders the submission payload the agents receive. The
// rendering must be deterministic for identical inputs, so filters are
// appended in sorted key order.
func jobRawInput(job *ent.Job) string {
	if job.Input == nil {
		return ""
	}
	switch job.Class {
	case entjob.ClassQuery:
		input := job.Input.Question
		keys := make([]string, 0, len(job.Input.Filters))
		for k := range job.Input.Filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			input += fmt.Sprintf("\nfilter %s: %s", k, job.Input.Filters[k])
		}
		return input
	default:
		return job.Input.Text
	}
}

func planErrorCode(err error) string {
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrBadReference):
		return "BadReference"
	default:
		return "Internal"
	}
}

func synthesisErrorCode(err error) string {
	switch {
	case errors.Is(err, synthesis.ErrNoViableAgents):
		return "NoViableAgents"
	case errors.Is(err, synthesis.ErrSynthesisRefused):
		return "SynthesisRefused"
	default:
		return "Internal"
	}
}
