package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/tool"
)

// Runtime executes single agent invocations. It is stateless and
// shared across workers; per-invocation state lives in the Request.
type Runtime struct {
	broker   ToolInvoker
	sink     EventSink
	defaults *config.Defaults
}

// NewRuntime creates the shared agent runtime.
func NewRuntime(broker ToolInvoker, sink EventSink, defaults *config.Defaults) *Runtime {
	return &Runtime{broker: broker, sink: sink, defaults: defaults}
}

// Run executes one invocation to a terminal status. Agent-level
// failures (parse, validation, tool errors, timeout) come back inside
// the Outcome, never as a Go error; the scheduler records them and
// moves on.
func (r *Runtime) Run(ctx context.Context, req Request) Outcome {
	deadline := time.Now().Add(r.defaults.PerAgentTimeout)
	if !req.JobDeadline.IsZero() && req.JobDeadline.Before(deadline) {
		deadline = req.JobDeadline
	}
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	r.emit(ctx, req, config.EventAgentStarted, "running")

	output, err := r.invoke(ctx, req)
	if err != nil {
		return r.failed(ctx, req, err)
	}

	r.emit(ctx, req, config.EventAgentOK, "finished")
	return Outcome{AgentKey: req.Spec.Key, Status: StatusOK, Output: output}
}

// maxToolRounds caps LLM-directed tool rounds per invocation; a
// response still requesting tools past the cap falls through to schema
// validation and fails there.
const maxToolRounds = 3

// invoke runs the completion loop: prompt the llm tool, dispatch any
// requested tool calls through the broker, and repeat until the
// response is a final output object, then parse and validate it.
func (r *Runtime) invoke(ctx context.Context, req Request) (map[string]any, error) {
	inv := tool.Invocation{
		TenantID: req.TenantID,
		AgentKey: req.Spec.Key,
		JobID:    req.JobID,
		UserID:   req.UserID,
	}

	prompt := BuildPrompt(req)
	for round := 0; ; round++ {
		content, err := r.complete(ctx, inv, req.Spec.SystemPrompt, prompt)
		if err != nil {
			return nil, err
		}

		output, parseErr := parseOutput(content)
		if parseErr != nil {
			// One repair attempt with the malformed response echoed back.
			repaired, err := r.complete(ctx, inv, req.Spec.SystemPrompt,
				buildRepairPrompt(content, req.Spec.OutputSchema))
			if err != nil {
				return nil, err
			}
			output, parseErr = parseOutput(repaired)
			if parseErr != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, parseErr)
			}
		}

		if calls, ok := parseToolCalls(output); ok && round < maxToolRounds {
			results := r.runToolCalls(ctx, inv, calls)
			prompt = buildToolResultsPrompt(req, calls, results)
			continue
		}

		if err := validateOutput(req.Spec.OutputSchema, output); err != nil {
			return nil, err
		}
		return output, nil
	}
}

// runToolCalls dispatches one round of requested tool calls through
// the broker, bounded by the per-agent concurrency ceiling. A failed
// call becomes an error result handed back to the agent; the broker
// has already recorded it as tool_failed. Authorization stays with the
// broker, so a denied tool reads as an error here too.
func (r *Runtime) runToolCalls(ctx context.Context, inv tool.Invocation, calls []toolCall) []string {
	sem := semaphore.NewWeighted(r.defaults.AgentToolConcurrency)
	results := make([]string, len(calls))
	var wg sync.WaitGroup

	for i, call := range calls {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = "error: " + err.Error()
			continue
		}
		wg.Add(1)
		go func(i int, call toolCall) {
			defer wg.Done()
			defer sem.Release(1)
			result, err := r.broker.Invoke(ctx, inv, config.ToolName(call.Tool), call.Params)
			if err != nil {
				results[i] = "error: " + err.Error()
				return
			}
			results[i] = result.Content
		}(i, call)
	}

	wg.Wait()
	return results
}

func (r *Runtime) complete(ctx context.Context, inv tool.Invocation, system, prompt string) (string, error) {
	result, err := r.broker.Invoke(ctx, inv, config.ToolLLM, map[string]any{
		"system": system,
		"prompt": prompt,
		"json":   true,
	})
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

// failed maps an invocation error to its terminal outcome. Context
// errors are classified from the returned error, not ctx.Err(), so a
// concurrent expiration cannot misclassify an unrelated failure.
func (r *Runtime) failed(ctx context.Context, req Request, err error) Outcome {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		r.emit(ctx, req, config.EventAgentTimeout, "deadline exceeded")
		return Outcome{AgentKey: req.Spec.Key, Status: StatusTimeout,
			ErrorCode: "AgentTimeout", ErrorMessage: err.Error()}

	case errors.Is(err, context.Canceled):
		return Outcome{AgentKey: req.Spec.Key, Status: StatusCancelled,
			ErrorCode: "Cancelled", ErrorMessage: err.Error()}

	case errors.Is(err, ErrParse):
		r.emit(ctx, req, config.EventAgentError, "unparseable output")
		return Outcome{AgentKey: req.Spec.Key, Status: StatusError,
			ErrorCode: "ParseError", ErrorMessage: err.Error()}

	case errors.Is(err, ErrOutputValidation):
		r.emit(ctx, req, config.EventAgentError, "output schema violation")
		return Outcome{AgentKey: req.Spec.Key, Status: StatusError,
			ErrorCode: "OutputValidation", ErrorMessage: err.Error()}

	case errors.Is(err, tool.ErrToolDenied):
		r.emit(ctx, req, config.EventAgentError, "tool denied")
		return Outcome{AgentKey: req.Spec.Key, Status: StatusError,
			ErrorCode: "ToolDenied", ErrorMessage: err.Error()}

	default:
		r.emit(ctx, req, config.EventAgentError, "tool failure")
		return Outcome{AgentKey: req.Spec.Key, Status: StatusError,
			ErrorCode: "ToolFailed", ErrorMessage: err.Error()}
	}
}

// emit publishes a lifecycle event. Best-effort: a failed publish is
// logged, never surfaced. Terminal-state emission uses a detached
// context so an expired invocation can still report its status.
func (r *Runtime) emit(ctx context.Context, req Request, kind config.EventKind, message string) {
	if r.sink == nil {
		return
	}
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
	}
	evt := events.NewStatusEvent(req.TenantID, req.JobID, req.UserID, kind, message)
	evt.AgentID = req.Spec.Key
	if err := r.sink.Publish(ctx, &evt); err != nil {
		slog.Warn("Failed to publish agent event",
			"job_id", req.JobID, "agent", req.Spec.Key, "kind", kind, "error", err)
	}
}
