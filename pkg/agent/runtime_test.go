package agent

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/plan"
	"github.com/siftstack/sift/pkg/tool"
)

// stubInvoker scripts broker responses per call.
type stubInvoker struct {
	mu        sync.Mutex
	responses []stubResponse
	prompts   []string
}

type stubResponse struct {
	content string
	err     error
}

func (s *stubInvoker) Invoke(_ context.Context, _ tool.Invocation, _ config.ToolName, params map[string]any) (*tool.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prompt, ok := params["prompt"].(string); ok {
		s.prompts = append(s.prompts, prompt)
	}
	if len(s.responses) == 0 {
		return nil, errors.New("no scripted response")
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	if resp.err != nil {
		return nil, resp.err
	}
	return &tool.Result{Content: resp.content}, nil
}

type captureSink struct {
	mu     sync.Mutex
	events []events.StatusEvent
}

func (c *captureSink) Publish(_ context.Context, evt *events.StatusEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, *evt)
	return nil
}

func (c *captureSink) kinds() []config.EventKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kinds := make([]config.EventKind, len(c.events))
	for i, evt := range c.events {
		kinds[i] = evt.Kind
	}
	return kinds
}

func testRequest() Request {
	return Request{
		TenantID: "tenant-1",
		UserID:   "alice",
		JobID:    "job-1",
		RawInput: "Flooding near the river.",
		Spec: plan.AgentSpec{
			Key:          "geo",
			SystemPrompt: "You extract locations.",
			OutputSchema: map[string]string{
				"location":   "string",
				"confidence": "number",
			},
		},
	}
}

func newTestRuntime(invoker ToolInvoker, sink EventSink) *Runtime {
	return NewRuntime(invoker, sink, config.DefaultDefaults())
}

func TestRun_Success(t *testing.T) {
	invoker := &stubInvoker{responses: []stubResponse{
		{content: `{"location": "London", "confidence": 0.9}`},
	}}
	sink := &captureSink{}

	outcome := newTestRuntime(invoker, sink).Run(context.Background(), testRequest())

	assert.Equal(t, StatusOK, outcome.Status)
	assert.Equal(t, "geo", outcome.AgentKey)
	assert.Equal(t, map[string]any{"location": "London", "confidence": 0.9}, outcome.Output)
	assert.Equal(t, []config.EventKind{config.EventAgentStarted, config.EventAgentOK}, sink.kinds())
}

func TestRun_RepairRecoversMalformedOutput(t *testing.T) {
	invoker := &stubInvoker{responses: []stubResponse{
		{content: "Sure! The location is London."},
		{content: `{"location": "London", "confidence": 0.9}`},
	}}
	sink := &captureSink{}

	outcome := newTestRuntime(invoker, sink).Run(context.Background(), testRequest())

	assert.Equal(t, StatusOK, outcome.Status)
	require.Len(t, invoker.prompts, 2)
	assert.Contains(t, invoker.prompts[1], "Sure! The location is London.")
	assert.Contains(t, invoker.prompts[1], "confidence, location")
}

func TestRun_ParseErrorAfterRepair(t *testing.T) {
	invoker := &stubInvoker{responses: []stubResponse{
		{content: "not json"},
		{content: "still not json"},
	}}
	sink := &captureSink{}

	outcome := newTestRuntime(invoker, sink).Run(context.Background(), testRequest())

	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "ParseError", outcome.ErrorCode)
	assert.Len(t, invoker.prompts, 2)
	assert.Equal(t, []config.EventKind{config.EventAgentStarted, config.EventAgentError}, sink.kinds())
}

func TestRun_OutputValidationFailure(t *testing.T) {
	invoker := &stubInvoker{responses: []stubResponse{
		{content: `{"location": "London", "confidence": 0.9, "extra": true}`},
	}}
	sink := &captureSink{}

	outcome := newTestRuntime(invoker, sink).Run(context.Background(), testRequest())

	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "OutputValidation", outcome.ErrorCode)
	assert.Contains(t, outcome.ErrorMessage, "extra")
	assert.Nil(t, outcome.Output)
}

func TestRun_ToolDenied(t *testing.T) {
	invoker := &stubInvoker{responses: []stubResponse{
		{err: tool.ErrToolDenied},
	}}
	sink := &captureSink{}

	outcome := newTestRuntime(invoker, sink).Run(context.Background(), testRequest())

	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "ToolDenied", outcome.ErrorCode)
}

func TestRun_ToolFailure(t *testing.T) {
	invoker := &stubInvoker{responses: []stubResponse{
		{err: tool.ErrToolFailed},
	}}
	sink := &captureSink{}

	outcome := newTestRuntime(invoker, sink).Run(context.Background(), testRequest())

	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "ToolFailed", outcome.ErrorCode)
	assert.Equal(t, []config.EventKind{config.EventAgentStarted, config.EventAgentError}, sink.kinds())
}

func TestRun_JobDeadlineWins(t *testing.T) {
	invoker := &stubInvoker{responses: []stubResponse{
		{err: context.DeadlineExceeded},
	}}
	sink := &captureSink{}

	req := testRequest()
	req.JobDeadline = time.Now().Add(10 * time.Millisecond)

	outcome := newTestRuntime(invoker, sink).Run(context.Background(), req)

	assert.Equal(t, StatusTimeout, outcome.Status)
	assert.Equal(t, "AgentTimeout", outcome.ErrorCode)
	assert.Equal(t, []config.EventKind{config.EventAgentStarted, config.EventAgentTimeout}, sink.kinds())
}

func TestRun_TimeoutExpiresContext(t *testing.T) {
	// A slow broker call must observe the invocation deadline.
	invoker := &slowInvoker{delay: time.Second}
	sink := &captureSink{}

	req := testRequest()
	req.JobDeadline = time.Now().Add(30 * time.Millisecond)

	start := time.Now()
	outcome := newTestRuntime(invoker, sink).Run(context.Background(), req)

	assert.Equal(t, StatusTimeout, outcome.Status)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRun_Cancelled(t *testing.T) {
	invoker := &stubInvoker{responses: []stubResponse{
		{err: context.Canceled},
	}}
	sink := &captureSink{}

	outcome := newTestRuntime(invoker, sink).Run(context.Background(), testRequest())

	assert.Equal(t, StatusCancelled, outcome.Status)
	assert.Equal(t, "Cancelled", outcome.ErrorCode)
	// Cancellation is reported once by the scheduler, not per agent.
	assert.Equal(t, []config.EventKind{config.EventAgentStarted}, sink.kinds())
}

func TestRun_PassesSystemPromptAndJSONMode(t *testing.T) {
	var gotParams map[string]any
	invoker := invokerFunc(func(_ context.Context, _ tool.Invocation, _ config.ToolName, params map[string]any) (*tool.Result, error) {
		gotParams = params
		return &tool.Result{Content: `{"location": "x", "confidence": 1}`}, nil
	})

	newTestRuntime(invoker, &captureSink{}).Run(context.Background(), testRequest())

	require.NotNil(t, gotParams)
	assert.Equal(t, "You extract locations.", gotParams["system"])
	assert.Equal(t, true, gotParams["json"])
}

// toolAwareInvoker scripts llm responses and answers every other tool
// with a canned result, recording which tools were dispatched.
type toolAwareInvoker struct {
	mu        sync.Mutex
	llm       []stubResponse
	prompts   []string
	toolNames []string
	toolErr   error
}

func (s *toolAwareInvoker) Invoke(_ context.Context, _ tool.Invocation, name config.ToolName, params map[string]any) (*tool.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name != config.ToolLLM {
		s.toolNames = append(s.toolNames, string(name))
		if s.toolErr != nil {
			return nil, s.toolErr
		}
		return &tool.Result{Content: string(name) + " result payload"}, nil
	}
	if prompt, ok := params["prompt"].(string); ok {
		s.prompts = append(s.prompts, prompt)
	}
	if len(s.llm) == 0 {
		return nil, errors.New("no scripted response")
	}
	resp := s.llm[0]
	s.llm = s.llm[1:]
	if resp.err != nil {
		return nil, resp.err
	}
	return &tool.Result{Content: resp.content}, nil
}

func toolRequest() Request {
	req := testRequest()
	req.Spec.AllowedTools = []string{"llm", "web_search", "geocode"}
	return req
}

const geocodeCallEnvelope = `{"tool_calls": [{"tool": "geocode", "params": {"query": "old bridge"}}]}`

func TestRun_ToolCallsRouteThroughBroker(t *testing.T) {
	invoker := &toolAwareInvoker{llm: []stubResponse{
		{content: geocodeCallEnvelope},
		{content: `{"location": "London", "confidence": 0.9}`},
	}}

	outcome := newTestRuntime(invoker, &captureSink{}).Run(context.Background(), toolRequest())

	assert.Equal(t, StatusOK, outcome.Status)
	assert.Equal(t, []string{"geocode"}, invoker.toolNames)

	require.Len(t, invoker.prompts, 2)
	// Declared tools are offered in sorted order.
	assert.Contains(t, invoker.prompts[0], "geocode, web_search")
	// The follow-up completion carries the tool result and the input.
	assert.Contains(t, invoker.prompts[1], "geocode result payload")
	assert.Contains(t, invoker.prompts[1], "Flooding near the river.")
}

func TestRun_ToolCallFailureFedBackAsError(t *testing.T) {
	invoker := &toolAwareInvoker{
		toolErr: tool.ErrToolDenied,
		llm: []stubResponse{
			{content: geocodeCallEnvelope},
			{content: `{"location": "unknown", "confidence": 0}`},
		},
	}

	outcome := newTestRuntime(invoker, &captureSink{}).Run(context.Background(), toolRequest())

	// A failed or denied tool call is handed back to the agent, not a
	// terminal invocation failure.
	assert.Equal(t, StatusOK, outcome.Status)
	require.Len(t, invoker.prompts, 2)
	assert.Contains(t, invoker.prompts[1], "error:")
}

func TestRun_ToolRoundsCapped(t *testing.T) {
	invoker := &toolAwareInvoker{llm: []stubResponse{
		{content: geocodeCallEnvelope},
		{content: geocodeCallEnvelope},
		{content: geocodeCallEnvelope},
		{content: geocodeCallEnvelope},
	}}

	outcome := newTestRuntime(invoker, &captureSink{}).Run(context.Background(), toolRequest())

	// Past the round cap the envelope is treated as output and fails
	// schema validation.
	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "OutputValidation", outcome.ErrorCode)
	assert.Len(t, invoker.toolNames, 3)
}

func TestRun_ToolCallsBoundedByConcurrencyCeiling(t *testing.T) {
	var inFlight, peak int64
	var mu sync.Mutex

	invoker := invokerFunc(func(ctx context.Context, _ tool.Invocation, name config.ToolName, _ map[string]any) (*tool.Result, error) {
		if name == config.ToolLLM {
			return &tool.Result{Content: `{"location": "x", "confidence": 1}`}, nil
		}
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		inFlight--
		mu.Unlock()
		return &tool.Result{Content: "ok"}, nil
	})

	defaults := config.DefaultDefaults()
	defaults.AgentToolConcurrency = 2
	runtime := NewRuntime(&fanoutInvoker{next: invoker}, &captureSink{}, defaults)

	outcome := runtime.Run(context.Background(), toolRequest())

	assert.Equal(t, StatusOK, outcome.Status)
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(2))
	assert.Equal(t, int64(0), inFlight)
}

// fanoutInvoker answers the first llm call with a six-way tool fan-out
// and delegates everything else.
type fanoutInvoker struct {
	next ToolInvoker
	sent bool
	mu   sync.Mutex
}

func (f *fanoutInvoker) Invoke(ctx context.Context, inv tool.Invocation, name config.ToolName, params map[string]any) (*tool.Result, error) {
	if name == config.ToolLLM {
		f.mu.Lock()
		first := !f.sent
		f.sent = true
		f.mu.Unlock()
		if first {
			return &tool.Result{Content: `{"tool_calls": [` +
				`{"tool": "geocode"}, {"tool": "geocode"}, {"tool": "geocode"},` +
				`{"tool": "geocode"}, {"tool": "geocode"}, {"tool": "geocode"}]}`}, nil
		}
	}
	return f.next.Invoke(ctx, inv, name, params)
}

// slowInvoker blocks until the context expires.
type slowInvoker struct {
	delay time.Duration
}

func (s *slowInvoker) Invoke(ctx context.Context, _ tool.Invocation, _ config.ToolName, _ map[string]any) (*tool.Result, error) {
	select {
	case <-time.After(s.delay):
		return &tool.Result{Content: "{}"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type invokerFunc func(ctx context.Context, inv tool.Invocation, name config.ToolName, params map[string]any) (*tool.Result, error)

func (f invokerFunc) Invoke(ctx context.Context, inv tool.Invocation, name config.ToolName, params map[string]any) (*tool.Result, error) {
	return f(ctx, inv, name, params)
}
