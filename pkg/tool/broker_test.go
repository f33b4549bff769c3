package tool

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
	"github.com/siftstack/sift/pkg/redact"
)

type fakeAdapter struct {
	name       config.ToolName
	idempotent bool
	invoke     func(ctx context.Context, inv Invocation, params map[string]any) (*Result, error)

	mu    sync.Mutex
	calls int
}

func (f *fakeAdapter) Name() config.ToolName          { return f.name }
func (f *fakeAdapter) Idempotent(map[string]any) bool { return f.idempotent }

func (f *fakeAdapter) Invoke(ctx context.Context, inv Invocation, params map[string]any) (*Result, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.invoke(ctx, inv, params)
}

func (f *fakeAdapter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePerms struct {
	mu    sync.Mutex
	tools []config.ToolName
	calls int
	err   error
}

func (f *fakePerms) AllowedTools(_ context.Context, _, _ string) ([]config.ToolName, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.tools, f.err
}

func (f *fakePerms) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeSink struct {
	mu     sync.Mutex
	events []*events.StatusEvent
}

func (f *fakeSink) Publish(_ context.Context, evt *events.StatusEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	return nil
}

func (f *fakeSink) kinds() []config.EventKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	kinds := make([]config.EventKind, len(f.events))
	for i, evt := range f.events {
		kinds[i] = evt.Kind
	}
	return kinds
}

func newTestBroker(perms PermissionSource, sink EventSink) *Broker {
	return NewBroker(
		config.DefaultToolsConfig(),
		perms,
		sink,
		redact.NewRedactor(&config.RedactionDefaults{Enabled: true, PatternGroup: "security"}),
	)
}

func testInvocation() Invocation {
	return Invocation{TenantID: "tenant-1", AgentKey: "geo", JobID: "job-1", UserID: "alice"}
}

func TestBroker_UnknownTool(t *testing.T) {
	broker := newTestBroker(&fakePerms{}, &fakeSink{})

	_, err := broker.Invoke(context.Background(), testInvocation(), "not_a_tool", nil)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestBroker_DeniesUnlistedTool(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolLLM}}
	sink := &fakeSink{}
	broker := newTestBroker(perms, sink)
	broker.Register(&fakeAdapter{name: config.ToolGeocode, idempotent: true,
		invoke: func(context.Context, Invocation, map[string]any) (*Result, error) {
			return &Result{Content: "ok"}, nil
		}})

	_, err := broker.Invoke(context.Background(), testInvocation(), config.ToolGeocode, nil)
	assert.ErrorIs(t, err, ErrToolDenied)

	// Denied before dispatch: no lifecycle events at all.
	assert.Empty(t, sink.kinds())
}

func TestBroker_SuccessEmitsInvokedAndDone(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolGeocode}}
	sink := &fakeSink{}
	broker := newTestBroker(perms, sink)
	broker.Register(&fakeAdapter{name: config.ToolGeocode, idempotent: true,
		invoke: func(context.Context, Invocation, map[string]any) (*Result, error) {
			return &Result{Content: `[{"lat":"51.5","lon":"-0.1"}]`}, nil
		}})

	result, err := broker.Invoke(context.Background(), testInvocation(), config.ToolGeocode, map[string]any{"query": "london"})
	require.NoError(t, err)
	assert.Equal(t, `[{"lat":"51.5","lon":"-0.1"}]`, result.Content)
	assert.Equal(t, []config.EventKind{config.EventToolInvoked, config.EventToolDone}, sink.kinds())
}

func TestBroker_FailureEmitsToolFailed(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolGeocode}}
	sink := &fakeSink{}
	broker := newTestBroker(perms, sink)
	broker.Register(&fakeAdapter{name: config.ToolGeocode, idempotent: true,
		invoke: func(context.Context, Invocation, map[string]any) (*Result, error) {
			return nil, errors.New("bad request")
		}})

	_, err := broker.Invoke(context.Background(), testInvocation(), config.ToolGeocode, nil)
	assert.ErrorIs(t, err, ErrToolFailed)
	assert.Equal(t, []config.EventKind{config.EventToolInvoked, config.EventToolFailed}, sink.kinds())
}

func TestBroker_RetriesTransientFailures(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolGeocode}}
	adapter := &fakeAdapter{name: config.ToolGeocode, idempotent: true}
	adapter.invoke = func(context.Context, Invocation, map[string]any) (*Result, error) {
		if adapter.callCount() < 3 {
			return nil, Transient(errors.New("upstream 503"))
		}
		return &Result{Content: "ok"}, nil
	}
	broker := newTestBroker(perms, &fakeSink{})
	broker.Register(adapter)

	result, err := broker.Invoke(context.Background(), testInvocation(), config.ToolGeocode, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Content)
	assert.Equal(t, 3, adapter.callCount())
}

func TestBroker_PermanentErrorNotRetried(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolGeocode}}
	adapter := &fakeAdapter{name: config.ToolGeocode, idempotent: true,
		invoke: func(context.Context, Invocation, map[string]any) (*Result, error) {
			return nil, errors.New("bad params")
		}}
	broker := newTestBroker(perms, &fakeSink{})
	broker.Register(adapter)

	_, err := broker.Invoke(context.Background(), testInvocation(), config.ToolGeocode, nil)
	assert.ErrorIs(t, err, ErrToolFailed)
	assert.Equal(t, 1, adapter.callCount())
}

func TestBroker_NonIdempotentGetsOneAttempt(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolCustomHTTP}}
	adapter := &fakeAdapter{name: config.ToolCustomHTTP, idempotent: false,
		invoke: func(context.Context, Invocation, map[string]any) (*Result, error) {
			return nil, Transient(errors.New("connection reset"))
		}}
	broker := newTestBroker(perms, &fakeSink{})
	broker.Register(adapter)

	_, err := broker.Invoke(context.Background(), testInvocation(), config.ToolCustomHTTP, nil)
	assert.ErrorIs(t, err, ErrToolFailed)
	assert.Equal(t, 1, adapter.callCount())
}

func TestBroker_PermissionsAreCached(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolGeocode}}
	broker := newTestBroker(perms, &fakeSink{})
	broker.Register(&fakeAdapter{name: config.ToolGeocode, idempotent: true,
		invoke: func(context.Context, Invocation, map[string]any) (*Result, error) {
			return &Result{Content: "ok"}, nil
		}})

	for range 5 {
		_, err := broker.Invoke(context.Background(), testInvocation(), config.ToolGeocode, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, perms.callCount())
}

func TestBroker_InvalidateForcesACLReload(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolGeocode}}
	broker := newTestBroker(perms, &fakeSink{})
	broker.Register(&fakeAdapter{name: config.ToolGeocode, idempotent: true,
		invoke: func(context.Context, Invocation, map[string]any) (*Result, error) {
			return &Result{Content: "ok"}, nil
		}})

	inv := testInvocation()
	_, err := broker.Invoke(context.Background(), inv, config.ToolGeocode, nil)
	require.NoError(t, err)

	// Permission change revokes geocode; without invalidation the stale
	// cache would still allow it.
	perms.mu.Lock()
	perms.tools = nil
	perms.mu.Unlock()
	broker.InvalidatePermissions(inv.TenantID, inv.AgentKey)

	_, err = broker.Invoke(context.Background(), inv, config.ToolGeocode, nil)
	assert.ErrorIs(t, err, ErrToolDenied)
	assert.Equal(t, 2, perms.callCount())
}

func TestBroker_RedactsResults(t *testing.T) {
	perms := &fakePerms{tools: []config.ToolName{config.ToolCustomHTTP}}
	broker := newTestBroker(perms, &fakeSink{})
	broker.Register(&fakeAdapter{name: config.ToolCustomHTTP, idempotent: false,
		invoke: func(context.Context, Invocation, map[string]any) (*Result, error) {
			return &Result{Content: `{"api_key": "sk_live_abcdef1234567890abcdef"}`}, nil
		}})

	result, err := broker.Invoke(context.Background(), testInvocation(), config.ToolCustomHTTP,
		map[string]any{"method": "POST"})
	require.NoError(t, err)
	assert.NotContains(t, result.Content, "sk_live_abcdef1234567890abcdef")
	assert.Contains(t, result.Content, "__REDACTED_API_KEY__")
}

func TestBroker_CeilingWaitObservesDeadline(t *testing.T) {
	cfg := config.DefaultToolsConfig()
	cfg.ConcurrencyCeilings[config.ToolGeocode] = 1

	perms := &fakePerms{tools: []config.ToolName{config.ToolGeocode}}
	broker := NewBroker(cfg, perms, &fakeSink{},
		redact.NewRedactor(&config.RedactionDefaults{Enabled: false}))

	release := make(chan struct{})
	broker.Register(&fakeAdapter{name: config.ToolGeocode, idempotent: false,
		invoke: func(ctx context.Context, _ Invocation, _ map[string]any) (*Result, error) {
			<-release
			return &Result{Content: "ok"}, nil
		}})

	// Occupy the only slot.
	go func() {
		_, _ = broker.Invoke(context.Background(), testInvocation(), config.ToolGeocode, nil)
	}()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := broker.Invoke(ctx, testInvocation(), config.ToolGeocode, nil)
	assert.ErrorIs(t, err, ErrToolFailed)

	close(release)
}
