package tool

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/redact"
)

// Broker routes every agent side effect through a closed set of
// adapters. Each dispatch is authorized against the calling agent's
// ACL, throttled by the tool's concurrency ceiling, retried when the
// adapter reports a transient failure on an idempotent call, and
// bracketed by tool_invoked / tool_done / tool_failed events. Results
// pass through redaction before they reach the agent.
type Broker struct {
	cfg      *config.ToolsConfig
	perms    PermissionSource
	cache    *PermissionCache
	sink     EventSink
	redactor *redact.Redactor

	adapters map[config.ToolName]Adapter
	sems     map[config.ToolName]*semaphore.Weighted
}

// NewBroker creates a broker with no adapters registered.
func NewBroker(cfg *config.ToolsConfig, perms PermissionSource, sink EventSink, redactor *redact.Redactor) *Broker {
	return &Broker{
		cfg:      cfg,
		perms:    perms,
		cache:    NewPermissionCache(cfg.PermissionCacheTTL),
		sink:     sink,
		redactor: redactor,
		adapters: make(map[config.ToolName]Adapter),
		sems:     make(map[config.ToolName]*semaphore.Weighted),
	}
}

// Register adds an adapter and allocates its concurrency ceiling.
func (b *Broker) Register(adapter Adapter) {
	name := adapter.Name()
	b.adapters[name] = adapter
	b.sems[name] = semaphore.NewWeighted(b.cfg.Ceiling(name))
}

// Invoke dispatches one tool call on behalf of an agent.
func (b *Broker) Invoke(ctx context.Context, inv Invocation, name config.ToolName, params map[string]any) (*Result, error) {
	adapter, ok := b.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	allowed, err := b.authorize(ctx, inv, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tool permissions: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("%w: agent %q may not call %q", ErrToolDenied, inv.AgentKey, name)
	}

	b.emit(ctx, inv, config.EventToolInvoked, name, fmt.Sprintf("dispatching %s", name))

	sem := b.sems[name]
	if err := sem.Acquire(ctx, 1); err != nil {
		b.emit(ctx, inv, config.EventToolFailed, name, "concurrency ceiling wait aborted")
		return nil, fmt.Errorf("%w: %s ceiling wait: %v", ErrToolFailed, name, err)
	}
	defer sem.Release(1)

	result, err := b.dispatch(ctx, adapter, inv, params)
	if err != nil {
		b.emit(ctx, inv, config.EventToolFailed, name, b.redactor.Redact(err.Error()))
		return nil, fmt.Errorf("%w: %s: %v", ErrToolFailed, name, err)
	}

	result.Content = b.redactor.Redact(result.Content)
	b.emit(ctx, inv, config.EventToolDone, name, fmt.Sprintf("%s returned %d bytes", name, len(result.Content)))
	return result, nil
}

// dispatch runs the adapter, retrying transient failures when the call
// is idempotent. Non-idempotent calls get exactly one attempt.
func (b *Broker) dispatch(ctx context.Context, adapter Adapter, inv Invocation, params map[string]any) (*Result, error) {
	if !adapter.Idempotent(params) {
		return adapter.Invoke(ctx, inv, params)
	}

	var result *Result
	op := func() error {
		var err error
		result, err = adapter.Invoke(ctx, inv, params)
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	if err := backoff.Retry(op, backoff.WithContext(newRetryBackoff(), ctx)); err != nil {
		return nil, err
	}
	return result, nil
}

// authorize resolves the ACL decision through the TTL cache.
func (b *Broker) authorize(ctx context.Context, inv Invocation, name config.ToolName) (bool, error) {
	if allowed, ok := b.cache.Get(inv.TenantID, inv.AgentKey, name); ok {
		return allowed, nil
	}

	tools, err := b.perms.AllowedTools(ctx, inv.TenantID, inv.AgentKey)
	if err != nil {
		return false, err
	}

	// Cache the whole ACL while it is in hand.
	for _, t := range config.AllTools {
		b.cache.Set(inv.TenantID, inv.AgentKey, t, slices.Contains(tools, t))
	}

	return slices.Contains(tools, name), nil
}

// InvalidatePermissions drops an agent's cached ACL after a definition
// change so the new permissions take effect immediately.
func (b *Broker) InvalidatePermissions(tenantID, agentKey string) {
	b.cache.Invalidate(tenantID, agentKey)
}

// emit publishes a tool lifecycle event. Delivery is best-effort;
// failures are logged and never fail the call.
func (b *Broker) emit(ctx context.Context, inv Invocation, kind config.EventKind, name config.ToolName, message string) {
	if b.sink == nil {
		return
	}
	evt := events.NewStatusEvent(inv.TenantID, inv.JobID, inv.UserID, kind, message)
	evt.AgentID = inv.AgentKey
	evt.ToolName = string(name)
	if err := b.sink.Publish(ctx, &evt); err != nil {
		slog.Warn("Failed to publish tool event",
			"job_id", inv.JobID, "tool", name, "kind", kind, "error", err)
	}
}
