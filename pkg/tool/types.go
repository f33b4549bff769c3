// Package tool implements the broker that mediates every side effect an
// agent performs: a closed set of named tools, per-agent authorization,
// per-tool concurrency ceilings, bounded retries, and status events
// around each dispatch.
package tool

import (
	"context"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
)

// Invocation identifies who is calling a tool and on behalf of which job.
// Every dispatch is scoped by it; adapters must not reach outside the
// tenant it names.
type Invocation struct {
	TenantID string
	AgentKey string
	JobID    string
	UserID   string
}

// Result is a tool's output. Content is the text handed back to the
// agent prompt; structured adapters marshal their payload to JSON.
type Result struct {
	Content string
}

// Adapter executes one named tool. Idempotent reports whether a call
// with the given params may be retried by the broker.
type Adapter interface {
	Name() config.ToolName
	Idempotent(params map[string]any) bool
	Invoke(ctx context.Context, inv Invocation, params map[string]any) (*Result, error)
}

// PermissionSource resolves the tool ACL for an agent definition.
// Implemented by the catalog over current agent definitions.
type PermissionSource interface {
	AllowedTools(ctx context.Context, tenantID, agentKey string) ([]config.ToolName, error)
}

// EventSink receives the broker's tool lifecycle events.
type EventSink interface {
	Publish(ctx context.Context, evt *events.StatusEvent) error
}
