// Package agent runs a single planned agent invocation: prompt
// construction, the LLM round trip through the tool broker, structured
// output parsing, and schema validation. Agents never perform I/O
// directly; every side effect goes through the broker.
package agent

import (
	"context"
	"errors"
	"time"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/plan"
	"github.com/siftstack/sift/pkg/tool"
)

var (
	// ErrParse means the LLM response was not a JSON object even after
	// the one permitted repair attempt.
	ErrParse = errors.New("unparseable agent output")

	// ErrOutputValidation means the parsed output violated the agent's
	// declared output schema.
	ErrOutputValidation = errors.New("output schema violation")
)

// Status is an invocation's terminal state.
type Status string

const (
	StatusOK        Status = "ok"
	StatusError     Status = "error"
	StatusTimeout   Status = "timeout"
	StatusCancelled Status = "cancelled"
)

// Request carries everything one invocation needs. ParentOutput is nil
// unless the plan names a dependency parent that finished ok; agents
// must tolerate a nil parent output even when a parent is declared.
type Request struct {
	TenantID     string
	UserID       string
	JobID        string
	Spec         plan.AgentSpec
	RawInput     string
	ParentOutput map[string]any

	// JobDeadline bounds the invocation together with the per-agent
	// budget; the earlier of the two wins.
	JobDeadline time.Time
}

// Outcome is what the scheduler records for the invocation. Output is
// nil unless Status is ok.
type Outcome struct {
	AgentKey     string
	Status       Status
	Output       map[string]any
	ErrorCode    string
	ErrorMessage string
}

// ToolInvoker is the broker surface the runtime dispatches through.
// Satisfied by *tool.Broker.
type ToolInvoker interface {
	Invoke(ctx context.Context, inv tool.Invocation, name config.ToolName, params map[string]any) (*tool.Result, error)
}

// EventSink receives the runtime's lifecycle events.
type EventSink interface {
	Publish(ctx context.Context, evt *events.StatusEvent) error
}
