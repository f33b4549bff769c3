// Package events implements the status bus: per-job progress events
// persisted for catchup, fanned out across pods via PostgreSQL
// NOTIFY/LISTEN, and delivered to WebSocket subscribers keyed by user.
//
// Delivery is best-effort at-most-once. A subscriber that misses events
// reconciles by polling the job record; the durable audit trail is the
// job and invocation rows, not the events table.
package events

import (
	"time"

	"github.com/siftstack/sift/pkg/config"
)

// StatusEvent is the wire-stable event envelope.
type StatusEvent struct {
	JobID     string           `json:"job_id"`
	UserID    string           `json:"user_id"`
	Sequence  int64            `json:"sequence"`
	Kind      config.EventKind `json:"kind"`
	AgentID   string           `json:"agent_id,omitempty"`
	ToolName  string           `json:"tool_name,omitempty"`
	Message   string           `json:"message"`
	Timestamp string           `json:"timestamp"` // RFC3339 UTC

	// TenantID routes persistence and is never sent to clients.
	TenantID string `json:"-"`
}

// NewStatusEvent stamps the envelope with the current UTC time.
// Sequence is assigned by the publisher.
func NewStatusEvent(tenantID, jobID, userID string, kind config.EventKind, message string) StatusEvent {
	return StatusEvent{
		TenantID:  tenantID,
		JobID:     jobID,
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// UserChannel returns the NOTIFY channel for one user's events.
// Format: "user:{user_id}"
func UserChannel(userID string) string {
	return "user:" + userID
}

// ClientMessage is the JSON structure for client -> server WebSocket
// messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "user:alice"
	JobID       string `json:"job_id,omitempty"`        // Optional per-subscription job filter
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
