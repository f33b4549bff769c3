package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/config"
)

func TestBuildNotifyPayloadInjectsEventID(t *testing.T) {
	evt := NewStatusEvent("tenant-1", "job-1", "alice", config.EventAgentOK, "geo finished")
	evt.Sequence = 3
	evt.AgentID = "geo"

	payloadJSON, err := json.Marshal(evt)
	require.NoError(t, err)

	out, err := buildNotifyPayload(payloadJSON, 42)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, float64(42), decoded["db_event_id"])
	assert.Equal(t, "job-1", decoded["job_id"])
	assert.Equal(t, "alice", decoded["user_id"])
	assert.Equal(t, float64(3), decoded["sequence"])
	assert.Equal(t, "agent_ok", decoded["kind"])
	assert.Equal(t, "geo", decoded["agent_id"])
	assert.NotContains(t, decoded, "truncated")

	// Tenant id never crosses the wire.
	assert.NotContains(t, out, "tenant-1")
}

func TestBuildNotifyPayloadTruncatesOversized(t *testing.T) {
	evt := NewStatusEvent("tenant-1", "job-1", "alice", config.EventToolDone, strings.Repeat("x", 9000))
	evt.Sequence = 7

	payloadJSON, err := json.Marshal(evt)
	require.NoError(t, err)

	out, err := buildNotifyPayload(payloadJSON, 99)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), notifyLimit)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, true, decoded["truncated"])
	assert.Equal(t, float64(99), decoded["db_event_id"])
	assert.Equal(t, "job-1", decoded["job_id"])
	assert.Equal(t, float64(7), decoded["sequence"])
	assert.NotContains(t, decoded, "message")
}

func TestStatusEventWireShape(t *testing.T) {
	evt := NewStatusEvent("tenant-1", "job-9", "bob", config.EventToolFailed, "geocode unreachable")
	evt.Sequence = 2
	evt.ToolName = "geocode"

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Wire-stable envelope fields.
	for _, key := range []string{"job_id", "user_id", "sequence", "kind", "tool_name", "message", "timestamp"} {
		assert.Contains(t, decoded, key)
	}
	// Optional agent_id omitted when empty; tenant never serialized.
	assert.NotContains(t, decoded, "agent_id")
	assert.NotContains(t, decoded, "tenant_id")
}

func TestUserChannel(t *testing.T) {
	assert.Equal(t, "user:alice", UserChannel("alice"))
}

func TestExtractJobID(t *testing.T) {
	assert.Equal(t, "job-1", extractJobID([]byte(`{"job_id":"job-1","kind":"complete"}`)))
	assert.Empty(t, extractJobID([]byte(`not json`)))
	assert.Empty(t, extractJobID([]byte(`{}`)))
}
