package events

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// SQLCatchup implements CatchupQuerier directly over the events table.
type SQLCatchup struct {
	db *sql.DB
}

// NewSQLCatchup creates a catchup querier over the shared handle.
func NewSQLCatchup(db *sql.DB) *SQLCatchup {
	return &SQLCatchup{db: db}
}

// GetCatchupEvents returns persisted events on a user channel with
// event_id > sinceID, oldest first, up to limit. The payload is rebuilt
// from the row columns into the wire envelope.
func (q *SQLCatchup) GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	userID, ok := strings.CutPrefix(channel, "user:")
	if !ok {
		return nil, fmt.Errorf("unknown channel format: %q", channel)
	}

	rows, err := q.db.QueryContext(ctx,
		`SELECT event_id, job_id, user_id, sequence, kind,
		        COALESCE(agent_key, ''), COALESCE(tool_name, ''), message, created_at
		 FROM events
		 WHERE user_id = $1 AND event_id > $2
		 ORDER BY event_id ASC
		 LIMIT $3`,
		userID, sinceID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("catchup query failed: %w", err)
	}
	defer rows.Close()

	var result []CatchupEvent
	for rows.Next() {
		var (
			evt       CatchupEvent
			jobID     string
			uid       string
			sequence  int64
			kind      string
			agentKey  string
			toolName  string
			message   string
			createdAt sql.NullTime
		)
		if err := rows.Scan(&evt.ID, &jobID, &uid, &sequence, &kind,
			&agentKey, &toolName, &message, &createdAt); err != nil {
			return nil, fmt.Errorf("catchup scan failed: %w", err)
		}

		payload := map[string]interface{}{
			"job_id":   jobID,
			"user_id":  uid,
			"sequence": sequence,
			"kind":     kind,
			"message":  message,
		}
		if agentKey != "" {
			payload["agent_id"] = agentKey
		}
		if toolName != "" {
			payload["tool_name"] = toolName
		}
		if createdAt.Valid {
			payload["timestamp"] = createdAt.Time.UTC().Format(time.RFC3339)
		}
		evt.Payload = payload
		result = append(result, evt)
	}
	return result, rows.Err()
}
