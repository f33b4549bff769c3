package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// notifyLimit is PostgreSQL's NOTIFY payload cap (8000 bytes) with
// headroom for the envelope fields injected at publish time.
const notifyLimit = 7900

// Publisher assigns per-job sequences and publishes status events.
// Every event is stored in the events table and broadcast via NOTIFY in
// one transaction, so subscribers never see a sequence that was not
// committed.
type Publisher struct {
	db *sql.DB

	// Per-job sequence counters. A job is processed start-to-finish by
	// one worker in one process, so a process-local counter yields the
	// contiguous 1..n sequence. Entries are released on terminal events.
	mu   sync.Mutex
	seqs map[string]int64
}

// NewPublisher creates a Publisher over the shared database handle.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{
		db:   db,
		seqs: make(map[string]int64),
	}
}

// Publish assigns the next sequence for the event's job, persists the
// event, and broadcasts it on the owning user's channel. The sequence is
// written back into evt for callers that need it. Terminal kinds release
// the job's counter.
func (p *Publisher) Publish(ctx context.Context, evt *StatusEvent) error {
	p.mu.Lock()
	p.seqs[evt.JobID]++
	evt.Sequence = p.seqs[evt.JobID]
	p.mu.Unlock()

	payloadJSON, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	if err := p.persistAndNotify(ctx, evt, UserChannel(evt.UserID), payloadJSON); err != nil {
		// Return the sequence if no later publish claimed one, keeping
		// the per-job stream contiguous on transient publish failures.
		p.mu.Lock()
		if p.seqs[evt.JobID] == evt.Sequence {
			p.seqs[evt.JobID]--
		}
		p.mu.Unlock()
		return err
	}

	if evt.Kind.IsTerminal() {
		p.mu.Lock()
		delete(p.seqs, evt.JobID)
		p.mu.Unlock()
	}
	return nil
}

// persistAndNotify stores the event row and fires pg_notify in a single
// transaction (pg_notify is transactional, held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, evt *StatusEvent, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (tenant_id, job_id, user_id, sequence, kind, agent_key, tool_name, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9)
		 RETURNING event_id`,
		evt.TenantID, evt.JobID, evt.UserID, evt.Sequence,
		string(evt.Kind), evt.AgentID, evt.ToolName, evt.Message, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := buildNotifyPayload(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// buildNotifyPayload injects db_event_id (the client's catchup cursor)
// and shrinks to a routing-only envelope if the payload would exceed the
// NOTIFY size cap. Truncated events are refetched from the database by
// the client via catchup.
func buildNotifyPayload(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to decode payload for notify envelope: %w", err)
	}
	m["db_event_id"] = dbEventID

	full, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notify payload: %w", err)
	}
	if len(full) <= notifyLimit {
		return string(full), nil
	}

	truncated, err := json.Marshal(map[string]any{
		"job_id":      m["job_id"],
		"user_id":     m["user_id"],
		"sequence":    m["sequence"],
		"kind":        m["kind"],
		"db_event_id": dbEventID,
		"truncated":   true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncated), nil
}

// CurrentSequence reports the last sequence assigned for a job (0 if
// none). Used by tests and the executor's terminal bookkeeping.
func (p *Publisher) CurrentSequence(jobID string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seqs[jobID]
}
