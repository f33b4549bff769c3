package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: persisted
// status events for the live-job catchup window. Rows are purged after
// the job's grace period; they are not the durable audit trail.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("event_id").
			Unique().
			Immutable().
			Comment("BIGSERIAL, monotonic per instance for catchup"),
		field.String("tenant_id").
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Subscription fan-out key"),
		field.Int64("sequence").
			Immutable().
			Comment("Contiguous per job, starts at 1"),
		field.String("kind").
			Immutable(),
		field.String("agent_key").
			Optional().
			Immutable(),
		field.String("tool_name").
			Optional().
			Immutable(),
		field.Text("message").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("events").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "sequence").
			Unique(),
		index.Fields("user_id", "id"),
		index.Fields("tenant_id"),
	}
}
