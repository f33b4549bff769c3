package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
)

// Job holds the schema definition for the Job entity. One row per
// ingest/query/management submission; owns its invocations, artifact,
// and status events.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("class").
			Values("ingest", "query", "management").
			Immutable(),
		field.String("domain_id").
			Immutable(),
		field.JSON("input", &models.JobInput{}).
			Immutable(),
		field.JSON("plan_snapshot", &plan.Snapshot{}).
			Optional().
			Comment("Captured once when the worker claims the job, immutable after"),
		field.Enum("status").
			Values("queued", "running", "succeeded", "failed", "cancelled").
			Default("queued"),
		field.String("error_code").
			Optional().
			Nillable().
			Comment("Taxonomy code for failed jobs"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("invocations", AgentInvocation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifact", ResultArtifact.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("tenant_id", "status"),
	}
}
