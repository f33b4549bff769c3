package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentInvocation holds the schema definition for the AgentInvocation
// entity. One row per (job, agent); the durable audit of what each
// agent saw and produced.
type AgentInvocation struct {
	ent.Schema
}

// Fields of the AgentInvocation.
func (AgentInvocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("invocation_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("agent_key").
			Immutable(),
		field.Int("level").
			Immutable(),
		field.Text("input_view").
			Optional().
			Comment("The rendered input the agent received (post-redaction)"),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("Conforms to the agent's output_schema when status = ok"),
		field.Enum("status").
			Values("pending", "running", "ok", "error", "timeout", "cancelled").
			Default("pending"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentInvocation.
func (AgentInvocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("invocations").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentInvocation.
func (AgentInvocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "agent_key").
			Unique(),
		index.Fields("tenant_id"),
		index.Fields("job_id", "level"),
	}
}
