package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Playbook holds the schema definition for the Playbook entity.
// One playbook per (tenant, domain, class); it lists the agent keys a
// job of that class runs.
type Playbook struct {
	ent.Schema
}

// Fields of the Playbook.
func (Playbook) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("playbook_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("domain_id").
			Immutable(),
		field.Enum("class").
			Values("ingest", "query", "management").
			Immutable(),
		field.JSON("agent_keys", []string{}).
			Comment("Unique within the playbook; all same class, enabled"),
		field.Int("version").
			Default(1),
		field.String("created_by").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Playbook.
func (Playbook) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("graph", DependencyGraph.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Playbook.
func (Playbook) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "domain_id", "class").
			Unique(),
		index.Fields("tenant_id"),
	}
}
