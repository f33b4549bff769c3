package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentDefinition holds the schema definition for the AgentDefinition entity.
// Rows are append-only per (tenant, key): updates insert a new version and
// keep the prior row as a backup.
type AgentDefinition struct {
	ent.Schema
}

// Fields of the AgentDefinition.
func (AgentDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_definition_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("agent_key").
			Immutable().
			Comment("Stable identity across versions"),
		field.Enum("class").
			Values("ingest", "query", "management"),
		field.Text("system_prompt"),
		field.JSON("allowed_tools", []string{}),
		field.JSON("output_schema", map[string]string{}).
			Comment("key -> declared type, at most 5 keys"),
		field.String("dependency_parent").
			Optional().
			Nillable().
			Comment("agent_key of the sole parent, same class"),
		field.String("interrogative").
			Optional().
			Nillable().
			Comment("Query-class only"),
		field.Bool("is_builtin").
			Default(false).
			Immutable(),
		field.Bool("enabled").
			Default(true),
		field.Int("version").
			Default(1),
		field.Bool("is_current").
			Default(true).
			Comment("Exactly one current row per (tenant, key) among live rows"),
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
			Nillable().
			Comment("Soft delete while still referenced by a playbook"),
	}
}

// Indexes of the AgentDefinition.
func (AgentDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "agent_key", "version").
			Unique(),
		index.Fields("tenant_id", "agent_key"),
		index.Fields("tenant_id", "class"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
