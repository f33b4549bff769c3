package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/siftstack/sift/pkg/models"
)

// DependencyGraph holds the schema definition for the DependencyGraph
// entity. At most one graph per playbook; edges are validated before
// persist (DAG, in-degree <= 1, depth <= 2).
type DependencyGraph struct {
	ent.Schema
}

// Fields of the DependencyGraph.
func (DependencyGraph) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("graph_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("playbook_id").
			Immutable(),
		field.JSON("graph_edges", []models.GraphEdge{}).
			StorageKey("edges").
			Optional(),
		field.Int("version").
			Default(1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DependencyGraph.
func (DependencyGraph) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("playbook", Playbook.Type).
			Ref("graph").
			Field("playbook_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DependencyGraph.
func (DependencyGraph) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "playbook_id").
			Unique(),
	}
}
