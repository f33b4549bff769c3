package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/siftstack/sift/pkg/models"
)

// ResultArtifact holds the schema definition for the ResultArtifact
// entity. Written once per successful job by the synthesizer. Ingest
// jobs fill fields; query jobs fill bullets/summary/visualization.
type ResultArtifact struct {
	ent.Schema
}

// Fields of the ResultArtifact.
func (ResultArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("class").
			Values("ingest", "query", "management").
			Immutable(),
		field.JSON("fields", map[string]interface{}{}).
			Optional().
			Comment("Namespaced agent outputs plus promoted top-level keys"),
		field.JSON("bullets", []models.Bullet{}).
			Optional().
			Comment("Query results in canonical interrogative order"),
		field.Text("summary").
			Optional(),
		field.JSON("visualization", &models.VisualizationSpec{}).
			Optional(),
		field.JSON("agent_statuses", map[string]models.AgentStatus{}).
			Comment("Per-agent terminal status map, including failures"),
		field.JSON("input_refs", []string{}).
			Optional().
			Comment("Opaque references back to the raw submission"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ResultArtifact.
func (ResultArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("artifact").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ResultArtifact.
func (ResultArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
	}
}
