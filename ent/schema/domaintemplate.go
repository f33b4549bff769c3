package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/siftstack/sift/pkg/models"
)

// DomainTemplate holds the schema definition for the DomainTemplate
// entity. Templates are immutable sources; instantiation copies their
// content into a tenant's catalog under fresh agent keys.
type DomainTemplate struct {
	ent.Schema
}

// Fields of the DomainTemplate.
func (DomainTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("template_id").
			Unique().
			Immutable(),
		field.String("name").
			Immutable(),
		field.String("tenant_id").
			Optional().
			Immutable().
			Comment("Empty for globally visible builtin templates"),
		field.JSON("spec", &models.TemplateSpec{}).
			Immutable(),
		field.Bool("is_builtin").
			Default(false).
			Immutable(),
		field.String("created_by").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DomainTemplate.
func (DomainTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name").
			Unique(),
	}
}
