// Code generated by ent, DO NOT EDIT.

package dependencygraph

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/siftstack/sift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldTenantID, v))
}

// PlaybookID applies equality check predicate on the "playbook_id" field. It's identical to PlaybookIDEQ.
func PlaybookID(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldPlaybookID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldContainsFold(FieldTenantID, v))
}

// PlaybookIDEQ applies the EQ predicate on the "playbook_id" field.
func PlaybookIDEQ(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldPlaybookID, v))
}

// PlaybookIDNEQ applies the NEQ predicate on the "playbook_id" field.
func PlaybookIDNEQ(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNEQ(FieldPlaybookID, v))
}

// PlaybookIDIn applies the In predicate on the "playbook_id" field.
func PlaybookIDIn(vs ...string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldIn(FieldPlaybookID, vs...))
}

// PlaybookIDNotIn applies the NotIn predicate on the "playbook_id" field.
func PlaybookIDNotIn(vs ...string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNotIn(FieldPlaybookID, vs...))
}

// PlaybookIDGT applies the GT predicate on the "playbook_id" field.
func PlaybookIDGT(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGT(FieldPlaybookID, v))
}

// PlaybookIDGTE applies the GTE predicate on the "playbook_id" field.
func PlaybookIDGTE(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGTE(FieldPlaybookID, v))
}

// PlaybookIDLT applies the LT predicate on the "playbook_id" field.
func PlaybookIDLT(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLT(FieldPlaybookID, v))
}

// PlaybookIDLTE applies the LTE predicate on the "playbook_id" field.
func PlaybookIDLTE(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLTE(FieldPlaybookID, v))
}

// PlaybookIDContains applies the Contains predicate on the "playbook_id" field.
func PlaybookIDContains(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldContains(FieldPlaybookID, v))
}

// PlaybookIDHasPrefix applies the HasPrefix predicate on the "playbook_id" field.
func PlaybookIDHasPrefix(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldHasPrefix(FieldPlaybookID, v))
}

// PlaybookIDHasSuffix applies the HasSuffix predicate on the "playbook_id" field.
func PlaybookIDHasSuffix(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldHasSuffix(FieldPlaybookID, v))
}

// PlaybookIDEqualFold applies the EqualFold predicate on the "playbook_id" field.
func PlaybookIDEqualFold(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEqualFold(FieldPlaybookID, v))
}

// PlaybookIDContainsFold applies the ContainsFold predicate on the "playbook_id" field.
func PlaybookIDContainsFold(v string) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldContainsFold(FieldPlaybookID, v))
}

// GraphEdgesIsNil applies the IsNil predicate on the "graph_edges" field.
func GraphEdgesIsNil() predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldIsNull(FieldGraphEdges))
}

// GraphEdgesNotNil applies the NotNil predicate on the "graph_edges" field.
func GraphEdgesNotNil() predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNotNull(FieldGraphEdges))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPlaybook applies the HasEdge predicate on the "playbook" edge.
func HasPlaybook() predicate.DependencyGraph {
	return predicate.DependencyGraph(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, PlaybookTable, PlaybookColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlaybookWith applies the HasEdge predicate on the "playbook" edge with a given conditions (other predicates).
func HasPlaybookWith(preds ...predicate.Playbook) predicate.DependencyGraph {
	return predicate.DependencyGraph(func(s *sql.Selector) {
		step := newPlaybookStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DependencyGraph) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DependencyGraph) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DependencyGraph) predicate.DependencyGraph {
	return predicate.DependencyGraph(sql.NotPredicates(p))
}
