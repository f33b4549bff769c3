// Code generated by ent, DO NOT EDIT.

package dependencygraph

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dependencygraph type in the database.
	Label = "dependency_graph"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "graph_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPlaybookID holds the string denoting the playbook_id field in the database.
	FieldPlaybookID = "playbook_id"
	// FieldGraphEdges holds the string denoting the graph_edges field in the database.
	FieldGraphEdges = "edges"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePlaybook holds the string denoting the playbook edge name in mutations.
	EdgePlaybook = "playbook"
	// PlaybookFieldID holds the string denoting the ID field of the Playbook.
	PlaybookFieldID = "playbook_id"
	// Table holds the table name of the dependencygraph in the database.
	Table = "dependency_graphs"
	// PlaybookTable is the table that holds the playbook relation/edge.
	PlaybookTable = "dependency_graphs"
	// PlaybookInverseTable is the table name for the Playbook entity.
	// It exists in this package in order to avoid circular dependency with the "playbook" package.
	PlaybookInverseTable = "playbooks"
	// PlaybookColumn is the table column denoting the playbook relation/edge.
	PlaybookColumn = "playbook_id"
)

// Columns holds all SQL columns for dependencygraph fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldPlaybookID,
	FieldGraphEdges,
	FieldVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DependencyGraph queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByPlaybookID orders the results by the playbook_id field.
func ByPlaybookID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaybookID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPlaybookField orders the results by playbook field.
func ByPlaybookField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlaybookStep(), sql.OrderByField(field, opts...))
	}
}
func newPlaybookStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlaybookInverseTable, PlaybookFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, PlaybookTable, PlaybookColumn),
	)
}
