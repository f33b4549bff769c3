// Code generated by ent, DO NOT EDIT.

package resultartifact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the resultartifact type in the database.
	Label = "result_artifact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "artifact_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldClass holds the string denoting the class field in the database.
	FieldClass = "class"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldBullets holds the string denoting the bullets field in the database.
	FieldBullets = "bullets"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldVisualization holds the string denoting the visualization field in the database.
	FieldVisualization = "visualization"
	// FieldAgentStatuses holds the string denoting the agent_statuses field in the database.
	FieldAgentStatuses = "agent_statuses"
	// FieldInputRefs holds the string denoting the input_refs field in the database.
	FieldInputRefs = "input_refs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// Table holds the table name of the resultartifact in the database.
	Table = "result_artifacts"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "result_artifacts"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for resultartifact fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldTenantID,
	FieldClass,
	FieldFields,
	FieldBullets,
	FieldSummary,
	FieldVisualization,
	FieldAgentStatuses,
	FieldInputRefs,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Class defines the type for the "class" enum field.
type Class string

// Class values.
const (
	ClassIngest     Class = "ingest"
	ClassQuery      Class = "query"
	ClassManagement Class = "management"
)

func (c Class) String() string {
	return string(c)
}

// ClassValidator is a validator for the "class" field enum values. It is called by the builders before save.
func ClassValidator(c Class) error {
	switch c {
	case ClassIngest, ClassQuery, ClassManagement:
		return nil
	default:
		return fmt.Errorf("resultartifact: invalid enum value for class field: %q", c)
	}
}

// OrderOption defines the ordering options for the ResultArtifact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByClass orders the results by the class field.
func ByClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClass, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
	)
}
