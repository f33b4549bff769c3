// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/siftstack/sift/ent/dependencygraph"
	"github.com/siftstack/sift/ent/playbook"
	"github.com/siftstack/sift/pkg/models"
)

// DependencyGraph is the model entity for the DependencyGraph schema.
type DependencyGraph struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// PlaybookID holds the value of the "playbook_id" field.
	PlaybookID string `json:"playbook_id,omitempty"`
	// GraphEdges holds the value of the "graph_edges" field.
	GraphEdges []models.GraphEdge `json:"graph_edges,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DependencyGraphQuery when eager-loading is set.
	Edges        DependencyGraphEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DependencyGraphEdges holds the relations/edges for other nodes in the graph.
type DependencyGraphEdges struct {
	// Playbook holds the value of the playbook edge.
	Playbook *Playbook `json:"playbook,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PlaybookOrErr returns the Playbook value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DependencyGraphEdges) PlaybookOrErr() (*Playbook, error) {
	if e.Playbook != nil {
		return e.Playbook, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: playbook.Label}
	}
	return nil, &NotLoadedError{edge: "playbook"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DependencyGraph) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dependencygraph.FieldGraphEdges:
			values[i] = new([]byte)
		case dependencygraph.FieldVersion:
			values[i] = new(sql.NullInt64)
		case dependencygraph.FieldID, dependencygraph.FieldTenantID, dependencygraph.FieldPlaybookID:
			values[i] = new(sql.NullString)
		case dependencygraph.FieldCreatedAt, dependencygraph.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DependencyGraph fields.
func (_m *DependencyGraph) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dependencygraph.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dependencygraph.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case dependencygraph.FieldPlaybookID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field playbook_id", values[i])
			} else if value.Valid {
				_m.PlaybookID = value.String
			}
		case dependencygraph.FieldGraphEdges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field graph_edges", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GraphEdges); err != nil {
					return fmt.Errorf("unmarshal field graph_edges: %w", err)
				}
			}
		case dependencygraph.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case dependencygraph.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dependencygraph.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DependencyGraph.
// This includes values selected through modifiers, order, etc.
func (_m *DependencyGraph) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlaybook queries the "playbook" edge of the DependencyGraph entity.
func (_m *DependencyGraph) QueryPlaybook() *PlaybookQuery {
	return NewDependencyGraphClient(_m.config).QueryPlaybook(_m)
}

// Update returns a builder for updating this DependencyGraph.
// Note that you need to call DependencyGraph.Unwrap() before calling this method if this DependencyGraph
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DependencyGraph) Update() *DependencyGraphUpdateOne {
	return NewDependencyGraphClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DependencyGraph entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DependencyGraph) Unwrap() *DependencyGraph {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DependencyGraph is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DependencyGraph) String() string {
	var builder strings.Builder
	builder.WriteString("DependencyGraph(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("playbook_id=")
	builder.WriteString(_m.PlaybookID)
	builder.WriteString(", ")
	builder.WriteString("graph_edges=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraphEdges))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DependencyGraphs is a parsable slice of DependencyGraph.
type DependencyGraphs []*DependencyGraph
