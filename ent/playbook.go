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
)

// Playbook is the model entity for the Playbook schema.
type Playbook struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// DomainID holds the value of the "domain_id" field.
	DomainID string `json:"domain_id,omitempty"`
	// Class holds the value of the "class" field.
	Class playbook.Class `json:"class,omitempty"`
	// Unique within the playbook; all same class, enabled
	AgentKeys []string `json:"agent_keys,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlaybookQuery when eager-loading is set.
	Edges        PlaybookEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlaybookEdges holds the relations/edges for other nodes in the graph.
type PlaybookEdges struct {
	// Graph holds the value of the graph edge.
	Graph *DependencyGraph `json:"graph,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GraphOrErr returns the Graph value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlaybookEdges) GraphOrErr() (*DependencyGraph, error) {
	if e.Graph != nil {
		return e.Graph, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dependencygraph.Label}
	}
	return nil, &NotLoadedError{edge: "graph"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Playbook) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case playbook.FieldAgentKeys:
			values[i] = new([]byte)
		case playbook.FieldVersion:
			values[i] = new(sql.NullInt64)
		case playbook.FieldID, playbook.FieldTenantID, playbook.FieldDomainID, playbook.FieldClass, playbook.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case playbook.FieldCreatedAt, playbook.FieldUpdatedAt, playbook.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Playbook fields.
func (_m *Playbook) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case playbook.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case playbook.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case playbook.FieldDomainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = value.String
			}
		case playbook.FieldClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class", values[i])
			} else if value.Valid {
				_m.Class = playbook.Class(value.String)
			}
		case playbook.FieldAgentKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentKeys); err != nil {
					return fmt.Errorf("unmarshal field agent_keys: %w", err)
				}
			}
		case playbook.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case playbook.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case playbook.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case playbook.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case playbook.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Playbook.
// This includes values selected through modifiers, order, etc.
func (_m *Playbook) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGraph queries the "graph" edge of the Playbook entity.
func (_m *Playbook) QueryGraph() *DependencyGraphQuery {
	return NewPlaybookClient(_m.config).QueryGraph(_m)
}

// Update returns a builder for updating this Playbook.
// Note that you need to call Playbook.Unwrap() before calling this method if this Playbook
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Playbook) Update() *PlaybookUpdateOne {
	return NewPlaybookClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Playbook entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Playbook) Unwrap() *Playbook {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Playbook is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Playbook) String() string {
	var builder strings.Builder
	builder.WriteString("Playbook(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("domain_id=")
	builder.WriteString(_m.DomainID)
	builder.WriteString(", ")
	builder.WriteString("class=")
	builder.WriteString(fmt.Sprintf("%v", _m.Class))
	builder.WriteString(", ")
	builder.WriteString("agent_keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentKeys))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Playbooks is a parsable slice of Playbook.
type Playbooks []*Playbook
