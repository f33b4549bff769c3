// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/ent/resultartifact"
	"github.com/siftstack/sift/pkg/models"
)

// ResultArtifact is the model entity for the ResultArtifact schema.
type ResultArtifact struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Class holds the value of the "class" field.
	Class resultartifact.Class `json:"class,omitempty"`
	// Namespaced agent outputs plus promoted top-level keys
	Fields map[string]interface{} `json:"fields,omitempty"`
	// Query results in canonical interrogative order
	Bullets []models.Bullet `json:"bullets,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Visualization holds the value of the "visualization" field.
	Visualization *models.VisualizationSpec `json:"visualization,omitempty"`
	// Per-agent terminal status map, including failures
	AgentStatuses map[string]models.AgentStatus `json:"agent_statuses,omitempty"`
	// Opaque references back to the raw submission
	InputRefs []string `json:"input_refs,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResultArtifactQuery when eager-loading is set.
	Edges        ResultArtifactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResultArtifactEdges holds the relations/edges for other nodes in the graph.
type ResultArtifactEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResultArtifactEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResultArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resultartifact.FieldFields, resultartifact.FieldBullets, resultartifact.FieldVisualization, resultartifact.FieldAgentStatuses, resultartifact.FieldInputRefs:
			values[i] = new([]byte)
		case resultartifact.FieldID, resultartifact.FieldJobID, resultartifact.FieldTenantID, resultartifact.FieldClass, resultartifact.FieldSummary:
			values[i] = new(sql.NullString)
		case resultartifact.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResultArtifact fields.
func (_m *ResultArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resultartifact.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case resultartifact.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case resultartifact.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case resultartifact.FieldClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class", values[i])
			} else if value.Valid {
				_m.Class = resultartifact.Class(value.String)
			}
		case resultartifact.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case resultartifact.FieldBullets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bullets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Bullets); err != nil {
					return fmt.Errorf("unmarshal field bullets: %w", err)
				}
			}
		case resultartifact.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case resultartifact.FieldVisualization:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field visualization", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Visualization); err != nil {
					return fmt.Errorf("unmarshal field visualization: %w", err)
				}
			}
		case resultartifact.FieldAgentStatuses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_statuses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentStatuses); err != nil {
					return fmt.Errorf("unmarshal field agent_statuses: %w", err)
				}
			}
		case resultartifact.FieldInputRefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_refs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputRefs); err != nil {
					return fmt.Errorf("unmarshal field input_refs: %w", err)
				}
			}
		case resultartifact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResultArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *ResultArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ResultArtifact entity.
func (_m *ResultArtifact) QueryJob() *JobQuery {
	return NewResultArtifactClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this ResultArtifact.
// Note that you need to call ResultArtifact.Unwrap() before calling this method if this ResultArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResultArtifact) Update() *ResultArtifactUpdateOne {
	return NewResultArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResultArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResultArtifact) Unwrap() *ResultArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResultArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResultArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("ResultArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("class=")
	builder.WriteString(fmt.Sprintf("%v", _m.Class))
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("bullets=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bullets))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("visualization=")
	builder.WriteString(fmt.Sprintf("%v", _m.Visualization))
	builder.WriteString(", ")
	builder.WriteString("agent_statuses=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentStatuses))
	builder.WriteString(", ")
	builder.WriteString("input_refs=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputRefs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ResultArtifacts is a parsable slice of ResultArtifact.
type ResultArtifacts []*ResultArtifact
