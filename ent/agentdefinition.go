// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/siftstack/sift/ent/agentdefinition"
)

// AgentDefinition is the model entity for the AgentDefinition schema.
type AgentDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Stable identity across versions
	AgentKey string `json:"agent_key,omitempty"`
	// Class holds the value of the "class" field.
	Class agentdefinition.Class `json:"class,omitempty"`
	// SystemPrompt holds the value of the "system_prompt" field.
	SystemPrompt string `json:"system_prompt,omitempty"`
	// AllowedTools holds the value of the "allowed_tools" field.
	AllowedTools []string `json:"allowed_tools,omitempty"`
	// key -> declared type, at most 5 keys
	OutputSchema map[string]string `json:"output_schema,omitempty"`
	// agent_key of the sole parent, same class
	DependencyParent *string `json:"dependency_parent,omitempty"`
	// Query-class only
	Interrogative *string `json:"interrogative,omitempty"`
	// IsBuiltin holds the value of the "is_builtin" field.
	IsBuiltin bool `json:"is_builtin,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Exactly one current row per (tenant, key) among live rows
	IsCurrent bool `json:"is_current,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete while still referenced by a playbook
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentdefinition.FieldAllowedTools, agentdefinition.FieldOutputSchema:
			values[i] = new([]byte)
		case agentdefinition.FieldIsBuiltin, agentdefinition.FieldEnabled, agentdefinition.FieldIsCurrent:
			values[i] = new(sql.NullBool)
		case agentdefinition.FieldVersion:
			values[i] = new(sql.NullInt64)
		case agentdefinition.FieldID, agentdefinition.FieldTenantID, agentdefinition.FieldAgentKey, agentdefinition.FieldClass, agentdefinition.FieldSystemPrompt, agentdefinition.FieldDependencyParent, agentdefinition.FieldInterrogative, agentdefinition.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case agentdefinition.FieldCreatedAt, agentdefinition.FieldUpdatedAt, agentdefinition.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentDefinition fields.
func (_m *AgentDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentdefinition.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentdefinition.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case agentdefinition.FieldAgentKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_key", values[i])
			} else if value.Valid {
				_m.AgentKey = value.String
			}
		case agentdefinition.FieldClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class", values[i])
			} else if value.Valid {
				_m.Class = agentdefinition.Class(value.String)
			}
		case agentdefinition.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = value.String
			}
		case agentdefinition.FieldAllowedTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedTools); err != nil {
					return fmt.Errorf("unmarshal field allowed_tools: %w", err)
				}
			}
		case agentdefinition.FieldOutputSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputSchema); err != nil {
					return fmt.Errorf("unmarshal field output_schema: %w", err)
				}
			}
		case agentdefinition.FieldDependencyParent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dependency_parent", values[i])
			} else if value.Valid {
				_m.DependencyParent = new(string)
				*_m.DependencyParent = value.String
			}
		case agentdefinition.FieldInterrogative:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interrogative", values[i])
			} else if value.Valid {
				_m.Interrogative = new(string)
				*_m.Interrogative = value.String
			}
		case agentdefinition.FieldIsBuiltin:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_builtin", values[i])
			} else if value.Valid {
				_m.IsBuiltin = value.Bool
			}
		case agentdefinition.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case agentdefinition.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case agentdefinition.FieldIsCurrent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_current", values[i])
			} else if value.Valid {
				_m.IsCurrent = value.Bool
			}
		case agentdefinition.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case agentdefinition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentdefinition.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case agentdefinition.FieldDeletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *AgentDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentDefinition.
// Note that you need to call AgentDefinition.Unwrap() before calling this method if this AgentDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentDefinition) Update() *AgentDefinitionUpdateOne {
	return NewAgentDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentDefinition) Unwrap() *AgentDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("AgentDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("agent_key=")
	builder.WriteString(_m.AgentKey)
	builder.WriteString(", ")
	builder.WriteString("class=")
	builder.WriteString(fmt.Sprintf("%v", _m.Class))
	builder.WriteString(", ")
	builder.WriteString("system_prompt=")
	builder.WriteString(_m.SystemPrompt)
	builder.WriteString(", ")
	builder.WriteString("allowed_tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedTools))
	builder.WriteString(", ")
	builder.WriteString("output_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputSchema))
	builder.WriteString(", ")
	if v := _m.DependencyParent; v != nil {
		builder.WriteString("dependency_parent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Interrogative; v != nil {
		builder.WriteString("interrogative=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_builtin=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBuiltin))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("is_current=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCurrent))
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

// AgentDefinitions is a parsable slice of AgentDefinition.
type AgentDefinitions []*AgentDefinition
