// Code generated by ent, DO NOT EDIT.

package agentdefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/siftstack/sift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldTenantID, v))
}

// AgentKey applies equality check predicate on the "agent_key" field. It's identical to AgentKeyEQ.
func AgentKey(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldAgentKey, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldSystemPrompt, v))
}

// DependencyParent applies equality check predicate on the "dependency_parent" field. It's identical to DependencyParentEQ.
func DependencyParent(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldDependencyParent, v))
}

// Interrogative applies equality check predicate on the "interrogative" field. It's identical to InterrogativeEQ.
func Interrogative(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldInterrogative, v))
}

// IsBuiltin applies equality check predicate on the "is_builtin" field. It's identical to IsBuiltinEQ.
func IsBuiltin(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldIsBuiltin, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldEnabled, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldVersion, v))
}

// IsCurrent applies equality check predicate on the "is_current" field. It's identical to IsCurrentEQ.
func IsCurrent(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldIsCurrent, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldTenantID, v))
}

// AgentKeyEQ applies the EQ predicate on the "agent_key" field.
func AgentKeyEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldAgentKey, v))
}

// AgentKeyNEQ applies the NEQ predicate on the "agent_key" field.
func AgentKeyNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldAgentKey, v))
}

// AgentKeyIn applies the In predicate on the "agent_key" field.
func AgentKeyIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldAgentKey, vs...))
}

// AgentKeyNotIn applies the NotIn predicate on the "agent_key" field.
func AgentKeyNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldAgentKey, vs...))
}

// AgentKeyGT applies the GT predicate on the "agent_key" field.
func AgentKeyGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldAgentKey, v))
}

// AgentKeyGTE applies the GTE predicate on the "agent_key" field.
func AgentKeyGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldAgentKey, v))
}

// AgentKeyLT applies the LT predicate on the "agent_key" field.
func AgentKeyLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldAgentKey, v))
}

// AgentKeyLTE applies the LTE predicate on the "agent_key" field.
func AgentKeyLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldAgentKey, v))
}

// AgentKeyContains applies the Contains predicate on the "agent_key" field.
func AgentKeyContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldAgentKey, v))
}

// AgentKeyHasPrefix applies the HasPrefix predicate on the "agent_key" field.
func AgentKeyHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldAgentKey, v))
}

// AgentKeyHasSuffix applies the HasSuffix predicate on the "agent_key" field.
func AgentKeyHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldAgentKey, v))
}

// AgentKeyEqualFold applies the EqualFold predicate on the "agent_key" field.
func AgentKeyEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldAgentKey, v))
}

// AgentKeyContainsFold applies the ContainsFold predicate on the "agent_key" field.
func AgentKeyContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldAgentKey, v))
}

// ClassEQ applies the EQ predicate on the "class" field.
func ClassEQ(v Class) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldClass, v))
}

// ClassNEQ applies the NEQ predicate on the "class" field.
func ClassNEQ(v Class) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldClass, v))
}

// ClassIn applies the In predicate on the "class" field.
func ClassIn(vs ...Class) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldClass, vs...))
}

// ClassNotIn applies the NotIn predicate on the "class" field.
func ClassNotIn(vs ...Class) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldClass, vs...))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// DependencyParentEQ applies the EQ predicate on the "dependency_parent" field.
func DependencyParentEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldDependencyParent, v))
}

// DependencyParentNEQ applies the NEQ predicate on the "dependency_parent" field.
func DependencyParentNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldDependencyParent, v))
}

// DependencyParentIn applies the In predicate on the "dependency_parent" field.
func DependencyParentIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldDependencyParent, vs...))
}

// DependencyParentNotIn applies the NotIn predicate on the "dependency_parent" field.
func DependencyParentNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldDependencyParent, vs...))
}

// DependencyParentGT applies the GT predicate on the "dependency_parent" field.
func DependencyParentGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldDependencyParent, v))
}

// DependencyParentGTE applies the GTE predicate on the "dependency_parent" field.
func DependencyParentGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldDependencyParent, v))
}

// DependencyParentLT applies the LT predicate on the "dependency_parent" field.
func DependencyParentLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldDependencyParent, v))
}

// DependencyParentLTE applies the LTE predicate on the "dependency_parent" field.
func DependencyParentLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldDependencyParent, v))
}

// DependencyParentContains applies the Contains predicate on the "dependency_parent" field.
func DependencyParentContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldDependencyParent, v))
}

// DependencyParentHasPrefix applies the HasPrefix predicate on the "dependency_parent" field.
func DependencyParentHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldDependencyParent, v))
}

// DependencyParentHasSuffix applies the HasSuffix predicate on the "dependency_parent" field.
func DependencyParentHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldDependencyParent, v))
}

// DependencyParentIsNil applies the IsNil predicate on the "dependency_parent" field.
func DependencyParentIsNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIsNull(FieldDependencyParent))
}

// DependencyParentNotNil applies the NotNil predicate on the "dependency_parent" field.
func DependencyParentNotNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotNull(FieldDependencyParent))
}

// DependencyParentEqualFold applies the EqualFold predicate on the "dependency_parent" field.
func DependencyParentEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldDependencyParent, v))
}

// DependencyParentContainsFold applies the ContainsFold predicate on the "dependency_parent" field.
func DependencyParentContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldDependencyParent, v))
}

// InterrogativeEQ applies the EQ predicate on the "interrogative" field.
func InterrogativeEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldInterrogative, v))
}

// InterrogativeNEQ applies the NEQ predicate on the "interrogative" field.
func InterrogativeNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldInterrogative, v))
}

// InterrogativeIn applies the In predicate on the "interrogative" field.
func InterrogativeIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldInterrogative, vs...))
}

// InterrogativeNotIn applies the NotIn predicate on the "interrogative" field.
func InterrogativeNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldInterrogative, vs...))
}

// InterrogativeGT applies the GT predicate on the "interrogative" field.
func InterrogativeGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldInterrogative, v))
}

// InterrogativeGTE applies the GTE predicate on the "interrogative" field.
func InterrogativeGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldInterrogative, v))
}

// InterrogativeLT applies the LT predicate on the "interrogative" field.
func InterrogativeLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldInterrogative, v))
}

// InterrogativeLTE applies the LTE predicate on the "interrogative" field.
func InterrogativeLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldInterrogative, v))
}

// InterrogativeContains applies the Contains predicate on the "interrogative" field.
func InterrogativeContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldInterrogative, v))
}

// InterrogativeHasPrefix applies the HasPrefix predicate on the "interrogative" field.
func InterrogativeHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldInterrogative, v))
}

// InterrogativeHasSuffix applies the HasSuffix predicate on the "interrogative" field.
func InterrogativeHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldInterrogative, v))
}

// InterrogativeIsNil applies the IsNil predicate on the "interrogative" field.
func InterrogativeIsNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIsNull(FieldInterrogative))
}

// InterrogativeNotNil applies the NotNil predicate on the "interrogative" field.
func InterrogativeNotNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotNull(FieldInterrogative))
}

// InterrogativeEqualFold applies the EqualFold predicate on the "interrogative" field.
func InterrogativeEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldInterrogative, v))
}

// InterrogativeContainsFold applies the ContainsFold predicate on the "interrogative" field.
func InterrogativeContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldInterrogative, v))
}

// IsBuiltinEQ applies the EQ predicate on the "is_builtin" field.
func IsBuiltinEQ(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldIsBuiltin, v))
}

// IsBuiltinNEQ applies the NEQ predicate on the "is_builtin" field.
func IsBuiltinNEQ(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldIsBuiltin, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldEnabled, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldVersion, v))
}

// IsCurrentEQ applies the EQ predicate on the "is_current" field.
func IsCurrentEQ(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldIsCurrent, v))
}

// IsCurrentNEQ applies the NEQ predicate on the "is_current" field.
func IsCurrentNEQ(v bool) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldIsCurrent, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentDefinition) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentDefinition) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentDefinition) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.NotPredicates(p))
}
