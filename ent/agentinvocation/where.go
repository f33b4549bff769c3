// Code generated by ent, DO NOT EDIT.

package agentinvocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/siftstack/sift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldJobID, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTenantID, v))
}

// AgentKey applies equality check predicate on the "agent_key" field. It's identical to AgentKeyEQ.
func AgentKey(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldAgentKey, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldLevel, v))
}

// InputView applies equality check predicate on the "input_view" field. It's identical to InputViewEQ.
func InputView(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldInputView, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldFinishedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldJobID, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldTenantID, v))
}

// AgentKeyEQ applies the EQ predicate on the "agent_key" field.
func AgentKeyEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldAgentKey, v))
}

// AgentKeyNEQ applies the NEQ predicate on the "agent_key" field.
func AgentKeyNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldAgentKey, v))
}

// AgentKeyIn applies the In predicate on the "agent_key" field.
func AgentKeyIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldAgentKey, vs...))
}

// AgentKeyNotIn applies the NotIn predicate on the "agent_key" field.
func AgentKeyNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldAgentKey, vs...))
}

// AgentKeyGT applies the GT predicate on the "agent_key" field.
func AgentKeyGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldAgentKey, v))
}

// AgentKeyGTE applies the GTE predicate on the "agent_key" field.
func AgentKeyGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldAgentKey, v))
}

// AgentKeyLT applies the LT predicate on the "agent_key" field.
func AgentKeyLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldAgentKey, v))
}

// AgentKeyLTE applies the LTE predicate on the "agent_key" field.
func AgentKeyLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldAgentKey, v))
}

// AgentKeyContains applies the Contains predicate on the "agent_key" field.
func AgentKeyContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldAgentKey, v))
}

// AgentKeyHasPrefix applies the HasPrefix predicate on the "agent_key" field.
func AgentKeyHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldAgentKey, v))
}

// AgentKeyHasSuffix applies the HasSuffix predicate on the "agent_key" field.
func AgentKeyHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldAgentKey, v))
}

// AgentKeyEqualFold applies the EqualFold predicate on the "agent_key" field.
func AgentKeyEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldAgentKey, v))
}

// AgentKeyContainsFold applies the ContainsFold predicate on the "agent_key" field.
func AgentKeyContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldAgentKey, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldLevel, v))
}

// InputViewEQ applies the EQ predicate on the "input_view" field.
func InputViewEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldInputView, v))
}

// InputViewNEQ applies the NEQ predicate on the "input_view" field.
func InputViewNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldInputView, v))
}

// InputViewIn applies the In predicate on the "input_view" field.
func InputViewIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldInputView, vs...))
}

// InputViewNotIn applies the NotIn predicate on the "input_view" field.
func InputViewNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldInputView, vs...))
}

// InputViewGT applies the GT predicate on the "input_view" field.
func InputViewGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldInputView, v))
}

// InputViewGTE applies the GTE predicate on the "input_view" field.
func InputViewGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldInputView, v))
}

// InputViewLT applies the LT predicate on the "input_view" field.
func InputViewLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldInputView, v))
}

// InputViewLTE applies the LTE predicate on the "input_view" field.
func InputViewLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldInputView, v))
}

// InputViewContains applies the Contains predicate on the "input_view" field.
func InputViewContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldInputView, v))
}

// InputViewHasPrefix applies the HasPrefix predicate on the "input_view" field.
func InputViewHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldInputView, v))
}

// InputViewHasSuffix applies the HasSuffix predicate on the "input_view" field.
func InputViewHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldInputView, v))
}

// InputViewIsNil applies the IsNil predicate on the "input_view" field.
func InputViewIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldInputView))
}

// InputViewNotNil applies the NotNil predicate on the "input_view" field.
func InputViewNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldInputView))
}

// InputViewEqualFold applies the EqualFold predicate on the "input_view" field.
func InputViewEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldInputView, v))
}

// InputViewContainsFold applies the ContainsFold predicate on the "input_view" field.
func InputViewContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldInputView, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldOutput))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.FieldNotNull(FieldFinishedAt))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.AgentInvocation {
	return predicate.AgentInvocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.AgentInvocation {
	return predicate.AgentInvocation(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentInvocation) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentInvocation) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentInvocation) predicate.AgentInvocation {
	return predicate.AgentInvocation(sql.NotPredicates(p))
}
