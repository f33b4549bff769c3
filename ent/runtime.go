// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/siftstack/sift/ent/agentdefinition"
	"github.com/siftstack/sift/ent/dependencygraph"
	"github.com/siftstack/sift/ent/domaintemplate"
	"github.com/siftstack/sift/ent/event"
	"github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/ent/playbook"
	"github.com/siftstack/sift/ent/resultartifact"
	"github.com/siftstack/sift/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentdefinitionFields := schema.AgentDefinition{}.Fields()
	_ = agentdefinitionFields
	// agentdefinitionDescIsBuiltin is the schema descriptor for is_builtin field.
	agentdefinitionDescIsBuiltin := agentdefinitionFields[9].Descriptor()
	// agentdefinition.DefaultIsBuiltin holds the default value on creation for the is_builtin field.
	agentdefinition.DefaultIsBuiltin = agentdefinitionDescIsBuiltin.Default.(bool)
	// agentdefinitionDescEnabled is the schema descriptor for enabled field.
	agentdefinitionDescEnabled := agentdefinitionFields[10].Descriptor()
	// agentdefinition.DefaultEnabled holds the default value on creation for the enabled field.
	agentdefinition.DefaultEnabled = agentdefinitionDescEnabled.Default.(bool)
	// agentdefinitionDescVersion is the schema descriptor for version field.
	agentdefinitionDescVersion := agentdefinitionFields[11].Descriptor()
	// agentdefinition.DefaultVersion holds the default value on creation for the version field.
	agentdefinition.DefaultVersion = agentdefinitionDescVersion.Default.(int)
	// agentdefinitionDescIsCurrent is the schema descriptor for is_current field.
	agentdefinitionDescIsCurrent := agentdefinitionFields[12].Descriptor()
	// agentdefinition.DefaultIsCurrent holds the default value on creation for the is_current field.
	agentdefinition.DefaultIsCurrent = agentdefinitionDescIsCurrent.Default.(bool)
	// agentdefinitionDescCreatedAt is the schema descriptor for created_at field.
	agentdefinitionDescCreatedAt := agentdefinitionFields[14].Descriptor()
	// agentdefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentdefinition.DefaultCreatedAt = agentdefinitionDescCreatedAt.Default.(func() time.Time)
	// agentdefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	agentdefinitionDescUpdatedAt := agentdefinitionFields[15].Descriptor()
	// agentdefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentdefinition.DefaultUpdatedAt = agentdefinitionDescUpdatedAt.Default.(func() time.Time)
	// agentdefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentdefinition.UpdateDefaultUpdatedAt = agentdefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentinvocationFields := schema.AgentInvocation{}.Fields()
	_ = agentinvocationFields
	dependencygraphFields := schema.DependencyGraph{}.Fields()
	_ = dependencygraphFields
	// dependencygraphDescVersion is the schema descriptor for version field.
	dependencygraphDescVersion := dependencygraphFields[4].Descriptor()
	// dependencygraph.DefaultVersion holds the default value on creation for the version field.
	dependencygraph.DefaultVersion = dependencygraphDescVersion.Default.(int)
	// dependencygraphDescCreatedAt is the schema descriptor for created_at field.
	dependencygraphDescCreatedAt := dependencygraphFields[5].Descriptor()
	// dependencygraph.DefaultCreatedAt holds the default value on creation for the created_at field.
	dependencygraph.DefaultCreatedAt = dependencygraphDescCreatedAt.Default.(func() time.Time)
	// dependencygraphDescUpdatedAt is the schema descriptor for updated_at field.
	dependencygraphDescUpdatedAt := dependencygraphFields[6].Descriptor()
	// dependencygraph.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dependencygraph.DefaultUpdatedAt = dependencygraphDescUpdatedAt.Default.(func() time.Time)
	// dependencygraph.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dependencygraph.UpdateDefaultUpdatedAt = dependencygraphDescUpdatedAt.UpdateDefault.(func() time.Time)
	domaintemplateFields := schema.DomainTemplate{}.Fields()
	_ = domaintemplateFields
	// domaintemplateDescIsBuiltin is the schema descriptor for is_builtin field.
	domaintemplateDescIsBuiltin := domaintemplateFields[4].Descriptor()
	// domaintemplate.DefaultIsBuiltin holds the default value on creation for the is_builtin field.
	domaintemplate.DefaultIsBuiltin = domaintemplateDescIsBuiltin.Default.(bool)
	// domaintemplateDescCreatedAt is the schema descriptor for created_at field.
	domaintemplateDescCreatedAt := domaintemplateFields[6].Descriptor()
	// domaintemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	domaintemplate.DefaultCreatedAt = domaintemplateDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[9].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[12].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	playbookFields := schema.Playbook{}.Fields()
	_ = playbookFields
	// playbookDescVersion is the schema descriptor for version field.
	playbookDescVersion := playbookFields[5].Descriptor()
	// playbook.DefaultVersion holds the default value on creation for the version field.
	playbook.DefaultVersion = playbookDescVersion.Default.(int)
	// playbookDescCreatedAt is the schema descriptor for created_at field.
	playbookDescCreatedAt := playbookFields[7].Descriptor()
	// playbook.DefaultCreatedAt holds the default value on creation for the created_at field.
	playbook.DefaultCreatedAt = playbookDescCreatedAt.Default.(func() time.Time)
	// playbookDescUpdatedAt is the schema descriptor for updated_at field.
	playbookDescUpdatedAt := playbookFields[8].Descriptor()
	// playbook.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	playbook.DefaultUpdatedAt = playbookDescUpdatedAt.Default.(func() time.Time)
	// playbook.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	playbook.UpdateDefaultUpdatedAt = playbookDescUpdatedAt.UpdateDefault.(func() time.Time)
	resultartifactFields := schema.ResultArtifact{}.Fields()
	_ = resultartifactFields
	// resultartifactDescCreatedAt is the schema descriptor for created_at field.
	resultartifactDescCreatedAt := resultartifactFields[10].Descriptor()
	// resultartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	resultartifact.DefaultCreatedAt = resultartifactDescCreatedAt.Default.(func() time.Time)
}
