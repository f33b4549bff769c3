// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentDefinition is the predicate function for agentdefinition builders.
type AgentDefinition func(*sql.Selector)

// AgentInvocation is the predicate function for agentinvocation builders.
type AgentInvocation func(*sql.Selector)

// DependencyGraph is the predicate function for dependencygraph builders.
type DependencyGraph func(*sql.Selector)

// DomainTemplate is the predicate function for domaintemplate builders.
type DomainTemplate func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Playbook is the predicate function for playbook builders.
type Playbook func(*sql.Selector)

// ResultArtifact is the predicate function for resultartifact builders.
type ResultArtifact func(*sql.Selector)
