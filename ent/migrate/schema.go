// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentDefinitionsColumns holds the columns for the "agent_definitions" table.
	AgentDefinitionsColumns = []*schema.Column{
		{Name: "agent_definition_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "agent_key", Type: field.TypeString},
		{Name: "class", Type: field.TypeEnum, Enums: []string{"ingest", "query", "management"}},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "allowed_tools", Type: field.TypeJSON},
		{Name: "output_schema", Type: field.TypeJSON},
		{Name: "dependency_parent", Type: field.TypeString, Nullable: true},
		{Name: "interrogative", Type: field.TypeString, Nullable: true},
		{Name: "is_builtin", Type: field.TypeBool, Default: false},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "is_current", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentDefinitionsTable holds the schema information for the "agent_definitions" table.
	AgentDefinitionsTable = &schema.Table{
		Name:       "agent_definitions",
		Columns:    AgentDefinitionsColumns,
		PrimaryKey: []*schema.Column{AgentDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentdefinition_tenant_id_agent_key_version",
				Unique:  true,
				Columns: []*schema.Column{AgentDefinitionsColumns[1], AgentDefinitionsColumns[2], AgentDefinitionsColumns[11]},
			},
			{
				Name:    "agentdefinition_tenant_id_agent_key",
				Unique:  false,
				Columns: []*schema.Column{AgentDefinitionsColumns[1], AgentDefinitionsColumns[2]},
			},
			{
				Name:    "agentdefinition_tenant_id_class",
				Unique:  false,
				Columns: []*schema.Column{AgentDefinitionsColumns[1], AgentDefinitionsColumns[3]},
			},
			{
				Name:    "agentdefinition_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AgentDefinitionsColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// AgentInvocationsColumns holds the columns for the "agent_invocations" table.
	AgentInvocationsColumns = []*schema.Column{
		{Name: "invocation_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "agent_key", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "input_view", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "ok", "error", "timeout", "cancelled"}, Default: "pending"},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "job_id", Type: field.TypeString},
	}
	// AgentInvocationsTable holds the schema information for the "agent_invocations" table.
	AgentInvocationsTable = &schema.Table{
		Name:       "agent_invocations",
		Columns:    AgentInvocationsColumns,
		PrimaryKey: []*schema.Column{AgentInvocationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_invocations_jobs_invocations",
				Columns:    []*schema.Column{AgentInvocationsColumns[11]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentinvocation_job_id_agent_key",
				Unique:  true,
				Columns: []*schema.Column{AgentInvocationsColumns[11], AgentInvocationsColumns[2]},
			},
			{
				Name:    "agentinvocation_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{AgentInvocationsColumns[1]},
			},
			{
				Name:    "agentinvocation_job_id_level",
				Unique:  false,
				Columns: []*schema.Column{AgentInvocationsColumns[11], AgentInvocationsColumns[3]},
			},
		},
	}
	// DependencyGraphsColumns holds the columns for the "dependency_graphs" table.
	DependencyGraphsColumns = []*schema.Column{
		{Name: "graph_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "edges", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "playbook_id", Type: field.TypeString, Unique: true},
	}
	// DependencyGraphsTable holds the schema information for the "dependency_graphs" table.
	DependencyGraphsTable = &schema.Table{
		Name:       "dependency_graphs",
		Columns:    DependencyGraphsColumns,
		PrimaryKey: []*schema.Column{DependencyGraphsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dependency_graphs_playbooks_graph",
				Columns:    []*schema.Column{DependencyGraphsColumns[6]},
				RefColumns: []*schema.Column{PlaybooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dependencygraph_tenant_id_playbook_id",
				Unique:  true,
				Columns: []*schema.Column{DependencyGraphsColumns[1], DependencyGraphsColumns[6]},
			},
		},
	}
	// DomainTemplatesColumns holds the columns for the "domain_templates" table.
	DomainTemplatesColumns = []*schema.Column{
		{Name: "template_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString, Nullable: true},
		{Name: "spec", Type: field.TypeJSON},
		{Name: "is_builtin", Type: field.TypeBool, Default: false},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DomainTemplatesTable holds the schema information for the "domain_templates" table.
	DomainTemplatesTable = &schema.Table{
		Name:       "domain_templates",
		Columns:    DomainTemplatesColumns,
		PrimaryKey: []*schema.Column{DomainTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domaintemplate_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{DomainTemplatesColumns[2], DomainTemplatesColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeInt64, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "kind", Type: field.TypeString},
		{Name: "agent_key", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_jobs_events",
				Columns:    []*schema.Column{EventsColumns[9]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_job_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[9], EventsColumns[3]},
			},
			{
				Name:    "event_user_id_event_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "class", Type: field.TypeEnum, Enums: []string{"ingest", "query", "management"}},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "input", Type: field.TypeJSON},
		{Name: "plan_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "succeeded", "failed", "cancelled"}, Default: "queued"},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7], JobsColumns[12]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7], JobsColumns[11]},
			},
			{
				Name:    "job_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[7]},
			},
		},
	}
	// PlaybooksColumns holds the columns for the "playbooks" table.
	PlaybooksColumns = []*schema.Column{
		{Name: "playbook_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "class", Type: field.TypeEnum, Enums: []string{"ingest", "query", "management"}},
		{Name: "agent_keys", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// PlaybooksTable holds the schema information for the "playbooks" table.
	PlaybooksTable = &schema.Table{
		Name:       "playbooks",
		Columns:    PlaybooksColumns,
		PrimaryKey: []*schema.Column{PlaybooksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "playbook_tenant_id_domain_id_class",
				Unique:  true,
				Columns: []*schema.Column{PlaybooksColumns[1], PlaybooksColumns[2], PlaybooksColumns[3]},
			},
			{
				Name:    "playbook_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{PlaybooksColumns[1]},
			},
		},
	}
	// ResultArtifactsColumns holds the columns for the "result_artifacts" table.
	ResultArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "class", Type: field.TypeEnum, Enums: []string{"ingest", "query", "management"}},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "bullets", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "visualization", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_statuses", Type: field.TypeJSON},
		{Name: "input_refs", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString, Unique: true},
	}
	// ResultArtifactsTable holds the schema information for the "result_artifacts" table.
	ResultArtifactsTable = &schema.Table{
		Name:       "result_artifacts",
		Columns:    ResultArtifactsColumns,
		PrimaryKey: []*schema.Column{ResultArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "result_artifacts_jobs_artifact",
				Columns:    []*schema.Column{ResultArtifactsColumns[10]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "resultartifact_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ResultArtifactsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentDefinitionsTable,
		AgentInvocationsTable,
		DependencyGraphsTable,
		DomainTemplatesTable,
		EventsTable,
		JobsTable,
		PlaybooksTable,
		ResultArtifactsTable,
	}
)

func init() {
	AgentInvocationsTable.ForeignKeys[0].RefTable = JobsTable
	DependencyGraphsTable.ForeignKeys[0].RefTable = PlaybooksTable
	EventsTable.ForeignKeys[0].RefTable = JobsTable
	ResultArtifactsTable.ForeignKeys[0].RefTable = JobsTable
}
