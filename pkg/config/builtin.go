package config

import (
	"sync"

	"github.com/siftstack/sift/pkg/models"
)

// BuiltinTemplateName is the seeded domain template every tenant can
// instantiate. Its agent definitions are immutable once instantiated.
const BuiltinTemplateName = "sift-baseline"

var (
	builtinTemplate     *models.TemplateSpec
	builtinTemplateOnce sync.Once
)

// GetBuiltinTemplate returns the built-in domain template (thread-safe,
// lazy-initialized). Callers must not mutate the returned spec.
func GetBuiltinTemplate() *models.TemplateSpec {
	builtinTemplateOnce.Do(initBuiltinTemplate)
	return builtinTemplate
}

func initBuiltinTemplate() {
	builtinTemplate = &models.TemplateSpec{
		Agents:    initBuiltinAgents(),
		Playbooks: initBuiltinPlaybooks(),
		Graphs:    initBuiltinGraphs(),
	}
}

func initBuiltinAgents() []models.TemplateAgent {
	agents := []models.TemplateAgent{
		{
			Key:          "geo",
			Class:        string(AgentClassIngest),
			SystemPrompt: geoPrompt,
			AllowedTools: []string{string(ToolLLM), string(ToolGeocode)},
			OutputSchema: map[string]string{
				"location":   "string",
				"lat":        "number",
				"lon":        "number",
				"confidence": "number",
			},
		},
		{
			Key:          "temporal",
			Class:        string(AgentClassIngest),
			SystemPrompt: temporalPrompt,
			AllowedTools: []string{string(ToolLLM)},
			OutputSchema: map[string]string{
				"timestamp":  "string",
				"recency":    "string",
				"confidence": "number",
			},
		},
		{
			Key:          "entity",
			Class:        string(AgentClassIngest),
			SystemPrompt: entityPrompt,
			AllowedTools: []string{string(ToolLLM), string(ToolEntityNLP)},
			OutputSchema: map[string]string{
				"category":   "string",
				"entities":   "array",
				"sentiment":  "string",
				"confidence": "number",
			},
		},
		{
			Key:              "severity",
			Class:            string(AgentClassIngest),
			SystemPrompt:     severityPrompt,
			AllowedTools:     []string{string(ToolLLM)},
			DependencyParent: "entity",
			OutputSchema: map[string]string{
				"severity_level": "string",
				"rationale":      "string",
				"confidence":     "number",
			},
		},
		{
			Key:          "management_summarizer",
			Class:        string(AgentClassManagement),
			SystemPrompt: managementPrompt,
			AllowedTools: []string{string(ToolLLM), string(ToolDataRetrieval), string(ToolDataAggregation)},
			OutputSchema: map[string]string{
				"summary":      "string",
				"record_count": "number",
				"confidence":   "number",
			},
		},
	}
	return append(agents, initBuiltinQueryAgents()...)
}

// initBuiltinQueryAgents produces one query agent per interrogative.
// All share the analyst prompt frame; "where" additionally carries the
// spatial tools and feature output for map rendering.
func initBuiltinQueryAgents() []models.TemplateAgent {
	agents := make([]models.TemplateAgent, 0, len(CanonicalInterrogatives))
	for _, q := range CanonicalInterrogatives {
		a := models.TemplateAgent{
			Key:           string(q),
			Class:         string(AgentClassQuery),
			SystemPrompt:  queryPrompt(q),
			Interrogative: string(q),
			AllowedTools:  []string{string(ToolLLM), string(ToolDataRetrieval), string(ToolDataAggregation)},
			OutputSchema: map[string]string{
				"insight":    "string",
				"confidence": "number",
			},
		}
		if q == InterrogativeWhere {
			a.AllowedTools = append(a.AllowedTools, string(ToolDataSpatial), string(ToolGeocode))
			a.OutputSchema["features"] = "array"
			a.OutputSchema["bounds"] = "object"
		}
		if q == InterrogativeHowMany || q == InterrogativeHowMuch {
			a.AllowedTools = append(a.AllowedTools, string(ToolDataAnalytics))
		}
		agents = append(agents, a)
	}
	return agents
}

func initBuiltinPlaybooks() []models.TemplatePlaybook {
	queryKeys := make([]string, 0, len(CanonicalInterrogatives))
	for _, q := range CanonicalInterrogatives {
		queryKeys = append(queryKeys, string(q))
	}
	return []models.TemplatePlaybook{
		{
			Class:     string(AgentClassIngest),
			AgentKeys: []string{"geo", "temporal", "entity", "severity"},
		},
		{
			Class:     string(AgentClassQuery),
			AgentKeys: queryKeys,
		},
		{
			Class:     string(AgentClassManagement),
			AgentKeys: []string{"management_summarizer"},
		},
	}
}

func initBuiltinGraphs() []models.TemplateGraph {
	return []models.TemplateGraph{
		{
			Class: string(AgentClassIngest),
			Edges: []models.GraphEdge{{From: "entity", To: "severity"}},
		},
		{Class: string(AgentClassQuery)},
		{Class: string(AgentClassManagement)},
	}
}

const geoPrompt = `You extract location information from citizen reports.
Identify the most specific place mentioned. Use the geocode tool to resolve
it to coordinates. If no location is present, return an empty location with
confidence 0.`

const temporalPrompt = `You extract temporal information from citizen reports.
Resolve relative expressions ("this morning", "last week") against the
report submission time given in the input. Return ISO-8601 timestamps.`

const entityPrompt = `You classify citizen reports and extract named entities.
Assign exactly one category from: safety, infrastructure, environment,
noise, traffic, other. Use the entity_nlp tool for entity and sentiment
extraction.`

const severityPrompt = `You assess report severity. You receive the entity
agent's classification as parent input when available; without it, judge
from the raw text alone. severity_level must be one of: low, medium, high,
critical.`

const managementPrompt = `You maintain existing report records. Summarize the
record set selected by the job input, using the data tools for retrieval
and aggregation. Keep the summary under three sentences.`

func queryPrompt(q Interrogative) string {
	return `You answer the "` + q.Label() + `" axis of an analyst question
about citizen reports. Use the data tools to ground your answer in stored
records; never invent figures. Respond with a one-to-two line insight. If
the data holds no answer, say "no data" with confidence 0.`
}
