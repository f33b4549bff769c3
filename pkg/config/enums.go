package config

// AgentClass partitions agents (and playbooks, and jobs) by the kind of
// work they do. A playbook only references agents of its own class.
type AgentClass string

const (
	// AgentClassIngest processes raw report text into structured fields.
	AgentClassIngest AgentClass = "ingest"
	// AgentClassQuery answers one interrogative axis of a question.
	AgentClassQuery AgentClass = "query"
	// AgentClassManagement maintains existing records (dedupe, rollups).
	AgentClassManagement AgentClass = "management"
)

// IsValid checks if the agent class is valid.
func (c AgentClass) IsValid() bool {
	switch c {
	case AgentClassIngest, AgentClassQuery, AgentClassManagement:
		return true
	default:
		return false
	}
}

// Interrogative is the semantic axis a query-class agent answers.
type Interrogative string

const (
	InterrogativeWhat      Interrogative = "what"
	InterrogativeWhere     Interrogative = "where"
	InterrogativeWhen      Interrogative = "when"
	InterrogativeWho       Interrogative = "who"
	InterrogativeWhy       Interrogative = "why"
	InterrogativeHow       Interrogative = "how"
	InterrogativeWhich     Interrogative = "which"
	InterrogativeHowMany   Interrogative = "how_many"
	InterrogativeHowMuch   Interrogative = "how_much"
	InterrogativeFromWhere Interrogative = "from_where"
	InterrogativeWhatKind  Interrogative = "what_kind"
)

// CanonicalInterrogatives is the canonical bullet ordering for query
// results. Index in this slice is the sort rank.
var CanonicalInterrogatives = []Interrogative{
	InterrogativeWhat,
	InterrogativeWhere,
	InterrogativeWhen,
	InterrogativeWho,
	InterrogativeWhy,
	InterrogativeHow,
	InterrogativeWhich,
	InterrogativeHowMany,
	InterrogativeHowMuch,
	InterrogativeFromWhere,
	InterrogativeWhatKind,
}

// interrogativeRanks is derived from CanonicalInterrogatives at init.
var interrogativeRanks = func() map[Interrogative]int {
	m := make(map[Interrogative]int, len(CanonicalInterrogatives))
	for i, q := range CanonicalInterrogatives {
		m[q] = i
	}
	return m
}()

// interrogativeLabels maps interrogatives to their bullet prefixes.
var interrogativeLabels = map[Interrogative]string{
	InterrogativeWhat:      "What",
	InterrogativeWhere:     "Where",
	InterrogativeWhen:      "When",
	InterrogativeWho:       "Who",
	InterrogativeWhy:       "Why",
	InterrogativeHow:       "How",
	InterrogativeWhich:     "Which",
	InterrogativeHowMany:   "How many",
	InterrogativeHowMuch:   "How much",
	InterrogativeFromWhere: "From where",
	InterrogativeWhatKind:  "What kind",
}

// IsValid checks if the interrogative is in the closed set.
func (q Interrogative) IsValid() bool {
	_, ok := interrogativeRanks[q]
	return ok
}

// Rank returns the canonical sort position. Unknown interrogatives sort last.
func (q Interrogative) Rank() int {
	if r, ok := interrogativeRanks[q]; ok {
		return r
	}
	return len(CanonicalInterrogatives)
}

// Label returns the human-readable bullet prefix (e.g. "How many").
func (q Interrogative) Label() string {
	if l, ok := interrogativeLabels[q]; ok {
		return l
	}
	return string(q)
}

// ToolName identifies a capability exposed through the tool broker.
// The set is closed: agents may only be granted tools listed here.
type ToolName string

const (
	ToolLLM             ToolName = "llm"
	ToolEntityNLP       ToolName = "entity_nlp"
	ToolGeocode         ToolName = "geocode"
	ToolWebSearch       ToolName = "web_search"
	ToolDataRetrieval   ToolName = "data.retrieval"
	ToolDataAggregation ToolName = "data.aggregation"
	ToolDataSpatial     ToolName = "data.spatial"
	ToolDataAnalytics   ToolName = "data.analytics"
	ToolVectorSearch    ToolName = "vector_search"
	ToolCustomHTTP      ToolName = "custom_http"
)

// AllTools lists every tool in the closed set.
var AllTools = []ToolName{
	ToolLLM,
	ToolEntityNLP,
	ToolGeocode,
	ToolWebSearch,
	ToolDataRetrieval,
	ToolDataAggregation,
	ToolDataSpatial,
	ToolDataAnalytics,
	ToolVectorSearch,
	ToolCustomHTTP,
}

// IsValid checks if the tool name is in the closed set.
func (t ToolName) IsValid() bool {
	for _, known := range AllTools {
		if t == known {
			return true
		}
	}
	return false
}

// EventKind identifies a status event. The set is closed and wire-stable.
type EventKind string

const (
	EventPlanLoaded   EventKind = "plan_loaded"
	EventAgentStarted EventKind = "agent_started"
	EventToolInvoked  EventKind = "tool_invoked"
	EventToolDone     EventKind = "tool_done"
	EventToolFailed   EventKind = "tool_failed"
	EventAgentOK      EventKind = "agent_ok"
	EventAgentError   EventKind = "agent_error"
	EventAgentTimeout EventKind = "agent_timeout"
	EventValidating   EventKind = "validating"
	EventSynthesizing EventKind = "synthesizing"
	EventComplete     EventKind = "complete"
	EventFailed       EventKind = "failed"
	EventCancelled    EventKind = "cancelled"
)

// IsTerminal reports whether the event kind ends a job's stream.
func (k EventKind) IsTerminal() bool {
	switch k {
	case EventComplete, EventFailed, EventCancelled:
		return true
	default:
		return false
	}
}
