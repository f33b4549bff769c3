package config

import "time"

// Defaults contains system-wide default values applied when agents or
// jobs don't specify their own.
type Defaults struct {
	// PerAgentTimeout is the budget for a single agent invocation.
	// The effective deadline is min(PerAgentTimeout, remaining job budget).
	PerAgentTimeout time.Duration `yaml:"per_agent_timeout"`

	// AgentToolConcurrency caps simultaneous tool calls within one
	// agent invocation.
	AgentToolConcurrency int64 `yaml:"agent_tool_concurrency"`

	// LLMRetryBase is the initial backoff for transient LLM/tool failures.
	LLMRetryBase time.Duration `yaml:"llm_retry_base"`

	// LLMRetryCap bounds the backoff growth.
	LLMRetryCap time.Duration `yaml:"llm_retry_cap"`

	// LLMRetryMax is the retry budget per call (attempts = 1 + retries).
	LLMRetryMax int `yaml:"llm_retry_max"`

	// Redaction masks configured secret patterns in tool results and
	// event messages before they leave the broker.
	Redaction *RedactionDefaults `yaml:"redaction"`
}

// RedactionDefaults holds secret masking settings.
type RedactionDefaults struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		PerAgentTimeout:      2 * time.Minute,
		AgentToolConcurrency: 4,
		LLMRetryBase:         250 * time.Millisecond,
		LLMRetryCap:          4 * time.Second,
		LLMRetryMax:          3,
		Redaction: &RedactionDefaults{
			Enabled:      true,
			PatternGroup: "security",
		},
	}
}
