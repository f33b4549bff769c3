package config

import "time"

// LLMConfig configures the completion provider behind the llm and
// entity_nlp tools and the synthesizer's summary call. Any
// OpenAI-compatible endpoint works; the key is resolved from the
// environment and held in memory only.
type LLMConfig struct {
	// BaseURL overrides the provider endpoint. Empty uses the SDK default.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Model is the completion model for agent invocations.
	Model string `yaml:"model"`

	// SummaryModel is the model for the synthesizer's summary call.
	// Empty falls back to Model.
	SummaryModel string `yaml:"summary_model"`

	// RequestTimeout bounds a single completion round trip.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxTokens caps completion length. Zero leaves it to the provider.
	MaxTokens int64 `yaml:"max_tokens"`
}

// DefaultLLMConfig returns the built-in LLM provider defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKeyEnv:      "LLM_API_KEY",
		Model:          "gpt-4o-mini",
		RequestTimeout: 60 * time.Second,
	}
}

// ResolvedSummaryModel returns the summary model, falling back to Model.
func (c *LLMConfig) ResolvedSummaryModel() string {
	if c.SummaryModel != "" {
		return c.SummaryModel
	}
	return c.Model
}
