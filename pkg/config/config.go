package config

import "fmt"

// Config is the umbrella system-configuration object returned by
// Initialize() and passed down from the process entry point. Catalog
// content (agents, playbooks, graphs, templates) is data in Postgres,
// managed through the Config API, and is deliberately not here.
type Config struct {
	configDir string

	Server    *ServerConfig
	Queue     *QueueConfig
	Tools     *ToolsConfig
	LLM       *LLMConfig
	Retention *RetentionConfig
	Defaults  *Defaults
}

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	Host             string   `yaml:"host"`
	Port             int      `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: "0.0.0.0",
		Port: 8080,
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Validate checks the loaded configuration for values the process
// cannot start with. Fail-fast at startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return NewValidationError("server", "server", "port", fmt.Errorf("%w: %d", ErrInvalidValue, c.Server.Port))
	}
	if c.Queue.WorkerCount <= 0 {
		return NewValidationError("queue", "queue", "worker_count", fmt.Errorf("%w: %d", ErrInvalidValue, c.Queue.WorkerCount))
	}
	if c.Queue.MaxConcurrentJobs <= 0 {
		return NewValidationError("queue", "queue", "max_concurrent_jobs", fmt.Errorf("%w: %d", ErrInvalidValue, c.Queue.MaxConcurrentJobs))
	}
	if c.Queue.QueueHighWaterMark < c.Queue.MaxConcurrentJobs {
		return NewValidationError("queue", "queue", "queue_high_water_mark",
			fmt.Errorf("%w: must be >= max_concurrent_jobs", ErrInvalidValue))
	}
	if c.Queue.JobTimeout <= 0 {
		return NewValidationError("queue", "queue", "job_timeout", ErrInvalidValue)
	}
	if c.LLM.Model == "" {
		return NewValidationError("llm", "llm", "model", ErrMissingRequiredField)
	}
	if c.LLM.APIKeyEnv == "" {
		return NewValidationError("llm", "llm", "api_key_env", ErrMissingRequiredField)
	}
	if c.Defaults.PerAgentTimeout <= 0 {
		return NewValidationError("defaults", "defaults", "per_agent_timeout", ErrInvalidValue)
	}
	if c.Defaults.AgentToolConcurrency <= 0 {
		return NewValidationError("defaults", "defaults", "agent_tool_concurrency", ErrInvalidValue)
	}
	return nil
}
