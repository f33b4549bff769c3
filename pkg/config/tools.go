package config

import "time"

// ToolsConfig holds settings for the tool broker and its adapters.
type ToolsConfig struct {
	// ConcurrencyCeilings caps simultaneous in-flight calls per tool.
	// Tools without an entry use DefaultToolConcurrency.
	ConcurrencyCeilings map[ToolName]int64 `yaml:"concurrency_ceilings"`

	// PermissionCacheTTL bounds how long a broker ACL decision is reused
	// before re-reading the agent definition.
	PermissionCacheTTL time.Duration `yaml:"permission_cache_ttl"`

	// Geocode is the Nominatim-style geocoding endpoint.
	Geocode HTTPToolConfig `yaml:"geocode"`

	// WebSearch is the SearxNG-style JSON search endpoint.
	WebSearch HTTPToolConfig `yaml:"web_search"`

	// CustomHTTPAllowedHosts is the outbound host allowlist for the
	// custom_http tool. Empty means the tool refuses every call.
	CustomHTTPAllowedHosts []string `yaml:"custom_http_allowed_hosts"`

	// DataRowCap bounds rows returned by the data.* tools per call.
	DataRowCap int `yaml:"data_row_cap"`

	// VectorStorePath is the chromem persistence directory. Empty keeps
	// the vector store in memory.
	VectorStorePath string `yaml:"vector_store_path"`
}

// HTTPToolConfig configures one outbound HTTP tool adapter.
type HTTPToolConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultToolConcurrency is the per-tool ceiling when none is configured.
const DefaultToolConcurrency int64 = 8

// DefaultToolsConfig returns the built-in tool defaults.
func DefaultToolsConfig() *ToolsConfig {
	return &ToolsConfig{
		ConcurrencyCeilings: map[ToolName]int64{
			ToolLLM:       4,
			ToolGeocode:   4,
			ToolWebSearch: 4,
		},
		PermissionCacheTTL: 5 * time.Minute,
		Geocode: HTTPToolConfig{
			BaseURL: "https://nominatim.openstreetmap.org",
			Timeout: 10 * time.Second,
		},
		WebSearch: HTTPToolConfig{
			Timeout: 10 * time.Second,
		},
		DataRowCap: 500,
	}
}

// Ceiling returns the concurrency ceiling for a tool.
func (t *ToolsConfig) Ceiling(tool ToolName) int64 {
	if c, ok := t.ConcurrencyCeilings[tool]; ok && c > 0 {
		return c
	}
	return DefaultToolConcurrency
}
