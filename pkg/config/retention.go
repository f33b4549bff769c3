package config

import "time"

// RetentionConfig controls how long terminal jobs and their status
// events are kept. Events are only needed for the live catchup window;
// the durable audit trail is the job and invocation records.
type RetentionConfig struct {
	// JobTTL is how long terminal jobs are retained before purge.
	JobTTL time.Duration `yaml:"job_ttl"`

	// EventGracePeriod is how long status event rows survive after a
	// job reaches a terminal state.
	EventGracePeriod time.Duration `yaml:"event_grace_period"`

	// CleanupInterval is how often the retention scan runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobTTL:           24 * time.Hour,
		EventGracePeriod: 1 * time.Hour,
		CleanupInterval:  15 * time.Minute,
	}
}
