package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithDefaults(t *testing.T) {
	// Empty directory: everything comes from built-in defaults.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 10, cfg.Queue.MaxConcurrentJobs)
	assert.Equal(t, 100, cfg.Queue.QueueHighWaterMark)
	assert.Equal(t, 10*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 24*time.Hour, cfg.Retention.JobTTL)
	assert.Equal(t, 250*time.Millisecond, cfg.Defaults.LLMRetryBase)
	assert.Equal(t, 4*time.Second, cfg.Defaults.LLMRetryCap)
	assert.Equal(t, 3, cfg.Defaults.LLMRetryMax)
	assert.Equal(t, int64(4), cfg.Defaults.AgentToolConcurrency)
}

func TestInitializeMergesYAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9090
queue:
  worker_count: 2
  job_timeout: 5m
llm:
  model: custom-model
tools:
  data_row_cap: 50
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sift.yaml"), []byte(yaml), 0o600))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden values.
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, "custom-model", cfg.LLM.Model)
	assert.Equal(t, 50, cfg.Tools.DataRowCap)

	// Untouched siblings keep their defaults.
	assert.Equal(t, 10, cfg.Queue.MaxConcurrentJobs)
	assert.Equal(t, "LLM_API_KEY", cfg.LLM.APIKeyEnv)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sift.yaml"), []byte("queue: [not a map"), 0o600))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	yaml := `
queue:
  worker_count: -1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sift.yaml"), []byte(yaml), 0o600))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("SIFT_TEST_MODEL", "env-model")

	out := ExpandEnv([]byte("model: {{.SIFT_TEST_MODEL}}"))
	assert.Equal(t, "model: env-model", string(out))

	// Dollar signs pass through untouched.
	out = ExpandEnv([]byte(`pattern: "^secret.*$"`))
	assert.Equal(t, `pattern: "^secret.*$"`, string(out))

	// Missing variables expand to empty.
	out = ExpandEnv([]byte("key: {{.SIFT_TEST_DOES_NOT_EXIST}}"))
	assert.Equal(t, "key: ", string(out))
}

func TestToolsConfigCeiling(t *testing.T) {
	cfg := DefaultToolsConfig()
	assert.Equal(t, int64(4), cfg.Ceiling(ToolLLM))
	assert.Equal(t, DefaultToolConcurrency, cfg.Ceiling(ToolCustomHTTP))
}

func TestValidationErrorFormatting(t *testing.T) {
	err := NewValidationError("agent", "geo", "output_schema", ErrInvalidValue)
	assert.Contains(t, err.Error(), "agent 'geo'")
	assert.Contains(t, err.Error(), "output_schema")
	assert.ErrorIs(t, err, ErrInvalidValue)

	noField := NewValidationError("playbook", "pb-1", "", ErrMissingRequiredField)
	assert.Contains(t, noField.Error(), "playbook 'pb-1'")
}
