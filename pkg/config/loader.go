package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// SiftYAMLConfig represents the complete sift.yaml file structure.
type SiftYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Queue     *QueueConfig     `yaml:"queue"`
	Tools     *ToolsConfig     `yaml:"tools"`
	LLM       *LLMConfig       `yaml:"llm"`
	Retention *RetentionConfig `yaml:"retention"`
	Defaults  *Defaults        `yaml:"defaults"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load sift.yaml from configDir (missing file means pure defaults)
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Validate and return
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"max_concurrent_jobs", cfg.Queue.MaxConcurrentJobs,
		"llm_model", cfg.LLM.Model)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		Server:    DefaultServerConfig(),
		Queue:     DefaultQueueConfig(),
		Tools:     DefaultToolsConfig(),
		LLM:       DefaultLLMConfig(),
		Retention: DefaultRetentionConfig(),
		Defaults:  DefaultDefaults(),
	}

	path := filepath.Join(configDir, "sift.yaml")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// No config file: run on defaults. Env-only deployments do this.
		return cfg, nil
	}
	if err != nil {
		return nil, NewLoadError("sift.yaml", err)
	}

	expanded := ExpandEnv(data)

	var fileCfg SiftYAMLConfig
	if err := yaml.Unmarshal(expanded, &fileCfg); err != nil {
		return nil, NewLoadError("sift.yaml", fmt.Errorf("%w: %w", ErrInvalidYAML, err))
	}

	// User-provided values override defaults; unset fields keep them.
	if err := mergeSection(cfg.Server, fileCfg.Server); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Queue, fileCfg.Queue); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Tools, fileCfg.Tools); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.LLM, fileCfg.LLM); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Retention, fileCfg.Retention); err != nil {
		return nil, err
	}
	if err := mergeSection(cfg.Defaults, fileCfg.Defaults); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeSection[T any](dst, src *T) error {
	if src == nil {
		return nil
	}
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return NewLoadError("sift.yaml", err)
	}
	return nil
}
