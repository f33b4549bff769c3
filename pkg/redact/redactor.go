// Package redact strips credential material from tool results and
// status event messages before they leave the broker.
package redact

import (
	"log/slog"

	"github.com/siftstack/sift/pkg/config"
)

// Redactor applies the configured pattern group to outbound text.
// Created once at startup. Thread-safe: compiled patterns are read-only
// after construction.
type Redactor struct {
	enabled  bool
	patterns []*CompiledPattern
}

// NewRedactor compiles the patterns in the configured group. Unknown
// group names yield a redactor with no patterns, which is logged.
func NewRedactor(cfg *config.RedactionDefaults) *Redactor {
	r := &Redactor{enabled: cfg.Enabled}
	if !cfg.Enabled {
		return r
	}

	compiled := compilePatterns()
	group, ok := patternGroups()[cfg.PatternGroup]
	if !ok {
		slog.Error("Unknown redaction pattern group, nothing will be redacted",
			"group", cfg.PatternGroup)
		return r
	}
	for _, name := range group {
		if p, ok := compiled[name]; ok {
			r.patterns = append(r.patterns, p)
		}
	}

	slog.Info("Redactor initialized",
		"group", cfg.PatternGroup, "patterns", len(r.patterns))
	return r
}

// Redact applies every pattern in order and returns the scrubbed text.
func (r *Redactor) Redact(data string) string {
	if !r.enabled || data == "" {
		return data
	}
	for _, p := range r.patterns {
		data = p.Regex.ReplaceAllString(data, p.Replacement)
	}
	return data
}

// RedactMap scrubs every string value of a flat result map in place and
// returns it. Non-string values pass through untouched.
func (r *Redactor) RedactMap(fields map[string]any) map[string]any {
	if !r.enabled || len(fields) == 0 {
		return fields
	}
	for k, v := range fields {
		if s, ok := v.(string); ok {
			fields[k] = r.Redact(s)
		}
	}
	return fields
}
