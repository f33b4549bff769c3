package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]any
		wantErr bool
	}{
		{
			name:    "bare object",
			content: `{"location": "London", "confidence": 0.9}`,
			want:    map[string]any{"location": "London", "confidence": 0.9},
		},
		{
			name:    "json code fence",
			content: "```json\n{\"location\": \"London\"}\n```",
			want:    map[string]any{"location": "London"},
		},
		{
			name:    "plain code fence",
			content: "```\n{\"location\": \"London\"}\n```",
			want:    map[string]any{"location": "London"},
		},
		{
			name:    "leading prose",
			content: `Here is the result: {"location": "London"}`,
			want:    map[string]any{"location": "London"},
		},
		{
			name:    "no object",
			content: "I could not determine a location.",
			wantErr: true,
		},
		{
			name:    "truncated object",
			content: `{"location": "Lond`,
			wantErr: true,
		},
		{
			name:    "empty response",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOutput(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseToolCalls(t *testing.T) {
	tests := []struct {
		name   string
		output map[string]any
		want   int
		ok     bool
	}{
		{
			"single call",
			map[string]any{"tool_calls": []any{
				map[string]any{"tool": "geocode", "params": map[string]any{"query": "bridge"}},
			}},
			1, true,
		},
		{
			"params optional",
			map[string]any{"tool_calls": []any{map[string]any{"tool": "web_search"}}},
			1, true,
		},
		{
			"extra keys disqualify the envelope",
			map[string]any{
				"tool_calls": []any{map[string]any{"tool": "geocode"}},
				"location":   "London",
			},
			0, false,
		},
		{"empty list", map[string]any{"tool_calls": []any{}}, 0, false},
		{"wrong shape", map[string]any{"tool_calls": "geocode"}, 0, false},
		{
			"missing tool name",
			map[string]any{"tool_calls": []any{map[string]any{"params": map[string]any{}}}},
			0, false,
		},
		{"plain output", map[string]any{"location": "London"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls, ok := parseToolCalls(tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.Len(t, calls, tt.want)
		})
	}
}
