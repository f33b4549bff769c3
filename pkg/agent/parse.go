package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseOutput decodes an LLM response into a flat object. Providers
// sometimes wrap JSON in code fences or lead with prose; the first
// top-level object in the text is taken.
func parseOutput(content string) (map[string]any, error) {
	text := strings.TrimSpace(content)
	text = stripCodeFence(text)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var output map[string]any
	decoder := json.NewDecoder(strings.NewReader(text[start:]))
	if err := decoder.Decode(&output); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	return output, nil
}

// toolCall is one tool request parsed from an LLM response.
type toolCall struct {
	Tool   string
	Params map[string]any
}

// parseToolCalls reports whether an output object is a tool-request
// envelope. A "tool_calls" key with any other shape is not an
// envelope; the object then flows into schema validation and fails
// there as an undeclared key.
func parseToolCalls(output map[string]any) ([]toolCall, bool) {
	raw, ok := output["tool_calls"].([]any)
	if !ok || len(output) != 1 || len(raw) == 0 {
		return nil, false
	}

	calls := make([]toolCall, 0, len(raw))
	for _, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, false
		}
		name, ok := obj["tool"].(string)
		if !ok || name == "" {
			return nil, false
		}
		params, _ := obj["params"].(map[string]any)
		calls = append(calls, toolCall{Tool: name, Params: params})
	}
	return calls, true
}

// stripCodeFence removes a surrounding markdown fence if present.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	body, ok := strings.CutPrefix(text, "```json")
	if !ok {
		body = strings.TrimPrefix(text, "```")
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
