package agent

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/siftstack/sift/pkg/config"
)

// BuildPrompt assembles the user prompt for an invocation. It must be
// deterministic for identical inputs: map-valued sections are rendered
// with sorted keys (encoding/json already sorts map keys), tool names
// are sorted, and section order is fixed.
func BuildPrompt(req Request) string {
	return buildPrompt(req, nil, nil)
}

// buildToolResultsPrompt is the follow-up prompt after a tool round.
// The completion call is stateless, so the original sections are
// repeated alongside the results.
func buildToolResultsPrompt(req Request, calls []toolCall, results []string) string {
	return buildPrompt(req, calls, results)
}

func buildPrompt(req Request, calls []toolCall, results []string) string {
	var b strings.Builder

	b.WriteString("## Input\n\n")
	b.WriteString(req.RawInput)
	b.WriteString("\n")

	if req.ParentOutput != nil {
		b.WriteString("\n## Output from agent ")
		b.WriteString(req.Spec.DependencyParent)
		b.WriteString("\n\n")
		if data, err := json.Marshal(req.ParentOutput); err == nil {
			b.Write(data)
		}
		b.WriteString("\n")
	}

	if tools := callableTools(req.Spec.AllowedTools); len(tools) > 0 {
		b.WriteString("\n## Tools\n\n")
		b.WriteString("You may call these tools before answering: ")
		b.WriteString(strings.Join(tools, ", "))
		b.WriteString(".\nTo call tools, respond with ONLY a JSON object of the form ")
		b.WriteString(`{"tool_calls": [{"tool": "<name>", "params": {...}}]}.`)
		b.WriteString("\nTheir results will be returned to you before you answer.\n")
	}

	if calls != nil {
		b.WriteString("\n## Tool results\n\n")
		for i, call := range calls {
			b.WriteString("### ")
			b.WriteString(call.Tool)
			b.WriteString("\n\n")
			b.WriteString(results[i])
			b.WriteString("\n")
		}
	}

	b.WriteString("\n## Required output\n\n")
	b.WriteString("Respond with a single JSON object containing exactly these keys:\n")
	for _, key := range sortedKeys(req.Spec.OutputSchema) {
		b.WriteString("- \"")
		b.WriteString(key)
		b.WriteString("\" (")
		b.WriteString(req.Spec.OutputSchema[key])
		b.WriteString(")\n")
	}

	return b.String()
}

// callableTools is the sorted set of tools an agent may request from
// its prompt. The llm tool is the completion channel itself, not a
// requestable tool.
func callableTools(allowed []string) []string {
	var tools []string
	for _, t := range allowed {
		if t == string(config.ToolLLM) {
			continue
		}
		tools = append(tools, t)
	}
	sort.Strings(tools)
	return tools
}

// buildRepairPrompt asks for a second, well-formed rendition of a
// malformed response. One repair attempt is permitted per invocation.
func buildRepairPrompt(malformed string, schema map[string]string) string {
	var b strings.Builder
	b.WriteString("Your previous response could not be parsed as a JSON object:\n\n")
	b.WriteString(malformed)
	b.WriteString("\n\nRespond again with ONLY a single valid JSON object containing exactly these keys: ")
	b.WriteString(strings.Join(sortedKeys(schema), ", "))
	b.WriteString(". No prose, no code fences.")
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
