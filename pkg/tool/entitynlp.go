package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/siftstack/sift/pkg/config"
)

// entityExtractionSystem is the fixed extraction prompt backing the
// entity_nlp tool. Output shape is pinned so downstream agents can rely
// on the keys.
const entityExtractionSystem = `You are an entity extraction engine. From the given text, extract:
- "entities": array of {"text", "type"} where type is one of person, organization, location, facility, event, other
- "category": a single short category label for the text
- "sentiment": one of negative, neutral, positive

Respond with a single JSON object containing exactly those three keys.`

// EntityNLPAdapter implements entity_nlp as an LLM-backed extraction
// with a fixed prompt.
type EntityNLPAdapter struct {
	completer Completer
}

// NewEntityNLPAdapter creates the entity_nlp tool adapter.
func NewEntityNLPAdapter(completer Completer) *EntityNLPAdapter {
	return &EntityNLPAdapter{completer: completer}
}

func (a *EntityNLPAdapter) Name() config.ToolName { return config.ToolEntityNLP }

func (a *EntityNLPAdapter) Idempotent(map[string]any) bool { return true }

// Invoke expects params {"text": string}.
func (a *EntityNLPAdapter) Invoke(ctx context.Context, _ Invocation, params map[string]any) (*Result, error) {
	text, ok := params["text"].(string)
	if !ok || text == "" {
		return nil, errors.New("entity_nlp: params.text is required")
	}

	content, err := a.completer.Complete(ctx, CompletionRequest{
		System: entityExtractionSystem,
		User:   text,
		JSON:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("entity extraction failed: %w", err)
	}
	return &Result{Content: content}, nil
}
