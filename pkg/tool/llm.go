package tool

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/siftstack/sift/pkg/config"
)

// CompletionRequest is one chat completion round trip.
type CompletionRequest struct {
	System string
	User   string
	Model  string // empty uses the configured default
	JSON   bool   // request a JSON-shaped response via response_format
}

// Completer is the narrow completion surface shared by the llm and
// entity_nlp adapters and the synthesizer's summary call.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// LLMClient is a Completer over any OpenAI-compatible endpoint. The API
// key is read from the environment once at construction and held only
// in memory.
type LLMClient struct {
	client openai.Client
	cfg    *config.LLMConfig
}

// NewLLMClient creates the provider client from config.
func NewLLMClient(cfg *config.LLMConfig) (*LLMClient, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("LLM API key environment variable %s is not set", cfg.APIKeyEnv)
	}

	opts := []option.RequestOption{option.WithAPIKey(key)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &LLMClient{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}, nil
}

// Complete runs one chat completion. Provider 5xx and rate-limit
// responses come back marked transient so the broker retries them.
func (c *LLMClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: messages,
	}
	if c.cfg.MaxTokens > 0 {
		params.MaxTokens = openai.Int(c.cfg.MaxTokens)
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) && (apierr.StatusCode >= 500 || apierr.StatusCode == 429) {
			return "", Transient(fmt.Errorf("completion failed: %w", err))
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", Transient(fmt.Errorf("completion timed out: %w", err))
		}
		return "", fmt.Errorf("completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// LLMAdapter exposes the completion provider as the "llm" tool.
type LLMAdapter struct {
	completer Completer
}

// NewLLMAdapter creates the llm tool adapter.
func NewLLMAdapter(completer Completer) *LLMAdapter {
	return &LLMAdapter{completer: completer}
}

func (a *LLMAdapter) Name() config.ToolName { return config.ToolLLM }

// Idempotent is always true: completions have no side effects.
func (a *LLMAdapter) Idempotent(map[string]any) bool { return true }

// Invoke expects params {"prompt": string, "system"?: string, "json"?: bool}.
func (a *LLMAdapter) Invoke(ctx context.Context, _ Invocation, params map[string]any) (*Result, error) {
	prompt, ok := params["prompt"].(string)
	if !ok || prompt == "" {
		return nil, errors.New("llm: params.prompt is required")
	}
	system, _ := params["system"].(string)
	wantJSON, _ := params["json"].(bool)

	content, err := a.completer.Complete(ctx, CompletionRequest{
		System: system,
		User:   prompt,
		JSON:   wantJSON,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Content: content}, nil
}
