package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/version"
)

// webSearchMaxResults caps how many hits a single search returns.
const webSearchMaxResults = 8

// WebSearchAdapter queries a SearxNG-style JSON search endpoint.
type WebSearchAdapter struct {
	cfg    config.HTTPToolConfig
	client *http.Client
}

// NewWebSearchAdapter creates the web_search tool adapter.
func NewWebSearchAdapter(cfg config.HTTPToolConfig) *WebSearchAdapter {
	return &WebSearchAdapter{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (a *WebSearchAdapter) Name() config.ToolName { return config.ToolWebSearch }

func (a *WebSearchAdapter) Idempotent(map[string]any) bool { return true }

// searchHit is the trimmed view of one search result.
type searchHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
}

// Invoke expects params {"query": string}.
func (a *WebSearchAdapter) Invoke(ctx context.Context, _ Invocation, params map[string]any) (*Result, error) {
	if a.cfg.BaseURL == "" {
		return nil, errors.New("web_search: no endpoint configured")
	}
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, errors.New("web_search: params.query is required")
	}

	endpoint := a.cfg.BaseURL + "/search?" + url.Values{
		"q":      {query},
		"format": {"json"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("web_search: failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", version.Full())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, Transient(fmt.Errorf("web_search request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, Transient(fmt.Errorf("web_search: failed to read response: %w", err))
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return nil, Transient(fmt.Errorf("web_search: provider returned %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("web_search: provider returned %d", resp.StatusCode)
	}

	var decoded struct {
		Results []searchHit `json:"results"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("web_search: unexpected response shape: %w", err)
	}
	if len(decoded.Results) > webSearchMaxResults {
		decoded.Results = decoded.Results[:webSearchMaxResults]
	}

	content, err := json.Marshal(decoded.Results)
	if err != nil {
		return nil, fmt.Errorf("web_search: failed to marshal results: %w", err)
	}
	return &Result{Content: string(content)}, nil
}
