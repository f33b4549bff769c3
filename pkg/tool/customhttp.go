package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/version"
)

// customHTTPBodyCap bounds the response body returned to an agent.
const customHTTPBodyCap = 256 << 10

// CustomHTTPAdapter performs outbound HTTP against an allowlisted set
// of hosts. Only GET calls are idempotent; everything else gets exactly
// one attempt.
type CustomHTTPAdapter struct {
	allowedHosts []string
	client       *http.Client
}

// NewCustomHTTPAdapter creates the custom_http tool adapter.
func NewCustomHTTPAdapter(allowedHosts []string) *CustomHTTPAdapter {
	return &CustomHTTPAdapter{
		allowedHosts: allowedHosts,
		client:       &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *CustomHTTPAdapter) Name() config.ToolName { return config.ToolCustomHTTP }

// Idempotent reports true only for GET (the default method).
func (a *CustomHTTPAdapter) Idempotent(params map[string]any) bool {
	return methodOf(params) == http.MethodGet
}

func methodOf(params map[string]any) string {
	m, _ := params["method"].(string)
	if m == "" {
		return http.MethodGet
	}
	return strings.ToUpper(m)
}

// Invoke expects params {"url": string, "method"?: string, "headers"?:
// map, "body"?: string}.
func (a *CustomHTTPAdapter) Invoke(ctx context.Context, _ Invocation, params map[string]any) (*Result, error) {
	rawURL, ok := params["url"].(string)
	if !ok || rawURL == "" {
		return nil, errors.New("custom_http: params.url is required")
	}

	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("custom_http: invalid url: %w", err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("custom_http: unsupported scheme %q", target.Scheme)
	}
	if !slices.Contains(a.allowedHosts, target.Hostname()) {
		return nil, fmt.Errorf("custom_http: host %q is not allowlisted", target.Hostname())
	}

	var body io.Reader
	if b, ok := params["body"].(string); ok && b != "" {
		body = strings.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, methodOf(params), rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("custom_http: failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", version.Full())
	if headers, ok := params["headers"].(map[string]any); ok {
		for k, v := range headers {
			if s, ok := v.(string); ok {
				req.Header.Set(k, s)
			}
		}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, Transient(fmt.Errorf("custom_http request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, customHTTPBodyCap))
	if err != nil {
		return nil, Transient(fmt.Errorf("custom_http: failed to read response: %w", err))
	}

	if resp.StatusCode >= 500 {
		return nil, Transient(fmt.Errorf("custom_http: upstream returned %d", resp.StatusCode))
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("custom_http: upstream returned %d", resp.StatusCode)
	}
	return &Result{Content: string(data)}, nil
}
