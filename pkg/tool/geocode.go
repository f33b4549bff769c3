package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/version"
)

// geocodeMaxResults caps how many matches a single lookup returns.
const geocodeMaxResults = 5

// GeocodeAdapter resolves place names to coordinates against a
// Nominatim-style endpoint.
type GeocodeAdapter struct {
	cfg    config.HTTPToolConfig
	client *http.Client
}

// NewGeocodeAdapter creates the geocode tool adapter.
func NewGeocodeAdapter(cfg config.HTTPToolConfig) *GeocodeAdapter {
	return &GeocodeAdapter{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (a *GeocodeAdapter) Name() config.ToolName { return config.ToolGeocode }

func (a *GeocodeAdapter) Idempotent(map[string]any) bool { return true }

// geocodeMatch is the trimmed view of one Nominatim result.
type geocodeMatch struct {
	DisplayName string   `json:"display_name"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	BoundingBox []string `json:"boundingbox,omitempty"`
}

// Invoke expects params {"query": string, "limit"?: number}.
func (a *GeocodeAdapter) Invoke(ctx context.Context, _ Invocation, params map[string]any) (*Result, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, errors.New("geocode: params.query is required")
	}
	limit := geocodeMaxResults
	if f, ok := params["limit"].(float64); ok && f > 0 && int(f) < geocodeMaxResults {
		limit = int(f)
	}

	endpoint := a.cfg.BaseURL + "/search?" + url.Values{
		"q":      {query},
		"format": {"jsonv2"},
		"limit":  {strconv.Itoa(limit)},
	}.Encode()

	body, err := a.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var matches []geocodeMatch
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("geocode: unexpected response shape: %w", err)
	}

	content, err := json.Marshal(matches)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to marshal matches: %w", err)
	}
	return &Result{Content: string(content)}, nil
}

func (a *GeocodeAdapter) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to build request: %w", err)
	}
	// Nominatim requires an identifying user agent.
	req.Header.Set("User-Agent", version.Full())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, Transient(fmt.Errorf("geocode request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, Transient(fmt.Errorf("geocode: failed to read response: %w", err))
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return nil, Transient(fmt.Errorf("geocode: provider returned %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: provider returned %d", resp.StatusCode)
	}
	return body, nil
}
