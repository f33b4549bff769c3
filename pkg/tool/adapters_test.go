package tool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/config"
)

type stubCompleter struct {
	response string
	err      error
	lastReq  CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req CompletionRequest) (string, error) {
	s.lastReq = req
	return s.response, s.err
}

func TestLLMAdapter_RequiresPrompt(t *testing.T) {
	adapter := NewLLMAdapter(&stubCompleter{})

	_, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{})
	assert.Error(t, err)
}

func TestLLMAdapter_PassesPromptAndSystem(t *testing.T) {
	completer := &stubCompleter{response: `{"location":"riverbank"}`}
	adapter := NewLLMAdapter(completer)

	result, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{
		"prompt": "extract the location",
		"system": "you are a geo parser",
		"json":   true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"location":"riverbank"}`, result.Content)
	assert.Equal(t, "extract the location", completer.lastReq.User)
	assert.Equal(t, "you are a geo parser", completer.lastReq.System)
	assert.True(t, completer.lastReq.JSON)
}

func TestEntityNLPAdapter_UsesFixedExtractionPrompt(t *testing.T) {
	completer := &stubCompleter{response: `{"entities":[],"category":"flood","sentiment":"negative"}`}
	adapter := NewEntityNLPAdapter(completer)

	result, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{
		"text": "severe flooding downtown",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"entities":[],"category":"flood","sentiment":"negative"}`, result.Content)
	assert.Equal(t, entityExtractionSystem, completer.lastReq.System)
	assert.Equal(t, "severe flooding downtown", completer.lastReq.User)
	assert.True(t, completer.lastReq.JSON)
}

func TestGeocodeAdapter_ParsesMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "london", r.URL.Query().Get("q"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`[{"display_name":"London, UK","lat":"51.50","lon":"-0.12"}]`))
	}))
	defer server.Close()

	adapter := NewGeocodeAdapter(config.HTTPToolConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	result, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{"query": "london"})
	require.NoError(t, err)

	var matches []geocodeMatch
	require.NoError(t, json.Unmarshal([]byte(result.Content), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "London, UK", matches[0].DisplayName)
	assert.Equal(t, "51.50", matches[0].Lat)
}

func TestGeocodeAdapter_ServerErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := NewGeocodeAdapter(config.HTTPToolConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	_, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{"query": "london"})
	require.Error(t, err)
	assert.True(t, isTransient(err))
}

func TestGeocodeAdapter_ClientErrorIsPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	adapter := NewGeocodeAdapter(config.HTTPToolConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	_, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{"query": "london"})
	require.Error(t, err)
	assert.False(t, isTransient(err))
}

func TestWebSearchAdapter_TrimsResults(t *testing.T) {
	var hits []searchHit
	for range webSearchMaxResults + 3 {
		hits = append(hits, searchHit{Title: "t", URL: "https://example.org"})
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"results": hits})
	}))
	defer server.Close()

	adapter := NewWebSearchAdapter(config.HTTPToolConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	result, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{"query": "flood"})
	require.NoError(t, err)

	var decoded []searchHit
	require.NoError(t, json.Unmarshal([]byte(result.Content), &decoded))
	assert.Len(t, decoded, webSearchMaxResults)
}

func TestWebSearchAdapter_NoEndpointConfigured(t *testing.T) {
	adapter := NewWebSearchAdapter(config.HTTPToolConfig{})
	_, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{"query": "flood"})
	assert.Error(t, err)
}

func TestCustomHTTPAdapter_EnforcesAllowlist(t *testing.T) {
	adapter := NewCustomHTTPAdapter([]string{"api.example.org"})

	_, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{
		"url": "https://evil.example.com/data",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowlisted")
}

func TestCustomHTTPAdapter_GetAllowedHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)
	adapter := NewCustomHTTPAdapter([]string{parsed.Hostname()})

	result, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{"url": server.URL})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, result.Content)
}

func TestCustomHTTPAdapter_IdempotencyByMethod(t *testing.T) {
	adapter := NewCustomHTTPAdapter(nil)

	assert.True(t, adapter.Idempotent(map[string]any{}))
	assert.True(t, adapter.Idempotent(map[string]any{"method": "GET"}))
	assert.True(t, adapter.Idempotent(map[string]any{"method": "get"}))
	assert.False(t, adapter.Idempotent(map[string]any{"method": "POST"}))
	assert.False(t, adapter.Idempotent(map[string]any{"method": "DELETE"}))
}

func TestCustomHTTPAdapter_RejectsNonHTTPScheme(t *testing.T) {
	adapter := NewCustomHTTPAdapter([]string{"example.org"})

	_, err := adapter.Invoke(context.Background(), Invocation{}, map[string]any{
		"url": "ftp://example.org/file",
	})
	assert.Error(t, err)
}

func TestNumericValue(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want float64
		ok   bool
	}{
		{3.5, 3.5, true},
		{int(2), 2, true},
		{int64(7), 7, true},
		{"51.5", 51.5, true},
		{"not a number", 0, false},
		{true, 0, false},
	} {
		got, ok := numericValue(tc.in)
		assert.Equal(t, tc.ok, ok)
		if ok {
			assert.Equal(t, tc.want, got)
		}
	}
}
