package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/philippgille/chromem-go"

	"github.com/siftstack/sift/pkg/config"
)

// vectorDefaultTopK is the result count when the caller does not ask
// for one.
const vectorDefaultTopK = 5

// VectorStore is an embedded chromem-go store with one collection per
// (tenant, domain). Ingest artifacts are indexed here so query agents
// can search them semantically.
type VectorStore struct {
	db    *chromem.DB
	embed chromem.EmbeddingFunc

	mu          sync.Mutex
	collections map[string]*chromem.Collection
}

// NewVectorStore opens the store. A non-empty persistPath makes the
// store durable across restarts; empty keeps it in memory.
func NewVectorStore(cfg *config.ToolsConfig, llmCfg *config.LLMConfig) (*VectorStore, error) {
	var (
		db  *chromem.DB
		err error
	)
	if cfg.VectorStorePath != "" {
		db, err = chromem.NewPersistentDB(cfg.VectorStorePath, true)
		if err != nil {
			return nil, fmt.Errorf("failed to open vector store: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	baseURL := llmCfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	embed := chromem.NewEmbeddingFuncOpenAICompat(
		baseURL, os.Getenv(llmCfg.APIKeyEnv), "text-embedding-3-small", nil)

	return &VectorStore{
		db:          db,
		embed:       embed,
		collections: make(map[string]*chromem.Collection),
	}, nil
}

func collectionName(tenantID, domainID string) string {
	return tenantID + "::" + domainID
}

func (s *VectorStore) collection(tenantID, domainID string) (*chromem.Collection, error) {
	name := collectionName(tenantID, domainID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if col, ok := s.collections[name]; ok {
		return col, nil
	}

	col, err := s.db.GetOrCreateCollection(name, nil, s.embed)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection %q: %w", name, err)
	}
	s.collections[name] = col
	return col, nil
}

// Index adds or replaces one document in the tenant/domain collection.
func (s *VectorStore) Index(ctx context.Context, tenantID, domainID, id, content string, metadata map[string]string) error {
	col, err := s.collection(tenantID, domainID)
	if err != nil {
		return err
	}
	doc := chromem.Document{
		ID:       id,
		Content:  content,
		Metadata: metadata,
	}
	if err := col.AddDocuments(ctx, []chromem.Document{doc}, 1); err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	return nil
}

// vectorHit is one search result on the wire.
type vectorHit struct {
	ID       string            `json:"id"`
	Score    float32           `json:"score"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Search runs a semantic query in the tenant/domain collection.
func (s *VectorStore) Search(ctx context.Context, tenantID, domainID, query string, topK int) ([]vectorHit, error) {
	col, err := s.collection(tenantID, domainID)
	if err != nil {
		return nil, err
	}

	if count := col.Count(); topK > count {
		topK = count
	}
	if topK == 0 {
		return nil, nil
	}

	results, err := col.Query(ctx, query, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector query failed: %w", err)
	}

	hits := make([]vectorHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, vectorHit{
			ID:       r.ID,
			Score:    r.Similarity,
			Content:  r.Content,
			Metadata: r.Metadata,
		})
	}
	return hits, nil
}

// VectorSearchAdapter exposes the store as the vector_search tool.
type VectorSearchAdapter struct {
	store *VectorStore
}

// NewVectorSearchAdapter creates the vector_search tool adapter.
func NewVectorSearchAdapter(store *VectorStore) *VectorSearchAdapter {
	return &VectorSearchAdapter{store: store}
}

func (a *VectorSearchAdapter) Name() config.ToolName { return config.ToolVectorSearch }

func (a *VectorSearchAdapter) Idempotent(map[string]any) bool { return true }

// Invoke expects params {"query": string, "domain": string, "top_k"?: number}.
func (a *VectorSearchAdapter) Invoke(ctx context.Context, inv Invocation, params map[string]any) (*Result, error) {
	query := stringParam(params, "query")
	if query == "" {
		return nil, errors.New("vector_search: params.query is required")
	}
	domain := stringParam(params, "domain")
	if domain == "" {
		return nil, errors.New("vector_search: params.domain is required")
	}
	topK := intParam(params, "top_k")
	if topK <= 0 {
		topK = vectorDefaultTopK
	}

	hits, err := a.store.Search(ctx, inv.TenantID, domain, query, topK)
	if err != nil {
		return nil, err
	}

	content, err := json.Marshal(hits)
	if err != nil {
		return nil, fmt.Errorf("vector_search: failed to marshal hits: %w", err)
	}
	return &Result{Content: string(content)}, nil
}
