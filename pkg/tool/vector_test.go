package tool

import (
	"context"
	"testing"

	"github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedding maps known texts to fixed vectors so the store can be
// exercised without a provider.
func stubEmbedding(vectors map[string][]float32) chromem.EmbeddingFunc {
	return func(_ context.Context, text string) ([]float32, error) {
		if v, ok := vectors[text]; ok {
			return v, nil
		}
		return []float32{0, 0, 1}, nil
	}
}

func newStubVectorStore(vectors map[string][]float32) *VectorStore {
	return &VectorStore{
		db:          chromem.NewDB(),
		embed:       stubEmbedding(vectors),
		collections: make(map[string]*chromem.Collection),
	}
}

func TestVectorStore_SearchEmptyCollection(t *testing.T) {
	store := newStubVectorStore(nil)

	hits, err := store.Search(context.Background(), "tenant-1", "flood-watch", "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestVectorStore_IndexAndSearch(t *testing.T) {
	store := newStubVectorStore(map[string][]float32{
		"river flooding":    {1, 0, 0},
		"wildfire smoke":    {0, 1, 0},
		"water everywhere":  {0.9, 0.1, 0},
	})
	ctx := context.Background()

	require.NoError(t, store.Index(ctx, "tenant-1", "flood-watch", "doc-1", "river flooding", map[string]string{"job_id": "j1"}))
	require.NoError(t, store.Index(ctx, "tenant-1", "flood-watch", "doc-2", "wildfire smoke", nil))

	hits, err := store.Search(ctx, "tenant-1", "flood-watch", "water everywhere", 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "doc-1", hits[0].ID)
	assert.Equal(t, "river flooding", hits[0].Content)
	assert.Equal(t, "j1", hits[0].Metadata["job_id"])
}

func TestVectorStore_CollectionsAreTenantScoped(t *testing.T) {
	store := newStubVectorStore(map[string][]float32{"report": {1, 0, 0}})
	ctx := context.Background()

	require.NoError(t, store.Index(ctx, "tenant-1", "flood-watch", "doc-1", "report", nil))

	hits, err := store.Search(ctx, "tenant-2", "flood-watch", "report", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
