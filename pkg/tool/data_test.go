package tool

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/ent/job"
	"github.com/siftstack/sift/ent/resultartifact"
	"github.com/siftstack/sift/pkg/database"
	"github.com/siftstack/sift/pkg/models"
	testdb "github.com/siftstack/sift/test/database"
)

func seedIngestArtifact(t *testing.T, client *database.Client, tenantID, domainID string, fields map[string]interface{}) string {
	t.Helper()
	ctx := context.Background()
	jobID := uuid.New().String()

	_, err := client.Job.Create().
		SetID(jobID).
		SetTenantID(tenantID).
		SetUserID("alice").
		SetClass(job.ClassIngest).
		SetDomainID(domainID).
		SetInput(&models.JobInput{Text: "report"}).
		SetStatus(job.StatusSucceeded).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ResultArtifact.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetTenantID(tenantID).
		SetClass(resultartifact.ClassIngest).
		SetFields(fields).
		SetAgentStatuses(map[string]models.AgentStatus{"geo": {Status: "ok"}}).
		Save(ctx)
	require.NoError(t, err)

	return jobID
}

func TestDataAdapters(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewDataStore(client.DB(), 500)
	ctx := context.Background()
	inv := Invocation{TenantID: "tenant-1", AgentKey: "what", JobID: "q-1", UserID: "alice"}

	seedIngestArtifact(t, client, "tenant-1", "flood-watch", map[string]interface{}{
		"category":          "flood",
		"geo.lat":           51.5,
		"geo.lon":           -0.12,
		"location":          "London",
		"entity.confidence": 0.9,
	})
	seedIngestArtifact(t, client, "tenant-1", "flood-watch", map[string]interface{}{
		"category":          "flood",
		"geo.lat":           48.85,
		"geo.lon":           2.35,
		"location":          "Paris",
		"entity.confidence": 0.7,
	})
	seedIngestArtifact(t, client, "tenant-1", "wildfires", map[string]interface{}{
		"category": "fire",
	})
	// Another tenant's record must never surface.
	seedIngestArtifact(t, client, "tenant-2", "flood-watch", map[string]interface{}{
		"category": "flood",
	})

	t.Run("retrieval filters by tenant and domain", func(t *testing.T) {
		result, err := NewDataRetrievalAdapter(store).Invoke(ctx, inv, map[string]any{"domain": "flood-watch"})
		require.NoError(t, err)

		var records []record
		require.NoError(t, json.Unmarshal([]byte(result.Content), &records))
		assert.Len(t, records, 2)
		for _, rec := range records {
			assert.Equal(t, "flood-watch", rec.DomainID)
		}
	})

	t.Run("retrieval without domain spans the tenant", func(t *testing.T) {
		result, err := NewDataRetrievalAdapter(store).Invoke(ctx, inv, map[string]any{})
		require.NoError(t, err)

		var records []record
		require.NoError(t, json.Unmarshal([]byte(result.Content), &records))
		assert.Len(t, records, 3)
	})

	t.Run("aggregation groups by field value", func(t *testing.T) {
		result, err := NewDataAggregationAdapter(store).Invoke(ctx, inv, map[string]any{"field": "category"})
		require.NoError(t, err)

		var decoded struct {
			Total  int            `json:"total"`
			Groups map[string]int `json:"groups"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Content), &decoded))
		assert.Equal(t, 3, decoded.Total)
		assert.Equal(t, 2, decoded.Groups["flood"])
		assert.Equal(t, 1, decoded.Groups["fire"])
	})

	t.Run("aggregation requires field", func(t *testing.T) {
		_, err := NewDataAggregationAdapter(store).Invoke(ctx, inv, map[string]any{})
		assert.Error(t, err)
	})

	t.Run("spatial builds features and bounds", func(t *testing.T) {
		result, err := NewDataSpatialAdapter(store).Invoke(ctx, inv, map[string]any{"domain": "flood-watch"})
		require.NoError(t, err)

		var decoded struct {
			Features []spatialFeature `json:"features"`
			Bounds   *spatialBounds   `json:"bounds"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Content), &decoded))
		require.Len(t, decoded.Features, 2)
		require.NotNil(t, decoded.Bounds)
		assert.InDelta(t, 48.85, decoded.Bounds.MinLat, 0.001)
		assert.InDelta(t, 51.5, decoded.Bounds.MaxLat, 0.001)
		assert.InDelta(t, -0.12, decoded.Bounds.MinLon, 0.001)
		assert.InDelta(t, 2.35, decoded.Bounds.MaxLon, 0.001)
	})

	t.Run("spatial skips records without coordinates", func(t *testing.T) {
		result, err := NewDataSpatialAdapter(store).Invoke(ctx, inv, map[string]any{"domain": "wildfires"})
		require.NoError(t, err)

		var decoded struct {
			Features []spatialFeature `json:"features"`
			Bounds   *spatialBounds   `json:"bounds"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Content), &decoded))
		assert.Empty(t, decoded.Features)
		assert.Nil(t, decoded.Bounds)
	})

	t.Run("analytics computes numeric stats", func(t *testing.T) {
		result, err := NewDataAnalyticsAdapter(store).Invoke(ctx, inv, map[string]any{"field": "entity.confidence"})
		require.NoError(t, err)

		var decoded struct {
			Count int     `json:"count"`
			Sum   float64 `json:"sum"`
			Min   float64 `json:"min"`
			Max   float64 `json:"max"`
			Mean  float64 `json:"mean"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Content), &decoded))
		assert.Equal(t, 2, decoded.Count)
		assert.InDelta(t, 1.6, decoded.Sum, 0.001)
		assert.InDelta(t, 0.7, decoded.Min, 0.001)
		assert.InDelta(t, 0.9, decoded.Max, 0.001)
		assert.InDelta(t, 0.8, decoded.Mean, 0.001)
	})
}
