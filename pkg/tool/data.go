package tool

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/siftstack/sift/pkg/config"
)

// DataStore gives the data.* tools read-only access to ingested
// records: the artifacts produced by prior ingest jobs in the caller's
// tenant. Every query is tenant-filtered and row-capped.
type DataStore struct {
	db     *sql.DB
	rowCap int
}

// NewDataStore creates the shared store behind the data.* adapters.
func NewDataStore(db *sql.DB, rowCap int) *DataStore {
	return &DataStore{db: db, rowCap: rowCap}
}

// record is one ingested artifact row.
type record struct {
	JobID     string         `json:"job_id"`
	DomainID  string         `json:"domain_id"`
	CreatedAt time.Time      `json:"created_at"`
	Fields    map[string]any `json:"fields"`
}

// fetch returns ingest artifacts for a tenant, newest first. domainID
// empty means all domains. limit is clamped to the row cap.
func (s *DataStore) fetch(ctx context.Context, tenantID, domainID string, limit int) ([]record, error) {
	if limit <= 0 || limit > s.rowCap {
		limit = s.rowCap
	}

	query := `SELECT r.job_id, j.domain_id, r.created_at, r.fields
	          FROM result_artifacts r
	          JOIN jobs j ON j.job_id = r.job_id
	          WHERE r.tenant_id = $1 AND r.class = 'ingest'`
	args := []any{tenantID}
	if domainID != "" {
		query += ` AND j.domain_id = $2`
		args = append(args, domainID)
	}
	query += fmt.Sprintf(` ORDER BY r.created_at DESC LIMIT %d`, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, Transient(fmt.Errorf("record query failed: %w", err))
	}
	defer rows.Close()

	var records []record
	for rows.Next() {
		var (
			rec    record
			fields []byte
		)
		if err := rows.Scan(&rec.JobID, &rec.DomainID, &rec.CreatedAt, &fields); err != nil {
			return nil, fmt.Errorf("record scan failed: %w", err)
		}
		if len(fields) > 0 {
			if err := json.Unmarshal(fields, &rec.Fields); err != nil {
				return nil, fmt.Errorf("record fields decode failed: %w", err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// fieldValue looks up a (possibly namespaced) key in a record's fields.
func fieldValue(rec record, key string) (any, bool) {
	v, ok := rec.Fields[key]
	return v, ok
}

// numericValue coerces a field value to float64.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func stringParam(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

func intParam(params map[string]any, key string) int {
	if f, ok := params[key].(float64); ok {
		return int(f)
	}
	return 0
}

func marshalResult(v any) (*Result, error) {
	content, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return &Result{Content: string(content)}, nil
}

// DataRetrievalAdapter implements data.retrieval: raw record listing.
type DataRetrievalAdapter struct {
	store *DataStore
}

// NewDataRetrievalAdapter creates the data.retrieval tool adapter.
func NewDataRetrievalAdapter(store *DataStore) *DataRetrievalAdapter {
	return &DataRetrievalAdapter{store: store}
}

func (a *DataRetrievalAdapter) Name() config.ToolName { return config.ToolDataRetrieval }
func (a *DataRetrievalAdapter) Idempotent(map[string]any) bool { return true }

// Invoke expects params {"domain"?: string, "limit"?: number}.
func (a *DataRetrievalAdapter) Invoke(ctx context.Context, inv Invocation, params map[string]any) (*Result, error) {
	records, err := a.store.fetch(ctx, inv.TenantID, stringParam(params, "domain"), intParam(params, "limit"))
	if err != nil {
		return nil, err
	}
	return marshalResult(records)
}

// DataAggregationAdapter implements data.aggregation: grouped counts
// over one field of the ingested records.
type DataAggregationAdapter struct {
	store *DataStore
}

// NewDataAggregationAdapter creates the data.aggregation tool adapter.
func NewDataAggregationAdapter(store *DataStore) *DataAggregationAdapter {
	return &DataAggregationAdapter{store: store}
}

func (a *DataAggregationAdapter) Name() config.ToolName { return config.ToolDataAggregation }
func (a *DataAggregationAdapter) Idempotent(map[string]any) bool { return true }

// Invoke expects params {"field": string, "domain"?: string}. Returns
// {"total": n, "groups": {value: count}} for the given field.
func (a *DataAggregationAdapter) Invoke(ctx context.Context, inv Invocation, params map[string]any) (*Result, error) {
	field := stringParam(params, "field")
	if field == "" {
		return nil, errors.New("data.aggregation: params.field is required")
	}

	records, err := a.store.fetch(ctx, inv.TenantID, stringParam(params, "domain"), 0)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]int)
	for _, rec := range records {
		if v, ok := fieldValue(rec, field); ok {
			groups[fmt.Sprint(v)]++
		}
	}
	return marshalResult(map[string]any{
		"total":  len(records),
		"field":  field,
		"groups": groups,
	})
}

// DataSpatialAdapter implements data.spatial: records with coordinates
// as a feature set plus bounding box.
type DataSpatialAdapter struct {
	store *DataStore
}

// NewDataSpatialAdapter creates the data.spatial tool adapter.
func NewDataSpatialAdapter(store *DataStore) *DataSpatialAdapter {
	return &DataSpatialAdapter{store: store}
}

func (a *DataSpatialAdapter) Name() config.ToolName { return config.ToolDataSpatial }
func (a *DataSpatialAdapter) Idempotent(map[string]any) bool { return true }

type spatialFeature struct {
	JobID string  `json:"job_id"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label,omitempty"`
}

type spatialBounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Invoke expects params {"domain"?: string, "limit"?: number}. Records
// carry coordinates in the geo agent's namespaced keys.
func (a *DataSpatialAdapter) Invoke(ctx context.Context, inv Invocation, params map[string]any) (*Result, error) {
	records, err := a.store.fetch(ctx, inv.TenantID, stringParam(params, "domain"), intParam(params, "limit"))
	if err != nil {
		return nil, err
	}

	var (
		features []spatialFeature
		bounds   *spatialBounds
	)
	for _, rec := range records {
		lat, latOK := recordCoord(rec, "geo.lat", "lat")
		lon, lonOK := recordCoord(rec, "geo.lon", "lon")
		if !latOK || !lonOK {
			continue
		}
		label, _ := fieldValue(rec, "location")
		labelStr, _ := label.(string)
		features = append(features, spatialFeature{JobID: rec.JobID, Lat: lat, Lon: lon, Label: labelStr})

		if bounds == nil {
			bounds = &spatialBounds{MinLat: lat, MinLon: lon, MaxLat: lat, MaxLon: lon}
			continue
		}
		bounds.MinLat = min(bounds.MinLat, lat)
		bounds.MinLon = min(bounds.MinLon, lon)
		bounds.MaxLat = max(bounds.MaxLat, lat)
		bounds.MaxLon = max(bounds.MaxLon, lon)
	}

	return marshalResult(map[string]any{
		"features": features,
		"bounds":   bounds,
	})
}

func recordCoord(rec record, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := fieldValue(rec, key); ok {
			if f, ok := numericValue(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// DataAnalyticsAdapter implements data.analytics: numeric summary
// statistics over one field.
type DataAnalyticsAdapter struct {
	store *DataStore
}

// NewDataAnalyticsAdapter creates the data.analytics tool adapter.
func NewDataAnalyticsAdapter(store *DataStore) *DataAnalyticsAdapter {
	return &DataAnalyticsAdapter{store: store}
}

func (a *DataAnalyticsAdapter) Name() config.ToolName { return config.ToolDataAnalytics }
func (a *DataAnalyticsAdapter) Idempotent(map[string]any) bool { return true }

// Invoke expects params {"field": string, "domain"?: string}. Returns
// {"count", "sum", "min", "max", "mean"} over the field's numeric values.
func (a *DataAnalyticsAdapter) Invoke(ctx context.Context, inv Invocation, params map[string]any) (*Result, error) {
	field := stringParam(params, "field")
	if field == "" {
		return nil, errors.New("data.analytics: params.field is required")
	}

	records, err := a.store.fetch(ctx, inv.TenantID, stringParam(params, "domain"), 0)
	if err != nil {
		return nil, err
	}

	var (
		count    int
		sum      float64
		minV     float64
		maxV     float64
	)
	for _, rec := range records {
		v, ok := fieldValue(rec, field)
		if !ok {
			continue
		}
		f, ok := numericValue(v)
		if !ok {
			continue
		}
		if count == 0 {
			minV, maxV = f, f
		} else {
			minV = min(minV, f)
			maxV = max(maxV, f)
		}
		count++
		sum += f
	}

	stats := map[string]any{"field": field, "count": count}
	if count > 0 {
		stats["sum"] = sum
		stats["min"] = minV
		stats["max"] = maxV
		stats["mean"] = sum / float64(count)
	}
	return marshalResult(stats)
}
