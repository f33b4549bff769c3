package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siftstack/sift/pkg/catalog"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/database"
	"github.com/siftstack/sift/pkg/jobs"
	"github.com/siftstack/sift/pkg/models"
	testdb "github.com/siftstack/sift/test/database"
)

type apiFixture struct {
	db     *database.Client
	router *gin.Engine
	queue  *config.QueueConfig
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)
	queueCfg := config.DefaultQueueConfig()

	agents := catalog.NewAgentService(db.Client)
	playbooks := catalog.NewPlaybookService(db.Client)
	graphs := catalog.NewGraphService(db.Client, playbooks)
	plans := catalog.NewPlanService(db.Client, playbooks, graphs)
	templates := catalog.NewTemplateService(db.Client)
	jobsSvc := jobs.NewService(db.Client, queueCfg, nil, nil)

	server := NewServer(Deps{
		DB:        db,
		Jobs:      jobsSvc,
		Agents:    agents,
		Playbooks: playbooks,
		Graphs:    graphs,
		Plans:     plans,
		Templates: templates,
		ServerCfg: config.DefaultServerConfig(),
	})

	router := gin.New()
	server.RegisterRoutes(router)
	return &apiFixture{db: db, router: router, queue: queueCfg}
}

// do issues an authenticated request as tenant-1/alice.
func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return f.doAs(t, "tenant-1", "alice", method, path, body)
}

func (f *apiFixture) doAs(t *testing.T, tenant, user, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if tenant != "" {
		req.Header.Set(headerTenantID, tenant)
	}
	if user != "" {
		req.Header.Set(headerUserID, user)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func ingestBody() map[string]any {
	return map[string]any{
		"domain_id": "flood-watch",
		"text":      "River level rising near the old bridge.",
	}
}

func TestSubmitIngestJob(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/api/v1/jobs/ingest", ingestBody())
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	ack := decodeJSON[models.JobSubmission](t, w)
	assert.NotEmpty(t, ack.JobID)
	assert.False(t, ack.AcceptedAt.IsZero())
}

func TestSubmitRequiresIdentity(t *testing.T) {
	f := setupAPI(t)

	w := f.doAs(t, "", "", http.MethodPost, "/api/v1/jobs/ingest", ingestBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, "Unauthorized", resp.Code)
}

func TestSubmitRejectsBadBody(t *testing.T) {
	f := setupAPI(t)

	// domain_id is required at the binding layer.
	w := f.do(t, http.MethodPost, "/api/v1/jobs/ingest", map[string]any{"text": "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, "SchemaViolation", resp.Code)

	// ingest without text fails service-side validation.
	w = f.do(t, http.MethodPost, "/api/v1/jobs/ingest", map[string]any{"domain_id": "flood-watch"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp = decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, "SchemaViolation", resp.Code)
}

func TestSubmitQueryRequiresQuestion(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/api/v1/jobs/query", map[string]any{"domain_id": "flood-watch"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/jobs/query", map[string]any{
		"domain_id": "flood-watch",
		"question":  "Where is the flooding?",
		"filters":   map[string]string{"region": "north"},
	})
	assert.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
}

func TestGetJobRoundtrip(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/api/v1/jobs/ingest", ingestBody())
	require.Equal(t, http.StatusAccepted, w.Code)
	ack := decodeJSON[models.JobSubmission](t, w)

	w = f.do(t, http.MethodGet, "/api/v1/jobs/"+ack.JobID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	job := decodeJSON[JobResponse](t, w)
	assert.Equal(t, ack.JobID, job.JobID)
	assert.Equal(t, "ingest", job.Class)
	assert.Equal(t, "flood-watch", job.DomainID)
	assert.Equal(t, "queued", job.Status)
	assert.Nil(t, job.Artifact)
}

func TestGetJobNotFound(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodGet, "/api/v1/jobs/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, "NotFound", resp.Code)
}

func TestGetJobCrossTenant(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/api/v1/jobs/ingest", ingestBody())
	require.Equal(t, http.StatusAccepted, w.Code)
	ack := decodeJSON[models.JobSubmission](t, w)

	// Another tenant sees absence, not denial.
	w = f.doAs(t, "tenant-2", "bob", http.MethodGet, "/api/v1/jobs/"+ack.JobID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Naming the foreign tenant explicitly is refused outright.
	w = f.doAs(t, "tenant-2", "bob", http.MethodGet,
		"/api/v1/jobs/"+ack.JobID+"?tenant_id=tenant-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, "CrossTenant", resp.Code)
}

func TestListJobsFiltersAndPaginates(t *testing.T) {
	f := setupAPI(t)

	for i := 0; i < 3; i++ {
		w := f.do(t, http.MethodPost, "/api/v1/jobs/ingest", ingestBody())
		require.Equal(t, http.StatusAccepted, w.Code)
	}
	w := f.do(t, http.MethodPost, "/api/v1/jobs/query", map[string]any{
		"domain_id": "flood-watch",
		"question":  "Where is the flooding?",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeJSON[JobListResponse](t, w)
	assert.Equal(t, 4, all.TotalCount)

	w = f.do(t, http.MethodGet, "/api/v1/jobs?class=query", nil)
	require.Equal(t, http.StatusOK, w.Code)
	queries := decodeJSON[JobListResponse](t, w)
	assert.Equal(t, 1, queries.TotalCount)

	w = f.do(t, http.MethodGet, "/api/v1/jobs?limit=2&offset=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	paged := decodeJSON[JobListResponse](t, w)
	assert.Len(t, paged.Jobs, 2)
	assert.Equal(t, 4, paged.TotalCount)
	assert.Equal(t, 2, paged.Limit)

	w = f.do(t, http.MethodGet, "/api/v1/jobs?limit=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAtCapacityReturns429(t *testing.T) {
	f := setupAPI(t)
	f.queue.QueueHighWaterMark = 1

	w := f.do(t, http.MethodPost, "/api/v1/jobs/ingest", ingestBody())
	require.Equal(t, http.StatusAccepted, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/jobs/ingest", ingestBody())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	resp := decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, "AtCapacity", resp.Code)
	assert.True(t, resp.Retryable)
}

func TestCancelQueuedJobViaAPI(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/api/v1/jobs/ingest", ingestBody())
	require.Equal(t, http.StatusAccepted, w.Code)
	ack := decodeJSON[models.JobSubmission](t, w)

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%s/cancel", ack.JobID), nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	resp := decodeJSON[CancelResponse](t, w)
	assert.Equal(t, "cancelled", resp.Status)

	// Cancelling again is a no-op acknowledgement.
	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%s/cancel", ack.JobID), nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	resp = decodeJSON[CancelResponse](t, w)
	assert.Equal(t, "cancelled", resp.Status)
}
