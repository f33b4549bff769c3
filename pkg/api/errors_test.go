package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siftstack/sift/pkg/catalog"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/jobs"
	"github.com/siftstack/sift/pkg/plan"
	"github.com/siftstack/sift/pkg/queue"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"cycle", fmt.Errorf("graph: %w", plan.ErrCycle), http.StatusBadRequest, "Cycle"},
		{"multi parent", plan.ErrMultiParent, http.StatusBadRequest, "MultiParent"},
		{"multi level", plan.ErrMultiLevel, http.StatusBadRequest, "MultiLevel"},
		{"dangling edge", plan.ErrDanglingEdge, http.StatusBadRequest, "DanglingEdge"},
		{"schema violation", catalog.ErrSchemaViolation, http.StatusBadRequest, "SchemaViolation"},
		{"bad reference", catalog.ErrBadReference, http.StatusBadRequest, "BadReference"},
		{"class mismatch", catalog.ErrClassMismatch, http.StatusBadRequest, "ClassMismatch"},
		{"builtin immutable", catalog.ErrBuiltinImmutable, http.StatusForbidden, "BuiltinImmutable"},
		{"catalog not found", catalog.ErrNotFound, http.StatusNotFound, "NotFound"},
		{"job not found", jobs.ErrNotFound, http.StatusNotFound, "NotFound"},
		{"at capacity", queue.ErrAtCapacity, http.StatusTooManyRequests, "AtCapacity"},
		{
			"validation error",
			config.NewValidationError("job", "", "domain_id", config.ErrMissingRequiredField),
			http.StatusBadRequest,
			"SchemaViolation",
		},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "Internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestClassifyRetryable(t *testing.T) {
	_, resp := classify(queue.ErrAtCapacity)
	assert.True(t, resp.Retryable)

	_, resp = classify(catalog.ErrSchemaViolation)
	assert.False(t, resp.Retryable)
}

func TestClassifyInternalHidesDetail(t *testing.T) {
	_, resp := classify(errors.New("pq: password authentication failed for user postgres"))
	assert.Equal(t, "Internal", resp.Code)
	assert.Equal(t, "internal server error", resp.Message)
}
