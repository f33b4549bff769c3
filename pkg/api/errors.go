package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siftstack/sift/pkg/catalog"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/jobs"
	"github.com/siftstack/sift/pkg/plan"
	"github.com/siftstack/sift/pkg/queue"
)

// ErrorResponse is the wire error envelope. Code is drawn from the
// closed taxonomy.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Details   any    `json:"details,omitempty"`
}

// respondError maps service-layer errors onto the error envelope.
func respondError(c *gin.Context, err error) {
	status, resp := classify(err)
	if status == http.StatusInternalServerError {
		slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, resp)
}

func classify(err error) (int, *ErrorResponse) {
	switch {
	case errors.Is(err, plan.ErrCycle):
		return http.StatusBadRequest, envelope("Cycle", err)
	case errors.Is(err, plan.ErrMultiParent):
		return http.StatusBadRequest, envelope("MultiParent", err)
	case errors.Is(err, plan.ErrMultiLevel):
		return http.StatusBadRequest, envelope("MultiLevel", err)
	case errors.Is(err, plan.ErrDanglingEdge):
		return http.StatusBadRequest, envelope("DanglingEdge", err)

	case errors.Is(err, catalog.ErrSchemaViolation):
		return http.StatusBadRequest, envelope("SchemaViolation", err)
	case errors.Is(err, catalog.ErrBadReference):
		return http.StatusBadRequest, envelope("BadReference", err)
	case errors.Is(err, catalog.ErrClassMismatch):
		return http.StatusBadRequest, envelope("ClassMismatch", err)
	case errors.Is(err, catalog.ErrBuiltinImmutable):
		return http.StatusForbidden, envelope("BuiltinImmutable", err)

	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, jobs.ErrNotFound):
		return http.StatusNotFound, &ErrorResponse{Code: "NotFound", Message: "resource not found"}

	case errors.Is(err, queue.ErrAtCapacity):
		return http.StatusTooManyRequests, &ErrorResponse{
			Code:      "AtCapacity",
			Message:   err.Error(),
			Retryable: true,
		}

	default:
		var validErr *config.ValidationError
		if errors.As(err, &validErr) {
			return http.StatusBadRequest, envelope("SchemaViolation", err)
		}
		return http.StatusInternalServerError, &ErrorResponse{
			Code:    "Internal",
			Message: "internal server error",
		}
	}
}

func envelope(code string, err error) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: err.Error()}
}
