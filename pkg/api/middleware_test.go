package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(securityHeaders())
	r.GET("/protected", identity(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant": tenantOf(c),
			"user":   userOf(c),
		})
	})
	return r
}

func TestIdentityMissingHeaders(t *testing.T) {
	r := identityTestRouter()

	tests := []struct {
		name   string
		tenant string
		user   string
	}{
		{"no headers", "", ""},
		{"tenant only", "tenant-1", ""},
		{"user only", "", "alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.tenant != "" {
				req.Header.Set(headerTenantID, tt.tenant)
			}
			if tt.user != "" {
				req.Header.Set(headerUserID, tt.user)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Unauthorized", resp.Code)
		})
	}
}

func TestIdentityCrossTenantParam(t *testing.T) {
	r := identityTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected?tenant_id=tenant-2", nil)
	req.Header.Set(headerTenantID, "tenant-1")
	req.Header.Set(headerUserID, "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CrossTenant", resp.Code)
}

func TestIdentityMatchingTenantParam(t *testing.T) {
	r := identityTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected?tenant_id=tenant-1", nil)
	req.Header.Set(headerTenantID, "tenant-1")
	req.Header.Set(headerUserID, "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tenant-1", body["tenant"])
	assert.Equal(t, "alice", body["user"])
}

func TestSecurityHeaders(t *testing.T) {
	r := identityTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}
