package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/footballdb/internal/response"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, logs := observedLogger()

	reached := false
	router := gin.New()
	router.Use(RequestID(), Recovery(logger))
	router.GET("/panic", func(c *gin.Context) { panic("round table missing") }, func(c *gin.Context) { reached = true })
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, reached)

	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.CodeInternal, resp.Error.Code)
	assert.Equal(t, "internal server error", resp.Error.Message)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "panic recovered", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "round table missing", fields["error"])
	assert.Equal(t, "/panic", fields["path"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), fields["request_id"])
	assert.NotEmpty(t, fields["stack"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, logs.Len())
}
