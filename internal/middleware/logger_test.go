package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func TestLogger_Levels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{name: "success", status: http.StatusOK, level: zapcore.InfoLevel},
		{name: "client error", status: http.StatusNotFound, level: zapcore.WarnLevel},
		{name: "server error", status: http.StatusInternalServerError, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := observedLogger()
			router := gin.New()
			router.Use(Logger(logger))
			router.GET("/league/search", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/league/search", nil))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, "HTTP request", entry.Message)
			assert.EqualValues(t, tt.status, entry.ContextMap()["status"])
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, logs := observedLogger()

	router := gin.New()
	router.Use(RequestID(), Logger(logger))
	router.GET("/game/search", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/game/search?league_name=serie", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.Equal(t, "/game/search", fields["path"])
	assert.Equal(t, "league_name=serie", fields["query"])
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Contains(t, fields, "latency_ms")
	assert.Contains(t, fields, "client_ip")
	assert.Contains(t, fields["errors"], assert.AnError.Error())
}

func TestLogger_OmitsEmptyFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, logs := observedLogger()

	router := gin.New()
	router.Use(Logger(logger))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "query")
	assert.NotContains(t, fields, "request_id")
	assert.NotContains(t, fields, "errors")
}

func TestLogger_RespectsLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.WarnLevel)

	router := gin.New()
	router.Use(Logger(zap.New(core).Sugar()))
	router.GET("/league/search", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/league/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/league/search", nil))
	assert.Zero(t, logs.Len())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/league/missing", nil))
	assert.Equal(t, 1, logs.Len())
}
