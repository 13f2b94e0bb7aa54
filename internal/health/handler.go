// Package health provides the health check endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/footballdb/internal/database/database"
)

const checkTimeout = 5 * time.Second

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// Check handles GET /health.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	store := h.db.Dialector.Name()
	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "store", store, "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy", Store: store})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok", Store: store})
}

// RegisterRoutes registers the health route.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	r.GET("/health", New(db, logger).Check)
}
