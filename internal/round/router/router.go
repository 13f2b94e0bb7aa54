// Package router provides round module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/round/handler"
	"github.com/festy23/footballdb/internal/round/service"
)

// RegisterRoutes registers round module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/round/search", h.Search)
	r.POST("/round/add", h.Add)
	r.POST("/round/delete", h.Delete)
	r.POST("/round/update", h.Update)
}
